package swf

import (
	"fmt"
	"image/color"

	"github.com/gogpu/swf/internal/bitstream"
)

// Color is one of the fixed-width color records: RGB, RGBA or ARGB.
// Every channel is an 8-bit field; each variant writes its own channel
// order. Colors also satisfy color.Color so they can be drawn directly.
type Color interface {
	color.Color
	encodeColor(w *bitstream.Writer)
}

// RGB is an opaque color record.
type RGB struct {
	R, G, B uint8
}

// RGBA is a color record with the alpha channel last.
type RGBA struct {
	R, G, B, A uint8
}

// ARGB is a color record with the alpha channel first.
type ARGB struct {
	A, R, G, B uint8
}

// Common colors
var (
	Black = RGB{0x00, 0x00, 0x00}
	White = RGB{0xFF, 0xFF, 0xFF}
)

func (c RGB) encodeColor(w *bitstream.Writer) {
	w.WriteUint8(c.R)
	w.WriteUint8(c.G)
	w.WriteUint8(c.B)
}

func (c RGBA) encodeColor(w *bitstream.Writer) {
	w.WriteUint8(c.R)
	w.WriteUint8(c.G)
	w.WriteUint8(c.B)
	w.WriteUint8(c.A)
}

func (c ARGB) encodeColor(w *bitstream.Writer) {
	w.WriteUint8(c.A)
	w.WriteUint8(c.R)
	w.WriteUint8(c.G)
	w.WriteUint8(c.B)
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// RGBA implements color.Color.
func (c ARGB) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// MarshalBinary returns the 3-byte RGB record.
func (c RGB) MarshalBinary() ([]byte, error) { return marshal(c.encodeColor) }

// MarshalBinary returns the 4-byte RGBA record.
func (c RGBA) MarshalBinary() ([]byte, error) { return marshal(c.encodeColor) }

// MarshalBinary returns the 4-byte ARGB record.
func (c ARGB) MarshalBinary() ([]byte, error) { return marshal(c.encodeColor) }

// WithAlpha returns c with an alpha channel, alpha last.
func (c RGB) WithAlpha(a uint8) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Opaque drops the alpha channel.
func (c RGBA) Opaque() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ARGB returns the same color with the alpha channel first.
func (c RGBA) ARGB() ARGB {
	return ARGB{A: c.A, R: c.R, G: c.G, B: c.B}
}

// ColorFrom converts any color.Color to an RGBA record.
func ColorFrom(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// ParseHex parses a hex color.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var ch [4]uint8
	ch[3] = 0xFF

	switch len(s) {
	case 3, 4: // RGB, RGBA
		for i := 0; i < len(s); i++ {
			v, ok := hexDigit(s[i])
			if !ok {
				return RGBA{}, fmt.Errorf("swf: invalid hex color %q", hex)
			}
			ch[i] = v * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return RGBA{}, fmt.Errorf("swf: invalid hex color %q", hex)
			}
			ch[i/2] = hi<<4 | lo
		}
	default:
		return RGBA{}, fmt.Errorf("swf: invalid hex color %q", hex)
	}

	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
