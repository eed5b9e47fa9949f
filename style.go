package swf

import (
	"fmt"

	"github.com/gogpu/swf/internal/bitstream"
)

// FillStyleType selects how a FILLSTYLE paints.
type FillStyleType uint8

// Fill style types.
const (
	SolidFill                  FillStyleType = 0x00
	LinearGradientFill         FillStyleType = 0x10
	RadialGradientFill         FillStyleType = 0x12
	FocalRadialGradientFill    FillStyleType = 0x13
	RepeatingBitmapFill        FillStyleType = 0x40
	ClippedBitmapFill          FillStyleType = 0x41
	NonSmoothedRepeatingBitmap FillStyleType = 0x42
	NonSmoothedClippedBitmap   FillStyleType = 0x43
)

// IsGradient reports whether t is one of the gradient fills.
func (t FillStyleType) IsGradient() bool {
	return t == LinearGradientFill || t == RadialGradientFill || t == FocalRadialGradientFill
}

// IsBitmap reports whether t is one of the bitmap fills.
func (t FillStyleType) IsBitmap() bool {
	return t >= RepeatingBitmapFill && t <= NonSmoothedClippedBitmap
}

// FillStyle is the FILLSTYLE record. Which fields are written depends on
// Type: solid fills write Color, bitmap fills write BitmapID and
// BitmapMatrix. Gradient fills fail with ErrUnsupported before anything
// is written.
type FillStyle struct {
	Type           FillStyleType
	Color          Color
	GradientMatrix Matrix
	Gradient       *Gradient
	FocalGradient  *FocalGradient
	BitmapID       uint16
	BitmapMatrix   Matrix
}

// SolidFillStyle returns a solid fill of the given color.
func SolidFillStyle(c Color) FillStyle {
	return FillStyle{Type: SolidFill, Color: c}
}

func (f *FillStyle) encode(w *bitstream.Writer) {
	switch {
	case f.Type == FocalRadialGradientFill:
		f.FocalGradient.encode(w)
		return
	case f.Type.IsGradient():
		f.Gradient.encode(w)
		return
	}

	w.WriteUint8(uint8(f.Type))
	switch {
	case f.Type == SolidFill:
		c := f.Color
		if c == nil {
			c = White
		}
		c.encodeColor(w)
	case f.Type.IsBitmap():
		w.WriteUint16(f.BitmapID)
		f.BitmapMatrix.encode(w)
	default:
		w.SetError(fmt.Errorf("%w: fill style type %#x", ErrUnsupported, uint8(f.Type)))
	}
}

// MarshalBinary returns the encoded FILLSTYLE record.
func (f FillStyle) MarshalBinary() ([]byte, error) {
	return marshal(f.encode)
}

// LineStyle is the LINESTYLE record: a stroke width in twips and a color.
type LineStyle struct {
	Width uint16
	Color Color
}

func (l *LineStyle) encode(w *bitstream.Writer) {
	w.WriteUint16(l.Width)
	c := l.Color
	if c == nil {
		c = White
	}
	c.encodeColor(w)
}

// MarshalBinary returns the encoded LINESTYLE record.
func (l LineStyle) MarshalBinary() ([]byte, error) {
	return marshal(l.encode)
}

// StyleTables is a pair of fill and line style tables. Shape records refer
// to their entries by 1-based index; index 0 means no style.
type StyleTables struct {
	FillStyles []FillStyle
	LineStyles []LineStyle
}

// indexWidths returns the NumFillBits and NumLineBits for the tables.
func (t *StyleTables) indexWidths() (fill, line uint) {
	return bitstream.UnsignedWidth(uint64(len(t.FillStyles))),
		bitstream.UnsignedWidth(uint64(len(t.LineStyles)))
}

func (t *StyleTables) encode(w *bitstream.Writer) {
	writeStyleCount(w, len(t.FillStyles))
	for i := range t.FillStyles {
		t.FillStyles[i].encode(w)
	}
	writeStyleCount(w, len(t.LineStyles))
	for i := range t.LineStyles {
		t.LineStyles[i].encode(w)
	}
}

// writeStyleCount writes a style array count: one byte, or 0xFF followed by
// a 16-bit count once the table reaches 255 entries.
func writeStyleCount(w *bitstream.Writer, n int) {
	switch {
	case n < 0xFF:
		w.WriteUint8(uint8(n))
	case n <= 0xFFFF:
		w.WriteUint8(0xFF)
		w.WriteUint16(uint16(n))
	default:
		w.SetError(fmt.Errorf("%w: %d styles in one table", ErrOverflow, n))
	}
}
