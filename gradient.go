package swf

import (
	"fmt"

	"github.com/gogpu/swf/internal/bitstream"
)

// Gradient is the GRADIENT record used by linear and radial fills.
// Gradients are not encoded; a fill that uses one fails with ErrUnsupported.
type Gradient struct {
	SpreadMode        uint8
	InterpolationMode uint8
	Records           []GradRecord
}

// FocalGradient is the FOCALGRADIENT record of focal radial fills.
// Not encoded.
type FocalGradient struct {
	Gradient
	FocalPoint float64
}

// GradRecord is one control point of a gradient. Not encoded.
type GradRecord struct {
	Ratio uint8
	Color Color
}

func (g *Gradient) encode(w *bitstream.Writer) {
	w.SetError(fmt.Errorf("%w: gradient", ErrUnsupported))
}

func (g *FocalGradient) encode(w *bitstream.Writer) {
	w.SetError(fmt.Errorf("%w: focal gradient", ErrUnsupported))
}

func (r GradRecord) encode(w *bitstream.Writer) {
	w.SetError(fmt.Errorf("%w: gradient record", ErrUnsupported))
}

// MarshalBinary always fails with ErrUnsupported.
func (g *Gradient) MarshalBinary() ([]byte, error) { return marshal(g.encode) }

// MarshalBinary always fails with ErrUnsupported.
func (g *FocalGradient) MarshalBinary() ([]byte, error) { return marshal(g.encode) }

// MarshalBinary always fails with ErrUnsupported.
func (r GradRecord) MarshalBinary() ([]byte, error) { return marshal(r.encode) }
