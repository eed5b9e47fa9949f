package swf

import (
	"fmt"

	"github.com/gogpu/swf/internal/bitstream"
)

// ColorTransform is a CXFORM or CXFORMWITHALPHA record attached to a
// placement. Neither form is encoded.
type ColorTransform interface {
	encode(w *bitstream.Writer)
}

// CXForm multiplies and offsets the red, green and blue channels.
// Multiplication terms are 8.8 fixed point. Not encoded.
type CXForm struct {
	RedMult, GreenMult, BlueMult int16
	RedAdd, GreenAdd, BlueAdd    int16
}

// CXFormWithAlpha is CXForm with alpha terms. Not encoded.
type CXFormWithAlpha struct {
	CXForm
	AlphaMult, AlphaAdd int16
}

func (c *CXForm) encode(w *bitstream.Writer) {
	w.SetError(fmt.Errorf("%w: color transform", ErrUnsupported))
}

func (c *CXFormWithAlpha) encode(w *bitstream.Writer) {
	w.SetError(fmt.Errorf("%w: color transform with alpha", ErrUnsupported))
}
