package swf

import (
	"fmt"

	"github.com/gogpu/swf/internal/bitstream"
)

// DefineShape defines a shape character. Version selects DefineShape (1),
// DefineShape2 (2) or DefineShape3 (3); 0 means 1. When Bounds is nil the
// bounds are computed from the shape's edges.
type DefineShape struct {
	ID      uint16
	Version int
	Bounds  *Rect
	Shape   *Shape
}

// Code implements Tag.
func (t DefineShape) Code() TagCode {
	switch t.Version {
	case 2:
		return CodeDefineShape2
	case 3:
		return CodeDefineShape3
	default:
		return CodeDefineShape
	}
}

func (DefineShape) headerForm() headerForm { return longHeader }

func (t DefineShape) encodePayload(w *bitstream.Writer, o *options) {
	if t.Version < 0 || t.Version > 3 {
		w.SetError(fmt.Errorf("%w: DefineShape version %d", ErrUnsupported, t.Version))
		return
	}
	shape := t.Shape
	if shape == nil {
		shape = &Shape{}
	}

	bounds := t.Bounds
	if bounds == nil {
		r, err := shape.Bounds()
		if err != nil {
			w.SetError(fmt.Errorf("shape %d bounds: %w", t.ID, err))
			return
		}
		bounds = &r
	}

	w.WriteUint16(t.ID)
	bounds.encode(w)
	shape.encode(w)
}
