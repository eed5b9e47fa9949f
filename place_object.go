package swf

import (
	"fmt"

	"github.com/gogpu/swf/internal/bitstream"
)

// PlaceObject2 adds a character to the display list or modifies the
// character already at Depth. Optional fields are written only when set.
type PlaceObject2 struct {
	// Move modifies the character at Depth instead of placing a new one.
	Move  bool
	Depth uint16

	// CharacterID is the character to place; 0 means none. A placement
	// that does not move needs one.
	CharacterID uint16

	Matrix         *Matrix
	ColorTransform ColorTransform
	Ratio          *uint16
	Name           string
	ClipDepth      *uint16
	ClipActions    *ClipActions
}

// Code implements Tag.
func (PlaceObject2) Code() TagCode { return CodePlaceObject2 }

func (PlaceObject2) headerForm() headerForm { return shortHeader }

func (t PlaceObject2) encodePayload(w *bitstream.Writer, o *options) {
	if !t.Move && t.CharacterID == 0 {
		w.SetError(fmt.Errorf("%w: depth %d", ErrInvalidPlacement, t.Depth))
		return
	}
	if t.ColorTransform != nil {
		t.ColorTransform.encode(w)
		return
	}
	if t.ClipActions != nil {
		t.ClipActions.encode(w)
		return
	}

	w.WriteBit(t.ClipActions != nil)
	w.WriteBit(t.ClipDepth != nil)
	w.WriteBit(t.Name != "")
	w.WriteBit(t.Ratio != nil)
	w.WriteBit(t.ColorTransform != nil)
	w.WriteBit(t.Matrix != nil)
	w.WriteBit(t.CharacterID != 0)
	w.WriteBit(t.Move)
	w.WriteUint16(t.Depth)

	if t.CharacterID != 0 {
		w.WriteUint16(t.CharacterID)
	}
	if t.Matrix != nil {
		t.Matrix.encode(w)
	}
	if t.Ratio != nil {
		w.WriteUint16(*t.Ratio)
	}
	if t.Name != "" {
		writeString(w, t.Name, o)
	}
	if t.ClipDepth != nil {
		w.WriteUint16(*t.ClipDepth)
	}
}

// ClipActions is the CLIPACTIONS structure of sprite event handlers.
// Not encoded.
type ClipActions struct {
	EventFlags uint32
	Records    [][]byte
}

func (c *ClipActions) encode(w *bitstream.Writer) {
	w.SetError(fmt.Errorf("%w: clip actions", ErrUnsupported))
}
