package swf

import (
	"fmt"

	"github.com/gogpu/swf/internal/bitstream"
)

// ShapeRecord is one record of a shape's path: *StyleChange, StraightEdge,
// CurvedEdge or EndShape. The set is closed.
type ShapeRecord interface {
	isShapeRecord()
}

// StyleChange moves the pen, selects styles or replaces the style tables.
// Zero fields are not written: a zero delta pair means no move and a zero
// index leaves the style unchanged.
type StyleChange struct {
	MoveDeltaX, MoveDeltaY int32

	// 1-based indices into the active fill and line style tables.
	FillStyle0 uint16
	FillStyle1 uint16
	LineStyle  uint16

	// NewStyles replaces both style tables. Only valid in DefineShape2
	// and later.
	NewStyles *StyleTables
}

// StraightEdge draws a line from the pen by (DeltaX, DeltaY) twips.
type StraightEdge struct {
	DeltaX, DeltaY int32
}

// CurvedEdge draws a quadratic Bezier curve. Control and anchor deltas are
// both relative to the pen position at the start of the edge.
type CurvedEdge struct {
	ControlDeltaX, ControlDeltaY int32
	AnchorDeltaX, AnchorDeltaY   int32
}

// EndShape terminates a path.
type EndShape struct{}

func (*StyleChange) isShapeRecord() {}
func (StraightEdge) isShapeRecord() {}
func (CurvedEdge) isShapeRecord()   {}
func (EndShape) isShapeRecord()     {}

func (r *StyleChange) hasMove() bool {
	return r.MoveDeltaX != 0 || r.MoveDeltaY != 0
}

// recordWriter writes shape records against the style tables currently in
// effect.
type recordWriter struct {
	w                  *bitstream.Writer
	numFills, numLines int
	fillBits, lineBits uint
}

func newRecordWriter(w *bitstream.Writer, t *StyleTables) *recordWriter {
	rw := &recordWriter{w: w}
	rw.use(t)
	return rw
}

// use makes t the active style tables.
func (rw *recordWriter) use(t *StyleTables) {
	rw.numFills, rw.numLines = len(t.FillStyles), len(t.LineStyles)
	rw.fillBits, rw.lineBits = t.indexWidths()
}

func (rw *recordWriter) writeIndexWidths() {
	rw.w.WriteUBits(uint64(rw.fillBits), 4)
	rw.w.WriteUBits(uint64(rw.lineBits), 4)
}

func (rw *recordWriter) write(r ShapeRecord) {
	switch r := r.(type) {
	case *StyleChange:
		rw.styleChange(r)
	case StraightEdge:
		rw.straightEdge(r)
	case CurvedEdge:
		rw.curvedEdge(r)
	case EndShape:
		rw.w.WriteUBits(0, 6)
	default:
		rw.w.SetError(fmt.Errorf("swf: unknown shape record %T", r))
	}
}

func (rw *recordWriter) styleChange(r *StyleChange) {
	w := rw.w
	w.WriteBit(false) // TypeFlag
	w.WriteBit(r.NewStyles != nil)
	w.WriteBit(r.LineStyle != 0)
	w.WriteBit(r.FillStyle1 != 0)
	w.WriteBit(r.FillStyle0 != 0)
	w.WriteBit(r.hasMove())

	if r.hasMove() {
		n := bitstream.Width(r.MoveDeltaX, r.MoveDeltaY)
		w.WriteUBits(uint64(n), 5)
		w.WriteSBits(int64(r.MoveDeltaX), n)
		w.WriteSBits(int64(r.MoveDeltaY), n)
	}
	// Indices of a record that carries new tables refer to the new tables
	// but are written with the widths in effect before it.
	numFills, numLines := rw.numFills, rw.numLines
	if r.NewStyles != nil {
		numFills, numLines = len(r.NewStyles.FillStyles), len(r.NewStyles.LineStyles)
	}
	if r.FillStyle0 != 0 {
		rw.index("fill style 0", r.FillStyle0, numFills, rw.fillBits)
	}
	if r.FillStyle1 != 0 {
		rw.index("fill style 1", r.FillStyle1, numFills, rw.fillBits)
	}
	if r.LineStyle != 0 {
		rw.index("line style", r.LineStyle, numLines, rw.lineBits)
	}
	if r.NewStyles != nil {
		w.Align()
		r.NewStyles.encode(w)
		rw.use(r.NewStyles)
		rw.writeIndexWidths()
	}
}

func (rw *recordWriter) index(field string, idx uint16, count int, bits uint) {
	if int(idx) > count {
		rw.w.SetError(fmt.Errorf("%w: %s %d with %d styles", ErrStyleIndex, field, idx, count))
		return
	}
	rw.w.WriteUBits(uint64(idx), bits)
}

func (rw *recordWriter) straightEdge(r StraightEdge) {
	w := rw.w
	general := r.DeltaX != 0 && r.DeltaY != 0
	vertical := r.DeltaX == 0

	var n uint
	switch {
	case general:
		n = bitstream.Width(r.DeltaX, r.DeltaY)
	case vertical:
		n = bitstream.Width(r.DeltaY)
	default:
		n = bitstream.Width(r.DeltaX)
	}

	w.WriteBit(true) // TypeFlag
	w.WriteBit(true) // StraightFlag
	w.WriteUBits(uint64(n-2), 4)
	w.WriteBit(general)
	if !general {
		w.WriteBit(vertical)
	}
	if general || !vertical {
		w.WriteSBits(int64(r.DeltaX), n)
	}
	if general || vertical {
		w.WriteSBits(int64(r.DeltaY), n)
	}
}

func (rw *recordWriter) curvedEdge(r CurvedEdge) {
	w := rw.w
	n := bitstream.Width(r.ControlDeltaX, r.ControlDeltaY, r.AnchorDeltaX, r.AnchorDeltaY)

	w.WriteBit(true)  // TypeFlag
	w.WriteBit(false) // StraightFlag
	w.WriteUBits(uint64(n-2), 4)
	w.WriteSBits(int64(r.ControlDeltaX), n)
	w.WriteSBits(int64(r.ControlDeltaY), n)
	w.WriteSBits(int64(r.AnchorDeltaX), n)
	w.WriteSBits(int64(r.AnchorDeltaY), n)
}

// MarshalBinary returns the record padded to a byte boundary, with style
// indices written against empty style tables.
func (r *StyleChange) MarshalBinary() ([]byte, error) {
	return marshalRecord(r, &StyleTables{})
}

// MarshalBinary returns the record padded to a byte boundary.
func (r StraightEdge) MarshalBinary() ([]byte, error) {
	return marshalRecord(r, &StyleTables{})
}

// MarshalBinary returns the record padded to a byte boundary.
func (r CurvedEdge) MarshalBinary() ([]byte, error) {
	return marshalRecord(r, &StyleTables{})
}

// MarshalBinary returns the record padded to a byte boundary.
func (r EndShape) MarshalBinary() ([]byte, error) {
	return marshalRecord(r, &StyleTables{})
}

// marshalRecord encodes a single record against the given style tables.
func marshalRecord(r ShapeRecord, t *StyleTables) ([]byte, error) {
	return marshal(func(w *bitstream.Writer) {
		newRecordWriter(w, t).write(r)
	})
}
