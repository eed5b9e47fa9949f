package swf

import (
	"github.com/gogpu/swf/internal/bitstream"
)

// TwipsPerPixel is the number of twips in one pixel.
const TwipsPerPixel = 20

// Rect is the RECT record: an axis-aligned rectangle in twips.
// All four bounds are written with one shared bit width.
type Rect struct {
	XMin, XMax, YMin, YMax int32
}

// NewRect returns the rectangle from the origin to (width, height) twips.
func NewRect(width, height int32) Rect {
	return Rect{XMax: width, YMax: height}
}

// Width returns XMax-XMin.
func (r Rect) Width() int32 {
	return r.XMax - r.XMin
}

// Height returns YMax-YMin.
func (r Rect) Height() int32 {
	return r.YMax - r.YMin
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		XMin: min(r.XMin, other.XMin),
		XMax: max(r.XMax, other.XMax),
		YMin: min(r.YMin, other.YMin),
		YMax: max(r.YMax, other.YMax),
	}
}

// Outset grows the rectangle by d on every side.
func (r Rect) Outset(d int32) Rect {
	return Rect{XMin: r.XMin - d, XMax: r.XMax + d, YMin: r.YMin - d, YMax: r.YMax + d}
}

func (r Rect) encode(w *bitstream.Writer) {
	n := bitstream.Width(r.XMin, r.XMax, r.YMin, r.YMax)
	w.WriteUBits(uint64(n), 5)
	w.WriteSBits(int64(r.XMin), n)
	w.WriteSBits(int64(r.XMax), n)
	w.WriteSBits(int64(r.YMin), n)
	w.WriteSBits(int64(r.YMax), n)
	w.Align()
}

// MarshalBinary returns the encoded RECT record.
func (r Rect) MarshalBinary() ([]byte, error) {
	return marshal(r.encode)
}
