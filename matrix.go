package swf

import (
	"github.com/gogpu/swf/internal/bitstream"
)

// Matrix is the MATRIX record: a 2D affine transform.
//
//	x' = x*ScaleX + y*RotateSkew1 + TranslateX
//	y' = x*RotateSkew0 + y*ScaleY + TranslateY
//
// Scale and rotate terms are written as 16.16 fixed point numbers, the
// translation in twips.
type Matrix struct {
	ScaleX, ScaleY           float64
	RotateSkew0, RotateSkew1 float64
	TranslateX, TranslateY   int32
}

// IdentityMatrix returns the matrix that leaves coordinates unchanged.
// It is encoded without a scale term, which players read as 1.
func IdentityMatrix() Matrix {
	return Matrix{}
}

// TranslateMatrix creates a translation matrix.
func TranslateMatrix(x, y int32) Matrix {
	return Matrix{TranslateX: x, TranslateY: y}
}

// ScaleMatrix creates a scaling matrix.
func ScaleMatrix(x, y float64) Matrix {
	return Matrix{ScaleX: x, ScaleY: y}
}

// HasScale reports whether the scale term is written. Only positive
// components switch it on.
func (m Matrix) HasScale() bool {
	return m.ScaleX > 0 || m.ScaleY > 0
}

// HasRotate reports whether the rotate/skew term is written. Only positive
// components switch it on.
func (m Matrix) HasRotate() bool {
	return m.RotateSkew0 > 0 || m.RotateSkew1 > 0
}

func (m Matrix) encode(w *bitstream.Writer) {
	hasScale := m.HasScale()
	w.WriteBit(hasScale)
	if hasScale {
		x, y := toFixed16(m.ScaleX), toFixed16(m.ScaleY)
		n := fixedWidth(x, y)
		w.WriteUBits(uint64(n), 5)
		w.WriteSBits(x, n)
		w.WriteSBits(y, n)
	}

	hasRotate := m.HasRotate()
	w.WriteBit(hasRotate)
	if hasRotate {
		n := fixedWidth(toFixed16(m.RotateSkew0), toFixed16(m.RotateSkew1))
		// The rotate/skew values are taken from the scale terms; only the
		// width comes from the rotate terms.
		r0, r1 := toFixed16(m.ScaleX), toFixed16(m.ScaleY)
		w.WriteUBits(uint64(n), 5)
		w.WriteSBits(r0, n)
		w.WriteSBits(r1, n)
	}

	var n uint
	if m.TranslateX != 0 || m.TranslateY != 0 {
		n = bitstream.Width(m.TranslateX, m.TranslateY)
	}
	w.WriteUBits(uint64(n), 5)
	if n > 0 {
		w.WriteSBits(int64(m.TranslateX), n)
		w.WriteSBits(int64(m.TranslateY), n)
	}
	w.Align()
}

// MarshalBinary returns the encoded MATRIX record.
func (m Matrix) MarshalBinary() ([]byte, error) {
	return marshal(m.encode)
}

// toFixed16 converts v to 16.16 fixed point, truncating toward zero.
func toFixed16(v float64) int64 {
	return int64(v * 65536)
}

// fixedWidth returns the width of a pair of 16.16 values: the width of
// their integer parts plus the 16 fraction bits.
func fixedWidth(a, b int64) uint {
	return bitstream.Width(a>>16, b>>16) + 16
}
