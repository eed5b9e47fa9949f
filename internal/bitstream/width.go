package bitstream

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// MinWidth is the smallest width Width ever returns. Several SWF width fields
// are stored biased by two, so the floor applies to every group, including
// empty and all-zero ones.
const MinWidth = 2

// Width returns the smallest two's complement width that can hold every
// value. All values of a group that shares one width field are passed in a
// single call.
func Width[T constraints.Signed](values ...T) uint {
	w := uint(MinWidth)
	for _, v := range values {
		if n := signedLen(int64(v)); n > w {
			w = n
		}
	}
	return w
}

// UnsignedWidth returns the number of bits needed to store n, or 0 for 0.
func UnsignedWidth(n uint64) uint {
	return uint(bits.Len64(n))
}

// FitsSigned reports whether v is representable in n bits of two's
// complement.
func FitsSigned(v int64, n uint) bool {
	if n == 0 {
		return v == 0
	}
	return signedLen(v) <= n
}

// signedLen returns the two's complement width of v including the sign bit.
func signedLen(v int64) uint {
	if v < 0 {
		v = ^v
	}
	return uint(bits.Len64(uint64(v))) + 1
}
