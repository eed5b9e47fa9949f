// Package bitstream implements the append-only bit sink used by the SWF
// encoders.
//
// Bits are written most-significant-bit first. Multi-byte integers are
// little-endian and may only be written on a byte boundary. The writer keeps
// the first error it encounters; every later write is a no-op and the error
// is reported by Finish.
package bitstream

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a value does not fit the width it is
	// written with.
	ErrOverflow = errors.New("bitstream: value does not fit in field")

	// ErrUnaligned is returned when a byte-oriented write is attempted while
	// bits are pending.
	ErrUnaligned = errors.New("bitstream: byte write with pending bits")

	// ErrFinished is returned when writing to a finished writer.
	ErrFinished = errors.New("bitstream: write after finish")
)

// Writer accumulates bits and bytes into a buffer.
type Writer struct {
	buf     []byte
	partial byte // pending bits, right-aligned
	pending uint // number of pending bits (0-7)
	done    bool
	err     error
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// SetError stops the writer. Only the first error is kept.
func (w *Writer) SetError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Len returns the number of complete bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// BitLen returns the number of bits written so far.
func (w *Writer) BitLen() int {
	return len(w.buf)*8 + int(w.pending)
}

// Aligned reports whether the writer is on a byte boundary.
func (w *Writer) Aligned() bool {
	return w.pending == 0
}

func (w *Writer) ok() bool {
	if w.err != nil {
		return false
	}
	if w.done {
		w.err = ErrFinished
		return false
	}
	return true
}

// WriteUBits writes the low n bits of v, most significant first. v must fit
// in n unsigned bits.
func (w *Writer) WriteUBits(v uint64, n uint) {
	if !w.ok() {
		return
	}
	if n > 64 || (n < 64 && v>>n != 0) {
		w.err = fmt.Errorf("%w: %d in %d unsigned bits", ErrOverflow, v, n)
		return
	}
	for i := n; i > 0; i-- {
		w.partial = w.partial<<1 | byte(v>>(i-1)&1)
		w.pending++
		if w.pending == 8 {
			w.buf = append(w.buf, w.partial)
			w.partial, w.pending = 0, 0
		}
	}
}

// WriteSBits writes v as an n-bit two's complement value, most significant
// bit first.
func (w *Writer) WriteSBits(v int64, n uint) {
	if !w.ok() {
		return
	}
	if !FitsSigned(v, n) {
		w.err = fmt.Errorf("%w: %d in %d signed bits", ErrOverflow, v, n)
		return
	}
	if n == 0 {
		return
	}
	var mask uint64 = 1<<n - 1
	if n == 64 {
		mask = ^uint64(0)
	}
	w.WriteUBits(uint64(v)&mask, n)
}

// WriteBit writes a single flag bit.
func (w *Writer) WriteBit(b bool) {
	var v uint64
	if b {
		v = 1
	}
	w.WriteUBits(v, 1)
}

// Align pads the pending byte with zero bits. It does nothing when the
// writer is already aligned.
func (w *Writer) Align() {
	if w.err != nil || w.pending == 0 {
		return
	}
	w.buf = append(w.buf, w.partial<<(8-w.pending))
	w.partial, w.pending = 0, 0
}

func (w *Writer) aligned() bool {
	if !w.ok() {
		return false
	}
	if w.pending != 0 {
		w.err = fmt.Errorf("%w: %d bits pending", ErrUnaligned, w.pending)
		return false
	}
	return true
}

// WriteUint8 writes one byte.
func (w *Writer) WriteUint8(v uint8) {
	if w.aligned() {
		w.buf = append(w.buf, v)
	}
}

// WriteUint16 writes a little-endian 16-bit value.
func (w *Writer) WriteUint16(v uint16) {
	if w.aligned() {
		w.buf = append(w.buf, byte(v), byte(v>>8))
	}
}

// WriteUint32 writes a little-endian 32-bit value.
func (w *Writer) WriteUint32(v uint32) {
	if w.aligned() {
		w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
}

// WriteBytes copies p verbatim. It is how a finished child writer is
// embedded into its parent.
func (w *Writer) WriteBytes(p []byte) {
	if w.aligned() {
		w.buf = append(w.buf, p...)
	}
}

// Finish aligns the writer and returns its bytes. The writer cannot be used
// afterwards. On error no bytes are returned.
func (w *Writer) Finish() ([]byte, error) {
	if w.done && w.err == nil {
		w.err = ErrFinished
	}
	w.Align()
	w.done = true
	if w.err != nil {
		return nil, w.err
	}
	return w.buf, nil
}
