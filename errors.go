package swf

import (
	"errors"

	"github.com/gogpu/swf/internal/bitstream"
)

var (
	// ErrUnsupported is returned when a structure that this package does not
	// encode is part of the document: compressed containers, gradients,
	// color transforms and clip actions.
	ErrUnsupported = errors.New("swf: unsupported feature")

	// ErrNoEdges is returned when the bounds of a shape without any edge
	// record are requested.
	ErrNoEdges = errors.New("swf: shape has no edges")

	// ErrStyleIndex is returned when a shape record refers to a style that is
	// not in the active style table.
	ErrStyleIndex = errors.New("swf: style index out of range")

	// ErrInvalidPlacement is returned for a PlaceObject2 that neither moves
	// an existing character nor names a new one.
	ErrInvalidPlacement = errors.New("swf: placement without character")

	// ErrOverflow is returned when a value cannot be represented in the
	// field it is written to.
	ErrOverflow = bitstream.ErrOverflow

	// ErrUnaligned is returned when a byte field is written in the middle
	// of a bit field. It indicates a bug in an encoder.
	ErrUnaligned = bitstream.ErrUnaligned

	// ErrFinished is returned when an encoder writes to a finished buffer.
	ErrFinished = bitstream.ErrFinished
)
