package swf

import (
	"fmt"
	"strconv"
)

// TagCode identifies the type of a tag in the tag stream.
type TagCode uint16

// Tag codes of the tags this package encodes.
const (
	CodeEnd                TagCode = 0
	CodeShowFrame          TagCode = 1
	CodeDefineShape        TagCode = 2
	CodeSetBackgroundColor TagCode = 9
	CodeDefineShape2       TagCode = 22
	CodePlaceObject2       TagCode = 26
	CodeRemoveObject2      TagCode = 28
	CodeDefineShape3       TagCode = 32
	CodeFileAttributes     TagCode = 69
	CodeMetadata           TagCode = 77
)

var tagNames = map[TagCode]string{
	CodeEnd:                "End",
	CodeShowFrame:          "ShowFrame",
	CodeDefineShape:        "DefineShape",
	CodeSetBackgroundColor: "SetBackgroundColor",
	CodeDefineShape2:       "DefineShape2",
	CodePlaceObject2:       "PlaceObject2",
	CodeRemoveObject2:      "RemoveObject2",
	CodeDefineShape3:       "DefineShape3",
	CodeFileAttributes:     "FileAttributes",
	CodeMetadata:           "Metadata",
}

// String returns the tag name, or the numeric code for unknown tags.
func (c TagCode) String() string {
	if name, ok := tagNames[c]; ok {
		return name
	}
	return "Tag(" + strconv.Itoa(int(c)) + ")"
}

const (
	// maxTagCode is the largest code that fits the 10-bit code field.
	maxTagCode = 1<<10 - 1

	// longLength is the length sentinel of the long header form. Short
	// headers carry lengths strictly below it.
	longLength = 0x3F
)

// headerForm selects one of the two record header encodings.
type headerForm int

const (
	shortHeader headerForm = iota
	longHeader
)

// appendShortHeader appends the 2-byte RECORDHEADER for a payload shorter
// than 63 bytes.
func appendShortHeader(dst []byte, code TagCode, length int) ([]byte, error) {
	if code > maxTagCode {
		return dst, fmt.Errorf("%w: tag code %d", ErrOverflow, code)
	}
	if length < 0 || length >= longLength {
		return dst, fmt.Errorf("%w: %v payload of %d bytes needs a long header", ErrOverflow, code, length)
	}
	v := uint16(code)<<6 | uint16(length)
	return append(dst, byte(v), byte(v>>8)), nil
}

// appendLongHeader appends the 6-byte RECORDHEADER: the code with the length
// sentinel, then the 32-bit length.
func appendLongHeader(dst []byte, code TagCode, length int) ([]byte, error) {
	if code > maxTagCode {
		return dst, fmt.Errorf("%w: tag code %d", ErrOverflow, code)
	}
	if length < 0 || uint64(length) > 1<<32-1 {
		return dst, fmt.Errorf("%w: %v payload of %d bytes", ErrOverflow, code, length)
	}
	v := uint16(code)<<6 | longLength
	l := uint32(length)
	return append(dst, byte(v), byte(v>>8), byte(l), byte(l>>8), byte(l>>16), byte(l>>24)), nil
}

func appendHeader(dst []byte, form headerForm, code TagCode, length int) ([]byte, error) {
	if form == longHeader {
		return appendLongHeader(dst, code, length)
	}
	return appendShortHeader(dst, code, length)
}
