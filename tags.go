package swf

import (
	"fmt"

	"github.com/gogpu/swf/internal/bitstream"
)

// End marks the end of the tag stream, or of a sprite's tag list.
type End struct{}

// Code implements Tag.
func (End) Code() TagCode { return CodeEnd }

func (End) headerForm() headerForm                          { return shortHeader }
func (End) encodePayload(w *bitstream.Writer, o *options) {}

// ShowFrame displays the display list and advances to the next frame.
type ShowFrame struct{}

// Code implements Tag.
func (ShowFrame) Code() TagCode { return CodeShowFrame }

func (ShowFrame) headerForm() headerForm                          { return shortHeader }
func (ShowFrame) encodePayload(w *bitstream.Writer, o *options) {}

// SetBackgroundColor sets the background color of the display. A nil Color
// is written as white.
type SetBackgroundColor struct {
	Color *RGB
}

// Code implements Tag.
func (SetBackgroundColor) Code() TagCode { return CodeSetBackgroundColor }

func (SetBackgroundColor) headerForm() headerForm { return shortHeader }

func (t SetBackgroundColor) encodePayload(w *bitstream.Writer, o *options) {
	c := White
	if t.Color != nil {
		c = *t.Color
	}
	c.encodeColor(w)
}

// FileAttributes describes properties of the file. It is required as the
// first tag of files of version 8 and later.
type FileAttributes struct {
	UseDirectBlit bool
	UseGPU        bool
	HasMetadata   bool
	ActionScript3 bool
	UseNetwork    bool
}

// Code implements Tag.
func (FileAttributes) Code() TagCode { return CodeFileAttributes }

func (FileAttributes) headerForm() headerForm { return shortHeader }

func (t FileAttributes) encodePayload(w *bitstream.Writer, o *options) {
	w.WriteUBits(0, 1) // Reserved
	w.WriteBit(t.UseDirectBlit)
	w.WriteBit(t.UseGPU)
	w.WriteBit(t.HasMetadata)
	w.WriteBit(t.ActionScript3)
	w.WriteUBits(0, 2) // Reserved
	w.WriteBit(t.UseNetwork)
	w.WriteUBits(0, 24) // Reserved
}

// RemoveObject2 removes the character at Depth from the display list.
type RemoveObject2 struct {
	Depth uint16
}

// Code implements Tag.
func (RemoveObject2) Code() TagCode { return CodeRemoveObject2 }

func (RemoveObject2) headerForm() headerForm { return shortHeader }

func (t RemoveObject2) encodePayload(w *bitstream.Writer, o *options) {
	w.WriteUint16(t.Depth)
}

// Metadata carries an XML metadata document, usually RDF. Set
// FileAttributes.HasMetadata when a file contains one.
type Metadata struct {
	XML string
}

// Code implements Tag.
func (Metadata) Code() TagCode { return CodeMetadata }

func (Metadata) headerForm() headerForm { return longHeader }

func (t Metadata) encodePayload(w *bitstream.Writer, o *options) {
	writeString(w, t.XML, o)
}

// RawTag is a tag whose payload is already encoded. Payloads shorter than
// 63 bytes get a short header, longer ones a long header.
type RawTag struct {
	TagCode TagCode
	Payload []byte
}

// Code implements Tag.
func (t RawTag) Code() TagCode { return t.TagCode }

func (t RawTag) headerForm() headerForm {
	if len(t.Payload) < longLength {
		return shortHeader
	}
	return longHeader
}

func (t RawTag) encodePayload(w *bitstream.Writer, o *options) {
	if t.TagCode > maxTagCode {
		w.SetError(fmt.Errorf("%w: tag code %d", ErrOverflow, t.TagCode))
		return
	}
	w.WriteBytes(t.Payload)
}
