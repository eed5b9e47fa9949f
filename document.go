package swf

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/swf/internal/bitstream"
)

// Signature is the three-byte signature that opens a file and selects how
// the rest of it is stored.
type Signature string

// File signatures. Only SignatureFWS is encoded.
const (
	SignatureFWS Signature = "FWS" // uncompressed
	SignatureCWS Signature = "CWS" // zlib compressed
	SignatureZWS Signature = "ZWS" // LZMA compressed
)

// LatestVersion is the file version used when none is given.
const LatestVersion = 10

// headerOverhead is the size of the fixed header fields: signature, version,
// file length, frame rate and frame count.
const headerOverhead = 3 + 1 + 4 + 2 + 2

// Header is the file header.
type Header struct {
	Signature  Signature
	Version    uint8
	FrameSize  Rect
	FrameRate  uint8
	FrameCount uint16
}

// NewHeader returns an uncompressed header for a stage of width x height
// twips.
func NewHeader(version uint8, width, height int32, rate uint8, count uint16) Header {
	return Header{
		Signature:  SignatureFWS,
		Version:    version,
		FrameSize:  NewRect(width, height),
		FrameRate:  rate,
		FrameCount: count,
	}
}

// encode writes the header for a tag stream of streamLen bytes.
func (h *Header) encode(w *bitstream.Writer, streamLen int) {
	switch h.Signature {
	case SignatureFWS:
	case SignatureCWS, SignatureZWS:
		w.SetError(fmt.Errorf("%w: %s compressed files", ErrUnsupported, h.Signature))
		return
	default:
		w.SetError(fmt.Errorf("swf: invalid signature %q", string(h.Signature)))
		return
	}

	rect, err := h.FrameSize.MarshalBinary()
	if err != nil {
		w.SetError(fmt.Errorf("frame size: %w", err))
		return
	}
	fileLen := uint64(headerOverhead) + uint64(len(rect)) + uint64(streamLen)
	if fileLen > 1<<32-1 {
		w.SetError(fmt.Errorf("%w: file length %d", ErrOverflow, fileLen))
		return
	}

	w.WriteBytes([]byte(h.Signature))
	w.WriteUint8(h.Version)
	w.WriteUint32(uint32(fileLen))
	w.WriteBytes(rect)
	w.WriteUint8(0) // frame rate fraction
	w.WriteUint8(h.FrameRate)
	w.WriteUint16(h.FrameCount)
}

// Document is a complete file: a header and the ordered tag stream.
// A Document is not safe for concurrent use.
type Document struct {
	Header Header
	Tags   []Tag

	opts options
}

// NewDocument creates an empty document with the given header.
func NewDocument(h Header, opts ...Option) *Document {
	d := &Document{
		Header: h,
		opts:   newOptions(opts),
	}
	return d
}

// Add appends tags to the tag stream.
func (d *Document) Add(tags ...Tag) {
	d.Tags = append(d.Tags, tags...)
}

// MarshalBinary encodes the whole file. Any failure aborts the encoding and
// no bytes are returned.
func (d *Document) MarshalBinary() ([]byte, error) {
	o := d.opts
	o.version = d.Header.Version

	tags := d.Tags
	if o.endTag && (len(tags) == 0 || tags[len(tags)-1].Code() != CodeEnd) {
		tags = append(tags[:len(tags):len(tags)], End{})
	}

	var stream []byte
	for i, t := range tags {
		var err error
		if stream, err = appendTag(stream, t, &o); err != nil {
			return nil, fmt.Errorf("swf: tag %d: %w", i, err)
		}
	}

	w := bitstream.NewWriter()
	d.Header.encode(w, len(stream))
	w.WriteBytes(stream)
	out, err := w.Finish()
	if err != nil {
		return nil, fmt.Errorf("swf: encoding header: %w", err)
	}

	Logger().Info("swf: document encoded",
		slog.Int("tags", len(tags)),
		slog.Int("file_length", len(out)))
	return out, nil
}

// WriteTo encodes the document and writes it to dst. Nothing is written
// when encoding fails.
func (d *Document) WriteTo(dst io.Writer) (int64, error) {
	b, err := d.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := dst.Write(b)
	return int64(n), err
}
