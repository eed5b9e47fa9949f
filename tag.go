package swf

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/swf/internal/bitstream"
)

// Tag is one record of the tag stream. The set of tags is closed; use
// RawTag to emit a tag this package does not model.
type Tag interface {
	// Code returns the tag type written in the record header.
	Code() TagCode

	headerForm() headerForm
	encodePayload(w *bitstream.Writer, o *options)
}

// MarshalTag returns the complete record of t: header followed by payload.
// Options select the string encoding and the file version that version
// dependent fields assume.
func MarshalTag(t Tag, opts ...Option) ([]byte, error) {
	o := newOptions(opts)
	b, err := appendTag(nil, t, &o)
	if err != nil {
		return nil, fmt.Errorf("swf: %w", err)
	}
	return b, nil
}

// appendTag encodes the payload of t into its own writer, measures it and
// appends header and payload to dst.
func appendTag(dst []byte, t Tag, o *options) ([]byte, error) {
	code := t.Code()

	w := bitstream.NewWriter()
	t.encodePayload(w, o)
	payload, err := w.Finish()
	if err != nil {
		return dst, fmt.Errorf("encoding %v: %w", code, err)
	}

	dst, err = appendHeader(dst, t.headerForm(), code, len(payload))
	if err != nil {
		return dst, fmt.Errorf("encoding %v: %w", code, err)
	}

	Logger().Debug("swf: tag encoded",
		slog.String("tag", code.String()),
		slog.Int("length", len(payload)))

	return append(dst, payload...), nil
}

// marshal runs encode on a fresh writer and returns the finished bytes.
func marshal(encode func(w *bitstream.Writer)) ([]byte, error) {
	w := bitstream.NewWriter()
	encode(w)
	return w.Finish()
}

// writeString writes s as a null-terminated STRING in the configured
// encoding.
func writeString(w *bitstream.Writer, s string, o *options) {
	if w.Err() != nil {
		return
	}
	if strings.IndexByte(s, 0) >= 0 {
		w.SetError(fmt.Errorf("string %q contains a null byte", s))
		return
	}
	b, err := o.stringEncoding().NewEncoder().Bytes([]byte(s))
	if err != nil {
		w.SetError(fmt.Errorf("encoding string %q: %w", s, err))
		return
	}
	w.WriteBytes(b)
	w.WriteUint8(0)
}
