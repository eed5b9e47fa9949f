package swf

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Option configures how a Document or a single tag is encoded.
//
// Example:
//
//	// Latin-1 names regardless of the file version
//	doc := swf.NewDocument(header, swf.WithStringEncoding(charmap.ISO8859_1))
//
//	// Terminate the tag stream automatically
//	doc := swf.NewDocument(header, swf.WithEndTag())
type Option func(*options)

// options holds optional encoding configuration.
type options struct {
	version uint8
	strings encoding.Encoding
	endTag  bool
}

// defaultOptions returns the options used when none are given.
func defaultOptions() options {
	return options{
		version: LatestVersion,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStringEncoding sets the character encoding of every STRING field
// (object names, metadata). By default files of version 6 and later use
// UTF-8 and older files use Windows-1252.
func WithStringEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.strings = enc
	}
}

// WithVersion sets the file version assumed by MarshalTag. Documents always
// use the version of their header.
func WithVersion(version uint8) Option {
	return func(o *options) {
		o.version = version
	}
}

// WithEndTag makes a Document append an End tag when its tag list does not
// already end with one.
func WithEndTag() Option {
	return func(o *options) {
		o.endTag = true
	}
}

// stringEncoding returns the encoding used for STRING fields.
func (o *options) stringEncoding() encoding.Encoding {
	if o.strings != nil {
		return o.strings
	}
	if o.version >= 6 {
		return unicode.UTF8
	}
	return charmap.Windows1252
}
