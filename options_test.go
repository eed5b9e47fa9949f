package swf

import (
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDefaultOptions(t *testing.T) {
	o := newOptions(nil)
	if o.version != LatestVersion {
		t.Errorf("version = %d, want %d", o.version, LatestVersion)
	}
	if o.endTag {
		t.Error("endTag should be off by default")
	}
	if o.strings != nil {
		t.Error("strings should be unset by default")
	}
}

func TestOptions_StringEncoding(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want encoding.Encoding
	}{
		{"default", nil, unicode.UTF8},
		{"version 6", []Option{WithVersion(6)}, unicode.UTF8},
		{"version 5", []Option{WithVersion(5)}, charmap.Windows1252},
		{"explicit", []Option{WithVersion(5), WithStringEncoding(charmap.ISO8859_1)}, charmap.ISO8859_1},
		{"explicit wins for new versions", []Option{WithStringEncoding(charmap.ISO8859_15)}, charmap.ISO8859_15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOptions(tt.opts)
			if got := o.stringEncoding(); got != tt.want {
				t.Errorf("stringEncoding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithEndTag(t *testing.T) {
	o := newOptions([]Option{WithEndTag()})
	if !o.endTag {
		t.Error("WithEndTag() did not set endTag")
	}
}

func TestDocument_UsesHeaderVersion(t *testing.T) {
	// The header version decides the string encoding, not WithVersion.
	doc := NewDocument(NewHeader(5, 100, 100, 12, 1), WithVersion(10))
	doc.Add(PlaceObject2{Depth: 1, CharacterID: 1, Name: "é"})
	out, err := doc.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if h := hexString(out[len(out)-2:]); h != "E900" {
		t.Errorf("name encoded as %s, want E900", h)
	}
}
