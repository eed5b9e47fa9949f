package swf

import (
	"github.com/gogpu/swf/internal/bitstream"
)

// Shape is the SHAPEWITHSTYLE structure: the style tables and the path
// records that refer to them.
type Shape struct {
	FillStyles []FillStyle
	LineStyles []LineStyle
	Records    []ShapeRecord
}

func (s *Shape) styles() *StyleTables {
	return &StyleTables{FillStyles: s.FillStyles, LineStyles: s.LineStyles}
}

func (s *Shape) encode(w *bitstream.Writer) {
	t := s.styles()
	t.encode(w)

	rw := newRecordWriter(w, t)
	rw.writeIndexWidths()
	for _, r := range s.Records {
		rw.write(r)
	}
	w.Align()
}

// MarshalBinary returns the encoded SHAPEWITHSTYLE structure.
func (s *Shape) MarshalBinary() ([]byte, error) {
	return marshal(s.encode)
}
