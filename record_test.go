package swf

import (
	"errors"
	"testing"
)

func TestShapeRecords_MarshalBinary(t *testing.T) {
	oneLine := &StyleTables{LineStyles: []LineStyle{{Width: 1}}}

	tests := []struct {
		name   string
		r      ShapeRecord
		styles *StyleTables
		want   string
	}{
		{"empty style change", &StyleChange{}, &StyleTables{}, "00"},
		{"move and line style", &StyleChange{MoveDeltaX: 4900, MoveDeltaY: 1680, LineStyle: 1}, oneLine, "25C9920D21"},
		{"vertical edge", StraightEdge{DeltaX: 0, DeltaY: 2320}, &StyleTables{}, "ED4880"},
		{"horizontal edge", StraightEdge{DeltaX: -2880, DeltaY: 0}, &StyleTables{}, "ECA600"},
		{"general edge", StraightEdge{DeltaX: 10, DeltaY: -10}, &StyleTables{}, "CEAB00"},
		{"general edge floor width", StraightEdge{DeltaX: 1, DeltaY: 1}, &StyleTables{}, "C2A0"},
		{"zero edge", StraightEdge{}, &StyleTables{}, "C100"},
		{"curved edge", CurvedEdge{ControlDeltaX: 10, ControlDeltaY: 20, AnchorDeltaX: 30, AnchorDeltaY: -40}, &StyleTables{}, "945143D600"},
		{"end", EndShape{}, &StyleTables{}, "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := marshalRecord(tt.r, tt.styles)
			if err != nil {
				t.Fatalf("marshalRecord() error = %v", err)
			}
			if h := hexString(got); h != tt.want {
				t.Errorf("marshalRecord() = %s, want %s", h, tt.want)
			}
		})
	}
}

func TestShapeRecords_PublicMarshal(t *testing.T) {
	records := []interface{ MarshalBinary() ([]byte, error) }{
		&StyleChange{MoveDeltaX: 1},
		StraightEdge{DeltaY: 2320},
		CurvedEdge{ControlDeltaX: 1},
		EndShape{},
	}
	for _, r := range records {
		if _, err := r.MarshalBinary(); err != nil {
			t.Errorf("%T.MarshalBinary() error = %v", r, err)
		}
	}
}

func TestShapeRecords_Errors(t *testing.T) {
	tests := []struct {
		name    string
		r       ShapeRecord
		styles  *StyleTables
		wantErr error
	}{
		{"fill index past table", &StyleChange{FillStyle0: 2}, &StyleTables{FillStyles: make([]FillStyle, 1)}, ErrStyleIndex},
		{"fill1 index with no table", &StyleChange{FillStyle1: 1}, &StyleTables{}, ErrStyleIndex},
		{"line index past table", &StyleChange{LineStyle: 3}, &StyleTables{LineStyles: make([]LineStyle, 2)}, ErrStyleIndex},
		// 22 bits do not fit NumBits-2 in 4 bits.
		{"edge too long", StraightEdge{DeltaX: 1 << 20}, &StyleTables{}, ErrOverflow},
		{"curve too long", CurvedEdge{AnchorDeltaY: -1 << 20}, &StyleTables{}, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := marshalRecord(tt.r, tt.styles)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("marshalRecord() error = %v, want %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("marshalRecord() = %X, want no bytes", got)
			}
		})
	}
}
