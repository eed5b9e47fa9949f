package swf

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/swf/internal/bitstream"
)

func TestFillStyle_MarshalBinary(t *testing.T) {
	tests := []struct {
		name string
		f    FillStyle
		want string
	}{
		{"default is white", FillStyle{}, "00FFFFFF"},
		{"solid rgb", SolidFillStyle(RGB{0x33, 0x66, 0x99}), "00336699"},
		{"solid rgba", SolidFillStyle(RGBA{1, 2, 3, 4}), "0001020304"},
		{"clipped bitmap", FillStyle{Type: ClippedBitmapFill, BitmapID: 7}, "41070000"},
		{"repeating bitmap with matrix", FillStyle{Type: RepeatingBitmapFill, BitmapID: 1, BitmapMatrix: TranslateMatrix(100, 200)}, "40010012646400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}
			if h := hexString(got); h != tt.want {
				t.Errorf("MarshalBinary() = %s, want %s", h, tt.want)
			}
		})
	}
}

func TestFillStyle_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		f    FillStyle
	}{
		{"linear gradient", FillStyle{Type: LinearGradientFill, Gradient: &Gradient{}}},
		{"radial gradient without gradient", FillStyle{Type: RadialGradientFill}},
		{"focal gradient", FillStyle{Type: FocalRadialGradientFill, FocalGradient: &FocalGradient{FocalPoint: 0.5}}},
		{"unknown type", FillStyle{Type: 0x20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.MarshalBinary()
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("MarshalBinary() error = %v, want ErrUnsupported", err)
			}
			if got != nil {
				t.Errorf("MarshalBinary() = %X, want no bytes", got)
			}
		})
	}
}

func TestGradientStubs(t *testing.T) {
	stubs := []interface{ MarshalBinary() ([]byte, error) }{
		&Gradient{},
		&FocalGradient{},
		GradRecord{Ratio: 128, Color: Black},
	}
	for _, s := range stubs {
		if _, err := s.MarshalBinary(); !errors.Is(err, ErrUnsupported) {
			t.Errorf("%T.MarshalBinary() error = %v, want ErrUnsupported", s, err)
		}
	}
}

func TestLineStyle_MarshalBinary(t *testing.T) {
	tests := []struct {
		name string
		l    LineStyle
		want string
	}{
		{"black hairline", LineStyle{Width: 20, Color: Black}, "1400000000"},
		{"default color", LineStyle{Width: 1}, "0100FFFFFF"},
		{"rgba", LineStyle{Width: 0x1234, Color: RGBA{1, 2, 3, 4}}, "341201020304"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.l.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}
			if h := hexString(got); h != tt.want {
				t.Errorf("MarshalBinary() = %s, want %s", h, tt.want)
			}
		})
	}
}

func TestWriteStyleCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "00"},
		{1, "01"},
		{254, "FE"},
		{255, "FFFF00"},
		{256, "FF0001"},
		{0xFFFF, "FFFFFF"},
	}

	for _, tt := range tests {
		got, err := marshal(func(w *bitstream.Writer) { writeStyleCount(w, tt.n) })
		if err != nil {
			t.Fatalf("writeStyleCount(%d) error = %v", tt.n, err)
		}
		if h := hexString(got); h != tt.want {
			t.Errorf("writeStyleCount(%d) = %s, want %s", tt.n, h, tt.want)
		}
	}

	if _, err := marshal(func(w *bitstream.Writer) { writeStyleCount(w, 0x10000) }); !errors.Is(err, ErrOverflow) {
		t.Errorf("writeStyleCount(65536) error = %v, want ErrOverflow", err)
	}
}

func TestStyleTables_CountBoundary(t *testing.T) {
	line := LineStyle{Width: 20, Color: Black}

	tests := []struct {
		name       string
		n          int
		wantPrefix string
		wantLen    int
	}{
		// Empty fill table, then the line table.
		{"254 styles", 254, "00FE", 2 + 254*5},
		{"255 styles", 255, "00FFFF00", 4 + 255*5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &StyleTables{LineStyles: make([]LineStyle, tt.n)}
			for i := range st.LineStyles {
				st.LineStyles[i] = line
			}
			got, err := marshal(st.encode)
			if err != nil {
				t.Fatalf("encode error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
			if !bytes.HasPrefix(got, unhex(t, tt.wantPrefix)) {
				t.Errorf("prefix = %X, want %s", got[:len(tt.wantPrefix)/2], tt.wantPrefix)
			}
			if h := hexString(got[len(got)-5:]); h != "1400000000" {
				t.Errorf("last style = %s", h)
			}
		})
	}
}

func TestStyleTables_IndexWidths(t *testing.T) {
	tests := []struct {
		fills, lines       int
		wantFill, wantLine uint
	}{
		{0, 0, 0, 0},
		{1, 0, 1, 0},
		{2, 3, 2, 2},
		{4, 255, 3, 8},
	}
	for _, tt := range tests {
		st := &StyleTables{FillStyles: make([]FillStyle, tt.fills), LineStyles: make([]LineStyle, tt.lines)}
		f, l := st.indexWidths()
		if f != tt.wantFill || l != tt.wantLine {
			t.Errorf("indexWidths(%d, %d) = %d, %d, want %d, %d", tt.fills, tt.lines, f, l, tt.wantFill, tt.wantLine)
		}
	}
}
