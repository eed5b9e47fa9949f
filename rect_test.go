package swf

import (
	"errors"
	"math"
	"testing"
)

func TestRect_MarshalBinary(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want string
	}{
		{"stage", NewRect(11000, 8000), "7800055F00000FA000"},
		{"shape bounds", Rect{XMin: 2010, XMax: 4910, YMin: 1670, YMax: 4010}, "70FB49970D0C7D50"},
		{"negative", Rect{XMin: -100, XMax: 100, YMin: -1, YMax: 1}, "44E327F808"},
		{"zero uses the width floor", Rect{}, "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}
			if h := hexString(got); h != tt.want {
				t.Errorf("MarshalBinary() = %s, want %s", h, tt.want)
			}
		})
	}
}

func TestRect_Overflow(t *testing.T) {
	// 32 bits do not fit the 5-bit width field.
	_, err := Rect{XMin: math.MinInt32}.MarshalBinary()
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("MarshalBinary() error = %v, want ErrOverflow", err)
	}
}

func TestRect_Geometry(t *testing.T) {
	r := Rect{XMin: 10, XMax: 30, YMin: -5, YMax: 5}
	if r.Width() != 20 || r.Height() != 10 {
		t.Errorf("Width, Height = %d, %d, want 20, 10", r.Width(), r.Height())
	}

	u := r.Union(Rect{XMin: 0, XMax: 15, YMin: 0, YMax: 50})
	if want := (Rect{XMin: 0, XMax: 30, YMin: -5, YMax: 50}); u != want {
		t.Errorf("Union() = %+v, want %+v", u, want)
	}

	o := r.Outset(10)
	if want := (Rect{XMin: 0, XMax: 40, YMin: -15, YMax: 15}); o != want {
		t.Errorf("Outset() = %+v, want %+v", o, want)
	}
}
