package preview

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/swf"
)

func TestRender_Fill(t *testing.T) {
	red := swf.RGB{R: 0xFF}
	shape := swf.BuildShape().
		FillStyle(swf.SolidFillStyle(red)).
		Rect(0, 0, 200, 200).
		Build()

	img, err := Render(shape, Options{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 10 || h != 10 {
		t.Fatalf("image is %dx%d, want 10x10", w, h)
	}

	got := img.RGBAAt(5, 5)
	if got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("pixel inside = %v, want opaque red", got)
	}
}

func TestRender_Stroke(t *testing.T) {
	shape := swf.BuildShape().
		LineStyle(swf.LineStyle{Width: 40, Color: swf.Black}).
		Rect(0, 0, 200, 200).
		Build()

	img, err := Render(shape, Options{Background: swf.White})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// Bounds grow by half the stroke width: 12x12 pixels.
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 12 || h != 12 {
		t.Fatalf("image is %dx%d, want 12x12", w, h)
	}

	if got := img.RGBAAt(0, 6); got != (color.RGBA{A: 0xFF}) {
		t.Errorf("pixel on the outline = %v, want opaque black", got)
	}
	if got := img.RGBAAt(6, 6); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("pixel inside = %v, want the white background", got)
	}
}

func TestRender_Scale(t *testing.T) {
	shape := swf.BuildShape().
		FillStyle(swf.SolidFillStyle(swf.Black)).
		Circle(0, 0, 100).
		Build()

	img, err := Render(shape, Options{Scale: 4})
	if err != nil {
		t.Fatal(err)
	}
	if w := img.Bounds().Dx(); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	if got := img.RGBAAt(20, 20); got.A != 0xFF {
		t.Errorf("center alpha = %d, want 255", got.A)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner alpha = %d, want 0", got.A)
	}
}

func TestRender_Label(t *testing.T) {
	shape := swf.BuildShape().
		FillStyle(swf.SolidFillStyle(swf.White)).
		Rect(0, 0, 2000, 600).
		Build()

	img, err := Render(shape, Options{Label: "swf"})
	if err != nil {
		t.Fatal(err)
	}

	dark := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c := img.RGBAAt(x, y); c.R < 0x80 && c.A == 0xFF {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("label was not drawn")
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(&swf.Shape{}, Options{}); !errors.Is(err, swf.ErrNoEdges) {
		t.Errorf("Render(empty) error = %v, want ErrNoEdges", err)
	}

	gradient := swf.BuildShape().
		FillStyle(swf.FillStyle{Type: swf.LinearGradientFill}).
		Rect(0, 0, 100, 100).
		Build()
	if _, err := Render(gradient, Options{}); !errors.Is(err, swf.ErrUnsupported) {
		t.Errorf("Render(gradient) error = %v, want ErrUnsupported", err)
	}
}

func TestFit(t *testing.T) {
	shape := swf.BuildShape().
		FillStyle(swf.SolidFillStyle(swf.Black)).
		Rect(0, 0, 200, 200).
		Build()
	img, err := Render(shape, Options{})
	if err != nil {
		t.Fatal(err)
	}

	thumb := Fit(img, 32, 16)
	if w, h := thumb.Bounds().Dx(), thumb.Bounds().Dy(); w != 32 || h != 16 {
		t.Errorf("Fit() = %dx%d, want 32x16", w, h)
	}
	if got := thumb.RGBAAt(16, 8); got.A < 0xF0 {
		t.Errorf("center alpha = %d, want opaque", got.A)
	}
}
