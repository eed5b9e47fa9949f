// Package preview rasterizes shapes on the CPU so they can be inspected
// without a player.
//
// Fills use the solid color of their style, bitmap fills are drawn as a flat
// gray. Strokes are drawn with square caps. The result is an approximation
// of what a player shows, intended for thumbnails and tests.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/swf"
)

// Options controls rendering.
type Options struct {
	// Scale is the number of output pixels per stage pixel (20 twips).
	// Zero means 1.
	Scale float64

	// Background fills the image before the shape is drawn. Nil leaves it
	// transparent.
	Background color.Color

	// Label is drawn in the bottom left corner when not empty.
	Label string
}

// bitmapGray stands in for bitmap fills.
var bitmapGray = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}

// curveSteps is the number of segments a curved edge is flattened into.
const curveSteps = 16

// Render draws s into a new image covering the shape's bounds.
func Render(s *swf.Shape, opts Options) (*image.RGBA, error) {
	bounds, err := s.Bounds()
	if err != nil {
		return nil, err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	k := scale / swf.TwipsPerPixel

	w := max(1, int(math.Ceil(float64(bounds.Width())*k)))
	h := max(1, int(math.Ceil(float64(bounds.Height())*k)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	origin := swf.Pt(float64(bounds.XMin), float64(bounds.YMin))
	toPixel := func(p swf.Point) (float32, float32) {
		q := p.Sub(origin).Mul(k)
		return float32(q.X), float32(q.Y)
	}

	var edges []swf.Edge
	var fills []*swf.FillStyle
	seen := make(map[*swf.FillStyle]bool)
	err = s.Walk(func(e swf.Edge) error {
		edges = append(edges, e)
		for _, f := range []*swf.FillStyle{e.FillStyle0, e.FillStyle1} {
			if f != nil && !seen[f] {
				seen[f] = true
				fills = append(fills, f)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, f := range fills {
		src, err := fillColor(f)
		if err != nil {
			return nil, err
		}
		z := vector.NewRasterizer(w, h)
		for _, e := range edges {
			switch f {
			case e.FillStyle0:
				addEdge(z, e, toPixel, false)
			case e.FillStyle1:
				addEdge(z, e, toPixel, true)
			}
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(src), image.Point{})
	}

	for _, e := range edges {
		if e.LineStyle == nil || e.LineStyle.Width == 0 {
			continue
		}
		var c color.Color = swf.White
		if e.LineStyle.Color != nil {
			c = e.LineStyle.Color
		}
		z := vector.NewRasterizer(w, h)
		strokeEdge(z, e, toPixel, e.HalfWidth()*k)
		z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	}

	if opts.Label != "" {
		if err := drawLabel(dst, opts.Label); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func fillColor(f *swf.FillStyle) (color.Color, error) {
	switch {
	case f.Type == swf.SolidFill:
		if f.Color == nil {
			return swf.White, nil
		}
		return f.Color, nil
	case f.Type.IsBitmap():
		return bitmapGray, nil
	default:
		return nil, fmt.Errorf("preview: %w: fill style type %#x", swf.ErrUnsupported, uint8(f.Type))
	}
}

// flatten returns the polyline of e.
func flatten(e swf.Edge) []swf.Point {
	if !e.Curved {
		return []swf.Point{e.From, e.To}
	}
	q := swf.QuadBez{P0: e.From, P1: e.Control, P2: e.To}
	pts := make([]swf.Point, 0, curveSteps+1)
	for i := 0; i <= curveSteps; i++ {
		pts = append(pts, q.Eval(float64(i)/curveSteps))
	}
	return pts
}

// addEdge adds the edge as an open path. The rasterizer accumulates signed
// coverage, so edges of a closed outline need no explicit closing.
func addEdge(z *vector.Rasterizer, e swf.Edge, toPixel func(swf.Point) (float32, float32), reverse bool) {
	pts := flatten(e)
	if reverse {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	z.MoveTo(toPixel(pts[0]))
	for _, p := range pts[1:] {
		z.LineTo(toPixel(p))
	}
}

// strokeEdge adds one rectangle per flattened segment, extended by hw at
// both ends.
func strokeEdge(z *vector.Rasterizer, e swf.Edge, toPixel func(swf.Point) (float32, float32), hw float64) {
	pts := flatten(e)
	for i := 1; i < len(pts); i++ {
		a, b := toPixelPoint(toPixel, pts[i-1]), toPixelPoint(toPixel, pts[i])
		d := b.Sub(a)
		l := math.Hypot(d.X, d.Y)
		if l == 0 {
			continue
		}
		u := d.Mul(hw / l)
		n := swf.Pt(-u.Y, u.X)
		a, b = a.Sub(u), b.Add(u)

		z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
		z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
		z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
		z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
		z.ClosePath()
	}
}

func toPixelPoint(toPixel func(swf.Point) (float32, float32), p swf.Point) swf.Point {
	x, y := toPixel(p)
	return swf.Pt(float64(x), float64(y))
}

// drawLabel writes text in Go Regular at the bottom left of dst.
func drawLabel(dst draw.Image, text string) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("preview: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("preview: create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(4, dst.Bounds().Dy()-4),
	}
	d.DrawString(text)
	return nil
}

// Fit scales img to exactly w x h pixels with Catmull-Rom resampling.
func Fit(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}
