package swf

import "math"

// ShapeBuilder provides a fluent interface for shape construction from
// absolute twips coordinates. It tracks the pen and emits the relative
// records a Shape stores. All methods return the builder for chaining.
//
// Example:
//
//	shape := swf.BuildShape().
//	    LineStyle(swf.LineStyle{Width: 20, Color: swf.Black}).
//	    MoveTo(4900, 1680).
//	    LineTo(4900, 4000).
//	    LineTo(2020, 4000).
//	    LineTo(2020, 1680).
//	    Close().
//	    Build()
type ShapeBuilder struct {
	shape        Shape
	x, y         int32
	startX       int32
	startY       int32
	pending      *StyleChange
	fill0, fill1 uint16
	line         uint16
}

// BuildShape starts a new shape builder.
func BuildShape() *ShapeBuilder {
	return &ShapeBuilder{}
}

// change returns the style change record that the next edge will follow,
// creating it when needed.
func (b *ShapeBuilder) change() *StyleChange {
	if b.pending == nil {
		b.pending = &StyleChange{}
	}
	return b.pending
}

func (b *ShapeBuilder) flush() {
	if b.pending != nil {
		b.shape.Records = append(b.shape.Records, b.pending)
		b.pending = nil
	}
}

// FillStyle adds f to the fill table and selects it as fill style 0.
func (b *ShapeBuilder) FillStyle(f FillStyle) *ShapeBuilder {
	b.shape.FillStyles = append(b.shape.FillStyles, f)
	return b.Fill0(uint16(len(b.shape.FillStyles)))
}

// LineStyle adds l to the line table and selects it.
func (b *ShapeBuilder) LineStyle(l LineStyle) *ShapeBuilder {
	b.shape.LineStyles = append(b.shape.LineStyles, l)
	return b.Line(uint16(len(b.shape.LineStyles)))
}

// Fill0 selects fill style 0 by 1-based index.
func (b *ShapeBuilder) Fill0(idx uint16) *ShapeBuilder {
	if idx != b.fill0 {
		b.change().FillStyle0 = idx
		b.fill0 = idx
	}
	return b
}

// Fill1 selects fill style 1 by 1-based index.
func (b *ShapeBuilder) Fill1(idx uint16) *ShapeBuilder {
	if idx != b.fill1 {
		b.change().FillStyle1 = idx
		b.fill1 = idx
	}
	return b
}

// Line selects the line style by 1-based index.
func (b *ShapeBuilder) Line(idx uint16) *ShapeBuilder {
	if idx != b.line {
		b.change().LineStyle = idx
		b.line = idx
	}
	return b
}

// MoveTo moves the pen to (x, y) without drawing and starts a new subpath.
func (b *ShapeBuilder) MoveTo(x, y int32) *ShapeBuilder {
	c := b.change()
	c.MoveDeltaX += x - b.x
	c.MoveDeltaY += y - b.y
	b.x, b.y = x, y
	b.startX, b.startY = x, y
	return b
}

// LineTo draws a straight edge to (x, y).
func (b *ShapeBuilder) LineTo(x, y int32) *ShapeBuilder {
	if x == b.x && y == b.y {
		return b
	}
	b.flush()
	b.shape.Records = append(b.shape.Records, StraightEdge{DeltaX: x - b.x, DeltaY: y - b.y})
	b.x, b.y = x, y
	return b
}

// QuadTo draws a quadratic Bezier curve with control point (cx, cy) ending
// at (x, y).
func (b *ShapeBuilder) QuadTo(cx, cy, x, y int32) *ShapeBuilder {
	b.flush()
	b.shape.Records = append(b.shape.Records, CurvedEdge{
		ControlDeltaX: cx - b.x,
		ControlDeltaY: cy - b.y,
		AnchorDeltaX:  x - b.x,
		AnchorDeltaY:  y - b.y,
	})
	b.x, b.y = x, y
	return b
}

// Close draws a straight edge back to the start of the current subpath.
func (b *ShapeBuilder) Close() *ShapeBuilder {
	return b.LineTo(b.startX, b.startY)
}

// Rect adds a closed rectangle.
func (b *ShapeBuilder) Rect(x, y, w, h int32) *ShapeBuilder {
	return b.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Circle adds a closed circle approximated by eight quadratic curves.
func (b *ShapeBuilder) Circle(cx, cy, r int32) *ShapeBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds a closed ellipse approximated by eight quadratic curves.
func (b *ShapeBuilder) Ellipse(cx, cy, rx, ry int32) *ShapeBuilder {
	const segments = 8
	step := 2 * math.Pi / segments
	// Control points lie on the tangents, 1/cos(step/2) away from the center.
	k := 1 / math.Cos(step/2)

	center := Pt(float64(cx), float64(cy))
	at := func(angle, scale float64) (int32, int32) {
		return center.Add(Pt(float64(rx)*scale*math.Cos(angle), float64(ry)*scale*math.Sin(angle))).Round()
	}

	b.MoveTo(at(0, 1))
	for i := 0; i < segments; i++ {
		a := float64(i) * step
		ctrlX, ctrlY := at(a+step/2, k)
		endX, endY := at(a+step, 1)
		b.QuadTo(ctrlX, ctrlY, endX, endY)
	}
	return b.Close()
}

// Build terminates the path with EndShape and returns the shape. The
// builder should not be used afterwards.
func (b *ShapeBuilder) Build() *Shape {
	b.flush()
	b.shape.Records = append(b.shape.Records, EndShape{})
	return &b.shape
}
