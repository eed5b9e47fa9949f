package swf

import "fmt"

// Edge is a straight or curved edge of a shape resolved to absolute twips,
// together with the styles active when it is drawn. Nil styles mean none.
type Edge struct {
	From, Control, To Point
	Curved            bool

	FillStyle0 *FillStyle
	FillStyle1 *FillStyle
	LineStyle  *LineStyle
}

// HalfWidth returns half the stroke width, or 0 for an unstroked edge.
func (e Edge) HalfWidth() float64 {
	if e.LineStyle == nil {
		return 0
	}
	return float64(e.LineStyle.Width) / 2
}

// Bounds returns the bounding box of the edge, stroke included.
func (e Edge) Bounds() Box {
	var b Box
	if e.Curved {
		b = QuadBez{P0: e.From, P1: e.Control, P2: e.To}.BoundingBox()
	} else {
		b = Line{P0: e.From, P1: e.To}.BoundingBox()
	}
	return b.Outset(e.HalfWidth())
}

// Walk interprets the records with a virtual pen starting at the origin
// and calls fn for every edge in order. Moves add their deltas to the pen
// and EndShape returns it to the origin. An error from fn stops the walk
// and is returned.
func (s *Shape) Walk(fn func(Edge) error) error {
	var (
		pen          Point
		fills        = s.FillStyles
		lines        = s.LineStyles
		fill0, fill1 *FillStyle
		line         *LineStyle
	)

	lookupFill := func(idx uint16) (*FillStyle, error) {
		if int(idx) > len(fills) {
			return nil, fmt.Errorf("%w: fill style %d with %d styles", ErrStyleIndex, idx, len(fills))
		}
		return &fills[idx-1], nil
	}

	for i, r := range s.Records {
		switch r := r.(type) {
		case *StyleChange:
			var err error
			if r.NewStyles != nil {
				fills, lines = r.NewStyles.FillStyles, r.NewStyles.LineStyles
				fill0, fill1, line = nil, nil, nil
			}
			if r.hasMove() {
				pen = pen.Add(Pt(float64(r.MoveDeltaX), float64(r.MoveDeltaY)))
			}
			if r.FillStyle0 != 0 {
				if fill0, err = lookupFill(r.FillStyle0); err != nil {
					return fmt.Errorf("swf: record %d: %w", i, err)
				}
			}
			if r.FillStyle1 != 0 {
				if fill1, err = lookupFill(r.FillStyle1); err != nil {
					return fmt.Errorf("swf: record %d: %w", i, err)
				}
			}
			if r.LineStyle != 0 {
				if int(r.LineStyle) > len(lines) {
					return fmt.Errorf("swf: record %d: %w: line style %d with %d styles",
						i, ErrStyleIndex, r.LineStyle, len(lines))
				}
				line = &lines[r.LineStyle-1]
			}

		case StraightEdge:
			to := pen.Add(Pt(float64(r.DeltaX), float64(r.DeltaY)))
			e := Edge{From: pen, To: to, FillStyle0: fill0, FillStyle1: fill1, LineStyle: line}
			if err := fn(e); err != nil {
				return err
			}
			pen = to

		case CurvedEdge:
			ctrl := pen.Add(Pt(float64(r.ControlDeltaX), float64(r.ControlDeltaY)))
			to := pen.Add(Pt(float64(r.AnchorDeltaX), float64(r.AnchorDeltaY)))
			e := Edge{From: pen, Control: ctrl, To: to, Curved: true,
				FillStyle0: fill0, FillStyle1: fill1, LineStyle: line}
			if err := fn(e); err != nil {
				return err
			}
			pen = to

		case EndShape:
			pen = Point{}

		default:
			return fmt.Errorf("swf: record %d: unknown shape record %T", i, r)
		}
	}
	return nil
}

// Bounds returns the smallest rectangle covering every edge of the shape,
// strokes included, rounded outward to whole twips. A shape without edges
// has no bounds and fails with ErrNoEdges.
func (s *Shape) Bounds() (Rect, error) {
	var (
		box   Box
		edges int
	)
	err := s.Walk(func(e Edge) error {
		if edges == 0 {
			box = e.Bounds()
		} else {
			box = box.Union(e.Bounds())
		}
		edges++
		return nil
	})
	if err != nil {
		return Rect{}, err
	}
	if edges == 0 {
		return Rect{}, ErrNoEdges
	}
	return box.Rect(), nil
}
