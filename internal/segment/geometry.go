// Package segment is the layout and rendering engine behind segbar's
// segmented control: a row of mutually exclusive cells that share one
// selection indicator which can slide continuously between them.
//
// There is no overlay spanning several cells. Every cell draws its own copy
// of the indicator fill, clipped to a window anchored at its left or right
// edge and translated by how far the row position is from the cell. Taken
// together the per-cell slivers read as a single moving shape.
//
// Data flow:
//
//	Controller (select / drag / tick)
//	    └─► Row.SetPosition
//	          └─► ClipModel.Update ─► Cell.clip for every cell
//	                └─► Row.Draw(Surface)
//
// Everything here runs on the caller's goroutine; nothing blocks and nothing
// needs a lock.
package segment

import "math"

// Point is a position in layout units (columns, rows).
type Point struct {
	X, Y float64
}

// Size is a width/height pair in layout units.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. Max is exclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// RectXYWH builds a Rect from an origin and a size.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

func (r Rect) Width() float64 { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool { return r.MaxX <= r.MinX || r.MaxY <= r.MinY }

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Intersect returns the overlap of r and o, or the zero Rect when they don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		MinX: math.Max(r.MinX, o.MinX),
		MinY: math.Max(r.MinY, o.MinY),
		MaxX: math.Min(r.MaxX, o.MaxX),
		MaxY: math.Min(r.MaxY, o.MaxY),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Insets is padding around content.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Symmetric returns insets with the same vertical and horizontal padding.
func Symmetric(vertical, horizontal float64) Insets {
	return Insets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

func (in Insets) horizontal() float64 { return in.Left + in.Right }
func (in Insets) vertical() float64 { return in.Top + in.Bottom }

// MeasureMode says how a parent constrains one axis of a child.
type MeasureMode int

const (
	// Unspecified lets the child take its desired size.
	Unspecified MeasureMode = iota
	// AtMost caps the child at the constraint size.
	AtMost
	// Exact forces the constraint size.
	Exact
)

func (m MeasureMode) String() string {
	switch m {
	case Exact:
		return "exact"
	case AtMost:
		return "at-most"
	default:
		return "unspecified"
	}
}

// AxisConstraint is the constraint for one axis.
type AxisConstraint struct {
	Size float64
	Mode MeasureMode
}

// Resolve picks the final extent for a desired size. Segments shrink to fit
// their content unless told otherwise, so AtMost never grows the result.
func (c AxisConstraint) Resolve(desired float64) float64 {
	limit := math.Max(c.Size, 0)
	desired = math.Max(desired, 0)
	switch c.Mode {
	case Exact:
		return limit
	case AtMost:
		return math.Min(desired, limit)
	default:
		return desired
	}
}

// Constraints bundles both axes.
type Constraints struct {
	Width, Height AxisConstraint
}

// ExactSize returns constraints that pin both axes.
func ExactSize(w, h float64) Constraints {
	return Constraints{
		Width:  AxisConstraint{Size: w, Mode: Exact},
		Height: AxisConstraint{Size: h, Mode: Exact},
	}
}

// Loose returns constraints that cap both axes.
func Loose(w, h float64) Constraints {
	return Constraints{
		Width:  AxisConstraint{Size: w, Mode: AtMost},
		Height: AxisConstraint{Size: h, Mode: AtMost},
	}
}

// Measurable is anything that can report a size for a set of constraints.
// Both *Cell and *Row implement it.
type Measurable interface {
	Measure(c Constraints) Size
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
