package segment

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Style is the row-wide look. Patterns stand in for drawables: a glyph
// repeated over the area instead of a flat colour.
type Style struct {
	Radius            float64
	BorderWidth       float64
	BorderColor       lipgloss.Color
	DividerWidth      float64
	DividerColor      lipgloss.Color
	DividerGlyph      string
	Background        lipgloss.Color
	BackgroundPattern string
	Selector          lipgloss.Color
	SelectorPattern   string
}

type rowPaints struct {
	background Paint
	selector   Paint
	border     Paint
	divider    Paint
}

func newRowPaints(s Style) rowPaints {
	glyph := s.DividerGlyph
	if glyph == "" {
		glyph = "│"
	}
	return rowPaints{
		background: Paint{Color: s.Background, Pattern: s.BackgroundPattern},
		selector:   Paint{Color: s.Selector, Pattern: s.SelectorPattern},
		border:     Paint{Color: s.BorderColor},
		divider:    Paint{Color: s.DividerColor, Pattern: glyph},
	}
}

// Row owns the ordered cells of one segmented control, the row position and
// the clip model that maps that position onto the cells.
//
// The position is only meant to be moved by a Controller; Row.SetPosition
// is exported so the controller can live behind the Track interface.
type Row struct {
	style    Style
	paints   rowPaints
	measurer TextMeasurer

	cells    []*Cell
	position float64
	clip     ClipModel
	size     Size
}

// NewRow returns an empty row.
func NewRow(style Style) *Row {
	return &Row{
		style:    style,
		paints:   newRowPaints(style),
		measurer: RuneWidth{},
	}
}

// SetMeasurer replaces the text measurer used for cells appended afterwards.
func (r *Row) SetMeasurer(m TextMeasurer) {
	if m != nil {
		r.measurer = m
	}
}

// Style returns the row style.
func (r *Row) Style() Style { return r.style }

// Append adds a cell at the right end of the row.
func (r *Row) Append(spec CellSpec) *Cell {
	c := newCell(len(r.cells), spec, r.measurer)
	c.leftmost = c.index == 0
	c.rightmost = true
	if n := len(r.cells); n > 0 {
		r.cells[n-1].rightmost = false
	}
	r.cells = append(r.cells, c)
	r.SetPosition(r.position)
	return c
}

// Len is the number of cells.
func (r *Row) Len() int { return len(r.cells) }

// Cell returns the cell at i, or nil when out of range.
func (r *Row) Cell(i int) *Cell {
	if i < 0 || i >= len(r.cells) {
		return nil
	}
	return r.cells[i]
}

// Cells returns the cells in visual order. The slice must not be modified.
func (r *Row) Cells() []*Cell { return r.cells }

// Position is the current continuous position in [0, Len()-1].
func (r *Row) Position() float64 { return r.position }

// Direction is the direction of the last position change.
func (r *Row) Direction() Direction { return r.clip.Direction() }

// SetPosition clamps p, recomputes the clip model and hands every cell its
// new clip state before returning, so a following Draw never sees clip
// state from an older position.
func (r *Row) SetPosition(p float64) {
	n := len(r.cells)
	if n == 0 {
		r.clip.Update(0, 0)
		r.position = 0
		return
	}
	states := r.clip.Update(p, n)
	r.position = r.clip.Committed()
	for i, c := range r.cells {
		c.clip = states[i]
	}
}

// Compensation is the width of divider that cell i gives up: a full divider
// for interior cells (half on each side), half for the two edge cells, and
// nothing for a single cell.
func (r *Row) Compensation(i int) float64 {
	n := len(r.cells)
	if n <= 1 || i < 0 || i >= n {
		return 0
	}
	if i == 0 || i == n-1 {
		return r.style.DividerWidth / 2
	}
	return r.style.DividerWidth
}

// Measure implements Measurable. The natural width is the narrowest row in
// which every weighted cell still fits its content at its weight share.
func (r *Row) Measure(c Constraints) Size {
	bw := r.style.BorderWidth
	inner := AxisConstraint{Size: c.Height.Size - 2*bw, Mode: c.Height.Mode}
	if inner.Mode == Exact {
		inner.Mode = AtMost
	}

	var fixed, weights, unit, height float64
	for i, cell := range r.cells {
		nat := cell.Measure(Constraints{Width: AxisConstraint{Mode: Unspecified}, Height: inner})
		height = max(height, nat.Height)
		if cell.sizing.Fixed() {
			fixed += cell.sizing.FixedWidth
			continue
		}
		weights += cell.sizing.Weight
		unit = max(unit, (nat.Width+r.Compensation(i))/cell.sizing.Weight)
	}

	return Size{
		Width:  c.Width.Resolve(2*bw + fixed + unit*weights),
		Height: c.Height.Resolve(2*bw + height),
	}
}

// Size is the size passed to the last Layout.
func (r *Row) Size() Size { return r.size }

// Layout assigns every cell its slot and body for a row of the given size.
// Fixed cells take their width first (scaled down if they don't fit) and
// weighted cells share the remainder. Slot edges are snapped so dividers
// start on whole units.
func (r *Row) Layout(size Size) {
	r.size = size
	bw := r.style.BorderWidth
	inner := Rect{MinX: bw, MinY: bw, MaxX: size.Width - bw, MaxY: size.Height - bw}
	if inner.Empty() {
		for _, c := range r.cells {
			c.place(Rect{}, Rect{})
		}
		return
	}

	avail := inner.Width()
	var fixed, weights float64
	for _, c := range r.cells {
		if c.sizing.Fixed() {
			fixed += c.sizing.FixedWidth
		} else {
			weights += c.sizing.Weight
		}
	}
	fixedScale := 1.0
	if fixed > avail {
		fixedScale = avail / fixed
	}
	rest := max(avail-fixed*fixedScale, 0)

	dw := r.style.DividerWidth
	x, acc := inner.MinX, 0.0
	for i, c := range r.cells {
		if c.sizing.Fixed() {
			acc += c.sizing.FixedWidth * fixedScale
		} else if weights > 0 {
			acc += rest * c.sizing.Weight / weights
		}

		end := inner.MaxX
		if i < len(r.cells)-1 {
			end = clamp(math.Round(inner.MinX+acc-dw/2)+dw/2, x, inner.MaxX)
		}
		slot := Rect{MinX: x, MinY: inner.MinY, MaxX: end, MaxY: inner.MaxY}
		body := slot
		if !c.leftmost {
			body.MinX += dw / 2
		}
		if !c.rightmost {
			body.MaxX -= dw / 2
		}
		if body.MaxX < body.MinX {
			body.MaxX = body.MinX
		}
		c.place(slot, body)
		x = end
	}
}

// CellAt returns the cell whose slot contains x.
func (r *Row) CellAt(x float64) (int, bool) {
	for i, c := range r.cells {
		if x >= c.slot.MinX && x < c.slot.MaxX {
			return i, true
		}
	}
	return 0, false
}

// PositionAt maps a horizontal coordinate to the row position that would
// centre the indicator under it. Coordinates past either end land on the
// first or last cell.
func (r *Row) PositionAt(x float64) float64 {
	n := len(r.cells)
	if n == 0 {
		return 0
	}
	i, ok := r.CellAt(x)
	if !ok {
		if x < r.cells[0].slot.MinX {
			return 0
		}
		return float64(n - 1)
	}
	slot := r.cells[i].slot
	if slot.Width() <= 0 {
		return float64(i)
	}
	p := float64(i) + (x-slot.MinX)/slot.Width() - 0.5
	return clamp(p, 0, float64(n-1))
}
