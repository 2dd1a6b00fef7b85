package segment

// Sizing says how a cell claims horizontal space in its row. Exactly one
// mode is active: a positive Weight shares the space left after fixed
// cells; otherwise FixedWidth is the cell's slot width.
type Sizing struct {
	Weight     float64
	FixedWidth float64
}

// Fixed reports whether the cell uses a fixed width.
func (s Sizing) Fixed() bool { return s.Weight <= 0 && s.FixedWidth > 0 }

// normalizeSizing resolves conflicting or missing sizing. Weight wins when
// both are set, and a cell with neither gets weight 1.
func normalizeSizing(weight, fixed float64) Sizing {
	switch {
	case weight > 0:
		return Sizing{Weight: weight}
	case fixed > 0:
		return Sizing{FixedWidth: fixed}
	default:
		return Sizing{Weight: 1}
	}
}

// CellSpec describes a cell to append to a row.
type CellSpec struct {
	Content    Content
	Padding    Insets
	Weight     float64
	FixedWidth float64
}

type cellPaints struct {
	text, selectedText Paint
	icon, selectedIcon Paint
}

// Cell is one segment. Cells are created by Row.Append and never move.
type Cell struct {
	index     int
	leftmost  bool
	rightmost bool

	sizing   Sizing
	content  Content
	padding  Insets
	measurer TextMeasurer
	paints   cellPaints

	measured Size
	slot     Rect // share of the row including its half of each divider
	body     Rect // slot minus divider compensation; content and selector live here
	layout   ContentLayout
	iconAt   Point

	clip ClipState
}

func newCell(index int, spec CellSpec, m TextMeasurer) *Cell {
	c := &Cell{
		index:    index,
		sizing:   normalizeSizing(spec.Weight, spec.FixedWidth),
		content:  spec.Content,
		padding:  spec.Padding,
		measurer: m,
	}
	if t := spec.Content.Text; t != nil {
		base := Paint{Color: t.Color, Bold: t.Typeface.Bold, Italic: t.Typeface.Italic, Underline: t.Typeface.Underline}
		sel := base
		if t.SelectedColor != "" {
			sel.Color = t.SelectedColor
		}
		c.paints.text, c.paints.selectedText = base, sel
	}
	if ic := spec.Content.Icon; ic != nil {
		c.paints.icon = Paint{Color: ic.Tint}
		c.paints.selectedIcon = c.paints.icon
		if ic.SelectedTint != "" {
			c.paints.selectedIcon.Color = ic.SelectedTint
		}
	}
	return c
}

func (c *Cell) Index() int { return c.index }
func (c *Cell) Leftmost() bool { return c.leftmost }
func (c *Cell) Rightmost() bool { return c.rightmost }
func (c *Cell) Sizing() Sizing { return c.sizing }
func (c *Cell) Content() Content { return c.content }
func (c *Cell) MeasuredSize() Size { return c.measured }
func (c *Cell) Clip() ClipState { return c.clip }
func (c *Cell) Slot() Rect { return c.slot }
func (c *Cell) Frame() Rect { return c.body }
func (c *Cell) Layout() ContentLayout { return c.layout }

// Measure resolves the cell's size against c and caches it.
func (c *Cell) Measure(cons Constraints) Size {
	c.measured = MeasureContent(cons, c.content, c.padding, c.measurer)
	return c.measured
}

// place assigns the cell's slot and body and lays out its content.
func (c *Cell) place(slot, body Rect) {
	c.slot, c.body = slot, body
	size := c.Measure(ExactSize(body.Width(), body.Height()))
	c.layout = LayoutContent(size, c.content, c.padding, c.measurer)
	c.iconAt = Point{X: c.layout.Icon.MinX, Y: c.layout.Icon.MinY}
	if c.content.hasIcon() {
		// An icon box larger than its glyph centres the glyph.
		m := c.measurer
		if m == nil {
			m = RuneWidth{}
		}
		g := m.MeasureText(c.content.Icon.Glyph)
		c.iconAt.X += max(c.layout.Icon.Width()-g.Width, 0) / 2
		c.iconAt.Y += max(c.layout.Icon.Height()-g.Height, 0) / 2
	}
}
