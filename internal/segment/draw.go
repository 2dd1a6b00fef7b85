package segment

// Surface is a 2D drawing target with a save/restore stack of translation
// and clip state. ClipRect intersects with the current clip; both clip
// rectangles and drawing coordinates are interpreted in the current
// (translated) coordinate space.
type Surface interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	ClipRect(r Rect)
	FillRect(r Rect, radius float64, p Paint)
	StrokeRect(r Rect, width, radius float64, p Paint)
	DrawText(at Point, s string, p Paint)
}

// Draw paints the whole row at the surface origin using the geometry from
// the last Layout and the clip state from the last SetPosition.
func (r *Row) Draw(s Surface) {
	if r.size.Width <= 0 || r.size.Height <= 0 {
		return
	}
	bounds := Rect{MaxX: r.size.Width, MaxY: r.size.Height}
	bw := r.style.BorderWidth

	s.Save()
	defer s.Restore()

	if r.paints.background != (Paint{}) {
		if bw > 0 {
			// The border draws the rounded corners.
			s.FillRect(Rect{MinX: bw, MinY: bw, MaxX: bounds.MaxX - bw, MaxY: bounds.MaxY - bw}, 0, r.paints.background)
		} else {
			s.FillRect(bounds, r.style.Radius, r.paints.background)
		}
	}

	for _, c := range r.cells {
		c.draw(s, r.paints.selector, r.style.Radius)
	}

	if dw := r.style.DividerWidth; dw > 0 {
		for _, c := range r.cells {
			if c.rightmost {
				break
			}
			x := c.slot.MaxX
			s.FillRect(Rect{MinX: x - dw/2, MinY: c.slot.MinY, MaxX: x + dw/2, MaxY: c.slot.MaxY}, 0, r.paints.divider)
		}
	}

	if bw > 0 {
		s.StrokeRect(bounds, bw, r.style.Radius, r.paints.border)
	}
}

// draw renders the cell's normal content, then its sliver of the indicator
// and the selected-colour content on top, both limited to the clip window.
func (c *Cell) draw(s Surface, selector Paint, radius float64) {
	if c.body.Empty() {
		return
	}
	w, h := c.body.Width(), c.body.Height()

	s.Save()
	defer s.Restore()
	s.Translate(c.body.MinX, c.body.MinY)

	c.drawContent(s, false)
	if c.clip.Fraction <= 0 {
		return
	}

	window := ClipRect(c.clip, w, h)

	s.Save()
	s.ClipRect(window)
	s.Translate(Translation(c.clip, w), 0)
	s.FillRect(Rect{MaxX: w, MaxY: h}, radius, selector)
	s.Restore()

	s.Save()
	s.ClipRect(window)
	c.drawContent(s, true)
	s.Restore()
}

func (c *Cell) drawContent(s Surface, selected bool) {
	if !c.layout.Valid {
		return
	}
	if c.content.hasText() {
		p := c.paints.text
		if selected {
			p = c.paints.selectedText
		}
		s.DrawText(Point{X: c.layout.Text.MinX, Y: c.layout.Text.MinY}, c.content.Text.Value, p)
	}
	if c.content.hasIcon() {
		p := c.paints.icon
		if selected {
			p = c.paints.selectedIcon
		}
		s.DrawText(c.iconAt, c.content.Icon.Glyph, p)
	}
}
