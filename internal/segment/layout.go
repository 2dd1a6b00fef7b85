package segment

// ContentLayout holds where a cell's text and icon go, relative to the cell's
// top-left corner. Valid is false when the cell is too small for its own
// padding; both rectangles are zero in that case.
type ContentLayout struct {
	Text  Rect
	Icon  Rect
	Valid bool
}

// LayoutContent positions text and icon inside a cell of the given size.
//
// On the primary axis (the one gravity points along) the text, icon padding
// and icon form one block, centred in whatever space the padding leaves.
// Block order follows gravity, so START/END and TOP/BOTTOM mirror each other.
// On the cross axis the larger element sits at the padding edge and the
// smaller one is centred against it.
func LayoutContent(cell Size, content Content, padding Insets, m TextMeasurer) ContentLayout {
	if cell.Width < padding.horizontal() || cell.Height < padding.vertical() {
		return ContentLayout{}
	}
	if m == nil {
		m = RuneWidth{}
	}

	text, icon := contentSizes(content, m)
	gap := iconGap(content)
	g := content.gravity()

	var textPos, iconPos Point
	if g.Horizontal() {
		textPos.Y, iconPos.Y = crossAlign(padding.Top, text.Height, icon.Height)
		start := padding.Left + leadingMargin(cell.Width-padding.horizontal(), text.Width+gap+icon.Width)
		textPos.X, iconPos.X = primaryOrder(start, text.Width, icon.Width, gap, g.iconTrails())
	} else {
		textPos.X, iconPos.X = crossAlign(padding.Left, text.Width, icon.Width)
		start := padding.Top + leadingMargin(cell.Height-padding.vertical(), text.Height+gap+icon.Height)
		textPos.Y, iconPos.Y = primaryOrder(start, text.Height, icon.Height, gap, g.iconTrails())
	}

	return ContentLayout{
		Text:  RectXYWH(textPos.X, textPos.Y, text.Width, text.Height),
		Icon:  RectXYWH(iconPos.X, iconPos.Y, icon.Width, icon.Height),
		Valid: true,
	}
}

// crossAlign puts the larger of a/b at origin and centres the smaller on it.
func crossAlign(origin, a, b float64) (posA, posB float64) {
	if a >= b {
		return origin, origin + (a-b)/2
	}
	return origin + (b-a)/2, origin
}

// leadingMargin is half the unused space, or zero when the content overflows.
func leadingMargin(avail, extent float64) float64 {
	if rem := avail - extent; rem > 0 {
		return rem / 2
	}
	return 0
}

// primaryOrder lays text and icon out one after the other from start.
func primaryOrder(start, text, icon, gap float64, iconTrails bool) (textPos, iconPos float64) {
	if iconTrails {
		return start, start + text + gap
	}
	return start + icon + gap, start
}

// contentExtent is the unpadded size of the text+icon block.
func contentExtent(content Content, m TextMeasurer) Size {
	if m == nil {
		m = RuneWidth{}
	}
	text, icon := contentSizes(content, m)
	gap := iconGap(content)
	if content.gravity().Horizontal() {
		return Size{Width: text.Width + gap + icon.Width, Height: max(text.Height, icon.Height)}
	}
	return Size{Width: max(text.Width, icon.Width), Height: text.Height + gap + icon.Height}
}

// MeasureContent resolves a cell's size from its content, padding and the
// incoming constraints.
func MeasureContent(c Constraints, content Content, padding Insets, m TextMeasurer) Size {
	ext := contentExtent(content, m)
	return Size{
		Width:  c.Width.Resolve(padding.horizontal() + ext.Width),
		Height: c.Height.Resolve(padding.vertical() + ext.Height),
	}
}
