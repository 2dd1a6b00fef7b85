package segment

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Gravity places a cell's icon relative to its text.
type Gravity int

const (
	GravityStart  Gravity = iota // icon left of text
	GravityEnd                   // icon right of text
	GravityTop                   // icon above text
	GravityBottom                // icon below text
)

// ParseGravity maps a config name to a Gravity. Unknown names fall back to
// GravityStart and report false.
func ParseGravity(name string) (Gravity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "start", "left":
		return GravityStart, true
	case "end", "right":
		return GravityEnd, true
	case "top", "above":
		return GravityTop, true
	case "bottom", "below":
		return GravityBottom, true
	default:
		return GravityStart, false
	}
}

func (g Gravity) String() string {
	switch g {
	case GravityStart:
		return "start"
	case GravityEnd:
		return "end"
	case GravityTop:
		return "top"
	case GravityBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Gravity(%d)", int(g))
	}
}

// Horizontal reports whether icon and text sit side by side.
func (g Gravity) Horizontal() bool { return g == GravityStart || g == GravityEnd }

// iconTrails reports whether the icon comes after the text on the primary axis.
func (g Gravity) iconTrails() bool { return g == GravityEnd || g == GravityBottom }

// Typeface is the terminal's notion of a font: attributes only.
type Typeface struct {
	Bold      bool
	Italic    bool
	Underline bool
}

// Text is a cell label.
type Text struct {
	Value         string
	Color         lipgloss.Color
	SelectedColor lipgloss.Color
	Typeface      Typeface
}

// Icon is a glyph (possibly several lines of them) drawn next to the text.
// Zero Width/Height means the glyph's intrinsic size.
type Icon struct {
	Glyph        string
	Width        float64
	Height       float64
	Tint         lipgloss.Color
	SelectedTint lipgloss.Color
	Gravity      Gravity
	Padding      float64 // gap between icon and text
}

// Content is what a cell shows. Either part may be nil.
type Content struct {
	Text *Text
	Icon *Icon
}

func (c Content) hasText() bool { return c.Text != nil && c.Text.Value != "" }
func (c Content) hasIcon() bool { return c.Icon != nil && c.Icon.Glyph != "" }

func (c Content) gravity() Gravity {
	if c.Icon == nil {
		return GravityStart
	}
	return c.Icon.Gravity
}

// Paint is an immutable draw style. Build paints once when configuring a row
// and reuse them for every frame.
type Paint struct {
	Color     lipgloss.Color
	Pattern   string // optional glyph repeated over fully covered cells
	Bold      bool
	Italic    bool
	Underline bool
}

// TextMeasurer reports the size a string occupies on the target surface.
type TextMeasurer interface {
	MeasureText(s string) Size
}

// RuneWidth measures strings in terminal cells using go-runewidth. Each
// line is one row tall.
type RuneWidth struct{}

// MeasureText implements TextMeasurer.
func (RuneWidth) MeasureText(s string) Size {
	if s == "" {
		return Size{}
	}
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	return Size{Width: float64(w), Height: float64(len(lines))}
}

// contentSizes returns the text and icon extents for c.
func contentSizes(c Content, m TextMeasurer) (text, icon Size) {
	if c.hasText() {
		text = m.MeasureText(c.Text.Value)
	}
	if c.hasIcon() {
		icon = m.MeasureText(c.Icon.Glyph)
		if c.Icon.Width > 0 {
			icon.Width = c.Icon.Width
		}
		if c.Icon.Height > 0 {
			icon.Height = c.Icon.Height
		}
	}
	return text, icon
}

// iconGap is the icon padding, which only counts when both parts are shown.
func iconGap(c Content) float64 {
	if c.hasText() && c.hasIcon() {
		return c.Icon.Padding
	}
	return 0
}
