package ui

import (
	"math"
	"strings"

	"github.com/Akashdeep-Patra/segbar/internal/segment"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// eighths is how finely a column is split horizontally. Partial coverage is
// drawn with the left-block glyphs below.
const eighths = 8

var leftBlocks = [eighths + 1]string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// cover is a partial fill of one column, [lo, hi) in eighths.
type cover struct {
	color  lipgloss.Color
	lo, hi int
}

func (c cover) amount() int { return c.hi - c.lo }

type gridCell struct {
	glyph     string // "" marks the right half of a wide rune
	fg, bg    lipgloss.Color
	bold      bool
	italic    bool
	underline bool
	partial   cover
}

type canvasState struct {
	dx, dy float64
	clip   segment.Rect
}

// Canvas is a segment.Surface backed by a grid of terminal cells. Fills
// keep eighth-of-a-column precision horizontally, so a sliding selector
// moves smoothly rather than jumping a whole column at a time.
type Canvas struct {
	width, height int
	cells         []gridCell
	state         canvasState
	stack         []canvasState
	renderer      *lipgloss.Renderer
}

// NewCanvas returns a blank canvas of the given size in cells.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:    width,
		height:   height,
		cells:    make([]gridCell, width*height),
		renderer: lipgloss.DefaultRenderer(),
	}
	for i := range c.cells {
		c.cells[i].glyph = " "
	}
	c.state.clip = segment.Rect{MaxX: float64(width), MaxY: float64(height)}
	return c
}

// WithRenderer makes Render use r, e.g. one bound to a specific output.
func (c *Canvas) WithRenderer(r *lipgloss.Renderer) *Canvas {
	if r != nil {
		c.renderer = r
	}
	return c
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Save pushes the current translation and clip.
func (c *Canvas) Save() { c.stack = append(c.stack, c.state) }

// Restore pops the last saved translation and clip. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Translate moves the origin.
func (c *Canvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

// ClipRect narrows the clip to r, given in current coordinates.
func (c *Canvas) ClipRect(r segment.Rect) {
	c.state.clip = c.state.clip.Intersect(c.toDevice(r))
}

// FillRect fills r with p. A flat colour paints the cell background; a
// pattern paints its glyph in the paint colour. A positive radius trims half
// a column off each end, which gives fills a pill shape.
func (c *Canvas) FillRect(r segment.Rect, radius float64, p segment.Paint) {
	r = c.toDevice(r)
	if radius > 0 && r.Width() >= 2 {
		r.MinX += 0.5
		r.MaxX -= 0.5
	}
	r = r.Intersect(c.state.clip)
	if r.Empty() {
		return
	}

	y0, y1 := rowSpan(r)
	x0 := int(math.Floor(r.MinX))
	x1 := int(math.Ceil(r.MaxX))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cell := c.at(x, y)
			if cell == nil {
				continue
			}
			lo := clampEighths((r.MinX - float64(x)) * eighths)
			hi := clampEighths((r.MaxX - float64(x)) * eighths)
			if hi <= lo {
				continue
			}
			if p.Pattern != "" {
				if hi-lo >= eighths/2 {
					cell.glyph = p.Pattern
					if p.Color != "" {
						cell.fg = p.Color
					}
				}
				continue
			}
			cell.fill(p.Color, lo, hi)
		}
	}
}

// StrokeRect draws a box outline with box-drawing glyphs. Rings beyond the
// first are filled with the paint colour.
func (c *Canvas) StrokeRect(r segment.Rect, width, radius float64, p segment.Paint) {
	r = c.toDevice(r)
	x0, x1 := int(math.Round(r.MinX)), int(math.Round(r.MaxX))-1
	y0, y1 := int(math.Round(r.MinY)), int(math.Round(r.MaxY))-1
	if x1 < x0 || y1 < y0 || width <= 0 {
		return
	}

	border := lipgloss.NormalBorder()
	if radius > 0 {
		border = lipgloss.RoundedBorder()
	}

	put := func(x, y int, glyph string) {
		if !c.clipped(x, y) {
			return
		}
		if cell := c.at(x, y); cell != nil {
			cell.glyph = glyph
			if p.Color != "" {
				cell.fg = p.Color
			}
		}
	}
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, border.Top)
		put(x, y1, border.Bottom)
	}
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, border.Left)
		put(x1, y, border.Right)
	}
	put(x0, y0, border.TopLeft)
	put(x1, y0, border.TopRight)
	put(x0, y1, border.BottomLeft)
	put(x1, y1, border.BottomRight)

	if rings := int(math.Round(width)); rings > 1 && p.Color != "" {
		inner := segment.Rect{MinX: float64(x0 + 1), MinY: float64(y0 + 1), MaxX: float64(x1), MaxY: float64(y1)}
		for i := 1; i < rings && !inner.Empty(); i++ {
			c.ring(inner, p.Color)
			inner = segment.Rect{MinX: inner.MinX + 1, MinY: inner.MinY + 1, MaxX: inner.MaxX - 1, MaxY: inner.MaxY - 1}
		}
	}
}

// ring paints the one-cell-wide outline of r, in device coordinates.
func (c *Canvas) ring(r segment.Rect, color lipgloss.Color) {
	for y := int(r.MinY); y < int(r.MaxY); y++ {
		for x := int(r.MinX); x < int(r.MaxX); x++ {
			edge := y == int(r.MinY) || y == int(r.MaxY)-1 || x == int(r.MinX) || x == int(r.MaxX)-1
			if !edge || !c.clipped(x, y) {
				continue
			}
			if cell := c.at(x, y); cell != nil {
				cell.fill(color, 0, eighths)
			}
		}
	}
}

// DrawText writes s starting at the given point. Newlines start a new row at
// the same column. A glyph is drawn only if its cell centre is inside the
// clip.
func (c *Canvas) DrawText(at segment.Point, s string, p segment.Paint) {
	origin := segment.Point{X: at.X + c.state.dx, Y: at.Y + c.state.dy}
	x0 := int(math.Floor(origin.X + 1e-9))
	y := int(math.Floor(origin.Y + 1e-9))

	for _, line := range strings.Split(s, "\n") {
		x := x0
		for _, r := range line {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if c.clipped(x, y) {
				c.setGlyph(x, y, string(r), p)
				if w == 2 && c.clipped(x+1, y) {
					c.setGlyph(x+1, y, "", p)
				}
			}
			x += w
		}
		y++
	}
}

func (c *Canvas) setGlyph(x, y int, glyph string, p segment.Paint) {
	cell := c.at(x, y)
	if cell == nil {
		return
	}
	cell.glyph = glyph
	if p.Color != "" {
		cell.fg = p.Color
	}
	cell.bold, cell.italic, cell.underline = p.Bold, p.Italic, p.Underline
}

func (c *Canvas) toDevice(r segment.Rect) segment.Rect {
	return r.Translate(c.state.dx, c.state.dy)
}

// clipped reports whether the centre of cell (x, y) is inside the clip.
func (c *Canvas) clipped(x, y int) bool {
	return c.state.clip.Contains(segment.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
}

func (c *Canvas) at(x, y int) *gridCell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return nil
	}
	return &c.cells[y*c.width+x]
}

// rowSpan is the rows whose centres fall inside r.
func rowSpan(r segment.Rect) (int, int) {
	return int(math.Round(r.MinY)), int(math.Round(r.MaxY))
}

func clampEighths(v float64) int {
	return int(math.Round(math.Max(0, math.Min(eighths, v))))
}

// fill merges a coverage of [lo, hi) eighths in color into the cell.
func (g *gridCell) fill(color lipgloss.Color, lo, hi int) {
	if lo == 0 && hi == eighths {
		g.bg = color
		g.partial = cover{}
		return
	}
	if p := g.partial; p.amount() > 0 && p.color == color && lo <= p.hi && hi >= p.lo {
		lo, hi = min(lo, p.lo), max(hi, p.hi)
		if lo == 0 && hi == eighths {
			g.bg = color
			g.partial = cover{}
			return
		}
	}
	g.partial = cover{color: color, lo: lo, hi: hi}
}

// resolve picks the glyph and colours a cell is finally drawn with.
func (g gridCell) resolve() (glyph string, fg, bg lipgloss.Color) {
	glyph, fg, bg = g.glyph, g.fg, g.bg
	p := g.partial
	if p.amount() <= 0 {
		return glyph, fg, bg
	}
	if glyph != " " {
		// Text wins; the background goes to whichever colour covers more.
		if p.amount() >= eighths/2 {
			bg = p.color
		}
		return glyph, fg, bg
	}

	switch {
	case p.lo == 0:
		return leftBlocks[p.hi], p.color, bg
	case p.hi == eighths && bg != "":
		// Inverted left block: the uncovered left part is drawn in the old
		// background over a cell now painted with the fill.
		return leftBlocks[p.lo], bg, p.color
	case p.hi == eighths:
		switch n := p.amount(); {
		case n >= 6:
			return " ", fg, p.color
		case n >= 3:
			return "▐", p.color, bg
		default:
			return "▕", p.color, bg
		}
	case p.amount() >= eighths/2:
		return " ", fg, p.color
	default:
		return glyph, fg, bg
	}
}

type styleKey struct {
	fg, bg                  lipgloss.Color
	bold, italic, underline bool
}

// Glyphs returns the canvas as plain text rows, without colours.
func (c *Canvas) Glyphs() []string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var b strings.Builder
		for x := 0; x < c.width; x++ {
			glyph, _, _ := c.cells[y*c.width+x].resolve()
			b.WriteString(glyph)
		}
		rows[y] = b.String()
	}
	return rows
}

// Render returns the canvas as styled terminal output, one line per row.
// Neighbouring cells with the same style are rendered as one run.
func (c *Canvas) Render() string {
	styles := make(map[styleKey]lipgloss.Style)
	styleFor := func(k styleKey) lipgloss.Style {
		if s, ok := styles[k]; ok {
			return s
		}
		s := c.renderer.NewStyle().Bold(k.bold).Italic(k.italic).Underline(k.underline)
		if k.fg != "" {
			s = s.Foreground(k.fg)
		}
		if k.bg != "" {
			s = s.Background(k.bg)
		}
		styles[k] = s
		return s
	}

	lines := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var line, run strings.Builder
		var cur styleKey
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(styleFor(cur).Render(run.String()))
				run.Reset()
			}
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			glyph, fg, bg := cell.resolve()
			k := styleKey{fg: fg, bg: bg, bold: cell.bold, italic: cell.italic, underline: cell.underline}
			if k != cur {
				flush()
				cur = k
			}
			run.WriteString(glyph)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
