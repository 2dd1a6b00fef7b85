package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Akashdeep-Patra/segbar/internal/config"
	"github.com/Akashdeep-Patra/segbar/internal/segment"
	"github.com/Akashdeep-Patra/segbar/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// RenderOptions selects what RenderFrame draws.
type RenderOptions struct {
	// Row is a row name or a 1-based index.
	Row string
	// Position is the indicator position; negative means the row's
	// configured selection.
	Position float64
	// Width caps the row width; 0 means natural width.
	Width    int
	Renderer *lipgloss.Renderer
}

// RenderFrame draws one configured row, frozen at a position, as terminal
// output.
func RenderFrame(cfg *config.Config, opts RenderOptions) (string, error) {
	rc, err := findRow(cfg, opts.Row)
	if err != nil {
		return "", err
	}
	theme, _ := ui.ThemeByName(cfg.Theme)
	row := BuildRow(rc, theme)

	c := segment.Constraints{}
	if opts.Width > 0 {
		c.Width = segment.AxisConstraint{Size: float64(opts.Width), Mode: segment.AtMost}
		if rc.Fill {
			c.Width.Mode = segment.Exact
		}
	}
	size := row.Measure(c)
	size.Width, size.Height = math.Ceil(size.Width), math.Ceil(size.Height)
	if opts.Width > 0 {
		size.Width = math.Min(size.Width, float64(opts.Width))
	}
	row.Layout(size)

	pos := opts.Position
	if pos < 0 {
		pos = float64(rc.Selected)
	}
	row.SetPosition(pos)

	canvas := ui.NewCanvas(int(size.Width), int(size.Height)).WithRenderer(opts.Renderer)
	row.Draw(canvas)
	return canvas.Render(), nil
}

func findRow(cfg *config.Config, ref string) (config.Row, error) {
	if len(cfg.Rows) == 0 {
		return config.Row{}, fmt.Errorf("no rows configured")
	}
	if ref == "" {
		return cfg.Rows[0], nil
	}
	for _, r := range cfg.Rows {
		if strings.EqualFold(r.Name, ref) {
			return r, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(cfg.Rows) {
		return cfg.Rows[n-1], nil
	}
	return config.Row{}, fmt.Errorf("row %q not found", ref)
}
