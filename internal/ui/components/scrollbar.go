package components

import (
	"strings"

	"github.com/Akashdeep-Patra/segbar/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar returns a one-column track of the given height for a view
// showing lines [offset, offset+height) of total. The thumb is proportional
// to the visible share, at least one line tall.
//
// Returns "" when everything fits.
func RenderScrollbar(styles ui.Styles, height, total, offset int) string {
	if total <= height || height < 1 {
		return ""
	}
	t := styles.Theme

	thumb := min(max(height*height/total, 1), height)
	maxOffset := total - height
	offset = min(max(offset, 0), maxOffset)
	start := (height - thumb) * offset / maxOffset

	thumbStyle := lipgloss.NewStyle().Foreground(t.Primary)
	trackStyle := lipgloss.NewStyle().Foreground(t.Border)

	var b strings.Builder
	for i := 0; i < height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= start && i < start+thumb {
			b.WriteString(thumbStyle.Render("█"))
		} else {
			b.WriteString(trackStyle.Render("░"))
		}
	}
	return b.String()
}
