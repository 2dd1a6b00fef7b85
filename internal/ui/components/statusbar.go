package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Akashdeep-Patra/segbar/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Row      string
	Selected int
	Count    int
	Position float64
	State    string
	Message  string // transient info/error message
	IsError  bool
	Config   string
}

// RenderStatusBar renders the bottom status bar with clear visual sections
// separated by dim vertical bars.
//
// Wide (>= 60):   align  │  2/3 @ 1.42  │  animating        config.yaml
// Medium (40-59): align  │  2/3 @ 1.42  │  animating
// Narrow (< 40):  align  │  animating
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme
	inner := width - styles.StatusBar.GetHorizontalFrameSize()

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	rowStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	left := " " + rowStyle.Render(data.Row)

	if width >= 40 && data.Count > 0 {
		posStyle := lipgloss.NewStyle().Foreground(t.Text)
		left += sep + posStyle.Render(fmt.Sprintf("%d/%d @ %.2f", data.Selected+1, data.Count, data.Position))
	}

	switch data.State {
	case "", "idle":
		left += sep + lipgloss.NewStyle().Foreground(t.Success).Render("✓ idle")
	default:
		badge := lipgloss.NewStyle().
			Foreground(t.TextInverse).
			Background(t.Warning).
			Bold(true).
			Padding(0, 1).
			Render(strings.ToUpper(data.State))
		left += sep + badge
	}

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		room := inner - lipgloss.Width(left) - 2
		right = lipgloss.NewStyle().Foreground(fg).Render(ui.Truncate(data.Message, room)) + " "
	} else if width >= 60 && data.Config != "" {
		right = lipgloss.NewStyle().Foreground(t.TextSubtle).Render(filepath.Base(data.Config)) + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 1
		right = "" // drop right side if no room
	}

	return styles.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
