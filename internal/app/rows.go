package app

import (
	"github.com/Akashdeep-Patra/segbar/internal/config"
	"github.com/Akashdeep-Patra/segbar/internal/segment"
	"github.com/Akashdeep-Patra/segbar/internal/ui"
	"github.com/Akashdeep-Patra/segbar/internal/ui/components"
	"github.com/charmbracelet/lipgloss"
)

// BuildRow turns a configured row into a segment.Row. Colours left empty in
// the config come from the theme.
func BuildRow(rc config.Row, t ui.Theme) *segment.Row {
	st := rc.Style
	r := segment.NewRow(segment.Style{
		Radius:            st.Radius,
		BorderWidth:       st.BorderWidth,
		BorderColor:       color(st.BorderColor, t.Border),
		DividerWidth:      st.DividerWidth,
		DividerColor:      color(st.DividerColor, t.Border),
		DividerGlyph:      st.DividerGlyph,
		Background:        color(st.Background, t.Surface),
		BackgroundPattern: st.BackgroundPattern,
		Selector:          color(st.Selector, t.Primary),
		SelectorPattern:   st.SelectorPattern,
	})

	for _, sc := range rc.Segments {
		var content segment.Content
		if sc.Text != "" {
			content.Text = &segment.Text{
				Value:         sc.Text,
				Color:         color(sc.Color, t.Text),
				SelectedColor: color(sc.SelectedColor, t.TextInverse),
				Typeface:      segment.Typeface{Bold: sc.Bold, Italic: sc.Italic, Underline: sc.Underline},
			}
		}
		if sc.Icon != "" {
			gravity, _ := segment.ParseGravity(sc.IconGravity)
			content.Icon = &segment.Icon{
				Glyph:        sc.Icon,
				Width:        sc.IconWidth,
				Height:       sc.IconHeight,
				Tint:         color(sc.IconTint, t.Accent),
				SelectedTint: color(sc.SelectedIconTint, t.TextInverse),
				Gravity:      gravity,
				Padding:      sc.IconPadding,
			}
		}
		r.Append(segment.CellSpec{
			Content:    content,
			Padding:    segment.Symmetric(sc.PaddingY, sc.PaddingX),
			Weight:     sc.Weight,
			FixedWidth: sc.FixedWidth,
		})
	}
	return r
}

// BuildRows builds one component per configured row. selected carries
// selections over a reload, keyed by row name; rows not in it start on
// their configured segment.
func BuildRows(cfg *config.Config, t ui.Theme, selected map[string]int) []components.Segmented {
	easing, _ := segment.EasingByName(cfg.Animation.Easing)
	rows := make([]components.Segmented, 0, len(cfg.Rows))
	for _, rc := range cfg.Rows {
		sel := rc.Selected
		if prev, ok := selected[rc.Name]; ok {
			sel = prev
		}
		rows = append(rows, components.NewSegmented(BuildRow(rc, t), components.SegmentedOptions{
			Name:         rc.Name,
			Duration:     cfg.Animation.Duration,
			Easing:       easing,
			FrameRate:    cfg.Animation.FrameRate,
			Snap:         cfg.Animation.Snap,
			AnimateOnTap: cfg.Animation.AnimateOnTap,
			Fill:         rc.Fill,
			Width:        rc.Width,
			Selected:     sel,
		}))
	}
	return rows
}

func color(s string, fallback lipgloss.Color) lipgloss.Color {
	if s == "" {
		return fallback
	}
	return lipgloss.Color(s)
}
