package config

import (
	"time"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("animation.duration", 250*time.Millisecond)
	v.SetDefault("animation.easing", "ease-in-out")
	v.SetDefault("animation.frame_rate", defaultFrameRate)
	v.SetDefault("animation.snap", true)
	v.SetDefault("animation.animate_on_tap", true)
}

// defaultRows is what the demo shows when no config file exists. Each row
// exercises a different part of the layout: equal weights, icons on every
// side, mixed fixed and weighted sizing, and a bordered pill.
func defaultRows() []Row {
	return []Row{
		{
			Name: "Alignment",
			Fill: true,
			Style: Style{
				DividerWidth: 1,
			},
			Segments: []Segment{
				{Text: "Left", PaddingX: 1},
				{Text: "Centre", PaddingX: 1},
				{Text: "Right", PaddingX: 1},
				{Text: "Justify", PaddingX: 1},
			},
		},
		{
			Name:     "View",
			Selected: 1,
			Style: Style{
				BorderWidth:  1,
				Radius:       1,
				DividerWidth: 1,
			},
			Segments: []Segment{
				{Text: "List", Icon: "☰", IconGravity: "start", IconPadding: 1, PaddingX: 2},
				{Text: "Grid", Icon: "▦", IconGravity: "end", IconPadding: 1, PaddingX: 2},
				{Text: "Board", Icon: "▤", IconGravity: "start", IconPadding: 1, PaddingX: 2, Bold: true},
			},
		},
		{
			Name: "Range",
			Fill: true,
			Style: Style{
				BorderWidth:  1,
				DividerWidth: 1,
			},
			Segments: []Segment{
				{Text: "1D", FixedWidth: 6},
				{Text: "1W", FixedWidth: 6},
				{Text: "1M", Weight: 1},
				{Text: "1Y", Weight: 1},
				{Text: "All time", Weight: 2},
			},
		},
		{
			Name: "Mode",
			Style: Style{
				Radius: 1,
			},
			Segments: []Segment{
				{Icon: "☀", IconGravity: "top", Text: "Light", PaddingX: 2},
				{Icon: "☾", IconGravity: "top", Text: "Dark", PaddingX: 2},
				{Icon: "◐", IconGravity: "bottom", Text: "Auto", PaddingX: 2, Italic: true},
			},
		},
	}
}
