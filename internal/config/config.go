// Package config loads the segbar configuration: the theme, animation
// settings and the rows of segments the demo shows.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Akashdeep-Patra/segbar/internal/segment"
	"github.com/spf13/viper"
)

const defaultFrameRate = 60

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// Animation applies to every row.
	Animation Animation `mapstructure:"animation"`
	// Rows are shown top to bottom.
	Rows []Row `mapstructure:"rows"`

	// Source is the config file that was read, empty when running on defaults.
	Source string `mapstructure:"-"`
}

// Animation configures how selection changes move.
type Animation struct {
	Duration time.Duration `mapstructure:"duration"`
	// Easing is one of linear, ease, ease-in, ease-out, ease-in-out.
	Easing    string `mapstructure:"easing"`
	FrameRate int    `mapstructure:"frame_rate"`
	// Snap animates to the nearest segment when a drag ends.
	Snap         bool `mapstructure:"snap"`
	AnimateOnTap bool `mapstructure:"animate_on_tap"`
}

// Row is one segmented control.
type Row struct {
	Name     string    `mapstructure:"name"`
	Selected int       `mapstructure:"selected"`
	Fill     bool      `mapstructure:"fill"`
	Width    int       `mapstructure:"width"`
	Style    Style     `mapstructure:"style"`
	Segments []Segment `mapstructure:"segments"`
}

// Style is the row-wide look. Empty colours take the theme's.
type Style struct {
	Radius            float64 `mapstructure:"radius"`
	BorderWidth       float64 `mapstructure:"border_width"`
	BorderColor       string  `mapstructure:"border_color"`
	DividerWidth      float64 `mapstructure:"divider_width"`
	DividerColor      string  `mapstructure:"divider_color"`
	DividerGlyph      string  `mapstructure:"divider_glyph"`
	Background        string  `mapstructure:"background"`
	BackgroundPattern string  `mapstructure:"background_pattern"`
	Selector          string  `mapstructure:"selector"`
	SelectorPattern   string  `mapstructure:"selector_pattern"`
}

// Segment is one cell of a row.
type Segment struct {
	Text          string `mapstructure:"text"`
	Color         string `mapstructure:"color"`
	SelectedColor string `mapstructure:"selected_color"`
	Bold          bool   `mapstructure:"bold"`
	Italic        bool   `mapstructure:"italic"`
	Underline     bool   `mapstructure:"underline"`

	Icon             string  `mapstructure:"icon"`
	IconGravity      string  `mapstructure:"icon_gravity"`
	IconPadding      float64 `mapstructure:"icon_padding"`
	IconWidth        float64 `mapstructure:"icon_width"`
	IconHeight       float64 `mapstructure:"icon_height"`
	IconTint         string  `mapstructure:"icon_tint"`
	SelectedIconTint string  `mapstructure:"selected_icon_tint"`

	Weight     float64 `mapstructure:"weight"`
	FixedWidth float64 `mapstructure:"fixed_width"`

	PaddingX float64 `mapstructure:"padding_x"`
	PaddingY float64 `mapstructure:"padding_y"`
}

// Load reads configuration from path, or from ~/.config/segbar/config.yaml
// when path is empty. A missing default file is fine; a missing explicit
// file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(Directory())
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("SEGBAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine; run on defaults.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if cfg.Source == "" {
		cfg.Rows = defaultRows()
	} else if abs, err := filepath.Abs(cfg.Source); err == nil {
		cfg.Source = abs
	}
	return cfg, nil
}

// Normalize resolves out-of-range values in place and describes each fix.
// Nothing here is fatal: a bad value falls back to a deterministic default.
func (c *Config) Normalize() []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	switch strings.ToLower(c.Theme) {
	case "dark", "light":
	default:
		warn("unknown theme %q, using dark", c.Theme)
		c.Theme = "dark"
	}

	a := &c.Animation
	if a.Duration < 0 {
		warn("negative animation duration %s, using 0", a.Duration)
		a.Duration = 0
	}
	if _, ok := segment.EasingByName(a.Easing); !ok {
		warn("unknown easing %q, using ease-in-out", a.Easing)
		a.Easing = "ease-in-out"
	}
	if a.FrameRate <= 0 {
		warn("frame rate %d, using %d", a.FrameRate, defaultFrameRate)
		a.FrameRate = defaultFrameRate
	}

	if len(c.Rows) == 0 {
		warn("no rows configured, using the demo rows")
		c.Rows = defaultRows()
	}
	for i := range c.Rows {
		r := &c.Rows[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("row %d", i+1)
		}
		if n := len(r.Segments); n > 0 && (r.Selected < 0 || r.Selected >= n) {
			sel := min(max(r.Selected, 0), n-1)
			warn("%s: selected %d out of range, using %d", r.Name, r.Selected, sel)
			r.Selected = sel
		}
		for j := range r.Segments {
			s := &r.Segments[j]
			if s.Weight > 0 && s.FixedWidth > 0 {
				warn("%s segment %d: both weight and fixed_width set, using weight", r.Name, j+1)
				s.FixedWidth = 0
			}
			if _, ok := segment.ParseGravity(s.IconGravity); !ok && s.Icon != "" {
				warn("%s segment %d: unknown icon gravity %q, using start", r.Name, j+1, s.IconGravity)
				s.IconGravity = "start"
			}
		}
	}
	return warnings
}

// Directory is the directory the default config file lives in.
func Directory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "segbar")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "segbar")
}
