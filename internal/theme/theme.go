// Package theme supplies the named color presets a host can pick between,
// adapted to produce a render.Palette of concrete sink.RGB triples rather
// than lipgloss color strings (this engine's display sink is a plain cell
// grid, not a lipgloss renderer).
package theme

import (
	"fmt"

	"github.com/2legit2git/dawn/internal/render"
	"github.com/2legit2git/dawn/internal/sink"
)

// Config is one theme's named color slots.
type Config struct {
	FG          string `mapstructure:"fg" yaml:"fg"`
	BG          string `mapstructure:"bg" yaml:"bg"`
	Muted       string `mapstructure:"muted" yaml:"muted"`
	Accent      string `mapstructure:"accent" yaml:"accent"`
	CodeBG      string `mapstructure:"code_bg" yaml:"code_bg"`
	SelectionBG string `mapstructure:"selection_bg" yaml:"selection_bg"`
	Link        string `mapstructure:"link" yaml:"link"`
	Header      string `mapstructure:"header" yaml:"header"`
	HR          string `mapstructure:"hr" yaml:"hr"`
	Mark        string `mapstructure:"mark" yaml:"mark"`
}

// Preset names a predefined theme and its description, for a host to
// list as choices.
type Preset struct {
	Name        string
	Description string
	Config      Config
}

// PresetNames defines the display order of built-in themes.
var PresetNames = []string{"gruvbox", "dracula", "nord", "solarized", "classic"}

// Presets contains every predefined theme.
var Presets = map[string]Preset{
	"classic": {
		Name: "classic", Description: "Classic green-on-black terminal style",
		Config: Config{
			FG: "#e5e5e5", BG: "#000000", Muted: "#808080", Accent: "#00ff00",
			CodeBG: "#1a1a1a", SelectionBG: "#264f78", Link: "#4da6ff",
			Header: "#00ff00", HR: "#808080", Mark: "#665c00",
		},
	},
	"gruvbox": {
		Name: "gruvbox", Description: "Retro warm earth tones",
		Config: Config{
			FG: "#ebdbb2", BG: "#282828", Muted: "#928374", Accent: "#fe8019",
			CodeBG: "#3c3836", SelectionBG: "#504945", Link: "#83a598",
			Header: "#fabd2f", HR: "#665c54", Mark: "#b57614",
		},
	},
	"dracula": {
		Name: "dracula", Description: "Popular dark theme with purple accents",
		Config: Config{
			FG: "#f8f8f2", BG: "#282a36", Muted: "#6272a4", Accent: "#bd93f9",
			CodeBG: "#44475a", SelectionBG: "#44475a", Link: "#8be9fd",
			Header: "#bd93f9", HR: "#6272a4", Mark: "#f1fa8c",
		},
	},
	"nord": {
		Name: "nord", Description: "Arctic, north-bluish color palette",
		Config: Config{
			FG: "#eceff4", BG: "#2e3440", Muted: "#4c566a", Accent: "#88c0d0",
			CodeBG: "#3b4252", SelectionBG: "#434c5e", Link: "#81a1c1",
			Header: "#88c0d0", HR: "#4c566a", Mark: "#ebcb8b",
		},
	},
	"solarized": {
		Name: "solarized", Description: "Precision colors for machines and people",
		Config: Config{
			FG: "#839496", BG: "#002b36", Muted: "#586e75", Accent: "#268bd2",
			CodeBG: "#073642", SelectionBG: "#073642", Link: "#2aa198",
			Header: "#268bd2", HR: "#586e75", Mark: "#b58900",
		},
	},
}

// ToPalette converts a theme config into a render.Palette, defaulting any
// unparseable color to opaque white.
func (c Config) ToPalette() render.Palette {
	return render.Palette{
		FG: mustRGB(c.FG), BG: mustRGB(c.BG), Dim: mustRGB(c.Muted),
		Accent: mustRGB(c.Accent), CodeBG: mustRGB(c.CodeBG),
		SelectionBG: mustRGB(c.SelectionBG), LinkColor: mustRGB(c.Link),
		HeaderColor: mustRGB(c.Header), HRColor: mustRGB(c.HR), MarkBG: mustRGB(c.Mark),
	}
}

// ParseRGB decodes a "#RRGGBB" hex string into a sink.RGB triple.
func ParseRGB(hex string) (sink.RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return sink.RGB{}, fmt.Errorf("theme: invalid color %q, want #RRGGBB", hex)
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return sink.RGB{}, fmt.Errorf("theme: invalid color %q: %w", hex, err)
	}
	return sink.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func mustRGB(hex string) sink.RGB {
	rgb, err := ParseRGB(hex)
	if err != nil {
		return sink.RGB{R: 255, G: 255, B: 255}
	}
	return rgb
}
