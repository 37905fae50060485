package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2legit2git/dawn/internal/clipboardsink"
	"github.com/2legit2git/dawn/internal/config"
	"github.com/2legit2git/dawn/internal/engine"
	"github.com/2legit2git/dawn/internal/highlight"
	"github.com/2legit2git/dawn/internal/imagesink"
	"github.com/2legit2git/dawn/internal/render"
	"github.com/2legit2git/dawn/internal/termsink"
	"github.com/2legit2git/dawn/internal/texsink"
	"github.com/2legit2git/dawn/internal/theme"
)

// runEdit assembles the concrete sinks and launches the Bubble Tea
// program, opening path if one was given or starting a blank document
// otherwise.
func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	preset, ok := theme.Presets[cfg.Theme]
	if !ok {
		preset = theme.Presets["gruvbox"]
	}

	display := termsink.Stdout()
	img := imagesink.New(os.Stdout)
	sinks := render.Sinks{
		Display:   display,
		Image:     img,
		Math:      texsink.New(),
		Highlight: highlight.New(cfg.SyntaxHighlight),
	}

	eng := engine.New(engine.Options{
		Sinks:           sinks,
		Clipboard:       clipboardsink.New(),
		Palette:         preset.Config.ToPalette(),
		Cols:            80,
		Rows:            24,
		WrapWidth:       cfg.WrapWidth,
		AutosaveSeconds: cfg.AutosaveSeconds,
	})

	if len(args) == 1 {
		if _, statErr := os.Stat(args[0]); statErr == nil {
			if loadErr := eng.LoadDocument(args[0]); loadErr != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], loadErr)
			}
		} else {
			eng.NewDocument()
			eng.SetPath(args[0])
		}
	} else {
		eng.NewDocument()
	}

	termsink.EnterAltScreen(os.Stdout)
	defer termsink.LeaveAltScreen(os.Stdout)

	p := tea.NewProgram(termsink.New(eng, os.Stdout), tea.WithMouseCellMotion(), tea.WithoutRenderer())
	if _, runErr := p.Run(); runErr != nil {
		return fmt.Errorf("editor exited with an error: %w", runErr)
	}
	return eng.Shutdown()
}
