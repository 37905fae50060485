package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dawn [path]",
	Short: "A terminal WYSIWYG Markdown editor",
	Long: `dawn is a keyboard-driven, cursor-aware Markdown editor that renders
headers, emphasis, links, images, code, and math inline as you type.

Examples:
  dawn                 # start on a new, untitled document
  dawn notes.md        # open (or create) notes.md
  dawn preview notes.md # render notes.md read-only and exit
  dawn config          # show the active configuration`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

