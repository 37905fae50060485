package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2legit2git/dawn/internal/persist"
	"github.com/2legit2git/dawn/internal/preview"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview <path>",
	Short: "Render a document read-only and print it",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "wrap width for the rendered preview")
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := persist.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	out, err := preview.RenderWithError(string(doc.Body), previewWidth)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", args[0], err)
	}
	fmt.Println(out)
	return nil
}
