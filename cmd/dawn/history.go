package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/2legit2git/dawn/internal/config"
	"github.com/2legit2git/dawn/internal/history"
)

var historyDir string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently edited documents",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDir, "dir", ".", "directory to scan for Markdown documents")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	maxAge := time.Duration(cfg.HistoryMaxDays) * 24 * time.Hour
	entries, err := history.List(historyDir, cfg.HistoryMaxCount, maxAge)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%s  %8s  %s\n", e.HumanModTime(), e.HumanSize(), e.Path)
	}
	return nil
}
