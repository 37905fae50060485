package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestConfigPathPrintsAPath(t *testing.T) {
	if err := configPath(&cobra.Command{}, nil); err != nil {
		t.Fatalf("configPath returned error: %v", err)
	}
}

func TestConfigShowPrintsDefaults(t *testing.T) {
	if err := configShow(&cobra.Command{}, nil); err != nil {
		t.Fatalf("configShow returned error: %v", err)
	}
}
