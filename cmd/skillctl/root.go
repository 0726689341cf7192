package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var (
	flagSnapshot string
	flagOutput   string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:          "skillctl",
	Short:        "Offline matching, search and learning tools over a skill-swap snapshot",
	SilenceUsage: true,
	Long: `skillctl runs the skill-swap matching, search and learning engines against a
YAML snapshot of users and the skill catalog, without a database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch flagOutput {
		case outputYAML, outputJSON:
			return nil
		default:
			return fmt.Errorf("unsupported output %q (use %s or %s)", flagOutput, outputYAML, outputJSON)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagSnapshot, "snapshot", "s", "snapshot.yaml", "Path to the YAML snapshot (users + catalog)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", outputYAML, "Output format: yaml or json")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Dump the loaded snapshot to stderr")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSnapshotFlag() (Snapshot, error) {
	snap, err := LoadSnapshot(flagSnapshot)
	if err != nil {
		return Snapshot{}, fmt.Errorf("cannot load snapshot: %w", err)
	}
	if flagDebug {
		spew.Fdump(os.Stderr, snap)
	}
	return snap, nil
}

func stderrLogger() *log.Logger {
	if flagDebug {
		return log.New(os.Stderr, "", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
