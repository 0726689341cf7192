package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skill-swap/internal/harvest"

	"github.com/spf13/cobra"
)

var (
	flagHarvestSelector string
	flagHarvestLimit    int
	flagHarvestWorkers  int
	flagHarvestTimeout  time.Duration
)

var harvestCmd = &cobra.Command{
	Use:   "harvest <url>...",
	Short: "Collect skill names from tag or topic pages into a catalog",
	Long: `harvest visits each page, takes the text of every element matching --selector
and writes the de-duplicated names as a snapshot catalog. The result can be
pasted into the catalog section of a snapshot file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHarvest,
}

func init() {
	harvestCmd.Flags().StringVar(&flagHarvestSelector, "selector", harvest.DefaultSelector, "CSS selector of elements holding one skill name each")
	harvestCmd.Flags().IntVar(&flagHarvestLimit, "limit", 0, "Maximum number of names (0 = no limit)")
	harvestCmd.Flags().IntVar(&flagHarvestWorkers, "workers", 2, "Pages fetched concurrently")
	harvestCmd.Flags().DurationVar(&flagHarvestTimeout, "timeout", 2*time.Minute, "Overall harvest timeout")
	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, flagHarvestTimeout)
	defer cancel()

	h := harvest.New(harvest.Options{
		Selector: flagHarvestSelector,
		Limit:    flagHarvestLimit,
		Delay:    300 * time.Millisecond,
	}, stderrLogger())

	names, err := h.HarvestAll(ctx, args, flagHarvestWorkers)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), flagOutput, catalogView{Catalog: names})
}
