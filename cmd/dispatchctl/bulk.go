package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	bulkCount            int
	bulkDelayProbability float64
	bulkSeed             int64
)

var bulkCmd = &cobra.Command{
	Use:   "bulk",
	Short: "Run execution flows for a batch of generated shipments",
	RunE:  runBulk,
}

func init() {
	bulkCmd.Flags().IntVar(&bulkCount, "count", 5, "number of shipments to simulate")
	bulkCmd.Flags().Float64Var(&bulkDelayProbability, "delay-probability", 0.3, "probability of each delay type per shipment")
	bulkCmd.Flags().Int64Var(&bulkSeed, "seed", 0, "random seed (0 uses the current time)")
	rootCmd.AddCommand(bulkCmd)
}

func runBulk(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if bulkCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	if bulkDelayProbability < 0 || bulkDelayProbability > 1 {
		return fmt.Errorf("--delay-probability must be between 0 and 1")
	}

	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	seed := bulkSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	summaries, err := rt.runner.BulkSimulate(ctx, bulkCount, bulkDelayProbability, rng)
	if err != nil {
		return fmt.Errorf("bulk simulation: %w", err)
	}

	if jsonOut {
		return printJSON(summaries)
	}

	delivered := 0
	for _, summary := range summaries {
		if summary.ExecutionCompleted {
			delivered++
		}
		fmt.Printf("%s  %-20s events=%d alerts=%d\n", summary.ShipmentID, summary.FinalStatus, summary.TotalEvents, summary.AlertsTriggered)
	}
	fmt.Printf("delivered %d/%d shipments\n", delivered, len(summaries))
	return nil
}
