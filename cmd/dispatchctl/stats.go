package main

import (
	"context"
	"fmt"
	"sort"

	execdomain "dispatch-control/internal/features/execution/domain"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the tracking log",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	stats, err := rt.stats.ExecutionStats(ctx)
	if err != nil {
		return fmt.Errorf("execution stats: %w", err)
	}

	if jsonOut {
		return printJSON(stats)
	}

	fmt.Printf("shipments:       %d\n", stats.TotalShipments)
	fmt.Printf("delivered:       %d (%.1f%%)\n", stats.DeliveredCount, stats.DeliveryRate)
	fmt.Printf("packing delays:  %d\n", stats.PackingDelays)
	fmt.Printf("delivery delays: %d\n", stats.DeliveryDelays)

	statuses := make([]string, 0, len(stats.StatusDistribution))
	for status := range stats.StatusDistribution {
		statuses = append(statuses, string(status))
	}
	sort.Strings(statuses)
	for _, status := range statuses {
		fmt.Printf("  %-20s %d\n", status, stats.StatusDistribution[execdomain.Status(status)])
	}
	return nil
}
