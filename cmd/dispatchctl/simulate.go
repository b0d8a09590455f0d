package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	simulateShipmentID    string
	simulatePackingDelay  bool
	simulateDeliveryDelay bool
	simulatePaced         bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one shipment through the delivery lifecycle",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simulateShipmentID, "shipment", "", "shipment id to simulate")
	simulateCmd.Flags().BoolVar(&simulatePackingDelay, "packing-delay", false, "inject a packing delay")
	simulateCmd.Flags().BoolVar(&simulateDeliveryDelay, "delivery-delay", false, "inject a delivery delay")
	simulateCmd.Flags().BoolVar(&simulatePaced, "paced", false, "pause between lifecycle steps")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if simulateShipmentID == "" {
		return fmt.Errorf("--shipment is required")
	}

	rt, err := newRuntime(ctx, simulatePaced)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	summary, err := rt.runner.RunExecutionFlow(ctx, simulateShipmentID, simulatePackingDelay, simulateDeliveryDelay)
	if err != nil {
		return fmt.Errorf("execution flow: %w", err)
	}

	if jsonOut {
		return printJSON(summary)
	}

	fmt.Printf("%s finished as %s after %d events\n", summary.ShipmentID, summary.FinalStatus, summary.TotalEvents)
	for _, alert := range summary.Alerts {
		fmt.Printf("  alert [%s] %s\n", alert.IssueType, alert.Message)
	}
	return nil
}
