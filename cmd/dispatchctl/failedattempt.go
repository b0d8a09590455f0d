package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	failedShipmentID string
	failedReason     string
)

var failedAttemptCmd = &cobra.Command{
	Use:   "failed-attempt",
	Short: "Record a failed delivery attempt and schedule a re-attempt",
	RunE:  runFailedAttempt,
}

func init() {
	failedAttemptCmd.Flags().StringVar(&failedShipmentID, "shipment", "", "shipment id the attempt failed for")
	failedAttemptCmd.Flags().StringVar(&failedReason, "reason", "", "failure reason (defaults to customer unavailable)")
	rootCmd.AddCommand(failedAttemptCmd)
}

func runFailedAttempt(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if failedShipmentID == "" {
		return fmt.Errorf("--shipment is required")
	}

	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.cleanup()

	alert, err := rt.runner.SimulateFailedAttempt(ctx, failedShipmentID, failedReason)
	if err != nil {
		return fmt.Errorf("failed attempt: %w", err)
	}

	if jsonOut {
		return printJSON(alert)
	}

	fmt.Printf("%s: %s\n", failedShipmentID, alert.Message)
	fmt.Println("re-attempt scheduled")
	return nil
}
