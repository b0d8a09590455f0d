package service

import (
	"context"
	"errors"
	"testing"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/features/execution/adapters"
	"dispatch-control/internal/features/execution/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier keeps every alert it receives.
type recordingNotifier struct {
	alerts []domain.Alert
}

func (r *recordingNotifier) Notify(ctx context.Context, alert domain.Alert) error {
	r.alerts = append(r.alerts, alert)
	return nil
}

// failingNotifier rejects every alert.
type failingNotifier struct{}

func (failingNotifier) Notify(ctx context.Context, alert domain.Alert) error {
	return errors.New("broker unreachable")
}

func TestAlerter_DelayPredicates(t *testing.T) {
	store := adapters.NewMemoryStore()
	tracker := newTestTracker(t, store, Pacing{})
	alerter := NewAlerter(store, clock.NewManual(testStart), newTestRecorder(t))
	ctx := context.Background()

	_, err := tracker.Simulate(ctx, "SHP001", true, false)
	require.NoError(t, err)
	_, err = tracker.Simulate(ctx, "SHP002", false, true)
	require.NoError(t, err)

	late, err := alerter.LatePacking(ctx, "SHP001")
	require.NoError(t, err)
	assert.True(t, late)

	late, err = alerter.LatePacking(ctx, "SHP002")
	require.NoError(t, err)
	assert.False(t, late)

	delayed, err := alerter.DeliveryDelayed(ctx, "SHP002")
	require.NoError(t, err)
	assert.True(t, delayed)

	delayed, err = alerter.DeliveryDelayed(ctx, "SHP001")
	require.NoError(t, err)
	assert.False(t, delayed)
}

func TestAlerter_Trigger_RoutesByIssue(t *testing.T) {
	notifier := &recordingNotifier{}
	alerter := NewAlerter(adapters.NewMemoryStore(), clock.NewManual(testStart), newTestRecorder(t), notifier)
	ctx := context.Background()

	testCases := []struct {
		name             string
		issue            domain.IssueType
		opsNotified      bool
		customerNotified bool
		message          string
	}{
		{"PackingDelayGoesToOps", domain.IssuePackingDelay, true, false, "Packing delayed - warehouse congestion"},
		{"DeliveryDelayGoesToCustomer", domain.IssueDeliveryDelay, false, true, "Delivery delayed - traffic/weather conditions"},
		{"FailedAttemptGoesToCustomer", domain.IssueFailedAttempt, false, true, "Delivery attempt failed - customer unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			alert := alerter.Trigger(ctx, "SHP001", tc.issue)

			assert.NotEmpty(t, alert.AlertID)
			assert.Equal(t, "SHP001", alert.ShipmentID)
			assert.Equal(t, tc.issue, alert.IssueType)
			assert.Equal(t, tc.opsNotified, alert.OpsNotified)
			assert.Equal(t, tc.customerNotified, alert.CustomerNotified)
			assert.Equal(t, tc.message, alert.Message)
		})
	}

	require.Len(t, notifier.alerts, 3)
	assert.Equal(t, domain.IssuePackingDelay, notifier.alerts[0].IssueType)
}

func TestAlerter_Trigger_NotifierFailureIsNotFatal(t *testing.T) {
	recording := &recordingNotifier{}
	alerter := NewAlerter(adapters.NewMemoryStore(), clock.NewManual(testStart), newTestRecorder(t),
		failingNotifier{}, recording)

	alert := alerter.Trigger(context.Background(), "SHP001", domain.IssueDeliveryDelay)

	assert.NotEmpty(t, alert.AlertID)
	// Later notifiers still run after an earlier one fails.
	require.Len(t, recording.alerts, 1)
	assert.Equal(t, alert.AlertID, recording.alerts[0].AlertID)
}

func TestAlerter_AlertIDsAreUnique(t *testing.T) {
	alerter := NewAlerter(adapters.NewMemoryStore(), clock.NewManual(testStart), newTestRecorder(t))
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		alert := alerter.Trigger(ctx, "SHP001", domain.IssuePackingDelay)
		assert.False(t, seen[alert.AlertID])
		seen[alert.AlertID] = true
	}
}
