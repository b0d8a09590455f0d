package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/core/metrics"
	"dispatch-control/internal/features/execution/adapters"
	"dispatch-control/internal/features/execution/domain"
	"dispatch-control/internal/features/execution/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func newTestRecorder(t *testing.T) *metrics.Recorder {
	t.Helper()

	rec, err := metrics.NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)
	return rec
}

func newTestTracker(t *testing.T, store ports.EventStore, pacing Pacing) *Tracker {
	t.Helper()

	return NewTracker(store, clock.NewManual(testStart), newTestRecorder(t), pacing)
}

// failingStore returns a fixed error from every operation.
type failingStore struct {
	err error
}

func (f failingStore) Append(ctx context.Context, event domain.TrackingEvent) error {
	return f.err
}

func (f failingStore) ReadAll(ctx context.Context) ([]domain.TrackingEvent, error) {
	return nil, f.err
}

func (f failingStore) ReadByShipment(ctx context.Context, shipmentID string) ([]domain.TrackingEvent, error) {
	return nil, f.err
}

func statuses(events []domain.TrackingEvent) []domain.Status {
	out := make([]domain.Status, len(events))
	for i, event := range events {
		out[i] = event.Status
	}
	return out
}

func TestTracker_Simulate_HappyPath(t *testing.T) {
	tracker := newTestTracker(t, adapters.NewMemoryStore(), Pacing{})
	ctx := context.Background()

	events, err := tracker.Simulate(ctx, "SHP001", false, false)
	require.NoError(t, err)

	assert.Equal(t, []domain.Status{
		domain.StatusCreated,
		domain.StatusPacking,
		domain.StatusDispatched,
		domain.StatusInTransit,
		domain.StatusOutForDelivery,
		domain.StatusDelivered,
	}, statuses(events))

	assert.Equal(t, "Order confirmed, preparing for packing", events[0].Remarks)
	assert.Equal(t, "Package delivered successfully", events[5].Remarks)

	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].Timestamp.After(events[i-1].Timestamp),
			"timestamps must strictly increase per shipment")
	}

	status, err := tracker.CurrentStatus(ctx, "SHP001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, status)
}

func TestTracker_Simulate_PackingDelayPrecedesPacking(t *testing.T) {
	tracker := newTestTracker(t, adapters.NewMemoryStore(), Pacing{})
	ctx := context.Background()

	events, err := tracker.Simulate(ctx, "SHP001", true, false)
	require.NoError(t, err)

	require.Len(t, events, 7)
	assert.Equal(t, domain.StatusPackingDelay, events[1].Status)
	assert.Equal(t, domain.StatusPacking, events[2].Status)
	assert.Equal(t, "Packing exceeded expected time - warehouse congestion", events[1].Remarks)
}

func TestTracker_Simulate_DeliveryDelayPrecedesOutForDelivery(t *testing.T) {
	tracker := newTestTracker(t, adapters.NewMemoryStore(), Pacing{})
	ctx := context.Background()

	events, err := tracker.Simulate(ctx, "SHP001", true, true)
	require.NoError(t, err)

	require.Len(t, events, 8)
	assert.Equal(t, domain.StatusDeliveryDelay, events[5].Status)
	assert.Equal(t, domain.StatusOutForDelivery, events[6].Status)
	assert.Equal(t, "Delivery delayed - traffic congestion", events[5].Remarks)
}

func TestTracker_Simulate_PacingAdvancesClock(t *testing.T) {
	tracker := newTestTracker(t, adapters.NewMemoryStore(), Pacing{StepGap: time.Minute, DelayGap: 2 * time.Minute})
	ctx := context.Background()

	events, err := tracker.Simulate(ctx, "SHP001", true, false)
	require.NoError(t, err)

	// Gap after CREATED is a step gap, gap after the marker is a delay gap.
	assert.GreaterOrEqual(t, events[1].Timestamp.Sub(events[0].Timestamp), time.Minute)
	assert.GreaterOrEqual(t, events[2].Timestamp.Sub(events[1].Timestamp), 2*time.Minute)
}

func TestTracker_Simulate_AppendFailureAborts(t *testing.T) {
	tracker := newTestTracker(t, failingStore{err: errors.New("disk full")}, Pacing{})

	_, err := tracker.Simulate(context.Background(), "SHP001", false, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulation aborted at CREATED")
}

func TestTracker_CurrentStatus_NotFound(t *testing.T) {
	tracker := newTestTracker(t, adapters.NewMemoryStore(), Pacing{})

	status, err := tracker.CurrentStatus(context.Background(), "SHP404")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, status)
}

func TestTracker_History(t *testing.T) {
	tracker := newTestTracker(t, adapters.NewMemoryStore(), Pacing{})
	ctx := context.Background()

	_, err := tracker.Simulate(ctx, "SHP001", false, false)
	require.NoError(t, err)
	_, err = tracker.Simulate(ctx, "SHP002", false, false)
	require.NoError(t, err)

	one, err := tracker.History(ctx, "SHP001")
	require.NoError(t, err)
	assert.Len(t, one, 6)
	for _, event := range one {
		assert.Equal(t, "SHP001", event.ShipmentID)
	}

	all, err := tracker.History(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 12)

	// Re-reading without new writes returns an identical ordered set.
	again, err := tracker.History(ctx, "SHP001")
	require.NoError(t, err)
	assert.Equal(t, one, again)
}
