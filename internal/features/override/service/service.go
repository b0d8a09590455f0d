package service

import (
	"context"
	"fmt"

	"dispatch-control/internal/core/clock"
	"dispatch-control/internal/core/logger"
	"dispatch-control/internal/features/override/domain"
	"dispatch-control/internal/features/override/ports"

	"go.uber.org/zap"
)

// Service applies human overrides to pipeline decisions and answers lock
// and history queries. Overrides are explicit, reasoned, logged, and
// traceable; an agreeing manager leaves no trace at all.
type Service struct {
	store ports.OverrideStore
	clock clock.Clock
}

// NewService creates a Service on top of the given override store.
func NewService(store ports.OverrideStore, clk clock.Clock) *Service {
	return &Service{
		store: store,
		clock: clk,
	}
}

// Apply records a manager's decision over the pipeline's. Reasons outside
// the catalog and unknown decisions are rejected. When manager and
// pipeline agree nothing is logged; otherwise the override is appended
// with a manual lock and the manager's decision becomes final.
func (s *Service) Apply(ctx context.Context, shipmentID string, aiDecision, overrideDecision domain.Decision, reason string) (domain.Result, error) {
	if !domain.ValidReason(reason) {
		return domain.Result{}, fmt.Errorf("%w: %q", domain.ErrReasonNotInCatalog, reason)
	}

	if _, err := domain.ParseDecision(string(aiDecision)); err != nil {
		return domain.Result{}, fmt.Errorf("%w: ai decision %q", domain.ErrInvalidDecision, aiDecision)
	}
	if _, err := domain.ParseDecision(string(overrideDecision)); err != nil {
		return domain.Result{}, fmt.Errorf("%w: override decision %q", domain.ErrInvalidDecision, overrideDecision)
	}

	if aiDecision == overrideDecision {
		return domain.Result{
			Status:        domain.OutcomeNoOverride,
			FinalDecision: aiDecision,
			Locked:        false,
			Message:       "Manager agrees with AI decision",
		}, nil
	}

	record := domain.Record{
		ShipmentID:       shipmentID,
		AIDecision:       aiDecision,
		OverrideDecision: overrideDecision,
		Reason:           reason,
		Timestamp:        s.clock.Now(),
		ManualLock:       true,
	}

	if err := s.store.Append(ctx, record); err != nil {
		return domain.Result{}, fmt.Errorf("failed to append override record: %w", err)
	}

	logger.Get().Info("Human override applied",
		zap.String("shipment_id", shipmentID),
		zap.String("ai_decision", string(aiDecision)),
		zap.String("override_decision", string(overrideDecision)),
		zap.String("reason", reason))

	return domain.Result{
		Status:        domain.OutcomeOverridden,
		FinalDecision: overrideDecision,
		Locked:        true,
		Message:       fmt.Sprintf("AI decision '%s' overridden to '%s'", aiDecision, overrideDecision),
	}, nil
}

// IsLocked reports whether the shipment carries a manual lock. Decision
// engines must check this before re-evaluating a shipment.
func (s *Service) IsLocked(ctx context.Context, shipmentID string) (bool, error) {
	records, err := s.store.ReadByShipment(ctx, shipmentID)
	if err != nil {
		return false, fmt.Errorf("failed to read override records: %w", err)
	}

	for _, record := range records {
		if record.ManualLock {
			return true, nil
		}
	}

	return false, nil
}

// History returns the override records for one shipment in insertion
// order, or the entire log when shipmentID is empty.
func (s *Service) History(ctx context.Context, shipmentID string) ([]domain.Record, error) {
	var (
		records []domain.Record
		err     error
	)

	if shipmentID == "" {
		records, err = s.store.ReadAll(ctx)
	} else {
		records, err = s.store.ReadByShipment(ctx, shipmentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read override records: %w", err)
	}

	return records, nil
}

// Unlock removes every override record for the shipment, releasing its
// manual lock, and returns how many records were removed. Zero means
// there was nothing to unlock.
func (s *Service) Unlock(ctx context.Context, shipmentID string) (int, error) {
	removed, err := s.store.DeleteByShipment(ctx, shipmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete override records: %w", err)
	}

	if removed > 0 {
		logger.Get().Info("Manual lock removed",
			zap.String("shipment_id", shipmentID),
			zap.Int("records_removed", removed))
	}

	return removed, nil
}

// Stats summarizes the override log for the learning loop. An empty log
// yields a zeroed Stats; only a failing store read is an error.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("failed to read override records: %w", err)
	}

	stats := domain.Stats{
		TotalOverrides:     len(records),
		ReasonDistribution: make(map[string]int),
	}

	for _, record := range records {
		stats.ReasonDistribution[record.Reason]++

		switch record.OverrideDecision {
		case domain.DecisionDispatch:
			stats.ToDispatch++
		case domain.DecisionDelay:
			stats.ToDelay++
		case domain.DecisionReschedule:
			stats.ToReschedule++
		}
	}

	// Modal reason, ties broken lexicographically so the answer is stable.
	best := 0
	for reason, count := range stats.ReasonDistribution {
		if count > best || (count == best && reason < stats.MostCommonReason) {
			best = count
			stats.MostCommonReason = reason
		}
	}

	return stats, nil
}
