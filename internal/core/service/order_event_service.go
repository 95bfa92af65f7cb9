package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/elbuensabor/backoffice/internal/api/metrics"
	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) for order events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, orderID, state string, ts time.Time) (bool, error)
	Mark(ctx context.Context, orderID, state string, ts time.Time) error
}

type orderEventService struct {
	orders ports.OrderService
	dedup  DedupChecker
	log    zerolog.Logger
}

// NewOrderEventService returns an OrderEventService implementation that
// deduplicates device-reported status events before applying the transition.
func NewOrderEventService(orders ports.OrderService, dedup DedupChecker, log zerolog.Logger) ports.OrderEventService {
	return &orderEventService{orders: orders, dedup: dedup, log: log}
}

// Process validates, deduplicates, and applies a single order status event.
func (s *orderEventService) Process(ctx context.Context, in ports.OrderEventInput) error {
	target, err := domain.ParseOrderState(in.TargetState)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues("invalid_state").Inc()
		return fmt.Errorf("process order event: %w", err)
	}

	// Idempotency check. Floor devices retry aggressively; exact replays are
	// silently skipped. A failed check is logged and processing continues,
	// since Transition itself tolerates replays of the FINALIZED case.
	isDup, err := s.dedup.IsDuplicate(ctx, in.OrderID, in.TargetState, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("order_id", in.OrderID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("order_id", in.OrderID).Str("state", in.TargetState).Msg("duplicate event skipped")
		return nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, in.OrderID, in.TargetState, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("order_id", in.OrderID).Msg("failed to set dedup key")
	}

	result, err := s.orders.Transition(ctx, in.OrderID, target)
	if err != nil {
		metrics.EventsErrorsTotal.WithLabelValues(transitionFailureReason(err)).Inc()
		return fmt.Errorf("process order event: %w", err)
	}

	if result.AlreadyFinalized {
		s.log.Debug().Str("order_id", in.OrderID).Msg("order already finalized, event ignored")
		return nil
	}

	metrics.EventsProcessedTotal.WithLabelValues(in.TargetState, in.Source).Inc()
	s.log.Info().
		Str("order_id", in.OrderID).
		Str("state", in.TargetState).
		Str("source", in.Source).
		Msg("order event processed")

	return nil
}

func transitionFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		return "order_not_found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "transition_failed"
	}
}
