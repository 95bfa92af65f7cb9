package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// OrderService manages the order lifecycle: creation with price resolution,
// state transitions, and the active-order listing.
type OrderService struct {
	orders ports.OrderRepository
	menu   ports.MenuRepository
	tz     *time.Location
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, menu ports.MenuRepository, tz *time.Location, log zerolog.Logger) *OrderService {
	if tz == nil {
		tz = time.UTC
	}
	return &OrderService{orders: orders, menu: menu, tz: tz, log: log}
}

// Create opens a new ACTIVE order. The total is the sum of unit price times
// quantity per line; item ids the price source does not know contribute zero
// to the total but stay on the order so the kitchen still sees the line.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	items := make([]domain.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %q", domain.ErrInvalidArgument, it.ItemID)
		}
		price, ok, err := s.menu.UnitPrice(ctx, it.ItemID)
		if err != nil {
			return nil, fmt.Errorf("price lookup for %q: %w", it.ItemID, err)
		}
		if ok {
			total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		items = append(items, domain.LineItem{ItemID: it.ItemID, Quantity: it.Quantity})
	}

	order := &domain.Order{
		Items:     items,
		Total:     total,
		State:     domain.OrderActive,
		CreatedBy: in.CreatedBy,
		CreatedAt: time.Now().In(s.tz),
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}
	order.ID = id

	s.log.Info().
		Str("order_id", id).
		Str("total", total.StringFixed(2)).
		Str("created_by", in.CreatedBy).
		Msg("order created")

	return order, nil
}

// Transition moves an order to target. Re-finalizing a FINALIZED order is an
// idempotent no-op that preserves the original stamp; any other transition
// out of a terminal state is rejected. The finalization stamp is written in
// the same conditional update that flips the state, because daily revenue is
// attributed from that stamp alone.
func (s *OrderService) Transition(ctx context.Context, orderID string, target domain.OrderState) (*ports.TransitionResult, error) {
	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.State == domain.OrderFinalized && target == domain.OrderFinalized {
		return &ports.TransitionResult{
			State:            order.State,
			AlreadyFinalized: true,
			FinalizedAt:      order.FinalizedAt.Time,
		}, nil
	}
	if !order.State.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.State, target)
	}

	var finalizedAt time.Time
	if target == domain.OrderFinalized {
		finalizedAt = time.Now().In(s.tz)
	}

	matched, err := s.orders.UpdateState(ctx, orderID, order.State, target, finalizedAt)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Lost a race: another operator transitioned the order between our
		// read and the conditional write. Re-read and re-classify.
		current, err := s.orders.Get(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if current.State == domain.OrderFinalized && target == domain.OrderFinalized {
			return &ports.TransitionResult{
				State:            current.State,
				AlreadyFinalized: true,
				FinalizedAt:      current.FinalizedAt.Time,
			}, nil
		}
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, current.State, target)
	}

	s.log.Info().
		Str("order_id", orderID).
		Str("state", string(target)).
		Msg("order transitioned")

	return &ports.TransitionResult{State: target, FinalizedAt: finalizedAt}, nil
}

// ListActive returns ACTIVE orders sorted by id ascending; an empty slice is
// a valid result.
func (s *OrderService) ListActive(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.orders.ListByState(ctx, domain.OrderActive)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *OrderService) Menu(ctx context.Context) ([]*domain.MenuItem, error) {
	return s.menu.List(ctx)
}
