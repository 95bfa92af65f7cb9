package ports

import (
	"context"
	"time"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// LineItemInput is one order position as submitted by the cashier.
type LineItemInput struct {
	ItemID   string
	Quantity int
}

// CreateOrderInput carries the data needed to open a new order.
type CreateOrderInput struct {
	Items     []LineItemInput
	CreatedBy string // identity id of the cashier taking the order
}

// TransitionResult describes the outcome of a state transition.
// AlreadyFinalized marks the idempotent no-op case: the order was FINALIZED
// before the call and its original stamp is preserved.
type TransitionResult struct {
	State            domain.OrderState
	AlreadyFinalized bool
	FinalizedAt      time.Time
}

// OrderService manages the order lifecycle.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	Transition(ctx context.Context, orderID string, target domain.OrderState) (*TransitionResult, error)
	ListActive(ctx context.Context) ([]*domain.Order, error)
	Menu(ctx context.Context) ([]*domain.MenuItem, error)
}
