package ports

import (
	"context"
	"time"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// OrderRepository persists orders. Orders are append-only: there is no
// delete, only state transitions.
type OrderRepository interface {
	// Create inserts a new order and returns the store-assigned id.
	Create(ctx context.Context, order *domain.Order) (string, error)

	// Get returns an order or domain.ErrOrderNotFound.
	Get(ctx context.Context, orderID string) (*domain.Order, error)

	// ListByState returns all orders in the given state, sorted by id ascending.
	ListByState(ctx context.Context, state domain.OrderState) ([]*domain.Order, error)

	// ListAll returns every order; used by the financial reconciler.
	ListAll(ctx context.Context) ([]*domain.Order, error)

	// UpdateState flips the order state only when the stored state still
	// matches expected, writing finalizedAt (when non-zero) in the same
	// update. Returns false when no document matched, meaning the order is
	// absent or was transitioned concurrently.
	UpdateState(ctx context.Context, orderID string, expected, next domain.OrderState, finalizedAt time.Time) (bool, error)
}
