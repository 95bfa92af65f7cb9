package ports

import (
	"context"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// InventoryService manages the stock list.
type InventoryService interface {
	List(ctx context.Context) ([]*domain.InventoryItem, error)
	// Upsert creates or replaces the item keyed by the normalized name.
	Upsert(ctx context.Context, name string, quantity int64, rawUnitCost string) (*domain.InventoryItem, error)
	Remove(ctx context.Context, name string) error
	// Search returns items whose name contains the query, case-insensitively.
	Search(ctx context.Context, query string) ([]*domain.InventoryItem, error)
}
