package ports

import (
	"context"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// InventoryRepository persists inventory items keyed by normalized name.
// Upserts are last-writer-wins.
type InventoryRepository interface {
	List(ctx context.Context) ([]*domain.InventoryItem, error)
	Upsert(ctx context.Context, item *domain.InventoryItem) error
	// DeleteByKey removes an item or returns domain.ErrItemNotFound.
	DeleteByKey(ctx context.Context, key string) error
}
