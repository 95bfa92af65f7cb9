package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// PriceSource resolves menu prices when computing order totals.
type PriceSource interface {
	// UnitPrice returns the price of a menu item; ok is false when the item
	// id is unknown.
	UnitPrice(ctx context.Context, itemID string) (price decimal.Decimal, ok bool, err error)
}

// MenuRepository is the menu collection: the price source plus listing.
type MenuRepository interface {
	PriceSource
	List(ctx context.Context) ([]*domain.MenuItem, error)
}
