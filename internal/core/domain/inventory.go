package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked product, keyed by its normalized name.
// Updates are last-writer-wins; no history is retained.
type InventoryItem struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// NormalizeItemKey derives the inventory document key from a product name:
// trimmed, lowercased, spaces replaced with underscores.
func NormalizeItemKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// MenuItem is a sellable product with its unit price; the menu collection is
// the price source for order totals.
type MenuItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
