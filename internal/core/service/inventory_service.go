package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// InventoryService manages the stock list. Items are keyed by normalized
// name; updates are last-writer-wins with no history.
type InventoryService struct {
	inventory ports.InventoryRepository
	log       zerolog.Logger
}

func NewInventoryService(inventory ports.InventoryRepository, log zerolog.Logger) *InventoryService {
	return &InventoryService{inventory: inventory, log: log}
}

func (s *InventoryService) List(ctx context.Context) ([]*domain.InventoryItem, error) {
	return s.inventory.List(ctx)
}

// Upsert creates or replaces the item keyed by the normalized name. The unit
// cost accepts the same tolerant notations as the finance ledger.
func (s *InventoryService) Upsert(ctx context.Context, name string, quantity int64, rawUnitCost string) (*domain.InventoryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidArgument)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidArgument)
	}
	cost, err := domain.ParseAmount(rawUnitCost)
	if err != nil {
		return nil, err
	}

	item := &domain.InventoryItem{
		Key:      domain.NormalizeItemKey(name),
		Name:     name,
		Quantity: quantity,
		UnitCost: cost,
	}
	if err := s.inventory.Upsert(ctx, item); err != nil {
		return nil, err
	}

	s.log.Info().Str("key", item.Key).Int64("quantity", quantity).Msg("inventory item upserted")
	return item, nil
}

func (s *InventoryService) Remove(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrInvalidArgument)
	}
	return s.inventory.DeleteByKey(ctx, domain.NormalizeItemKey(name))
}

// Search filters the full list case-insensitively by substring; the store
// has no text index, and the list is small enough to scan.
func (s *InventoryService) Search(ctx context.Context, query string) ([]*domain.InventoryItem, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}

	matches := make([]*domain.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}
