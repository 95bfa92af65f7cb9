package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

type stubInventoryRepo struct {
	items map[string]*domain.InventoryItem
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[string]*domain.InventoryItem)}
}

func (r *stubInventoryRepo) List(_ context.Context) ([]*domain.InventoryItem, error) {
	out := make([]*domain.InventoryItem, 0, len(r.items))
	for _, it := range r.items {
		clone := *it
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubInventoryRepo) Upsert(_ context.Context, item *domain.InventoryItem) error {
	clone := *item
	r.items[item.Key] = &clone
	return nil
}

func (r *stubInventoryRepo) DeleteByKey(_ context.Context, key string) error {
	if _, ok := r.items[key]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, key)
	return nil
}

func TestInventoryUpsert_NormalizesKey(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo, zerolog.Nop())

	item, err := svc.Upsert(context.Background(), "  Harina de Maiz ", 40, "3.500,00")
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if item.Key != "harina_de_maiz" {
		t.Errorf("key = %q, want harina_de_maiz", item.Key)
	}
	if want := decimal.RequireFromString("3500.00"); !item.UnitCost.Equal(want) {
		t.Errorf("unit cost = %s, want %s", item.UnitCost, want)
	}

	// Same name, different casing, replaces in place.
	if _, err := svc.Upsert(context.Background(), "HARINA DE MAIZ", 10, "3600"); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(repo.items))
	}
	if repo.items["harina_de_maiz"].Quantity != 10 {
		t.Errorf("quantity not replaced: %d", repo.items["harina_de_maiz"].Quantity)
	}
}

func TestInventoryUpsert_Validation(t *testing.T) {
	svc := NewInventoryService(newStubInventoryRepo(), zerolog.Nop())

	if _, err := svc.Upsert(context.Background(), "  ", 1, "10"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("empty name: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.Upsert(context.Background(), "sal", -1, "10"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("negative quantity: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.Upsert(context.Background(), "sal", 1, "gratis"); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("bad cost: expected ErrInvalidAmount, got %v", err)
	}
}

func TestInventoryRemove(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo, zerolog.Nop())

	if _, err := svc.Upsert(context.Background(), "Queso Costeno", 5, "12000"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := svc.Remove(context.Background(), "queso costeno"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if len(repo.items) != 0 {
		t.Errorf("expected empty inventory, got %d items", len(repo.items))
	}
	if err := svc.Remove(context.Background(), "queso costeno"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventorySearch(t *testing.T) {
	repo := newStubInventoryRepo()
	svc := NewInventoryService(repo, zerolog.Nop())

	for _, name := range []string{"Harina de Maiz", "Harina de Trigo", "Panela"} {
		if _, err := svc.Upsert(context.Background(), name, 1, "100"); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	matches, err := svc.Search(context.Background(), "harina")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}

	all, err := svc.Search(context.Background(), "  ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("blank query must return everything, got %d", len(all))
	}
}
