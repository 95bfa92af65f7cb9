package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// StaffUpdate carries the contract fields changed by an update; nil fields
// are left untouched (merge semantics).
type StaffUpdate struct {
	Position *string
	Salary   *decimal.Decimal
}

// StaffRepository persists staff profiles in the profile store, keyed by
// identity id.
type StaffRepository interface {
	Create(ctx context.Context, profile *domain.StaffProfile) error
	Get(ctx context.Context, identityID string) (*domain.StaffProfile, error)
	Update(ctx context.Context, identityID string, fields StaffUpdate) error
	Delete(ctx context.Context, identityID string) error
	List(ctx context.Context) ([]*domain.StaffProfile, error)
}
