package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// ProvisionInput carries the data needed to create a staff account across
// both stores.
type ProvisionInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// ProvisioningService creates and destroys staff accounts as one logical
// operation spanning the credential store and the profile store, compensating
// on partial failure. It also covers the day-to-day staff record operations.
type ProvisioningService interface {
	// Provision creates the identity first, then the profile. On a profile
	// failure the identity is compensated away; the distinguished outcomes
	// are reported as *domain.PartialFailureError and
	// *domain.UnknownOutcomeError.
	Provision(ctx context.Context, in ProvisionInput) (identityID string, err error)

	// Deprovision resolves a staff member by exact case-insensitive name and
	// deletes profile first, credential second. A credential-deletion failure
	// is reported as *domain.OrphanedCredentialError.
	Deprovision(ctx context.Context, name string) error

	ListStaff(ctx context.Context) ([]*domain.StaffProfile, error)

	// UpdateContract sets position and salary on an existing profile,
	// resolved by name like Deprovision.
	UpdateContract(ctx context.Context, name, position string, salary decimal.Decimal) error
}
