package ports

import (
	"context"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// CredentialStore is the external identity service. It fails independently of
// the profile store; no cross-store transaction exists, so the Provisioning
// Coordinator sequences calls against it in a fixed order.
type CredentialStore interface {
	// CreateIdentity stores a new credential record and returns the
	// store-assigned opaque identity id.
	CreateIdentity(ctx context.Context, identity *domain.Identity) (string, error)

	// FindByEmail returns the identity registered under email, or
	// domain.ErrIdentityNotFound. Also the duplicate check before retrying a
	// failed provisioning run.
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)

	// DeleteIdentity is idempotent: deleting an absent identity succeeds.
	DeleteIdentity(ctx context.Context, identityID string) error
}
