package ports

import (
	"context"

	"github.com/elbuensabor/backoffice/internal/core/domain"
)

// AuthService authenticates staff against the credential store and opens a
// session. The role claim on the credential record is authoritative.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, session *domain.Session, err error)
}
