package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

const minPasswordLength = 6

// ProvisioningService coordinates staff account creation and removal across
// the credential store and the profile store. Neither store participates in a
// transaction with the other; the fixed step order plus compensation is the
// entire consistency mechanism, so the steps must not be reordered.
type ProvisioningService struct {
	credentials ports.CredentialStore
	staff       ports.StaffRepository
	log         zerolog.Logger
}

func NewProvisioningService(credentials ports.CredentialStore, staff ports.StaffRepository, log zerolog.Logger) *ProvisioningService {
	return &ProvisioningService{credentials: credentials, staff: staff, log: log}
}

// Provision creates the identity first and the profile second. A step-1
// failure is returned verbatim with nothing to undo. A step-2 failure
// triggers compensation: the identity is deleted again, and the outcome is
// reported as a PartialFailureError either way so the caller can tell a
// clean rollback from an orphaned identity.
func (s *ProvisioningService) Provision(ctx context.Context, in ports.ProvisionInput) (string, error) {
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return "", err
	}
	if len(in.Password) < minPasswordLength {
		return "", domain.ErrPasswordTooShort
	}
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Name) == "" {
		return "", fmt.Errorf("%w: email and name are required", domain.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	identityID, err := s.credentials.CreateIdentity(ctx, &domain.Identity{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		DisplayName:  in.Name,
	})
	if err != nil {
		if ctx.Err() != nil {
			// The call was cut short: the identity may or may not have been
			// committed. Callers must FindByEmail before retrying.
			return "", &domain.UnknownOutcomeError{Op: "create identity", Email: in.Email, Cause: err}
		}
		return "", err
	}

	profile := &domain.StaffProfile{
		IdentityID: identityID,
		Name:       in.Name,
		Role:       role,
		Position:   string(role),
		Salary:     decimal.Zero,
		Email:      in.Email,
	}
	if err := s.staff.Create(ctx, profile); err != nil {
		s.log.Error().Err(err).
			Str("identity_id", identityID).
			Str("email", in.Email).
			Msg("profile creation failed, rolling back identity")

		// Compensation runs even when the caller's context is already gone.
		if delErr := s.credentials.DeleteIdentity(context.WithoutCancel(ctx), identityID); delErr != nil {
			return "", &domain.PartialFailureError{
				IdentityID:    identityID,
				Email:         in.Email,
				Compensated:   false,
				Cause:         err,
				CompensateErr: delErr,
			}
		}
		return "", &domain.PartialFailureError{
			IdentityID:  identityID,
			Email:       in.Email,
			Compensated: true,
			Cause:       err,
		}
	}

	s.log.Info().
		Str("identity_id", identityID).
		Str("role", string(role)).
		Msg("staff member provisioned")

	return identityID, nil
}

// Deprovision removes a staff member resolved by exact case-insensitive name.
// The profile is deleted first: if that fails the account stays fully intact.
// A credential-deletion failure afterwards leaves a login-capable orphan and
// is reported as OrphanedCredentialError, never a generic failure.
func (s *ProvisioningService) Deprovision(ctx context.Context, name string) error {
	profile, err := s.findByName(ctx, name)
	if err != nil {
		return err
	}

	if err := s.staff.Delete(ctx, profile.IdentityID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if err := s.credentials.DeleteIdentity(context.WithoutCancel(ctx), profile.IdentityID); err != nil {
		s.log.Warn().
			Str("identity_id", profile.IdentityID).
			Str("email", profile.Email).
			Msg("profile removed but credential deletion failed, orphaned credential left behind")
		return &domain.OrphanedCredentialError{
			Name:       profile.Name,
			Email:      profile.Email,
			IdentityID: profile.IdentityID,
			Cause:      err,
		}
	}

	s.log.Info().Str("identity_id", profile.IdentityID).Msg("staff member deprovisioned")
	return nil
}

func (s *ProvisioningService) ListStaff(ctx context.Context) ([]*domain.StaffProfile, error) {
	return s.staff.List(ctx)
}

// UpdateContract sets position and salary on an existing profile.
func (s *ProvisioningService) UpdateContract(ctx context.Context, name, position string, salary decimal.Decimal) error {
	if salary.Sign() <= 0 {
		return fmt.Errorf("%w: salary must be positive", domain.ErrInvalidAmount)
	}
	profile, err := s.findByName(ctx, name)
	if err != nil {
		return err
	}

	pos := strings.ToLower(strings.TrimSpace(position))
	return s.staff.Update(ctx, profile.IdentityID, ports.StaffUpdate{Position: &pos, Salary: &salary})
}

// findByName resolves a staff member by exact case-insensitive name match.
// Duplicate names resolve to the first match in store iteration order.
func (s *ProvisioningService) findByName(ctx context.Context, name string) (*domain.StaffProfile, error) {
	profiles, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range profiles {
		if strings.ToLower(strings.TrimSpace(p.Name)) == want {
			return p, nil
		}
	}
	return nil, domain.ErrStaffNotFound
}
