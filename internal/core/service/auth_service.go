package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/ports"
)

// AuthService implements login against the credential store. The credential
// record's role claim is the authoritative role for the session; the profile
// store only contributes the display name.
type AuthService struct {
	credentials ports.CredentialStore
	staff       ports.StaffRepository
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthService(credentials ports.CredentialStore, staff ports.StaffRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{credentials: credentials, staff: staff, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	identity, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrIdentityNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	profile, err := s.staff.Get(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrStaffNotFound) {
			// Authenticated but no profile: the provisioning invariant was
			// violated somewhere. Refuse the session rather than guessing.
			return "", nil, domain.ErrProfileMissing
		}
		return "", nil, err
	}

	session := &domain.Session{
		IdentityID: identity.ID,
		Email:      identity.Email,
		Name:       profile.Name,
		Role:       identity.Role,
	}

	token, err := s.generateToken(session)
	if err != nil {
		return "", nil, err
	}
	return token, session, nil
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"identity_id": session.IdentityID,
		"email":       session.Email,
		"name":        session.Name,
		"role":        string(session.Role),
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
