package domain

import (
	"errors"
	"fmt"
)

// Validation failures. Reported before any store mutation occurs.
var (
	ErrInvalidRole         = errors.New("invalid role")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidAmount       = errors.New("amount is not a valid positive number")
	ErrEmptyOrder          = errors.New("order has no line items")
	ErrInvalidMovementKind = errors.New("invalid movement kind")
	ErrInvalidOrderState   = errors.New("invalid order state")
)

// Not-found and conflict conditions surfaced by the stores.
var (
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileMissing     = errors.New("identity has no staff profile")
)

var ErrInvalidTransition = errors.New("invalid order state transition")

// ErrStoreUnavailable marks a store that could not be reached. The whole
// logical operation may be retried, except the provisioning create path,
// which requires a FindByEmail duplicate check first.
var ErrStoreUnavailable = errors.New("store unavailable")

// PartialFailureError reports a provisioning run that created the identity
// but failed to create the staff profile. When Compensated is true the
// identity was rolled back and no remediation is needed; otherwise the
// identity survives without a profile and must be removed manually.
type PartialFailureError struct {
	IdentityID    string
	Email         string
	Compensated   bool
	Cause         error
	CompensateErr error
}

func (e *PartialFailureError) Error() string {
	if e.Compensated {
		return fmt.Sprintf("provisioning partially failed, identity %s rolled back: %v", e.IdentityID, e.Cause)
	}
	return fmt.Sprintf("provisioning partially failed and compensation failed, identity %s (%s) requires manual cleanup: %v",
		e.IdentityID, e.Email, e.Cause)
}

func (e *PartialFailureError) Unwrap() error { return e.Cause }

// OrphanedCredentialError reports a deprovisioning run that removed the staff
// profile but could not remove the credential, leaving a login-capable
// identity behind. Security relevant: never collapsed into a generic error.
type OrphanedCredentialError struct {
	Name       string
	Email      string
	IdentityID string
	Cause      error
}

func (e *OrphanedCredentialError) Error() string {
	return fmt.Sprintf("profile for %q removed but credential %s (%s) could not be deleted, remove it manually: %v",
		e.Name, e.IdentityID, e.Email, e.Cause)
}

func (e *OrphanedCredentialError) Unwrap() error { return e.Cause }

// UnknownOutcomeError reports a store call that was cancelled before its
// outcome could be confirmed. Neither success nor failure may be assumed;
// callers must check the store (FindByEmail) before retrying.
type UnknownOutcomeError struct {
	Op    string
	Email string
	Cause error
}

func (e *UnknownOutcomeError) Error() string {
	return fmt.Sprintf("%s for %s cancelled with unknown outcome: %v", e.Op, e.Email, e.Cause)
}

func (e *UnknownOutcomeError) Unwrap() error { return e.Cause }
