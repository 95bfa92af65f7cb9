package domain

import "github.com/shopspring/decimal"

// StaffProfile describes a person in the profile store, keyed by the identity
// id assigned by the credential store. Outside the provisioning and
// deprovisioning windows a profile must not exist without its identity, nor
// an identity without its profile.
type StaffProfile struct {
	IdentityID string          `json:"identity_id"`
	Name       string          `json:"name"`
	Role       Role            `json:"role"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary"`
	Email      string          `json:"email"`
}
