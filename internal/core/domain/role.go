package domain

// Role is the closed set of staff roles recognised by the system.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleManager       Role = "manager"
	RoleCashier       Role = "cashier"
	RoleCook          Role = "cook"
)

// ParseRole validates a raw role string against the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator, RoleManager, RoleCashier, RoleCook:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Authorize evaluates the access policy for an operation that names the roles
// allowed to perform it. Administrators pass everything. Managers inherit
// every permission that is not administrator-exclusive: when the required set
// does not name the administrator role a manager passes regardless of
// membership. Every other role passes only by explicit membership.
func Authorize(actor Role, required ...Role) bool {
	if actor == RoleAdministrator {
		return true
	}
	if actor == RoleManager && !containsRole(required, RoleAdministrator) {
		return true
	}
	return containsRole(required, actor)
}

func containsRole(set []Role, r Role) bool {
	for _, candidate := range set {
		if candidate == r {
			return true
		}
	}
	return false
}
