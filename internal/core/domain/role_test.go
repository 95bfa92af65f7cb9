package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"administrator", "manager", "cashier", "cook"} {
		if _, err := ParseRole(valid); err != nil {
			t.Errorf("ParseRole(%q) returned error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "admin", "waiter", "Administrator"} {
		if _, err := ParseRole(invalid); err != ErrInvalidRole {
			t.Errorf("ParseRole(%q): expected ErrInvalidRole, got %v", invalid, err)
		}
	}
}

func TestAuthorize_AdministratorPassesEverything(t *testing.T) {
	if !Authorize(RoleAdministrator) {
		t.Error("administrator denied with empty required set")
	}
	if !Authorize(RoleAdministrator, RoleCook) {
		t.Error("administrator denied a cook-only operation")
	}
}

func TestAuthorize_ManagerInheritance(t *testing.T) {
	// Manager inherits permissions whose required set does not name the
	// administrator role.
	if !Authorize(RoleManager, RoleCashier) {
		t.Error("manager denied a cashier operation it should inherit")
	}
	if !Authorize(RoleManager, RoleCook) {
		t.Error("manager denied a cook operation it should inherit")
	}
	// When administrator appears in the required set, inheritance stops and
	// membership decides.
	if !Authorize(RoleManager, RoleAdministrator, RoleManager) {
		t.Error("manager denied despite explicit membership")
	}
	if Authorize(RoleManager, RoleAdministrator) {
		t.Error("manager passed an administrator-exclusive operation")
	}
}

func TestAuthorize_Membership(t *testing.T) {
	if Authorize(RoleCashier, RoleAdministrator, RoleManager) {
		t.Error("cashier passed an admin/manager operation")
	}
	if !Authorize(RoleCashier, RoleCashier) {
		t.Error("cashier denied its own operation")
	}
	if Authorize(RoleCook, RoleCashier) {
		t.Error("cook passed a cashier operation")
	}
}
