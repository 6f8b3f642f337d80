package roles

import "testing"

func TestHasAny(t *testing.T) {
	if HasAny([]string{"developer"}, PermModerateBots) {
		t.Error("Expected false, got true")
	}
	if !HasAny([]string{"bot_reviewer"}, PermModerateBots) {
		t.Error("Expected true, got false")
	}
	if HasAny([]string{"bot_reviewer"}, PermManageList) {
		t.Error("Expected false, got true")
	}
	if !HasAny([]string{"user", "admin"}, PermManageList) {
		t.Error("Expected true, got false")
	}
	if !HasAny([]string{"bot_founder"}, PermModerateBots) {
		t.Error("Expected true, got false")
	}
	if HasAny([]string{}, PermModerateBots) {
		t.Error("Expected false, got true")
	}
	// Unknown role names carry no permissions
	if HasAny([]string{"superadmin"}, PermManageList) {
		t.Error("Expected false, got true")
	}
}

func TestValid(t *testing.T) {
	for _, role := range All {
		if !Valid(string(role)) {
			t.Errorf("Expected %s to be valid", role)
		}
	}

	if Valid("superadmin") {
		t.Error("Expected superadmin to be invalid")
	}
	if Valid("") {
		t.Error("Expected empty string to be invalid")
	}
	if Valid("Admin") {
		t.Error("Role names are case sensitive")
	}
}

func TestParse(t *testing.T) {
	parsed := Parse([]string{"user", "superadmin", "admin"})

	if len(parsed) != 2 {
		t.Error("Expected 2 roles, got", len(parsed))
	}
	if parsed[0] != RoleUser || parsed[1] != RoleAdmin {
		t.Error("Unknown roles should be dropped, order preserved")
	}
}
