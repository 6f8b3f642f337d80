// Role based authorization for privileged list operations.
//
// Roles are a closed enumeration stored as a text array on the user record.
// Every privileged operation declares the set of roles allowed to perform it
// and passes iff the caller's role set intersects that set.
package roles

import (
	"golang.org/x/exp/slices"
)

type Role string

const (
	RoleUser        Role = "user"
	RoleDeveloper   Role = "developer"
	RoleVerifiedBot Role = "verified_bot"
	RoleBotFounder  Role = "bot_founder"
	RoleAdmin       Role = "admin"
	RoleBotReviewer Role = "bot_reviewer"
	RoleSupport     Role = "support"
)

var All = []Role{
	RoleUser,
	RoleDeveloper,
	RoleVerifiedBot,
	RoleBotFounder,
	RoleAdmin,
	RoleBotReviewer,
	RoleSupport,
}

var (
	// Partner and user management
	PermManageList = []Role{RoleAdmin, RoleBotFounder}

	// Bot moderation (approve/deny/feature/tally repair)
	PermModerateBots = []Role{RoleAdmin, RoleBotFounder, RoleBotReviewer}
)

// Valid reports whether s is a known role
func Valid(s string) bool {
	return slices.Contains(All, Role(s))
}

// Parse maps a stored role set onto the enumeration, dropping unknown
// entries. Unknown roles can only appear through manual database edits and
// must never grant anything.
func Parse(stored []string) []Role {
	var out []Role

	for _, s := range stored {
		if Valid(s) {
			out = append(out, Role(s))
		}
	}

	return out
}

// HasAny reports whether the caller's role set intersects the allowed set
func HasAny(userRoles []string, allowed []Role) bool {
	for _, r := range Parse(userRoles) {
		if slices.Contains(allowed, r) {
			return true
		}
	}

	return false
}
