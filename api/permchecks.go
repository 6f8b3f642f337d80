package api

import (
	"context"
	"errors"
	"fmt"

	"litten/roles"
	"litten/state"
	"litten/types"
)

var (
	ErrMissingPermission = errors.New("missing permission")
	ErrNotAUser          = errors.New("caller is not a user")
)

// AuthzRoleCheck verifies that the authenticated caller holds at least one
// of the allowed roles. No role detail is leaked to the caller on failure,
// the request boundary maps ErrMissingPermission to a generic Forbidden.
func AuthzRoleCheck(ctx context.Context, authData AuthData, allowed []roles.Role) error {
	if authData.TargetType != types.TargetTypeUser {
		return ErrNotAUser
	}

	var userRoles []string

	err := state.Pool.QueryRow(ctx, "SELECT roles FROM users WHERE user_id = $1", authData.ID).Scan(&userRoles)

	if err != nil {
		return fmt.Errorf("failed to fetch user roles: %w", err)
	}

	if !roles.HasAny(userRoles, allowed) {
		return ErrMissingPermission
	}

	return nil
}
