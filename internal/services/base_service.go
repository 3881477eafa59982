package services

import (
	"context"
	"strings"

	"gym-maintenance/internal/authz"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/utils"
)

// buildAuthzContext reads the actor placed in ctx by the auth middleware.
func buildAuthzContext(ctx context.Context) (*authz.Context, error) {
	actor, err := utils.GetActorFromCtx(ctx)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	permissions, err := utils.GetPermissionsMapFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	return &authz.Context{Actor: actor, Permissions: permissions}, nil
}

// authorize checks permission without a target and returns the actor context.
func authorize(ctx context.Context, permission string) (*authz.Context, error) {
	authContext, err := buildAuthzContext(ctx)
	if err != nil {
		return nil, err
	}
	if !authz.CanDo(permission, *authContext) {
		return nil, apperrors.ErrForbidden
	}
	return authContext, nil
}

// canSee reports whether the actor may see target. Records outside the actor's
// units are reported as missing rather than forbidden.
func canSee(authContext *authz.Context, permission string, target interface{}) error {
	if !allowed(authContext, permission, target) {
		return apperrors.ErrNotFound
	}
	return nil
}

func scopeOf(authContext *authz.Context) authz.Scope {
	return authz.ScopeFor(authContext.Actor)
}

// allowed checks permission against a concrete target.
func allowed(authContext *authz.Context, permission string, target interface{}) bool {
	withTarget := *authContext
	withTarget.Target = target
	return authz.CanDo(permission, withTarget)
}

// containsValue reports whether got is one of the comma separated values of want.
func containsValue(want, got string) bool {
	for _, v := range strings.Split(want, ",") {
		if strings.TrimSpace(v) == got {
			return true
		}
	}
	return false
}
