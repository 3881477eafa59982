package utils

import (
	"context"

	"gym-maintenance/internal/entities"
	"gym-maintenance/pkg/contextkeys"
	apperrors "gym-maintenance/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUserNotFound
	}
	return userID, nil
}

// GetActorFromCtx returns the authenticated user placed in the context by the auth middleware.
func GetActorFromCtx(ctx context.Context) (*entities.User, error) {
	actor, ok := ctx.Value(contextkeys.ActorKey).(*entities.User)
	if !ok || actor == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return actor, nil
}

func GetPermissionsMapFromCtx(ctx context.Context) (map[string]bool, error) {
	permissions, ok := ctx.Value(contextkeys.UserPermissionsMapKey).(map[string]bool)
	if !ok || permissions == nil {
		return nil, apperrors.ErrForbidden
	}
	return permissions, nil
}

// WithActor stores the actor, its id and its permissions in ctx.
func WithActor(ctx context.Context, actor *entities.User, permissions map[string]bool) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, actor.ID)
	ctx = context.WithValue(ctx, contextkeys.ActorKey, actor)
	return context.WithValue(ctx, contextkeys.UserPermissionsMapKey, permissions)
}
