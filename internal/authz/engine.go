package authz

import (
	"gym-maintenance/internal/entities"
)

type Context struct {
	Actor       *entities.User
	Permissions map[string]bool
	Target      interface{}
}

func (c *Context) HasPermission(permission string) bool {
	if c.Permissions == nil {
		return false
	}
	return c.Permissions[permission]
}

// CanDo checks the role permission first and then, for unit-bound targets,
// the actor's unit scope.
func CanDo(permission string, ctx Context) bool {
	if ctx.Actor == nil || !ctx.HasPermission(permission) {
		return false
	}
	if ctx.Target == nil {
		return true
	}

	scope := ScopeFor(ctx.Actor)
	switch t := ctx.Target.(type) {
	case *entities.Equipment:
		return scope.Allows(t.UnitID)
	case *entities.TechnicalCall:
		return scope.Allows(t.UnitID)
	case *entities.Unit:
		return scope.Allows(t.ID)
	case *entities.Notification:
		return t.UserID == ctx.Actor.ID
	default:
		return true
	}
}
