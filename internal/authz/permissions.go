package authz

import "gym-maintenance/internal/entities"

const (
	// Equipment
	EquipmentView   = "equipment:view"
	EquipmentCreate = "equipment:create"
	EquipmentUpdate = "equipment:update"
	EquipmentDelete = "equipment:delete"

	// Units
	UnitsView   = "units:view"
	UnitsManage = "units:manage"

	// Technical calls
	CallsView   = "calls:view"
	CallsCreate = "calls:create"
	CallsUpdate = "calls:update"

	// Checklists
	ChecklistsView   = "checklists:view"
	ChecklistsCreate = "checklists:create"

	// Read models
	LifecycleView = "lifecycle:view"
	DashboardView = "dashboard:view"
	ReportsView   = "reports:view"

	// Administration
	UsersManage = "users:manage"

	// Personal
	NotificationsView = "notifications:view"
	MediaUpload       = "media:upload"
)

var common = []string{
	EquipmentView, UnitsView, CallsView, ChecklistsView,
	LifecycleView, DashboardView, ReportsView,
	NotificationsView, MediaUpload,
}

var rolePermissions = map[entities.Role][]string{
	entities.RoleAdmin: append([]string{
		EquipmentCreate, EquipmentUpdate, EquipmentDelete,
		UnitsManage, UsersManage,
		CallsCreate, CallsUpdate, ChecklistsCreate,
	}, common...),
	entities.RoleTechnician: append([]string{
		EquipmentCreate, EquipmentUpdate, EquipmentDelete,
		CallsCreate, CallsUpdate, ChecklistsCreate,
	}, common...),
	entities.RoleInspector: append([]string{
		CallsCreate, ChecklistsCreate,
	}, common...),
}

// PermissionsFor returns a fresh permission set for role; unknown roles get none.
func PermissionsFor(role entities.Role) map[string]bool {
	perms := make(map[string]bool, len(rolePermissions[role]))
	for _, p := range rolePermissions[role] {
		perms[p] = true
	}
	return perms
}
