package query

import (
	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/entities"
)

type EquipmentFilter struct {
	Search   string
	UnitID   string
	Status   string
	Category string
	Scope    authz.Scope
}

// FilterEquipments searches name, tag and manufacturer.
func FilterEquipments(list []entities.Equipment, f EquipmentFilter) []entities.Equipment {
	out := make([]entities.Equipment, 0, len(list))
	for _, e := range list {
		if !f.Scope.Allows(e.UnitID) {
			continue
		}
		if !matchesExact(f.UnitID, e.UnitID) || !matchesExact(f.Status, string(e.Status)) || !matchesExact(f.Category, e.Category) {
			continue
		}
		if !matchesSearch(f.Search, e.Name, e.Tag, e.Manufacturer) {
			continue
		}
		out = append(out, e)
	}
	return out
}

type CallFilter struct {
	Search      string
	UnitID      string
	EquipmentID string
	Status      string
	Priority    string
	Type        string
	// OpenOnly drops resolved calls.
	OpenOnly bool
	Period   DateRange
	Scope    authz.Scope
}

// FilterCalls searches the denormalized equipment and unit names and the description.
// Period applies to CreatedAt.
func FilterCalls(list []entities.TechnicalCall, f CallFilter) []entities.TechnicalCall {
	out := make([]entities.TechnicalCall, 0, len(list))
	for _, c := range list {
		if !f.Scope.Allows(c.UnitID) {
			continue
		}
		if !matchesExact(f.UnitID, c.UnitID) || !matchesExact(f.EquipmentID, c.EquipmentID) {
			continue
		}
		if !matchesExact(f.Status, string(c.Status)) || !matchesExact(f.Priority, string(c.Priority)) || !matchesExact(f.Type, string(c.Type)) {
			continue
		}
		if f.OpenOnly && !c.IsOpen() {
			continue
		}
		if !f.Period.Contains(c.CreatedAt) {
			continue
		}
		if !matchesSearch(f.Search, c.EquipmentName, c.UnitName, c.Description) {
			continue
		}
		out = append(out, c.Clone())
	}
	return out
}

type ChecklistFilter struct {
	EquipmentID string
	UnitID      string
	InspectorID string
	Period      DateRange
	Scope       authz.Scope
}

// FilterChecklists resolves each checklist's unit through its equipment. A checklist
// whose equipment no longer exists has no unit: it is kept only when neither a unit
// filter nor a restricted scope applies.
func FilterChecklists(list []entities.Checklist, equipment map[string]entities.Equipment, f ChecklistFilter) []entities.Checklist {
	out := make([]entities.Checklist, 0, len(list))
	for _, c := range list {
		eq, known := equipment[c.EquipmentID]
		if !known && (f.UnitID != "" || f.Scope.Restricted()) {
			continue
		}
		if known && (!f.Scope.Allows(eq.UnitID) || !matchesExact(f.UnitID, eq.UnitID)) {
			continue
		}
		if !matchesExact(f.EquipmentID, c.EquipmentID) || !matchesExact(f.InspectorID, c.InspectorID) {
			continue
		}
		if !f.Period.Contains(c.Date) {
			continue
		}
		out = append(out, c.Clone())
	}
	return out
}

type UnitFilter struct {
	Search string
	Scope  authz.Scope
}

func FilterUnits(list []entities.Unit, f UnitFilter) []entities.Unit {
	out := make([]entities.Unit, 0, len(list))
	for _, u := range list {
		if !f.Scope.Allows(u.ID) {
			continue
		}
		if !matchesSearch(f.Search, u.Name, u.Address, u.Technician) {
			continue
		}
		out = append(out, u)
	}
	return out
}

type UserFilter struct {
	Search string
	Role   string
}

func FilterUsers(list []entities.User, f UserFilter) []entities.User {
	out := make([]entities.User, 0, len(list))
	for _, u := range list {
		if !matchesExact(f.Role, string(u.Role)) {
			continue
		}
		if !matchesSearch(f.Search, u.Name, u.Email) {
			continue
		}
		out = append(out, u.Clone())
	}
	return out
}

// EquipmentIndex maps equipment by id for join lookups.
func EquipmentIndex(list []entities.Equipment) map[string]entities.Equipment {
	idx := make(map[string]entities.Equipment, len(list))
	for _, e := range list {
		idx[e.ID] = e
	}
	return idx
}

// UnitIndex maps units by id for join lookups.
func UnitIndex(list []entities.Unit) map[string]entities.Unit {
	idx := make(map[string]entities.Unit, len(list))
	for _, u := range list {
		idx[u.ID] = u
	}
	return idx
}
