package authz

import (
	"sort"

	"gym-maintenance/internal/entities"
)

// Scope is the set of units an actor may see. The zero value allows every unit.
type Scope struct {
	restricted bool
	units      map[string]struct{}
}

// ScopeFor is the single unit-visibility rule: technicians are limited to the
// units they are assigned to, every other role sees all units. A missing actor
// sees nothing.
func ScopeFor(actor *entities.User) Scope {
	if actor == nil {
		return Scope{restricted: true}
	}
	if actor.Role != entities.RoleTechnician {
		return Scope{}
	}

	units := make(map[string]struct{}, len(actor.Units))
	for _, id := range actor.Units {
		if id == entities.AllUnits {
			return Scope{}
		}
		units[id] = struct{}{}
	}
	return Scope{restricted: true, units: units}
}

func (s Scope) Restricted() bool { return s.restricted }

func (s Scope) Allows(unitID string) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.units[unitID]
	return ok
}

// Units lists the allowed unit ids in order; nil when unrestricted.
func (s Scope) Units() []string {
	if !s.restricted {
		return nil
	}
	out := make([]string, 0, len(s.units))
	for id := range s.units {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
