package entities

import (
	"slices"
	"time"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleInspector  Role = "inspector"
)

// AllUnits in a user's unit list grants every unit.
const AllUnits = "all"

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleTechnician:
		return "Técnico"
	case RoleInspector:
		return "Inspetor"
	default:
		return string(r)
	}
}

type User struct {
	ID           string     `json:"id" yaml:"id"`
	Name         string     `json:"name" yaml:"name"`
	Email        string     `json:"email" yaml:"email"`
	Role         Role       `json:"role" yaml:"role"`
	Units        []string   `json:"units" yaml:"units"`
	Avatar       string     `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Active       bool       `json:"active" yaml:"active"`
	LastLogin    *time.Time `json:"last_login,omitempty" yaml:"last_login,omitempty"`
	PasswordHash string     `json:"-" yaml:"password_hash"`
}

func (u User) Clone() User {
	u.Units = slices.Clone(u.Units)
	if u.LastLogin != nil {
		t := *u.LastLogin
		u.LastLogin = &t
	}
	return u
}
