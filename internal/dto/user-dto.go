package dto

import (
	"time"

	"gym-maintenance/internal/entities"
)

type CreateUserDTO struct {
	Name     string        `json:"name" validate:"required"`
	Email    string        `json:"email" validate:"required,email"`
	Role     entities.Role `json:"role" validate:"required,user_role"`
	Units    []string      `json:"units" validate:"omitempty,unit_list"`
	Password string        `json:"password" validate:"required,min=6"`
	Avatar   string        `json:"avatar" validate:"omitempty,url"`
	Active   *bool         `json:"active"`
}

type UpdateUserDTO struct {
	Name     *string        `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string        `json:"email,omitempty" validate:"omitempty,email"`
	Role     *entities.Role `json:"role,omitempty" validate:"omitempty,user_role"`
	Units    *[]string      `json:"units,omitempty" validate:"omitempty,unit_list"`
	Password *string        `json:"password,omitempty" validate:"omitempty,min=6"`
	Avatar   *string        `json:"avatar,omitempty" validate:"omitempty,url"`
	Active   *bool          `json:"active,omitempty"`
}

type UserDTO struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Role      entities.Role `json:"role"`
	RoleLabel string        `json:"role_label"`
	Units     []string      `json:"units"`
	Avatar    string        `json:"avatar,omitempty"`
	Active    bool          `json:"active"`
	LastLogin *time.Time    `json:"last_login,omitempty"`
}
