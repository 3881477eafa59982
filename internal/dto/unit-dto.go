package dto

import "github.com/aarondl/null/v8"

type CreateUnitDTO struct {
	Name           string `json:"name" validate:"required"`
	Address        string `json:"address" validate:"required"`
	Technician     string `json:"technician"`
	EquipmentCount int    `json:"equipment_count" validate:"gte=0"`
	Phone          string `json:"phone"`
	Email          string `json:"email" validate:"omitempty,email"`
	Manager        string `json:"manager"`
	Capacity       int    `json:"capacity" validate:"gte=0"`
	OperatingHours string `json:"operating_hours"`
	Notes          string `json:"notes"`
}

// UpdateUnitDTO is the unit patch: nil or invalid fields are left untouched.
type UpdateUnitDTO struct {
	Name           *string     `json:"name,omitempty" validate:"omitempty,min=1"`
	Address        *string     `json:"address,omitempty" validate:"omitempty,min=1"`
	Technician     *string     `json:"technician,omitempty"`
	EquipmentCount *int        `json:"equipment_count,omitempty" validate:"omitempty,gte=0"`
	Phone          null.String `json:"phone"`
	Email          null.String `json:"email" validate:"omitempty,email"`
	Manager        null.String `json:"manager"`
	Capacity       null.Int    `json:"capacity" validate:"omitempty,gte=0"`
	OperatingHours null.String `json:"operating_hours"`
	Notes          null.String `json:"notes"`
}

type UnitDTO struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Address             string `json:"address"`
	Technician          string `json:"technician"`
	EquipmentCount      int    `json:"equipment_count"`
	RegisteredEquipment int    `json:"registered_equipment"`
	OpenCalls           int    `json:"open_calls"`
	Phone               string `json:"phone,omitempty"`
	Email               string `json:"email,omitempty"`
	Manager             string `json:"manager,omitempty"`
	Capacity            int    `json:"capacity,omitempty"`
	OperatingHours      string `json:"operating_hours,omitempty"`
	Notes               string `json:"notes,omitempty"`
}
