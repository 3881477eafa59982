package dto

import (
	"time"

	"gym-maintenance/internal/entities"

	"github.com/aarondl/null/v8"
)

type CreateTechnicalCallDTO struct {
	EquipmentID string                `json:"equipment_id" validate:"required"`
	Type        entities.CallType     `json:"type" validate:"required,call_type"`
	Priority    entities.CallPriority `json:"priority" validate:"omitempty,call_priority"`
	Description string                `json:"description" validate:"required"`
	Technician  string                `json:"technician"`
	Photos      []string              `json:"photos" validate:"omitempty,dive,required"`
}

// UpdateTechnicalCallDTO is the call patch. CreatedAt is never part of it and
// UpdatedAt is always set by the store.
type UpdateTechnicalCallDTO struct {
	Status      *entities.CallStatus   `json:"status,omitempty" validate:"omitempty,call_status"`
	Priority    *entities.CallPriority `json:"priority,omitempty" validate:"omitempty,call_priority"`
	Description *string                `json:"description,omitempty" validate:"omitempty,min=1"`
	Technician  null.String            `json:"technician"`
	Resolution  null.String            `json:"resolution"`
	Photos      *[]string              `json:"photos,omitempty"`
}

type TechnicalCallDTO struct {
	ID            string                `json:"id"`
	EquipmentID   string                `json:"equipment_id"`
	EquipmentName string                `json:"equipment_name"`
	UnitID        string                `json:"unit_id"`
	UnitName      string                `json:"unit_name"`
	Type          entities.CallType     `json:"type"`
	TypeLabel     string                `json:"type_label"`
	Priority      entities.CallPriority `json:"priority"`
	PriorityLabel string                `json:"priority_label"`
	Status        entities.CallStatus   `json:"status"`
	StatusLabel   string                `json:"status_label"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
	Description   string                `json:"description"`
	Technician    string                `json:"technician,omitempty"`
	Resolution    string                `json:"resolution,omitempty"`
	Photos        []string              `json:"photos"`
	// EquipmentAvailable is false once the referenced equipment was deleted.
	EquipmentAvailable bool `json:"equipment_available"`
}
