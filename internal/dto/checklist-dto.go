package dto

import (
	"time"

	"gym-maintenance/internal/entities"
)

type CreateChecklistDTO struct {
	EquipmentID            string                `json:"equipment_id" validate:"required"`
	PhysicalCondition      int                   `json:"physical_condition" validate:"required,min=1,max=10"`
	Functionality          int                   `json:"functionality" validate:"required,min=1,max=10"`
	Noise                  int                   `json:"noise" validate:"required,min=1,max=10"`
	Stability              int                   `json:"stability" validate:"required,min=1,max=10"`
	Observations           string                `json:"observations"`
	Photos                 []string              `json:"photos" validate:"omitempty,dive,required"`
	Videos                 []string              `json:"videos" validate:"omitempty,dive,required"`
	NeedsMaintenance       bool                  `json:"needs_maintenance"`
	MaintenanceType        entities.CallType     `json:"maintenance_type" validate:"omitempty,call_type"`
	MaintenancePriority    entities.CallPriority `json:"maintenance_priority" validate:"omitempty,call_priority"`
	MaintenanceDescription string                `json:"maintenance_description"`
}

type ChecklistDTO struct {
	ID                string    `json:"id"`
	EquipmentID       string    `json:"equipment_id"`
	EquipmentName     string    `json:"equipment_name"`
	UnitID            string    `json:"unit_id,omitempty"`
	UnitName          string    `json:"unit_name"`
	InspectorID       string    `json:"inspector_id"`
	PhysicalCondition int       `json:"physical_condition"`
	Functionality     int       `json:"functionality"`
	Noise             int       `json:"noise"`
	Stability         int       `json:"stability"`
	AverageScore      float64   `json:"average_score"`
	Observations      string    `json:"observations"`
	Photos            []string  `json:"photos"`
	Videos            []string  `json:"videos"`
	NeedsMaintenance  bool      `json:"needs_maintenance"`
	Date              time.Time `json:"date"`
}

// ChecklistResultDTO is returned by a submission: the stored checklist, the
// status the equipment received and the call opened for it, if any.
type ChecklistResultDTO struct {
	Checklist       ChecklistDTO             `json:"checklist"`
	AverageScore    float64                  `json:"average_score"`
	EquipmentStatus entities.EquipmentStatus `json:"equipment_status"`
	TechnicalCall   *TechnicalCallDTO        `json:"technical_call,omitempty"`
}
