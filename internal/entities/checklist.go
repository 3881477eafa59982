package entities

import (
	"slices"
	"time"
)

// Checklist is an inspection record. Scores range from 1 to 10.
type Checklist struct {
	ID                     string       `json:"id" yaml:"id"`
	EquipmentID            string       `json:"equipment_id" yaml:"equipment_id"`
	InspectorID            string       `json:"inspector_id" yaml:"inspector_id"`
	PhysicalCondition      int          `json:"physical_condition" yaml:"physical_condition"`
	Functionality          int          `json:"functionality" yaml:"functionality"`
	Noise                  int          `json:"noise" yaml:"noise"`
	Stability              int          `json:"stability" yaml:"stability"`
	Observations           string       `json:"observations" yaml:"observations"`
	Photos                 []string     `json:"photos" yaml:"photos"`
	Videos                 []string     `json:"videos" yaml:"videos"`
	NeedsMaintenance       bool         `json:"needs_maintenance" yaml:"needs_maintenance"`
	MaintenanceType        CallType     `json:"maintenance_type,omitempty" yaml:"maintenance_type,omitempty"`
	MaintenancePriority    CallPriority `json:"maintenance_priority,omitempty" yaml:"maintenance_priority,omitempty"`
	MaintenanceDescription string       `json:"maintenance_description,omitempty" yaml:"maintenance_description,omitempty"`
	Date                   time.Time    `json:"date" yaml:"date"`
}

func (c Checklist) Clone() Checklist {
	c.Photos = slices.Clone(c.Photos)
	c.Videos = slices.Clone(c.Videos)
	return c
}
