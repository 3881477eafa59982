// Package events holds the domain events published on the event bus after a
// successful mutation.
package events

import (
	"gym-maintenance/internal/entities"
)

const (
	EquipmentCreatedName     = "equipment.created"
	EquipmentDeletedName     = "equipment.deleted"
	ChecklistSubmittedName   = "checklist.submitted"
	TechnicalCallCreatedName = "technical_call.created"
	TechnicalCallUpdatedName = "technical_call.updated"
)

type EquipmentCreated struct {
	Equipment entities.Equipment
	Actor     *entities.User
}

func (e EquipmentCreated) Name() string { return EquipmentCreatedName }

type EquipmentDeleted struct {
	Equipment entities.Equipment
	Actor     *entities.User
}

func (e EquipmentDeleted) Name() string { return EquipmentDeletedName }

// ChecklistSubmitted carries the outcome of an inspection. Call is set when the
// inspection opened a maintenance call.
type ChecklistSubmitted struct {
	Checklist    entities.Checklist
	Equipment    entities.Equipment
	AverageScore float64
	Status       entities.EquipmentStatus
	Call         *entities.TechnicalCall
	Actor        *entities.User
}

func (e ChecklistSubmitted) Name() string { return ChecklistSubmittedName }

type TechnicalCallCreated struct {
	Call  entities.TechnicalCall
	Actor *entities.User
}

func (e TechnicalCallCreated) Name() string { return TechnicalCallCreatedName }

type TechnicalCallUpdated struct {
	Call     entities.TechnicalCall
	Previous entities.TechnicalCall
	Actor    *entities.User
}

func (e TechnicalCallUpdated) Name() string { return TechnicalCallUpdatedName }
