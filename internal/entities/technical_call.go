package entities

import (
	"slices"
	"time"
)

type CallType string

const (
	CallTypePreventive CallType = "preventive"
	CallTypeCorrective CallType = "corrective"
)

func (t CallType) Label() string {
	switch t {
	case CallTypePreventive:
		return "Preventiva"
	case CallTypeCorrective:
		return "Corretiva"
	default:
		return string(t)
	}
}

type CallPriority string

const (
	CallPriorityLow    CallPriority = "low"
	CallPriorityMedium CallPriority = "medium"
	CallPriorityHigh   CallPriority = "high"
)

func (p CallPriority) Label() string {
	switch p {
	case CallPriorityHigh:
		return "Alta"
	case CallPriorityMedium:
		return "Média"
	case CallPriorityLow:
		return "Baixa"
	default:
		return string(p)
	}
}

type CallStatus string

const (
	CallStatusPending    CallStatus = "pending"
	CallStatusInProgress CallStatus = "in-progress"
	CallStatusResolved   CallStatus = "resolved"
)

func (s CallStatus) Label() string {
	switch s {
	case CallStatusResolved:
		return "Resolvido"
	case CallStatusInProgress:
		return "Em Andamento"
	case CallStatusPending:
		return "Pendente"
	default:
		return string(s)
	}
}

// TechnicalCall is a maintenance ticket. EquipmentName and UnitName are copied at
// creation so the call stays readable after the equipment or unit is removed.
type TechnicalCall struct {
	ID            string       `json:"id" yaml:"id"`
	EquipmentID   string       `json:"equipment_id" yaml:"equipment_id"`
	EquipmentName string       `json:"equipment_name" yaml:"equipment_name"`
	UnitID        string       `json:"unit_id" yaml:"unit_id"`
	UnitName      string       `json:"unit_name" yaml:"unit_name"`
	Type          CallType     `json:"type" yaml:"type"`
	Priority      CallPriority `json:"priority" yaml:"priority"`
	Status        CallStatus   `json:"status" yaml:"status"`
	CreatedAt     time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" yaml:"updated_at"`
	Description   string       `json:"description" yaml:"description"`
	Technician    string       `json:"technician,omitempty" yaml:"technician,omitempty"`
	Resolution    string       `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	Photos        []string     `json:"photos,omitempty" yaml:"photos,omitempty"`
}

func (c TechnicalCall) IsOpen() bool {
	return c.Status != CallStatusResolved
}

func (c TechnicalCall) Clone() TechnicalCall {
	c.Photos = slices.Clone(c.Photos)
	return c
}
