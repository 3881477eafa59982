package dto

import "gym-maintenance/internal/entities"

type CreateEquipmentDTO struct {
	Name            string                   `json:"name" validate:"required"`
	Tag             string                   `json:"tag" validate:"required"`
	Model           string                   `json:"model"`
	Manufacturer    string                   `json:"manufacturer"`
	AcquisitionDate string                   `json:"acquisition_date" validate:"omitempty,iso_date"`
	UnitID          string                   `json:"unit_id" validate:"required"`
	Status          entities.EquipmentStatus `json:"status" validate:"omitempty,equipment_status"`
	LastInspection  string                   `json:"last_inspection" validate:"omitempty,iso_date"`
	LifeExpectancy  *int                     `json:"life_expectancy" validate:"omitempty,gte=0"`
	CurrentAge      *int                     `json:"current_age" validate:"omitempty,gte=0"`
	Category        string                   `json:"category"`
}

// UpdateEquipmentDTO is the equipment patch: nil fields are left untouched.
type UpdateEquipmentDTO struct {
	Name            *string                   `json:"name,omitempty" validate:"omitempty,min=1"`
	Tag             *string                   `json:"tag,omitempty" validate:"omitempty,min=1"`
	Model           *string                   `json:"model,omitempty"`
	Manufacturer    *string                   `json:"manufacturer,omitempty"`
	AcquisitionDate *string                   `json:"acquisition_date,omitempty" validate:"omitempty,iso_date"`
	UnitID          *string                   `json:"unit_id,omitempty" validate:"omitempty,min=1"`
	Status          *entities.EquipmentStatus `json:"status,omitempty" validate:"omitempty,equipment_status"`
	LastInspection  *string                   `json:"last_inspection,omitempty" validate:"omitempty,iso_date"`
	LifeExpectancy  *int                      `json:"life_expectancy,omitempty" validate:"omitempty,gte=0"`
	CurrentAge      *int                      `json:"current_age,omitempty" validate:"omitempty,gte=0"`
	Category        *string                   `json:"category,omitempty"`
}

type EquipmentDTO struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Tag             string                   `json:"tag"`
	Model           string                   `json:"model"`
	Manufacturer    string                   `json:"manufacturer"`
	AcquisitionDate string                   `json:"acquisition_date"`
	UnitID          string                   `json:"unit_id"`
	UnitName        string                   `json:"unit_name"`
	Status          entities.EquipmentStatus `json:"status"`
	StatusLabel     string                   `json:"status_label"`
	LastInspection  string                   `json:"last_inspection"`
	LifeExpectancy  int                      `json:"life_expectancy"`
	CurrentAge      int                      `json:"current_age"`
	Category        string                   `json:"category"`
	Lifecycle       LifecycleDTO             `json:"lifecycle"`
}

type ShortEquipmentDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tag  string `json:"tag"`
}
