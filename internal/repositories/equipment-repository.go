package repositories

import (
	"context"
	"slices"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	apperrors "gym-maintenance/pkg/errors"
)

const equipmentIDPrefix = "EQ"

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context) []entities.Equipment
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, equipment entities.Equipment) *entities.Equipment
	UpdateEquipment(ctx context.Context, id string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, bool)
	DeleteEquipment(ctx context.Context, id string) bool
}

type EquipmentRepository struct {
	storage Querier
}

func NewEquipmentRepository(storage Querier) EquipmentRepositoryInterface {
	return &EquipmentRepository{
		storage: storage,
	}
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context) []entities.Equipment {
	var list []entities.Equipment
	r.storage.view(func(d *dataset) {
		list = slices.Clone(d.equipments)
	})
	return list
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	var (
		equipment entities.Equipment
		found     bool
	)
	r.storage.view(func(d *dataset) {
		if i := equipmentIndex(d, id); i >= 0 {
			equipment, found = d.equipments[i], true
		}
	})
	if !found {
		return nil, apperrors.ErrNotFound
	}
	return &equipment, nil
}

// CreateEquipment assigns a fresh id and appends. The unit reference is not checked.
func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment entities.Equipment) *entities.Equipment {
	_ = r.storage.update(func(d *dataset) error {
		equipment.ID = r.storage.nextID(equipmentIDPrefix)
		d.equipments = append(d.equipments, equipment)
		return nil
	})
	return &equipment
}

// UpdateEquipment merges the non-nil patch fields. An unknown id is a no-op and
// reports false.
func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, patch dto.UpdateEquipmentDTO) (*entities.Equipment, bool) {
	var (
		updated entities.Equipment
		found   bool
	)
	_ = r.storage.update(func(d *dataset) error {
		i := equipmentIndex(d, id)
		if i < 0 {
			return nil
		}
		applyEquipmentPatch(&d.equipments[i], patch)
		updated, found = d.equipments[i], true
		return nil
	})
	if !found {
		return nil, false
	}
	return &updated, true
}

// DeleteEquipment removes the record. Calls and checklists that reference it are kept.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id string) bool {
	var found bool
	_ = r.storage.update(func(d *dataset) error {
		i := equipmentIndex(d, id)
		if i < 0 {
			return nil
		}
		d.equipments = slices.Delete(d.equipments, i, i+1)
		found = true
		return nil
	})
	return found
}

func equipmentIndex(d *dataset, id string) int {
	return slices.IndexFunc(d.equipments, func(e entities.Equipment) bool { return e.ID == id })
}

func applyEquipmentPatch(e *entities.Equipment, patch dto.UpdateEquipmentDTO) {
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Tag != nil {
		e.Tag = *patch.Tag
	}
	if patch.Model != nil {
		e.Model = *patch.Model
	}
	if patch.Manufacturer != nil {
		e.Manufacturer = *patch.Manufacturer
	}
	if patch.AcquisitionDate != nil {
		e.AcquisitionDate = *patch.AcquisitionDate
	}
	if patch.UnitID != nil {
		e.UnitID = *patch.UnitID
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.LastInspection != nil {
		e.LastInspection = *patch.LastInspection
	}
	if patch.LifeExpectancy != nil {
		e.LifeExpectancy = *patch.LifeExpectancy
	}
	if patch.CurrentAge != nil {
		e.CurrentAge = *patch.CurrentAge
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
}
