package repositories

import (
	"context"
	"slices"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	apperrors "gym-maintenance/pkg/errors"
)

const unitIDPrefix = "UNIT"

type UnitRepositoryInterface interface {
	GetUnits(ctx context.Context) []entities.Unit
	FindUnit(ctx context.Context, id string) (*entities.Unit, error)
	CreateUnit(ctx context.Context, unit entities.Unit) *entities.Unit
	UpdateUnit(ctx context.Context, id string, patch dto.UpdateUnitDTO) (*entities.Unit, bool)
	DeleteUnit(ctx context.Context, id string) bool
}

type UnitRepository struct {
	storage Querier
}

func NewUnitRepository(storage Querier) UnitRepositoryInterface {
	return &UnitRepository{storage: storage}
}

func (r *UnitRepository) GetUnits(ctx context.Context) []entities.Unit {
	var list []entities.Unit
	r.storage.view(func(d *dataset) {
		list = slices.Clone(d.units)
	})
	return list
}

func (r *UnitRepository) FindUnit(ctx context.Context, id string) (*entities.Unit, error) {
	var (
		unit  entities.Unit
		found bool
	)
	r.storage.view(func(d *dataset) {
		if i := unitIndex(d, id); i >= 0 {
			unit, found = d.units[i], true
		}
	})
	if !found {
		return nil, apperrors.ErrNotFound
	}
	return &unit, nil
}

func (r *UnitRepository) CreateUnit(ctx context.Context, unit entities.Unit) *entities.Unit {
	_ = r.storage.update(func(d *dataset) error {
		unit.ID = r.storage.nextID(unitIDPrefix)
		d.units = append(d.units, unit)
		return nil
	})
	return &unit
}

func (r *UnitRepository) UpdateUnit(ctx context.Context, id string, patch dto.UpdateUnitDTO) (*entities.Unit, bool) {
	var (
		updated entities.Unit
		found   bool
	)
	_ = r.storage.update(func(d *dataset) error {
		i := unitIndex(d, id)
		if i < 0 {
			return nil
		}
		applyUnitPatch(&d.units[i], patch)
		updated, found = d.units[i], true
		return nil
	})
	if !found {
		return nil, false
	}
	return &updated, true
}

// DeleteUnit does not cascade: equipment and calls keep the dangling unit id.
func (r *UnitRepository) DeleteUnit(ctx context.Context, id string) bool {
	var found bool
	_ = r.storage.update(func(d *dataset) error {
		i := unitIndex(d, id)
		if i < 0 {
			return nil
		}
		d.units = slices.Delete(d.units, i, i+1)
		found = true
		return nil
	})
	return found
}

func unitIndex(d *dataset, id string) int {
	return slices.IndexFunc(d.units, func(u entities.Unit) bool { return u.ID == id })
}

func applyUnitPatch(u *entities.Unit, patch dto.UpdateUnitDTO) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Address != nil {
		u.Address = *patch.Address
	}
	if patch.Technician != nil {
		u.Technician = *patch.Technician
	}
	if patch.EquipmentCount != nil {
		u.EquipmentCount = *patch.EquipmentCount
	}
	if patch.Phone.Valid {
		u.Phone = patch.Phone.String
	}
	if patch.Email.Valid {
		u.Email = patch.Email.String
	}
	if patch.Manager.Valid {
		u.Manager = patch.Manager.String
	}
	if patch.Capacity.Valid {
		u.Capacity = patch.Capacity.Int
	}
	if patch.OperatingHours.Valid {
		u.OperatingHours = patch.OperatingHours.String
	}
	if patch.Notes.Valid {
		u.Notes = patch.Notes.String
	}
}
