package repositories

import (
	"context"
	"slices"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	apperrors "gym-maintenance/pkg/errors"
)

const callIDPrefix = "CALL"

type TechnicalCallRepositoryInterface interface {
	GetCalls(ctx context.Context) []entities.TechnicalCall
	FindCall(ctx context.Context, id string) (*entities.TechnicalCall, error)
	CreateCall(ctx context.Context, call entities.TechnicalCall) *entities.TechnicalCall
	UpdateCall(ctx context.Context, id string, patch dto.UpdateTechnicalCallDTO) (*entities.TechnicalCall, bool)
}

type TechnicalCallRepository struct {
	storage Querier
}

func NewTechnicalCallRepository(storage Querier) TechnicalCallRepositoryInterface {
	return &TechnicalCallRepository{storage: storage}
}

func (r *TechnicalCallRepository) GetCalls(ctx context.Context) []entities.TechnicalCall {
	var list []entities.TechnicalCall
	r.storage.view(func(d *dataset) {
		list = make([]entities.TechnicalCall, len(d.calls))
		for i, c := range d.calls {
			list[i] = c.Clone()
		}
	})
	return list
}

func (r *TechnicalCallRepository) FindCall(ctx context.Context, id string) (*entities.TechnicalCall, error) {
	var (
		call  entities.TechnicalCall
		found bool
	)
	r.storage.view(func(d *dataset) {
		if i := callIndex(d, id); i >= 0 {
			call, found = d.calls[i].Clone(), true
		}
	})
	if !found {
		return nil, apperrors.ErrNotFound
	}
	return &call, nil
}

// CreateCall assigns an id and stamps createdAt and updatedAt with the storage clock.
func (r *TechnicalCallRepository) CreateCall(ctx context.Context, call entities.TechnicalCall) *entities.TechnicalCall {
	call = call.Clone()
	_ = r.storage.update(func(d *dataset) error {
		now := r.storage.now()
		call.ID = r.storage.nextID(callIDPrefix)
		call.CreatedAt = now
		call.UpdatedAt = now
		d.calls = append(d.calls, call)
		return nil
	})
	out := call.Clone()
	return &out
}

// UpdateCall merges the patch, keeps createdAt and moves updatedAt to now, never
// before createdAt. An unknown id is a no-op and reports false.
func (r *TechnicalCallRepository) UpdateCall(ctx context.Context, id string, patch dto.UpdateTechnicalCallDTO) (*entities.TechnicalCall, bool) {
	var (
		updated entities.TechnicalCall
		found   bool
	)
	_ = r.storage.update(func(d *dataset) error {
		i := callIndex(d, id)
		if i < 0 {
			return nil
		}
		c := &d.calls[i]
		applyCallPatch(c, patch)
		now := r.storage.now()
		if now.Before(c.CreatedAt) {
			now = c.CreatedAt
		}
		c.UpdatedAt = now
		updated, found = c.Clone(), true
		return nil
	})
	if !found {
		return nil, false
	}
	return &updated, true
}

func callIndex(d *dataset, id string) int {
	return slices.IndexFunc(d.calls, func(c entities.TechnicalCall) bool { return c.ID == id })
}

func applyCallPatch(c *entities.TechnicalCall, patch dto.UpdateTechnicalCallDTO) {
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Priority != nil {
		c.Priority = *patch.Priority
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Technician.Valid {
		c.Technician = patch.Technician.String
	}
	if patch.Resolution.Valid {
		c.Resolution = patch.Resolution.String
	}
	if patch.Photos != nil {
		c.Photos = slices.Clone(*patch.Photos)
	}
}
