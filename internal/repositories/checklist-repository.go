package repositories

import (
	"context"
	"slices"

	"gym-maintenance/internal/entities"
	apperrors "gym-maintenance/pkg/errors"
)

const checklistIDPrefix = "CHK"

// ChecklistRepositoryInterface is append-only: checklists are never changed or removed.
type ChecklistRepositoryInterface interface {
	GetChecklists(ctx context.Context) []entities.Checklist
	FindChecklist(ctx context.Context, id string) (*entities.Checklist, error)
	CreateChecklist(ctx context.Context, checklist entities.Checklist) *entities.Checklist
}

type ChecklistRepository struct {
	storage Querier
}

func NewChecklistRepository(storage Querier) ChecklistRepositoryInterface {
	return &ChecklistRepository{storage: storage}
}

func (r *ChecklistRepository) GetChecklists(ctx context.Context) []entities.Checklist {
	var list []entities.Checklist
	r.storage.view(func(d *dataset) {
		list = make([]entities.Checklist, len(d.checklists))
		for i, c := range d.checklists {
			list[i] = c.Clone()
		}
	})
	return list
}

func (r *ChecklistRepository) FindChecklist(ctx context.Context, id string) (*entities.Checklist, error) {
	var (
		checklist entities.Checklist
		found     bool
	)
	r.storage.view(func(d *dataset) {
		i := slices.IndexFunc(d.checklists, func(c entities.Checklist) bool { return c.ID == id })
		if i >= 0 {
			checklist, found = d.checklists[i].Clone(), true
		}
	})
	if !found {
		return nil, apperrors.ErrNotFound
	}
	return &checklist, nil
}

// CreateChecklist assigns an id and, when the date is unset, stamps it with the storage clock.
func (r *ChecklistRepository) CreateChecklist(ctx context.Context, checklist entities.Checklist) *entities.Checklist {
	checklist = checklist.Clone()
	_ = r.storage.update(func(d *dataset) error {
		checklist.ID = r.storage.nextID(checklistIDPrefix)
		if checklist.Date.IsZero() {
			checklist.Date = r.storage.now()
		}
		d.checklists = append(d.checklists, checklist)
		return nil
	})
	out := checklist.Clone()
	return &out
}
