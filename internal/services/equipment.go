package services

import (
	"context"
	"time"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/events"
	"gym-maintenance/internal/lifecycle"
	"gym-maintenance/internal/query"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/eventbus"
	"gym-maintenance/pkg/types"
	"gym-maintenance/pkg/utils"

	"go.uber.org/zap"
)

const defaultLifeExpectancy = 10

type EquipmentServiceInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.EquipmentDTO], error)
	FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	unitRepo      repositories.UnitRepositoryInterface
	bus           *eventbus.Bus
	clock         func() time.Time
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	unitRepo repositories.UnitRepositoryInterface,
	bus *eventbus.Bus,
	clock func() time.Time,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		unitRepo:      unitRepo,
		bus:           bus,
		clock:         clock,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipments(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.EquipmentDTO], error) {
	authContext, err := authorize(ctx, authz.EquipmentView)
	if err != nil {
		return nil, err
	}

	list := query.FilterEquipments(s.equipmentRepo.GetEquipments(ctx), query.EquipmentFilter{
		Search:   filter.Search,
		UnitID:   filter.Value("unit_id"),
		Status:   filter.Value("status"),
		Category: filter.Value("category"),
		Scope:    scopeOf(authContext),
	})

	units := query.UnitIndex(s.unitRepo.GetUnits(ctx))
	out := make([]dto.EquipmentDTO, 0, len(list))
	for _, e := range list {
		out = append(out, toEquipmentDTO(e, units))
	}
	return pageOf(out, filter), nil
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	authContext, err := authorize(ctx, authz.EquipmentView)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canSee(authContext, authz.EquipmentView, equipment); err != nil {
		return nil, err
	}

	res := toEquipmentDTO(*equipment, query.UnitIndex(s.unitRepo.GetUnits(ctx)))
	return &res, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*dto.EquipmentDTO, error) {
	authContext, err := authorize(ctx, authz.EquipmentCreate)
	if err != nil {
		return nil, err
	}
	if !allowed(authContext, authz.EquipmentCreate, &entities.Equipment{UnitID: payload.UnitID}) {
		s.logger.Warn("equipment create outside actor units",
			zap.String("user_id", authContext.Actor.ID),
			zap.String("unit_id", payload.UnitID),
		)
		return nil, apperrors.ErrForbidden
	}

	now := s.clock()
	equipment := entities.Equipment{
		Name:            payload.Name,
		Tag:             payload.Tag,
		Model:           payload.Model,
		Manufacturer:    payload.Manufacturer,
		AcquisitionDate: payload.AcquisitionDate,
		UnitID:          payload.UnitID,
		Status:          payload.Status,
		LastInspection:  payload.LastInspection,
		LifeExpectancy:  defaultLifeExpectancy,
		Category:        payload.Category,
	}
	if equipment.Status == "" {
		equipment.Status = entities.EquipmentStatusOK
	}
	if equipment.LastInspection == "" {
		equipment.LastInspection = utils.FormatDate(now)
	}
	if payload.LifeExpectancy != nil {
		equipment.LifeExpectancy = *payload.LifeExpectancy
	}
	if payload.CurrentAge != nil {
		equipment.CurrentAge = *payload.CurrentAge
	} else {
		equipment.CurrentAge = lifecycle.AgeInYears(equipment.AcquisitionDate, now)
	}

	created := s.equipmentRepo.CreateEquipment(ctx, equipment)
	s.logger.Info("equipment created",
		zap.String("equipment_id", created.ID),
		zap.String("unit_id", created.UnitID),
		zap.String("user_id", authContext.Actor.ID),
	)
	s.bus.Publish(ctx, events.EquipmentCreated{Equipment: *created, Actor: authContext.Actor})

	res := toEquipmentDTO(*created, query.UnitIndex(s.unitRepo.GetUnits(ctx)))
	return &res, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*dto.EquipmentDTO, error) {
	authContext, err := authorize(ctx, authz.EquipmentUpdate)
	if err != nil {
		return nil, err
	}
	current, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canSee(authContext, authz.EquipmentUpdate, current); err != nil {
		return nil, err
	}
	if payload.UnitID != nil && !allowed(authContext, authz.EquipmentUpdate, &entities.Equipment{UnitID: *payload.UnitID}) {
		return nil, apperrors.ErrForbidden
	}
	if payload.AcquisitionDate != nil && payload.CurrentAge == nil {
		age := lifecycle.AgeInYears(*payload.AcquisitionDate, s.clock())
		payload.CurrentAge = &age
	}

	updated, found := s.equipmentRepo.UpdateEquipment(ctx, id, payload)
	if !found {
		return nil, apperrors.ErrNotFound
	}
	s.logger.Info("equipment updated", zap.String("equipment_id", id), zap.String("user_id", authContext.Actor.ID))

	res := toEquipmentDTO(*updated, query.UnitIndex(s.unitRepo.GetUnits(ctx)))
	return &res, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	authContext, err := authorize(ctx, authz.EquipmentDelete)
	if err != nil {
		return err
	}
	current, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return err
	}
	if err := canSee(authContext, authz.EquipmentDelete, current); err != nil {
		return err
	}
	if !s.equipmentRepo.DeleteEquipment(ctx, id) {
		return apperrors.ErrNotFound
	}

	s.logger.Info("equipment deleted", zap.String("equipment_id", id), zap.String("user_id", authContext.Actor.ID))
	s.bus.Publish(ctx, events.EquipmentDeleted{Equipment: *current, Actor: authContext.Actor})
	return nil
}
