package services

import (
	"context"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/query"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/types"

	"go.uber.org/zap"
)

type UnitServiceInterface interface {
	GetUnits(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.UnitDTO], error)
	FindUnit(ctx context.Context, id string) (*dto.UnitDTO, error)
	CreateUnit(ctx context.Context, payload dto.CreateUnitDTO) (*dto.UnitDTO, error)
	UpdateUnit(ctx context.Context, id string, payload dto.UpdateUnitDTO) (*dto.UnitDTO, error)
	DeleteUnit(ctx context.Context, id string) error
}

type UnitService struct {
	unitRepo      repositories.UnitRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	callRepo      repositories.TechnicalCallRepositoryInterface
	logger        *zap.Logger
}

func NewUnitService(
	unitRepo repositories.UnitRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	callRepo repositories.TechnicalCallRepositoryInterface,
	logger *zap.Logger,
) UnitServiceInterface {
	return &UnitService{unitRepo: unitRepo, equipmentRepo: equipmentRepo, callRepo: callRepo, logger: logger}
}

func (s *UnitService) GetUnits(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.UnitDTO], error) {
	authContext, err := authorize(ctx, authz.UnitsView)
	if err != nil {
		return nil, err
	}

	list := query.FilterUnits(s.unitRepo.GetUnits(ctx), query.UnitFilter{Search: filter.Search, Scope: scopeOf(authContext)})
	equipments := s.equipmentRepo.GetEquipments(ctx)
	calls := s.callRepo.GetCalls(ctx)

	out := make([]dto.UnitDTO, 0, len(list))
	for _, u := range list {
		out = append(out, toUnitDTO(u, equipments, calls))
	}
	return pageOf(out, filter), nil
}

func (s *UnitService) FindUnit(ctx context.Context, id string) (*dto.UnitDTO, error) {
	authContext, err := authorize(ctx, authz.UnitsView)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitRepo.FindUnit(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canSee(authContext, authz.UnitsView, unit); err != nil {
		return nil, err
	}

	res := toUnitDTO(*unit, s.equipmentRepo.GetEquipments(ctx), s.callRepo.GetCalls(ctx))
	return &res, nil
}

func (s *UnitService) CreateUnit(ctx context.Context, payload dto.CreateUnitDTO) (*dto.UnitDTO, error) {
	authContext, err := authorize(ctx, authz.UnitsManage)
	if err != nil {
		return nil, err
	}

	created := s.unitRepo.CreateUnit(ctx, entities.Unit{
		Name:           payload.Name,
		Address:        payload.Address,
		Technician:     payload.Technician,
		EquipmentCount: payload.EquipmentCount,
		Phone:          payload.Phone,
		Email:          payload.Email,
		Manager:        payload.Manager,
		Capacity:       payload.Capacity,
		OperatingHours: payload.OperatingHours,
		Notes:          payload.Notes,
	})
	s.logger.Info("unit created", zap.String("unit_id", created.ID), zap.String("user_id", authContext.Actor.ID))

	res := toUnitDTO(*created, nil, nil)
	return &res, nil
}

func (s *UnitService) UpdateUnit(ctx context.Context, id string, payload dto.UpdateUnitDTO) (*dto.UnitDTO, error) {
	authContext, err := authorize(ctx, authz.UnitsManage)
	if err != nil {
		return nil, err
	}

	updated, found := s.unitRepo.UpdateUnit(ctx, id, payload)
	if !found {
		return nil, apperrors.ErrNotFound
	}
	s.logger.Info("unit updated", zap.String("unit_id", id), zap.String("user_id", authContext.Actor.ID))

	res := toUnitDTO(*updated, s.equipmentRepo.GetEquipments(ctx), s.callRepo.GetCalls(ctx))
	return &res, nil
}

// DeleteUnit leaves equipment and calls of the unit in place.
func (s *UnitService) DeleteUnit(ctx context.Context, id string) error {
	authContext, err := authorize(ctx, authz.UnitsManage)
	if err != nil {
		return err
	}
	if !s.unitRepo.DeleteUnit(ctx, id) {
		return apperrors.ErrNotFound
	}
	s.logger.Info("unit deleted", zap.String("unit_id", id), zap.String("user_id", authContext.Actor.ID))
	return nil
}
