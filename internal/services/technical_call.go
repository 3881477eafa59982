package services

import (
	"context"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/events"
	"gym-maintenance/internal/query"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/eventbus"
	"gym-maintenance/pkg/types"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type TechnicalCallServiceInterface interface {
	GetCalls(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.TechnicalCallDTO], error)
	FindCall(ctx context.Context, id string) (*dto.TechnicalCallDTO, error)
	CreateCall(ctx context.Context, payload dto.CreateTechnicalCallDTO) (*dto.TechnicalCallDTO, error)
	UpdateCall(ctx context.Context, id string, payload dto.UpdateTechnicalCallDTO) (*dto.TechnicalCallDTO, error)
}

type TechnicalCallService struct {
	callRepo      repositories.TechnicalCallRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	unitRepo      repositories.UnitRepositoryInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewTechnicalCallService(
	callRepo repositories.TechnicalCallRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	unitRepo repositories.UnitRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) TechnicalCallServiceInterface {
	return &TechnicalCallService{
		callRepo:      callRepo,
		equipmentRepo: equipmentRepo,
		unitRepo:      unitRepo,
		bus:           bus,
		logger:        logger,
	}
}

func (s *TechnicalCallService) GetCalls(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.TechnicalCallDTO], error) {
	authContext, err := authorize(ctx, authz.CallsView)
	if err != nil {
		return nil, err
	}
	period, err := query.NewDateRange(filter.Value("date_from"), filter.Value("date_to"))
	if err != nil {
		return nil, apperrors.NewInvalidInputError("período inválido, use o formato AAAA-MM-DD")
	}

	list := query.FilterCalls(s.callRepo.GetCalls(ctx), query.CallFilter{
		Search:      filter.Search,
		UnitID:      filter.Value("unit_id"),
		EquipmentID: filter.Value("equipment_id"),
		Status:      filter.Value("status"),
		Priority:    filter.Value("priority"),
		Type:        filter.Value("type"),
		OpenOnly:    filter.Value("open") == "true",
		Period:      period,
		Scope:       scopeOf(authContext),
	})

	equipments := query.EquipmentIndex(s.equipmentRepo.GetEquipments(ctx))
	out := make([]dto.TechnicalCallDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toTechnicalCallDTO(c, equipments))
	}
	return pageOf(out, filter), nil
}

func (s *TechnicalCallService) FindCall(ctx context.Context, id string) (*dto.TechnicalCallDTO, error) {
	authContext, err := authorize(ctx, authz.CallsView)
	if err != nil {
		return nil, err
	}
	call, err := s.callRepo.FindCall(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canSee(authContext, authz.CallsView, call); err != nil {
		return nil, err
	}

	res := toTechnicalCallDTO(*call, query.EquipmentIndex(s.equipmentRepo.GetEquipments(ctx)))
	return &res, nil
}

// CreateCall opens a pending call. Equipment and unit names are copied onto the
// call; a missing unit leaves the unit name empty.
func (s *TechnicalCallService) CreateCall(ctx context.Context, payload dto.CreateTechnicalCallDTO) (*dto.TechnicalCallDTO, error) {
	authContext, err := authorize(ctx, authz.CallsCreate)
	if err != nil {
		return nil, err
	}
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}
	if err := canSee(authContext, authz.CallsCreate, equipment); err != nil {
		return nil, err
	}

	call := entities.TechnicalCall{
		EquipmentID:   equipment.ID,
		EquipmentName: equipment.Name,
		UnitID:        equipment.UnitID,
		Type:          payload.Type,
		Priority:      payload.Priority,
		Status:        entities.CallStatusPending,
		Description:   payload.Description,
		Technician:    payload.Technician,
		Photos:        payload.Photos,
	}
	if call.Priority == "" {
		call.Priority = entities.CallPriorityMedium
	}
	if unit, err := s.unitRepo.FindUnit(ctx, equipment.UnitID); err == nil {
		call.UnitName = unit.Name
	}

	created := s.callRepo.CreateCall(ctx, call)
	s.logger.Info("technical call opened",
		zap.String("call_id", created.ID),
		zap.String("equipment_id", created.EquipmentID),
		zap.String("priority", string(created.Priority)),
		zap.String("user_id", authContext.Actor.ID),
	)
	s.bus.Publish(ctx, events.TechnicalCallCreated{Call: *created, Actor: authContext.Actor})

	res := toTechnicalCallDTO(*created, map[string]entities.Equipment{equipment.ID: *equipment})
	return &res, nil
}

// UpdateCall patches a call. A call without a technician is assigned to the
// acting user unless the patch names one.
func (s *TechnicalCallService) UpdateCall(ctx context.Context, id string, payload dto.UpdateTechnicalCallDTO) (*dto.TechnicalCallDTO, error) {
	authContext, err := authorize(ctx, authz.CallsUpdate)
	if err != nil {
		return nil, err
	}
	previous, err := s.callRepo.FindCall(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := canSee(authContext, authz.CallsUpdate, previous); err != nil {
		return nil, err
	}
	if !payload.Technician.Valid && previous.Technician == "" {
		payload.Technician = null.StringFrom(authContext.Actor.Name)
	}

	updated, found := s.callRepo.UpdateCall(ctx, id, payload)
	if !found {
		return nil, apperrors.ErrNotFound
	}
	s.logger.Info("technical call updated",
		zap.String("call_id", id),
		zap.String("status", string(updated.Status)),
		zap.String("user_id", authContext.Actor.ID),
	)
	s.bus.Publish(ctx, events.TechnicalCallUpdated{Call: *updated, Previous: *previous, Actor: authContext.Actor})

	res := toTechnicalCallDTO(*updated, query.EquipmentIndex(s.equipmentRepo.GetEquipments(ctx)))
	return &res, nil
}
