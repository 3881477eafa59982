package services

import (
	"context"

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

type ChecklistServiceInterface interface {
	GetChecklists(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.ChecklistDTO], error)
	FindChecklist(ctx context.Context, id string) (*dto.ChecklistDTO, error)
	Submit(ctx context.Context, payload dto.CreateChecklistDTO) (*dto.ChecklistResultDTO, error)
}

type ChecklistService struct {
	storage       *repositories.Storage
	checklistRepo repositories.ChecklistRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	unitRepo      repositories.UnitRepositoryInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewChecklistService(storage *repositories.Storage, bus *eventbus.Bus, logger *zap.Logger) ChecklistServiceInterface {
	return &ChecklistService{
		storage:       storage,
		checklistRepo: repositories.NewChecklistRepository(storage),
		equipmentRepo: repositories.NewEquipmentRepository(storage),
		unitRepo:      repositories.NewUnitRepository(storage),
		bus:           bus,
		logger:        logger,
	}
}

func (s *ChecklistService) GetChecklists(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[dto.ChecklistDTO], error) {
	authContext, err := authorize(ctx, authz.ChecklistsView)
	if err != nil {
		return nil, err
	}
	period, err := query.NewDateRange(filter.Value("date_from"), filter.Value("date_to"))
	if err != nil {
		return nil, apperrors.NewInvalidInputError("período inválido, use o formato AAAA-MM-DD")
	}

	equipments := query.EquipmentIndex(s.equipmentRepo.GetEquipments(ctx))
	list := query.FilterChecklists(s.checklistRepo.GetChecklists(ctx), equipments, query.ChecklistFilter{
		EquipmentID: filter.Value("equipment_id"),
		UnitID:      filter.Value("unit_id"),
		InspectorID: filter.Value("inspector_id"),
		Period:      period,
		Scope:       scopeOf(authContext),
	})

	units := query.UnitIndex(s.unitRepo.GetUnits(ctx))
	out := make([]dto.ChecklistDTO, 0, len(list))
	for _, c := range list {
		out = append(out, toChecklistDTO(c, equipments, units))
	}
	return pageOf(out, filter), nil
}

func (s *ChecklistService) FindChecklist(ctx context.Context, id string) (*dto.ChecklistDTO, error) {
	authContext, err := authorize(ctx, authz.ChecklistsView)
	if err != nil {
		return nil, err
	}
	checklist, err := s.checklistRepo.FindChecklist(ctx, id)
	if err != nil {
		return nil, err
	}

	equipments := query.EquipmentIndex(s.equipmentRepo.GetEquipments(ctx))
	visible := query.FilterChecklists([]entities.Checklist{*checklist}, equipments, query.ChecklistFilter{Scope: scopeOf(authContext)})
	if len(visible) == 0 {
		return nil, apperrors.ErrNotFound
	}

	res := toChecklistDTO(*checklist, equipments, query.UnitIndex(s.unitRepo.GetUnits(ctx)))
	return &res, nil
}

// Submit stores an inspection and applies its outcome in one step: the
// equipment status follows the average score, lastInspection becomes today and,
// when maintenance was requested, a pending call is opened.
func (s *ChecklistService) Submit(ctx context.Context, payload dto.CreateChecklistDTO) (*dto.ChecklistResultDTO, error) {
	authContext, err := authorize(ctx, authz.ChecklistsCreate)
	if err != nil {
		return nil, err
	}

	var (
		checklist *entities.Checklist
		equipment *entities.Equipment
		call      *entities.TechnicalCall
		unitName  string
		avg       float64
		status    entities.EquipmentStatus
	)
	err = repositories.WithTx(ctx, s.storage, func(tx repositories.Querier) error {
		equipmentRepo := repositories.NewEquipmentRepository(tx)
		unitRepo := repositories.NewUnitRepository(tx)

		current, err := equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
		if err != nil {
			return err
		}
		if err := canSee(authContext, authz.ChecklistsCreate, current); err != nil {
			return err
		}
		if unit, err := unitRepo.FindUnit(ctx, current.UnitID); err == nil {
			unitName = unit.Name
		}

		checklist = repositories.NewChecklistRepository(tx).CreateChecklist(ctx, entities.Checklist{
			EquipmentID:            current.ID,
			InspectorID:            authContext.Actor.ID,
			PhysicalCondition:      payload.PhysicalCondition,
			Functionality:          payload.Functionality,
			Noise:                  payload.Noise,
			Stability:              payload.Stability,
			Observations:           payload.Observations,
			Photos:                 payload.Photos,
			Videos:                 payload.Videos,
			NeedsMaintenance:       payload.NeedsMaintenance,
			MaintenanceType:        payload.MaintenanceType,
			MaintenancePriority:    payload.MaintenancePriority,
			MaintenanceDescription: payload.MaintenanceDescription,
		})

		avg = lifecycle.AverageScore(*checklist)
		status = lifecycle.StatusFromAverage(avg)
		today := utils.FormatDate(checklist.Date)
		updated, found := equipmentRepo.UpdateEquipment(ctx, current.ID, dto.UpdateEquipmentDTO{
			Status:         &status,
			LastInspection: &today,
		})
		if !found {
			return apperrors.ErrNotFound
		}
		equipment = updated

		if !payload.NeedsMaintenance {
			return nil
		}
		call = repositories.NewTechnicalCallRepository(tx).CreateCall(ctx, maintenanceCall(*checklist, *equipment, unitName))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("checklist submitted",
		zap.String("checklist_id", checklist.ID),
		zap.String("equipment_id", equipment.ID),
		zap.Float64("average_score", avg),
		zap.String("equipment_status", string(status)),
		zap.Bool("call_opened", call != nil),
	)
	s.bus.Publish(ctx, events.ChecklistSubmitted{
		Checklist:    *checklist,
		Equipment:    *equipment,
		AverageScore: avg,
		Status:       status,
		Call:         call,
		Actor:        authContext.Actor,
	})

	equipments := map[string]entities.Equipment{equipment.ID: *equipment}
	units := map[string]entities.Unit{}
	if unitName != "" {
		units[equipment.UnitID] = entities.Unit{ID: equipment.UnitID, Name: unitName}
	}
	res := &dto.ChecklistResultDTO{
		Checklist:       toChecklistDTO(*checklist, equipments, units),
		AverageScore:    lifecycle.RoundScore(avg),
		EquipmentStatus: status,
	}
	if call != nil {
		callDTO := toTechnicalCallDTO(*call, equipments)
		res.TechnicalCall = &callDTO
	}
	return res, nil
}

// maintenanceCall builds the call requested by an inspection. The description
// falls back to the observations.
func maintenanceCall(c entities.Checklist, e entities.Equipment, unitName string) entities.TechnicalCall {
	call := entities.TechnicalCall{
		EquipmentID:   e.ID,
		EquipmentName: e.Name,
		UnitID:        e.UnitID,
		UnitName:      unitName,
		Type:          c.MaintenanceType,
		Priority:      c.MaintenancePriority,
		Status:        entities.CallStatusPending,
		Description:   c.MaintenanceDescription,
	}
	if call.Type == "" {
		call.Type = entities.CallTypePreventive
	}
	if call.Priority == "" {
		call.Priority = entities.CallPriorityMedium
	}
	if call.Description == "" {
		call.Description = c.Observations
	}
	return call
}
