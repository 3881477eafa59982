package services

import (
	"context"
	"sort"
	"time"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/lifecycle"
	"gym-maintenance/internal/query"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/utils"

	"go.uber.org/zap"
)

const recentCallsLimit = 5

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	storage *repositories.Storage
	clock   func() time.Time
	logger  *zap.Logger
}

func NewDashboardService(storage *repositories.Storage, clock func() time.Time, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{storage: storage, clock: clock, logger: logger}
}

// GetDashboard computes every widget from one snapshot, restricted to the
// actor's units.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	authContext, err := authorize(ctx, authz.DashboardView)
	if err != nil {
		return nil, err
	}
	scope := scopeOf(authContext)
	snap := s.storage.Snapshot()
	now := s.clock()

	equipments := query.FilterEquipments(snap.Equipments, query.EquipmentFilter{Scope: scope})
	calls := query.FilterCalls(snap.Calls, query.CallFilter{Scope: scope})
	units := query.FilterUnits(snap.Units, query.UnitFilter{Scope: scope})

	res := &dto.DashboardDTO{
		KPIs: dto.DashboardKPIsDTO{TotalEquipments: len(equipments)},
		EquipmentsByStatus: map[string]int{
			string(entities.EquipmentStatusOK):      0,
			string(entities.EquipmentStatusWarning): 0,
			string(entities.EquipmentStatusError):   0,
		},
		RecentCalls: []dto.TechnicalCallDTO{},
		Units:       make([]dto.UnitOverviewDTO, 0, len(units)),
	}

	for _, e := range equipments {
		res.EquipmentsByStatus[string(e.Status)]++
		if lifecycle.Classify(e).Status == lifecycle.StatusExpired {
			res.KPIs.ExpiredEquipments++
		}
	}
	for _, c := range calls {
		if c.IsOpen() {
			res.KPIs.OpenCalls++
		} else if utils.SameMonth(c.UpdatedAt, now) {
			res.KPIs.ResolvedThisMonth++
		}
	}

	recent := append([]entities.TechnicalCall(nil), calls...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentCallsLimit {
		recent = recent[:recentCallsLimit]
	}
	equipmentIndex := query.EquipmentIndex(snap.Equipments)
	for _, c := range recent {
		res.RecentCalls = append(res.RecentCalls, toTechnicalCallDTO(c, equipmentIndex))
	}

	for _, u := range units {
		overview := toUnitDTO(u, equipments, calls)
		res.Units = append(res.Units, dto.UnitOverviewDTO{
			UnitID:         u.ID,
			UnitName:       u.Name,
			EquipmentCount: overview.RegisteredEquipment,
			OpenCalls:      overview.OpenCalls,
		})
	}

	return res, nil
}
