package services

import (
	"context"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/lifecycle"
	"gym-maintenance/internal/query"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/types"

	"go.uber.org/zap"
)

type LifecycleServiceInterface interface {
	GetOverview(ctx context.Context, filter types.Filter, sortKey string) (*dto.LifecycleOverviewDTO, uint64, error)
	StatusCounts(ctx context.Context) map[string]int
}

type LifecycleService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	unitRepo      repositories.UnitRepositoryInterface
	logger        *zap.Logger
}

func NewLifecycleService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	unitRepo repositories.UnitRepositoryInterface,
	logger *zap.Logger,
) LifecycleServiceInterface {
	return &LifecycleService{equipmentRepo: equipmentRepo, unitRepo: unitRepo, logger: logger}
}

// GetOverview annotates the visible equipment, keeps the requested lifecycle
// statuses and sorts by a single key. Stats cover the whole filtered set; only
// Items are paginated. The second result is the filtered total.
func (s *LifecycleService) GetOverview(ctx context.Context, filter types.Filter, sortKey string) (*dto.LifecycleOverviewDTO, uint64, error) {
	authContext, err := authorize(ctx, authz.LifecycleView)
	if err != nil {
		return nil, 0, err
	}

	list := query.FilterEquipments(s.equipmentRepo.GetEquipments(ctx), query.EquipmentFilter{
		Search:   filter.Search,
		UnitID:   filter.Value("unit_id"),
		Category: filter.Value("category"),
		Scope:    scopeOf(authContext),
	})

	wanted := filter.Value("lifecycle_status")
	items := make([]lifecycle.Annotated, 0, len(list))
	for _, a := range lifecycle.Annotate(list) {
		if wanted != "" && !containsValue(wanted, string(a.Metrics.Status)) {
			continue
		}
		items = append(items, a)
	}
	query.SortLifecycle(items, query.ParseSortKey(sortKey))

	stats := dto.LifecycleStatsDTO{Total: len(items)}
	for _, a := range items {
		switch a.Metrics.Status {
		case lifecycle.StatusExpired:
			stats.Expired++
		case lifecycle.StatusCritical:
			stats.Critical++
		}
		if lifecycle.NeedsReplacementSoon(a.Metrics) {
			stats.NeedingReplacementSoon++
		}
	}

	units := query.UnitIndex(s.unitRepo.GetUnits(ctx))
	all := make([]dto.EquipmentDTO, 0, len(items))
	for _, a := range items {
		all = append(all, toAnnotatedEquipmentDTO(a, units))
	}
	page := pageOf(all, filter)

	return &dto.LifecycleOverviewDTO{Stats: stats, Items: page.List}, page.TotalCount, nil
}

// StatusCounts tallies every equipment by lifecycle bucket, ignoring scope.
func (s *LifecycleService) StatusCounts(ctx context.Context) map[string]int {
	counts := lifecycle.CountByStatus(lifecycle.Annotate(s.equipmentRepo.GetEquipments(ctx)))
	out := make(map[string]int, len(counts))
	for status, n := range counts {
		out[string(status)] = n
	}
	return out
}
