package services

import (
	"testing"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/reports"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDashboard(t *testing.T) {
	storage := newFixtureStorage(t)
	svc := NewDashboardService(storage, fixedClock, zap.NewNop())

	t.Run("admin sees every unit", func(t *testing.T) {
		got, err := svc.GetDashboard(actorCtx(adminUser))
		require.NoError(t, err)

		assert.Equal(t, 2, got.KPIs.TotalEquipments)
		assert.Equal(t, 1, got.KPIs.OpenCalls)
		assert.Equal(t, 1, got.KPIs.ResolvedThisMonth)
		assert.Equal(t, 1, got.KPIs.ExpiredEquipments)
		assert.Equal(t, map[string]int{"ok": 1, "warning": 0, "error": 1}, got.EquipmentsByStatus)
		require.Len(t, got.RecentCalls, 2)
		assert.Equal(t, "CALL-001", got.RecentCalls[0].ID)
		require.Len(t, got.Units, 2)
		assert.Equal(t, 1, got.Units[0].EquipmentCount)
		assert.Equal(t, 1, got.Units[0].OpenCalls)
	})

	t.Run("technician sees assigned units only", func(t *testing.T) {
		got, err := svc.GetDashboard(actorCtx(technicianUser))
		require.NoError(t, err)
		assert.Equal(t, 1, got.KPIs.TotalEquipments)
		assert.Equal(t, 0, got.KPIs.ResolvedThisMonth)
		assert.Equal(t, 0, got.KPIs.ExpiredEquipments)
		require.Len(t, got.Units, 1)
		assert.Equal(t, "Unit-001", got.Units[0].UnitID)
	})
}

func TestLifecycleOverview(t *testing.T) {
	storage := newFixtureStorage(t)
	svc := NewLifecycleService(repositories.NewEquipmentRepository(storage), repositories.NewUnitRepository(storage), zap.NewNop())

	got, total, err := svc.GetOverview(actorCtx(adminUser), types.Filter{}, "remaining_life")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	assert.Equal(t, 2, got.Stats.Total)
	assert.Equal(t, 1, got.Stats.Expired)
	assert.Equal(t, "EQ-002", got.Items[0].ID)
	assert.Equal(t, "Vida Útil Expirada", got.Items[0].Lifecycle.StatusLabel)

	got, _, err = svc.GetOverview(actorCtx(adminUser), types.Filter{Filter: map[string]interface{}{"lifecycle_status": "new"}}, "name")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "EQ-001", got.Items[0].ID)

	got, _, err = svc.GetOverview(actorCtx(technicianUser), types.Filter{}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stats.Total)

	counts := svc.StatusCounts(actorCtx(adminUser))
	assert.Equal(t, 1, counts["expired"])
	assert.Equal(t, 1, counts["new"])
	assert.Len(t, counts, 5)
}

func TestReportService(t *testing.T) {
	storage := newFixtureStorage(t)
	svc := NewReportService(storage, fixedClock, zap.NewNop())

	t.Run("default period is the last thirty days", func(t *testing.T) {
		got, err := svc.BuildReport(actorCtx(adminUser), "maintenance", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, reports.KindMaintenance, got.Kind)
		assert.Len(t, got.Rows, 2)

		got, err = svc.BuildReport(actorCtx(adminUser), "maintenance", "", "2024-01-20", "2024-01-31")
		require.NoError(t, err)
		require.Len(t, got.Rows, 1)
		assert.Equal(t, "Esteira Ergométrica", got.Rows[0]["equipment"])
	})

	t.Run("technician report is scoped", func(t *testing.T) {
		got, err := svc.BuildReport(actorCtx(technicianUser), "equipment", "Unit-002", "", "")
		require.NoError(t, err)
		assert.Empty(t, got.Rows)
	})

	t.Run("bad input", func(t *testing.T) {
		var inputErr *apperrors.InvalidInputError
		_, err := svc.BuildReport(actorCtx(adminUser), "sales", "", "", "")
		assert.ErrorAs(t, err, &inputErr)
		_, err = svc.BuildReport(actorCtx(adminUser), "equipment", "", "ontem", "")
		assert.ErrorAs(t, err, &inputErr)
	})
}

func TestUnitService(t *testing.T) {
	storage := newFixtureStorage(t)
	svc := NewUnitService(
		repositories.NewUnitRepository(storage),
		repositories.NewEquipmentRepository(storage),
		repositories.NewTechnicalCallRepository(storage),
		zap.NewNop(),
	)

	list, err := svc.GetUnits(actorCtx(technicianUser), types.Filter{})
	require.NoError(t, err)
	require.Len(t, list.List, 1)
	assert.Equal(t, 1, list.List[0].RegisteredEquipment)
	assert.Equal(t, 45, list.List[0].EquipmentCount)

	_, err = svc.FindUnit(actorCtx(technicianUser), "Unit-002")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteUnit(actorCtx(technicianUser), "Unit-001"), apperrors.ErrForbidden)

	require.NoError(t, svc.DeleteUnit(actorCtx(adminUser), "Unit-002"))
	equipment, err := repositories.NewEquipmentRepository(storage).FindEquipment(actorCtx(adminUser), "EQ-002")
	require.NoError(t, err)
	assert.Equal(t, "Unit-002", equipment.UnitID)

	created, err := svc.CreateUnit(actorCtx(adminUser), dto.CreateUnitDTO{Name: "Academia Gaviões - Sul", Address: "Rua do Comércio, 789"})
	require.NoError(t, err)
	assert.Regexp(t, `^UNIT-\d+$`, created.ID)

	updated, err := svc.UpdateUnit(actorCtx(adminUser), created.ID, dto.UpdateUnitDTO{Capacity: null.IntFrom(120)})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Capacity)
	assert.Equal(t, "Rua do Comércio, 789", updated.Address)

	_, err = svc.UpdateUnit(actorCtx(adminUser), "Unit-404", dto.UpdateUnitDTO{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
