package services

import (
	"testing"

	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/events"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCallService(t *testing.T) (TechnicalCallServiceInterface, *recordingBus) {
	t.Helper()
	storage := newFixtureStorage(t)
	bus := newRecordingBus(events.TechnicalCallCreatedName, events.TechnicalCallUpdatedName)
	return NewTechnicalCallService(
		repositories.NewTechnicalCallRepository(storage),
		repositories.NewEquipmentRepository(storage),
		repositories.NewUnitRepository(storage),
		bus.Bus,
		zap.NewNop(),
	), bus
}

func TestTechnicalCallCreate(t *testing.T) {
	svc, bus := newCallService(t)

	got, err := svc.CreateCall(actorCtx(inspectorUser), dto.CreateTechnicalCallDTO{
		EquipmentID: "EQ-002",
		Type:        entities.CallTypeCorrective,
		Description: "Pedal solto",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^CALL-\d+$`, got.ID)
	assert.Equal(t, "Bicicleta Ergométrica", got.EquipmentName)
	assert.Equal(t, "Academia Gaviões - Norte", got.UnitName)
	assert.Equal(t, entities.CallPriorityMedium, got.Priority)
	assert.Equal(t, entities.CallStatusPending, got.Status)
	assert.Equal(t, testNow, got.CreatedAt)
	assert.True(t, got.EquipmentAvailable)
	require.Len(t, bus.Events(), 1)

	_, err = svc.CreateCall(actorCtx(technicianUser), dto.CreateTechnicalCallDTO{EquipmentID: "EQ-002", Type: entities.CallTypeCorrective, Description: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTechnicalCallUpdate(t *testing.T) {
	t.Run("assigns the acting technician when unassigned", func(t *testing.T) {
		svc, bus := newCallService(t)
		status := entities.CallStatusInProgress

		got, err := svc.UpdateCall(actorCtx(technicianUser), "CALL-001", dto.UpdateTechnicalCallDTO{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, entities.CallStatusInProgress, got.Status)
		assert.Equal(t, "Técnico João", got.Technician)
		assert.Equal(t, "Em Andamento", got.StatusLabel)
		assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
		assert.Equal(t, "2024-01-20", got.CreatedAt.Format("2006-01-02"))

		published := bus.Events()
		require.Len(t, published, 1)
		updated := published[0].(events.TechnicalCallUpdated)
		assert.Equal(t, entities.CallStatusPending, updated.Previous.Status)
	})

	t.Run("keeps an existing technician", func(t *testing.T) {
		svc, _ := newCallService(t)
		got, err := svc.UpdateCall(actorCtx(adminUser), "CALL-002", dto.UpdateTechnicalCallDTO{Resolution: null.StringFrom("Trocado")})
		require.NoError(t, err)
		assert.Equal(t, "Maria Santos", got.Technician)
		assert.Equal(t, "Trocado", got.Resolution)
	})

	t.Run("out of scope and unknown calls are not found", func(t *testing.T) {
		svc, _ := newCallService(t)
		_, err := svc.UpdateCall(actorCtx(technicianUser), "CALL-002", dto.UpdateTechnicalCallDTO{})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		_, err = svc.UpdateCall(actorCtx(adminUser), "CALL-404", dto.UpdateTechnicalCallDTO{})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("inspector cannot update", func(t *testing.T) {
		svc, _ := newCallService(t)
		_, err := svc.UpdateCall(actorCtx(inspectorUser), "CALL-001", dto.UpdateTechnicalCallDTO{})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestTechnicalCallListing(t *testing.T) {
	svc, _ := newCallService(t)

	res, err := svc.GetCalls(actorCtx(adminUser), types.Filter{Filter: map[string]interface{}{"open": "true"}})
	require.NoError(t, err)
	require.Len(t, res.List, 1)
	assert.Equal(t, "CALL-001", res.List[0].ID)

	res, err = svc.GetCalls(actorCtx(technicianUser), types.Filter{Search: "display"})
	require.NoError(t, err)
	assert.Empty(t, res.List)

	res, err = svc.GetCalls(actorCtx(adminUser), types.Filter{Limit: 1, Offset: 1, WithPagination: true})
	require.NoError(t, err)
	require.Len(t, res.List, 1)
	assert.Equal(t, "CALL-002", res.List[0].ID)
	assert.Equal(t, uint64(2), res.TotalCount)
}
