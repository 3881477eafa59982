package listeners

import (
	"context"
	"strings"
	"sync"
	"testing"

	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/events"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/internal/services"
	"gym-maintenance/pkg/eventbus"
	"gym-maintenance/pkg/metrics"
	"gym-maintenance/pkg/websocket"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pushRecorder struct {
	mu    sync.Mutex
	calls map[string][]string
}

func (p *pushRecorder) SendToUser(userID, messageType string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.calls == nil {
		p.calls = map[string][]string{}
	}
	p.calls[userID] = append(p.calls[userID], messageType)
	return nil
}

func (p *pushRecorder) types(userID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls[userID]...)
}

var (
	admin      = entities.User{ID: "1", Name: "Admin", Role: entities.RoleAdmin, Units: []string{entities.AllUnits}, Active: true}
	techCentro = entities.User{ID: "2", Name: "Técnico João", Role: entities.RoleTechnician, Units: []string{"Unit-001"}, Active: true}
	techNorte  = entities.User{ID: "4", Name: "Técnica Ana", Role: entities.RoleTechnician, Units: []string{"Unit-002"}, Active: true}
	inspector  = entities.User{ID: "3", Name: "Inspetor Carlos", Role: entities.RoleInspector, Units: []string{"Unit-002"}, Active: true}
	oldAdmin   = entities.User{ID: "5", Name: "Admin Antigo", Role: entities.RoleAdmin, Units: []string{entities.AllUnits}, Active: false}
)

func setup(t *testing.T) (*eventbus.Bus, repositories.NotificationRepositoryInterface, *pushRecorder, *metrics.Collector) {
	t.Helper()
	storage := repositories.NewStorage()
	storage.Load(repositories.Snapshot{
		Units: []entities.Unit{{ID: "Unit-001", Name: "Academia Gaviões - Centro"}, {ID: "Unit-002", Name: "Academia Gaviões - Norte"}},
		Users: []entities.User{admin, techCentro, techNorte, inspector, oldAdmin},
	})

	pusher := &pushRecorder{}
	notificationRepo := repositories.NewNotificationRepository(storage)
	notificationService := services.NewNotificationService(notificationRepo, pusher, zap.NewNop())

	bus := eventbus.New(zap.NewNop())
	NewNotificationListener(notificationService, repositories.NewUserRepository(storage, zap.NewNop()), repositories.NewUnitRepository(storage), zap.NewNop()).Register(bus)
	collector := metrics.New()
	NewMetricsListener(collector).Register(bus)
	return bus, notificationRepo, pusher, collector
}

func titles(list []entities.Notification) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.Title)
	}
	return out
}

func TestChecklistWithDefectNotifiesUnit(t *testing.T) {
	bus, repo, pusher, collector := setup(t)
	ctx := context.Background()

	call := entities.TechnicalCall{ID: "CALL-9", UnitID: "Unit-002", EquipmentName: "Bicicleta", Type: entities.CallTypePreventive, Priority: entities.CallPriorityMedium}
	inspectorActor := inspector
	bus.Publish(ctx, events.ChecklistSubmitted{
		Equipment:    entities.Equipment{ID: "EQ-2", Name: "Bicicleta", UnitID: "Unit-002"},
		AverageScore: 2.5,
		Status:       entities.EquipmentStatusError,
		Call:         &call,
		Actor:        &inspectorActor,
	})

	assert.ElementsMatch(t, []string{"Checklist Concluído", "Chamado Técnico Criado"}, titles(repo.GetNotifications(ctx, inspector.ID)))
	assert.ElementsMatch(t, []string{"Equipamento com Defeito", "Chamado Técnico Criado"}, titles(repo.GetNotifications(ctx, admin.ID)))
	assert.ElementsMatch(t, []string{"Equipamento com Defeito", "Chamado Técnico Criado"}, titles(repo.GetNotifications(ctx, techNorte.ID)))
	assert.Empty(t, repo.GetNotifications(ctx, techCentro.ID))
	assert.Empty(t, repo.GetNotifications(ctx, oldAdmin.ID))

	assert.Contains(t, pusher.types(admin.ID), websocket.TypeNotification)
	assert.Contains(t, pusher.types(admin.ID), websocket.TypeUnreadCount)

	expected := `
# HELP gym_domain_events_total Domain events published, by event name.
# TYPE gym_domain_events_total counter
gym_domain_events_total{event="checklist.submitted"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "gym_domain_events_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.Registry(), "gym_technical_calls_opened_total"))
}

func TestCallUpdateNotifiesOnStatusChangeOnly(t *testing.T) {
	bus, repo, _, _ := setup(t)
	ctx := context.Background()
	actor := techCentro

	call := entities.TechnicalCall{ID: "CALL-1", UnitID: "Unit-001", EquipmentName: "Esteira", Status: entities.CallStatusInProgress}
	bus.Publish(ctx, events.TechnicalCallUpdated{Call: call, Previous: call, Actor: &actor})
	assert.Equal(t, []string{"Chamado Atualizado"}, titles(repo.GetNotifications(ctx, techCentro.ID)))
	assert.Empty(t, repo.GetNotifications(ctx, admin.ID))

	previous := call
	previous.Status = entities.CallStatusPending
	bus.Publish(ctx, events.TechnicalCallUpdated{Call: call, Previous: previous, Actor: &actor})
	notes := repo.GetNotifications(ctx, admin.ID)
	require.Len(t, notes, 1)
	assert.Equal(t, "Status do Chamado", notes[0].Title)
	assert.True(t, strings.HasPrefix(notes[0].Message, "Chamado CALL-1 de Esteira"))
}

func TestEquipmentCreatedMentionsUnitName(t *testing.T) {
	bus, repo, _, _ := setup(t)
	ctx := context.Background()
	actor := admin

	bus.Publish(ctx, events.EquipmentCreated{Equipment: entities.Equipment{Name: "Remo", Tag: "REM-001", UnitID: "Unit-001"}, Actor: &actor})

	mine := repo.GetNotifications(ctx, admin.ID)
	require.Len(t, mine, 1)
	assert.Equal(t, "Remo (REM-001) foi cadastrado em Academia Gaviões - Centro", mine[0].Message)
	assert.Len(t, repo.GetNotifications(ctx, techCentro.ID), 1)
	assert.Empty(t, repo.GetNotifications(ctx, techNorte.ID))
}
