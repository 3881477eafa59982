package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/pkg/eventbus"
	"gym-maintenance/pkg/utils"

	"go.uber.org/zap"
)

var testNow = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

var (
	adminUser      = entities.User{ID: "1", Name: "Admin Gaviões", Email: "admin@gavioes.com", Role: entities.RoleAdmin, Units: []string{entities.AllUnits}, Active: true}
	technicianUser = entities.User{ID: "2", Name: "Técnico João", Email: "tecnico@gavioes.com", Role: entities.RoleTechnician, Units: []string{"Unit-001"}, Active: true}
	inspectorUser  = entities.User{ID: "3", Name: "Inspetor Carlos", Email: "inspetor@gavioes.com", Role: entities.RoleInspector, Units: []string{"Unit-002"}, Active: true}
)

func newFixtureStorage(t *testing.T) *repositories.Storage {
	t.Helper()
	s := repositories.NewStorage(repositories.WithClock(fixedClock))
	s.Load(repositories.Snapshot{
		Units: []entities.Unit{
			{ID: "Unit-001", Name: "Academia Gaviões - Centro", Address: "Rua das Flores, 123", Technician: "João Silva", EquipmentCount: 45},
			{ID: "Unit-002", Name: "Academia Gaviões - Norte", Address: "Av. Principal, 456", Technician: "Maria Santos", EquipmentCount: 38},
		},
		Equipments: []entities.Equipment{
			{ID: "EQ-001", Name: "Esteira Ergométrica", Tag: "EST-001", Manufacturer: "TechFit", AcquisitionDate: "2023-01-15", UnitID: "Unit-001", Status: entities.EquipmentStatusOK, LastInspection: "2024-01-15", LifeExpectancy: 10, CurrentAge: 1, Category: "Cardiovascular"},
			{ID: "EQ-002", Name: "Bicicleta Ergométrica", Tag: "BIC-001", Manufacturer: "FitTech", AcquisitionDate: "2016-03-20", UnitID: "Unit-002", Status: entities.EquipmentStatusError, LastInspection: "2024-01-10", LifeExpectancy: 8, CurrentAge: 8, Category: "Cardiovascular"},
		},
		Calls: []entities.TechnicalCall{
			{ID: "CALL-001", EquipmentID: "EQ-001", EquipmentName: "Esteira Ergométrica", UnitID: "Unit-001", UnitName: "Academia Gaviões - Centro", Type: entities.CallTypePreventive, Priority: entities.CallPriorityMedium, Status: entities.CallStatusPending, CreatedAt: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), UpdatedAt: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), Description: "Ruído anormal no motor"},
			{ID: "CALL-002", EquipmentID: "EQ-002", EquipmentName: "Bicicleta Ergométrica", UnitID: "Unit-002", UnitName: "Academia Gaviões - Norte", Type: entities.CallTypeCorrective, Priority: entities.CallPriorityHigh, Status: entities.CallStatusResolved, CreatedAt: time.Date(2024, 1, 19, 14, 30, 0, 0, time.UTC), UpdatedAt: time.Date(2024, 2, 2, 9, 0, 0, 0, time.UTC), Description: "Display apagado", Technician: "Maria Santos", Resolution: "Display substituído"},
		},
		Users: []entities.User{adminUser, technicianUser, inspectorUser},
	})
	return s
}

func actorCtx(u entities.User) context.Context {
	actor := u.Clone()
	return utils.WithActor(context.Background(), &actor, authz.PermissionsFor(actor.Role))
}

// recordingBus returns a bus that keeps every published event name.
type recordingBus struct {
	*eventbus.Bus
	mu     sync.Mutex
	events []eventbus.Event
}

func newRecordingBus(names ...string) *recordingBus {
	rb := &recordingBus{Bus: eventbus.New(zap.NewNop())}
	for _, name := range names {
		rb.Subscribe(name, func(ctx context.Context, e eventbus.Event) error {
			rb.mu.Lock()
			defer rb.mu.Unlock()
			rb.events = append(rb.events, e)
			return nil
		})
	}
	return rb
}

func (rb *recordingBus) Events() []eventbus.Event {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return append([]eventbus.Event(nil), rb.events...)
}

type pushed struct {
	userID      string
	messageType string
	payload     interface{}
}

type recordingPusher struct {
	mu       sync.Mutex
	messages []pushed
}

func (p *recordingPusher) SendToUser(userID, messageType string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, pushed{userID: userID, messageType: messageType, payload: payload})
	return nil
}

func (p *recordingPusher) To(userID string) []pushed {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []pushed
	for _, m := range p.messages {
		if m.userID == userID {
			out = append(out, m)
		}
	}
	return out
}
