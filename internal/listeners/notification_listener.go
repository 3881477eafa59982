package listeners

import (
	"context"
	"fmt"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/events"
	"gym-maintenance/internal/repositories"
	"gym-maintenance/internal/services"
	"gym-maintenance/pkg/eventbus"

	"go.uber.org/zap"
)

// NotificationListener turns domain events into user notifications. The actor
// gets a confirmation; admins and the technicians of the affected unit are
// told about the change.
type NotificationListener struct {
	notificationService services.NotificationServiceInterface
	userRepo            repositories.UserRepositoryInterface
	unitRepo            repositories.UnitRepositoryInterface
	logger              *zap.Logger
}

func NewNotificationListener(
	notificationService services.NotificationServiceInterface,
	userRepo repositories.UserRepositoryInterface,
	unitRepo repositories.UnitRepositoryInterface,
	logger *zap.Logger,
) *NotificationListener {
	return &NotificationListener{
		notificationService: notificationService,
		userRepo:            userRepo,
		unitRepo:            unitRepo,
		logger:              logger,
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.EquipmentCreatedName, l.handleEquipmentCreated)
	bus.Subscribe(events.EquipmentDeletedName, l.handleEquipmentDeleted)
	bus.Subscribe(events.ChecklistSubmittedName, l.handleChecklistSubmitted)
	bus.Subscribe(events.TechnicalCallCreatedName, l.handleCallCreated)
	bus.Subscribe(events.TechnicalCallUpdatedName, l.handleCallUpdated)
	l.logger.Info("notification listener subscribed")
}

func (l *NotificationListener) handleEquipmentCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EquipmentCreated)
	if !ok {
		return unexpected(event)
	}
	message := fmt.Sprintf("%s (%s) foi cadastrado em %s", e.Equipment.Name, e.Equipment.Tag, l.unitName(ctx, e.Equipment.UnitID))
	l.notifyActor(ctx, e.Actor, entities.NotificationSuccess, "Equipamento Cadastrado", message)
	l.notifyUnit(ctx, e.Equipment.UnitID, e.Actor, entities.NotificationInfo, "Novo Equipamento", message)
	return nil
}

func (l *NotificationListener) handleEquipmentDeleted(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.EquipmentDeleted)
	if !ok {
		return unexpected(event)
	}
	message := fmt.Sprintf("%s (%s) foi removido de %s", e.Equipment.Name, e.Equipment.Tag, l.unitName(ctx, e.Equipment.UnitID))
	l.notifyActor(ctx, e.Actor, entities.NotificationSuccess, "Equipamento Removido", message)
	l.notifyUnit(ctx, e.Equipment.UnitID, e.Actor, entities.NotificationWarning, "Equipamento Removido", message)
	return nil
}

func (l *NotificationListener) handleChecklistSubmitted(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.ChecklistSubmitted)
	if !ok {
		return unexpected(event)
	}
	l.notifyActor(ctx, e.Actor, entities.NotificationSuccess, "Checklist Concluído",
		fmt.Sprintf("Inspeção de %s registrada com sucesso", e.Equipment.Name))

	if e.Status == entities.EquipmentStatusError {
		l.notifyUnit(ctx, e.Equipment.UnitID, e.Actor, entities.NotificationError, "Equipamento com Defeito",
			fmt.Sprintf("%s recebeu nota média %.1f na inspeção", e.Equipment.Name, e.AverageScore))
	}
	if e.Call != nil {
		message := fmt.Sprintf("Chamado de manutenção criado para %s", e.Equipment.Name)
		l.notifyActor(ctx, e.Actor, entities.NotificationInfo, "Chamado Técnico Criado", message)
		l.notifyUnit(ctx, e.Call.UnitID, e.Actor, entities.NotificationInfo, "Chamado Técnico Criado", message)
	}
	return nil
}

func (l *NotificationListener) handleCallCreated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.TechnicalCallCreated)
	if !ok {
		return unexpected(event)
	}
	message := fmt.Sprintf("Chamado de manutenção criado para %s", e.Call.EquipmentName)
	l.notifyActor(ctx, e.Actor, entities.NotificationInfo, "Chamado Técnico Criado", message)
	l.notifyUnit(ctx, e.Call.UnitID, e.Actor, entities.NotificationInfo, "Chamado Técnico Criado",
		fmt.Sprintf("%s (prioridade %s)", message, e.Call.Priority.Label()))
	return nil
}

func (l *NotificationListener) handleCallUpdated(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.TechnicalCallUpdated)
	if !ok {
		return unexpected(event)
	}
	l.notifyActor(ctx, e.Actor, entities.NotificationSuccess, "Chamado Atualizado",
		fmt.Sprintf("Chamado %s foi atualizado com sucesso", e.Call.ID))

	if e.Call.Status != e.Previous.Status {
		l.notifyUnit(ctx, e.Call.UnitID, e.Actor, entities.NotificationInfo, "Status do Chamado",
			fmt.Sprintf("Chamado %s de %s: %s", e.Call.ID, e.Call.EquipmentName, e.Call.Status.Label()))
	}
	return nil
}

func (l *NotificationListener) notifyActor(ctx context.Context, actor *entities.User, kind entities.NotificationType, title, message string) {
	if actor == nil {
		return
	}
	l.send(ctx, actor.ID, kind, title, message)
}

// notifyUnit reaches every active admin and every active technician assigned
// to unitID, except the actor.
func (l *NotificationListener) notifyUnit(ctx context.Context, unitID string, actor *entities.User, kind entities.NotificationType, title, message string) {
	for _, u := range l.userRepo.GetUsers(ctx) {
		if !u.Active || (actor != nil && u.ID == actor.ID) {
			continue
		}
		switch u.Role {
		case entities.RoleAdmin:
		case entities.RoleTechnician:
			if !authz.ScopeFor(&u).Allows(unitID) {
				continue
			}
		default:
			continue
		}
		l.send(ctx, u.ID, kind, title, message)
	}
}

func (l *NotificationListener) send(ctx context.Context, userID string, kind entities.NotificationType, title, message string) {
	if err := l.notificationService.Notify(ctx, userID, kind, title, message); err != nil {
		l.logger.Warn("notification not delivered", zap.String("user_id", userID), zap.String("title", title), zap.Error(err))
	}
}

func (l *NotificationListener) unitName(ctx context.Context, unitID string) string {
	if unit, err := l.unitRepo.FindUnit(ctx, unitID); err == nil {
		return unit.Name
	}
	return "unidade desconhecida"
}

func unexpected(event eventbus.Event) error {
	return fmt.Errorf("unexpected event payload %T for %s", event, event.Name())
}
