package services

import (
	"context"

	"gym-maintenance/internal/authz"
	"gym-maintenance/internal/dto"
	"gym-maintenance/internal/entities"
	"gym-maintenance/internal/repositories"
	apperrors "gym-maintenance/pkg/errors"
	"gym-maintenance/pkg/websocket"

	"go.uber.org/zap"
)

// Pusher delivers a message to the live connections of a user.
type Pusher interface {
	SendToUser(userID, messageType string, payload interface{}) error
}

type NotificationServiceInterface interface {
	GetNotifications(ctx context.Context) (*dto.NotificationFeedDTO, error)
	MarkRead(ctx context.Context, id string) (*dto.NotificationDTO, error)
	Notify(ctx context.Context, userID string, kind entities.NotificationType, title, message string) error
}

type NotificationService struct {
	repo   repositories.NotificationRepositoryInterface
	pusher Pusher
	logger *zap.Logger
}

func NewNotificationService(repo repositories.NotificationRepositoryInterface, pusher Pusher, logger *zap.Logger) NotificationServiceInterface {
	return &NotificationService{repo: repo, pusher: pusher, logger: logger}
}

func (s *NotificationService) GetNotifications(ctx context.Context) (*dto.NotificationFeedDTO, error) {
	authContext, err := authorize(ctx, authz.NotificationsView)
	if err != nil {
		return nil, err
	}
	userID := authContext.Actor.ID

	list := s.repo.GetNotifications(ctx, userID)
	res := &dto.NotificationFeedDTO{Items: make([]dto.NotificationDTO, 0, len(list))}
	for _, n := range list {
		res.Items = append(res.Items, toNotificationDTO(n))
		if !n.Read {
			res.Unread++
		}
	}
	return res, nil
}

// MarkRead only matches notifications of the acting user; others read as missing.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*dto.NotificationDTO, error) {
	authContext, err := authorize(ctx, authz.NotificationsView)
	if err != nil {
		return nil, err
	}
	userID := authContext.Actor.ID

	n, found := s.repo.MarkRead(ctx, id, userID)
	if !found {
		return nil, apperrors.ErrNotFound
	}
	s.pushUnread(ctx, userID)

	res := toNotificationDTO(*n)
	return &res, nil
}

// Notify stores a notification and pushes it, with the new unread count, to
// the user's open connections.
func (s *NotificationService) Notify(ctx context.Context, userID string, kind entities.NotificationType, title, message string) error {
	n := s.repo.CreateNotification(ctx, entities.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	})

	if err := s.pusher.SendToUser(userID, websocket.TypeNotification, toNotificationDTO(*n)); err != nil {
		s.logger.Error("notification push failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	s.pushUnread(ctx, userID)
	return nil
}

func (s *NotificationService) pushUnread(ctx context.Context, userID string) {
	unread := s.repo.CountUnread(ctx, userID)
	if err := s.pusher.SendToUser(userID, websocket.TypeUnreadCount, map[string]int{"unread": unread}); err != nil {
		s.logger.Error("unread count push failed", zap.String("user_id", userID), zap.Error(err))
	}
}

func toNotificationDTO(n entities.Notification) dto.NotificationDTO {
	return dto.NotificationDTO{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
