package repositories

import (
	"context"
	"slices"
	"sort"

	"gym-maintenance/internal/entities"

	"github.com/google/uuid"
)

type NotificationRepositoryInterface interface {
	GetNotifications(ctx context.Context, userID string) []entities.Notification
	CreateNotification(ctx context.Context, notification entities.Notification) *entities.Notification
	MarkRead(ctx context.Context, id, userID string) (*entities.Notification, bool)
	CountUnread(ctx context.Context, userID string) int
}

type NotificationRepository struct {
	storage Querier
}

func NewNotificationRepository(storage Querier) NotificationRepositoryInterface {
	return &NotificationRepository{storage: storage}
}

// GetNotifications returns the user's feed, newest first.
func (r *NotificationRepository) GetNotifications(ctx context.Context, userID string) []entities.Notification {
	var list []entities.Notification
	r.storage.view(func(d *dataset) {
		for _, n := range d.notifications {
			if n.UserID == userID {
				list = append(list, n)
			}
		}
	})
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, notification entities.Notification) *entities.Notification {
	_ = r.storage.update(func(d *dataset) error {
		if notification.ID == "" {
			notification.ID = uuid.NewString()
		}
		if notification.CreatedAt.IsZero() {
			notification.CreatedAt = r.storage.now()
		}
		d.notifications = append(d.notifications, notification)
		return nil
	})
	return &notification
}

// MarkRead only matches notifications owned by userID.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID string) (*entities.Notification, bool) {
	var (
		updated entities.Notification
		found   bool
	)
	_ = r.storage.update(func(d *dataset) error {
		i := slices.IndexFunc(d.notifications, func(n entities.Notification) bool {
			return n.ID == id && n.UserID == userID
		})
		if i < 0 {
			return nil
		}
		d.notifications[i].Read = true
		updated, found = d.notifications[i], true
		return nil
	})
	if !found {
		return nil, false
	}
	return &updated, true
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) int {
	count := 0
	r.storage.view(func(d *dataset) {
		for _, n := range d.notifications {
			if n.UserID == userID && !n.Read {
				count++
			}
		}
	})
	return count
}
