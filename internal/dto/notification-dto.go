package dto

import (
	"time"

	"gym-maintenance/internal/entities"
)

type NotificationDTO struct {
	ID        string                    `json:"id"`
	Type      entities.NotificationType `json:"type"`
	Title     string                    `json:"title"`
	Message   string                    `json:"message"`
	Read      bool                      `json:"read"`
	CreatedAt time.Time                 `json:"created_at"`
}

type NotificationFeedDTO struct {
	Items  []NotificationDTO `json:"items"`
	Unread int               `json:"unread"`
}
