package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// NotificationRepository provides in-memory notification storage
type NotificationRepository struct {
	notifications map[string]*entities.Notification
}

// NewNotificationRepository creates a new in-memory notification repository
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{notifications: make(map[string]*entities.Notification)}
}

// Verify interface compliance
var _ repositories.NotificationRepository = (*NotificationRepository)(nil)

// LoadNotifications loads notifications into the repository
func (r *NotificationRepository) LoadNotifications(notifications []*entities.Notification) error {
	for _, n := range notifications {
		if err := r.SaveNotification(n); err != nil {
			return err
		}
	}
	return nil
}

// SaveNotification inserts or replaces a notification
func (r *NotificationRepository) SaveNotification(notification *entities.Notification) error {
	if notification == nil || notification.ID == "" {
		return fmt.Errorf("cannot save notification without id")
	}
	r.notifications[notification.ID] = notification
	return nil
}

// GetAllNotifications returns all notifications, newest first
func (r *NotificationRepository) GetAllNotifications() ([]*entities.Notification, error) {
	notifications := make([]*entities.Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		notifications = append(notifications, n)
	}
	sort.Slice(notifications, func(i, j int) bool {
		if notifications[i].Date != notifications[j].Date {
			return notifications[i].Date > notifications[j].Date
		}
		return notifications[i].ID < notifications[j].ID
	})
	return notifications, nil
}
