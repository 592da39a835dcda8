package mapper

import (
	"time"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/core/domain"
)

func ToNotificationItems(notifications []domain.ProjectNotification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, dto.NotificationItem{
			ID:        notification.ID,
			ProjectID: notification.ProjectID,
			ActorID:   notification.ActorID,
			Target:    notification.Target,
			Action:    string(notification.Action),
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		})
	}
	return items
}
