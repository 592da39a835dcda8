package ports

import (
	"context"

	"planbase/internal/core/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification domain.ProjectNotification) error
	ListByProject(ctx context.Context, projectID uint64, limit int) ([]domain.ProjectNotification, error)
}

// Notifier records a project feed entry without blocking the caller. A full
// queue or a failed insert is logged and dropped, never surfaced.
type Notifier interface {
	Notify(projectID, actorID uint64, target string, action domain.NotificationAction)
}
