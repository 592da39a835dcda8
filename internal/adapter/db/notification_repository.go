package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
)

const insertNotificationQuery = `
INSERT INTO project_notifications (project_id, actor_id, target, action)
VALUES (?, ?, ?, ?);
`

const listNotificationsQuery = `
SELECT n.id, n.project_id, n.actor_id, n.target, n.action, n.created_at
FROM project_notifications n
WHERE n.project_id = ?
ORDER BY n.id DESC
LIMIT ?;
`

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID        uint64    `db:"id"`
	ProjectID uint64    `db:"project_id"`
	ActorID   uint64    `db:"actor_id"`
	Target    string    `db:"target"`
	Action    string    `db:"action"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, notification domain.ProjectNotification) error {
	// The feed insert intentionally ignores any caller transaction; a rolled
	// back operation never reaches this path anyway, and the feed must not
	// hold transactional locks.
	_, err := r.db.ExecContext(ctx, insertNotificationQuery,
		notification.ProjectID,
		notification.ActorID,
		notification.Target,
		string(notification.Action),
	)
	return err
}

func (r *NotificationRepository) ListByProject(ctx context.Context, projectID uint64, limit int) ([]domain.ProjectNotification, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []notificationRow
	if err := r.db.SelectContext(ctx, &rows, listNotificationsQuery, projectID, limit); err != nil {
		return nil, err
	}

	notifications := make([]domain.ProjectNotification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, domain.ProjectNotification{
			ID:        row.ID,
			ProjectID: row.ProjectID,
			ActorID:   row.ActorID,
			Target:    row.Target,
			Action:    domain.NotificationAction(row.Action),
			CreatedAt: row.CreatedAt,
		})
	}
	return notifications, nil
}
