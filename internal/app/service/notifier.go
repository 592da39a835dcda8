package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
)

const notifyTimeout = 5 * time.Second

// Notifier writes project feed records from a single background worker fed by
// a bounded queue. Notify never blocks: when the queue is full the record is
// dropped and logged. Failures in the worker are logged and swallowed: the
// feed is best-effort and must never fail the mutation that produced it.
type Notifier struct {
	notifications ports.NotificationRepository
	queue         chan domain.ProjectNotification
	done          chan struct{}
}

var _ ports.Notifier = (*Notifier)(nil)

func NewNotifier(notifications ports.NotificationRepository, queueSize int) *Notifier {
	if queueSize <= 0 {
		queueSize = 256
	}
	n := &Notifier{
		notifications: notifications,
		queue:         make(chan domain.ProjectNotification, queueSize),
		done:          make(chan struct{}),
	}
	go n.run()
	return n
}

func (n *Notifier) Notify(projectID, actorID uint64, target string, action domain.NotificationAction) {
	notification := domain.ProjectNotification{
		ProjectID: projectID,
		ActorID:   actorID,
		Target:    target,
		Action:    action,
	}

	select {
	case n.queue <- notification:
	default:
		zap.L().Warn("notification queue full, dropping record",
			zap.Uint64("project_id", projectID),
			zap.String("action", string(action)),
		)
	}
}

// Close drains the queue and stops the worker.
func (n *Notifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *Notifier) run() {
	defer close(n.done)
	for notification := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		if err := n.notifications.Create(ctx, notification); err != nil {
			zap.L().Error("failed to create project notification",
				zap.Uint64("project_id", notification.ProjectID),
				zap.String("action", string(notification.Action)),
				zap.Error(err),
			)
		}
		cancel()
	}
}
