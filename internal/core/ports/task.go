package ports

import (
	"context"
	"time"

	"planbase/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	ListByIDs(ctx context.Context, ids []uint64) ([]domain.Task, error)
	ListByPlanning(ctx context.Context, planningID uint64) ([]domain.Task, error)
	// ListStandardDuration returns the planning's STANDARD-duration tasks
	// that have a start date, optionally narrowed to one task.
	ListStandardDuration(ctx context.Context, planningID uint64, taskID *uint64) ([]domain.Task, error)
	// ListStandardDurationWithoutCalendar returns the planning's
	// STANDARD-duration tasks with no explicit calendar assignment.
	ListStandardDurationWithoutCalendar(ctx context.Context, planningID uint64) ([]domain.Task, error)
	ListChildIDs(ctx context.Context, parentIDs []uint64) ([]uint64, error)
	Save(ctx context.Context, task domain.Task, updatedBy uint64) error
	SetCalendar(ctx context.Context, taskID uint64, calendarID *uint64, updatedBy uint64) error
	SoftDeleteByIDs(ctx context.Context, ids []uint64, deletedBy uint64) error
	CountByStatus(ctx context.Context, planningID uint64) (map[domain.TaskStatus]int, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, taskID uint64, deletedBy uint64) error
	UpdateTaskCalendar(ctx context.Context, taskID uint64, calendarID uint64, updatedBy uint64) (map[uint64]time.Time, error)
	RecalculateTaskFinish(ctx context.Context, planningID uint64, calendarID uint64, taskID *uint64) (map[uint64]time.Time, error)
}
