package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
)

const taskColumns = `
  t.id, t.planning_id, t.parent_id, t.name, t.task_type, t.status,
  t.duration_type, t.original_duration, t.calendar_id,
  t.start, t.finish, t.planned_start, t.planned_finish,
  t.actual_start, t.actual_finish, t.created_at, t.updated_at`

const getTaskByIDQuery = `
SELECT` + taskColumns + `
FROM tasks t
WHERE t.id = ? AND t.deleted_at IS NULL;
`

const listTasksByPlanningQuery = `
SELECT` + taskColumns + `
FROM tasks t
WHERE t.planning_id = ? AND t.deleted_at IS NULL
ORDER BY t.id;
`

const listStandardDurationQuery = `
SELECT` + taskColumns + `
FROM tasks t
WHERE t.planning_id = ?
  AND t.duration_type = 'STANDARD'
  AND t.start IS NOT NULL
  AND t.deleted_at IS NULL
ORDER BY t.id;
`

const insertTaskQuery = `
INSERT INTO tasks (
  planning_id, parent_id, name, task_type, status, duration_type,
  original_duration, calendar_id, start, finish,
  planned_start, planned_finish, created_by
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`

const saveTaskQuery = `
UPDATE tasks
SET name = ?, status = ?, original_duration = ?, parent_id = ?,
    start = ?, finish = ?,
    planned_start = ?, planned_finish = ?, actual_start = ?, actual_finish = ?,
    updated_by = ?
WHERE id = ? AND deleted_at IS NULL;
`

const setTaskCalendarQuery = `
UPDATE tasks SET calendar_id = ?, updated_by = ?
WHERE id = ? AND deleted_at IS NULL;
`

const countTasksByStatusQuery = `
SELECT status, COUNT(*) AS total
FROM tasks
WHERE planning_id = ? AND deleted_at IS NULL
GROUP BY status;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID               uint64         `db:"id"`
	PlanningID       uint64         `db:"planning_id"`
	ParentID         sql.NullInt64  `db:"parent_id"`
	Name             string         `db:"name"`
	TaskType         string         `db:"task_type"`
	Status           string         `db:"status"`
	DurationType     string         `db:"duration_type"`
	OriginalDuration int            `db:"original_duration"`
	CalendarID       sql.NullInt64  `db:"calendar_id"`
	Start            sql.NullTime   `db:"start"`
	Finish           sql.NullTime   `db:"finish"`
	PlannedStart     sql.NullTime   `db:"planned_start"`
	PlannedFinish    sql.NullTime   `db:"planned_finish"`
	ActualStart      sql.NullTime   `db:"actual_start"`
	ActualFinish     sql.NullTime   `db:"actual_finish"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	q := querier(ctx, r.db)

	result, err := q.ExecContext(ctx, insertTaskQuery,
		input.PlanningID,
		nullUint64(input.ParentID),
		input.Name,
		string(input.TaskType),
		string(input.Status),
		string(input.DurationType),
		input.OriginalDuration,
		nullUint64(input.CalendarID),
		nullTime(input.Start),
		nullTime(input.Finish),
		nullTime(input.Start),
		nullTime(input.Finish),
		input.CreatedBy,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	q := querier(ctx, r.db)

	var row taskRow
	if err := q.GetContext(ctx, &row, getTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListByIDs(ctx context.Context, ids []uint64) ([]domain.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := querier(ctx, r.db)

	query, args, err := sqlx.In(`
SELECT`+taskColumns+`
FROM tasks t
WHERE t.id IN (?) AND t.deleted_at IS NULL
ORDER BY t.id;`, ids)
	if err != nil {
		return nil, err
	}

	var rows []taskRow
	if err := q.SelectContext(ctx, &rows, q.Rebind(query), args...); err != nil {
		return nil, err
	}

	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListByPlanning(ctx context.Context, planningID uint64) ([]domain.Task, error) {
	q := querier(ctx, r.db)

	var rows []taskRow
	if err := q.SelectContext(ctx, &rows, listTasksByPlanningQuery, planningID); err != nil {
		return nil, err
	}

	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListStandardDuration(ctx context.Context, planningID uint64, taskID *uint64) ([]domain.Task, error) {
	q := querier(ctx, r.db)

	query := listStandardDurationQuery
	args := []interface{}{planningID}
	if taskID != nil {
		query = `
SELECT` + taskColumns + `
FROM tasks t
WHERE t.planning_id = ?
  AND t.id = ?
  AND t.duration_type = 'STANDARD'
  AND t.start IS NOT NULL
  AND t.deleted_at IS NULL;`
		args = append(args, *taskID)
	}

	var rows []taskRow
	if err := q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListStandardDurationWithoutCalendar(ctx context.Context, planningID uint64) ([]domain.Task, error) {
	q := querier(ctx, r.db)

	var rows []taskRow
	err := q.SelectContext(ctx, &rows, `
SELECT`+taskColumns+`
FROM tasks t
WHERE t.planning_id = ?
  AND t.duration_type = 'STANDARD'
  AND t.calendar_id IS NULL
  AND t.start IS NOT NULL
  AND t.deleted_at IS NULL
ORDER BY t.id;`, planningID)
	if err != nil {
		return nil, err
	}

	return mapTaskRows(rows), nil
}

func (r *TaskRepository) ListChildIDs(ctx context.Context, parentIDs []uint64) ([]uint64, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	q := querier(ctx, r.db)

	query, args, err := sqlx.In(
		`SELECT id FROM tasks WHERE parent_id IN (?) AND deleted_at IS NULL;`, parentIDs)
	if err != nil {
		return nil, err
	}

	var ids []uint64
	if err := q.SelectContext(ctx, &ids, q.Rebind(query), args...); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *TaskRepository) Save(ctx context.Context, task domain.Task, updatedBy uint64) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx, saveTaskQuery,
		task.Name,
		string(task.Status),
		task.OriginalDuration,
		nullUint64(task.ParentID),
		nullTime(task.Start),
		nullTime(task.Finish),
		nullTime(task.PlannedStart),
		nullTime(task.PlannedFinish),
		nullTime(task.ActualStart),
		nullTime(task.ActualFinish),
		updatedBy,
		task.ID,
	)
	return err
}

func (r *TaskRepository) SetCalendar(ctx context.Context, taskID uint64, calendarID *uint64, updatedBy uint64) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx, setTaskCalendarQuery, nullUint64(calendarID), updatedBy, taskID)
	return err
}

func (r *TaskRepository) SoftDeleteByIDs(ctx context.Context, ids []uint64, deletedBy uint64) error {
	if len(ids) == 0 {
		return nil
	}
	q := querier(ctx, r.db)

	query, args, err := sqlx.In(
		`UPDATE tasks SET deleted_at = NOW(), deleted_by = ? WHERE id IN (?) AND deleted_at IS NULL;`,
		deletedBy, ids)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, q.Rebind(query), args...)
	return err
}

func (r *TaskRepository) CountByStatus(ctx context.Context, planningID uint64) (map[domain.TaskStatus]int, error) {
	q := querier(ctx, r.db)

	var rows []struct {
		Status string `db:"status"`
		Total  int    `db:"total"`
	}
	if err := q.SelectContext(ctx, &rows, countTasksByStatusQuery, planningID); err != nil {
		return nil, err
	}

	counts := make(map[domain.TaskStatus]int, len(rows))
	for _, row := range rows {
		counts[domain.TaskStatus(row.Status)] = row.Total
	}
	return counts, nil
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:               row.ID,
		PlanningID:       row.PlanningID,
		Name:             row.Name,
		TaskType:         domain.TaskType(row.TaskType),
		Status:           domain.TaskStatus(row.Status),
		DurationType:     domain.DurationType(row.DurationType),
		OriginalDuration: row.OriginalDuration,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}

	if row.ParentID.Valid {
		value := uint64(row.ParentID.Int64)
		task.ParentID = &value
	}
	if row.CalendarID.Valid {
		value := uint64(row.CalendarID.Int64)
		task.CalendarID = &value
	}
	task.Start = timePtr(row.Start)
	task.Finish = timePtr(row.Finish)
	task.PlannedStart = timePtr(row.PlannedStart)
	task.PlannedFinish = timePtr(row.PlannedFinish)
	task.ActualStart = timePtr(row.ActualStart)
	task.ActualFinish = timePtr(row.ActualFinish)

	return task
}

func timePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}

func nullUint64(value *uint64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}
