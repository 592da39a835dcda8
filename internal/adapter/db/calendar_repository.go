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

const calendarColumns = `c.id, c.project_id, c.name, c.is_default, c.created_at, c.updated_at`

const getCalendarByIDQuery = `
SELECT ` + calendarColumns + `
FROM calendars c
WHERE c.id = ? AND c.deleted_at IS NULL;
`

const listCalendarsByProjectQuery = `
SELECT ` + calendarColumns + `
FROM calendars c
WHERE c.project_id = ? AND c.deleted_at IS NULL
ORDER BY c.id;
`

const insertCalendarQuery = `
INSERT INTO calendars (project_id, name, is_default, created_by)
VALUES (?, ?, ?, ?);
`

const unsetDefaultCalendarQuery = `
UPDATE calendars SET is_default = FALSE, updated_by = ?
WHERE project_id = ? AND is_default = TRUE AND deleted_at IS NULL;
`

const setDefaultCalendarQuery = `
UPDATE calendars SET is_default = TRUE, updated_by = ?
WHERE id = ? AND deleted_at IS NULL;
`

const getDefaultCalendarQuery = `
SELECT ` + calendarColumns + `
FROM calendars c
WHERE c.project_id = ? AND c.is_default = TRUE AND c.deleted_at IS NULL;
`

type CalendarRepository struct {
	db *sqlx.DB
}

type calendarRow struct {
	ID        uint64    `db:"id"`
	ProjectID uint64    `db:"project_id"`
	Name      string    `db:"name"`
	IsDefault bool      `db:"is_default"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

var _ ports.CalendarRepository = (*CalendarRepository)(nil)

func NewCalendarRepository(db *sqlx.DB) *CalendarRepository {
	return &CalendarRepository{db: db}
}

func (r *CalendarRepository) Create(ctx context.Context, input domain.CreateCalendarInput) (domain.Calendar, error) {
	q := querier(ctx, r.db)

	result, err := q.ExecContext(ctx, insertCalendarQuery,
		input.ProjectID, input.Name, input.IsDefault, input.CreatedBy)
	if err != nil {
		return domain.Calendar{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Calendar{}, err
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *CalendarRepository) GetByID(ctx context.Context, id uint64) (domain.Calendar, error) {
	q := querier(ctx, r.db)

	var row calendarRow
	if err := q.GetContext(ctx, &row, getCalendarByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Calendar{}, domain.ErrCalendarNotFound
		}
		return domain.Calendar{}, err
	}

	return mapCalendarRow(row), nil
}

func (r *CalendarRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.Calendar, error) {
	q := querier(ctx, r.db)

	var rows []calendarRow
	if err := q.SelectContext(ctx, &rows, listCalendarsByProjectQuery, projectID); err != nil {
		return nil, err
	}

	calendars := make([]domain.Calendar, 0, len(rows))
	for _, row := range rows {
		calendars = append(calendars, mapCalendarRow(row))
	}
	return calendars, nil
}

func (r *CalendarRepository) ExistsByName(ctx context.Context, projectID uint64, name string, excludeID *uint64) (bool, error) {
	q := querier(ctx, r.db)

	query := `SELECT COUNT(*) FROM calendars WHERE project_id = ? AND name = ? AND deleted_at IS NULL`
	args := []interface{}{projectID, name}
	if excludeID != nil {
		query += ` AND id <> ?`
		args = append(args, *excludeID)
	}

	var count int
	if err := q.GetContext(ctx, &count, query+`;`, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CalendarRepository) Rename(ctx context.Context, id uint64, name string, updatedBy uint64) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx,
		`UPDATE calendars SET name = ?, updated_by = ? WHERE id = ? AND deleted_at IS NULL;`,
		name, updatedBy, id)
	return err
}

func (r *CalendarRepository) UnsetDefault(ctx context.Context, projectID uint64, updatedBy uint64) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx, unsetDefaultCalendarQuery, updatedBy, projectID)
	return err
}

func (r *CalendarRepository) SetDefault(ctx context.Context, id uint64, updatedBy uint64) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx, setDefaultCalendarQuery, updatedBy, id)
	return err
}

func (r *CalendarRepository) GetDefaultByProject(ctx context.Context, projectID uint64) (domain.Calendar, error) {
	q := querier(ctx, r.db)

	var row calendarRow
	if err := q.GetContext(ctx, &row, getDefaultCalendarQuery, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Calendar{}, domain.ErrCalendarNotFound
		}
		return domain.Calendar{}, err
	}

	return mapCalendarRow(row), nil
}

func (r *CalendarRepository) SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx,
		`UPDATE calendars SET deleted_at = NOW(), deleted_by = ? WHERE id = ? AND deleted_at IS NULL;`,
		deletedBy, id)
	return err
}

func mapCalendarRow(row calendarRow) domain.Calendar {
	return domain.Calendar{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Name:      row.Name,
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
