package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
)

// upsertCalendarConfigQuery is keyed by the (calendar_id, date) unique index.
// Re-assigning a date refreshes the day type and revives a soft-deleted row,
// keeping the one-non-deleted-row-per-date invariant.
const upsertCalendarConfigQuery = `
INSERT INTO calendar_configs (calendar_id, date, day_type, working_day_type_id, link_key, created_by)
VALUES (?, ?, 'WORKING_DAY', ?, ?, ?)
ON DUPLICATE KEY UPDATE
  day_type = 'WORKING_DAY',
  working_day_type_id = VALUES(working_day_type_id),
  link_key = VALUES(link_key),
  updated_by = VALUES(created_by),
  deleted_at = NULL,
  deleted_by = NULL;
`

const listCalendarConfigsQuery = `
SELECT cc.id, cc.calendar_id, cc.date, cc.day_type, cc.working_day_type_id,
       cc.link_key, cc.created_at, cc.updated_at
FROM calendar_configs cc
WHERE cc.calendar_id = ? AND cc.deleted_at IS NULL
ORDER BY cc.date;
`

const listCalendarConfigDatesQuery = `
SELECT cc.date
FROM calendar_configs cc
WHERE cc.calendar_id = ? AND cc.deleted_at IS NULL
ORDER BY cc.date;
`

type CalendarConfigRepository struct {
	db *sqlx.DB
}

type calendarConfigRow struct {
	ID               uint64         `db:"id"`
	CalendarID       uint64         `db:"calendar_id"`
	Date             time.Time      `db:"date"`
	DayType          string         `db:"day_type"`
	WorkingDayTypeID sql.NullInt64  `db:"working_day_type_id"`
	LinkKey          sql.NullString `db:"link_key"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

var _ ports.CalendarConfigRepository = (*CalendarConfigRepository)(nil)

func NewCalendarConfigRepository(db *sqlx.DB) *CalendarConfigRepository {
	return &CalendarConfigRepository{db: db}
}

func (r *CalendarConfigRepository) UpsertWorkingDates(ctx context.Context, calendarID uint64, dates []time.Time, workingDayTypeID *uint64, linkKey *string, actorID uint64) error {
	q := querier(ctx, r.db)

	for _, date := range dates {
		_, err := q.ExecContext(ctx, upsertCalendarConfigQuery,
			calendarID,
			date.Format("2006-01-02"),
			nullUint64(workingDayTypeID),
			nullString(linkKey),
			actorID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *CalendarConfigRepository) SoftDeleteDates(ctx context.Context, calendarID uint64, dates []time.Time, deletedBy uint64) error {
	if len(dates) == 0 {
		return nil
	}
	q := querier(ctx, r.db)

	formatted := make([]string, 0, len(dates))
	for _, date := range dates {
		formatted = append(formatted, date.Format("2006-01-02"))
	}

	query, args, err := sqlx.In(`
UPDATE calendar_configs SET deleted_at = NOW(), deleted_by = ?
WHERE calendar_id = ? AND date IN (?) AND deleted_at IS NULL;`,
		deletedBy, calendarID, formatted)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, q.Rebind(query), args...)
	return err
}

func (r *CalendarConfigRepository) SoftDeleteByCalendar(ctx context.Context, calendarID uint64, deletedBy uint64) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx, `
UPDATE calendar_configs SET deleted_at = NOW(), deleted_by = ?
WHERE calendar_id = ? AND deleted_at IS NULL;`, deletedBy, calendarID)
	return err
}

func (r *CalendarConfigRepository) ListByCalendar(ctx context.Context, calendarID uint64) ([]domain.CalendarConfig, error) {
	q := querier(ctx, r.db)

	var rows []calendarConfigRow
	if err := q.SelectContext(ctx, &rows, listCalendarConfigsQuery, calendarID); err != nil {
		return nil, err
	}

	configs := make([]domain.CalendarConfig, 0, len(rows))
	for _, row := range rows {
		configs = append(configs, mapCalendarConfigRow(row))
	}
	return configs, nil
}

func (r *CalendarConfigRepository) ListDates(ctx context.Context, calendarID uint64) ([]time.Time, error) {
	q := querier(ctx, r.db)

	var dates []time.Time
	if err := q.SelectContext(ctx, &dates, listCalendarConfigDatesQuery, calendarID); err != nil {
		return nil, err
	}
	return dates, nil
}

func mapCalendarConfigRow(row calendarConfigRow) domain.CalendarConfig {
	config := domain.CalendarConfig{
		ID:         row.ID,
		CalendarID: row.CalendarID,
		Date:       row.Date,
		DayType:    domain.CalendarDayType(row.DayType),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.WorkingDayTypeID.Valid {
		value := uint64(row.WorkingDayTypeID.Int64)
		config.WorkingDayTypeID = &value
	}
	if row.LinkKey.Valid {
		value := row.LinkKey.String
		config.LinkKey = &value
	}
	return config
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
