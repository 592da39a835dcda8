package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
)

const dayTypeColumns = `d.id, d.project_id, d.name, d.time_blocks, d.created_at, d.updated_at`

const getDayTypeByIDQuery = `
SELECT ` + dayTypeColumns + `
FROM day_types d
WHERE d.id = ? AND d.deleted_at IS NULL;
`

const listDayTypesByProjectQuery = `
SELECT ` + dayTypeColumns + `
FROM day_types d
WHERE d.project_id = ? AND d.deleted_at IS NULL
ORDER BY d.id;
`

const insertDayTypeQuery = `
INSERT INTO day_types (project_id, name, time_blocks, created_by)
VALUES (?, ?, ?, ?);
`

type DayTypeRepository struct {
	db *sqlx.DB
}

type dayTypeRow struct {
	ID         uint64    `db:"id"`
	ProjectID  uint64    `db:"project_id"`
	Name       string    `db:"name"`
	TimeBlocks []byte    `db:"time_blocks"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

var _ ports.DayTypeRepository = (*DayTypeRepository)(nil)

func NewDayTypeRepository(db *sqlx.DB) *DayTypeRepository {
	return &DayTypeRepository{db: db}
}

func (r *DayTypeRepository) Create(ctx context.Context, input domain.CreateDayTypeInput) (domain.DayType, error) {
	q := querier(ctx, r.db)

	blocks, err := json.Marshal(input.TimeBlocks)
	if err != nil {
		return domain.DayType{}, err
	}

	result, err := q.ExecContext(ctx, insertDayTypeQuery, input.ProjectID, input.Name, blocks, input.CreatedBy)
	if err != nil {
		return domain.DayType{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.DayType{}, err
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *DayTypeRepository) GetByID(ctx context.Context, id uint64) (domain.DayType, error) {
	q := querier(ctx, r.db)

	var row dayTypeRow
	if err := q.GetContext(ctx, &row, getDayTypeByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DayType{}, domain.ErrDayTypeNotFound
		}
		return domain.DayType{}, err
	}

	return mapDayTypeRow(row)
}

func (r *DayTypeRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.DayType, error) {
	q := querier(ctx, r.db)

	var rows []dayTypeRow
	if err := q.SelectContext(ctx, &rows, listDayTypesByProjectQuery, projectID); err != nil {
		return nil, err
	}

	dayTypes := make([]domain.DayType, 0, len(rows))
	for _, row := range rows {
		dayType, err := mapDayTypeRow(row)
		if err != nil {
			return nil, err
		}
		dayTypes = append(dayTypes, dayType)
	}
	return dayTypes, nil
}

func (r *DayTypeRepository) ExistsByName(ctx context.Context, projectID uint64, name string, excludeID *uint64) (bool, error) {
	q := querier(ctx, r.db)

	query := `SELECT COUNT(*) FROM day_types WHERE project_id = ? AND name = ? AND deleted_at IS NULL`
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

func (r *DayTypeRepository) Update(ctx context.Context, id uint64, input domain.UpdateDayTypeInput) (domain.DayType, error) {
	dayType, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.DayType{}, err
	}

	if input.Name != nil {
		dayType.Name = *input.Name
	}
	if input.TimeBlocks != nil {
		dayType.TimeBlocks = input.TimeBlocks
	}

	blocks, err := json.Marshal(dayType.TimeBlocks)
	if err != nil {
		return domain.DayType{}, err
	}

	q := querier(ctx, r.db)
	_, err = q.ExecContext(ctx,
		`UPDATE day_types SET name = ?, time_blocks = ?, updated_by = ? WHERE id = ? AND deleted_at IS NULL;`,
		dayType.Name, blocks, input.UpdatedBy, id)
	if err != nil {
		return domain.DayType{}, err
	}
	return dayType, nil
}

func (r *DayTypeRepository) SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx,
		`UPDATE day_types SET deleted_at = NOW(), deleted_by = ? WHERE id = ? AND deleted_at IS NULL;`,
		deletedBy, id)
	return err
}

func mapDayTypeRow(row dayTypeRow) (domain.DayType, error) {
	dayType := domain.DayType{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.TimeBlocks) > 0 {
		if err := json.Unmarshal(row.TimeBlocks, &dayType.TimeBlocks); err != nil {
			return domain.DayType{}, err
		}
	}
	return dayType, nil
}
