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

const planningColumns = `
  p.id, p.project_id, p.name, p.status, p.data_date, p.project_start,
  p.created_at, p.updated_at`

const getPlanningByIDQuery = `
SELECT` + planningColumns + `
FROM plannings p
WHERE p.id = ? AND p.deleted_at IS NULL;
`

const listPlanningsByProjectQuery = `
SELECT` + planningColumns + `
FROM plannings p
WHERE p.project_id = ? AND p.deleted_at IS NULL
ORDER BY p.id;
`

const insertPlanningQuery = `
INSERT INTO plannings (project_id, name, status, data_date, project_start, created_by)
VALUES (?, ?, ?, ?, ?, ?);
`

const setPlanningStatusQuery = `
UPDATE plannings SET status = ? WHERE id = ? AND deleted_at IS NULL;
`

type PlanningRepository struct {
	db *sqlx.DB
}

type planningRow struct {
	ID           uint64       `db:"id"`
	ProjectID    uint64       `db:"project_id"`
	Name         string       `db:"name"`
	Status       string       `db:"status"`
	DataDate     sql.NullTime `db:"data_date"`
	ProjectStart sql.NullTime `db:"project_start"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
}

var _ ports.PlanningRepository = (*PlanningRepository)(nil)

func NewPlanningRepository(db *sqlx.DB) *PlanningRepository {
	return &PlanningRepository{db: db}
}

func (r *PlanningRepository) Create(ctx context.Context, input domain.CreatePlanningInput) (domain.Planning, error) {
	q := querier(ctx, r.db)

	result, err := q.ExecContext(ctx, insertPlanningQuery,
		input.ProjectID,
		input.Name,
		string(domain.PlanningStatusPlanned),
		nullTime(input.DataDate),
		nullTime(input.ProjectStart),
		input.CreatedBy,
	)
	if err != nil {
		return domain.Planning{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Planning{}, err
	}

	return r.GetByID(ctx, uint64(id))
}

func (r *PlanningRepository) GetByID(ctx context.Context, id uint64) (domain.Planning, error) {
	q := querier(ctx, r.db)

	var row planningRow
	if err := q.GetContext(ctx, &row, getPlanningByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Planning{}, domain.ErrPlanningNotFound
		}
		return domain.Planning{}, err
	}

	return mapPlanningRow(row), nil
}

func (r *PlanningRepository) ListByProject(ctx context.Context, projectID uint64) ([]domain.Planning, error) {
	q := querier(ctx, r.db)

	var rows []planningRow
	if err := q.SelectContext(ctx, &rows, listPlanningsByProjectQuery, projectID); err != nil {
		return nil, err
	}

	plannings := make([]domain.Planning, 0, len(rows))
	for _, row := range rows {
		plannings = append(plannings, mapPlanningRow(row))
	}
	return plannings, nil
}

func (r *PlanningRepository) SetStatus(ctx context.Context, id uint64, status domain.PlanningStatus) error {
	q := querier(ctx, r.db)

	_, err := q.ExecContext(ctx, setPlanningStatusQuery, string(status), id)
	return err
}

func mapPlanningRow(row planningRow) domain.Planning {
	planning := domain.Planning{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Name:      row.Name,
		Status:    domain.PlanningStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	planning.DataDate = timePtr(row.DataDate)
	planning.ProjectStart = timePtr(row.ProjectStart)
	return planning
}
