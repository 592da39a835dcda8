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

const linkColumns = `l.id, l.planning_id, l.source_id, l.target_id, l.link_type, l.lag, l.created_at`

const getLinkByIDQuery = `
SELECT ` + linkColumns + `
FROM task_links l
WHERE l.id = ? AND l.planning_id = ?;
`

const listLinksByPlanningQuery = `
SELECT ` + linkColumns + `
FROM task_links l
WHERE l.planning_id = ?
ORDER BY l.id;
`

const insertLinkQuery = `
INSERT INTO task_links (planning_id, source_id, target_id, link_type, lag, created_by)
VALUES (?, ?, ?, ?, ?, ?);
`

const linkExistsQuery = `
SELECT COUNT(*) FROM task_links
WHERE planning_id = ? AND source_id = ? AND target_id = ? AND link_type = ?;
`

const updateLinkQuery = `
UPDATE task_links SET link_type = ?, lag = ?
WHERE id = ? AND planning_id = ?;
`

type LinkRepository struct {
	db *sqlx.DB
}

type linkRow struct {
	ID         uint64    `db:"id"`
	PlanningID uint64    `db:"planning_id"`
	SourceID   uint64    `db:"source_id"`
	TargetID   uint64    `db:"target_id"`
	LinkType   string    `db:"link_type"`
	Lag        int       `db:"lag"`
	CreatedAt  time.Time `db:"created_at"`
}

var _ ports.LinkRepository = (*LinkRepository)(nil)

func NewLinkRepository(db *sqlx.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Create(ctx context.Context, planningID uint64, input domain.CreateLinkInput) (domain.Link, error) {
	q := querier(ctx, r.db)

	result, err := q.ExecContext(ctx, insertLinkQuery,
		planningID, input.SourceID, input.TargetID, string(input.Type), input.Lag, input.CreatedBy)
	if err != nil {
		return domain.Link{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Link{}, err
	}

	return r.GetByID(ctx, planningID, uint64(id))
}

func (r *LinkRepository) BulkCreate(ctx context.Context, planningID uint64, inputs []domain.CreateLinkInput) ([]domain.Link, error) {
	links := make([]domain.Link, 0, len(inputs))
	for _, input := range inputs {
		link, err := r.Create(ctx, planningID, input)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

func (r *LinkRepository) GetByID(ctx context.Context, planningID, linkID uint64) (domain.Link, error) {
	q := querier(ctx, r.db)

	var row linkRow
	if err := q.GetContext(ctx, &row, getLinkByIDQuery, linkID, planningID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Link{}, domain.ErrLinkNotFound
		}
		return domain.Link{}, err
	}

	return mapLinkRow(row), nil
}

func (r *LinkRepository) ListByPlanning(ctx context.Context, planningID uint64) ([]domain.Link, error) {
	q := querier(ctx, r.db)

	var rows []linkRow
	if err := q.SelectContext(ctx, &rows, listLinksByPlanningQuery, planningID); err != nil {
		return nil, err
	}

	links := make([]domain.Link, 0, len(rows))
	for _, row := range rows {
		links = append(links, mapLinkRow(row))
	}
	return links, nil
}

func (r *LinkRepository) Exists(ctx context.Context, planningID, sourceID, targetID uint64, linkType domain.LinkType) (bool, error) {
	q := querier(ctx, r.db)

	var count int
	err := q.GetContext(ctx, &count, linkExistsQuery, planningID, sourceID, targetID, string(linkType))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LinkRepository) Update(ctx context.Context, planningID, linkID uint64, input domain.UpdateLinkInput) (domain.Link, error) {
	link, err := r.GetByID(ctx, planningID, linkID)
	if err != nil {
		return domain.Link{}, err
	}

	if input.Type != nil {
		link.Type = *input.Type
	}
	if input.Lag != nil {
		link.Lag = *input.Lag
	}

	q := querier(ctx, r.db)
	if _, err := q.ExecContext(ctx, updateLinkQuery, string(link.Type), link.Lag, linkID, planningID); err != nil {
		return domain.Link{}, err
	}
	return link, nil
}

func (r *LinkRepository) DeleteByIDs(ctx context.Context, planningID uint64, linkIDs []uint64) error {
	if len(linkIDs) == 0 {
		return nil
	}
	q := querier(ctx, r.db)

	query, args, err := sqlx.In(
		`DELETE FROM task_links WHERE planning_id = ? AND id IN (?);`, planningID, linkIDs)
	if err != nil {
		return err
	}

	_, err = q.ExecContext(ctx, q.Rebind(query), args...)
	return err
}

func mapLinkRow(row linkRow) domain.Link {
	return domain.Link{
		ID:         row.ID,
		PlanningID: row.PlanningID,
		SourceID:   row.SourceID,
		TargetID:   row.TargetID,
		Type:       domain.LinkType(row.LinkType),
		Lag:        row.Lag,
		CreatedAt:  row.CreatedAt,
	}
}
