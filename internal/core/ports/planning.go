package ports

import (
	"context"

	"planbase/internal/core/domain"
)

type PlanningRepository interface {
	Create(ctx context.Context, input domain.CreatePlanningInput) (domain.Planning, error)
	GetByID(ctx context.Context, id uint64) (domain.Planning, error)
	ListByProject(ctx context.Context, projectID uint64) ([]domain.Planning, error)
	SetStatus(ctx context.Context, id uint64, status domain.PlanningStatus) error
}

type LinkRepository interface {
	Create(ctx context.Context, planningID uint64, input domain.CreateLinkInput) (domain.Link, error)
	BulkCreate(ctx context.Context, planningID uint64, inputs []domain.CreateLinkInput) ([]domain.Link, error)
	GetByID(ctx context.Context, planningID, linkID uint64) (domain.Link, error)
	ListByPlanning(ctx context.Context, planningID uint64) ([]domain.Link, error)
	Exists(ctx context.Context, planningID, sourceID, targetID uint64, linkType domain.LinkType) (bool, error)
	Update(ctx context.Context, planningID, linkID uint64, input domain.UpdateLinkInput) (domain.Link, error)
	DeleteByIDs(ctx context.Context, planningID uint64, linkIDs []uint64) error
}

type PlanningService interface {
	CreatePlanning(ctx context.Context, input domain.CreatePlanningInput) (domain.Planning, error)
	GetPlanning(ctx context.Context, planningID uint64) (domain.Planning, error)
	ListPlannings(ctx context.Context, projectID uint64) ([]domain.Planning, error)
	CreateLink(ctx context.Context, planningID uint64, input domain.CreateLinkInput) (domain.Link, error)
	BulkCreateLinks(ctx context.Context, planningID uint64, inputs []domain.CreateLinkInput) ([]domain.Link, error)
	UpdateLink(ctx context.Context, planningID, linkID uint64, input domain.UpdateLinkInput) (domain.Link, error)
	ListLinks(ctx context.Context, planningID uint64) ([]domain.Link, error)
	DeleteLinkAndRelatedMilestones(ctx context.Context, planningID, linkID, deletedBy uint64) error
	BulkDeleteLinksAndRelatedMilestones(ctx context.Context, planningID uint64, linkIDs []uint64, deletedBy uint64) error
}
