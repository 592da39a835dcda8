package service

import (
	"context"
	"fmt"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
	"planbase/internal/core/schedule"
)

type PlanningService struct {
	uow       ports.UnitOfWork
	plannings ports.PlanningRepository
	tasks     ports.TaskRepository
	links     ports.LinkRepository
	notifier  ports.Notifier
}

func NewPlanningService(
	uow ports.UnitOfWork,
	plannings ports.PlanningRepository,
	tasks ports.TaskRepository,
	links ports.LinkRepository,
	notifier ports.Notifier,
) *PlanningService {
	return &PlanningService{
		uow:       uow,
		plannings: plannings,
		tasks:     tasks,
		links:     links,
		notifier:  notifier,
	}
}

var _ ports.PlanningService = (*PlanningService)(nil)

func (s *PlanningService) CreatePlanning(ctx context.Context, input domain.CreatePlanningInput) (domain.Planning, error) {
	planning, err := s.plannings.Create(ctx, input)
	if err != nil {
		return domain.Planning{}, err
	}

	s.notifier.Notify(planning.ProjectID, input.CreatedBy, planningTarget(planning.ID), domain.NotificationPlanningCreated)
	return planning, nil
}

func (s *PlanningService) GetPlanning(ctx context.Context, planningID uint64) (domain.Planning, error) {
	return s.plannings.GetByID(ctx, planningID)
}

func (s *PlanningService) ListPlannings(ctx context.Context, projectID uint64) ([]domain.Planning, error) {
	return s.plannings.ListByProject(ctx, projectID)
}

func (s *PlanningService) CreateLink(ctx context.Context, planningID uint64, input domain.CreateLinkInput) (domain.Link, error) {
	var (
		link     domain.Link
		planning domain.Planning
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		planning, err = s.plannings.GetByID(ctx, planningID)
		if err != nil {
			return err
		}
		if err := s.checkLinkValid(ctx, planningID, input); err != nil {
			return err
		}
		link, err = s.links.Create(ctx, planningID, input)
		return err
	})
	if err != nil {
		return domain.Link{}, err
	}

	s.notifier.Notify(planning.ProjectID, input.CreatedBy, linkTarget(planningID, link.ID), domain.NotificationLinkCreated)
	return link, nil
}

func (s *PlanningService) BulkCreateLinks(ctx context.Context, planningID uint64, inputs []domain.CreateLinkInput) ([]domain.Link, error) {
	var (
		links    []domain.Link
		planning domain.Planning
		actorID  uint64
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		planning, err = s.plannings.GetByID(ctx, planningID)
		if err != nil {
			return err
		}
		type edge struct {
			sourceID, targetID uint64
			linkType           domain.LinkType
		}
		seen := make(map[edge]struct{}, len(inputs))
		for _, input := range inputs {
			if err := s.checkLinkValid(ctx, planningID, input); err != nil {
				return err
			}
			// checkLinkValid only consults stored links, so repeats inside
			// the batch itself have to be caught here.
			key := edge{input.SourceID, input.TargetID, input.Type}
			if _, dup := seen[key]; dup {
				return domain.ErrInvalidLink
			}
			seen[key] = struct{}{}
			actorID = input.CreatedBy
		}
		links, err = s.links.BulkCreate(ctx, planningID, inputs)
		return err
	})
	if err != nil {
		return nil, err
	}

	for _, link := range links {
		s.notifier.Notify(planning.ProjectID, actorID, linkTarget(planningID, link.ID), domain.NotificationLinkCreated)
	}
	return links, nil
}

func (s *PlanningService) UpdateLink(ctx context.Context, planningID, linkID uint64, input domain.UpdateLinkInput) (domain.Link, error) {
	var (
		link     domain.Link
		planning domain.Planning
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		planning, err = s.plannings.GetByID(ctx, planningID)
		if err != nil {
			return err
		}
		current, err := s.links.GetByID(ctx, planningID, linkID)
		if err != nil {
			return err
		}
		if input.Type != nil {
			if !input.Type.IsValid() {
				return domain.ErrInvalidLink
			}
			// A type change must not collide with an existing edge on the
			// same task pair. The current row carries the old type, so the
			// lookup never matches the link being updated.
			if *input.Type != current.Type {
				exists, err := s.links.Exists(ctx, planningID, current.SourceID, current.TargetID, *input.Type)
				if err != nil {
					return err
				}
				if exists {
					return domain.ErrInvalidLink
				}
			}
		}
		link, err = s.links.Update(ctx, planningID, linkID, input)
		return err
	})
	if err != nil {
		return domain.Link{}, err
	}

	s.notifier.Notify(planning.ProjectID, input.UpdatedBy, linkTarget(planningID, linkID), domain.NotificationLinkUpdated)
	return link, nil
}

func (s *PlanningService) ListLinks(ctx context.Context, planningID uint64) ([]domain.Link, error) {
	if _, err := s.plannings.GetByID(ctx, planningID); err != nil {
		return nil, err
	}
	return s.links.ListByPlanning(ctx, planningID)
}

// DeleteLinkAndRelatedMilestones removes the link, then sweeps away every
// START/FINISH milestone in the connected component the link belonged to,
// along with every link of that component. Milestones in this system are
// synthetic placeholders chained to carry a cross-planning dependency; once
// any link of the chain is severed the rest of the chain is meaningless.
func (s *PlanningService) DeleteLinkAndRelatedMilestones(ctx context.Context, planningID, linkID, deletedBy uint64) error {
	return s.deleteLinksCascade(ctx, planningID, []uint64{linkID}, deletedBy)
}

// BulkDeleteLinksAndRelatedMilestones runs the same cascade seeded from
// several links at once.
func (s *PlanningService) BulkDeleteLinksAndRelatedMilestones(ctx context.Context, planningID uint64, linkIDs []uint64, deletedBy uint64) error {
	if len(linkIDs) == 0 {
		return nil
	}
	return s.deleteLinksCascade(ctx, planningID, linkIDs, deletedBy)
}

func (s *PlanningService) deleteLinksCascade(ctx context.Context, planningID uint64, linkIDs []uint64, deletedBy uint64) error {
	var planning domain.Planning
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		planning, err = s.plannings.GetByID(ctx, planningID)
		if err != nil {
			return err
		}

		links, err := s.links.ListByPlanning(ctx, planningID)
		if err != nil {
			return err
		}

		byID := make(map[uint64]domain.Link, len(links))
		for _, link := range links {
			byID[link.ID] = link
		}

		var seeds []uint64
		for _, linkID := range linkIDs {
			link, ok := byID[linkID]
			if !ok {
				return domain.ErrLinkNotFound
			}
			seeds = append(seeds, link.SourceID, link.TargetID)
		}

		reachable := schedule.ReachableTasks(links, seeds...)

		reachableIDs := make([]uint64, 0, len(reachable))
		for id := range reachable {
			reachableIDs = append(reachableIDs, id)
		}
		tasks, err := s.tasks.ListByIDs(ctx, reachableIDs)
		if err != nil {
			return err
		}
		var milestoneIDs []uint64
		for _, task := range tasks {
			if task.TaskType.IsMilestone() {
				milestoneIDs = append(milestoneIDs, task.ID)
			}
		}
		if err := s.tasks.SoftDeleteByIDs(ctx, milestoneIDs, deletedBy); err != nil {
			return err
		}

		doomed := schedule.IncidentLinks(links, reachable)
		// The seed links themselves are incident to their own endpoints, so
		// they are always part of doomed.
		if err := s.links.DeleteByIDs(ctx, planningID, doomed); err != nil {
			return err
		}

		return refreshPlanningStatus(ctx, s.tasks, s.plannings, planningID)
	})
	if err != nil {
		return err
	}

	for _, linkID := range linkIDs {
		s.notifier.Notify(planning.ProjectID, deletedBy, linkTarget(planningID, linkID), domain.NotificationLinkDeleted)
	}
	return nil
}

// checkLinkValid rejects self-loops, unknown types, endpoints outside the
// planning, and duplicate edges. Lag is stored as given and not consulted
// here.
func (s *PlanningService) checkLinkValid(ctx context.Context, planningID uint64, input domain.CreateLinkInput) error {
	if !input.Type.IsValid() {
		return domain.ErrInvalidLink
	}
	if input.SourceID == input.TargetID {
		return domain.ErrInvalidLink
	}

	for _, taskID := range []uint64{input.SourceID, input.TargetID} {
		task, err := s.tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		if task.PlanningID != planningID {
			return domain.ErrTaskNotFound
		}
	}

	exists, err := s.links.Exists(ctx, planningID, input.SourceID, input.TargetID, input.Type)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrInvalidLink
	}
	return nil
}

func planningTarget(planningID uint64) string {
	return fmt.Sprintf("planning:%d", planningID)
}

func linkTarget(planningID, linkID uint64) string {
	return fmt.Sprintf("planning:%d/link:%d", planningID, linkID)
}
