package service

import (
	"context"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
)

// aggregatePlanningStatus derives a planning's status from its task counts:
// all TODO means PLANNED, all FINISHED means INACTIVE, anything mixed or in
// progress means ACTIVE. An empty planning stays PLANNED.
func aggregatePlanningStatus(counts map[domain.TaskStatus]int) domain.PlanningStatus {
	total := 0
	for _, count := range counts {
		total += count
	}

	switch {
	case total == 0, counts[domain.TaskStatusTodo] == total:
		return domain.PlanningStatusPlanned
	case counts[domain.TaskStatusFinished] == total:
		return domain.PlanningStatusInactive
	default:
		return domain.PlanningStatusActive
	}
}

// refreshPlanningStatus recomputes and persists the planning's aggregate
// status. It runs on the caller's context, so inside a transaction the
// planning row stays consistent with the task table as of commit.
func refreshPlanningStatus(ctx context.Context, tasks ports.TaskRepository, plannings ports.PlanningRepository, planningID uint64) error {
	counts, err := tasks.CountByStatus(ctx, planningID)
	if err != nil {
		return err
	}
	return plannings.SetStatus(ctx, planningID, aggregatePlanningStatus(counts))
}
