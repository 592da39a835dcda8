package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
	"planbase/internal/core/schedule"
)

type TaskService struct {
	uow       ports.UnitOfWork
	tasks     ports.TaskRepository
	plannings ports.PlanningRepository
	calendars ports.CalendarRepository
	configs   ports.CalendarConfigRepository
	links     ports.LinkRepository
	notifier  ports.Notifier
}

func NewTaskService(
	uow ports.UnitOfWork,
	tasks ports.TaskRepository,
	plannings ports.PlanningRepository,
	calendars ports.CalendarRepository,
	configs ports.CalendarConfigRepository,
	links ports.LinkRepository,
	notifier ports.Notifier,
) *TaskService {
	return &TaskService{
		uow:       uow,
		tasks:     tasks,
		plannings: plannings,
		calendars: calendars,
		configs:   configs,
		links:     links,
		notifier:  notifier,
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	var (
		task     domain.Task
		planning domain.Planning
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		planning, err = s.plannings.GetByID(ctx, input.PlanningID)
		if err != nil {
			return err
		}

		if input.ParentID != nil {
			parent, err := s.tasks.GetByID(ctx, *input.ParentID)
			if err != nil {
				return err
			}
			if parent.PlanningID != input.PlanningID {
				return domain.ErrTaskNotFound
			}
		}

		task, err = s.tasks.Create(ctx, input)
		if err != nil {
			return err
		}

		return refreshPlanningStatus(ctx, s.tasks, s.plannings, input.PlanningID)
	})
	if err != nil {
		return domain.Task{}, err
	}

	s.notifier.Notify(planning.ProjectID, input.CreatedBy, taskTarget(task.ID), domain.NotificationTaskCreated)
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID uint64) (domain.Task, error) {
	return s.tasks.GetByID(ctx, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	var (
		task     domain.Task
		planning domain.Planning
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		planning, err = s.plannings.GetByID(ctx, task.PlanningID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			task.Name = *input.Name
		}
		if input.OriginalDuration != nil {
			task.OriginalDuration = *input.OriginalDuration
		}
		if input.StartSet {
			task.Start = input.Start
		}
		if input.FinishSet {
			task.Finish = input.Finish
		}
		if input.ParentIDSet {
			if input.ParentID != nil {
				parent, err := s.tasks.GetByID(ctx, *input.ParentID)
				if err != nil {
					return err
				}
				if parent.PlanningID != task.PlanningID {
					return domain.ErrTaskNotFound
				}
			}
			task.ParentID = input.ParentID
		}
		statusChanged := false
		if input.Status != nil && *input.Status != task.Status {
			task.Status = *input.Status
			statusChanged = true
		}

		applyStatusFields(&task)
		if err := s.tasks.Save(ctx, task, input.UpdatedBy); err != nil {
			return err
		}

		scheduleChanged := input.StartSet || input.OriginalDuration != nil
		if scheduleChanged && !input.FinishSet &&
			task.DurationType == domain.DurationTypeStandard && task.Start != nil {
			calendarID, found, err := s.effectiveCalendar(ctx, task, planning.ProjectID)
			if err != nil {
				return err
			}
			if found {
				if _, err := s.recalculate(ctx, task.PlanningID, calendarID, &task.ID, input.UpdatedBy); err != nil {
					return err
				}
				task, err = s.tasks.GetByID(ctx, task.ID)
				if err != nil {
					return err
				}
			}
		}

		if statusChanged {
			return refreshPlanningStatus(ctx, s.tasks, s.plannings, task.PlanningID)
		}
		return nil
	})
	if err != nil {
		return domain.Task{}, err
	}

	s.notifier.Notify(planning.ProjectID, input.UpdatedBy, taskTarget(task.ID), domain.NotificationTaskUpdated)
	return task, nil
}

// DeleteTask soft-deletes the task and its whole parent_id subtree, then
// removes the links incident to any deleted task.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uint64, deletedBy uint64) error {
	var planning domain.Planning
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		planning, err = s.plannings.GetByID(ctx, task.PlanningID)
		if err != nil {
			return err
		}

		subtree := []uint64{taskID}
		frontier := []uint64{taskID}
		for len(frontier) > 0 {
			children, err := s.tasks.ListChildIDs(ctx, frontier)
			if err != nil {
				return err
			}
			subtree = append(subtree, children...)
			frontier = children
		}

		if err := s.tasks.SoftDeleteByIDs(ctx, subtree, deletedBy); err != nil {
			return err
		}

		links, err := s.links.ListByPlanning(ctx, task.PlanningID)
		if err != nil {
			return err
		}
		deleted := make(map[uint64]struct{}, len(subtree))
		for _, id := range subtree {
			deleted[id] = struct{}{}
		}
		incident := schedule.IncidentLinks(links, deleted)
		if err := s.links.DeleteByIDs(ctx, task.PlanningID, incident); err != nil {
			return err
		}

		return refreshPlanningStatus(ctx, s.tasks, s.plannings, task.PlanningID)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(planning.ProjectID, deletedBy, taskTarget(taskID), domain.NotificationTaskDeleted)
	return nil
}

// UpdateTaskCalendar assigns an explicit calendar to the task and recomputes
// its finish against the new calendar.
func (s *TaskService) UpdateTaskCalendar(ctx context.Context, taskID uint64, calendarID uint64, updatedBy uint64) (map[uint64]time.Time, error) {
	var (
		finishes map[uint64]time.Time
		planning domain.Planning
	)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		task, err := s.tasks.GetByID(ctx, taskID)
		if err != nil {
			return err
		}
		planning, err = s.plannings.GetByID(ctx, task.PlanningID)
		if err != nil {
			return err
		}
		if _, err := s.calendars.GetByID(ctx, calendarID); err != nil {
			return err
		}

		if err := s.tasks.SetCalendar(ctx, taskID, &calendarID, updatedBy); err != nil {
			return err
		}

		finishes, err = s.recalculate(ctx, task.PlanningID, calendarID, &taskID, updatedBy)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(planning.ProjectID, updatedBy, taskTarget(taskID), domain.NotificationTaskUpdated)
	return finishes, nil
}

// RecalculateTaskFinish recomputes working-day finish dates for the
// planning's STANDARD-duration tasks against the given calendar, optionally
// narrowed to one task. Tasks whose start is not covered by the calendar's
// config window keep their current finish.
func (s *TaskService) RecalculateTaskFinish(ctx context.Context, planningID uint64, calendarID uint64, taskID *uint64) (map[uint64]time.Time, error) {
	var finishes map[uint64]time.Time
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := s.plannings.GetByID(ctx, planningID); err != nil {
			return err
		}
		if _, err := s.calendars.GetByID(ctx, calendarID); err != nil {
			return err
		}

		var err error
		finishes, err = s.recalculate(ctx, planningID, calendarID, taskID, 0)
		return err
	})
	if err != nil {
		return nil, err
	}
	return finishes, nil
}

// effectiveCalendar resolves the calendar that governs a task's working
// days: its own assignment when present, the project's default otherwise.
// A project with no default calendar yields found=false.
func (s *TaskService) effectiveCalendar(ctx context.Context, task domain.Task, projectID uint64) (uint64, bool, error) {
	if task.CalendarID != nil {
		return *task.CalendarID, true, nil
	}
	calendar, err := s.calendars.GetDefaultByProject(ctx, projectID)
	if errors.Is(err, domain.ErrCalendarNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return calendar.ID, true, nil
}

// recalculate runs the duration calculator and persists every changed finish
// through the standard save path so shadow fields stay in step. Must run
// inside a transaction.
func (s *TaskService) recalculate(ctx context.Context, planningID, calendarID uint64, taskID *uint64, actorID uint64) (map[uint64]time.Time, error) {
	tasks, err := s.tasks.ListStandardDuration(ctx, planningID, taskID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return map[uint64]time.Time{}, nil
	}

	dates, err := s.configs.ListDates(ctx, calendarID)
	if err != nil {
		return nil, err
	}

	windows := make([]schedule.TaskWindow, 0, len(tasks))
	byID := make(map[uint64]domain.Task, len(tasks))
	for _, task := range tasks {
		windows = append(windows, schedule.TaskWindow{
			TaskID:           task.ID,
			Start:            *task.Start,
			OriginalDuration: task.OriginalDuration,
		})
		byID[task.ID] = task
	}

	computed := schedule.WorkingFinishDates(windows, dates)
	changed := make(map[uint64]time.Time, len(computed))
	for id, finish := range computed {
		task := byID[id]
		if task.Finish != nil && task.Finish.Equal(finish) {
			continue
		}
		task.Finish = &finish
		applyStatusFields(&task)
		if err := s.tasks.Save(ctx, task, actorID); err != nil {
			return nil, err
		}
		changed[id] = finish
	}
	return changed, nil
}

// applyStatusFields sets the planned/actual shadow dates from the task's
// status: TODO mirrors start/finish into the planned pair, IN_PROGRESS pins
// the actual start and planned finish, FINISHED pins both actuals.
func applyStatusFields(task *domain.Task) {
	switch task.Status {
	case domain.TaskStatusTodo:
		task.PlannedStart = task.Start
		task.PlannedFinish = task.Finish
		task.ActualStart = nil
		task.ActualFinish = nil
	case domain.TaskStatusInProgress:
		task.ActualStart = task.Start
		task.PlannedFinish = task.Finish
		task.ActualFinish = nil
	case domain.TaskStatusFinished:
		if task.ActualStart == nil {
			task.ActualStart = task.Start
		}
		task.ActualFinish = task.Finish
	}
}

func taskTarget(taskID uint64) string {
	return fmt.Sprintf("task:%d", taskID)
}
