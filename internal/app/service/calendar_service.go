package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
	"planbase/internal/core/schedule"
)

type CalendarService struct {
	uow       ports.UnitOfWork
	calendars ports.CalendarRepository
	configs   ports.CalendarConfigRepository
	dayTypes  ports.DayTypeRepository
	plannings ports.PlanningRepository
	tasks     ports.TaskRepository
	notifier  ports.Notifier
}

func NewCalendarService(
	uow ports.UnitOfWork,
	calendars ports.CalendarRepository,
	configs ports.CalendarConfigRepository,
	dayTypes ports.DayTypeRepository,
	plannings ports.PlanningRepository,
	tasks ports.TaskRepository,
	notifier ports.Notifier,
) *CalendarService {
	return &CalendarService{
		uow:       uow,
		calendars: calendars,
		configs:   configs,
		dayTypes:  dayTypes,
		plannings: plannings,
		tasks:     tasks,
		notifier:  notifier,
	}
}

var _ ports.CalendarService = (*CalendarService)(nil)

func (s *CalendarService) CreateCalendar(ctx context.Context, input domain.CreateCalendarInput) (domain.Calendar, error) {
	var calendar domain.Calendar
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		taken, err := s.calendars.ExistsByName(ctx, input.ProjectID, input.Name, nil)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrCalendarNameTaken
		}

		// At most one default per project: unset before setting.
		if input.IsDefault {
			if err := s.calendars.UnsetDefault(ctx, input.ProjectID, input.CreatedBy); err != nil {
				return err
			}
		}

		calendar, err = s.calendars.Create(ctx, input)
		return err
	})
	if err != nil {
		return domain.Calendar{}, err
	}

	s.notifier.Notify(input.ProjectID, input.CreatedBy, calendarTarget(calendar.ID), domain.NotificationCalendarCreated)
	return calendar, nil
}

func (s *CalendarService) ListCalendars(ctx context.Context, projectID uint64) ([]domain.Calendar, error) {
	return s.calendars.ListByProject(ctx, projectID)
}

func (s *CalendarService) UpdateCalendar(ctx context.Context, calendarID uint64, input domain.UpdateCalendarInput) (domain.Calendar, error) {
	var calendar domain.Calendar
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		calendar, err = s.calendars.GetByID(ctx, calendarID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			taken, err := s.calendars.ExistsByName(ctx, calendar.ProjectID, *input.Name, &calendarID)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrCalendarNameTaken
			}
			if err := s.calendars.Rename(ctx, calendarID, *input.Name, input.UpdatedBy); err != nil {
				return err
			}
			calendar.Name = *input.Name
		}
		return nil
	})
	if err != nil {
		return domain.Calendar{}, err
	}

	s.notifier.Notify(calendar.ProjectID, input.UpdatedBy, calendarTarget(calendarID), domain.NotificationCalendarUpdated)
	return calendar, nil
}

// DeleteCalendar soft-deletes the calendar and every one of its configs in
// the same transaction.
func (s *CalendarService) DeleteCalendar(ctx context.Context, calendarID uint64, deletedBy uint64) error {
	var calendar domain.Calendar
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		calendar, err = s.calendars.GetByID(ctx, calendarID)
		if err != nil {
			return err
		}
		if err := s.calendars.SoftDelete(ctx, calendarID, deletedBy); err != nil {
			return err
		}
		return s.configs.SoftDeleteByCalendar(ctx, calendarID, deletedBy)
	})
	if err != nil {
		return err
	}

	s.notifier.Notify(calendar.ProjectID, deletedBy, calendarTarget(calendarID), domain.NotificationCalendarDeleted)
	return nil
}

// SetCalendarDayType expands the repeat pattern into concrete dates and
// applies the assignment: working days are upserted, non-working days are
// soft-deleted. When the expansion yields more than one date, a generated
// link key tags all resulting rows so the pattern can later be referenced as
// a unit.
func (s *CalendarService) SetCalendarDayType(ctx context.Context, calendarID uint64, input domain.SetDayTypeInput) ([]domain.CalendarConfig, error) {
	loc, err := time.LoadLocation(input.Timezone)
	if err != nil {
		return nil, domain.ErrInvalidTimezone
	}

	dates := schedule.ExpandRepeat(input.Date, input.RepeatType, loc)
	if len(dates) == 0 {
		return nil, domain.ErrInvalidRepeatType
	}

	var linkKey *string
	if len(dates) > 1 {
		key := uuid.NewString()
		linkKey = &key
	}

	var (
		calendar domain.Calendar
		configs  []domain.CalendarConfig
	)
	err = s.uow.Do(ctx, func(ctx context.Context) error {
		calendar, err = s.calendars.GetByID(ctx, calendarID)
		if err != nil {
			return err
		}

		if input.DayType == domain.CalendarDayTypeWorking {
			if input.WorkingDayTypeID != nil {
				if _, err := s.dayTypes.GetByID(ctx, *input.WorkingDayTypeID); err != nil {
					return err
				}
			}
			if err := s.configs.UpsertWorkingDates(ctx, calendarID, dates, input.WorkingDayTypeID, linkKey, input.ActorID); err != nil {
				return err
			}
		} else {
			if err := s.configs.SoftDeleteDates(ctx, calendarID, dates, input.ActorID); err != nil {
				return err
			}
		}

		configs, err = s.configs.ListByCalendar(ctx, calendarID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(calendar.ProjectID, input.ActorID, calendarTarget(calendarID), domain.NotificationDayTypeAssigned)
	return configs, nil
}

func (s *CalendarService) ListCalendarConfigs(ctx context.Context, calendarID uint64) ([]domain.CalendarConfig, error) {
	if _, err := s.calendars.GetByID(ctx, calendarID); err != nil {
		return nil, err
	}
	return s.configs.ListByCalendar(ctx, calendarID)
}

// UpdateDefaultCalendar switches the project's default calendar and
// recomputes finish dates for every STANDARD-duration task without an
// explicit calendar across all the project's plannings. The whole walk runs
// in one transaction.
func (s *CalendarService) UpdateDefaultCalendar(ctx context.Context, calendarID, projectID, updatedBy uint64) (map[uint64]time.Time, error) {
	finishes := make(map[uint64]time.Time)
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		calendar, err := s.calendars.GetByID(ctx, calendarID)
		if err != nil {
			return err
		}
		if calendar.ProjectID != projectID {
			return domain.ErrCalendarNotFound
		}

		if err := s.calendars.UnsetDefault(ctx, projectID, updatedBy); err != nil {
			return err
		}
		if err := s.calendars.SetDefault(ctx, calendarID, updatedBy); err != nil {
			return err
		}

		dates, err := s.configs.ListDates(ctx, calendarID)
		if err != nil {
			return err
		}

		plannings, err := s.plannings.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		for _, planning := range plannings {
			tasks, err := s.tasks.ListStandardDurationWithoutCalendar(ctx, planning.ID)
			if err != nil {
				return err
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

			for id, finish := range schedule.WorkingFinishDates(windows, dates) {
				task := byID[id]
				if task.Finish != nil && task.Finish.Equal(finish) {
					continue
				}
				task.Finish = &finish
				applyStatusFields(&task)
				if err := s.tasks.Save(ctx, task, updatedBy); err != nil {
					return err
				}
				finishes[id] = finish
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(projectID, updatedBy, calendarTarget(calendarID), domain.NotificationDefaultCalendarChange)
	return finishes, nil
}

func (s *CalendarService) CreateDayType(ctx context.Context, input domain.CreateDayTypeInput) (domain.DayType, error) {
	var dayType domain.DayType
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		taken, err := s.dayTypes.ExistsByName(ctx, input.ProjectID, input.Name, nil)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDayTypeNameTaken
		}
		dayType, err = s.dayTypes.Create(ctx, input)
		return err
	})
	if err != nil {
		return domain.DayType{}, err
	}
	return dayType, nil
}

func (s *CalendarService) ListDayTypes(ctx context.Context, projectID uint64) ([]domain.DayType, error) {
	return s.dayTypes.ListByProject(ctx, projectID)
}

func (s *CalendarService) UpdateDayType(ctx context.Context, dayTypeID uint64, input domain.UpdateDayTypeInput) (domain.DayType, error) {
	var dayType domain.DayType
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		current, err := s.dayTypes.GetByID(ctx, dayTypeID)
		if err != nil {
			return err
		}
		if input.Name != nil {
			taken, err := s.dayTypes.ExistsByName(ctx, current.ProjectID, *input.Name, &dayTypeID)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrDayTypeNameTaken
			}
		}
		dayType, err = s.dayTypes.Update(ctx, dayTypeID, input)
		return err
	})
	if err != nil {
		return domain.DayType{}, err
	}
	return dayType, nil
}

// DeleteDayType soft-deletes only; historical calendar configs keep
// resolving their working_day_type_id.
func (s *CalendarService) DeleteDayType(ctx context.Context, dayTypeID uint64, deletedBy uint64) error {
	return s.dayTypes.SoftDelete(ctx, dayTypeID, deletedBy)
}

func calendarTarget(calendarID uint64) string {
	return fmt.Sprintf("calendar:%d", calendarID)
}
