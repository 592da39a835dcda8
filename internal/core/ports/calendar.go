package ports

import (
	"context"
	"time"

	"planbase/internal/core/domain"
)

type CalendarRepository interface {
	Create(ctx context.Context, input domain.CreateCalendarInput) (domain.Calendar, error)
	GetByID(ctx context.Context, id uint64) (domain.Calendar, error)
	ListByProject(ctx context.Context, projectID uint64) ([]domain.Calendar, error)
	ExistsByName(ctx context.Context, projectID uint64, name string, excludeID *uint64) (bool, error)
	Rename(ctx context.Context, id uint64, name string, updatedBy uint64) error
	UnsetDefault(ctx context.Context, projectID uint64, updatedBy uint64) error
	SetDefault(ctx context.Context, id uint64, updatedBy uint64) error
	GetDefaultByProject(ctx context.Context, projectID uint64) (domain.Calendar, error)
	SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error
}

type CalendarConfigRepository interface {
	// UpsertWorkingDates inserts or refreshes one config row per date, keyed
	// by (calendar_id, date). A soft-deleted row for a date is revived.
	UpsertWorkingDates(ctx context.Context, calendarID uint64, dates []time.Time, workingDayTypeID *uint64, linkKey *string, actorID uint64) error
	SoftDeleteDates(ctx context.Context, calendarID uint64, dates []time.Time, deletedBy uint64) error
	SoftDeleteByCalendar(ctx context.Context, calendarID uint64, deletedBy uint64) error
	ListByCalendar(ctx context.Context, calendarID uint64) ([]domain.CalendarConfig, error)
	// ListDates returns the calendar's config dates ascending, the order the
	// duration calculator depends on.
	ListDates(ctx context.Context, calendarID uint64) ([]time.Time, error)
}

type DayTypeRepository interface {
	Create(ctx context.Context, input domain.CreateDayTypeInput) (domain.DayType, error)
	GetByID(ctx context.Context, id uint64) (domain.DayType, error)
	ListByProject(ctx context.Context, projectID uint64) ([]domain.DayType, error)
	ExistsByName(ctx context.Context, projectID uint64, name string, excludeID *uint64) (bool, error)
	Update(ctx context.Context, id uint64, input domain.UpdateDayTypeInput) (domain.DayType, error)
	SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error
}

type CalendarService interface {
	CreateCalendar(ctx context.Context, input domain.CreateCalendarInput) (domain.Calendar, error)
	ListCalendars(ctx context.Context, projectID uint64) ([]domain.Calendar, error)
	UpdateCalendar(ctx context.Context, calendarID uint64, input domain.UpdateCalendarInput) (domain.Calendar, error)
	DeleteCalendar(ctx context.Context, calendarID uint64, deletedBy uint64) error
	SetCalendarDayType(ctx context.Context, calendarID uint64, input domain.SetDayTypeInput) ([]domain.CalendarConfig, error)
	ListCalendarConfigs(ctx context.Context, calendarID uint64) ([]domain.CalendarConfig, error)
	UpdateDefaultCalendar(ctx context.Context, calendarID, projectID, updatedBy uint64) (map[uint64]time.Time, error)
	CreateDayType(ctx context.Context, input domain.CreateDayTypeInput) (domain.DayType, error)
	ListDayTypes(ctx context.Context, projectID uint64) ([]domain.DayType, error)
	UpdateDayType(ctx context.Context, dayTypeID uint64, input domain.UpdateDayTypeInput) (domain.DayType, error)
	DeleteDayType(ctx context.Context, dayTypeID uint64, deletedBy uint64) error
}
