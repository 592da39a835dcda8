package domain

import "time"

type CalendarDayType string

const (
	CalendarDayTypeWorking CalendarDayType = "WORKING_DAY"
	CalendarDayTypeNone    CalendarDayType = "NONE"
)

type RepeatType string

const (
	RepeatOnlyThisDate         RepeatType = "ONLY_THIS_DATE"
	RepeatSameWeekdayThisMonth RepeatType = "ALL_SAME_WEEK_DAY_THIS_MONTH"
	RepeatSameWeekdayThisYear  RepeatType = "ALL_SAME_WEEK_DAY_THIS_YEAR"
	RepeatSameWeekday          RepeatType = "ALL_SAME_WEEK_DAY"
)

func (r RepeatType) IsValid() bool {
	switch r {
	case RepeatOnlyThisDate, RepeatSameWeekdayThisMonth, RepeatSameWeekdayThisYear, RepeatSameWeekday:
		return true
	default:
		return false
	}
}

// Calendar is a named, project-scoped sequence of per-date working decisions.
// At most one non-deleted calendar per project carries IsDefault.
type Calendar struct {
	ID        uint64
	ProjectID uint64
	Name      string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CalendarConfig marks a single date of a calendar as a working day. A
// non-working date has no config row at all. LinkKey correlates every row
// produced by one repeat-pattern expansion so the pattern can later be
// edited as a unit.
type CalendarConfig struct {
	ID               uint64
	CalendarID       uint64
	Date             time.Time
	DayType          CalendarDayType
	WorkingDayTypeID *uint64
	LinkKey          *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TimeBlock is a wall-clock working interval of a day type, e.g. 09:00-18:00.
type TimeBlock struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayType is a reusable named template of working time blocks. Day types are
// only ever soft-deleted so historical calendar configs keep resolving.
type DayType struct {
	ID         uint64
	ProjectID  uint64
	Name       string
	TimeBlocks []TimeBlock
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateCalendarInput struct {
	ProjectID uint64
	Name      string
	IsDefault bool
	CreatedBy uint64
}

type UpdateCalendarInput struct {
	Name      *string
	UpdatedBy uint64
}

type SetDayTypeInput struct {
	DayType          CalendarDayType
	Date             time.Time
	RepeatType       RepeatType
	Timezone         string
	WorkingDayTypeID *uint64
	ActorID          uint64
}

type CreateDayTypeInput struct {
	ProjectID  uint64
	Name       string
	TimeBlocks []TimeBlock
	CreatedBy  uint64
}

type UpdateDayTypeInput struct {
	Name       *string
	TimeBlocks []TimeBlock
	UpdatedBy  uint64
}
