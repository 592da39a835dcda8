package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusFinished   TaskStatus = "FINISHED"
)

type TaskType string

const (
	TaskTypeStandard        TaskType = "STANDARD"
	TaskTypeStartMilestone  TaskType = "START_MILESTONE"
	TaskTypeFinishMilestone TaskType = "FINISH_MILESTONE"
)

func (t TaskType) IsMilestone() bool {
	return t == TaskTypeStartMilestone || t == TaskTypeFinishMilestone
}

type DurationType string

const (
	DurationTypeStandard DurationType = "STANDARD"
	DurationTypeFixed    DurationType = "FIXED"
)

// Task belongs to exactly one planning. CalendarID is optional; a task
// without an explicit calendar follows its project's default calendar.
// The planned/actual shadow fields are set on status transitions, never
// computed.
type Task struct {
	ID               uint64
	PlanningID       uint64
	ParentID         *uint64
	Name             string
	TaskType         TaskType
	Status           TaskStatus
	DurationType     DurationType
	OriginalDuration int
	CalendarID       *uint64
	Start            *time.Time
	Finish           *time.Time
	PlannedStart     *time.Time
	PlannedFinish    *time.Time
	ActualStart      *time.Time
	ActualFinish     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateTaskInput struct {
	PlanningID       uint64
	ParentID         *uint64
	Name             string
	TaskType         TaskType
	Status           TaskStatus
	DurationType     DurationType
	OriginalDuration int
	CalendarID       *uint64
	Start            *time.Time
	Finish           *time.Time
	CreatedBy        uint64
}

type UpdateTaskInput struct {
	Name             *string
	Status           *TaskStatus
	OriginalDuration *int
	Start            *time.Time
	StartSet         bool
	Finish           *time.Time
	FinishSet        bool
	ParentID         *uint64
	ParentIDSet      bool
	UpdatedBy        uint64
}
