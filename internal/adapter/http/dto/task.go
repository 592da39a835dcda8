package dto

type TaskItem struct {
	ID               uint64  `json:"id"`
	PlanningID       uint64  `json:"planning_id"`
	ParentID         *uint64 `json:"parent_id,omitempty"`
	Name             string  `json:"name"`
	TaskType         string  `json:"task_type"`
	Status           string  `json:"status"`
	DurationType     string  `json:"duration_type"`
	OriginalDuration int     `json:"original_duration"`
	CalendarID       *uint64 `json:"calendar_id,omitempty"`
	Start            *string `json:"start,omitempty"`
	Finish           *string `json:"finish,omitempty"`
	PlannedStart     *string `json:"planned_start,omitempty"`
	PlannedFinish    *string `json:"planned_finish,omitempty"`
	ActualStart      *string `json:"actual_start,omitempty"`
	ActualFinish     *string `json:"actual_finish,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	TaskType         *string `json:"task_type" binding:"omitempty,oneof=STANDARD START_MILESTONE FINISH_MILESTONE"`
	Status           *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS FINISHED"`
	DurationType     *string `json:"duration_type" binding:"omitempty,oneof=STANDARD FIXED"`
	OriginalDuration *int    `json:"original_duration" binding:"omitempty,gte=0"`
	CalendarID       *uint64 `json:"calendar_id" binding:"omitempty,gt=0"`
	ParentID         *uint64 `json:"parent_id" binding:"omitempty,gt=0"`
	Start            *string `json:"start" binding:"omitempty,datetime=2006-01-02"`
	Finish           *string `json:"finish" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=255"`
	Status           *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS FINISHED"`
	OriginalDuration *int    `json:"original_duration" binding:"omitempty,gte=0"`
	ParentID         *uint64 `json:"parent_id" binding:"omitempty,gt=0"`
	Start            *string `json:"start" binding:"omitempty,datetime=2006-01-02"`
	Finish           *string `json:"finish" binding:"omitempty,datetime=2006-01-02"`
}

type SetTaskCalendarRequest struct {
	CalendarID uint64 `json:"calendar_id" binding:"required,gt=0"`
}

// FinishDates maps task ids to their recomputed finish dates.
type FinishDates struct {
	Finishes map[string]string `json:"finishes"`
}
