package mapper

import (
	"strconv"
	"time"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:               task.ID,
		PlanningID:       task.PlanningID,
		ParentID:         task.ParentID,
		Name:             task.Name,
		TaskType:         string(task.TaskType),
		Status:           string(task.Status),
		DurationType:     string(task.DurationType),
		OriginalDuration: task.OriginalDuration,
		CalendarID:       task.CalendarID,
		Start:            formatDate(task.Start),
		Finish:           formatDate(task.Finish),
		PlannedStart:     formatDate(task.PlannedStart),
		PlannedFinish:    formatDate(task.PlannedFinish),
		ActualStart:      formatDate(task.ActualStart),
		ActualFinish:     formatDate(task.ActualFinish),
		CreatedAt:        task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        task.UpdatedAt.Format(time.RFC3339),
	}
}

func ToFinishDates(finishes map[uint64]time.Time) dto.FinishDates {
	out := dto.FinishDates{Finishes: make(map[string]string, len(finishes))}
	for taskID, finish := range finishes {
		out.Finishes[strconv.FormatUint(taskID, 10)] = finish.Format(dateLayout)
	}
	return out
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
