package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/adapter/http/mapper"
	"planbase/internal/adapter/http/middleware"
	"planbase/internal/adapter/http/validation"
	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
	"planbase/pkg/apierrors"
)

const dateLayout = "2006-01-02"

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	planningID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	input := domain.CreateTaskInput{
		PlanningID:   planningID,
		ParentID:     req.ParentID,
		Name:         name,
		TaskType:     domain.TaskTypeStandard,
		Status:       domain.TaskStatusTodo,
		DurationType: domain.DurationTypeStandard,
		CalendarID:   req.CalendarID,
		CreatedBy:    middleware.GetActorID(c),
	}
	if req.TaskType != nil {
		input.TaskType = domain.TaskType(*req.TaskType)
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	if req.DurationType != nil {
		input.DurationType = domain.DurationType(*req.DurationType)
	}
	if req.OriginalDuration != nil {
		input.OriginalDuration = *req.OriginalDuration
	}

	if input.Start, ok = parseOptionalDate(req.Start); !ok {
		respondInvalidPayload(c)
		return
	}
	if input.Finish, ok = parseOptionalDate(req.Finish); !ok {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		respondInvalidPayload(c)
		return
	}
	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw, middleware.GetActorID(c))
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID, middleware.GetActorID(c)); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteTask)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) SetTaskCalendar(c *gin.Context) {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetTaskCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	finishes, err := h.taskService.UpdateTaskCalendar(c.Request.Context(), taskID, req.CalendarID, middleware.GetActorID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailSetTaskCalendar)
		return
	}

	c.JSON(http.StatusOK, mapper.ToFinishDates(finishes))
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondInvalidID(c)
		return 0, false
	}
	return id, true
}

func parseOptionalDate(value *string) (*time.Time, bool) {
	if value == nil {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
