package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/adapter/http/mapper"
	"planbase/internal/adapter/http/middleware"
	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
	"planbase/pkg/apierrors"
)

type CalendarHandler struct {
	calendarService ports.CalendarService
}

func NewCalendarHandler(calendarService ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

func (h *CalendarHandler) ListCalendars(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	calendars, err := h.calendarService.ListCalendars(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListCalendars)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCalendarItems(calendars))
}

func (h *CalendarHandler) CreateCalendar(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	calendar, err := h.calendarService.CreateCalendar(c.Request.Context(), domain.CreateCalendarInput{
		ProjectID: projectID,
		Name:      name,
		IsDefault: req.IsDefault,
		CreatedBy: middleware.GetActorID(c),
	})
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateCalendar)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCalendarItem(calendar))
}

func (h *CalendarHandler) UpdateCalendar(c *gin.Context) {
	calendarID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	calendar, err := h.calendarService.UpdateCalendar(c.Request.Context(), calendarID, domain.UpdateCalendarInput{
		Name:      req.Name,
		UpdatedBy: middleware.GetActorID(c),
	})
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateCalendar)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCalendarItem(calendar))
}

func (h *CalendarHandler) DeleteCalendar(c *gin.Context) {
	calendarID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.calendarService.DeleteCalendar(c.Request.Context(), calendarID, middleware.GetActorID(c)); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteCalendar)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CalendarHandler) SetDayType(c *gin.Context) {
	calendarID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetDayTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondInvalidPayload(c)
		return
	}

	configs, err := h.calendarService.SetCalendarDayType(c.Request.Context(), calendarID, domain.SetDayTypeInput{
		DayType:          domain.CalendarDayType(req.DayType),
		Date:             date,
		RepeatType:       domain.RepeatType(req.RepeatType),
		Timezone:         req.Timezone,
		WorkingDayTypeID: req.WorkingDayTypeID,
		ActorID:          middleware.GetActorID(c),
	})
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailSetDayType)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCalendarConfigItems(configs))
}

func (h *CalendarHandler) ListConfigs(c *gin.Context) {
	calendarID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	configs, err := h.calendarService.ListCalendarConfigs(c.Request.Context(), calendarID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListConfigs)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCalendarConfigItems(configs))
}

func (h *CalendarHandler) SetDefault(c *gin.Context) {
	calendarID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SetDefaultCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	finishes, err := h.calendarService.UpdateDefaultCalendar(c.Request.Context(), calendarID, req.ProjectID, middleware.GetActorID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailSetDefault)
		return
	}

	c.JSON(http.StatusOK, mapper.ToFinishDates(finishes))
}
