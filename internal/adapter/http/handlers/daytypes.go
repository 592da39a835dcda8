package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/adapter/http/mapper"
	"planbase/internal/adapter/http/middleware"
	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
	"planbase/pkg/apierrors"
)

type DayTypeHandler struct {
	calendarService ports.CalendarService
}

func NewDayTypeHandler(calendarService ports.CalendarService) *DayTypeHandler {
	return &DayTypeHandler{calendarService: calendarService}
}

func (h *DayTypeHandler) ListDayTypes(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	dayTypes, err := h.calendarService.ListDayTypes(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListDayTypes)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDayTypeItems(dayTypes))
}

func (h *DayTypeHandler) CreateDayType(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	var req dto.CreateDayTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	dayType, err := h.calendarService.CreateDayType(c.Request.Context(), domain.CreateDayTypeInput{
		ProjectID:  projectID,
		Name:       name,
		TimeBlocks: mapper.ToTimeBlocks(req.TimeBlocks),
		CreatedBy:  middleware.GetActorID(c),
	})
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateDayType)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDayTypeItem(dayType))
}

func (h *DayTypeHandler) UpdateDayType(c *gin.Context) {
	dayTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDayTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	dayType, err := h.calendarService.UpdateDayType(c.Request.Context(), dayTypeID, domain.UpdateDayTypeInput{
		Name:       req.Name,
		TimeBlocks: mapper.ToTimeBlocks(req.TimeBlocks),
		UpdatedBy:  middleware.GetActorID(c),
	})
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateDayType)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDayTypeItem(dayType))
}

func (h *DayTypeHandler) DeleteDayType(c *gin.Context) {
	dayTypeID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.calendarService.DeleteDayType(c.Request.Context(), dayTypeID, middleware.GetActorID(c)); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteDayType)
		return
	}

	c.Status(http.StatusNoContent)
}
