package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/adapter/http/mapper"
	"planbase/internal/adapter/http/middleware"
	"planbase/internal/core/domain"
	"planbase/internal/core/ports"
	"planbase/pkg/apierrors"
)

type PlanningHandler struct {
	planningService ports.PlanningService
}

func NewPlanningHandler(planningService ports.PlanningService) *PlanningHandler {
	return &PlanningHandler{planningService: planningService}
}

func (h *PlanningHandler) CreatePlanning(c *gin.Context) {
	var req dto.CreatePlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondInvalidPayload(c)
		return
	}

	input := domain.CreatePlanningInput{
		ProjectID: req.ProjectID,
		Name:      name,
		CreatedBy: middleware.GetActorID(c),
	}

	var ok bool
	if input.DataDate, ok = parseOptionalDate(req.DataDate); !ok {
		respondInvalidPayload(c)
		return
	}
	if input.ProjectStart, ok = parseOptionalDate(req.ProjectStart); !ok {
		respondInvalidPayload(c)
		return
	}

	planning, err := h.planningService.CreatePlanning(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreatePlanning)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToPlanningItem(planning))
}

func (h *PlanningHandler) GetPlanning(c *gin.Context) {
	planningID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	planning, err := h.planningService.GetPlanning(c.Request.Context(), planningID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListPlannings)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanningItem(planning))
}

func (h *PlanningHandler) ListPlannings(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Query("project_id"), 10, 64)
	if err != nil || projectID == 0 {
		respondInvalidID(c)
		return
	}

	plannings, err := h.planningService.ListPlannings(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListPlannings)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanningItems(plannings))
}

func (h *PlanningHandler) CreateLink(c *gin.Context) {
	planningID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	link, err := h.planningService.CreateLink(c.Request.Context(), planningID, toCreateLinkInput(req, middleware.GetActorID(c)))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateLink)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToLinkItem(link))
}

func (h *PlanningHandler) BulkCreateLinks(c *gin.Context) {
	planningID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.BulkCreateLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	actorID := middleware.GetActorID(c)
	inputs := make([]domain.CreateLinkInput, 0, len(req.Links))
	for _, linkReq := range req.Links {
		inputs = append(inputs, toCreateLinkInput(linkReq, actorID))
	}

	links, err := h.planningService.BulkCreateLinks(c.Request.Context(), planningID, inputs)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateLink)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToLinkItems(links))
}

func (h *PlanningHandler) ListLinks(c *gin.Context) {
	planningID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	links, err := h.planningService.ListLinks(c.Request.Context(), planningID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListLinks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToLinkItems(links))
}

func (h *PlanningHandler) UpdateLink(c *gin.Context) {
	planningID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	linkID, ok := parseIDParam(c, "linkId")
	if !ok {
		return
	}

	var req dto.UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	input := domain.UpdateLinkInput{
		Lag:       req.Lag,
		UpdatedBy: middleware.GetActorID(c),
	}
	if req.Type != nil {
		linkType := domain.LinkType(*req.Type)
		input.Type = &linkType
	}

	link, err := h.planningService.UpdateLink(c.Request.Context(), planningID, linkID, input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateLink)
		return
	}

	c.JSON(http.StatusOK, mapper.ToLinkItem(link))
}

func (h *PlanningHandler) DeleteLink(c *gin.Context) {
	planningID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	linkID, ok := parseIDParam(c, "linkId")
	if !ok {
		return
	}

	err := h.planningService.DeleteLinkAndRelatedMilestones(c.Request.Context(), planningID, linkID, middleware.GetActorID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteLink)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PlanningHandler) BulkDeleteLinks(c *gin.Context) {
	planningID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.BulkDeleteLinksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	err := h.planningService.BulkDeleteLinksAndRelatedMilestones(c.Request.Context(), planningID, req.LinkIDs, middleware.GetActorID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteLink)
		return
	}

	c.Status(http.StatusNoContent)
}

func toCreateLinkInput(req dto.CreateLinkRequest, actorID uint64) domain.CreateLinkInput {
	return domain.CreateLinkInput{
		SourceID:  req.SourceID,
		TargetID:  req.TargetID,
		Type:      domain.LinkType(req.Type),
		Lag:       req.Lag,
		CreatedBy: actorID,
	}
}
