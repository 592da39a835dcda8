package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"planbase/internal/adapter/http/mapper"
	"planbase/internal/core/ports"
	"planbase/pkg/apierrors"
)

const defaultFeedLimit = 50

type NotificationHandler struct {
	notifications ports.NotificationRepository
}

func NewNotificationHandler(notifications ports.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) ListProjectFeed(c *gin.Context) {
	projectID, ok := parseIDParam(c, "projectId")
	if !ok {
		return
	}

	limit := defaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondInvalidPayload(c)
			return
		}
		limit = parsed
	}

	notifications, err := h.notifications.ListByProject(c.Request.Context(), projectID, limit)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListFeed)
		return
	}

	c.JSON(http.StatusOK, mapper.ToNotificationItems(notifications))
}
