package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planbase/internal/adapter/http/middleware"
	"planbase/internal/core/domain"
	"planbase/pkg/apierrors"
)

// respondServiceError maps domain errors onto the API error envelope:
// not-found to 404, duplicate names to 409, invalid input to 400, anything
// else to 500 with the given fallback message key.
func respondServiceError(c *gin.Context, err error, failKey string) {
	lang := middleware.GetLang(c)

	var (
		status int
		msgKey string
	)
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgTaskNotFound
	case errors.Is(err, domain.ErrPlanningNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgPlanningNotFound
	case errors.Is(err, domain.ErrCalendarNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgCalendarNotFound
	case errors.Is(err, domain.ErrDayTypeNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgDayTypeNotFound
	case errors.Is(err, domain.ErrLinkNotFound):
		status, msgKey = http.StatusNotFound, apierrors.MsgLinkNotFound
	case errors.Is(err, domain.ErrCalendarNameTaken):
		status, msgKey = http.StatusConflict, apierrors.MsgCalendarNameTaken
	case errors.Is(err, domain.ErrDayTypeNameTaken):
		status, msgKey = http.StatusConflict, apierrors.MsgDayTypeNameTaken
	case errors.Is(err, domain.ErrInvalidLink):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidLink
	case errors.Is(err, domain.ErrInvalidTimezone):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidTimezone
	case errors.Is(err, domain.ErrInvalidRepeatType):
		status, msgKey = http.StatusBadRequest, apierrors.MsgInvalidPayload
	default:
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		status, msgKey = http.StatusInternalServerError, failKey
	}

	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

func respondInvalidID(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidID, lang))
}

func respondInvalidPayload(c *gin.Context) {
	lang := middleware.GetLang(c)
	c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
}
