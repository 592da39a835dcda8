package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/adapter/http/handlers"
	"planbase/internal/adapter/http/middleware"
	"planbase/internal/core/domain"
	"planbase/pkg/apierrors"
	"planbase/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type planningServiceMock struct {
	mock.Mock
}

func (m *planningServiceMock) CreatePlanning(ctx context.Context, input domain.CreatePlanningInput) (domain.Planning, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Planning), args.Error(1)
}

func (m *planningServiceMock) GetPlanning(ctx context.Context, planningID uint64) (domain.Planning, error) {
	args := m.Called(ctx, planningID)
	return args.Get(0).(domain.Planning), args.Error(1)
}

func (m *planningServiceMock) ListPlannings(ctx context.Context, projectID uint64) ([]domain.Planning, error) {
	args := m.Called(ctx, projectID)

	var plannings []domain.Planning
	if value := args.Get(0); value != nil {
		plannings = value.([]domain.Planning)
	}
	return plannings, args.Error(1)
}

func (m *planningServiceMock) CreateLink(ctx context.Context, planningID uint64, input domain.CreateLinkInput) (domain.Link, error) {
	args := m.Called(ctx, planningID, input)
	return args.Get(0).(domain.Link), args.Error(1)
}

func (m *planningServiceMock) BulkCreateLinks(ctx context.Context, planningID uint64, inputs []domain.CreateLinkInput) ([]domain.Link, error) {
	args := m.Called(ctx, planningID, inputs)

	var links []domain.Link
	if value := args.Get(0); value != nil {
		links = value.([]domain.Link)
	}
	return links, args.Error(1)
}

func (m *planningServiceMock) UpdateLink(ctx context.Context, planningID, linkID uint64, input domain.UpdateLinkInput) (domain.Link, error) {
	args := m.Called(ctx, planningID, linkID, input)
	return args.Get(0).(domain.Link), args.Error(1)
}

func (m *planningServiceMock) ListLinks(ctx context.Context, planningID uint64) ([]domain.Link, error) {
	args := m.Called(ctx, planningID)

	var links []domain.Link
	if value := args.Get(0); value != nil {
		links = value.([]domain.Link)
	}
	return links, args.Error(1)
}

func (m *planningServiceMock) DeleteLinkAndRelatedMilestones(ctx context.Context, planningID, linkID, deletedBy uint64) error {
	args := m.Called(ctx, planningID, linkID, deletedBy)
	return args.Error(0)
}

func (m *planningServiceMock) BulkDeleteLinksAndRelatedMilestones(ctx context.Context, planningID uint64, linkIDs []uint64, deletedBy uint64) error {
	args := m.Called(ctx, planningID, linkIDs, deletedBy)
	return args.Error(0)
}

func newPlanningRouter(handler *handlers.PlanningHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.GET("/plannings", handler.ListPlannings)
	api.POST("/plannings", handler.CreatePlanning)
	api.GET("/plannings/:id", handler.GetPlanning)
	api.GET("/plannings/:id/links", handler.ListLinks)
	api.POST("/plannings/:id/links", handler.CreateLink)
	api.POST("/plannings/:id/links/bulk", handler.BulkCreateLinks)
	api.PATCH("/plannings/:id/links/:linkId", handler.UpdateLink)
	api.DELETE("/plannings/:id/links/:linkId", handler.DeleteLink)
	api.POST("/plannings/:id/links/bulk-delete", handler.BulkDeleteLinks)
	return router
}

func TestPlanningHandler_CreatePlanning_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	serviceMock := new(planningServiceMock)
	serviceMock.On("CreatePlanning", mock.Anything, mock.MatchedBy(func(input domain.CreatePlanningInput) bool {
		return input.ProjectID == 5 && input.Name == "Phase 1" && input.CreatedBy == 9
	})).Return(
		domain.Planning{
			ID:        1,
			ProjectID: 5,
			Name:      "Phase 1",
			Status:    domain.PlanningStatusPlanned,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		nil,
	).Once()

	router := newPlanningRouter(handlers.NewPlanningHandler(serviceMock))

	req := httptest.NewRequest(http.MethodPost, "/api/plannings", strings.NewReader(`{"project_id":5,"name":"Phase 1"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-Actor-Id", "9")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.PlanningItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.Equal(t, "PLANNED", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestPlanningHandler_ListPlannings_RequiresProjectID(t *testing.T) {
	serviceMock := new(planningServiceMock)

	router := newPlanningRouter(handlers.NewPlanningHandler(serviceMock))

	req := httptest.NewRequest(http.MethodGet, "/api/plannings", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "ListPlannings")
}

func TestPlanningHandler_CreateLink_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)

	serviceMock := new(planningServiceMock)
	serviceMock.On("CreateLink", mock.Anything, uint64(1), domain.CreateLinkInput{
		SourceID: 11,
		TargetID: 12,
		Type:     domain.LinkTypeFinishToStart,
		Lag:      2,
	}).Return(
		domain.Link{
			ID:         3,
			PlanningID: 1,
			SourceID:   11,
			TargetID:   12,
			Type:       domain.LinkTypeFinishToStart,
			Lag:        2,
			CreatedAt:  createdAt,
		},
		nil,
	).Once()

	router := newPlanningRouter(handlers.NewPlanningHandler(serviceMock))

	body := `{"source_id":11,"target_id":12,"type":"FS","lag":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/plannings/1/links", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.LinkItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(3), got.ID)
	require.Equal(t, "FS", got.Type)
	require.Equal(t, 2, got.Lag)
	serviceMock.AssertExpectations(t)
}

func TestPlanningHandler_CreateLink_Invalid(t *testing.T) {
	serviceMock := new(planningServiceMock)
	serviceMock.On("CreateLink", mock.Anything, uint64(1), mock.Anything).
		Return(domain.Link{}, domain.ErrInvalidLink).Once()

	router := newPlanningRouter(handlers.NewPlanningHandler(serviceMock))

	body := `{"source_id":11,"target_id":11,"type":"FS"}`
	req := httptest.NewRequest(http.MethodPost, "/api/plannings/1/links", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid link.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestPlanningHandler_CreateLink_RejectsUnknownType(t *testing.T) {
	serviceMock := new(planningServiceMock)

	router := newPlanningRouter(handlers.NewPlanningHandler(serviceMock))

	body := `{"source_id":11,"target_id":12,"type":"XX"}`
	req := httptest.NewRequest(http.MethodPost, "/api/plannings/1/links", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertNotCalled(t, "CreateLink")
}

func TestPlanningHandler_DeleteLink_Success(t *testing.T) {
	serviceMock := new(planningServiceMock)
	serviceMock.On("DeleteLinkAndRelatedMilestones", mock.Anything, uint64(1), uint64(3), uint64(9)).
		Return(nil).Once()

	router := newPlanningRouter(handlers.NewPlanningHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/plannings/1/links/3", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-Actor-Id", "9")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestPlanningHandler_DeleteLink_NotFound(t *testing.T) {
	serviceMock := new(planningServiceMock)
	serviceMock.On("DeleteLinkAndRelatedMilestones", mock.Anything, uint64(1), uint64(404), uint64(0)).
		Return(domain.ErrLinkNotFound).Once()

	router := newPlanningRouter(handlers.NewPlanningHandler(serviceMock))

	req := httptest.NewRequest(http.MethodDelete, "/api/plannings/1/links/404", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Link not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestPlanningHandler_BulkDeleteLinks_Success(t *testing.T) {
	serviceMock := new(planningServiceMock)
	serviceMock.On("BulkDeleteLinksAndRelatedMilestones", mock.Anything, uint64(1), []uint64{3, 4}, uint64(9)).
		Return(nil).Once()

	router := newPlanningRouter(handlers.NewPlanningHandler(serviceMock))

	req := httptest.NewRequest(http.MethodPost, "/api/plannings/1/links/bulk-delete", strings.NewReader(`{"link_ids":[3,4]}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("X-Actor-Id", "9")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}
