package http

import (
	"github.com/gin-gonic/gin"

	"planbase/internal/adapter/http/handlers"
	"planbase/internal/adapter/http/middleware"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Planning     *handlers.PlanningHandler
	Task         *handlers.TaskHandler
	Calendar     *handlers.CalendarHandler
	DayType      *handlers.DayTypeHandler
	Notification *handlers.NotificationHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/plannings", h.Planning.ListPlannings)
		api.POST("/plannings", h.Planning.CreatePlanning)
		api.GET("/plannings/:id", h.Planning.GetPlanning)

		api.POST("/plannings/:id/tasks", h.Task.CreateTask)
		api.GET("/tasks/:id", h.Task.GetTask)
		api.PATCH("/tasks/:id", h.Task.UpdateTask)
		api.DELETE("/tasks/:id", h.Task.DeleteTask)
		api.POST("/tasks/:id/calendar", h.Task.SetTaskCalendar)

		api.GET("/plannings/:id/links", h.Planning.ListLinks)
		api.POST("/plannings/:id/links", h.Planning.CreateLink)
		api.POST("/plannings/:id/links/bulk", h.Planning.BulkCreateLinks)
		api.PATCH("/plannings/:id/links/:linkId", h.Planning.UpdateLink)
		api.DELETE("/plannings/:id/links/:linkId", h.Planning.DeleteLink)
		api.POST("/plannings/:id/links/bulk-delete", h.Planning.BulkDeleteLinks)

		api.GET("/projects/:projectId/calendars", h.Calendar.ListCalendars)
		api.POST("/projects/:projectId/calendars", h.Calendar.CreateCalendar)
		api.PATCH("/calendars/:id", h.Calendar.UpdateCalendar)
		api.DELETE("/calendars/:id", h.Calendar.DeleteCalendar)
		api.POST("/calendars/:id/day-type", h.Calendar.SetDayType)
		api.GET("/calendars/:id/configs", h.Calendar.ListConfigs)
		api.POST("/calendars/:id/set-default", h.Calendar.SetDefault)

		api.GET("/projects/:projectId/feed", h.Notification.ListProjectFeed)

		api.GET("/projects/:projectId/day-types", h.DayType.ListDayTypes)
		api.POST("/projects/:projectId/day-types", h.DayType.CreateDayType)
		api.PATCH("/day-types/:id", h.DayType.UpdateDayType)
		api.DELETE("/day-types/:id", h.DayType.DeleteDayType)
	}
}
