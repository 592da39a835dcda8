package domain

import "time"

type NotificationAction string

const (
	NotificationTaskCreated           NotificationAction = "TASK_CREATED"
	NotificationTaskUpdated           NotificationAction = "TASK_UPDATED"
	NotificationTaskDeleted           NotificationAction = "TASK_DELETED"
	NotificationLinkCreated           NotificationAction = "LINK_CREATED"
	NotificationLinkUpdated           NotificationAction = "LINK_UPDATED"
	NotificationLinkDeleted           NotificationAction = "LINK_DELETED"
	NotificationCalendarCreated       NotificationAction = "CALENDAR_CREATED"
	NotificationCalendarUpdated       NotificationAction = "CALENDAR_UPDATED"
	NotificationCalendarDeleted       NotificationAction = "CALENDAR_DELETED"
	NotificationDayTypeAssigned       NotificationAction = "DAY_TYPE_ASSIGNED"
	NotificationDefaultCalendarChange NotificationAction = "DEFAULT_CALENDAR_CHANGED"
	NotificationPlanningCreated       NotificationAction = "PLANNING_CREATED"
)

// ProjectNotification is an append-only feed record of a mutation. Creation
// is best-effort and must never fail the operation that produced it.
type ProjectNotification struct {
	ID        uint64
	ProjectID uint64
	ActorID   uint64
	Target    string
	Action    NotificationAction
	CreatedAt time.Time
}
