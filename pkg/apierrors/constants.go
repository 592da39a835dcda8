package apierrors

const (
	MsgInvalidID           = "invalidId"
	MsgInvalidPayload      = "invalidPayload"
	MsgTaskNotFound        = "taskNotFound"
	MsgPlanningNotFound    = "planningNotFound"
	MsgCalendarNotFound    = "calendarNotFound"
	MsgDayTypeNotFound     = "dayTypeNotFound"
	MsgLinkNotFound        = "linkNotFound"
	MsgCalendarNameTaken   = "calendarNameTaken"
	MsgDayTypeNameTaken    = "dayTypeNameTaken"
	MsgInvalidLink         = "invalidLink"
	MsgInvalidTimezone     = "invalidTimezone"
	MsgFailCreateTask      = "failCreateTask"
	MsgFailUpdateTask      = "failUpdateTask"
	MsgFailDeleteTask      = "failDeleteTask"
	MsgFailListTasks       = "failListTasks"
	MsgFailCreatePlanning  = "failCreatePlanning"
	MsgFailListPlannings   = "failListPlannings"
	MsgFailCreateLink      = "failCreateLink"
	MsgFailUpdateLink      = "failUpdateLink"
	MsgFailDeleteLink      = "failDeleteLink"
	MsgFailListLinks       = "failListLinks"
	MsgFailCreateCalendar  = "failCreateCalendar"
	MsgFailUpdateCalendar  = "failUpdateCalendar"
	MsgFailDeleteCalendar  = "failDeleteCalendar"
	MsgFailListCalendars   = "failListCalendars"
	MsgFailSetDayType      = "failSetDayType"
	MsgFailListConfigs     = "failListConfigs"
	MsgFailSetDefault      = "failSetDefault"
	MsgFailCreateDayType   = "failCreateDayType"
	MsgFailUpdateDayType   = "failUpdateDayType"
	MsgFailDeleteDayType   = "failDeleteDayType"
	MsgFailListDayTypes    = "failListDayTypes"
	MsgFailSetTaskCalendar = "failSetTaskCalendar"
	MsgFailListFeed        = "failListFeed"
)
