package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrPlanningNotFound  = errors.New("planning not found")
	ErrCalendarNotFound  = errors.New("calendar not found")
	ErrDayTypeNotFound   = errors.New("day type not found")
	ErrLinkNotFound      = errors.New("link not found")
	ErrCalendarNameTaken = errors.New("calendar name already exists")
	ErrDayTypeNameTaken  = errors.New("day type name already exists")
	ErrInvalidLink       = errors.New("invalid task link")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrInvalidRepeatType = errors.New("invalid repeat type")
)
