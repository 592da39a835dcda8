package dto

type CalendarItem struct {
	ID        uint64 `json:"id"`
	ProjectID uint64 `json:"project_id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateCalendarRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	IsDefault bool   `json:"is_default"`
}

type UpdateCalendarRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

type SetDayTypeRequest struct {
	DayType          string  `json:"day_type" binding:"required,oneof=WORKING_DAY NONE"`
	Date             string  `json:"date" binding:"required,datetime=2006-01-02"`
	RepeatType       string  `json:"repeat_type" binding:"required,oneof=ONLY_THIS_DATE ALL_SAME_WEEK_DAY_THIS_MONTH ALL_SAME_WEEK_DAY_THIS_YEAR ALL_SAME_WEEK_DAY"`
	Timezone         string  `json:"timezone" binding:"required"`
	WorkingDayTypeID *uint64 `json:"working_day_type_id" binding:"omitempty,gt=0"`
}

type SetDefaultCalendarRequest struct {
	ProjectID uint64 `json:"project_id" binding:"required,gt=0"`
}

type CalendarConfigItem struct {
	ID               uint64  `json:"id"`
	CalendarID       uint64  `json:"calendar_id"`
	Date             string  `json:"date"`
	DayType          string  `json:"day_type"`
	WorkingDayTypeID *uint64 `json:"working_day_type_id,omitempty"`
	LinkKey          *string `json:"link_key,omitempty"`
}

type TimeBlockItem struct {
	Start string `json:"start" binding:"required,datetime=15:04"`
	End   string `json:"end" binding:"required,datetime=15:04"`
}

type DayTypeItem struct {
	ID         uint64          `json:"id"`
	ProjectID  uint64          `json:"project_id"`
	Name       string          `json:"name"`
	TimeBlocks []TimeBlockItem `json:"time_blocks"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

type CreateDayTypeRequest struct {
	Name       string          `json:"name" binding:"required,max=255"`
	TimeBlocks []TimeBlockItem `json:"time_blocks" binding:"required,min=1,dive"`
}

type UpdateDayTypeRequest struct {
	Name       *string         `json:"name" binding:"omitempty,max=255"`
	TimeBlocks []TimeBlockItem `json:"time_blocks" binding:"omitempty,min=1,dive"`
}
