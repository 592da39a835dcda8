package mapper

import (
	"time"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/core/domain"
)

func ToCalendarItems(calendars []domain.Calendar) []dto.CalendarItem {
	items := make([]dto.CalendarItem, 0, len(calendars))
	for _, calendar := range calendars {
		items = append(items, ToCalendarItem(calendar))
	}
	return items
}

func ToCalendarItem(calendar domain.Calendar) dto.CalendarItem {
	return dto.CalendarItem{
		ID:        calendar.ID,
		ProjectID: calendar.ProjectID,
		Name:      calendar.Name,
		IsDefault: calendar.IsDefault,
		CreatedAt: calendar.CreatedAt.Format(time.RFC3339),
		UpdatedAt: calendar.UpdatedAt.Format(time.RFC3339),
	}
}

func ToCalendarConfigItems(configs []domain.CalendarConfig) []dto.CalendarConfigItem {
	items := make([]dto.CalendarConfigItem, 0, len(configs))
	for _, config := range configs {
		items = append(items, dto.CalendarConfigItem{
			ID:               config.ID,
			CalendarID:       config.CalendarID,
			Date:             config.Date.Format(dateLayout),
			DayType:          string(config.DayType),
			WorkingDayTypeID: config.WorkingDayTypeID,
			LinkKey:          config.LinkKey,
		})
	}
	return items
}

func ToDayTypeItems(dayTypes []domain.DayType) []dto.DayTypeItem {
	items := make([]dto.DayTypeItem, 0, len(dayTypes))
	for _, dayType := range dayTypes {
		items = append(items, ToDayTypeItem(dayType))
	}
	return items
}

func ToDayTypeItem(dayType domain.DayType) dto.DayTypeItem {
	blocks := make([]dto.TimeBlockItem, 0, len(dayType.TimeBlocks))
	for _, block := range dayType.TimeBlocks {
		blocks = append(blocks, dto.TimeBlockItem{Start: block.Start, End: block.End})
	}
	return dto.DayTypeItem{
		ID:         dayType.ID,
		ProjectID:  dayType.ProjectID,
		Name:       dayType.Name,
		TimeBlocks: blocks,
		CreatedAt:  dayType.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  dayType.UpdatedAt.Format(time.RFC3339),
	}
}

// ToTimeBlocks maps nothing to nil so an absent time_blocks field stays an
// absent update downstream.
func ToTimeBlocks(items []dto.TimeBlockItem) []domain.TimeBlock {
	if len(items) == 0 {
		return nil
	}
	blocks := make([]domain.TimeBlock, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, domain.TimeBlock{Start: item.Start, End: item.End})
	}
	return blocks
}
