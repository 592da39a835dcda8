package mapper

import (
	"time"

	"planbase/internal/adapter/http/dto"
	"planbase/internal/core/domain"
)

func ToPlanningItems(plannings []domain.Planning) []dto.PlanningItem {
	items := make([]dto.PlanningItem, 0, len(plannings))
	for _, planning := range plannings {
		items = append(items, ToPlanningItem(planning))
	}
	return items
}

func ToPlanningItem(planning domain.Planning) dto.PlanningItem {
	return dto.PlanningItem{
		ID:           planning.ID,
		ProjectID:    planning.ProjectID,
		Name:         planning.Name,
		Status:       string(planning.Status),
		DataDate:     formatDate(planning.DataDate),
		ProjectStart: formatDate(planning.ProjectStart),
		CreatedAt:    planning.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    planning.UpdatedAt.Format(time.RFC3339),
	}
}

func ToLinkItems(links []domain.Link) []dto.LinkItem {
	items := make([]dto.LinkItem, 0, len(links))
	for _, link := range links {
		items = append(items, ToLinkItem(link))
	}
	return items
}

func ToLinkItem(link domain.Link) dto.LinkItem {
	return dto.LinkItem{
		ID:         link.ID,
		PlanningID: link.PlanningID,
		SourceID:   link.SourceID,
		TargetID:   link.TargetID,
		Type:       string(link.Type),
		Lag:        link.Lag,
		CreatedAt:  link.CreatedAt.Format(time.RFC3339),
	}
}
