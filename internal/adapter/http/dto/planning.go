package dto

type PlanningItem struct {
	ID           uint64  `json:"id"`
	ProjectID    uint64  `json:"project_id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	DataDate     *string `json:"data_date,omitempty"`
	ProjectStart *string `json:"project_start,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type CreatePlanningRequest struct {
	ProjectID    uint64  `json:"project_id" binding:"required,gt=0"`
	Name         string  `json:"name" binding:"required,max=255"`
	DataDate     *string `json:"data_date" binding:"omitempty,datetime=2006-01-02"`
	ProjectStart *string `json:"project_start" binding:"omitempty,datetime=2006-01-02"`
}

type LinkItem struct {
	ID         uint64 `json:"id"`
	PlanningID uint64 `json:"planning_id"`
	SourceID   uint64 `json:"source_id"`
	TargetID   uint64 `json:"target_id"`
	Type       string `json:"type"`
	Lag        int    `json:"lag"`
	CreatedAt  string `json:"created_at"`
}

type CreateLinkRequest struct {
	SourceID uint64 `json:"source_id" binding:"required,gt=0"`
	TargetID uint64 `json:"target_id" binding:"required,gt=0"`
	Type     string `json:"type" binding:"required,oneof=FS SS FF SF"`
	Lag      int    `json:"lag"`
}

type BulkCreateLinksRequest struct {
	Links []CreateLinkRequest `json:"links" binding:"required,min=1,dive"`
}

type UpdateLinkRequest struct {
	Type *string `json:"type" binding:"omitempty,oneof=FS SS FF SF"`
	Lag  *int    `json:"lag"`
}

type BulkDeleteLinksRequest struct {
	LinkIDs []uint64 `json:"link_ids" binding:"required,min=1,dive,gt=0"`
}
