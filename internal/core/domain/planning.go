package domain

import "time"

type PlanningStatus string

const (
	// PlanningStatusPlanned means every task of the planning is still TODO.
	PlanningStatusPlanned PlanningStatus = "PLANNED"
	// PlanningStatusActive means at least one task is in progress or the
	// statuses are mixed.
	PlanningStatusActive PlanningStatus = "ACTIVE"
	// PlanningStatusInactive means every task is finished.
	PlanningStatusInactive PlanningStatus = "INACTIVE"
)

// Planning is the aggregate root owning a task tree and its dependency links.
type Planning struct {
	ID           uint64
	ProjectID    uint64
	Name         string
	Status       PlanningStatus
	DataDate     *time.Time
	ProjectStart *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreatePlanningInput struct {
	ProjectID    uint64
	Name         string
	DataDate     *time.Time
	ProjectStart *time.Time
	CreatedBy    uint64
}

type LinkType string

const (
	LinkTypeFinishToStart  LinkType = "FS"
	LinkTypeStartToStart   LinkType = "SS"
	LinkTypeFinishToFinish LinkType = "FF"
	LinkTypeStartToFinish  LinkType = "SF"
)

func (t LinkType) IsValid() bool {
	switch t {
	case LinkTypeFinishToStart, LinkTypeStartToStart, LinkTypeFinishToFinish, LinkTypeStartToFinish:
		return true
	default:
		return false
	}
}

// Link is a typed, lagged directed dependency edge between two tasks of the
// same planning. Links live and die with their planning; they are never
// soft-deleted.
type Link struct {
	ID         uint64
	PlanningID uint64
	SourceID   uint64
	TargetID   uint64
	Type       LinkType
	Lag        int
	CreatedAt  time.Time
}

type CreateLinkInput struct {
	SourceID  uint64
	TargetID  uint64
	Type      LinkType
	Lag       int
	CreatedBy uint64
}

type UpdateLinkInput struct {
	Type      *LinkType
	Lag       *int
	UpdatedBy uint64
}
