package dto

type NotificationItem struct {
	ID        uint64 `json:"id"`
	ProjectID uint64 `json:"project_id"`
	ActorID   uint64 `json:"actor_id"`
	Target    string `json:"target"`
	Action    string `json:"action"`
	CreatedAt string `json:"created_at"`
}
