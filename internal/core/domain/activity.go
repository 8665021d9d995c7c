package domain

import "time"

const (
	EntityUser = "user"
	EntityNote = "note"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ActivityEvent is one entry of the append-only audit trail.
type ActivityEvent struct {
	Entity   string
	EntityID string
	Action   string
	Actor    string // username of the caller; empty for anonymous calls
	At       time.Time
}
