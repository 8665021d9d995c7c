package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// ActivityRepository persists the audit trail of user and note mutations.
type ActivityRepository interface {
	InsertEvent(ctx context.Context, event *domain.ActivityEvent) error
}
