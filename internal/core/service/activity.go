package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

// activityRecorder appends audit events. Insert failures are logged at warn
// and never returned.
type activityRecorder struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

func (r activityRecorder) record(ctx context.Context, entity, entityID, action, actor string) {
	if r.repo == nil {
		return
	}
	event := &domain.ActivityEvent{
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Actor:    actor,
		At:       time.Now().UTC(),
	}
	if err := r.repo.InsertEvent(ctx, event); err != nil {
		r.log.Warn().Err(err).
			Str("entity", entity).
			Str("entity_id", entityID).
			Str("action", action).
			Msg("failed to insert activity event")
	}
}
