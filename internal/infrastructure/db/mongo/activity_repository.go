package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

const collectionActivity = "activity_events"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
type ActivityRepository struct {
	db *mongo.Database
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) ports.ActivityRepository {
	return &ActivityRepository{db: db}
}

// InsertEvent appends a mutation record to the activity_events collection.
func (r *ActivityRepository) InsertEvent(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	at := event.At
	if at.IsZero() {
		at = time.Now()
	}

	doc := bson.M{
		"entity":    event.Entity,
		"entity_id": event.EntityID,
		"action":    event.Action,
		"at":        at.UTC(),
	}
	if event.Actor != "" {
		doc["actor"] = event.Actor
	}

	_, err := r.db.Collection(collectionActivity).InsertOne(ctx, doc)
	return err
}
