package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/technotes/notes-api/internal/core/domain"
)

const (
	collectionCounters = "counters"
	noteCounterID      = "notes"
)

// TicketSequence allocates note ticket numbers from a single counter
// document. The $inc upsert is atomic, so concurrent creates never share a
// ticket.
type TicketSequence struct {
	col *mongo.Collection
}

func NewTicketSequence(db *mongo.Database) *TicketSequence {
	return &TicketSequence{col: db.Collection(collectionCounters)}
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

func (s *TicketSequence) Next(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": noteCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next ticket: %w", err)
	}

	return domain.FirstTicketNumber + doc.Seq - 1, nil
}
