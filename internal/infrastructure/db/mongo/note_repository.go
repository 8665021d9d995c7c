package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/technotes/notes-api/internal/core/domain"
)

const collectionNotes = "notes"

type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection(collectionNotes)}
}

type mongoNote struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	TicketNumber int64              `bson:"ticket_number"`
	UserID       primitive.ObjectID `bson:"user"`
	Title        string             `bson:"title"`
	TitleCI      string             `bson:"title_ci"`
	Text         string             `bson:"text"`
	Completed    bool               `bson:"completed"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (mn mongoNote) toDomain() *domain.Note {
	return &domain.Note{
		ID:           mn.ID.Hex(),
		TicketNumber: mn.TicketNumber,
		UserID:       mn.UserID.Hex(),
		Title:        mn.Title,
		Text:         mn.Text,
		Completed:    mn.Completed,
		CreatedAt:    mn.CreatedAt.UTC(),
		UpdatedAt:    mn.UpdatedAt.UTC(),
	}
}

// List returns all notes ordered by ticket number.
func (r *NoteRepository) List(ctx context.Context) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "ticket_number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}

	var docs []mongoNote
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}

	notes := make([]*domain.Note, 0, len(docs))
	for _, d := range docs {
		notes = append(notes, d.toDomain())
	}
	return notes, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *NoteRepository) FindByTitle(ctx context.Context, title string) (*domain.Note, error) {
	return r.findOne(ctx, bson.M{"title_ci": domain.NormalizeKey(title)})
}

func (r *NoteRepository) findOne(ctx context.Context, filter bson.M) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNote
	if err := r.col.FindOne(ctx, filter).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return mn.toDomain(), nil
}

// ExistsForUser reports whether at least one note is owned by userID.
// A malformed userID cannot own notes.
func (r *NoteRepository) ExistsForUser(ctx context.Context, userID string) (bool, error) {
	oid, ok := objectID(userID)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"user": oid}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count notes: %w", err)
	}
	return n > 0, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	owner, ok := objectID(note.UserID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoNote{
		TicketNumber: note.TicketNumber,
		UserID:       owner,
		Title:        note.Title,
		TitleCI:      domain.NormalizeKey(note.Title),
		Text:         note.Text,
		Completed:    note.Completed,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("insert note: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	oid, ok := objectID(note.ID)
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	owner, ok := objectID(note.UserID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"user":       owner,
		"title":      note.Title,
		"title_ci":   domain.NormalizeKey(note.Title),
		"text":       note.Text,
		"completed":  note.Completed,
		"updated_at": note.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateTitle
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNoteNotFound
	}

	out := *note
	return &out, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) (*domain.Note, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrNoteNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNote
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("delete note: %w", err)
	}
	return mn.toDomain(), nil
}

// EnsureIndexes creates the indexes the note queries rely on.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "ticket_number", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_ticket_number")},
		{Keys: bson.D{{Key: "title_ci", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_title_ci")},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
