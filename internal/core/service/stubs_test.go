package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/technotes/notes-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// testHasher uses the minimum bcrypt cost to keep tests fast.
var testHasher = NewBcryptHasher(bcrypt.MinCost)

type stubUserRepo struct {
	byID    map[string]*domain.User
	nextID  int
	listErr error
	findErr error // if set, FindByID and FindByUsername return this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) seed(username string, roles ...string) *domain.User {
	r.nextID++
	u := &domain.User{
		ID:           fmt.Sprintf("u%d", r.nextID),
		Username:     username,
		PasswordHash: "hash",
		Roles:        roles,
		Active:       true,
	}
	r.byID[u.ID] = u
	return cloneUser(u)
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// FindByUsername mirrors the normalized-key lookup of the real repository.
func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if domain.NormalizeKey(u.Username) == domain.NormalizeKey(username) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.FindByUsername(ctx, user.Username); err == nil {
		return nil, domain.ErrDuplicateUsername
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("u%d", r.nextID)
	r.byID[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.byID[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return u, nil
}

type stubNoteRepo struct {
	byID      map[string]*domain.Note
	nextID    int
	existsErr error
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{byID: make(map[string]*domain.Note)}
}

func (r *stubNoteRepo) List(_ context.Context) ([]*domain.Note, error) {
	out := make([]*domain.Note, 0, len(r.byID))
	for _, n := range r.byID {
		clone := *n
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubNoteRepo) FindByID(_ context.Context, id string) (*domain.Note, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	clone := *n
	return &clone, nil
}

func (r *stubNoteRepo) FindByTitle(_ context.Context, title string) (*domain.Note, error) {
	for _, n := range r.byID {
		if domain.NormalizeKey(n.Title) == domain.NormalizeKey(title) {
			clone := *n
			return &clone, nil
		}
	}
	return nil, domain.ErrNoteNotFound
}

func (r *stubNoteRepo) ExistsForUser(_ context.Context, userID string) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}
	for _, n := range r.byID {
		if n.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubNoteRepo) Create(_ context.Context, note *domain.Note) (*domain.Note, error) {
	r.nextID++
	clone := *note
	clone.ID = fmt.Sprintf("n%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubNoteRepo) Update(_ context.Context, note *domain.Note) (*domain.Note, error) {
	if _, ok := r.byID[note.ID]; !ok {
		return nil, domain.ErrNoteNotFound
	}
	clone := *note
	r.byID[note.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubNoteRepo) Delete(_ context.Context, id string) (*domain.Note, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	delete(r.byID, id)
	return n, nil
}

type stubTickets struct {
	next int64
	err  error
}

func (s *stubTickets) Next(_ context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	if s.next == 0 {
		s.next = domain.FirstTicketNumber
	}
	n := s.next
	s.next++
	return n, nil
}

type stubActivityRepo struct {
	insertErr error
	events    []*domain.ActivityEvent
}

func (r *stubActivityRepo) InsertEvent(_ context.Context, e *domain.ActivityEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.events = append(r.events, e)
	return nil
}

var errStoreDown = errors.New("store unavailable")
