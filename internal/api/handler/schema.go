package handler

import (
	"encoding/json"
	"time"

	"github.com/technotes/notes-api/internal/core/domain"
)

// messageResponse is the envelope for every non-list response, errors included.
type messageResponse struct {
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Users ---

// createUserRequest keeps roles raw so that a value of the wrong shape falls
// back to the default role set instead of failing the bind.
type createUserRequest struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Roles    json.RawMessage `json:"roles" swaggertype:"array,string"`
}

type updateUserRequest struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Active   *bool    `json:"active"`
	Password string   `json:"password,omitempty"`
}

type deleteRequest struct {
	ID string `json:"id"`
}

// --- Notes ---

type createNoteRequest struct {
	User  string `json:"user"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type updateNoteRequest struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Ticket    int64     `json:"ticket"`
	User      string    `json:"user"`
	Username  string    `json:"username"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
