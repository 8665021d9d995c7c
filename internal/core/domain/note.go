package domain

import "time"

// FirstTicketNumber is the ticket assigned to the very first note.
const FirstTicketNumber int64 = 500

// Note is a ticket-like work item owned by a user.
type Note struct {
	ID           string    `json:"id"`
	TicketNumber int64     `json:"ticket"`
	UserID       string    `json:"user"`
	Title        string    `json:"title"`
	Text         string    `json:"text"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
