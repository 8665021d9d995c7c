package handler

import (
	"encoding/json"

	"github.com/technotes/notes-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateUserInput(req createUserRequest, actor string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Roles:    decodeRoles(req.Roles),
		Actor:    actor,
	}
}

// decodeRoles returns nil for anything that is not a JSON array of strings.
func decodeRoles(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var roles []string
	if err := json.Unmarshal(raw, &roles); err != nil {
		return nil
	}
	return roles
}

func toUpdateUserInput(req updateUserRequest, actor string) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		ID:       req.ID,
		Username: req.Username,
		Roles:    req.Roles,
		Active:   req.Active,
		Password: req.Password,
		Actor:    actor,
	}
}

func toCreateNoteInput(req createNoteRequest, actor string) ports.CreateNoteInput {
	return ports.CreateNoteInput{
		UserID: req.User,
		Title:  req.Title,
		Text:   req.Text,
		Actor:  actor,
	}
}

func toUpdateNoteInput(req updateNoteRequest, actor string) ports.UpdateNoteInput {
	return ports.UpdateNoteInput{
		ID:        req.ID,
		UserID:    req.User,
		Title:     req.Title,
		Text:      req.Text,
		Completed: req.Completed,
		Actor:     actor,
	}
}

// --- Service result → Response ---

func toNoteResponse(v ports.NoteView) noteResponse {
	return noteResponse{
		ID:        v.ID,
		Ticket:    v.TicketNumber,
		User:      v.UserID,
		Username:  v.Username,
		Title:     v.Title,
		Text:      v.Text,
		Completed: v.Completed,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toNoteResponses(views []ports.NoteView) []noteResponse {
	out := make([]noteResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toNoteResponse(v))
	}
	return out
}
