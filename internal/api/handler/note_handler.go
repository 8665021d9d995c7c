package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/technotes/notes-api/internal/api/metrics"
	"github.com/technotes/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for notes.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /notes.
//
// @Summary      List notes
// @Description  Every note carries the username of its owner, or "unknown" when the owner is gone.
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   noteResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toNoteResponses(views))
}

// Create handles POST /notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "New note"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	_, err := h.service.Create(c.Request().Context(), toCreateNoteInput(req, actor(c)))
	metrics.NoteOperationsTotal.WithLabelValues("create", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "New note created"})
}

// Update handles PATCH /notes.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateNoteRequest  true  "Note update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /notes [patch]
func (h *NoteHandler) Update(c echo.Context) error {
	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	note, err := h.service.Update(c.Request().Context(), toUpdateNoteInput(req, actor(c)))
	metrics.NoteOperationsTotal.WithLabelValues("update", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("'%s' updated", note.Title)})
}

// Delete handles DELETE /notes.
//
// @Summary      Delete a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteRequest  true  "Note id"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /notes [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	note, err := h.service.Delete(c.Request().Context(), ports.DeleteNoteInput{ID: req.ID, Actor: actor(c)})
	metrics.NoteOperationsTotal.WithLabelValues("delete", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Note '%s' with ID %s deleted", note.Title, note.ID),
	})
}
