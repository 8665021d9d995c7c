package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/technotes/notes-api/internal/api/metrics"
	"github.com/technotes/notes-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create handles POST /users.
//
// @Summary      Create a user
// @Description  Roles default to ["Employee"] when absent, empty or not a list.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New user"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	user, err := h.service.Create(c.Request().Context(), toCreateUserInput(req, actor(c)))
	metrics.UserOperationsTotal.WithLabelValues("create", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{
		Message: fmt.Sprintf("New user %s created", user.Username),
	})
}

// Update handles PATCH /users.
//
// @Summary      Update a user
// @Description  Replaces username, roles and active status. The password is re-hashed only when supplied.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "User update"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /users [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	user, err := h.service.Update(c.Request().Context(), toUpdateUserInput(req, actor(c)))
	metrics.UserOperationsTotal.WithLabelValues("update", resultLabel(err)).Inc()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("%s updated", user.Username)})
}

// Delete handles DELETE /users.
//
// @Summary      Delete a user
// @Description  A request without an id is answered with 200 and a prompt message.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteRequest  true  "User id"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	user, err := h.service.Delete(c.Request().Context(), ports.DeleteUserInput{ID: req.ID, Actor: actor(c)})
	if err != nil {
		metrics.UserOperationsTotal.WithLabelValues("delete", resultLabel(err)).Inc()
		return err
	}
	if user == nil {
		return c.JSON(http.StatusOK, messageResponse{Message: "User ID Required"})
	}
	metrics.UserOperationsTotal.WithLabelValues("delete", resultLabel(nil)).Inc()

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Username %s with ID %s deleted", user.Username, user.ID),
	})
}
