package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/technotes/notes-api/internal/api/metrics"
	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

// RefreshCookie is the name of the httpOnly cookie carrying the refresh token.
const RefreshCookie = "jwt"

type AuthHandler struct {
	authService ports.AuthService
	refreshTTL  time.Duration
}

func NewAuthHandler(authService ports.AuthService, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, refreshTTL: refreshTTL}
}

// Login authenticates a user, returns an access token and sets the refresh cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  accessTokenResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Router       /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError(domain.FieldError{Field: "body", Message: "All fields are required"})
	}

	pair, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.cookie(pair.RefreshToken, int(h.refreshTTL/time.Second)))
	return c.JSON(http.StatusOK, accessTokenResponse{AccessToken: pair.AccessToken})
}

// Refresh exchanges the refresh cookie for a new access token.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  accessTokenResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /auth/refresh [get]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(RefreshCookie)
	if err != nil || cookie.Value == "" {
		return domain.ErrInvalidCredentials
	}

	token, err := h.authService.Refresh(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accessTokenResponse{AccessToken: token})
}

// Logout clears the refresh cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := c.Cookie(RefreshCookie); errors.Is(err, http.ErrNoCookie) {
		return c.NoContent(http.StatusNoContent)
	}

	c.SetCookie(h.cookie("", -1))
	return c.JSON(http.StatusOK, messageResponse{Message: "Cookie cleared"})
}

func (h *AuthHandler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
