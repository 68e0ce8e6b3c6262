package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/api/metrics"
	"github.com/connectpro/marketplace-api/internal/api/middleware"
	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	jwtSecret   string
}

func NewAuthHandler(authService ports.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{authService: authService, jwtSecret: jwtSecret}
}

// Login authenticates any principal kind and returns the session plus token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contextID := req.ContextID
	if contextID == "" {
		var err error
		contextID, err = newContextID()
		if err != nil {
			return err
		}
	}

	session, token, err := h.authService.Authenticate(c.Request().Context(), contextID, req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("none", loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues(session.Role, "success").Inc()
	return c.JSON(http.StatusOK, sessionResponse{Session: session, Token: token})
}

// Session returns the caller's current session for the slot its token names,
// or a null session when nothing valid is persisted. Unlike the route
// guards, this endpoint never fails the request for an anonymous caller —
// it exists so clients can re-check state after a reload.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	claims, ok := middleware.ParseBearer(h.jwtSecret, c.Request().Header.Get("Authorization"))
	if !ok {
		return c.JSON(http.StatusOK, sessionResponse{Session: nil})
	}

	session, err := h.authService.CurrentSession(c.Request().Context(), claims.ContextID, domain.SlotForRole(claims.Role))
	if err != nil {
		return err
	}
	if session != nil && session.ID != claims.SessionID {
		session = nil
	}
	return c.JSON(http.StatusOK, sessionResponse{Session: session})
}

// Logout clears both session slots for the caller's context. Idempotent:
// an anonymous or already signed-out caller gets the same 204.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	claims, ok := middleware.ParseBearer(h.jwtSecret, c.Request().Header.Get("Authorization"))
	if ok {
		if err := h.authService.SignOut(c.Request().Context(), claims.ContextID); err != nil {
			return err
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrAccountPendingApproval):
		return "pending_approval"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "unavailable"
	default:
		return "invalid"
	}
}

// newContextID generates an identifier for a fresh client context.
func newContextID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return hex.EncodeToString(b), nil
}
