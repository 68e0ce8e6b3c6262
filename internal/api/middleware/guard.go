package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/api/metrics"
	"github.com/connectpro/marketplace-api/internal/core/domain"
	"github.com/connectpro/marketplace-api/internal/core/ports"
)

// SessionKey is the echo context key the guard stores the session under.
const SessionKey = "session"

// Guard is the route guard for one session slot. It parses the bearer token,
// loads and validates the persisted session for that slot, and only then lets
// the handler run: check-then-render, never the other way around. A token
// whose session row has been cleared (sign-out) is rejected even when its
// signature is still valid.
func Guard(auth ports.AuthService, jwtSecret string, slot domain.Slot) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ParseBearer(jwtSecret, c.Request().Header.Get("Authorization"))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}

			session, err := auth.CurrentSession(c.Request().Context(), claims.ContextID, slot)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
			}
			if session == nil || session.ID != claims.SessionID {
				metrics.GuardDeniedTotal.WithLabelValues(string(slot)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			c.Set(SessionKey, session)
			c.Set("role", session.Role)

			return next(c)
		}
	}
}
