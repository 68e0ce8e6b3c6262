package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/connectpro/marketplace-api/internal/api/middleware"
	"github.com/connectpro/marketplace-api/internal/core/domain"
)

// ctxSession extracts the session injected by the Guard middleware. A nil
// session means the guard did not run on this route: treat the request as
// unauthenticated rather than trusting anything downstream.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}
