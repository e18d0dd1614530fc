package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicops/directory-admin/internal/api/middleware"
	"github.com/clinicops/directory-admin/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware. Its
// presence proves the guard ran; a handler reached without it is a wiring
// bug, answered with 401 rather than a panic.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if session == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return session, nil
}
