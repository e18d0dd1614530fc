package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinicops/directory-admin/internal/api/cookies"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// SessionKey is the echo context key under which the resolved session is stored.
const SessionKey = "session"

// Session guards protected routes. It resolves the session cookie against the
// store on every request, so a sign-out performed anywhere takes effect on
// the operator's next request. An absent or dead session is a routing
// decision, not an error: browsers are redirected to the sign-in page, API
// clients get a plain 401.
func Session(sessions ports.SessionService, cookieMgr *cookies.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := cookieMgr.ReadSession(c)
			if sessionID == "" {
				return deny(c)
			}

			session, err := sessions.Current(c.Request().Context(), sessionID)
			if err != nil {
				cookieMgr.ClearSession(c)
				return deny(c)
			}

			c.Set(SessionKey, session)
			return next(c)
		}
	}
}

func deny(c echo.Context) error {
	if strings.HasPrefix(c.Path(), "/api/") {
		return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
	}
	return c.Redirect(http.StatusSeeOther, "/login")
}
