package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicops/directory-admin/internal/api/cookies"
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// DashboardHandler serves the protected user listing.
type DashboardHandler struct {
	directory ports.DirectoryService
	cookies   *cookies.Manager
}

func NewDashboardHandler(directory ports.DirectoryService, cookieMgr *cookies.Manager) *DashboardHandler {
	return &DashboardHandler{directory: directory, cookies: cookieMgr}
}

type dashboardPage struct {
	Email  string
	Query  string
	Users  []domain.UserRecord
	Notice *cookies.Flash
}

// Dashboard handles GET /dashboard. The directory is fetched once per render;
// the q parameter only derives the visible subset. A fetch failure renders
// the page with an empty listing and a destructive notification, leaving the
// view interactive.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	query := c.QueryParam("q")
	page := dashboardPage{
		Email: session.Email,
		Query: query,
	}

	users, err := h.directory.SearchUsers(c.Request().Context(), session.AccessToken, query)
	if err != nil {
		page.Notice = &cookies.Flash{
			Title:       "Error",
			Description: domain.ErrorMessage(err, "Failed to fetch users"),
			Variant:     cookies.VariantDestructive,
		}
		return c.Render(http.StatusOK, "dashboard.html", page)
	}

	page.Users = users
	page.Notice = h.cookies.PopFlash(c)
	return c.Render(http.StatusOK, "dashboard.html", page)
}
