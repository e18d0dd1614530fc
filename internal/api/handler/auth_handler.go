package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinicops/directory-admin/internal/api/cookies"
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

// AuthHandler serves the welcome and sign-in pages and the sign-in/sign-out
// actions.
type AuthHandler struct {
	sessions ports.SessionService
	cookies  *cookies.Manager
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewAuthHandler(sessions ports.SessionService, cookieMgr *cookies.Manager, ttl time.Duration, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookies: cookieMgr, ttl: ttl, logger: logger}
}

type loginPage struct {
	Email  string
	Notice *cookies.Flash
}

// Index handles GET / — the welcome page.
func (h *AuthHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// LoginForm handles GET /login.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{Notice: h.cookies.PopFlash(c)})
}

// Login handles POST /login: password sign-in against the identity service,
// then a server-side session and its cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", loginPage{
			Notice: &cookies.Flash{Title: "Error", Description: "invalid payload", Variant: cookies.VariantDestructive},
		})
	}
	if err := c.Validate(req); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", loginPage{
			Email:  req.Email,
			Notice: &cookies.Flash{Title: "Error", Description: err.Error(), Variant: cookies.VariantDestructive},
		})
	}

	session, err := h.sessions.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return c.Render(http.StatusUnauthorized, "login.html", loginPage{
			Email: req.Email,
			Notice: &cookies.Flash{
				Title:       "Error",
				Description: domain.ErrorMessage(err, "An error occurred during sign in."),
				Variant:     cookies.VariantDestructive,
			},
		})
	}

	if err := h.cookies.WriteSession(c, session.ID, h.ttl); err != nil {
		h.logger.Error().Err(err).Msg("failed to write session cookie")
		return c.Render(http.StatusInternalServerError, "login.html", loginPage{
			Email:  req.Email,
			Notice: &cookies.Flash{Title: "Error", Description: "An error occurred during sign in.", Variant: cookies.VariantDestructive},
		})
	}

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles POST /logout. The local session is gone either way; a failed
// remote revocation only changes the notification.
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	h.cookies.ClearSession(c)
	if err := h.sessions.SignOut(c.Request().Context(), session); err != nil {
		h.cookies.WriteFlash(c, cookies.Flash{
			Title:       "Error",
			Description: domain.ErrorMessage(err, "An error occurred while signing out."),
			Variant:     cookies.VariantDestructive,
		})
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}
