// Package cookies wraps gorilla/securecookie for the two cookies this
// application sets: the session cookie (opaque session ID) and the flash
// cookie (one-shot notification shown on the next rendered page).
package cookies

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

const (
	sessionCookieName = "_clinic_session"
	flashCookieName   = "_clinic_flash"
)

// Flash notification variants, mirrored in the templates.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Flash is a one-shot notification carried across a redirect.
type Flash struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// Manager signs and (when the secret is long enough) encrypts cookie values.
type Manager struct {
	codec *securecookie.SecureCookie
}

// NewManager builds a Manager from the configured session secret. Secrets of
// 32 bytes or more additionally enable AES encryption of cookie values.
func NewManager(secret []byte) *Manager {
	var blockKey []byte
	if len(secret) >= 32 {
		blockKey = secret[:32]
	}
	codec := securecookie.New(secret, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &Manager{codec: codec}
}

// WriteSession sets the signed session cookie.
func (m *Manager) WriteSession(c echo.Context, sessionID string, ttl time.Duration) error {
	encoded, err := m.codec.Encode(sessionCookieName, sessionID)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ReadSession returns the session ID from the cookie, or "" when the cookie
// is absent or fails authentication.
func (m *Manager) ReadSession(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	var sessionID string
	if err := m.codec.Decode(sessionCookieName, cookie.Value, &sessionID); err != nil {
		return ""
	}
	return sessionID
}

// ClearSession expires the session cookie.
func (m *Manager) ClearSession(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// WriteFlash stores a notification for the next rendered page.
func (m *Manager) WriteFlash(c echo.Context, flash Flash) {
	encoded, err := m.codec.Encode(flashCookieName, flash)
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending notification, if any, and clears it.
func (m *Manager) PopFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	var flash Flash
	if err := m.codec.Decode(flashCookieName, cookie.Value, &flash); err != nil {
		return nil
	}
	return &flash
}
