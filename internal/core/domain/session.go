package domain

import "time"

// Session is the server-side state behind one signed session cookie. The
// identity service owns authentication; this only records which operator the
// cookie belongs to and the access token issued for them.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// Expired reports whether the session's access token has expired. A zero
// ExpiresAt means the identity service did not communicate an expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
