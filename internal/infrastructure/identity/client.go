// Package identity implements the HTTP client for the external
// identity-and-directory service. The service exposes a GoTrue-style auth API
// under /auth/v1 and a PostgREST-style directory API under /rest/v1; all
// authentication and persistence logic lives on the remote side.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

const (
	defaultTimeout = 10 * time.Second
	usersEndpoint  = "/rest/v1/users"
)

// listSelect names the directory fields fetched for the listing view.
const listSelect = "id,email,first_name,last_name,role,office_name,created_at"

// Config captures the settings for reaching the identity service.
type Config struct {
	// URL is the service base URL, e.g. https://xyz.example.co.
	URL string
	// APIKey is sent as the apikey header on every request.
	APIKey  string
	Timeout time.Duration
}

// Client implements ports.IdentityClient and ports.DirectoryClient.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

var (
	_ ports.IdentityClient  = (*Client)(nil)
	_ ports.DirectoryClient = (*Client)(nil)
)

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.URL, "/"),
		apiKey:  cfg.APIKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// identityPayload tolerates both response shapes the auth API uses: the user
// object at the top level, or nested under "user".
type identityPayload struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	User  *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (p *identityPayload) identity() *ports.Identity {
	if p.User != nil && p.User.ID != "" {
		return &ports.Identity{ID: p.User.ID, Email: p.User.Email}
	}
	if p.ID != "" {
		return &ports.Identity{ID: p.ID, Email: p.Email}
	}
	return nil
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*ports.Identity, error) {
	var payload identityPayload
	err := c.doJSON(ctx, http.MethodPost, "/auth/v1/signup", "", credentialsPayload{Email: email, Password: password}, &payload, "signup")
	if err != nil {
		return nil, err
	}
	return payload.identity(), nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*ports.Identity, *ports.Token, error) {
	var payload struct {
		identityPayload
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}

	err := c.doJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", credentialsPayload{Email: email, Password: password}, &payload, "sign in")
	if err != nil {
		return nil, nil, err
	}

	identity := payload.identity()
	if identity == nil || payload.AccessToken == "" {
		return nil, nil, &domain.RemoteError{Op: "sign in", Message: "identity service returned no session"}
	}

	token := &ports.Token{AccessToken: payload.AccessToken}
	if payload.ExpiresIn > 0 {
		token.ExpiresAt = time.Now().UTC().Add(time.Duration(payload.ExpiresIn) * time.Second)
	}
	return identity, token, nil
}

func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil, "sign out")
}

func (c *Client) ListUsers(ctx context.Context, accessToken string) ([]domain.UserRecord, error) {
	query := url.Values{}
	query.Set("select", listSelect)
	query.Set("order", "created_at.desc")

	var users []domain.UserRecord
	err := c.doJSON(ctx, http.MethodGet, usersEndpoint+"?"+query.Encode(), accessToken, nil, &users, "list users")
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UpdateUser(ctx context.Context, accessToken, id string, update ports.ProfileUpdate) error {
	path := usersEndpoint + "?id=eq." + url.QueryEscape(id)
	return c.doJSON(ctx, http.MethodPatch, path, accessToken, update, nil, "update user")
}

// doJSON issues one request and decodes the response into out (when non-nil).
// Non-2xx responses are decoded into a domain.RemoteError carrying the
// service's message when it provided one.
func (c *Client) doJSON(ctx context.Context, method, path, accessToken string, in, out any, op string) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("identity: marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("identity: new %s request: %w", op, err)
	}
	req.Header.Set("apikey", c.apiKey)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("identity: %s request failed: %w", op, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return remoteError(op, res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("identity: decode %s response: %w", op, err)
	}
	return nil
}

// remoteError extracts the service's error message from the handful of body
// shapes it uses.
func remoteError(op string, res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))

	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)

	msg := body.Msg
	for _, candidate := range []string{body.Message, body.ErrorDescription, body.Error} {
		if msg == "" {
			msg = candidate
		}
	}

	return &domain.RemoteError{Op: op, StatusCode: res.StatusCode, Message: msg}
}
