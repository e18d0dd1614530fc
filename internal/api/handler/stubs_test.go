package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinicops/directory-admin/internal/api/cookies"
	"github.com/clinicops/directory-admin/internal/api/middleware"
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

type stubSessionService struct {
	signInFn  func(ctx context.Context, email, password string) (*domain.Session, error)
	signOutFn func(ctx context.Context, session *domain.Session) error
}

func (s *stubSessionService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubSessionService) SignOut(ctx context.Context, session *domain.Session) error {
	if s.signOutFn == nil {
		return nil
	}
	return s.signOutFn(ctx, session)
}

func (s *stubSessionService) Current(context.Context, string) (*domain.Session, error) {
	return nil, domain.ErrNoSession
}

type stubDirectoryService struct {
	searchFn func(ctx context.Context, accessToken, query string) ([]domain.UserRecord, error)
}

func (s *stubDirectoryService) LoadUsers(ctx context.Context, accessToken string) ([]domain.UserRecord, error) {
	return s.searchFn(ctx, accessToken, "")
}

func (s *stubDirectoryService) SearchUsers(ctx context.Context, accessToken, query string) ([]domain.UserRecord, error) {
	return s.searchFn(ctx, accessToken, query)
}

type stubAccountService struct {
	createFn func(ctx context.Context, operator *domain.Session, input ports.CreateUserInput) error
	calls    int
}

func (s *stubAccountService) CreateUser(ctx context.Context, operator *domain.Session, input ports.CreateUserInput) error {
	s.calls++
	return s.createFn(ctx, operator, input)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = NewRenderer()
	e.Validator = NewValidator()
	return e
}

func testCookies() *cookies.Manager {
	return cookies.NewManager([]byte("0123456789abcdef0123456789abcdef"))
}

func testSession() *domain.Session {
	return &domain.Session{ID: "s1", UserID: "op1", Email: "admin@clinic.example", AccessToken: "tok"}
}

// formContext builds an echo context for a POSTed form, with the guard's
// session already attached.
func formContext(e *echo.Echo, target string, form url.Values, session *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set(middleware.SessionKey, session)
	}
	return c, rec
}

func jsonContext(e *echo.Echo, method, target, body string, session *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		c.Set(middleware.SessionKey, session)
	}
	return c, rec
}

func validCreateForm() url.Values {
	return url.Values{
		"email":               {"new@clinic.example"},
		"password":            {"s3cret99"},
		"first_name":          {"Dana"},
		"last_name":           {"Reyes"},
		"role":                {"DOCTOR"},
		"office_name":         {"North Clinic"},
		"phone_number":        {"555-0101"},
		"office_phone_number": {"555-0102"},
	}
}

func mustContain(t *testing.T, body, want string) {
	t.Helper()
	if !strings.Contains(body, want) {
		t.Fatalf("response body missing %q:\n%s", want, body)
	}
}
