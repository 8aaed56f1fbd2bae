package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

type stubSessions struct {
	sessions map[string]*domain.Session
}

func (s *stubSessions) Login(context.Context, string, string) (*domain.Session, error) {
	return nil, nil
}

func (s *stubSessions) Register(context.Context, ports.RegisterInput) (*domain.Session, error) {
	return nil, nil
}

func (s *stubSessions) Restore(_ context.Context, token string) *domain.Session {
	return s.sessions[token]
}

func (s *stubSessions) Logout(context.Context, string) error {
	return nil
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	stub := &stubSessions{sessions: map[string]*domain.Session{
		"tok-1": {Token: "tok-1", User: domain.User{ID: "7", Email: "coach@example.com", Name: "Sarah", Role: domain.RoleCoach}},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Session(stub)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("user_id") != "7" {
			t.Fatalf("user_id not set")
		}
		if c.Get("role") != domain.RoleCoach {
			t.Fatalf("role not set")
		}
		if c.Get("email") != "coach@example.com" {
			t.Fatalf("email not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(&stubSessions{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(&stubSessions{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionMiddleware_UnknownToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-session")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session(&stubSessions{sessions: map[string]*domain.Session{}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
