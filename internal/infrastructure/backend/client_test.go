package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

func authedSession() *domain.Session {
	return &domain.Session{ID: "sid-1", Token: "tok-abc", Authenticated: true}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	var out map[string]any
	if err := c.do(context.Background(), authedSession(), http.MethodGet, "/startups", nil, nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer tok-abc" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_NilSessionSendsUnauthenticated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	if err := c.do(context.Background(), nil, http.MethodPost, "/auth/login", nil, map[string]string{"email": "e"}, nil); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("unauthenticated request must carry no bearer, got %q", gotAuth)
	}
}

func TestClient_UnauthorizedInvalidatesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"jwt expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	var invalidated string
	c.OnSessionInvalid(func(ctx context.Context, sid string) {
		invalidated = sid
	})

	err := c.do(context.Background(), authedSession(), http.MethodGet, "/watchlist/check", nil, nil, nil)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if invalidated != "sid-1" {
		t.Fatalf("expected the calling session invalidated, got %q", invalidated)
	}
}

func TestClient_ProfileNotFoundInvalidatesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	var invalidated string
	c.OnSessionInvalid(func(ctx context.Context, sid string) {
		invalidated = sid
	})

	err := c.do(context.Background(), authedSession(), http.MethodGet, "/auth/profile", nil, nil, nil)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired for missing account, got %v", err)
	}
	if invalidated != "sid-1" {
		t.Fatalf("expected invalidation, got %q", invalidated)
	}
}

func TestClient_OrdinaryNotFoundIsBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"startup not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	invalidations := 0
	c.OnSessionInvalid(func(ctx context.Context, sid string) { invalidations++ })

	err := c.do(context.Background(), authedSession(), http.MethodGet, "/startups/nope", nil, nil, nil)

	var be *domain.BackendError
	if !errors.As(err, &be) || be.Status != http.StatusNotFound || be.Message != "startup not found" {
		t.Fatalf("expected 404 BackendError, got %v", err)
	}
	if invalidations != 0 {
		t.Fatalf("a plain 404 must not invalidate the session")
	}
}

func TestClient_FlattensValidationList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"msg":"username is required"},{"msg":"email is invalid"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	err := c.do(context.Background(), nil, http.MethodPost, "/auth/signup", nil, map[string]string{}, nil)

	var be *domain.BackendError
	if !errors.As(err, &be) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if be.Message != "username is required. email is invalid" {
		t.Fatalf("flattened message mismatch: %q", be.Message)
	}
	if len(be.Fields) != 2 {
		t.Fatalf("expected both fragments kept, got %+v", be.Fields)
	}
}

func TestClient_EmptyErrorBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, zerolog.Nop())
	err := c.do(context.Background(), nil, http.MethodGet, "/startups", nil, nil, nil)

	var be *domain.BackendError
	if !errors.As(err, &be) || be.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected status-text fallback, got %v", err)
	}
}
