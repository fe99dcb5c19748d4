package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

type stubAccountsAPI struct {
	loginFn  func(ctx context.Context, email, password string) (*ports.AuthPayload, error)
	signupFn func(ctx context.Context, input ports.SignupInput) (*ports.AuthPayload, error)
}

func (s *stubAccountsAPI) Login(ctx context.Context, email, password string) (*ports.AuthPayload, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAccountsAPI) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthPayload, error) {
	return s.signupFn(ctx, input)
}

func (s *stubAccountsAPI) Profile(ctx context.Context, sess *domain.Session) (*ports.AuthPayload, error) {
	return nil, nil
}

// memStore is an in-memory SessionStore with call counters.
type memStore struct {
	records map[string]domain.Record
	corrupt map[string]bool
	saves   int
	deletes int
	touches int
}

func newMemStore() *memStore {
	return &memStore{records: map[string]domain.Record{}, corrupt: map[string]bool{}}
}

func (m *memStore) Save(ctx context.Context, sid string, rec domain.Record) error {
	m.saves++
	m.records[sid] = rec
	return nil
}

func (m *memStore) Load(ctx context.Context, sid string) (*domain.Record, error) {
	if m.corrupt[sid] {
		return nil, domain.ErrCorruptSession
	}
	rec, ok := m.records[sid]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) Delete(ctx context.Context, sid string) error {
	m.deletes++
	delete(m.records, sid)
	delete(m.corrupt, sid)
	return nil
}

func (m *memStore) Touch(ctx context.Context, sid string) error {
	m.touches++
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestSessionService_Login_PersistsAndSurvivesReload(t *testing.T) {
	store := newMemStore()
	accounts := &stubAccountsAPI{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthPayload, error) {
			return &ports.AuthPayload{
				Token:    signedToken(t, time.Now().Add(time.Hour)),
				ID:       "u1",
				Username: "ira",
				Email:    email,
				Role:     domain.RoleInvestor,
			}, nil
		},
	}
	svc := NewSessionService(accounts, store, zerolog.Nop())

	sess, err := svc.Login(context.Background(), "ira@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !sess.Authenticated || sess.User.Role != domain.RoleInvestor {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if store.saves != 1 {
		t.Fatalf("expected the record persisted before return, saves=%d", store.saves)
	}

	// A fresh bootstrap with the same id plays the page-reload scenario.
	restored := svc.Bootstrap(context.Background(), sess.ID)
	if !restored.Authenticated {
		t.Fatalf("session did not survive reload")
	}
	if restored.User != sess.User {
		t.Fatalf("restored user diverged: %+v vs %+v", restored.User, sess.User)
	}
	if store.touches == 0 {
		t.Fatalf("bootstrap should extend the record's lifetime")
	}
}

func TestSessionService_Signup_PassesBackendErrorThrough(t *testing.T) {
	store := newMemStore()
	wantErr := domain.NewBackendError(400, "", []string{"username is required", "email is invalid", "password too short"})
	accounts := &stubAccountsAPI{
		signupFn: func(ctx context.Context, input ports.SignupInput) (*ports.AuthPayload, error) {
			return nil, wantErr
		},
	}
	svc := NewSessionService(accounts, store, zerolog.Nop())

	_, err := svc.Signup(context.Background(), ports.SignupInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "username is required. email is invalid. password too short" {
		t.Fatalf("flattened message mismatch: %q", got)
	}
	if store.saves != 0 {
		t.Fatalf("no record may be persisted on failure, saves=%d", store.saves)
	}
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(&stubAccountsAPI{}, store, zerolog.Nop())

	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("anonymous logout: %v", err)
	}
	if store.deletes != 0 {
		t.Fatalf("anonymous logout must not hit the store")
	}

	store.records["sid"] = domain.Record{Token: "tok"}
	if err := svc.Logout(context.Background(), "sid"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.Logout(context.Background(), "sid"); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestSessionService_Bootstrap_ClearsCorruptRecord(t *testing.T) {
	store := newMemStore()
	store.corrupt["sid"] = true
	svc := NewSessionService(&stubAccountsAPI{}, store, zerolog.Nop())

	sess := svc.Bootstrap(context.Background(), "sid")
	if sess.Authenticated {
		t.Fatalf("corrupt record must yield the anonymous session")
	}
	if store.deletes != 1 {
		t.Fatalf("corrupt record must be dropped, deletes=%d", store.deletes)
	}
}

func TestSessionService_Bootstrap_DropsExpiredToken(t *testing.T) {
	store := newMemStore()
	store.records["sid"] = domain.Record{Token: signedToken(t, time.Now().Add(-time.Hour))}
	svc := NewSessionService(&stubAccountsAPI{}, store, zerolog.Nop())

	sess := svc.Bootstrap(context.Background(), "sid")
	if sess.Authenticated {
		t.Fatalf("expired token must yield the anonymous session")
	}
	if store.deletes != 1 {
		t.Fatalf("expired record must be dropped, deletes=%d", store.deletes)
	}
}

func TestSessionService_Bootstrap_OpaqueTokenPassesThrough(t *testing.T) {
	store := newMemStore()
	store.records["sid"] = domain.Record{Token: "not-a-jwt", User: domain.User{ID: "u1"}}
	svc := NewSessionService(&stubAccountsAPI{}, store, zerolog.Nop())

	sess := svc.Bootstrap(context.Background(), "sid")
	if !sess.Authenticated {
		t.Fatalf("opaque tokens are the backend's to reject, not ours")
	}
}

func TestSessionService_UpdateLocal_PersistsPatch(t *testing.T) {
	store := newMemStore()
	svc := NewSessionService(&stubAccountsAPI{}, store, zerolog.Nop())

	sess := &domain.Session{ID: "sid", Token: "tok", Authenticated: true, User: domain.User{ID: "u1"}}
	profileID := "p9"
	if err := svc.UpdateLocal(context.Background(), sess, domain.UserPatch{RoleProfileID: &profileID}); err != nil {
		t.Fatalf("update local: %v", err)
	}

	if sess.User.RoleProfileID != "p9" {
		t.Fatalf("in-memory session not patched: %+v", sess.User)
	}
	if store.records["sid"].User.RoleProfileID != "p9" {
		t.Fatalf("persisted record not patched: %+v", store.records["sid"])
	}
}
