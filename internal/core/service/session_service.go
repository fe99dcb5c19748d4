package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/metrics"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// SessionService implements ports.SessionService: login/signup against
// the backend, persistence through the session store, and restore on
// every request.
type SessionService struct {
	accounts ports.AccountsAPI
	store    ports.SessionStore
	log      zerolog.Logger
}

func NewSessionService(accounts ports.AccountsAPI, store ports.SessionStore, log zerolog.Logger) *SessionService {
	return &SessionService{accounts: accounts, store: store, log: log}
}

func (s *SessionService) Bootstrap(ctx context.Context, sid string) *domain.Session {
	anon := &domain.Session{}
	if sid == "" {
		return anon
	}

	rec, err := s.store.Load(ctx, sid)
	if errors.Is(err, domain.ErrCorruptSession) {
		// Corruption, not a retryable error: drop the record.
		_ = s.store.Delete(ctx, sid)
		metrics.SessionsInvalidatedTotal.WithLabelValues("corrupt").Inc()
		s.log.Warn().Str("sid", sid).Msg("cleared corrupt session record")
		return anon
	}
	if err != nil {
		s.log.Error().Err(err).Msg("session load failed")
		return anon
	}
	if rec == nil {
		return anon
	}

	if tokenExpired(rec.Token) {
		_ = s.store.Delete(ctx, sid)
		metrics.SessionsInvalidatedTotal.WithLabelValues("expired").Inc()
		return anon
	}

	_ = s.store.Touch(ctx, sid)
	return &domain.Session{ID: sid, Token: rec.Token, User: rec.User, Authenticated: true}
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	payload, err := s.accounts.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	sess, err := s.establish(ctx, payload)
	if err != nil {
		return nil, err
	}
	metrics.SessionsStartedTotal.WithLabelValues("login").Inc()
	s.log.Info().Str("user_id", sess.User.ID).Str("role", sess.User.Role).Msg("session established")
	return sess, nil
}

func (s *SessionService) Signup(ctx context.Context, input ports.SignupInput) (*domain.Session, error) {
	payload, err := s.accounts.Signup(ctx, input)
	if err != nil {
		return nil, err
	}
	sess, err := s.establish(ctx, payload)
	if err != nil {
		return nil, err
	}
	metrics.SessionsStartedTotal.WithLabelValues("signup").Inc()
	s.log.Info().Str("user_id", sess.User.ID).Str("role", sess.User.Role).Msg("account created")
	return sess, nil
}

func (s *SessionService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.store.Delete(ctx, sid)
}

func (s *SessionService) UpdateLocal(ctx context.Context, sess *domain.Session, patch domain.UserPatch) error {
	if !sess.Authenticated {
		return nil
	}
	patch.Apply(&sess.User)
	rec := domain.Record{Token: sess.Token, User: sess.User}
	if err := s.store.Save(ctx, sess.ID, rec); err != nil {
		return fmt.Errorf("persist session update: %w", err)
	}
	return nil
}

// establish normalizes the auth payload and writes the record through to
// the store before returning, so the session survives a reload.
func (s *SessionService) establish(ctx context.Context, payload *ports.AuthPayload) (*domain.Session, error) {
	user := domain.User{
		ID:            payload.ID,
		Username:      payload.Username,
		Email:         payload.Email,
		Role:          payload.Role,
		RoleProfileID: payload.RoleProfileID,
	}

	sid := newSessionID()
	if err := s.store.Save(ctx, sid, domain.Record{Token: payload.Token, User: user}); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return &domain.Session{ID: sid, Token: payload.Token, User: user, Authenticated: true}, nil
}

func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// fallback: time-derived id
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the backend's job. Opaque or claimless
// tokens pass through and the backend has the final say.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
