package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// SessionStore persists one token + user record per browser session.
// Writes are synchronous; a successful Save means the record is durable.
type SessionStore interface {
	Save(ctx context.Context, sid string, rec domain.Record) error
	// Load returns (nil, nil) when no record exists and
	// domain.ErrCorruptSession when the stored record fails to parse.
	Load(ctx context.Context, sid string) (*domain.Record, error)
	Delete(ctx context.Context, sid string) error
	// Touch extends the record's lifetime without rewriting it.
	Touch(ctx context.Context, sid string) error
}

// SessionService owns the authentication state of a browser session.
type SessionService interface {
	// Bootstrap restores the session persisted under sid. A missing,
	// expired, or corrupt record yields the anonymous session; corruption
	// additionally clears the persisted record.
	Bootstrap(ctx context.Context, sid string) *domain.Session

	// Login and Signup authenticate against the backend and persist the
	// returned token with a normalized user record before returning. The
	// error carries a human-readable message; field-validation lists are
	// flattened into one joined message.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Signup(ctx context.Context, input SignupInput) (*domain.Session, error)

	// Logout clears the persisted record. Idempotent, no backend call.
	Logout(ctx context.Context, sid string) error

	// UpdateLocal merges identity fields into the in-memory and persisted
	// record without a network call.
	UpdateLocal(ctx context.Context, sess *domain.Session, patch domain.UserPatch) error
}
