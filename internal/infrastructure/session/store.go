// Package session persists per-browser session records in Redis. It is
// the client-local storage of the gateway: one token + user record per
// session id, TTL-bounded, cleared on logout or forced invalidation.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Store implements ports.SessionStore on Redis.
// Key format: session:<sid>
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a Store with the given record TTL. A default of 24h is
// applied when none is provided.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, sid string, rec domain.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sid), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load returns the persisted record, (nil, nil) when none exists, or
// domain.ErrCorruptSession when the stored bytes fail to parse.
func (s *Store) Load(ctx context.Context, sid string) (*domain.Record, error) {
	raw, err := s.client.Get(ctx, s.key(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var rec domain.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, domain.ErrCorruptSession
	}
	return &rec, nil
}

func (s *Store) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Touch slides the record's expiry forward by the store TTL.
func (s *Store) Touch(ctx context.Context, sid string) error {
	if err := s.client.Expire(ctx, s.key(sid), s.ttl).Err(); err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (s *Store) key(sid string) string {
	return "session:" + sid
}
