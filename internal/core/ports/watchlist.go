package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// WatchlistAPI wraps the backend /watchlist endpoints.
type WatchlistAPI interface {
	Add(ctx context.Context, sess *domain.Session, investorID, startupID string) (*domain.WatchlistEntry, error)
	ListByInvestor(ctx context.Context, sess *domain.Session, investorID string) ([]domain.WatchlistItem, error)
	Watchers(ctx context.Context, sess *domain.Session, startupID string) ([]domain.WatchlistEntry, error)
	CheckStatus(ctx context.Context, sess *domain.Session, investorID, startupID string) (domain.WatchStatus, error)
	Remove(ctx context.Context, sess *domain.Session, entryID string) error
}

// WatchlistService drives the investor's watchlist screen. The investor
// id is resolved from the session's role profile.
type WatchlistService interface {
	Status(ctx context.Context, sess *domain.Session, startupID string) (domain.WatchStatus, error)
	// Toggle flips the two-state watch status and returns the new state.
	Toggle(ctx context.Context, sess *domain.Session, startupID string) (domain.WatchStatus, error)
	List(ctx context.Context, sess *domain.Session) ([]domain.WatchlistItem, error)
	Remove(ctx context.Context, sess *domain.Session, entryID string) error
}
