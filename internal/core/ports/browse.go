package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// BrowseResult is the browse screen's view: the filtered list plus the
// distinct domains derived from the unfiltered list.
type BrowseResult struct {
	Startups []domain.StartupProfile `json:"startups"`
	Domains  []string                `json:"domains"`
}

// StartupDetail is the investor's view of a single startup, including the
// viewer's watchlist status.
type StartupDetail struct {
	Startup domain.StartupProfile `json:"startup"`
	Watch   domain.WatchStatus    `json:"watch"`
}

// BrowseService drives the investor browse and startup detail screens.
// Filtering is client-side: a case-insensitive substring match over name
// and description intersected with an exact domain match, both optional,
// order-preserving over the source list.
type BrowseService interface {
	Browse(ctx context.Context, sess *domain.Session, term, domainFilter string) (*BrowseResult, error)
	Detail(ctx context.Context, sess *domain.Session, startupID string) (*StartupDetail, error)
}
