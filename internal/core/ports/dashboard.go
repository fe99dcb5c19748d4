package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// StartupDashboard aggregates the startup landing screen.
type StartupDashboard struct {
	Profile        *domain.StartupProfile `json:"profile"`
	Funding        *domain.Funding        `json:"funding,omitempty"`
	Watchers       int                    `json:"watchers"`
	UnreadMessages int                    `json:"unreadMessages"`
}

// InvestorDashboard aggregates the investor landing screen.
type InvestorDashboard struct {
	Profile   *domain.InvestorProfile `json:"profile"`
	Portfolio *domain.Portfolio       `json:"portfolio,omitempty"`
	Watchlist []domain.WatchlistItem  `json:"watchlist"`
}

// DashboardService composes the per-role landing screens. Each block is
// fetched independently; a failing block degrades to its zero value
// rather than failing the whole screen.
type DashboardService interface {
	Startup(ctx context.Context, sess *domain.Session) (*StartupDashboard, error)
	Investor(ctx context.Context, sess *domain.Session) (*InvestorDashboard, error)
}
