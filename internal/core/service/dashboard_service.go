package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// DashboardService implements ports.DashboardService. Blocks are fetched
// independently; any block other than the profile degrades to its zero
// value on failure instead of failing the screen. Auth failures always
// propagate.
type DashboardService struct {
	startups    ports.StartupsAPI
	investors   ports.InvestorsAPI
	watchlist   ports.WatchlistAPI
	messages    ports.MessagesAPI
	investments ports.InvestmentsAPI
	log         zerolog.Logger
}

func NewDashboardService(
	startups ports.StartupsAPI,
	investors ports.InvestorsAPI,
	watchlist ports.WatchlistAPI,
	messages ports.MessagesAPI,
	investments ports.InvestmentsAPI,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		startups:    startups,
		investors:   investors,
		watchlist:   watchlist,
		messages:    messages,
		investments: investments,
		log:         log,
	}
}

func (s *DashboardService) Startup(ctx context.Context, sess *domain.Session) (*ports.StartupDashboard, error) {
	dash := &ports.StartupDashboard{}

	id := sess.User.RoleProfileID
	if id == "" {
		// No profile yet; the screen prompts for creation.
		return dash, nil
	}

	profile, err := s.startups.Get(ctx, sess, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("dashboard: profile fetch failed")
	} else {
		dash.Profile = profile
	}

	if funding, err := s.investments.Funding(ctx, sess, id); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("dashboard: funding fetch failed")
	} else {
		dash.Funding = funding
	}

	if watchers, err := s.watchlist.Watchers(ctx, sess, id); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("dashboard: watchers fetch failed")
	} else {
		dash.Watchers = len(watchers)
	}

	if msgs, err := s.messages.ListByStartup(ctx, sess, id); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("dashboard: messages fetch failed")
	} else {
		for _, m := range msgs {
			if m.Status != domain.MessageRead {
				dash.UnreadMessages++
			}
		}
	}

	return dash, nil
}

func (s *DashboardService) Investor(ctx context.Context, sess *domain.Session) (*ports.InvestorDashboard, error) {
	dash := &ports.InvestorDashboard{Watchlist: []domain.WatchlistItem{}}

	id := sess.User.RoleProfileID
	if id == "" {
		return dash, nil
	}

	profile, err := s.investors.Get(ctx, sess, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("dashboard: profile fetch failed")
	} else {
		dash.Profile = profile
	}

	if portfolio, err := s.investments.Portfolio(ctx, sess, id); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("dashboard: portfolio fetch failed")
	} else {
		dash.Portfolio = portfolio
	}

	if items, err := s.watchlist.ListByInvestor(ctx, sess, id); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("dashboard: watchlist fetch failed")
	} else if items != nil {
		dash.Watchlist = items
	}

	return dash, nil
}
