package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/metrics"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// WatchlistService implements ports.WatchlistService. The toggle is a
// strict two-state flip: the check endpoint resolves the current state,
// and add/remove moves to the other one, recording or clearing the single
// outstanding entry id.
type WatchlistService struct {
	api       ports.WatchlistAPI
	investors ports.InvestorsAPI
	log       zerolog.Logger
}

func NewWatchlistService(api ports.WatchlistAPI, investors ports.InvestorsAPI, log zerolog.Logger) *WatchlistService {
	return &WatchlistService{api: api, investors: investors, log: log}
}

func (s *WatchlistService) Status(ctx context.Context, sess *domain.Session, startupID string) (domain.WatchStatus, error) {
	investorID, err := s.resolveInvestorID(ctx, sess)
	if err != nil {
		return domain.WatchStatus{}, err
	}
	return s.api.CheckStatus(ctx, sess, investorID, startupID)
}

func (s *WatchlistService) Toggle(ctx context.Context, sess *domain.Session, startupID string) (domain.WatchStatus, error) {
	investorID, err := s.resolveInvestorID(ctx, sess)
	if err != nil {
		return domain.WatchStatus{}, err
	}

	current, err := s.api.CheckStatus(ctx, sess, investorID, startupID)
	if err != nil {
		return domain.WatchStatus{}, err
	}

	if current.Watchlisted {
		if err := s.api.Remove(ctx, sess, current.EntryID); err != nil {
			return domain.WatchStatus{}, err
		}
		metrics.WatchlistTogglesTotal.WithLabelValues("remove").Inc()
		return domain.WatchStatus{}, nil
	}

	entry, err := s.api.Add(ctx, sess, investorID, startupID)
	if err != nil {
		return domain.WatchStatus{}, err
	}
	metrics.WatchlistTogglesTotal.WithLabelValues("add").Inc()
	return domain.WatchStatus{Watchlisted: true, EntryID: entry.ID}, nil
}

func (s *WatchlistService) List(ctx context.Context, sess *domain.Session) ([]domain.WatchlistItem, error) {
	investorID, err := s.resolveInvestorID(ctx, sess)
	if err != nil {
		return nil, err
	}
	return s.api.ListByInvestor(ctx, sess, investorID)
}

func (s *WatchlistService) Remove(ctx context.Context, sess *domain.Session, entryID string) error {
	return s.api.Remove(ctx, sess, entryID)
}

// resolveInvestorID prefers the role profile id carried by the session
// and falls back to an email lookup for sessions created before the
// profile id was linked.
func (s *WatchlistService) resolveInvestorID(ctx context.Context, sess *domain.Session) (string, error) {
	if sess.User.RoleProfileID != "" {
		return sess.User.RoleProfileID, nil
	}

	list, err := s.investors.List(ctx, sess, ports.InvestorFilter{Email: sess.User.Email})
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", domain.ErrProfileMissing
	}
	return list[0].ID, nil
}
