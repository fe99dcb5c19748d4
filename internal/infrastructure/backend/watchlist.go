package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// WatchlistAPI implements ports.WatchlistAPI against /watchlist.
type WatchlistAPI struct {
	c *Client
}

func NewWatchlistAPI(c *Client) *WatchlistAPI {
	return &WatchlistAPI{c: c}
}

type watchlistAddPayload struct {
	InvestorID string `json:"investorId"`
	StartupID  string `json:"startupId"`
}

func (w *WatchlistAPI) Add(ctx context.Context, sess *domain.Session, investorID, startupID string) (*domain.WatchlistEntry, error) {
	var out domain.WatchlistEntry
	payload := watchlistAddPayload{InvestorID: investorID, StartupID: startupID}
	if err := w.c.do(ctx, sess, http.MethodPost, "/watchlist", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (w *WatchlistAPI) ListByInvestor(ctx context.Context, sess *domain.Session, investorID string) ([]domain.WatchlistItem, error) {
	var out []domain.WatchlistItem
	if err := w.c.do(ctx, sess, http.MethodGet, "/watchlist/investor/"+investorID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w *WatchlistAPI) Watchers(ctx context.Context, sess *domain.Session, startupID string) ([]domain.WatchlistEntry, error) {
	var out []domain.WatchlistEntry
	if err := w.c.do(ctx, sess, http.MethodGet, "/watchlist/startup/"+startupID+"/watchers", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (w *WatchlistAPI) CheckStatus(ctx context.Context, sess *domain.Session, investorID, startupID string) (domain.WatchStatus, error) {
	query := url.Values{
		"investorId": {investorID},
		"startupId":  {startupID},
	}
	var out domain.WatchStatus
	if err := w.c.do(ctx, sess, http.MethodGet, "/watchlist/check", query, nil, &out); err != nil {
		return domain.WatchStatus{}, err
	}
	return out, nil
}

func (w *WatchlistAPI) Remove(ctx context.Context, sess *domain.Session, entryID string) error {
	return w.c.do(ctx, sess, http.MethodDelete, "/watchlist/"+entryID, nil, nil, nil)
}
