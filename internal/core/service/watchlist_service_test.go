package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

type stubWatchlistAPI struct {
	status  domain.WatchStatus
	added   []string
	removed []string
}

func (s *stubWatchlistAPI) Add(ctx context.Context, sess *domain.Session, investorID, startupID string) (*domain.WatchlistEntry, error) {
	s.added = append(s.added, startupID)
	return &domain.WatchlistEntry{ID: "entry-1", InvestorID: investorID, StartupID: startupID}, nil
}

func (s *stubWatchlistAPI) ListByInvestor(ctx context.Context, sess *domain.Session, investorID string) ([]domain.WatchlistItem, error) {
	return nil, nil
}

func (s *stubWatchlistAPI) Watchers(ctx context.Context, sess *domain.Session, startupID string) ([]domain.WatchlistEntry, error) {
	return nil, nil
}

func (s *stubWatchlistAPI) CheckStatus(ctx context.Context, sess *domain.Session, investorID, startupID string) (domain.WatchStatus, error) {
	return s.status, nil
}

func (s *stubWatchlistAPI) Remove(ctx context.Context, sess *domain.Session, entryID string) error {
	s.removed = append(s.removed, entryID)
	return nil
}

type stubInvestorsAPI struct {
	list []domain.InvestorProfile
}

func (s *stubInvestorsAPI) Create(ctx context.Context, sess *domain.Session, input ports.InvestorProfileInput) (*domain.InvestorProfile, error) {
	return nil, nil
}

func (s *stubInvestorsAPI) List(ctx context.Context, sess *domain.Session, filter ports.InvestorFilter) ([]domain.InvestorProfile, error) {
	return s.list, nil
}

func (s *stubInvestorsAPI) Get(ctx context.Context, sess *domain.Session, id string) (*domain.InvestorProfile, error) {
	return nil, nil
}

func (s *stubInvestorsAPI) Update(ctx context.Context, sess *domain.Session, id string, input ports.InvestorProfileInput) (*domain.InvestorProfile, error) {
	return nil, nil
}

func (s *stubInvestorsAPI) Delete(ctx context.Context, sess *domain.Session, id string) error {
	return nil
}

func investorSession() *domain.Session {
	return &domain.Session{
		ID:            "sid",
		Token:         "tok",
		Authenticated: true,
		User:          domain.User{ID: "u1", Role: domain.RoleInvestor, RoleProfileID: "inv-1"},
	}
}

func TestWatchlistService_Toggle_AddsWhenUnwatched(t *testing.T) {
	api := &stubWatchlistAPI{status: domain.WatchStatus{}}
	svc := NewWatchlistService(api, &stubInvestorsAPI{}, zerolog.Nop())

	status, err := svc.Toggle(context.Background(), investorSession(), "st-1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !status.Watchlisted || status.EntryID != "entry-1" {
		t.Fatalf("expected watchlisted with entry id, got %+v", status)
	}
	if len(api.added) != 1 || len(api.removed) != 0 {
		t.Fatalf("expected one add, no removes: %+v", api)
	}
}

func TestWatchlistService_Toggle_RemovesWhenWatched(t *testing.T) {
	api := &stubWatchlistAPI{status: domain.WatchStatus{Watchlisted: true, EntryID: "entry-7"}}
	svc := NewWatchlistService(api, &stubInvestorsAPI{}, zerolog.Nop())

	status, err := svc.Toggle(context.Background(), investorSession(), "st-1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if status.Watchlisted || status.EntryID != "" {
		t.Fatalf("expected cleared status, got %+v", status)
	}
	if len(api.removed) != 1 || api.removed[0] != "entry-7" {
		t.Fatalf("expected the recorded entry removed: %+v", api.removed)
	}
	if len(api.added) != 0 {
		t.Fatalf("no add expected: %+v", api.added)
	}
}

func TestWatchlistService_ResolvesInvestorByEmailFallback(t *testing.T) {
	api := &stubWatchlistAPI{}
	investors := &stubInvestorsAPI{list: []domain.InvestorProfile{{ID: "inv-9"}}}
	svc := NewWatchlistService(api, investors, zerolog.Nop())

	sess := investorSession()
	sess.User.RoleProfileID = ""

	if _, err := svc.Status(context.Background(), sess, "st-1"); err != nil {
		t.Fatalf("status with fallback: %v", err)
	}
}

func TestWatchlistService_MissingProfile(t *testing.T) {
	svc := NewWatchlistService(&stubWatchlistAPI{}, &stubInvestorsAPI{}, zerolog.Nop())

	sess := investorSession()
	sess.User.RoleProfileID = ""

	_, err := svc.Toggle(context.Background(), sess, "st-1")
	if !errors.Is(err, domain.ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}
}
