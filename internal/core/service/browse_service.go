package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

const startupListKey = "startups:all"

// BrowseService implements ports.BrowseService. The unfiltered startup
// list is cached briefly so that typing in the search box does not hammer
// the backend; filtering itself is always recomputed from the full list.
type BrowseService struct {
	startups ports.StartupsAPI
	watch    ports.WatchlistService
	cache    *cache.Cache
	log      zerolog.Logger
}

func NewBrowseService(startups ports.StartupsAPI, watch ports.WatchlistService, log zerolog.Logger) *BrowseService {
	return &BrowseService{
		startups: startups,
		watch:    watch,
		cache:    cache.New(30*time.Second, time.Minute),
		log:      log,
	}
}

func (s *BrowseService) Browse(ctx context.Context, sess *domain.Session, term, domainFilter string) (*ports.BrowseResult, error) {
	list, err := s.fullList(ctx, sess)
	if err != nil {
		return nil, err
	}
	return &ports.BrowseResult{
		Startups: FilterStartups(list, term, domainFilter),
		Domains:  Domains(list),
	}, nil
}

func (s *BrowseService) Detail(ctx context.Context, sess *domain.Session, startupID string) (*ports.StartupDetail, error) {
	startup, err := s.startups.Get(ctx, sess, startupID)
	if err != nil {
		return nil, err
	}

	detail := &ports.StartupDetail{Startup: *startup}

	// Watch status is advisory on this screen; a missing investor profile
	// just renders the toggle untouched.
	status, err := s.watch.Status(ctx, sess, startupID)
	if err == nil {
		detail.Watch = status
	} else if !errors.Is(err, domain.ErrProfileMissing) {
		s.log.Warn().Err(err).Str("startup_id", startupID).Msg("watch status lookup failed")
	}

	return detail, nil
}

func (s *BrowseService) fullList(ctx context.Context, sess *domain.Session) ([]domain.StartupProfile, error) {
	if x, found := s.cache.Get(startupListKey); found {
		return x.([]domain.StartupProfile), nil
	}
	list, err := s.startups.List(ctx, sess)
	if err != nil {
		return nil, err
	}
	s.cache.Set(startupListKey, list, cache.DefaultExpiration)
	return list, nil
}

// FilterStartups returns the members of src matching both predicates: a
// case-insensitive substring match of term against name or description,
// and an exact (case-insensitive) domain match. Empty criteria match
// everything; with both empty the source slice is returned unchanged.
// Order is preserved.
func FilterStartups(src []domain.StartupProfile, term, domainFilter string) []domain.StartupProfile {
	if term == "" && domainFilter == "" {
		return src
	}

	term = strings.ToLower(term)
	out := make([]domain.StartupProfile, 0, len(src))
	for _, st := range src {
		if term != "" &&
			!strings.Contains(strings.ToLower(st.StartupName), term) &&
			!strings.Contains(strings.ToLower(st.Description), term) {
			continue
		}
		if domainFilter != "" && !strings.EqualFold(st.Domain, domainFilter) {
			continue
		}
		out = append(out, st)
	}
	return out
}

// Domains returns the distinct domains of src in first-seen order.
func Domains(src []domain.StartupProfile) []string {
	seen := make(map[string]struct{}, len(src))
	out := make([]string, 0, len(src))
	for _, st := range src {
		if st.Domain == "" {
			continue
		}
		if _, ok := seen[st.Domain]; ok {
			continue
		}
		seen[st.Domain] = struct{}{}
		out = append(out, st.Domain)
	}
	return out
}
