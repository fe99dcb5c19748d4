package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

type stubStartupsAPI struct {
	list      []domain.StartupProfile
	listCalls int
}

func (s *stubStartupsAPI) Create(ctx context.Context, sess *domain.Session, input ports.StartupProfileInput) (*domain.StartupProfile, error) {
	return nil, nil
}

func (s *stubStartupsAPI) List(ctx context.Context, sess *domain.Session) ([]domain.StartupProfile, error) {
	s.listCalls++
	return s.list, nil
}

func (s *stubStartupsAPI) Get(ctx context.Context, sess *domain.Session, id string) (*domain.StartupProfile, error) {
	for _, st := range s.list {
		if st.ID == id {
			return &st, nil
		}
	}
	return nil, domain.NewBackendError(404, "startup not found", nil)
}

func (s *stubStartupsAPI) Update(ctx context.Context, sess *domain.Session, id string, patch ports.StartupPatch) (*domain.StartupProfile, error) {
	return nil, nil
}

func (s *stubStartupsAPI) Delete(ctx context.Context, sess *domain.Session, id string) error {
	return nil
}

func (s *stubStartupsAPI) AttachDocument(ctx context.Context, sess *domain.Session, id string, doc ports.AttachDocumentInput) ([]domain.DocumentRef, error) {
	return nil, nil
}

func (s *stubStartupsAPI) RemoveDocument(ctx context.Context, sess *domain.Session, id, docID string) ([]domain.DocumentRef, error) {
	return nil, nil
}

func sampleStartups() []domain.StartupProfile {
	return []domain.StartupProfile{
		{ID: "1", StartupName: "GreenVolt", Description: "solar storage", Domain: "Energy"},
		{ID: "2", StartupName: "MediScan", Description: "diagnostics imaging", Domain: "Health"},
		{ID: "3", StartupName: "VoltWay", Description: "ev charging network", Domain: "Energy"},
		{ID: "4", StartupName: "AgriSense", Description: "soil analytics", Domain: "AgTech"},
	}
}

func TestFilterStartups_EmptyCriteriaReturnsSourceUnchanged(t *testing.T) {
	src := sampleStartups()
	got := FilterStartups(src, "", "")
	if &got[0] != &src[0] {
		t.Fatalf("empty criteria must return the source slice itself")
	}
}

func TestFilterStartups_TermMatchesNameOrDescription(t *testing.T) {
	got := FilterStartups(sampleStartups(), "volt", "")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected GreenVolt and VoltWay in order, got %+v", got)
	}

	got = FilterStartups(sampleStartups(), "CHARGING", "")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("description match is case-insensitive, got %+v", got)
	}
}

func TestFilterStartups_IntersectsTermAndDomain(t *testing.T) {
	got := FilterStartups(sampleStartups(), "volt", "energy")
	if len(got) != 2 {
		t.Fatalf("expected both energy volts, got %+v", got)
	}

	got = FilterStartups(sampleStartups(), "volt", "Health")
	if len(got) != 0 {
		t.Fatalf("no startup matches both criteria, got %+v", got)
	}
}

func TestFilterStartups_NoMatchYieldsEmptyNotNil(t *testing.T) {
	got := FilterStartups(sampleStartups(), "blockchain", "")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestDomains_DistinctFirstSeenOrder(t *testing.T) {
	got := Domains(sampleStartups())
	want := []string{"Energy", "Health", "AgTech"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBrowseService_CachesFullList(t *testing.T) {
	api := &stubStartupsAPI{list: sampleStartups()}
	svc := NewBrowseService(api, nil, zerolog.Nop())
	sess := investorSession()

	if _, err := svc.Browse(context.Background(), sess, "", ""); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if _, err := svc.Browse(context.Background(), sess, "volt", "Energy"); err != nil {
		t.Fatalf("browse: %v", err)
	}

	if api.listCalls != 1 {
		t.Fatalf("expected one backend list call, got %d", api.listCalls)
	}
}

func TestBrowseService_DetailToleratesMissingInvestorProfile(t *testing.T) {
	api := &stubStartupsAPI{list: sampleStartups()}
	watch := NewWatchlistService(&stubWatchlistAPI{}, &stubInvestorsAPI{}, zerolog.Nop())
	svc := NewBrowseService(api, watch, zerolog.Nop())

	sess := investorSession()
	sess.User.RoleProfileID = ""

	detail, err := svc.Detail(context.Background(), sess, "2")
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Startup.ID != "2" {
		t.Fatalf("wrong startup: %+v", detail.Startup)
	}
	if detail.Watch.Watchlisted {
		t.Fatalf("watch status should stay zero: %+v", detail.Watch)
	}
}
