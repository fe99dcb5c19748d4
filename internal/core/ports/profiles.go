package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// StartupProfileService drives the company profile, future plans and
// pitch idea screens. Profiles are created lazily on the first save and
// updated in place afterwards.
type StartupProfileService interface {
	// Current returns the session's startup profile, or (nil, nil) when
	// none has been created yet.
	Current(ctx context.Context, sess *domain.Session) (*domain.StartupProfile, error)
	// Save creates or updates the profile. created reports whether this
	// was the first save; a first save also merges the new profile id
	// into the session.
	Save(ctx context.Context, sess *domain.Session, input StartupProfileInput) (profile *domain.StartupProfile, created bool, err error)
	SavePlans(ctx context.Context, sess *domain.Session, plans string) error
	AddPitchIdea(ctx context.Context, sess *domain.Session, idea domain.PitchIdea) ([]domain.PitchIdea, error)
}

// InvestorProfileService drives the investor profile screen.
type InvestorProfileService interface {
	Current(ctx context.Context, sess *domain.Session) (*domain.InvestorProfile, error)
	Save(ctx context.Context, sess *domain.Session, input InvestorProfileInput) (profile *domain.InvestorProfile, created bool, err error)
}
