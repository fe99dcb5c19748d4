package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// StartupProfileService implements ports.StartupProfileService. The
// profile is created on the first save and updated in place afterwards;
// the first save links the new profile id into the session.
type StartupProfileService struct {
	startups ports.StartupsAPI
	sessions ports.SessionService
	log      zerolog.Logger
}

func NewStartupProfileService(startups ports.StartupsAPI, sessions ports.SessionService, log zerolog.Logger) *StartupProfileService {
	return &StartupProfileService{startups: startups, sessions: sessions, log: log}
}

func (s *StartupProfileService) Current(ctx context.Context, sess *domain.Session) (*domain.StartupProfile, error) {
	if sess.User.RoleProfileID == "" {
		return nil, nil
	}
	profile, err := s.startups.Get(ctx, sess, sess.User.RoleProfileID)
	if domain.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *StartupProfileService) Save(ctx context.Context, sess *domain.Session, input ports.StartupProfileInput) (*domain.StartupProfile, bool, error) {
	if sess.User.RoleProfileID == "" {
		input.UserID = sess.User.ID
		profile, err := s.startups.Create(ctx, sess, input)
		if err != nil {
			return nil, false, err
		}
		if err := s.sessions.UpdateLocal(ctx, sess, domain.UserPatch{RoleProfileID: &profile.ID}); err != nil {
			// The profile exists; the link catches up on next login.
			s.log.Warn().Err(err).Str("profile_id", profile.ID).Msg("failed to link profile id into session")
		}
		return profile, true, nil
	}

	patch := ports.StartupPatch{
		StartupName:     &input.StartupName,
		FounderName:     &input.FounderName,
		Domain:          &input.Domain,
		FoundedYear:     &input.FoundedYear,
		Description:     &input.Description,
		InternsRequired: &input.InternsRequired,
	}
	profile, err := s.startups.Update(ctx, sess, sess.User.RoleProfileID, patch)
	if err != nil {
		return nil, false, err
	}
	return profile, false, nil
}

func (s *StartupProfileService) SavePlans(ctx context.Context, sess *domain.Session, plans string) error {
	if sess.User.RoleProfileID == "" {
		return domain.ErrProfileMissing
	}
	_, err := s.startups.Update(ctx, sess, sess.User.RoleProfileID, ports.StartupPatch{FuturePlans: &plans})
	return err
}

func (s *StartupProfileService) AddPitchIdea(ctx context.Context, sess *domain.Session, idea domain.PitchIdea) ([]domain.PitchIdea, error) {
	profile, err := s.Current(ctx, sess)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileMissing
	}

	idea.CreatedAt = time.Now().UTC()
	ideas := append(profile.PitchIdeas, idea)

	updated, err := s.startups.Update(ctx, sess, profile.ID, ports.StartupPatch{PitchIdeas: &ideas})
	if err != nil {
		return nil, err
	}
	return updated.PitchIdeas, nil
}
