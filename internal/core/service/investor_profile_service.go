package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// InvestorProfileService implements ports.InvestorProfileService.
// Creation goes through the investors resource; subsequent edits go
// through the investments resource, which owns the investor's financial
// fields.
type InvestorProfileService struct {
	investors   ports.InvestorsAPI
	investments ports.InvestmentsAPI
	sessions    ports.SessionService
	log         zerolog.Logger
}

func NewInvestorProfileService(investors ports.InvestorsAPI, investments ports.InvestmentsAPI, sessions ports.SessionService, log zerolog.Logger) *InvestorProfileService {
	return &InvestorProfileService{investors: investors, investments: investments, sessions: sessions, log: log}
}

func (s *InvestorProfileService) Current(ctx context.Context, sess *domain.Session) (*domain.InvestorProfile, error) {
	if sess.User.RoleProfileID == "" {
		return nil, nil
	}
	profile, err := s.investors.Get(ctx, sess, sess.User.RoleProfileID)
	if domain.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *InvestorProfileService) Save(ctx context.Context, sess *domain.Session, input ports.InvestorProfileInput) (*domain.InvestorProfile, bool, error) {
	if sess.User.RoleProfileID == "" {
		input.UserID = sess.User.ID
		profile, err := s.investors.Create(ctx, sess, input)
		if err != nil {
			return nil, false, err
		}
		if err := s.sessions.UpdateLocal(ctx, sess, domain.UserPatch{RoleProfileID: &profile.ID}); err != nil {
			s.log.Warn().Err(err).Str("profile_id", profile.ID).Msg("failed to link profile id into session")
		}
		return profile, true, nil
	}

	profile, err := s.investments.UpdateInvestorProfile(ctx, sess, sess.User.RoleProfileID, input)
	if err != nil {
		return nil, false, err
	}
	return profile, false, nil
}
