package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/metrics"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// MessageService implements ports.MessageService over the backend
// messages resource. Messages flow from investors to startups; the inbox
// is keyed by the session's role profile.
type MessageService struct {
	api ports.MessagesAPI
	log zerolog.Logger
}

func NewMessageService(api ports.MessagesAPI, log zerolog.Logger) *MessageService {
	return &MessageService{api: api, log: log}
}

func (s *MessageService) Inbox(ctx context.Context, sess *domain.Session) ([]domain.Message, error) {
	roleID := sess.User.RoleProfileID
	if roleID == "" {
		return nil, domain.ErrProfileMissing
	}

	switch sess.User.Role {
	case domain.RoleStartup:
		return s.api.ListByStartup(ctx, sess, roleID)
	case domain.RoleInvestor:
		return s.api.ListByInvestor(ctx, sess, roleID)
	}
	return []domain.Message{}, nil
}

func (s *MessageService) Contact(ctx context.Context, sess *domain.Session, startupID, subject, body string) (*domain.Message, error) {
	investorID := sess.User.RoleProfileID
	if investorID == "" {
		return nil, domain.ErrProfileMissing
	}

	msg, err := s.api.Send(ctx, sess, ports.SendMessagePayload{
		InvestorID: investorID,
		StartupID:  startupID,
		SenderRole: domain.RoleInvestor,
		Subject:    subject,
		Body:       body,
	})
	if err != nil {
		return nil, err
	}

	metrics.MessagesSentTotal.Inc()
	s.log.Info().Str("startup_id", startupID).Msg("message sent")
	return msg, nil
}

func (s *MessageService) Conversation(ctx context.Context, sess *domain.Session, startupID string) ([]domain.Message, error) {
	investorID := sess.User.RoleProfileID
	if investorID == "" {
		return nil, domain.ErrProfileMissing
	}
	return s.api.Conversation(ctx, sess, investorID, startupID)
}

func (s *MessageService) MarkRead(ctx context.Context, sess *domain.Session, id string) (*domain.Message, error) {
	return s.api.MarkRead(ctx, sess, id)
}

func (s *MessageService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	return s.api.Delete(ctx, sess, id)
}
