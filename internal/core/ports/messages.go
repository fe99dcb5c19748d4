package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// SendMessagePayload is the wire shape of POST /messages.
type SendMessagePayload struct {
	InvestorID string `json:"investorId"`
	StartupID  string `json:"startupId"`
	SenderRole string `json:"senderRole"`
	Subject    string `json:"subject"`
	Body       string `json:"message"`
}

// MessagesAPI wraps the backend /messages endpoints.
type MessagesAPI interface {
	Send(ctx context.Context, sess *domain.Session, payload SendMessagePayload) (*domain.Message, error)
	Conversation(ctx context.Context, sess *domain.Session, investorID, startupID string) ([]domain.Message, error)
	ListByStartup(ctx context.Context, sess *domain.Session, startupID string) ([]domain.Message, error)
	ListByInvestor(ctx context.Context, sess *domain.Session, investorID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, sess *domain.Session, id string) (*domain.Message, error)
	Delete(ctx context.Context, sess *domain.Session, id string) error
}

// MessageService drives the shared inbox screen and the investor contact
// form.
type MessageService interface {
	// Inbox lists messages for the session's role profile.
	Inbox(ctx context.Context, sess *domain.Session) ([]domain.Message, error)
	// Contact sends an investor-to-startup message with subject and body.
	Contact(ctx context.Context, sess *domain.Session, startupID, subject, body string) (*domain.Message, error)
	Conversation(ctx context.Context, sess *domain.Session, startupID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, sess *domain.Session, id string) (*domain.Message, error)
	Delete(ctx context.Context, sess *domain.Session, id string) error
}
