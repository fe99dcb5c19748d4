package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// MessagesAPI implements ports.MessagesAPI against /messages.
type MessagesAPI struct {
	c *Client
}

func NewMessagesAPI(c *Client) *MessagesAPI {
	return &MessagesAPI{c: c}
}

func (m *MessagesAPI) Send(ctx context.Context, sess *domain.Session, payload ports.SendMessagePayload) (*domain.Message, error) {
	var out domain.Message
	if err := m.c.do(ctx, sess, http.MethodPost, "/messages", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *MessagesAPI) Conversation(ctx context.Context, sess *domain.Session, investorID, startupID string) ([]domain.Message, error) {
	query := url.Values{
		"investorId": {investorID},
		"startupId":  {startupID},
	}
	var out []domain.Message
	if err := m.c.do(ctx, sess, http.MethodGet, "/messages/conversation", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MessagesAPI) ListByStartup(ctx context.Context, sess *domain.Session, startupID string) ([]domain.Message, error) {
	var out []domain.Message
	if err := m.c.do(ctx, sess, http.MethodGet, "/messages/startup/"+startupID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MessagesAPI) ListByInvestor(ctx context.Context, sess *domain.Session, investorID string) ([]domain.Message, error) {
	var out []domain.Message
	if err := m.c.do(ctx, sess, http.MethodGet, "/messages/investor/"+investorID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (m *MessagesAPI) MarkRead(ctx context.Context, sess *domain.Session, id string) (*domain.Message, error) {
	var out domain.Message
	if err := m.c.do(ctx, sess, http.MethodPatch, "/messages/"+id+"/read", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *MessagesAPI) Delete(ctx context.Context, sess *domain.Session, id string) error {
	return m.c.do(ctx, sess, http.MethodDelete, "/messages/"+id, nil, nil, nil)
}
