package backend

import (
	"context"
	"net/http"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// StartupsAPI implements ports.StartupsAPI against /startups.
type StartupsAPI struct {
	c *Client
}

func NewStartupsAPI(c *Client) *StartupsAPI {
	return &StartupsAPI{c: c}
}

func (s *StartupsAPI) Create(ctx context.Context, sess *domain.Session, input ports.StartupProfileInput) (*domain.StartupProfile, error) {
	var out domain.StartupProfile
	if err := s.c.do(ctx, sess, http.MethodPost, "/startups", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StartupsAPI) List(ctx context.Context, sess *domain.Session) ([]domain.StartupProfile, error) {
	var out []domain.StartupProfile
	if err := s.c.do(ctx, sess, http.MethodGet, "/startups", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StartupsAPI) Get(ctx context.Context, sess *domain.Session, id string) (*domain.StartupProfile, error) {
	var out domain.StartupProfile
	if err := s.c.do(ctx, sess, http.MethodGet, "/startups/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StartupsAPI) Update(ctx context.Context, sess *domain.Session, id string, patch ports.StartupPatch) (*domain.StartupProfile, error) {
	var out domain.StartupProfile
	if err := s.c.do(ctx, sess, http.MethodPut, "/startups/"+id, nil, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StartupsAPI) Delete(ctx context.Context, sess *domain.Session, id string) error {
	return s.c.do(ctx, sess, http.MethodDelete, "/startups/"+id, nil, nil, nil)
}

func (s *StartupsAPI) AttachDocument(ctx context.Context, sess *domain.Session, id string, doc ports.AttachDocumentInput) ([]domain.DocumentRef, error) {
	var out []domain.DocumentRef
	if err := s.c.do(ctx, sess, http.MethodPost, "/startups/"+id+"/documents", nil, doc, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *StartupsAPI) RemoveDocument(ctx context.Context, sess *domain.Session, id, docID string) ([]domain.DocumentRef, error) {
	var out []domain.DocumentRef
	if err := s.c.do(ctx, sess, http.MethodDelete, "/startups/"+id+"/documents/"+docID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
