package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// InvestorsAPI implements ports.InvestorsAPI against /investors.
type InvestorsAPI struct {
	c *Client
}

func NewInvestorsAPI(c *Client) *InvestorsAPI {
	return &InvestorsAPI{c: c}
}

func (i *InvestorsAPI) Create(ctx context.Context, sess *domain.Session, input ports.InvestorProfileInput) (*domain.InvestorProfile, error) {
	var out domain.InvestorProfile
	if err := i.c.do(ctx, sess, http.MethodPost, "/investors", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *InvestorsAPI) List(ctx context.Context, sess *domain.Session, filter ports.InvestorFilter) ([]domain.InvestorProfile, error) {
	var query url.Values
	if filter.Email != "" {
		query = url.Values{"email": {filter.Email}}
	}
	var out []domain.InvestorProfile
	if err := i.c.do(ctx, sess, http.MethodGet, "/investors", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (i *InvestorsAPI) Get(ctx context.Context, sess *domain.Session, id string) (*domain.InvestorProfile, error) {
	var out domain.InvestorProfile
	if err := i.c.do(ctx, sess, http.MethodGet, "/investors/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *InvestorsAPI) Update(ctx context.Context, sess *domain.Session, id string, input ports.InvestorProfileInput) (*domain.InvestorProfile, error) {
	var out domain.InvestorProfile
	if err := i.c.do(ctx, sess, http.MethodPut, "/investors/"+id, nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *InvestorsAPI) Delete(ctx context.Context, sess *domain.Session, id string) error {
	return i.c.do(ctx, sess, http.MethodDelete, "/investors/"+id, nil, nil, nil)
}
