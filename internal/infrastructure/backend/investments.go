package backend

import (
	"context"
	"net/http"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// InvestmentsAPI implements ports.InvestmentsAPI against /investments.
type InvestmentsAPI struct {
	c *Client
}

func NewInvestmentsAPI(c *Client) *InvestmentsAPI {
	return &InvestmentsAPI{c: c}
}

func (i *InvestmentsAPI) Invest(ctx context.Context, sess *domain.Session, input ports.InvestInput) (*domain.Investment, error) {
	var out domain.Investment
	if err := i.c.do(ctx, sess, http.MethodPost, "/investments/invest", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *InvestmentsAPI) InvestorProfile(ctx context.Context, sess *domain.Session, investorID string) (*domain.InvestorProfile, error) {
	var out domain.InvestorProfile
	if err := i.c.do(ctx, sess, http.MethodGet, "/investments/investor/"+investorID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *InvestmentsAPI) Portfolio(ctx context.Context, sess *domain.Session, investorID string) (*domain.Portfolio, error) {
	var out domain.Portfolio
	if err := i.c.do(ctx, sess, http.MethodGet, "/investments/investor/"+investorID+"/portfolio", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *InvestmentsAPI) Funding(ctx context.Context, sess *domain.Session, startupID string) (*domain.Funding, error) {
	var out domain.Funding
	if err := i.c.do(ctx, sess, http.MethodGet, "/investments/startup/"+startupID+"/funding", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *InvestmentsAPI) UpdateInvestorProfile(ctx context.Context, sess *domain.Session, investorID string, input ports.InvestorProfileInput) (*domain.InvestorProfile, error) {
	var out domain.InvestorProfile
	if err := i.c.do(ctx, sess, http.MethodPut, "/investments/investor/"+investorID, nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
