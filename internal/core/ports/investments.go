package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// InvestInput is the wire shape of POST /investments/invest.
type InvestInput struct {
	InvestorID string  `json:"investorId"`
	StartupID  string  `json:"startupId"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

// InvestmentsAPI wraps the backend /investments endpoints.
type InvestmentsAPI interface {
	Invest(ctx context.Context, sess *domain.Session, input InvestInput) (*domain.Investment, error)
	InvestorProfile(ctx context.Context, sess *domain.Session, investorID string) (*domain.InvestorProfile, error)
	Portfolio(ctx context.Context, sess *domain.Session, investorID string) (*domain.Portfolio, error)
	Funding(ctx context.Context, sess *domain.Session, startupID string) (*domain.Funding, error)
	UpdateInvestorProfile(ctx context.Context, sess *domain.Session, investorID string, input InvestorProfileInput) (*domain.InvestorProfile, error)
}
