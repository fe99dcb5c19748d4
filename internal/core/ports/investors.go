package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// InvestorProfileInput carries the investor profile form.
type InvestorProfileInput struct {
	UserID           string   `json:"userId,omitempty"`
	Name             string   `json:"name" validate:"required"`
	Phone            string   `json:"phone,omitempty"`
	Location         string   `json:"location,omitempty"`
	Bio              string   `json:"bio,omitempty"`
	Company          string   `json:"company,omitempty"`
	Designation      string   `json:"designation,omitempty"`
	LinkedinURL      string   `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	InvestmentRange  string   `json:"investmentRange,omitempty"`
	MinInvestment    int64    `json:"minInvestment,omitempty" validate:"omitempty,gt=0"`
	MaxInvestment    int64    `json:"maxInvestment,omitempty" validate:"omitempty,gtefield=MinInvestment"`
	PreferredDomains []string `json:"preferredDomains,omitempty"`
}

// InvestorFilter narrows the investor list endpoint.
type InvestorFilter struct {
	Email string
}

// InvestorsAPI wraps the backend /investors endpoints.
type InvestorsAPI interface {
	Create(ctx context.Context, sess *domain.Session, input InvestorProfileInput) (*domain.InvestorProfile, error)
	List(ctx context.Context, sess *domain.Session, filter InvestorFilter) ([]domain.InvestorProfile, error)
	Get(ctx context.Context, sess *domain.Session, id string) (*domain.InvestorProfile, error)
	Update(ctx context.Context, sess *domain.Session, id string, input InvestorProfileInput) (*domain.InvestorProfile, error)
	Delete(ctx context.Context, sess *domain.Session, id string) error
}
