package domain

import "time"

// Investment is a single investment record, owned by the backend.
type Investment struct {
	ID        string    `json:"_id"`
	Investor  Ref       `json:"investorId"`
	Startup   Ref       `json:"startupId"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Funding aggregates the investments received by a startup.
type Funding struct {
	TotalFunding float64      `json:"totalFunding"`
	Count        int          `json:"count"`
	Investments  []Investment `json:"investments,omitempty"`
}

// Portfolio aggregates the investments made by an investor.
type Portfolio struct {
	TotalInvested float64      `json:"totalInvested"`
	Investments   []Investment `json:"investments,omitempty"`
}
