package domain

// InvestorProfile mirrors the backend investor document. One per investor
// account, created lazily on the first save.
type InvestorProfile struct {
	ID               string   `json:"_id,omitempty"`
	UserID           string   `json:"userId,omitempty"`
	Name             string   `json:"name"`
	Phone            string   `json:"phone,omitempty"`
	Location         string   `json:"location,omitempty"`
	Bio              string   `json:"bio,omitempty"`
	Company          string   `json:"company,omitempty"`
	Designation      string   `json:"designation,omitempty"`
	LinkedinURL      string   `json:"linkedinUrl,omitempty"`
	InvestmentRange  string   `json:"investmentRange,omitempty"`
	MinInvestment    int64    `json:"minInvestment,omitempty"`
	MaxInvestment    int64    `json:"maxInvestment,omitempty"`
	PreferredDomains []string `json:"preferredDomains,omitempty"`
}
