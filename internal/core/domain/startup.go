package domain

import "time"

// PitchIdea is a titled free-text note appended to a startup profile.
type PitchIdea struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// DocumentRef points at a file stored by the backend. The client never
// holds file bytes, only the reference returned after upload.
type DocumentRef struct {
	ID         string    `json:"_id,omitempty"`
	Name       string    `json:"name"`
	Type       string    `json:"type,omitempty"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt,omitempty"`
}

// StartupProfile mirrors the backend startup document. One per startup
// account, created lazily on the first save.
type StartupProfile struct {
	ID                 string        `json:"_id,omitempty"`
	UserID             string        `json:"userId,omitempty"`
	StartupName        string        `json:"startupName"`
	FounderName        string        `json:"founderName"`
	Domain             string        `json:"domain"`
	FoundedYear        int           `json:"foundedYear,omitempty"`
	Description        string        `json:"description,omitempty"`
	FuturePlans        string        `json:"futurePlans,omitempty"`
	InternsRequired    bool          `json:"internsRequired"`
	PitchIdeas         []PitchIdea   `json:"pitchIdeas,omitempty"`
	FinancialDocuments []DocumentRef `json:"financialDocuments,omitempty"`
}
