package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// StartupProfileInput carries the company profile form.
type StartupProfileInput struct {
	UserID          string `json:"userId,omitempty"`
	StartupName     string `json:"startupName" validate:"required"`
	FounderName     string `json:"founderName" validate:"required"`
	Domain          string `json:"domain" validate:"required"`
	FoundedYear     int    `json:"foundedYear,omitempty"`
	Description     string `json:"description,omitempty"`
	InternsRequired bool   `json:"internsRequired"`
}

// StartupPatch is a partial update; nil fields are not sent.
type StartupPatch struct {
	StartupName     *string             `json:"startupName,omitempty"`
	FounderName     *string             `json:"founderName,omitempty"`
	Domain          *string             `json:"domain,omitempty"`
	FoundedYear     *int                `json:"foundedYear,omitempty"`
	Description     *string             `json:"description,omitempty"`
	FuturePlans     *string             `json:"futurePlans,omitempty"`
	InternsRequired *bool               `json:"internsRequired,omitempty"`
	PitchIdeas      *[]domain.PitchIdea `json:"pitchIdeas,omitempty"`
}

// AttachDocumentInput registers an uploaded file on a startup profile.
type AttachDocumentInput struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// StartupsAPI wraps the backend /startups endpoints.
type StartupsAPI interface {
	Create(ctx context.Context, sess *domain.Session, input StartupProfileInput) (*domain.StartupProfile, error)
	List(ctx context.Context, sess *domain.Session) ([]domain.StartupProfile, error)
	Get(ctx context.Context, sess *domain.Session, id string) (*domain.StartupProfile, error)
	Update(ctx context.Context, sess *domain.Session, id string, patch StartupPatch) (*domain.StartupProfile, error)
	Delete(ctx context.Context, sess *domain.Session, id string) error
	AttachDocument(ctx context.Context, sess *domain.Session, id string, doc AttachDocumentInput) ([]domain.DocumentRef, error)
	RemoveDocument(ctx context.Context, sess *domain.Session, id, docID string) ([]domain.DocumentRef, error)
}
