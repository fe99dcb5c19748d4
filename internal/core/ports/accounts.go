package ports

import (
	"context"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// AuthPayload is the flat response of the backend auth endpoints.
type AuthPayload struct {
	Token         string `json:"token,omitempty"`
	ID            string `json:"_id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	RoleProfileID string `json:"roleDocumentId,omitempty"`
}

// SignupInput carries the signup form fields.
type SignupInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=startup investor"`
}

// AccountsAPI wraps the backend /auth endpoints.
type AccountsAPI interface {
	Signup(ctx context.Context, input SignupInput) (*AuthPayload, error)
	Login(ctx context.Context, email, password string) (*AuthPayload, error)
	Profile(ctx context.Context, sess *domain.Session) (*AuthPayload, error)
}
