package backend

import (
	"context"
	"net/http"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// AccountsAPI implements ports.AccountsAPI against /auth.
type AccountsAPI struct {
	c *Client
}

func NewAccountsAPI(c *Client) *AccountsAPI {
	return &AccountsAPI{c: c}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *AccountsAPI) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthPayload, error) {
	var out ports.AuthPayload
	if err := a.c.do(ctx, nil, http.MethodPost, "/auth/signup", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AccountsAPI) Login(ctx context.Context, email, password string) (*ports.AuthPayload, error) {
	var out ports.AuthPayload
	if err := a.c.do(ctx, nil, http.MethodPost, "/auth/login", nil, loginPayload{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AccountsAPI) Profile(ctx context.Context, sess *domain.Session) (*ports.AuthPayload, error) {
	var out ports.AuthPayload
	if err := a.c.do(ctx, sess, http.MethodGet, profilePath, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
