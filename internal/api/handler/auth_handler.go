package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

type AuthHandler struct {
	sessions   ports.SessionService
	cookieName string
	cookieTTL  time.Duration
}

func NewAuthHandler(sessions ports.SessionService, cookieName string, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookieName: cookieName, cookieTTL: cookieTTL}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User     domain.User `json:"user"`
	Redirect string      `json:"redirect"`
}

// Login authenticates against the backend and opens a browser session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setCookie(c, sess.ID)
	return c.JSON(http.StatusOK, authResponse{User: sess.User, Redirect: sess.User.DashboardPath()})
}

// Signup registers a new account and opens a session for it right away.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req ports.SignupInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sess, err := h.sessions.Signup(c.Request().Context(), req)
	if err != nil {
		return err
	}

	h.setCookie(c, sess.ID)
	return c.JSON(http.StatusCreated, authResponse{User: sess.User, Redirect: sess.User.DashboardPath()})
}

// Logout clears the session and its cookie. Idempotent.
func (h *AuthHandler) Logout(c echo.Context) error {
	sid := ""
	if cookie, err := c.Cookie(h.cookieName); err == nil {
		sid = cookie.Value
	}

	if err := h.sessions.Logout(c.Request().Context(), sid); err != nil {
		return err
	}

	h.clearCookie(c)
	return c.Redirect(http.StatusFound, "/login")
}

// Me reports the session's identity, for the page shell.
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	if !sess.Authenticated {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}
	return c.JSON(http.StatusOK, authResponse{User: sess.User, Redirect: sess.User.DashboardPath()})
}

func (h *AuthHandler) setCookie(c echo.Context, sid string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(h.cookieTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
