package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/api/middleware"
	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware.
// Guarded routes always carry an authenticated session; the check here
// is a fast-fail for routes wired without the middleware.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return sess, nil
}
