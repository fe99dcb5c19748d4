package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/ports"
)

// SessionKey is the echo context key under which the restored session is
// stored.
const SessionKey = "session"

// Session restores the browser session named by the cookie and injects
// it into the request context. A missing or unusable cookie yields the
// anonymous session; the request always proceeds.
func Session(sessions ports.SessionService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(cookieName); err == nil {
				sid = cookie.Value
			}

			sess := sessions.Bootstrap(c.Request().Context(), sid)
			c.Set(SessionKey, sess)

			return next(c)
		}
	}
}
