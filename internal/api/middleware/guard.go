package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Bhuvansai22/Statrtova-Frontend/internal/core/domain"
)

// RequireRole gates a route to authenticated users holding the given
// role. Anonymous visitors are redirected to the login page; users with
// the other role are redirected to their own dashboard.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(SessionKey).(*domain.Session)
			if sess == nil || !sess.Authenticated {
				return c.Redirect(http.StatusFound, "/login")
			}
			if sess.User.Role != role {
				return c.Redirect(http.StatusFound, sess.User.DashboardPath())
			}
			return next(c)
		}
	}
}

// RequireAuth gates a route to any authenticated user, regardless of
// role.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(SessionKey).(*domain.Session)
			if sess == nil || !sess.Authenticated {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// GuestOnly keeps authenticated users away from the login and signup
// pages by sending them to their dashboard.
func GuestOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(SessionKey).(*domain.Session)
			if sess != nil && sess.Authenticated {
				return c.Redirect(http.StatusFound, sess.User.DashboardPath())
			}
			return next(c)
		}
	}
}
