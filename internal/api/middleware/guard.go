// Package middleware holds the per-route access guards. Guards are applied
// explicitly to the routes they protect instead of as ordering-sensitive
// global middleware, so registration order can never gate or ungate a route
// by accident. Rejections surface as domain errors and are rendered by the
// central HTTP error handler.
package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/campusops/student-api/internal/api/session"
	"github.com/campusops/student-api/internal/core/domain"
)

// RequireAdmin rejects sessions whose bound account does not carry the admin
// role. The capability derives solely from the authenticated user; no
// endpoint can set it directly.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.Get(c).IsAdmin() {
				return domain.ErrNotAdmin
			}
			return next(c)
		}
	}
}

// RequireUser rejects sessions with no authenticated user bound.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !session.Get(c).Authenticated() {
				return domain.ErrNotAuthenticated
			}
			return next(c)
		}
	}
}
