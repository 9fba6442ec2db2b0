package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"covidhelp/internal/domain"
)

const identityKey = "identity"

// requireAuth resolves the session and redirects anonymous callers to the
// login entry point instead of rendering the protected view.
func (h *Handler) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := h.sessions.Current(c)
		if errors.Is(err, domain.ErrNotFound) {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		if err != nil {
			return storeFailure(c, err)
		}
		c.Set(identityKey, user)
		return next(c)
	}
}

func currentIdentity(c echo.Context) *domain.User {
	user, _ := c.Get(identityKey).(*domain.User)
	return user
}

// rateLimit guards the credential endpoints with a shared token bucket.
func rateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
