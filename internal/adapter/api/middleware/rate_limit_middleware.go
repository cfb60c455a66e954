package middleware

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/infrastructure/ratelimit"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
)

// RateLimitByUser throttles an action per authenticated user. Unauthenticated
// requests fall back to the client IP.
func RateLimitByUser(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key, ok := c.Get("uid").(string)
			if !ok || key == "" {
				key = c.RealIP()
			}

			allowed, wait := limiter.Allow(key, action)
			if !allowed {
				c.Response().Header().Set("Retry-After", wait.Round(1e9).String())
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded, slow down"))
			}

			return next(c)
		}
	}
}
