package middleware

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/carsarena/parts-store/internal/api/metrics"
	"github.com/carsarena/parts-store/internal/core/domain"
)

// RoleDirectory looks up the stored role for an email.
type RoleDirectory interface {
	RoleOf(ctx context.Context, email string) (string, error)
}

// AdminOnly is the role gate. It reads the caller's role fresh from the
// directory on every request — deliberately uncached, so a promotion or
// revocation is effective on the next request without reissuing the token.
// A missing user record counts as insufficient privilege, not a fault.
func AdminOnly(directory RoleDirectory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ContextEmailKey).(string)
			if email == "" {
				return domain.ErrMissingCredential
			}

			role, err := directory.RoleOf(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AdminChecksTotal.WithLabelValues("denied").Inc()
					return domain.ErrInsufficientRole
				}
				return err
			}

			if role != domain.RoleAdmin {
				metrics.AdminChecksTotal.WithLabelValues("denied").Inc()
				return domain.ErrInsufficientRole
			}

			metrics.AdminChecksTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
