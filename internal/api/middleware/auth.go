package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carsarena/parts-store/internal/api/metrics"
	"github.com/carsarena/parts-store/internal/core/domain"
)

// ContextEmailKey is the echo context key under which Auth stores the
// verified identity email for downstream gates and handlers.
const ContextEmailKey = "email"

// TokenVerifier validates a bearer token and returns the embedded email.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Auth is the token verifier gate. A missing Authorization header rejects
// with 401; a present but unusable credential (bad scheme, bad signature,
// malformed, expired) rejects with 403. On success the verified email is
// injected into the context and the pipeline continues.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				return domain.ErrMissingCredential
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("malformed_header").Inc()
				return domain.ErrInvalidCredential
			}

			email, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return err
			}

			c.Set(ContextEmailKey, email)
			return next(c)
		}
	}
}
