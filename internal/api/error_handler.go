package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carsarena/parts-store/internal/core/domain"
)

// messageResponse is the rejection envelope for all API errors. The key is
// "message" to stay wire-compatible with existing clients.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the gate taxonomy and known domain errors to deterministic codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Gate rejections keep the legacy wording and the 401/403 split:
	// 401 only when no credential was presented at all.
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return http.StatusUnauthorized, "unauthorized access"
	case errors.Is(err, domain.ErrInvalidCredential),
		errors.Is(err, domain.ErrInsufficientRole),
		errors.Is(err, domain.ErrOwnershipMismatch):
		return http.StatusForbidden, "forbidden access"
	}

	// Client and lookup errors.
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "malformed identifier"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "order not found"
	case errors.Is(err, domain.ErrPartNotFound):
		return http.StatusNotFound, "part not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	}

	// Unexpected error (storage loss, gateway failure): log the real cause,
	// return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
