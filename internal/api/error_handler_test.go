package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carsarena/parts-store/internal/core/domain"
)

func TestHTTPErrorHandler_Taxonomy(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"missing credential", domain.ErrMissingCredential, http.StatusUnauthorized, "unauthorized access"},
		{"invalid credential", domain.ErrInvalidCredential, http.StatusForbidden, "forbidden access"},
		{"insufficient role", domain.ErrInsufficientRole, http.StatusForbidden, "forbidden access"},
		{"ownership mismatch", domain.ErrOwnershipMismatch, http.StatusForbidden, "forbidden access"},
		{"malformed id", domain.ErrInvalidID, http.StatusBadRequest, "malformed identifier"},
		{"wrapped transition", fmt.Errorf("%w (from shipped to paid)", domain.ErrInvalidTransition), http.StatusUnprocessableEntity, ""},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound, "order not found"},
		{"duplicate user", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot, "short and stout"},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}

	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handle(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var body messageResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body %q: %v", rec.Body.String(), err)
			}
			if tc.message != "" && body.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, body.Message)
			}
			if body.Message == "" {
				t.Fatal("empty message in rejection envelope")
			}
		})
	}
}
