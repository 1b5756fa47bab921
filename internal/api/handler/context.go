package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/carsarena/parts-store/internal/api/middleware"
	"github.com/carsarena/parts-store/internal/core/domain"
)

// ctxEmail extracts the verified identity email injected by the Auth
// middleware and fast-fails before any service call when it is absent —
// presence proves the gate actually ran on this route.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ContextEmailKey).(string)
	if email == "" {
		return "", domain.ErrMissingCredential
	}
	return email, nil
}
