package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carsarena/parts-store/internal/core/domain"
)

type stubOrderDirectory struct {
	owners map[string]string
}

func (d stubOrderDirectory) Owner(_ context.Context, id string) (string, error) {
	owner, ok := d.owners[id]
	if !ok {
		return "", domain.ErrOrderNotFound
	}
	return owner, nil
}

func ownershipContext(e *echo.Echo, target, tokenEmail string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextEmailKey, tokenEmail)
	return c
}

func TestOwnership_QueryMatch(t *testing.T) {
	e := echo.New()
	c := ownershipContext(e, "/user?email=a@x.com", "a@x.com")

	called := false
	handler := Ownership(OwnerFromQuery("email"))(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestOwnership_QueryMismatch(t *testing.T) {
	e := echo.New()
	c := ownershipContext(e, "/user?email=b@x.com", "a@x.com")

	handler := Ownership(OwnerFromQuery("email"))(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrOwnershipMismatch) {
		t.Fatalf("expected ErrOwnershipMismatch, got %v", err)
	}
}

func TestOwnership_RecordResolver(t *testing.T) {
	e := echo.New()
	dir := stubOrderDirectory{owners: map[string]string{"order1": "a@x.com"}}
	mw := Ownership(OwnerFromOrder(dir, "id"))

	run := func(tokenEmail string) error {
		req := httptest.NewRequest(http.MethodDelete, "/order/order1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("order1")
		c.Set(ContextEmailKey, tokenEmail)
		return mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
	}

	if err := run("a@x.com"); err != nil {
		t.Fatalf("owner should pass, got %v", err)
	}
	if err := run("b@x.com"); !errors.Is(err, domain.ErrOwnershipMismatch) {
		t.Fatalf("expected ErrOwnershipMismatch, got %v", err)
	}
}

func TestOwnership_ResolverErrorPropagates(t *testing.T) {
	e := echo.New()
	dir := stubOrderDirectory{owners: map[string]string{}}
	req := httptest.NewRequest(http.MethodDelete, "/order/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	c.Set(ContextEmailKey, "a@x.com")

	handler := Ownership(OwnerFromOrder(dir, "id"))(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
