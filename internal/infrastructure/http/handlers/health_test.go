package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func probeResult(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

func callReadiness(t *testing.T, h *HealthDependenciesHandler) (*httptest.ResponseRecorder, readinessResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	if err := h.Readiness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("readiness returned error: %v", err)
	}

	var res readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, res
}

func TestReadiness_AllDependenciesUp(t *testing.T) {
	h := &HealthDependenciesHandler{
		database: "cars-arena",
		checks: []dependencyCheck{
			{name: "mongodb", probe: probeResult(nil)},
			{name: "redis", probe: probeResult(nil)},
		},
	}

	rec, res := callReadiness(t, h)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if res.Status != "ok" || res.Database != "cars-arena" {
		t.Fatalf("unexpected response: %+v", res)
	}
	for _, name := range []string{"mongodb", "redis"} {
		if res.Dependencies[name].Status != "ok" {
			t.Fatalf("expected %s ok, got %+v", name, res.Dependencies[name])
		}
	}
}

func TestReadiness_DependencyDown(t *testing.T) {
	h := &HealthDependenciesHandler{
		database: "cars-arena",
		checks: []dependencyCheck{
			{name: "mongodb", probe: probeResult(nil)},
			{name: "redis", probe: probeResult(errors.New("connection refused"))},
		},
	}

	rec, res := callReadiness(t, h)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if res.Status != "degraded" {
		t.Fatalf("expected degraded, got %q", res.Status)
	}
	if res.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("healthy dependency misreported: %+v", res.Dependencies["mongodb"])
	}
	if dep := res.Dependencies["redis"]; dep.Status != "unhealthy" || dep.Error != "connection refused" {
		t.Fatalf("unexpected redis status: %+v", dep)
	}
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	if err := NewHealthHandler().Liveness(e.NewContext(req, rec)); err != nil {
		t.Fatalf("liveness returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
