package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const readinessTimeout = 3 * time.Second

// HealthHandler handles GET /health. Liveness only proves the process is up.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// dependencyCheck pings one backing store.
type dependencyCheck struct {
	name  string
	probe func(ctx context.Context) error
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Database     string                      `json:"database,omitempty"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// HealthDependenciesHandler handles GET /health/ready. The service is ready
// only when the user/order database answers a ping and the redis connection
// behind the payment-intent store is alive.
type HealthDependenciesHandler struct {
	database string
	checks   []dependencyCheck
}

func NewHealthDependenciesHandler(db *mongo.Database, rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{
		database: db.Name(),
		checks: []dependencyCheck{
			{name: "mongodb", probe: mongoProbe(db)},
			{name: "redis", probe: redisProbe(rdb)},
		},
	}
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	deps := make(map[string]dependencyStatus, len(h.checks))
	ready := true
	for _, dep := range h.checks {
		if err := dep.probe(ctx); err != nil {
			deps[dep.name] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			ready = false
			continue
		}
		deps[dep.name] = dependencyStatus{Status: "ok"}
	}

	res := readinessResponse{Status: "ok", Database: h.database, Dependencies: deps}
	if !ready {
		res.Status = "degraded"
		return c.JSON(http.StatusServiceUnavailable, res)
	}
	return c.JSON(http.StatusOK, res)
}

// mongoProbe pings the deployment and then the database itself, so a
// reachable cluster whose database is gone still reports unhealthy.
func mongoProbe(db *mongo.Database) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.Client().Ping(ctx, nil); err != nil {
			return err
		}
		return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	}
}

func redisProbe(rdb *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
