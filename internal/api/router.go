package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/api/handler"
	"github.com/carsarena/parts-store/internal/api/middleware"
	"github.com/carsarena/parts-store/internal/core/ports"
	"github.com/carsarena/parts-store/internal/core/service"
	storemongo "github.com/carsarena/parts-store/internal/infrastructure/db/mongo"
	storeredis "github.com/carsarena/parts-store/internal/infrastructure/db/redis"
	"github.com/carsarena/parts-store/internal/infrastructure/http/handlers"
)

// Options carries the external collaborators and settings the router wires
// together.
type Options struct {
	JWTSecret string
	Currency  string
	Gateway   ports.PaymentGateway
	Logger    zerolog.Logger
}

// services groups the use-case layer handed to route registration.
type services struct {
	tokens  ports.TokenService
	users   ports.UserService
	parts   ports.PartService
	orders  ports.OrderService
	reviews ports.ReviewService
}

// NewRouter builds and returns the Echo instance with all routes registered
// behind their gate chains.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	userRepo := storemongo.NewUserRepository(db)
	partRepo := storemongo.NewPartRepository(db)
	orderRepo := storemongo.NewOrderRepository(db)
	reviewRepo := storemongo.NewReviewRepository(db)
	queryRepo := storemongo.NewQueryRepository(db)
	summaryRepo := storemongo.NewSummaryRepository(db)

	e := newEcho(services{
		tokens:  service.NewTokenService(opts.JWTSecret, 24*time.Hour),
		users:   service.NewUserService(userRepo, opts.Logger),
		parts:   service.NewPartService(partRepo, opts.Logger),
		orders:  service.NewOrderService(orderRepo, opts.Gateway, storeredis.NewIntentStore(rdb), opts.Currency, opts.Logger),
		reviews: service.NewReviewService(reviewRepo, queryRepo, summaryRepo, opts.Logger),
	}, opts.Logger)

	// Registered here rather than in newEcho: the prometheus middleware
	// binds collectors to the default registry, which must happen exactly
	// once per process.
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("carsarena"))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// newEcho registers every application route behind its gate chain.
func newEcho(s services, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	tokenHandler := handler.NewTokenHandler(s.tokens)
	userHandler := handler.NewUserHandler(s.users)
	partHandler := handler.NewPartHandler(s.parts)
	orderHandler := handler.NewOrderHandler(s.orders)
	reviewHandler := handler.NewReviewHandler(s.reviews)

	// --- Gates ---
	auth := middleware.Auth(s.tokens)
	adminOnly := middleware.AdminOnly(s.users)
	ownQueryEmail := middleware.Ownership(middleware.OwnerFromQuery("email"))
	ownOrderRecord := middleware.Ownership(middleware.OwnerFromOrder(s.orders, "id"))

	// --- Open routes ---
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Cars Arena Server Running!!!")
	})
	e.POST("/getToken", tokenHandler.Issue)
	e.GET("/summary", reviewHandler.Summary)
	e.GET("/parts", partHandler.List)
	e.GET("/parts/:id", partHandler.Get)
	e.GET("/reviews", reviewHandler.List)
	e.GET("/admin/:email", userHandler.AdminProbe)
	e.POST("/user", userHandler.Register)
	e.POST("/order", orderHandler.Place)
	e.POST("/review", reviewHandler.Add)
	e.POST("/query", reviewHandler.AddQuery)

	// --- Token-gated routes ---
	e.GET("/order/:id", orderHandler.Get, auth)
	e.POST("/create-payment-intent", orderHandler.CreatePaymentIntent, auth)
	e.PATCH("/order/:id", orderHandler.Pay, auth)
	e.PATCH("/updateParts/:id", partHandler.UpdateQuantity, auth)

	// --- Ownership-gated routes ---
	e.GET("/user", userHandler.Get, auth, ownQueryEmail)
	e.GET("/orders", orderHandler.ListMine, auth, ownQueryEmail)
	e.PATCH("/user", userHandler.UpdateProfile, auth, ownQueryEmail)
	e.DELETE("/order/:id", orderHandler.Delete, auth, ownOrderRecord)

	// --- Admin-gated routes ---
	e.GET("/users", userHandler.List, auth, adminOnly)
	e.GET("/allOrders", orderHandler.ListAll, auth, adminOnly)
	e.POST("/parts", partHandler.Create, auth, adminOnly)
	e.PATCH("/shipOrder/:id", orderHandler.Ship, auth, adminOnly)
	e.PATCH("/user/:id", userHandler.Promote, auth, adminOnly)
	e.DELETE("/part/:id", partHandler.Delete, auth, adminOnly)

	return e
}
