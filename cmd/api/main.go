package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carsarena/parts-store/internal/api"
	"github.com/carsarena/parts-store/internal/infrastructure/config"
	storemongo "github.com/carsarena/parts-store/internal/infrastructure/db/mongo"
	storeredis "github.com/carsarena/parts-store/internal/infrastructure/db/redis"
	"github.com/carsarena/parts-store/internal/infrastructure/payment"
	"github.com/carsarena/parts-store/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := storemongo.Connect(ctx, storemongo.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxAttempts: 5,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis ---
	rdb, err := storeredis.Connect(ctx, storeredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret: cfg.JWTSecret,
		Currency:  cfg.Stripe.Currency,
		Gateway:   payment.NewStripeClient(cfg.Stripe.SecretKey),
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := storemongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := storemongo.NewOrderRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return storemongo.NewReviewRepository(db).EnsureIndexes(ctx)
}
