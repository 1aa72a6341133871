package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aiforge/tasks-ms-go/internal/config"
	"github.com/aiforge/tasks-ms-go/internal/handler/api"
	"github.com/aiforge/tasks-ms-go/internal/logger"
	cMiddleware "github.com/aiforge/tasks-ms-go/internal/middleware"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/queue"
	"github.com/aiforge/tasks-ms-go/internal/status"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	q := queue.New(rdb)
	recorder := status.NewRecorder(rdb, cfg.StatusTTL)

	r := initRouter(ctx, cfg.JWTPublicKey)

	r.Post("/tasks", api.EnqueueTaskHandler(q, model.RecognizedTypes(), uuid.NewString))
	r.With(cMiddleware.WithTaskID()).
		Get("/tasks/{id}", api.GetTaskStatusHandler(recorder, q))
	r.Get("/healthz", api.HealthHandler(q))

	listenRouter(ctx, r, cfg, rdb)
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, rdb *redis.Client) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := rdb.Close(); err != nil {
		logger.Errorf(ctx, "Redis close error: %v", err)
		os.Exit(1)
	}
}
