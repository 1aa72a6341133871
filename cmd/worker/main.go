package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aiforge/tasks-ms-go/internal/config"
	"github.com/aiforge/tasks-ms-go/internal/dispatch"
	workerHandler "github.com/aiforge/tasks-ms-go/internal/handler/worker"
	"github.com/aiforge/tasks-ms-go/internal/inference"
	"github.com/aiforge/tasks-ms-go/internal/logger"
	"github.com/aiforge/tasks-ms-go/internal/mediaproc"
	"github.com/aiforge/tasks-ms-go/internal/model"
	"github.com/aiforge/tasks-ms-go/internal/port"
	"github.com/aiforge/tasks-ms-go/internal/queue"
	"github.com/aiforge/tasks-ms-go/internal/status"
	"github.com/aiforge/tasks-ms-go/internal/storage"
	"github.com/aiforge/tasks-ms-go/internal/worker"
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
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.Warnf(ctx, "Redis close error: %v", err)
		}
	}()

	q := queue.New(rdb)
	if err := q.Ping(ctx); err != nil {
		logger.Warnf(ctx, "⚠️  Redis not reachable yet: %v", err)
	}

	recorder := status.NewRecorder(rdb, cfg.StatusTTL)

	ai := inference.NewClient(cfg.InferenceURL, cfg.InferenceKey)
	if !ai.Configured() {
		logger.Warn(ctx, "⚠️  HF_API_URL or HF_API_KEY not set — inference tasks will fail until configured")
	}

	strg := initStorage(ctx, cfg)
	proc := mediaproc.NewProcessor(mediaproc.NewWebPEncoder())

	dispatcher := dispatch.NewDispatcher(recorder)
	dispatcher.Register(model.TypeVideoGeneration, workerHandler.VideoGenerationHandler(ai))
	dispatcher.Register(model.TypeVideoAnalysis, workerHandler.VideoAnalysisHandler(ai))
	dispatcher.Register(model.TypeDigitalHuman, workerHandler.DigitalHumanHandler(ai))
	dispatcher.Register(model.TypeVideoProcessing, workerHandler.VideoProcessingHandler(proc, strg, cfg.ResultsBucket))
	dispatcher.Register(model.TypeImageGeneration, workerHandler.ImageGenerationHandler(ai))

	runWorker(ctx, worker.New(q, dispatcher, cfg.PollInterval))
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	if cfg.MinioEndpoint == "" {
		logger.Warn(ctx, "⚠️  MinIO not configured — processed outputs stay on local disk")
		return nil
	}

	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	if err := strg.InitBucket(cfg.ResultsBucket); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.ResultsBucket, err)
		os.Exit(1)
	}

	return strg
}

func runWorker(ctx context.Context, w *worker.Worker) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		w.Run(runCtx)
		close(done)
	}()
	logger.Info(ctx, "🚀 Worker started")

	// block until we get SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	cancel()
	<-done
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
