// cmd/worker/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/dmartins/varejo-be/internal/adapters/db"
	"github.com/dmartins/varejo-be/internal/pkg/config"
	"github.com/dmartins/varejo-be/internal/pkg/logger"
	"github.com/dmartins/varejo-be/internal/workers"
)

func main() {
	slogger := logger.SetupLogger("info", "json")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("starting worker",
		slog.String("environment", cfg.App.Environment),
		slog.String("redis_addr", cfg.Asynq.RedisAddr))

	ctx := context.Background()
	database, err := initDatabase(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	productRepo := db.NewProductRepository(database, slogger)
	saleRepo := db.NewSaleRepository(database, slogger)
	predictionRepo := db.NewPredictionRepository(database, slogger)

	asynqRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Asynq.RedisAddr,
		Password: cfg.Asynq.RedisPassword,
		DB:       cfg.Asynq.RedisDB,
	}

	srv := asynq.NewServer(
		asynqRedisOpt,
		asynq.Config{
			Concurrency:     cfg.Asynq.Concurrency,
			Queues:          cfg.Asynq.Queues,
			StrictPriority:  cfg.Asynq.StrictPriority,
			ErrorHandler:    asynq.ErrorHandlerFunc(handleError),
			RetryDelayFunc:  exponentialBackoff,
			ShutdownTimeout: cfg.Asynq.ShutdownTimeout,
			HealthCheckFunc: healthCheck,
			Logger:          newAsynqLogger(slogger),
		},
	)

	mux := asynq.NewServeMux()

	forecastProcessor := workers.NewForecastProcessor(productRepo, saleRepo, predictionRepo, cfg, slogger)
	mux.HandleFunc(workers.TypePredictionPersist, forecastProcessor.PersistPrediction)
	mux.HandleFunc(workers.TypeForecastRefresh, forecastProcessor.RefreshForecasts)

	cleanupProcessor := workers.NewCleanupProcessor(predictionRepo, cfg, slogger)
	mux.HandleFunc(workers.TypePredictionsCleanup, cleanupProcessor.CleanupPredictions)

	// Periodic refresh and cleanup, driven from this process instead of
	// a separate asynq scheduler binary.
	asynqClient := asynq.NewClient(asynqRedisOpt)
	defer asynqClient.Close()
	enqueuer := workers.NewEnqueuer(asynqClient, slogger)

	schedulerCtx, stopScheduler := context.WithCancel(ctx)
	defer stopScheduler()
	go runScheduler(schedulerCtx, enqueuer, cfg, slogger)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Run(mux); err != nil {
			slogger.Error("failed to run worker server", slog.String("error", err.Error()))
			shutdown <- syscall.SIGTERM
		}
	}()

	slogger.Info("worker started successfully",
		slog.Int("concurrency", cfg.Asynq.Concurrency),
		slog.Any("queues", cfg.Asynq.Queues))

	sig := <-shutdown
	slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

	stopScheduler()
	srv.Shutdown()
	slogger.Info("worker shutdown complete")
}

// runScheduler enqueues the batch forecast refresh and prediction cleanup
// on the configured interval until ctx is canceled.
func runScheduler(ctx context.Context, enqueuer *workers.Enqueuer, cfg *config.Config, slogger *slog.Logger) {
	interval := cfg.Forecast.RefreshInterval
	if interval <= 0 {
		slogger.Warn("forecast refresh disabled", slog.Duration("interval", interval))
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slogger.Info("forecast scheduler started",
		slog.Duration("interval", interval),
		slog.Int("retention_days", cfg.Forecast.RetentionDays))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := enqueuer.EnqueueForecastRefresh(ctx, nil); err != nil {
				slogger.Error("failed to enqueue forecast refresh", slog.String("error", err.Error()))
			}
			if err := enqueuer.EnqueuePredictionsCleanup(ctx, cfg.Forecast.RetentionDays); err != nil {
				slogger.Error("failed to enqueue predictions cleanup", slog.String("error", err.Error()))
			}
		}
	}
}

func initDatabase(ctx context.Context, cfg *config.Config, slogger *slog.Logger) (*db.Database, error) {
	dbConfig := &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     10, // Fewer connections for worker
		MinConnections:     2,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}

	return db.NewDatabase(ctx, dbConfig, slogger)
}

func handleError(ctx context.Context, task *asynq.Task, err error) {
	slog.ErrorContext(ctx, "task processing failed",
		slog.String("type", task.Type()),
		slog.String("payload", string(task.Payload())),
		slog.String("error", err.Error()))
}

func exponentialBackoff(n int, e error, t *asynq.Task) time.Duration {
	baseDelay := time.Second
	maxDelay := 10 * time.Minute
	delay := baseDelay * time.Duration(1<<uint(n))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func healthCheck(err error) {
	if err != nil {
		slog.Error("worker health check failed", slog.String("error", err.Error()))
	}
}

// asynqLogger adapts slog for Asynq
type asynqLogger struct {
	logger *slog.Logger
}

func newAsynqLogger(logger *slog.Logger) *asynqLogger {
	return &asynqLogger{
		logger: logger.With(slog.String("component", "asynq")),
	}
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	os.Exit(1)
}
