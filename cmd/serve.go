package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"task-track-service.com/task-track-service/internal/cache"
	config "task-track-service.com/task-track-service/internal/configs"
	httpapi "task-track-service.com/task-track-service/internal/http"
	repository "task-track-service.com/task-track-service/internal/repositories"
	"task-track-service.com/task-track-service/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the task HTTP API server",
	Long:  "Starts the task tracking HTTP API backed by the sqlite store",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return err
		}
		zap.ReplaceGlobals(logger)
		defer func() { _ = logger.Sync() }()

		if err := godotenv.Load(); err != nil {
			logger.Info(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)

		var taskCache cache.TaskCache = cache.NewNoopTaskCache()
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			taskCache = cache.NewRedisTaskCache(redisClient, cfg.CacheTTLSeconds)
		}

		taskService := services.NewTaskService(taskRepo, taskCache)

		e := echo.New()
		handler := httpapi.NewHandler(taskService)
		httpapi.Register(e, handler, cfg.RateLimit)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", zap.Error(err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
