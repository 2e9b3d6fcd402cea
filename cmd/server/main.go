package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/prejoin/internal/config"
	"github.com/JonMunkholm/prejoin/internal/core"
	"github.com/JonMunkholm/prejoin/internal/database"
	"github.com/JonMunkholm/prejoin/internal/logging"
	"github.com/JonMunkholm/prejoin/internal/web"
)

func main() {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	if err := run(cfg); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(&cfg.Database); err != nil {
			return err
		}
	}

	pool, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	files, err := core.NewFileStore(cfg.Upload.Dir)
	if err != nil {
		return err
	}
	slog.Info("upload directory ready", "dir", files.Dir())

	opts := []core.Option{
		core.WithLimiter(core.NewSubmissionLimiter(cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime)),
	}
	if len(cfg.Validation.RequiredFields) > 0 {
		validator, err := core.RequireColumns(cfg.Validation.RequiredFields...)
		if err != nil {
			return err
		}
		opts = append(opts, core.WithValidator(validator))
		slog.Info("record validation enabled", "required", cfg.Validation.RequiredFields)
	}

	service := core.NewService(core.NewPostgresStore(pool), files, opts...)
	server := web.NewServer(service, database.NewReadinessChecker(pool), cfg)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if status := service.SubmissionStatus(); status.Active > 0 {
			slog.Info("waiting for submissions to complete", "active", status.Active)
			if err := service.WaitForSubmissions(shutdownCtx); err != nil {
				slog.Warn("submissions did not complete in time", "error", err)
			}
		}

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("open the onboarding form", "url", "http://localhost:"+strconv.Itoa(cfg.Server.Port)+"/form.html")
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-shutdownDone
	return nil
}
