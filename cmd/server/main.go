package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/paksr/MiniProject-Shoseki/internal/app"
	"github.com/paksr/MiniProject-Shoseki/internal/config"
	"github.com/paksr/MiniProject-Shoseki/internal/db"
	"github.com/paksr/MiniProject-Shoseki/internal/logging"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog, err := logging.New(cfg.LogEngine, cfg.LogLevel, cfg.IsProduction)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if err := db.RunMigrations(cfg.DBDSN); err != nil {
		appLog.Error("failed to run migrations", logger.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		appLog.Error("failed to connect to db", logger.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	container, err := app.NewContainer(cfg, pool, appLog)
	if err != nil {
		appLog.Error("failed to wire application", logger.String("error", err.Error()))
		os.Exit(1)
	}

	// Background overdue sweeper, stopped by the same signal context.
	go container.Sweeper.Start(ctx)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	go func() {
		appLog.Info("server running", logger.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("server error", logger.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	appLog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLog.Error("server forced to shutdown", logger.String("error", err.Error()))
	}

	appLog.Info("server exited gracefully")
}
