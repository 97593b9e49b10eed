package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"habittracker/backend/config"
	"habittracker/backend/routes"
	"habittracker/backend/scheduler"
	"habittracker/backend/services"
	"habittracker/backend/store"
	"habittracker/backend/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(cfg)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.EnvFileLoaded {
		logger.Info("no .env file found, using environment only")
	}

	// Initialize storage
	st, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("error initializing storage", zap.Error(err))
	}

	svc := services.New(st, cfg, nil, logger)

	reminders, err := scheduler.NewReminderScheduler(cfg.ReminderSchedule, svc.Reminders, logger)
	if err != nil {
		logger.Fatal("error scheduling reminders", zap.Error(err))
	}
	reminders.Start()

	app := routes.NewApp(cfg, svc, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.ServerPort),
			zap.String("storage", cfg.StorageDriver),
			zap.String("environment", cfg.Environment),
		)
		errCh <- app.Listen(":" + cfg.ServerPort)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("server stopped", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	reminders.Stop(ctx)
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := st.Close(); err != nil {
		logger.Error("storage close failed", zap.Error(err))
	}
	logger.Info("server exited")
}

func openStore(cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		return store.NewMemoryStore(), nil
	case "postgres":
		db, err := utils.InitDB(cfg, logger)
		if err != nil {
			return nil, err
		}
		gs := store.NewGormStore(db)
		if err := gs.Migrate(); err != nil {
			_ = gs.Close()
			return nil, err
		}
		return gs, nil
	}
	return nil, errors.New("unknown storage driver " + cfg.StorageDriver)
}
