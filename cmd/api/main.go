package main

// @title Porchfest Map API
// @version 1.0.0
// @description Сервис интерактивной карты выступлений фестиваля.
// @description
// @description Основные возможности:
// @description - Отдача набора точек (GeoJSON) и параметров карты
// @description - Фильтрация по названию, жанрам, текущему времени и закладкам
// @description - История посещенных точек и закладки, привязанные к сессии
// @description - Команды для рендерера карты (фильтр, состояние маркеров, перелет)

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/porchfest-map/docs"
	"github.com/porchfest-map/internal/config"
	httpDelivery "github.com/porchfest-map/internal/delivery/http"
	"github.com/porchfest-map/internal/delivery/http/handler"
	"github.com/porchfest-map/internal/pkg/logger"
	"github.com/porchfest-map/internal/repository/geojson"
	"github.com/porchfest-map/internal/repository/statestore"
	"github.com/porchfest-map/internal/usecase"
	"github.com/porchfest-map/internal/worker"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "porchfest-map")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Porchfest Map")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("store_driver", cfg.Store.Driver),
	)

	// 3. Load dataset (отсутствие файла не фатально, карта будет пустой)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dataset := usecase.LoadDataset(ctx, geojson.NewPointRepository(cfg.Dataset.Path, log), log)
	cancel()

	// 4. Open interaction state store
	store, err := statestore.Open(cfg, log)
	if err != nil {
		log.Fatal("Failed to open state store", zap.Error(err))
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Health(ctx); err != nil {
		log.Fatal("State store health check failed", zap.Error(err))
	}
	cancel()
	log.Info("State store opened", zap.String("driver", store.Driver))

	// 5. Initialize Use Cases
	mapUC := usecase.NewMapUseCase(dataset, cfg.Map, geojson.Encode, log)

	report := mapUC.ValidateDataset()
	if report.Errors > 0 || report.Warnings > 0 {
		log.Warn("Dataset has issues",
			zap.Int("errors", report.Errors),
			zap.Int("warnings", report.Warnings),
		)
	}

	sessions := usecase.NewSessionManager(
		dataset,
		store.Repo,
		usecase.SessionOptions{
			Namespace:   cfg.Store.Namespace,
			IdleTimeout: cfg.Session.IdleTimeout,
			FocusZoom:   cfg.Map.FocusZoom,
		},
		time.Now,
		log,
	)

	log.Info("Use cases initialized")

	// 6. Background workers
	workers := worker.NewWorkerManager(log)
	workers.Register(worker.NewPeriodicWorker("session-evictor", time.Minute, func(ctx context.Context) {
		sessions.Evict()
	}, log))
	if err := workers.Start(context.Background()); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 7. Initialize HTTP Handlers
	mapHandler := handler.NewMapHandler(mapUC, log)
	sessionHandler := handler.NewSessionHandler(sessions, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, store.Health, mapHandler, sessionHandler)

	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
		zap.Int("points", dataset.Len()),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workers.Stop(ctx); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	// Close state store
	if err := store.Close(); err != nil {
		log.Error("Failed to close state store", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
