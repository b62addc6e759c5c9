package main

import (
	"context"
	"fmt"

	"github.com/porchfest-map/internal/config"
	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/pkg/logger"
	"github.com/porchfest-map/internal/repository/geojson"
	"github.com/porchfest-map/internal/repository/statestore"
	"github.com/porchfest-map/internal/usecase"
	"go.uber.org/zap"
)

// app - общие для команд конфиг, логгер и датасет
type app struct {
	envPath  string
	logLevel string

	cfg *config.Config
	log *zap.Logger
}

func (a *app) init() error {
	if a.cfg != nil {
		return nil
	}

	cfg, err := config.LoadFile(a.envPath)
	if err != nil {
		return err
	}

	log, err := logger.New(a.logLevel, "mapctl")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	return nil
}

func (a *app) dataset(ctx context.Context) (*domain.Dataset, error) {
	if err := a.init(); err != nil {
		return nil, err
	}
	return usecase.LoadDataset(ctx, geojson.NewPointRepository(a.cfg.Dataset.Path, a.log), a.log), nil
}

// interactionStore открывает хранилище из STORE_DRIVER для одной сессии.
// Вызывающий закрывает backend.
func (a *app) interactionStore(sessionID string) (*usecase.InteractionStore, *statestore.Backend, error) {
	if err := a.init(); err != nil {
		return nil, nil, err
	}

	backend, err := statestore.Open(a.cfg, a.log)
	if err != nil {
		return nil, nil, err
	}
	return usecase.NewInteractionStore(backend.Repo, a.cfg.Store.Namespace, sessionID, a.log), backend, nil
}
