package statestore

import (
	"context"
	"fmt"

	"github.com/porchfest-map/internal/config"
	"github.com/porchfest-map/internal/domain/repository"
	"github.com/porchfest-map/internal/repository/cache"
	"github.com/porchfest-map/internal/repository/memory"
	"github.com/porchfest-map/internal/repository/postgres"
	"github.com/porchfest-map/internal/repository/sqlite"
	"go.uber.org/zap"
)

// Backend - открытое хранилище состояния вместе с его соединением
type Backend struct {
	Driver string
	Repo   repository.StateRepository

	close  func() error
	health func(ctx context.Context) error
}

// Close освобождает соединение
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Health проверяет доступность хранилища. У memory всегда nil.
func (b *Backend) Health(ctx context.Context) error {
	if b.health == nil {
		return nil
	}
	return b.health(ctx)
}

// Open создает хранилище состояния по STORE_DRIVER
func Open(cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	driver := cfg.Store.Driver

	switch driver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory state store, interaction history is lost on restart")
		return &Backend{Driver: driver, Repo: memory.NewStateRepository()}, nil

	case config.StoreDriverRedis:
		conn, err := cache.NewRedis(&cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver: driver,
			Repo:   cache.NewStateRepository(conn, cfg.Store.TTL),
			close:  conn.Close,
			health: conn.Health,
		}, nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(&cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver: driver,
			Repo:   postgres.NewStateRepository(db),
			close:  db.Close,
			health: db.Health,
		}, nil

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(&cfg.SQLite, logger)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver: driver,
			Repo:   sqlite.NewStateRepository(db),
			close:  db.Close,
			health: db.Health,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}
