package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/porchfest-map/internal/domain/repository"
	"go.uber.org/zap"
)

type stateRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewStateRepository - хранилище состояния в локальном файле SQLite
func NewStateRepository(db *DB) repository.StateRepository {
	return &stateRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *stateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := r.db.GetContext(ctx, &payload, `SELECT payload FROM interaction_records WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get interaction record", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("get interaction record: %w", err)
	}

	return []byte(payload), nil
}

func (r *stateRepository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO interaction_records (key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, string(value)); err != nil {
		r.logger.Error("Failed to save interaction record", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("save interaction record: %w", err)
	}

	return nil
}

func (r *stateRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM interaction_records WHERE key = ?`, key); err != nil {
		r.logger.Error("Failed to delete interaction record", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("delete interaction record: %w", err)
	}

	return nil
}
