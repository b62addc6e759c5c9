package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/porchfest-map/internal/domain/repository"
	"github.com/porchfest-map/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewStateRepositoryForTest создает хранилище состояния поверх тестовой базы
func NewStateRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.StateRepository {
	return postgres.NewStateRepository(postgres.NewDBForTest(db, logger))
}
