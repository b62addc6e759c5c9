package repository

import (
	"context"

	"github.com/porchfest-map/internal/domain"
)

// PointRepository - источник точек для карты
type PointRepository interface {
	// LoadAll загружает все точки в порядке источника
	LoadAll(ctx context.Context) ([]domain.PointRecord, error)
}
