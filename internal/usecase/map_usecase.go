package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/porchfest-map/internal/config"
	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/domain/repository"
	"github.com/porchfest-map/internal/pkg/errors"
	"github.com/porchfest-map/internal/pkg/utils"
	"github.com/porchfest-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// Коды проблем датасета
const (
	IssueDuplicateID        = "DUPLICATE_ID"
	IssueEmptyName          = "EMPTY_NAME"
	IssueInvalidTimeWindow  = "INVALID_TIME_WINDOW"
	IssueMissingCoordinates = "MISSING_COORDINATES"
	IssueInvalidCoordinates = "INVALID_COORDINATES"
	IssueFarFromCenter      = "FAR_FROM_CENTER"
)

// FeatureEncoder кодирует точки в GeoJSON для источника рендерера
type FeatureEncoder func(points []domain.PointRecord) ([]byte, error)

// LoadDataset загружает точки. Ошибка загрузки дает пустой датасет (пустую карту).
func LoadDataset(ctx context.Context, repo repository.PointRepository, logger *zap.Logger) *domain.Dataset {
	records, err := repo.LoadAll(ctx)
	if err != nil {
		logger.Error("Failed to load dataset, serving an empty map", zap.Error(err))
		return domain.EmptyDataset()
	}

	ds := domain.NewDataset(records)
	if dups := ds.Duplicates(); len(dups) > 0 {
		logger.Warn("Dataset contains duplicate ids, keeping first occurrence",
			zap.Int64s("ids", dups),
		)
	}
	return ds
}

// MapUseCase - данные карты, общие для всех сессий
type MapUseCase struct {
	dataset *domain.Dataset
	cfg     config.MapConfig
	encode  FeatureEncoder
	logger  *zap.Logger

	geoOnce sync.Once
	geoJSON []byte
	geoErr  error
}

// NewMapUseCase создает MapUseCase
func NewMapUseCase(
	dataset *domain.Dataset,
	cfg config.MapConfig,
	encode FeatureEncoder,
	logger *zap.Logger,
) *MapUseCase {
	return &MapUseCase{
		dataset: dataset,
		cfg:     cfg,
		encode:  encode,
		logger:  logger,
	}
}

// Config - параметры карты для клиента
func (uc *MapUseCase) Config() dto.MapConfigResponse {
	resp := dto.MapConfigResponse{
		Style:     uc.cfg.Style,
		APIKey:    uc.cfg.APIKey,
		Center:    domain.Coordinates{Lon: uc.cfg.CenterLon, Lat: uc.cfg.CenterLat},
		Zoom:      uc.cfg.Zoom,
		FocusZoom: uc.cfg.FocusZoom,
		Palette:   domain.DefaultPalette(),
		Points:    uc.dataset.Len(),
	}
	if box, ok := uc.dataset.Bounds(); ok {
		resp.Bounds = &box
	}
	return resp
}

// GeoJSON - датасет как FeatureCollection. Датасет неизменяем, результат кодируется один раз.
func (uc *MapUseCase) GeoJSON() ([]byte, error) {
	uc.geoOnce.Do(func() {
		uc.geoJSON, uc.geoErr = uc.encode(uc.dataset.Points())
		if uc.geoErr != nil {
			uc.logger.Error("Failed to encode dataset", zap.Error(uc.geoErr))
		}
	})
	if uc.geoErr != nil {
		return nil, errors.ErrInternalServer
	}
	return uc.geoJSON, nil
}

// Genres - варианты для фильтра жанров
func (uc *MapUseCase) Genres() dto.GenresResponse {
	genres := uc.dataset.AllGenres()
	return dto.GenresResponse{
		Genres: genres,
		Total:  len(genres),
	}
}

// GetPoint возвращает точку по id
func (uc *MapUseCase) GetPoint(id domain.PointID) (*domain.PointRecord, error) {
	p, ok := uc.dataset.Get(id)
	if !ok {
		return nil, errors.ErrPointNotFound.WithDetails(map[string]interface{}{
			"id": id,
		})
	}
	return &p, nil
}

// ValidateDataset проверяет датасет: повторы id, пустые имена, окна времени,
// координаты и удаленность от центра карты (промахи геокодера)
func (uc *MapUseCase) ValidateDataset() dto.ValidationReport {
	report := dto.ValidationReport{
		Points: uc.dataset.Len(),
		Issues: make([]dto.ValidationIssue, 0),
	}

	add := func(id domain.PointID, severity, code, message string) {
		report.Issues = append(report.Issues, dto.ValidationIssue{
			PointID:  id,
			Severity: severity,
			Code:     code,
			Message:  message,
		})
		if severity == dto.SeverityError {
			report.Errors++
		} else {
			report.Warnings++
		}
	}

	for _, id := range uc.dataset.Duplicates() {
		add(id, dto.SeverityError, IssueDuplicateID, "id is used by more than one record")
	}

	uc.dataset.Each(func(p *domain.PointRecord) {
		if p.DisplayName == "" {
			add(p.ID, dto.SeverityWarning, IssueEmptyName, "artist name is empty")
		}
		if p.TimeWindow.Start > p.TimeWindow.End {
			add(p.ID, dto.SeverityError, IssueInvalidTimeWindow,
				fmt.Sprintf("start_time %d is after end_time %d", p.TimeWindow.Start, p.TimeWindow.End))
		}

		c := p.Coordinates
		switch {
		case c.IsZero():
			add(p.ID, dto.SeverityError, IssueMissingCoordinates, "coordinates are 0,0")
		case !utils.InRange(c):
			add(p.ID, dto.SeverityError, IssueInvalidCoordinates,
				fmt.Sprintf("coordinates out of range: lat=%f lon=%f", c.Lat, c.Lon))
		case uc.cfg.MaxDistanceKm > 0:
			dist := utils.DistanceKm(domain.Coordinates{Lon: uc.cfg.CenterLon, Lat: uc.cfg.CenterLat}, c)
			if dist > uc.cfg.MaxDistanceKm {
				add(p.ID, dto.SeverityWarning, IssueFarFromCenter,
					fmt.Sprintf("%.1f km from map center (limit %.1f km)", dist, uc.cfg.MaxDistanceKm))
			}
		}
	})

	return report
}
