package geojson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/domain/repository"
	"go.uber.org/zap"
)

// eventProperties - свойства выступления (как в выгрузке артистов)
type eventProperties struct {
	ArtistName string        `json:"artist_name"`
	StartTime  int64         `json:"start_time"`
	EndTime    int64         `json:"end_time"`
	Genres     []string      `json:"genres"`
	Location   eventLocation `json:"location"`
}

type eventLocation struct {
	Lat            float64 `json:"lat"`
	Long           float64 `json:"long"`
	Address        string  `json:"address"`
	GoogleMapsLink string  `json:"google_maps_link"`
}

type feature struct {
	Type       string          `json:"type"`
	ID         interface{}     `json:"id,omitempty"`
	Geometry   *geom.Point     `json:"geometry"`
	Properties eventProperties `json:"properties"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type pointRepository struct {
	path   string
	logger *zap.Logger
}

// NewPointRepository - источник точек из файла.
// Поддерживаются GeoJSON FeatureCollection и JSON-массив выступлений.
func NewPointRepository(path string, logger *zap.Logger) repository.PointRepository {
	return &pointRepository{
		path:   path,
		logger: logger,
	}
}

func (r *pointRepository) LoadAll(ctx context.Context) ([]domain.PointRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", r.path, err)
	}

	records, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", r.path, err)
	}

	r.logger.Info("Dataset loaded",
		zap.String("path", r.path),
		zap.Int("points", len(records)),
	)

	return records, nil
}

// Decode разбирает набор точек.
// id фичи берется из поля id, а при его отсутствии - порядковый номер.
func Decode(raw []byte) ([]domain.PointRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty dataset")
	}

	if trimmed[0] == '[' {
		var events []eventProperties
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, err
		}
		records := make([]domain.PointRecord, 0, len(events))
		for i, e := range events {
			records = append(records, toRecord(domain.PointID(i), e, nil))
		}
		return records, nil
	}

	var fc featureCollection
	if err := json.Unmarshal(trimmed, &fc); err != nil {
		return nil, err
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("unexpected GeoJSON type %q", fc.Type)
	}

	records := make([]domain.PointRecord, 0, len(fc.Features))
	for i, f := range fc.Features {
		id, err := featureID(f.ID, i)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}
		records = append(records, toRecord(id, f.Properties, f.Geometry))
	}

	return records, nil
}

// featureID - идентификатор точки; допустимы только целые >= 0,
// как и в HTTP-запросах (PointIDRequest)
func featureID(raw interface{}, index int) (domain.PointID, error) {
	switch v := raw.(type) {
	case nil:
		return domain.PointID(index), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("non-integer id %v", v)
		}
		if v < 0 {
			return 0, fmt.Errorf("negative id %v", v)
		}
		return domain.PointID(v), nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("non-integer id %q", v)
		}
		if id < 0 {
			return 0, fmt.Errorf("negative id %q", v)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("unsupported id %v", v)
	}
}

func toRecord(id domain.PointID, e eventProperties, geometry *geom.Point) domain.PointRecord {
	coords := domain.Coordinates{Lon: e.Location.Long, Lat: e.Location.Lat}
	if geometry != nil {
		if c, ok := geometry.Coordinates(); ok {
			coords = domain.Coordinates{Lon: c.XY.X, Lat: c.XY.Y}
		}
	}

	return domain.PointRecord{
		ID:          id,
		DisplayName: e.ArtistName,
		TimeWindow:  domain.TimeWindow{Start: e.StartTime, End: e.EndTime},
		Genres:      e.Genres,
		Location: domain.Location{
			Address: e.Location.Address,
			Link:    e.Location.GoogleMapsLink,
		},
		Coordinates: coords,
	}
}
