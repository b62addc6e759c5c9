package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/porchfest-map/internal/domain"
)

// MockStateRepository is a mock of StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStateRepository) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStateRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockPointRepository is a mock of PointRepository
type MockPointRepository struct {
	mock.Mock
}

func (m *MockPointRepository) LoadAll(ctx context.Context) ([]domain.PointRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PointRecord), args.Error(1)
}

// fakeSurface - рендерер, который запоминает все вызовы
type fakeSurface struct {
	states  map[domain.PointID]domain.VisualState
	filter  domain.FilterExpression
	sets    []domain.PointID
	flights []domain.Coordinates
	zoom    float64
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{states: make(map[domain.PointID]domain.VisualState)}
}

func (s *fakeSurface) SetFilter(expr domain.FilterExpression) {
	s.filter = expr
}

func (s *fakeSurface) FeatureState(id domain.PointID) domain.VisualState {
	return s.states[id]
}

func (s *fakeSurface) SetFeatureState(id domain.PointID, state domain.VisualState) {
	s.states[id] = state
	s.sets = append(s.sets, id)
}

func (s *fakeSurface) FlyTo(center domain.Coordinates, zoom float64) {
	s.flights = append(s.flights, center)
	s.zoom = zoom
}

func (s *fakeSurface) resetCalls() {
	s.sets = nil
	s.flights = nil
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

// festivalPoints - 5 точек с жанрами {rock, jazz, rock+jazz, folk, без жанров}
func festivalPoints() []domain.PointRecord {
	return []domain.PointRecord{
		{ID: 1, DisplayName: "The Rockers", TimeWindow: domain.TimeWindow{Start: 100, End: 200}, Genres: []string{"rock"}, Coordinates: domain.Coordinates{Lon: -71.10, Lat: 42.39}},
		{ID: 2, DisplayName: "Jazz Cats", TimeWindow: domain.TimeWindow{Start: 300, End: 400}, Genres: []string{"jazz"}, Coordinates: domain.Coordinates{Lon: -71.11, Lat: 42.38}},
		{ID: 3, DisplayName: "Fusion Five", TimeWindow: domain.TimeWindow{Start: 150, End: 250}, Genres: []string{"rock", "jazz"}, Coordinates: domain.Coordinates{Lon: -71.12, Lat: 42.40}},
		{ID: 4, DisplayName: "Folk Duo", TimeWindow: domain.TimeWindow{Start: 0, End: 50}, Genres: []string{"folk"}, Coordinates: domain.Coordinates{Lon: -71.09, Lat: 42.37}},
		{ID: 5, DisplayName: "Mystery Band", TimeWindow: domain.TimeWindow{Start: 100, End: 100}, Genres: nil, Coordinates: domain.Coordinates{Lon: -71.13, Lat: 42.41}},
	}
}
