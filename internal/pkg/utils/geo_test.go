package utils

import (
	"testing"

	"github.com/porchfest-map/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	davis := domain.Coordinates{Lat: 42.3967, Lon: -71.1223}
	union := domain.Coordinates{Lat: 42.3796, Lon: -71.0935}

	// Davis Square -> Union Square (Somerville), около 3 км
	assert.InDelta(t, 3.0, DistanceKm(davis, union), 0.3)
	assert.InDelta(t, DistanceKm(davis, union), DistanceKm(union, davis), 1e-9)
	assert.Equal(t, 0.0, DistanceKm(davis, davis))
}

func TestInRange(t *testing.T) {
	tests := []struct {
		c        domain.Coordinates
		expected bool
	}{
		{domain.Coordinates{Lat: 42.39, Lon: -71.10}, true},
		{domain.Coordinates{}, true},
		{domain.Coordinates{Lat: 91}, false},
		{domain.Coordinates{Lon: -181}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, InRange(tt.c), "%+v", tt.c)
	}
}
