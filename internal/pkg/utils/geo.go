package utils

import (
	"math"

	"github.com/porchfest-map/internal/domain"
)

const earthRadiusKm = 6371.0

func toRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// DistanceKm - расстояние по большому кругу (формула гаверсинусов)
func DistanceKm(a, b domain.Coordinates) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// InRange - широта в [-90, 90], долгота в [-180, 180]
func InRange(c domain.Coordinates) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
