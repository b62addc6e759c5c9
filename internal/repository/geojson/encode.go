package geojson

import (
	"encoding/json"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/porchfest-map/internal/domain"
)

// Encode собирает FeatureCollection для источника рендерера.
// id фичи совпадает с id точки, чтобы feature-state и фильтр по ["id"] работали.
func Encode(points []domain.PointRecord) ([]byte, error) {
	fc := make(geom.GeoJSONFeatureCollection, 0, len(points))
	for _, p := range points {
		pt := geom.NewPoint(geom.Coordinates{
			XY: geom.XY{X: p.Coordinates.Lon, Y: p.Coordinates.Lat},
		})

		genres := p.Genres
		if genres == nil {
			genres = []string{}
		}

		fc = append(fc, geom.GeoJSONFeature{
			Geometry: pt.AsGeometry(),
			ID:       p.ID,
			Properties: map[string]interface{}{
				"artist_name": p.DisplayName,
				"start_time":  p.TimeWindow.Start,
				"end_time":    p.TimeWindow.End,
				"genres":      genres,
				"location": eventLocation{
					Lat:            p.Coordinates.Lat,
					Long:           p.Coordinates.Lon,
					Address:        p.Location.Address,
					GoogleMapsLink: p.Location.Link,
				},
			},
		})
	}

	return json.Marshal(fc)
}
