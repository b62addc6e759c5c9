package domain

// Coordinates - географические координаты точки (порядок как в GeoJSON: lon, lat)
type Coordinates struct {
	Lon float64 `json:"lon" db:"lon"`
	Lat float64 `json:"lat" db:"lat"`
}

// IsZero - координаты не заполнены (геокодер вернул 0,0)
func (c Coordinates) IsZero() bool {
	return c.Lon == 0 && c.Lat == 0
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// Center возвращает центр bounding box
func (b BoundingBox) Center() Coordinates {
	return Coordinates{
		Lon: (b.MinLon + b.MaxLon) / 2,
		Lat: (b.MinLat + b.MaxLat) / 2,
	}
}

// extend расширяет bounding box до точки
func (b BoundingBox) extend(c Coordinates) BoundingBox {
	if c.Lat < b.MinLat {
		b.MinLat = c.Lat
	}
	if c.Lat > b.MaxLat {
		b.MaxLat = c.Lat
	}
	if c.Lon < b.MinLon {
		b.MinLon = c.Lon
	}
	if c.Lon > b.MaxLon {
		b.MaxLon = c.Lon
	}
	return b
}
