package domain

import "strings"

// PointID - стабильный идентификатор точки на карте (id фичи в GeoJSON)
type PointID = int64

// TimeWindow - время выступления в unix-миллисекундах.
// Start <= End на этом уровне не проверяется.
type TimeWindow struct {
	Start int64 `json:"start_time"`
	End   int64 `json:"end_time"`
}

// Contains - попадает ли момент now в окно (границы включительно)
func (w TimeWindow) Contains(now int64) bool {
	return w.Start <= now && now <= w.End
}

// Location - адрес выступления
type Location struct {
	Address string `json:"address"`
	Link    string `json:"google_maps_link"`
}

// PointRecord - одно выступление на карте. Неизменяемо после загрузки.
type PointRecord struct {
	ID          PointID     `json:"id"`
	DisplayName string      `json:"artist_name"`
	TimeWindow  TimeWindow  `json:"time_window"`
	Genres      []string    `json:"genres"`
	Location    Location    `json:"location"`
	Coordinates Coordinates `json:"coordinates"`
}

// HasGenre - есть ли у точки тег (с учетом регистра)
func (p *PointRecord) HasGenre(genre string) bool {
	for _, g := range p.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// NameContains - регистронезависимый поиск подстроки в имени артиста
func (p *PointRecord) NameContains(text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.DisplayName), strings.ToLower(text))
}
