package dto

import "github.com/porchfest-map/internal/domain"

// FilterRequest - фильтры карты от клиента
type FilterRequest struct {
	SearchText           string   `json:"search_text" validate:"max=200"`
	Genres               []string `json:"genres" validate:"max=100,dive,max=100"`
	OnlyCurrentlyPlaying bool     `json:"only_currently_playing"`
	OnlyBookmarked       bool     `json:"only_bookmarked"`
}

// ToSelection преобразует запрос в выбор фильтров
func (r FilterRequest) ToSelection() domain.FilterSelection {
	return domain.FilterSelection{
		SearchText:           r.SearchText,
		Genres:               r.Genres,
		OnlyCurrentlyPlaying: r.OnlyCurrentlyPlaying,
		OnlyBookmarked:       r.OnlyBookmarked,
	}
}

// PointIDRequest - id точки из пути запроса
type PointIDRequest struct {
	ID int64 `validate:"min=0"`
}
