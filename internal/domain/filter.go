package domain

import "sort"

// FilterSelection - текущие фильтры пользователя. Живут только в памяти
// сессии и сбрасываются при перезагрузке страницы.
type FilterSelection struct {
	SearchText           string   `json:"search_text"`
	Genres               []string `json:"genres"`
	OnlyCurrentlyPlaying bool     `json:"only_currently_playing"`
	OnlyBookmarked       bool     `json:"only_bookmarked"`
}

// GenreSet возвращает выбранные жанры как множество (пустые строки игнорируются)
func (f FilterSelection) GenreSet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.Genres))
	for _, g := range f.Genres {
		if g == "" {
			continue
		}
		set[g] = struct{}{}
	}
	return set
}

// Normalized - копия с уникальными отсортированными жанрами
func (f FilterSelection) Normalized() FilterSelection {
	set := f.GenreSet()
	genres := make([]string, 0, len(set))
	for g := range set {
		genres = append(genres, g)
	}
	sort.Strings(genres)
	f.Genres = genres
	return f
}

// Predicate - видимость точки на карте
type Predicate func(p *PointRecord) bool

// FilterExpression - выражение фильтра в формате стиля MapLibre/MapTiler
// (["all", [...], ...]), вычисляется рендерером для каждой фичи
type FilterExpression []interface{}
