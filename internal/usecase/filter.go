package usecase

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/porchfest-map/internal/domain"
)

// BuildPredicate собирает предикат видимости: конъюнкция поиска по имени,
// жанров (любой из выбранных), окна "играет сейчас" и "только закладки".
// Функция чистая; bookmarked копируется, поэтому предикат не меняется вместе с сессией.
func BuildPredicate(sel domain.FilterSelection, bookmarked domain.IDSet, now time.Time) domain.Predicate {
	text := sel.SearchText
	genres := sel.GenreSet()
	nowMs := now.UnixMilli()
	onlyPlaying := sel.OnlyCurrentlyPlaying
	onlyBookmarked := sel.OnlyBookmarked

	var marks domain.IDSet
	if onlyBookmarked {
		marks = bookmarked.Clone()
	}

	return func(p *domain.PointRecord) bool {
		if !p.NameContains(text) {
			return false
		}
		if len(genres) > 0 && !hasAnyGenre(p, genres) {
			return false
		}
		if onlyPlaying && !p.TimeWindow.Contains(nowMs) {
			return false
		}
		if onlyBookmarked && !marks.Has(p.ID) {
			return false
		}
		return true
	}
}

func hasAnyGenre(p *domain.PointRecord, genres map[string]struct{}) bool {
	for _, g := range p.Genres {
		if _, ok := genres[g]; ok {
			return true
		}
	}
	return false
}

// BuildExpression - тот же фильтр в виде выражения стиля MapLibre.
// Пустой выбор дает ["all"], который пропускает все точки.
func BuildExpression(sel domain.FilterSelection, bookmarked domain.IDSet, now time.Time) domain.FilterExpression {
	expr := domain.FilterExpression{"all"}

	if sel.SearchText != "" {
		expr = append(expr, []interface{}{
			"in",
			strings.ToLower(sel.SearchText),
			[]interface{}{"downcase", []interface{}{"get", "artist_name"}},
		})
	}

	if genres := sel.Normalized().Genres; len(genres) > 0 {
		// Массив жанров сравнивается как строка JSON, поэтому жанр ищется
		// вместе с кавычками: "rock" не совпадает с "punk rock".
		anyGenre := []interface{}{"any"}
		for _, g := range genres {
			quoted, _ := json.Marshal(g)
			anyGenre = append(anyGenre, []interface{}{
				"in",
				string(quoted),
				[]interface{}{"to-string", []interface{}{"get", "genres"}},
			})
		}
		expr = append(expr, anyGenre)
	}

	if sel.OnlyCurrentlyPlaying {
		nowMs := now.UnixMilli()
		expr = append(expr,
			[]interface{}{"<=", []interface{}{"get", "start_time"}, nowMs},
			[]interface{}{">=", []interface{}{"get", "end_time"}, nowMs},
		)
	}

	if sel.OnlyBookmarked {
		ids := bookmarked.Sorted()
		literal := make([]interface{}, 0, len(ids))
		for _, id := range ids {
			literal = append(literal, id)
		}
		expr = append(expr, []interface{}{
			"in",
			[]interface{}{"id"},
			[]interface{}{"literal", literal},
		})
	}

	return expr
}

// FilterPoints возвращает подходящие точки в порядке датасета
func FilterPoints(dataset *domain.Dataset, pred domain.Predicate) []domain.PointRecord {
	out := make([]domain.PointRecord, 0)
	dataset.Each(func(p *domain.PointRecord) {
		if pred(p) {
			out = append(out, *p)
		}
	})
	return out
}

// VisibleIDs - id подходящих точек в порядке датасета
func VisibleIDs(dataset *domain.Dataset, pred domain.Predicate) []domain.PointID {
	out := make([]domain.PointID, 0)
	dataset.Each(func(p *domain.PointRecord) {
		if pred(p) {
			out = append(out, p.ID)
		}
	})
	return out
}
