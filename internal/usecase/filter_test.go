package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/usecase"
)

func visible(t *testing.T, sel domain.FilterSelection, bookmarked domain.IDSet, nowMs int64) []domain.PointID {
	t.Helper()
	ds := domain.NewDataset(festivalPoints())
	pred := usecase.BuildPredicate(sel, bookmarked, time.UnixMilli(nowMs))
	return usecase.VisibleIDs(ds, pred)
}

func TestBuildPredicate(t *testing.T) {
	tests := []struct {
		name       string
		sel        domain.FilterSelection
		bookmarked domain.IDSet
		now        int64
		expected   []domain.PointID
	}{
		{
			name:     "empty selection shows everything",
			sel:      domain.FilterSelection{},
			expected: []domain.PointID{1, 2, 3, 4, 5},
		},
		{
			name:     "genre rock matches any point tagged rock",
			sel:      domain.FilterSelection{Genres: []string{"rock"}},
			expected: []domain.PointID{1, 3},
		},
		{
			name:     "several genres are OR-ed",
			sel:      domain.FilterSelection{Genres: []string{"jazz", "folk"}},
			expected: []domain.PointID{2, 3, 4},
		},
		{
			name:     "genres are case sensitive",
			sel:      domain.FilterSelection{Genres: []string{"Rock"}},
			expected: []domain.PointID{},
		},
		{
			name:     "search is a case-insensitive substring",
			sel:      domain.FilterSelection{SearchText: "CAT"},
			expected: []domain.PointID{2},
		},
		{
			name:     "currently playing uses the window",
			sel:      domain.FilterSelection{OnlyCurrentlyPlaying: true},
			now:      160,
			expected: []domain.PointID{1, 3},
		},
		{
			name:       "bookmarked only",
			sel:        domain.FilterSelection{OnlyBookmarked: true},
			bookmarked: domain.NewIDSet(2, 4),
			expected:   []domain.PointID{2, 4},
		},
		{
			name:       "bookmarked only with no bookmarks hides everything",
			sel:        domain.FilterSelection{OnlyBookmarked: true},
			bookmarked: nil,
			expected:   []domain.PointID{},
		},
		{
			name: "all clauses are a conjunction",
			sel: domain.FilterSelection{
				SearchText:           "f",
				Genres:               []string{"jazz", "folk"},
				OnlyCurrentlyPlaying: true,
				OnlyBookmarked:       true,
			},
			bookmarked: domain.NewIDSet(3, 4),
			now:        200,
			expected:   []domain.PointID{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, visible(t, tt.sel, tt.bookmarked, tt.now))
		})
	}
}

func TestBuildPredicate_CurrentlyPlayingBoundaries(t *testing.T) {
	point := domain.PointRecord{ID: 1, TimeWindow: domain.TimeWindow{Start: 100, End: 200}}
	sel := domain.FilterSelection{OnlyCurrentlyPlaying: true}

	tests := []struct {
		now      int64
		expected bool
	}{
		{99, false},
		{100, true},
		{200, true},
		{201, false},
	}

	for _, tt := range tests {
		pred := usecase.BuildPredicate(sel, nil, time.UnixMilli(tt.now))
		assert.Equal(t, tt.expected, pred(&point), "now=%d", tt.now)
	}
}

func TestBuildPredicate_IgnoresLaterBookmarkChanges(t *testing.T) {
	bookmarked := domain.NewIDSet(1)
	pred := usecase.BuildPredicate(domain.FilterSelection{OnlyBookmarked: true}, bookmarked, time.Now())

	bookmarked.Remove(1)

	assert.True(t, pred(&domain.PointRecord{ID: 1}))
}

func TestBuildExpression(t *testing.T) {
	t.Run("empty selection", func(t *testing.T) {
		expr := usecase.BuildExpression(domain.FilterSelection{}, nil, time.UnixMilli(0))
		assert.Equal(t, domain.FilterExpression{"all"}, expr)
	})

	t.Run("all clauses", func(t *testing.T) {
		sel := domain.FilterSelection{
			SearchText:           "Jazz",
			Genres:               []string{"rock", "jazz", "rock"},
			OnlyCurrentlyPlaying: true,
			OnlyBookmarked:       true,
		}
		expr := usecase.BuildExpression(sel, domain.NewIDSet(3, 1), time.UnixMilli(150))

		data, err := json.Marshal(expr)
		require.NoError(t, err)
		assert.JSONEq(t, `[
			"all",
			["in", "jazz", ["downcase", ["get", "artist_name"]]],
			["any",
				["in", "\"jazz\"", ["to-string", ["get", "genres"]]],
				["in", "\"rock\"", ["to-string", ["get", "genres"]]]
			],
			["<=", ["get", "start_time"], 150],
			[">=", ["get", "end_time"], 150],
			["in", ["id"], ["literal", [1, 3]]]
		]`, string(data))
	})

	t.Run("bookmarked only without bookmarks", func(t *testing.T) {
		expr := usecase.BuildExpression(domain.FilterSelection{OnlyBookmarked: true}, nil, time.UnixMilli(0))

		data, err := json.Marshal(expr)
		require.NoError(t, err)
		assert.JSONEq(t, `["all", ["in", ["id"], ["literal", []]]]`, string(data))
	})
}

func TestFilterPoints_KeepsDatasetOrder(t *testing.T) {
	ds := domain.NewDataset(festivalPoints())
	pred := usecase.BuildPredicate(domain.FilterSelection{Genres: []string{"jazz", "rock"}}, nil, time.Now())

	points := usecase.FilterPoints(ds, pred)
	require.Len(t, points, 3)
	assert.Equal(t, "The Rockers", points[0].DisplayName)
	assert.Equal(t, "Jazz Cats", points[1].DisplayName)
	assert.Equal(t, "Fusion Five", points[2].DisplayName)
}
