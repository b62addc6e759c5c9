package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/repository/memory"
	"github.com/porchfest-map/internal/usecase"
)

func TestInteractionStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := usecase.NewInteractionStore(memory.NewStateRepository(), "porchfest-data", "s1", zap.NewNop())

	tests := []struct {
		name       string
		visited    domain.IDSet
		bookmarked domain.IDSet
	}{
		{"empty", domain.NewIDSet(), domain.NewIDSet()},
		{"visited only", domain.NewIDSet(3, 1, 2), domain.NewIDSet()},
		{"overlap", domain.NewIDSet(1, 2), domain.NewIDSet(2, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, store.Save(ctx, tt.visited, tt.bookmarked))

			state := store.Load(ctx)
			assert.True(t, tt.visited.Equal(state.Visited))
			assert.True(t, tt.bookmarked.Equal(state.Bookmarked))
		})
	}
}

func TestInteractionStore_PartialUpdatePreservesOtherSet(t *testing.T) {
	ctx := context.Background()
	store := usecase.NewInteractionStore(memory.NewStateRepository(), "porchfest-data", "s1", zap.NewNop())

	require.NoError(t, store.Save(ctx, domain.NewIDSet(1, 2), domain.NewIDSet(7, 8)))

	require.NoError(t, store.SaveVisited(ctx, domain.NewIDSet(5)))
	state := store.Load(ctx)
	assert.Equal(t, []domain.PointID{5}, state.Visited.Sorted())
	assert.Equal(t, []domain.PointID{7, 8}, state.Bookmarked.Sorted())

	require.NoError(t, store.SaveBookmarked(ctx, domain.NewIDSet()))
	state = store.Load(ctx)
	assert.Equal(t, []domain.PointID{5}, state.Visited.Sorted())
	assert.Empty(t, state.Bookmarked.Sorted())
}

func TestInteractionStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStateRepository()
	a := usecase.NewInteractionStore(repo, "porchfest-data", "a", zap.NewNop())
	b := usecase.NewInteractionStore(repo, "porchfest-data", "b", zap.NewNop())

	require.NoError(t, a.SaveVisited(ctx, domain.NewIDSet(1)))

	assert.Equal(t, "porchfest-data:a", a.Key())
	assert.Equal(t, 0, b.Load(ctx).Visited.Len())
}

func TestInteractionStore_LoadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	key := usecase.StateKey("porchfest-data", "s1")

	tests := []struct {
		name  string
		value interface{}
		err   error
	}{
		{"absent", nil, nil},
		{"storage unavailable", nil, errors.New("connection refused")},
		{"corrupt json", []byte(`{"visited":[1,`), nil},
		{"position string ids", []byte(`{"bookmarked":["LngLat(-71.1, 42.3)"],"visited":[]}`), nil},
		{"future schema", []byte(`{"schema":9,"bookmarked":[],"visited":[]}`), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockStateRepository{}
			repo.On("Get", ctx, key).Return(tt.value, tt.err)

			store := usecase.NewInteractionStore(repo, "porchfest-data", "s1", zap.NewNop())
			state := store.Load(ctx)

			assert.NotNil(t, state.Visited)
			assert.NotNil(t, state.Bookmarked)
			assert.Equal(t, 0, state.Visited.Len())
			assert.Equal(t, 0, state.Bookmarked.Len())
			repo.AssertExpectations(t)
		})
	}
}

func TestInteractionStore_SaveWritesSortedRecord(t *testing.T) {
	ctx := context.Background()
	key := usecase.StateKey("porchfest-data", "s1")

	repo := &MockStateRepository{}
	repo.On("Set", ctx, key, []byte(`{"schema":1,"bookmarked":[2],"visited":[1,3]}`)).Return(nil)

	store := usecase.NewInteractionStore(repo, "porchfest-data", "s1", zap.NewNop())
	require.NoError(t, store.Save(ctx, domain.NewIDSet(3, 1), domain.NewIDSet(2)))

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestInteractionStore_SaveError(t *testing.T) {
	ctx := context.Background()

	repo := &MockStateRepository{}
	repo.On("Set", ctx, mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

	store := usecase.NewInteractionStore(repo, "porchfest-data", "s1", zap.NewNop())
	err := store.Save(ctx, domain.NewIDSet(1), domain.NewIDSet())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestInteractionStore_Reset(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStateRepository()
	store := usecase.NewInteractionStore(repo, "porchfest-data", "s1", zap.NewNop())
	other := usecase.NewInteractionStore(repo, "porchfest-data", "s2", zap.NewNop())

	require.NoError(t, store.Save(ctx, domain.NewIDSet(1, 2), domain.NewIDSet(3)))
	require.NoError(t, other.Save(ctx, domain.NewIDSet(7), domain.NewIDSet()))
	require.Equal(t, 2, repo.Len())

	require.NoError(t, store.Reset(ctx))

	state := store.Load(ctx)
	assert.Empty(t, state.Visited)
	assert.Empty(t, state.Bookmarked)
	assert.Equal(t, 1, repo.Len())
	assert.True(t, domain.NewIDSet(7).Equal(other.Load(ctx).Visited))

	// повторный сброс отсутствующей записи не ошибка
	assert.NoError(t, store.Reset(ctx))
}

func TestInteractionStore_ResetError(t *testing.T) {
	ctx := context.Background()

	repo := &MockStateRepository{}
	repo.On("Delete", ctx, "porchfest-data:s1").Return(errors.New("connection refused"))

	store := usecase.NewInteractionStore(repo, "porchfest-data", "s1", zap.NewNop())
	err := store.Reset(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	repo.AssertExpectations(t)
}
