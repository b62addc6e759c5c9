package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRecord_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		visited    IDSet
		bookmarked IDSet
	}{
		{
			name:       "both empty",
			visited:    NewIDSet(),
			bookmarked: NewIDSet(),
		},
		{
			name:       "disjoint sets",
			visited:    NewIDSet(3, 1, 2),
			bookmarked: NewIDSet(10),
		},
		{
			name:       "overlapping sets",
			visited:    NewIDSet(5, 7),
			bookmarked: NewIDSet(7, 5, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeRecord(InteractionState{Visited: tt.visited, Bookmarked: tt.bookmarked})
			require.NoError(t, err)

			state, err := DecodeRecord(data)
			require.NoError(t, err)
			assert.True(t, tt.visited.Equal(state.Visited))
			assert.True(t, tt.bookmarked.Equal(state.Bookmarked))
		})
	}
}

func TestEncodeRecord_SortedAndVersioned(t *testing.T) {
	data, err := EncodeRecord(InteractionState{
		Visited:    NewIDSet(3, 1),
		Bookmarked: NewIDSet(2),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema":1,"bookmarked":[2],"visited":[1,3]}`, string(data))
}

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantErr        bool
		wantVisited    []PointID
		wantBookmarked []PointID
	}{
		{
			name:           "legacy record without schema",
			input:          `{"bookmarked":[4],"visited":[1,2]}`,
			wantVisited:    []PointID{1, 2},
			wantBookmarked: []PointID{4},
		},
		{
			name:           "null lists",
			input:          `{"schema":1,"bookmarked":null,"visited":null}`,
			wantVisited:    []PointID{},
			wantBookmarked: []PointID{},
		},
		{
			name:    "position string ids from the oldest format",
			input:   `{"bookmarked":["LngLat(-71.1, 42.3)"],"visited":[]}`,
			wantErr: true,
		},
		{
			name:    "future schema",
			input:   `{"schema":2,"bookmarked":[],"visited":[]}`,
			wantErr: true,
		},
		{
			name:    "unknown field",
			input:   `{"bookmarked":[],"visited":[],"favorites":[1]}`,
			wantErr: true,
		},
		{
			name:    "not json",
			input:   `{"bookmarked":[`,
			wantErr: true,
		},
		{
			name:    "array instead of object",
			input:   `[1,2,3]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := DecodeRecord([]byte(tt.input))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedRecord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVisited, state.Visited.Sorted())
			assert.Equal(t, tt.wantBookmarked, state.Bookmarked.Sorted())
		})
	}
}

func TestInteractionState_VisualState(t *testing.T) {
	state := InteractionState{
		Visited:    NewIDSet(1, 2),
		Bookmarked: NewIDSet(2, 3),
	}

	assert.Equal(t, VisualState{Visited: true}, state.VisualState(1))
	assert.Equal(t, VisualState{Visited: true, Bookmarked: true}, state.VisualState(2))
	assert.Equal(t, VisualState{Bookmarked: true}, state.VisualState(3))
	assert.Equal(t, VisualState{}, state.VisualState(4))
}

func TestInteractionState_CloneIsIndependent(t *testing.T) {
	state := InteractionState{Visited: NewIDSet(1), Bookmarked: NewIDSet(2)}
	clone := state.Clone()
	clone.Visited.Add(5)
	clone.Bookmarked.Remove(2)

	assert.False(t, state.Visited.Has(5))
	assert.True(t, state.Bookmarked.Has(2))
}
