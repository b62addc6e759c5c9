package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepository(t *testing.T) {
	repo := NewStateRepository()
	ctx := context.Background()

	data, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)

	value := []byte(`{"visited":[1]}`)
	require.NoError(t, repo.Set(ctx, "k", value))
	value[0] = 'X'

	data, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"visited":[1]}`, string(data), "stored value must not alias the caller's slice")
	assert.Equal(t, 1, repo.Len())

	require.NoError(t, repo.Delete(ctx, "k"))
	assert.Equal(t, 0, repo.Len())
}
