package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/porchfest-map/internal/config"
	"github.com/porchfest-map/internal/domain"
	"github.com/porchfest-map/internal/repository/sqlite"
	"github.com/porchfest-map/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testDataset = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": 1, "geometry": {"type": "Point", "coordinates": [-71.10, 42.39]},
     "properties": {"artist_name": "The Rockers", "start_time": 1000, "end_time": 2000, "genres": ["rock"]}},
    {"type": "Feature", "id": 2, "geometry": {"type": "Point", "coordinates": [-71.11, 42.38]},
     "properties": {"artist_name": "Jazz Cats", "start_time": 3000, "end_time": 4000, "genres": ["jazz"]}},
    {"type": "Feature", "id": 3, "geometry": {"type": "Point", "coordinates": [-71.09, 42.40]},
     "properties": {"artist_name": "Fusion Five", "start_time": 1500, "end_time": 2500, "genres": ["rock", "folk"]}}
  ]
}`

const brokenDataset = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": 7, "geometry": {"type": "Point", "coordinates": [-71.10, 42.39]},
     "properties": {"artist_name": "", "start_time": 5000, "end_time": 1000, "genres": []}}
  ]
}`

type testEnv struct {
	envPath    string
	sqlitePath string
}

func setupEnv(t *testing.T, dataset string) testEnv {
	t.Helper()

	dir := t.TempDir()
	datasetPath := filepath.Join(dir, "events.geojson")
	require.NoError(t, os.WriteFile(datasetPath, []byte(dataset), 0o644))

	sqlitePath := filepath.Join(dir, "state.db")
	envPath := filepath.Join(dir, ".env")
	content := "DATASET_PATH=" + datasetPath + "\n" +
		"STORE_DRIVER=sqlite\n" +
		"SQLITE_PATH=" + sqlitePath + "\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o644))

	return testEnv{envPath: envPath, sqlitePath: sqlitePath}
}

func execute(t *testing.T, env testEnv, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--env", env.envPath}, args...))

	err := root.Execute()
	return out.String(), err
}

func seedRecord(t *testing.T, env testEnv, sessionID string, visited, bookmarked domain.IDSet) {
	t.Helper()

	db, err := sqlite.Open(&config.SQLiteConfig{Path: env.sqlitePath}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	store := usecase.NewInteractionStore(sqlite.NewStateRepository(db), "porchfest-data", sessionID, zap.NewNop())
	require.NoError(t, store.Save(context.Background(), visited, bookmarked))
}

func TestGenresCommand(t *testing.T) {
	env := setupEnv(t, testDataset)

	out, err := execute(t, env, "genres")
	require.NoError(t, err)
	assert.Equal(t, "folk\njazz\nrock\n", out)
}

func TestFilterCommand(t *testing.T) {
	env := setupEnv(t, testDataset)

	tests := []struct {
		name    string
		args    []string
		wantIDs []string
		total   string
	}{
		{
			name:    "no filters",
			args:    []string{"filter"},
			wantIDs: []string{"1", "2", "3"},
			total:   "3 of 3 points visible",
		},
		{
			name:    "genre",
			args:    []string{"filter", "--genre", "rock"},
			wantIDs: []string{"1", "3"},
			total:   "2 of 3 points visible",
		},
		{
			name:    "search text",
			args:    []string{"filter", "-q", "CATS"},
			wantIDs: []string{"2"},
			total:   "1 of 3 points visible",
		},
		{
			name:    "playing now",
			args:    []string{"filter", "--playing", "--now", "1970-01-01T00:00:01.8Z"},
			wantIDs: []string{"1", "3"},
			total:   "2 of 3 points visible",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, env, tt.args...)
			require.NoError(t, err)

			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, len(tt.wantIDs)+1)
			for i, id := range tt.wantIDs {
				assert.True(t, strings.HasPrefix(lines[i], id+"\t"), lines[i])
			}
			assert.Equal(t, tt.total, lines[len(lines)-1])
		})
	}
}

func TestFilterCommand_Bookmarked(t *testing.T) {
	env := setupEnv(t, testDataset)
	seedRecord(t, env, "cli-session", domain.NewIDSet(1), domain.NewIDSet(2))

	out, err := execute(t, env, "filter", "--bookmarked", "--session", "cli-session")
	require.NoError(t, err)
	assert.Contains(t, out, "2\tJazz Cats")
	assert.Contains(t, out, "1 of 3 points visible")

	_, err = execute(t, env, "filter", "--bookmarked")
	assert.Error(t, err)
}

func TestFilterCommand_Expression(t *testing.T) {
	env := setupEnv(t, testDataset)

	out, err := execute(t, env, "filter", "--expr", "--genre", "rock")
	require.NoError(t, err)
	assert.JSONEq(t,
		`["all",["any",["in","\"rock\"",["to-string",["get","genres"]]]]]`,
		strings.TrimSpace(out))
}

func TestFilterCommand_InvalidNow(t *testing.T) {
	env := setupEnv(t, testDataset)

	_, err := execute(t, env, "filter", "--playing", "--now", "yesterday")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	t.Run("clean dataset", func(t *testing.T) {
		env := setupEnv(t, testDataset)

		out, err := execute(t, env, "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "3 points, no issues found.")
	})

	t.Run("dataset with errors", func(t *testing.T) {
		env := setupEnv(t, brokenDataset)

		out, err := execute(t, env, "validate")
		require.Error(t, err)
		assert.Contains(t, out, "Errors (1):")
		assert.Contains(t, out, usecase.IssueInvalidTimeWindow)
		assert.Contains(t, out, "Warnings (1):")
		assert.Contains(t, out, usecase.IssueEmptyName)
	})
}

func TestStateCommands(t *testing.T) {
	env := setupEnv(t, testDataset)
	seedRecord(t, env, "cli-session", domain.NewIDSet(3, 1), domain.NewIDSet(2))

	out, err := execute(t, env, "state", "show", "--session", "cli-session")
	require.NoError(t, err)
	assert.Contains(t, out, "key: porchfest-data:cli-session")
	assert.Contains(t, out, "visited: [1 3]")
	assert.Contains(t, out, "bookmarked: [2]")

	out, err = execute(t, env, "state", "clear-visited", "--session", "cli-session")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared 2 visited points")

	out, err = execute(t, env, "state", "show", "--session", "cli-session")
	require.NoError(t, err)
	assert.Contains(t, out, "visited: []")
	assert.Contains(t, out, "bookmarked: [2]")
}

func TestStateCommand_Reset(t *testing.T) {
	env := setupEnv(t, testDataset)
	seedRecord(t, env, "cli-session", domain.NewIDSet(3, 1), domain.NewIDSet(2))
	seedRecord(t, env, "other-session", domain.NewIDSet(5), domain.NewIDSet())

	out, err := execute(t, env, "state", "reset", "--session", "cli-session")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted porchfest-data:cli-session")

	out, err = execute(t, env, "state", "show", "--session", "cli-session")
	require.NoError(t, err)
	assert.Contains(t, out, "visited: []")
	assert.Contains(t, out, "bookmarked: []")

	out, err = execute(t, env, "state", "show", "--session", "other-session")
	require.NoError(t, err)
	assert.Contains(t, out, "visited: [5]")
}

func TestStateCommand_RequiresSession(t *testing.T) {
	env := setupEnv(t, testDataset)

	_, err := execute(t, env, "state", "show")
	assert.Error(t, err)
}
