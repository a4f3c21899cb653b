// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/levelsplit/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun() types.Run {
	return types.Run{
		InputPath:   "microban.txt",
		InputSHA256: "deadbeef",
		Pattern:     types.DefaultPattern,
		CreatedAt:   "2026-01-02T15:04:05Z",
		Levels: []types.Level{
			{Index: 1, File: "1.txt", Bytes: 10, Lines: 3},
			{Index: 2, File: "2.txt", Bytes: 6, Lines: 2},
		},
	}
}

func TestRecordAndGetRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.RecordRun(ctx, sampleRun())
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := store.GetRun(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, "microban.txt", got.InputPath)
	assert.Equal(t, "deadbeef", got.InputSHA256)
	assert.Equal(t, "2026-01-02T15:04:05Z", got.CreatedAt)
	require.Len(t, got.Levels, 2)
	assert.Equal(t, types.Level{Index: 1, File: "1.txt", Bytes: 10, Lines: 3}, got.Levels[0])
	assert.Equal(t, types.Level{Index: 2, File: "2.txt", Bytes: 6, Lines: 2}, got.Levels[1])
}

func TestGetRun_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetRun(context.Background(), 42)
	assert.ErrorContains(t, err, "not found")
}

func TestListRuns_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := sampleRun()
	second := sampleRun()
	second.InputPath = "sasquatch.txt"

	id1, err := store.RecordRun(ctx, first)
	require.NoError(t, err)
	id2, err := store.RecordRun(ctx, second)
	require.NoError(t, err)

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, id2, runs[0].ID)
	assert.Equal(t, "sasquatch.txt", runs[0].InputPath)
	assert.Equal(t, id1, runs[1].ID)
	// ListRuns omits level detail.
	assert.Empty(t, runs[0].Levels)
}

func TestListRuns_Empty(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestRecordRun_DefaultTimestamp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := sampleRun()
	run.CreatedAt = ""

	id, err := store.RecordRun(ctx, run)
	require.NoError(t, err)

	got, err := store.GetRun(ctx, id)
	require.NoError(t, err)
	assert.NotEmpty(t, got.CreatedAt)
}

func TestNewStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.CatalogConfig{Dir: dir}

	store, err := NewStore(cfg)
	require.NoError(t, err)
	id, err := store.RecordRun(context.Background(), sampleRun())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewStore(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetRun(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "microban.txt", got.InputPath)
}
