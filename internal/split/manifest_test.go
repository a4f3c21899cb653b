// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/levelsplit/pkg/types"
)

func sampleResult() *Result {
	return &Result{
		InputPath:   "microban.txt",
		InputSHA256: "deadbeef",
		Pattern:     types.DefaultPattern,
		OutputDir:   "levels",
		Extension:   ".txt",
		Levels: []types.Level{
			{Index: 1, File: "1.txt", Bytes: 4, Lines: 2},
			{Index: 2, File: "2.txt", Bytes: 2, Lines: 1},
		},
	}
}

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")

	m := NewManifest(sampleResult())
	require.NoError(t, WriteManifest(m, path))

	got, err := ReadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, m.Input, got.Input)
	assert.Equal(t, m.Output, got.Output)
	assert.Equal(t, m.Levels, got.Levels)
	assert.Equal(t, m.Created, got.Created)
}

func TestNewManifest(t *testing.T) {
	m := NewManifest(sampleResult())

	assert.Equal(t, "microban.txt", m.Input.Path)
	assert.Equal(t, "deadbeef", m.Input.SHA256)
	assert.Equal(t, "levels", m.Output.Dir)
	assert.Equal(t, 2, m.Output.Count)
	assert.Len(t, m.Levels, 2)
	assert.NotEmpty(t, m.Created)
}

func TestWriteManifest_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stale: true\n"), 0o644))

	require.NoError(t, WriteManifest(NewManifest(sampleResult()), path))

	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "microban.txt", got.Input.Path)
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
