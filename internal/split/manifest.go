// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/levelsplit/pkg/types"
)

// Manifest is the on-disk record of a split run. A collection maintainer
// can check what a past run produced, and with which pattern, without
// re-running the split.
type Manifest struct {
	Input   ManifestInput  `yaml:"input"`
	Output  ManifestOutput `yaml:"output"`
	Levels  []types.Level  `yaml:"levels"`
	Created string         `yaml:"created"`
}

// ManifestInput records the collection file and how it was cut.
type ManifestInput struct {
	Path    string `yaml:"path"`
	SHA256  string `yaml:"sha256"`
	Pattern string `yaml:"pattern"`
}

// ManifestOutput records where the level files went.
type ManifestOutput struct {
	Dir       string `yaml:"dir"`
	Extension string `yaml:"extension"`
	Count     int    `yaml:"count"`
}

// NewManifest builds a manifest from a completed run.
func NewManifest(r *Result) Manifest {
	return Manifest{
		Input: ManifestInput{
			Path:    r.InputPath,
			SHA256:  r.InputSHA256,
			Pattern: r.Pattern,
		},
		Output: ManifestOutput{
			Dir:       r.OutputDir,
			Extension: r.Extension,
			Count:     len(r.Levels),
		},
		Levels:  r.Levels,
		Created: Timestamp(),
	}
}

// WriteManifest marshals m to YAML at path, truncating any existing file.
func WriteManifest(m Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest previously written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
