// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultPattern matches a delimiter line: optional horizontal whitespace,
// a semicolon, the rest of the line, and the terminating newline. The
// newline is consumed so it lands in neither adjacent level.
const DefaultPattern = `(?m)^[ \t]*;[^\n]*\n?`

// SplitConfig holds settings for the split stage.
type SplitConfig struct {
	// Input is the path to the concatenated collection file.
	Input string `json:"input" yaml:"input"`

	// OutputDir is the directory that receives the numbered level files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Pattern is the delimiter-line regular expression. Each match is
	// consumed by the split and appears in no output file.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Extension is appended to the 1-based level index to form the
	// output filename (e.g. ".txt" gives "1.txt", "2.txt", ...).
	Extension string `json:"extension" yaml:"extension"`
}

// CatalogConfig holds settings for the split-run catalog.
type CatalogConfig struct {
	// Dir is the directory containing the catalog database.
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups all levelsplit configuration.
type Config struct {
	Split   SplitConfig   `json:"split" yaml:"split"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}

// DefaultConfig returns the configuration used when no file, environment,
// or flag overrides are present. The defaults mirror the tool's origin:
// microban.txt in the working directory, split on ";" comment lines.
func DefaultConfig() Config {
	return Config{
		Split: SplitConfig{
			Input:     "microban.txt",
			OutputDir: ".",
			Pattern:   DefaultPattern,
			Extension: ".txt",
		},
		Catalog: CatalogConfig{
			Dir: "catalog",
		},
	}
}
