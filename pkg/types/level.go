// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Level describes one extracted level file.
type Level struct {
	// Index is the 1-based position of the level in the collection.
	Index int `json:"index" yaml:"index"`

	// File is the output filename, relative to the output directory.
	File string `json:"file" yaml:"file"`

	// Bytes is the length of the level content.
	Bytes int `json:"bytes" yaml:"bytes"`

	// Lines is the number of newline-terminated lines in the content.
	// A trailing fragment without a newline counts as a line.
	Lines int `json:"lines" yaml:"lines"`
}

// CountLines returns the line count of s under the Level.Lines convention.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// Run describes one recorded split run.
type Run struct {
	// ID is the catalog row ID, assigned on insert.
	ID int64 `json:"id" yaml:"id"`

	// InputPath is the collection file that was split.
	InputPath string `json:"input_path" yaml:"input_path"`

	// InputSHA256 is the hex checksum of the input content.
	InputSHA256 string `json:"input_sha256" yaml:"input_sha256"`

	// Pattern is the delimiter pattern the run used.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Levels lists the files the run produced, in index order.
	Levels []Level `json:"levels" yaml:"levels"`

	// CreatedAt is the run timestamp in RFC 3339 form, UTC.
	CreatedAt string `json:"created_at" yaml:"created_at"`
}
