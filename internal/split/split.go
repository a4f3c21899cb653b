// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package split cuts a concatenated level collection into individual level
// files. Collections in the Microban tradition separate levels with ";"
// comment lines; each run of text between two such lines is one level.
package split

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pdiddy/levelsplit/pkg/types"
)

// Splitter cuts a document into segments at delimiter lines. A delimiter
// line is consumed whole, including its trailing newline, so it appears in
// neither adjacent segment.
type Splitter struct {
	re *regexp.Regexp
}

// New compiles the delimiter pattern. The pattern must anchor at the start
// of a line in multiline mode; types.DefaultPattern is the usual choice.
func New(pattern string) (*Splitter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling delimiter pattern %q: %w", pattern, err)
	}
	return &Splitter{re: re}, nil
}

// Split returns every segment of doc in order. The result always has
// len = (number of delimiter matches) + 1: a document with no delimiter
// lines comes back as a single segment, unchanged.
func (s *Splitter) Split(doc string) []string {
	return s.re.Split(doc, -1)
}

// DropHeader removes the first segment, which holds the collection's
// file-level comment block rather than a level. The drop is unconditional:
// a document with no delimiter lines loses its only segment and yields an
// empty collection.
func DropHeader(segments []string) []string {
	return segments[1:]
}

// Result summarizes a completed split run.
type Result struct {
	InputPath   string
	InputSHA256 string
	Pattern     string
	OutputDir   string
	Extension   string
	Levels      []types.Level
}

// Written returns the number of level files the run produced.
func (r *Result) Written() int {
	return len(r.Levels)
}

// Record converts the result into a catalog record.
func (r *Result) Record() types.Run {
	return types.Run{
		InputPath:   r.InputPath,
		InputSHA256: r.InputSHA256,
		Pattern:     r.Pattern,
		Levels:      r.Levels,
		CreatedAt:   Timestamp(),
	}
}

// WriteAll writes each segment verbatim to "<index><ext>" in dir, starting
// the index at 1, truncating any existing file of the same name. It emits a
// progress line per file to w. The first write error aborts the remaining
// writes; files already written stay in place.
func WriteAll(segments []string, dir, ext string, w io.Writer) ([]types.Level, error) {
	levels := make([]types.Level, 0, len(segments))
	for i, seg := range segments {
		name := fmt.Sprintf("%d%s", i+1, ext)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(seg), 0o644); err != nil {
			return levels, fmt.Errorf("writing level %d to %s: %w", i+1, path, err)
		}
		fmt.Fprintf(w, "wrote: %s (%d bytes)\n", name, len(seg))
		levels = append(levels, types.Level{
			Index: i + 1,
			File:  name,
			Bytes: len(seg),
			Lines: types.CountLines(seg),
		})
	}
	return levels, nil
}

// Run executes the full pipeline: read the collection file, split it at
// delimiter lines, drop the header segment, and write each remaining level
// to its own numbered file. Progress lines and a summary go to w.
func Run(cfg types.SplitConfig, w io.Writer) (*Result, error) {
	s, err := New(cfg.Pattern)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", cfg.Input, err)
	}

	sum := sha256.Sum256(data)

	segments := DropHeader(s.Split(string(data)))

	levels, err := WriteAll(segments, cfg.OutputDir, cfg.Extension, w)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "\n%d level(s) written from %s\n", len(levels), cfg.Input)

	return &Result{
		InputPath:   cfg.Input,
		InputSHA256: hex.EncodeToString(sum[:]),
		Pattern:     cfg.Pattern,
		OutputDir:   cfg.OutputDir,
		Extension:   cfg.Extension,
		Levels:      levels,
	}, nil
}

// Preview describes one segment of a collection without writing it out.
type Preview struct {
	Index     int // 0 is the header segment
	Bytes     int
	Lines     int
	FirstLine string
}

// Inspect splits the collection file and returns a preview of every
// segment, header included, so the operator can see what a split run
// would produce.
func Inspect(cfg types.SplitConfig) ([]Preview, error) {
	s, err := New(cfg.Pattern)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", cfg.Input, err)
	}

	segments := s.Split(string(data))
	previews := make([]Preview, len(segments))
	for i, seg := range segments {
		previews[i] = Preview{
			Index:     i,
			Bytes:     len(seg),
			Lines:     types.CountLines(seg),
			FirstLine: firstLine(seg),
		}
	}
	return previews, nil
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

// Timestamp returns the current time in the form manifests and catalog
// rows record.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
