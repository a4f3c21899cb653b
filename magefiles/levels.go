//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Levels builds the binary and splits microban.txt into levels/,
// recording the run in the catalog.
func Levels() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "split",
		"--input", "microban.txt",
		"--output-dir", "levels",
		"--manifest", filepath.Join("levels", "manifest.yaml"),
		"--catalog",
	)
}
