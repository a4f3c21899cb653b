// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/levelsplit/internal/catalog"
	"github.com/pdiddy/levelsplit/internal/split"
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split the collection file into numbered level files",
	Long: `Split reads the collection file, cuts it at ";" delimiter lines,
discards the header segment, and writes each level verbatim to
"<index>.txt" in the output directory, overwriting existing files.

A collection with no delimiter lines produces no level files.`,
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().String("input", "microban.txt", "collection file to split")
	splitCmd.Flags().String("output-dir", ".", "directory for the numbered level files")
	splitCmd.Flags().String("pattern", "", "delimiter-line regular expression (default: \";\" comment lines)")
	splitCmd.Flags().String("ext", ".txt", "extension for level files")
	splitCmd.Flags().String("manifest", "", "write a YAML manifest of the run to this path")
	splitCmd.Flags().Bool("catalog", false, "record the run in the catalog database")
	splitCmd.Flags().String("catalog-dir", "catalog", "directory for the catalog database")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := splitConfig(cmd)

	result, err := split.Run(cfg, os.Stderr)
	if err != nil {
		return err
	}

	if manifestPath, _ := cmd.Flags().GetString("manifest"); manifestPath != "" {
		if err := split.WriteManifest(split.NewManifest(result), manifestPath); err != nil {
			return err
		}
	}

	if record, _ := cmd.Flags().GetBool("catalog"); record {
		store, err := catalog.NewStore(catalogConfig(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := store.RecordRun(context.Background(), result.Record()); err != nil {
			return err
		}
	}

	return nil
}
