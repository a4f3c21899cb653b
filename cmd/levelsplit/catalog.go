// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/levelsplit/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the split-run catalog",
	Long: `Catalog queries the local SQLite database of recorded split runs.
Runs are recorded when split is invoked with --catalog.`,
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded split runs, newest first",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs recorded")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tINPUT\tSHA256\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%.12s\t%s\n", r.ID, r.InputPath, r.InputSHA256, r.CreatedAt)
	}
	return tw.Flush()
}

// --- show subcommand ---

var catalogShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one recorded run with its level files",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run ID %q: %w", args[0], err)
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("run %d\n", run.ID)
	fmt.Printf("  input:   %s\n", run.InputPath)
	fmt.Printf("  sha256:  %s\n", run.InputSHA256)
	fmt.Printf("  pattern: %s\n", run.Pattern)
	fmt.Printf("  created: %s\n", run.CreatedAt)
	fmt.Printf("  levels:  %d\n", len(run.Levels))

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tFILE\tBYTES\tLINES")
	for _, lvl := range run.Levels {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", lvl.Index, lvl.File, lvl.Bytes, lvl.Lines)
	}
	return tw.Flush()
}

func init() {
	catalogCmd.PersistentFlags().String("catalog-dir", "catalog", "directory for the catalog database")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}
