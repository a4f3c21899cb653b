// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/levelsplit/internal/split"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Preview the segments of a collection without writing files",
	Long: `List splits the collection file and prints one line per segment:
index, size, line count, and the segment's first line. Segment 0 is the
header, which a split run discards; the remaining segments become level
files 1.txt, 2.txt, and so on.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().String("input", "microban.txt", "collection file to inspect")
	listCmd.Flags().String("pattern", "", "delimiter-line regular expression (default: \";\" comment lines)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := splitConfig(cmd)

	previews, err := split.Inspect(cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEGMENT\tBYTES\tLINES\tFIRST LINE")
	for _, p := range previews {
		label := fmt.Sprintf("%d", p.Index)
		if p.Index == 0 {
			label = "0 (header)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", label, p.Bytes, p.Lines, p.FirstLine)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "%d segment(s); a split would write %d level file(s)\n",
		len(previews), len(previews)-1)
	return nil
}
