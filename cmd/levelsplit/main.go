// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the levelsplit CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/levelsplit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the levelsplit CLI.
var rootCmd = &cobra.Command{
	Use:   "levelsplit",
	Short: "Split a concatenated level collection into numbered level files",
	Long: `levelsplit cuts a Sokoban-style level collection file (Microban and
relatives) into individual level files. Collections separate levels with ";"
comment lines; each run of text between two such lines becomes one file,
named by its 1-based position in the collection.

The text before the first ";" line is the collection header and is discarded.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./levelsplit.yaml or ~/.config/levelsplit/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("levelsplit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "levelsplit"))
		}
	}

	def := types.DefaultConfig()
	viper.SetDefault("split.input", def.Split.Input)
	viper.SetDefault("split.output_dir", def.Split.OutputDir)
	viper.SetDefault("split.pattern", def.Split.Pattern)
	viper.SetDefault("split.extension", def.Split.Extension)
	viper.SetDefault("catalog.dir", def.Catalog.Dir)

	viper.SetEnvPrefix("LEVELSPLIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// splitConfig resolves split settings with flag > env > config file > default
// precedence. Flags that the user did not set fall through to viper.
func splitConfig(cmd *cobra.Command) types.SplitConfig {
	cfg := types.SplitConfig{
		Input:     viper.GetString("split.input"),
		OutputDir: viper.GetString("split.output_dir"),
		Pattern:   viper.GetString("split.pattern"),
		Extension: viper.GetString("split.extension"),
	}
	if cmd.Flags().Changed("input") {
		cfg.Input, _ = cmd.Flags().GetString("input")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	if cmd.Flags().Changed("pattern") {
		cfg.Pattern, _ = cmd.Flags().GetString("pattern")
	}
	if cmd.Flags().Changed("ext") {
		cfg.Extension, _ = cmd.Flags().GetString("ext")
	}
	return cfg
}

// catalogConfig resolves the catalog directory the same way.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	cfg := types.CatalogConfig{Dir: viper.GetString("catalog.dir")}
	if cmd.Flags().Changed("catalog-dir") {
		cfg.Dir, _ = cmd.Flags().GetString("catalog-dir")
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
