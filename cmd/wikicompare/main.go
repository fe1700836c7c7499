// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wikicompare CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wikicompare/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the wikicompare CLI.
var rootCmd = &cobra.Command{
	Use:   "wikicompare",
	Short: "Compare Grokipedia articles against their Wikipedia counterparts",
	Long: `wikicompare fetches matched article pairs from Grokipedia and Wikipedia,
scores their textual and structural similarity, derives quality and bias
indicators for each side, and aggregates everything into reports.

The compare subcommand runs the full pipeline; sample previews topic
selection without fetching anything; report regenerates the text reports
from previously stored results.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wikicompare.yaml or ~/.config/wikicompare/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wikicompare")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wikicompare"))
		}
	}

	viper.SetEnvPrefix("WIKICOMPARE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig layers the config file over the pipeline defaults.
func loadConfig() (types.PipelineConfig, error) {
	cfg := types.DefaultConfig()

	if path := viper.ConfigFileUsed(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if dir := viper.GetString("cache_dir"); dir != "" {
		cfg.Scrape.CacheDir = dir
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
