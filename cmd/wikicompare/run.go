// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikicompare/internal/run"
)

var runCmd = &cobra.Command{
	Use:     "run [topic ...]",
	Aliases: []string{"compare"},
	Short:   "Run the full comparison pipeline",
	Long: `Run fetches each topic's Grokipedia and Wikipedia pages, scores
their similarity, computes per-page quality and bias metrics, and writes
the results to the SQLite store, the JSON export, and the text reports.

Topics come from positional arguments or --topics; without either, a
stratified sample is drawn from the configured categories. A topic that
fails on either side is skipped with a recorded reason; the run fails
only when no topic could be compared.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	topics, _ := cmd.Flags().GetStringSlice("topics")
	topics = append(topics, args...)

	sampleSize, _ := cmd.Flags().GetInt("sample-size")
	exportPath, _ := cmd.Flags().GetString("output")
	noReports, _ := cmd.Flags().GetBool("no-reports")
	noStore, _ := cmd.Flags().GetBool("no-store")

	if cacheDir, _ := cmd.Flags().GetString("cache-dir"); cacheDir != "" {
		cfg.Scrape.CacheDir = cacheDir
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Sampling.RandomSeed = seed
	}

	summary, err := run.Run(context.Background(), cfg, run.Options{
		Topics:      topics,
		SampleSize:  sampleSize,
		ExportPath:  exportPath,
		SkipReports: noReports,
		SkipStore:   noStore,
	}, os.Stdout)
	if err != nil {
		return err
	}

	if len(summary.Skips) > 0 {
		fmt.Fprintf(os.Stderr, "%d topic(s) skipped\n", len(summary.Skips))
	}
	return nil
}

func init() {
	runCmd.Flags().StringSlice("topics", nil, "explicit topics to compare (bypasses sampling)")
	runCmd.Flags().IntP("sample-size", "n", 0, "number of topics to sample (default from config)")
	runCmd.Flags().String("output", "", "path for the JSON export (default from config)")
	runCmd.Flags().Bool("no-reports", false, "skip writing text reports")
	runCmd.Flags().Bool("no-store", false, "skip SQLite persistence")
	runCmd.Flags().String("cache-dir", "", "cache fetched HTML in this directory")
	runCmd.Flags().Int64("seed", 0, "override the sampling random seed")

	rootCmd.AddCommand(runCmd)
}
