// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikicompare/internal/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Preview the stratified topic sample without fetching anything",
	Long: `Sample draws the stratified topic sample the compare subcommand would
use and prints it, one topic per line with its category. Useful for
checking category weights and pools before a run.`,
	RunE: runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Sampling.RandomSeed = seed
	}
	size, _ := cmd.Flags().GetInt("sample-size")

	topics, err := sample.New(cfg.Sampling).Sample(size)
	if err != nil {
		return err
	}

	for _, t := range topics {
		if t.Category != "" {
			fmt.Printf("%-16s %s\n", t.Category, t.Title)
		} else {
			fmt.Println(t.Title)
		}
	}
	return nil
}

func init() {
	sampleCmd.Flags().IntP("sample-size", "n", 0, "number of topics to sample (default from config)")
	sampleCmd.Flags().Int64("seed", 0, "override the sampling random seed")

	rootCmd.AddCommand(sampleCmd)
}
