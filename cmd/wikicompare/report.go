// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wikicompare/internal/report"
	"github.com/pdiddy/wikicompare/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Regenerate reports from previously stored results",
	Long: `Report loads the results of earlier compare runs from the SQLite store
and regenerates the summary and detailed text reports. With --stdout the
summary report is printed instead of written to the output directory.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := store.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	results, err := st.List(context.Background())
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no stored results in %s: run compare first", cfg.Store.Path)
	}

	gen := report.New(cfg.Report, cfg.Compare, cfg.Metrics)

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		return gen.Summary(os.Stdout, results)
	}

	if exportPath, _ := cmd.Flags().GetString("output"); exportPath != "" {
		if err := st.ExportJSON(context.Background(), exportPath); err != nil {
			return err
		}
		fmt.Printf("Exported results to %s\n", exportPath)
	}

	paths, err := gen.WriteAll(results)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Printf("Wrote %s\n", p)
	}
	return nil
}

func init() {
	reportCmd.Flags().Bool("stdout", false, "print the summary report instead of writing files")
	reportCmd.Flags().String("output", "", "also write the JSON export to this path")

	rootCmd.AddCommand(reportCmd)
}
