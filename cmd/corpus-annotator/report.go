package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ovoronina/corpus-annotator/internal/corpus"
	"github.com/ovoronina/corpus-annotator/internal/freqstore"
	"github.com/ovoronina/corpus-annotator/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the latest run's frequency summary as Markdown and HTML",
	Long: `Report reads the latest recorded run from the index database and writes
a part-of-speech frequency report (corpus totals plus one section per
document) to the output directory, in Markdown and rendered HTML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		store, err := freqstore.Open(cfg.Frequency.IndexDir)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		runID, err := store.LatestRun(ctx)
		if err != nil {
			return err
		}

		totals, err := store.RunTotals(ctx, runID)
		if err != nil {
			return err
		}
		docIDs, err := store.RunDocuments(ctx, runID)
		if err != nil {
			return err
		}
		perDoc := make(map[int]map[string]int, len(docIDs))
		for _, id := range docIDs {
			counts, err := store.DocumentCounts(ctx, runID, id)
			if err != nil {
				return err
			}
			perDoc[id] = counts
		}

		md := report.Build(runID, totals, perDoc, documentTitles(cfg.Dataset.AssetsDir, docIDs))

		if err := os.MkdirAll(cfg.Report.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		mdPath := filepath.Join(cfg.Report.OutputDir, "frequencies.md")
		if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		htmlPath := filepath.Join(cfg.Report.OutputDir, "frequencies.html")
		if err := report.WriteHTML(md, htmlPath); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s and %s\n", mdPath, htmlPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// documentTitles reads sidecar titles for the given ids. A missing or
// unparsable sidecar just leaves that document untitled.
func documentTitles(assetsDir string, ids []int) map[int]string {
	titles := make(map[int]string, len(ids))
	manager, err := corpus.NewManager(assetsDir)
	if err != nil {
		return titles
	}
	for _, id := range ids {
		doc, ok := manager.Documents()[id]
		if !ok {
			continue
		}
		meta, err := doc.Meta()
		if err != nil {
			continue
		}
		titles[id] = meta.Title
	}
	return titles
}
