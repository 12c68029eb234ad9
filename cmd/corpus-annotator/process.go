package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ovoronina/corpus-annotator/internal/corpus"
	"github.com/ovoronina/corpus-annotator/internal/dataset"
	"github.com/ovoronina/corpus-annotator/internal/freqstore"
	"github.com/ovoronina/corpus-annotator/internal/morph"
	"github.com/ovoronina/corpus-annotator/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Validate the dataset and annotate every document",
	Long: `Process validates the configured dataset directory, builds the corpus
registry, runs the annotation pipeline over every document (writing the
cleaned, single-tagged, and multiple-tagged views), and records each
document's part-of-speech frequencies in the index database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}

// runProcess is the full pipeline run: validate, scan, annotate, record.
// Validation failures abort before any document is touched.
func runProcess(w io.Writer) error {
	cfg := loadConfig()

	if err := dataset.Validate(cfg.Dataset.AssetsDir); err != nil {
		return err
	}

	manager, err := corpus.NewManager(cfg.Dataset.AssetsDir)
	if err != nil {
		return err
	}

	analyzer, err := morph.NewMystemAnalyzer(cfg.Analyzers.MystemBin)
	if err != nil {
		return err
	}
	ranker, err := morph.NewPymorphyRanker(cfg.Analyzers.PymorphyBin)
	if err != nil {
		return err
	}

	summary, err := pipeline.New(manager, analyzer, ranker).Run(w)
	if err != nil {
		return err
	}

	store, err := freqstore.Open(cfg.Frequency.IndexDir)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	runID, err := store.BeginRun(ctx)
	if err != nil {
		return err
	}
	for _, id := range manager.IDs() {
		if err := store.RecordDocument(ctx, runID, id, summary.Frequencies[id]); err != nil {
			return err
		}
	}
	if err := store.ExportYAML(ctx, runID, filepath.Join(cfg.Frequency.IndexDir, "export.yaml")); err != nil {
		return err
	}

	fmt.Fprintf(w, "Recorded run %s (%d documents)\n", runID, summary.Documents)
	return nil
}
