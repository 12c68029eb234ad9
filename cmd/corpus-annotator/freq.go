package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovoronina/corpus-annotator/internal/corpus"
	"github.com/ovoronina/corpus-annotator/internal/pipeline"
)

var freqCmd = &cobra.Command{
	Use:   "freq",
	Short: "Print part-of-speech frequencies from persisted artifacts",
	Long: `Freq reads persisted single-tagged artifacts and prints tag frequencies:
one document with --id, or the corpus-wide aggregate with --all.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		id, _ := cmd.Flags().GetInt("id")
		all, _ := cmd.Flags().GetBool("all")

		manager, err := corpus.NewManager(cfg.Dataset.AssetsDir)
		if err != nil {
			return err
		}

		switch {
		case all:
			totals, err := pipeline.CorpusFrequencies(manager.Documents())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pipeline.FormatFrequencies(totals))
		case id > 0:
			doc, ok := manager.Documents()[id]
			if !ok {
				return fmt.Errorf("document %d not found in %s", id, cfg.Dataset.AssetsDir)
			}
			freqs, err := pipeline.DocumentFrequencies(doc)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pipeline.FormatFrequencies(freqs))
		default:
			return fmt.Errorf("freq requires --id or --all")
		}
		return nil
	},
}

func init() {
	freqCmd.Flags().Int("id", 0, "document id to report")
	freqCmd.Flags().Bool("all", false, "aggregate across the whole corpus")

	rootCmd.AddCommand(freqCmd)
}
