package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovoronina/corpus-annotator/internal/dataset"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the dataset directory forms a consistent numbered corpus",
	Long: `Validate checks the configured dataset directory: raw and meta files
numbered contiguously from 1, equal counts on both sides, and no zero-byte
files. It never modifies the directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if err := dataset.Validate(cfg.Dataset.AssetsDir); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Dataset %s is consistent.\n", cfg.Dataset.AssetsDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
