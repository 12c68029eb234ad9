// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the corpus-annotator CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ovoronina/corpus-annotator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the corpus-annotator CLI. Run without a
// subcommand it executes the full pipeline over the configured dataset.
var rootCmd = &cobra.Command{
	Use:   "corpus-annotator",
	Short: "Morphological annotation pipeline for a numbered text corpus",
	Long: `corpus-annotator validates a directory of numbered raw-text documents and
metadata sidecars, annotates every document's tokens with two morphological
analyzers, writes three rendered views per document, and records
part-of-speech frequency summaries.

Run with no arguments to validate the configured dataset and process the
whole corpus; individual stages are available as subcommands.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.OutOrStdout())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./corpus-annotator.yaml or ~/.config/corpus-annotator/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("corpus-annotator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "corpus-annotator"))
		}
	}

	viper.SetEnvPrefix("CORPUS_ANNOTATOR")
	viper.AutomaticEnv()

	viper.SetDefault("dataset.assets_dir", "assets")
	viper.SetDefault("analyzers.mystem_bin", "mystem")
	viper.SetDefault("analyzers.pymorphy_bin", "pymorphy-cli")
	viper.SetDefault("frequency.index_dir", "index")
	viper.SetDefault("report.output_dir", "output")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the viper state into the typed pipeline config.
func loadConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Dataset: types.DatasetConfig{
			AssetsDir: viper.GetString("dataset.assets_dir"),
		},
		Analyzers: types.AnalyzerConfig{
			MystemBin:   viper.GetString("analyzers.mystem_bin"),
			PymorphyBin: viper.GetString("analyzers.pymorphy_bin"),
		},
		Frequency: types.FrequencyConfig{
			IndexDir: viper.GetString("frequency.index_dir"),
		},
		Report: types.ReportConfig{
			OutputDir: viper.GetString("report.output_dir"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
