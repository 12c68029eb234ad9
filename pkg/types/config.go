package types

// DatasetConfig holds settings for dataset validation and corpus scanning.
type DatasetConfig struct {
	// AssetsDir is the directory holding <id>_raw.txt and <id>_meta.json
	// files, produced by the out-of-scope collector.
	AssetsDir string `json:"assets_dir" yaml:"assets_dir"`
}

// AnalyzerConfig holds settings for the two external morphological
// analyzers.
type AnalyzerConfig struct {
	// MystemBin is the mystem binary invoked once per document for primary
	// analysis (default "mystem").
	MystemBin string `json:"mystem_bin" yaml:"mystem_bin"`

	// PymorphyBin is the wrapper binary invoked once per token for
	// secondary parses (default "pymorphy-cli").
	PymorphyBin string `json:"pymorphy_bin" yaml:"pymorphy_bin"`
}

// FrequencyConfig holds settings for the frequency summary store.
type FrequencyConfig struct {
	// IndexDir is the directory holding annotations.db and export.yaml.
	IndexDir string `json:"index_dir" yaml:"index_dir"`
}

// ReportConfig holds settings for the frequency report.
type ReportConfig struct {
	// OutputDir is the directory for rendered reports.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Dataset   DatasetConfig   `json:"dataset" yaml:"dataset"`
	Analyzers AnalyzerConfig  `json:"analyzers" yaml:"analyzers"`
	Frequency FrequencyConfig `json:"frequency" yaml:"frequency"`
	Report    ReportConfig    `json:"report" yaml:"report"`
}
