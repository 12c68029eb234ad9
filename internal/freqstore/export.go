// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package freqstore

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ExportEntry holds one document's tag counts for export.
type ExportEntry struct {
	DocumentID int            `json:"document_id" yaml:"document_id"`
	Tags       map[string]int `json:"tags" yaml:"tags"`
}

// Export is the YAML export of one run's frequency summaries.
type Export struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Documents []ExportEntry `json:"documents" yaml:"documents"`
}

// ExportYAML writes the recorded counts of runID to path. Documents appear
// in ascending id order; yaml marshaling sorts tag keys, so the output is
// deterministic.
func (s *Store) ExportYAML(ctx context.Context, runID, path string) error {
	docIDs, err := s.RunDocuments(ctx, runID)
	if err != nil {
		return err
	}

	exp := Export{RunID: runID}
	for _, id := range docIDs {
		counts, err := s.DocumentCounts(ctx, runID, id)
		if err != nil {
			return err
		}
		exp.Documents = append(exp.Documents, ExportEntry{DocumentID: id, Tags: counts})
	}

	data, err := yaml.Marshal(&exp)
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
