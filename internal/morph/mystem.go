// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ovoronina/corpus-annotator/pkg/types"
)

const defaultMystemBin = "mystem"

// mystemArgs requests lemmas with grammar info, preserving the input order,
// one JSON array per input line on stdout.
var mystemArgs = []string{"--format", "json", "-c", "-i", "-g", "-d"}

// MystemAnalyzer runs the mystem binary over a document's text and decodes
// its JSON output into analysis entries.
type MystemAnalyzer struct {
	bin  string
	exec executor
}

// NewMystemAnalyzer verifies that bin (default "mystem") exists on PATH
// and returns an analyzer bound to it.
func NewMystemAnalyzer(bin string) (*MystemAnalyzer, error) {
	return newMystemAnalyzer(bin, defaultExec)
}

func newMystemAnalyzer(bin string, exec executor) (*MystemAnalyzer, error) {
	if bin == "" {
		bin = defaultMystemBin
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("mystem binary %s not found: %w", bin, err)
	}
	return &MystemAnalyzer{bin: bin, exec: exec}, nil
}

// Analyze pipes text through mystem and returns its entries in input
// order. The call blocks until the process exits; there is no timeout.
func (m *MystemAnalyzer) Analyze(text string) ([]types.AnalyzerEntry, error) {
	var out bytes.Buffer
	if err := m.exec.RunPiped(m.bin, mystemArgs, strings.NewReader(text), &out); err != nil {
		return nil, fmt.Errorf("running %s: %w", m.bin, err)
	}
	return parseMystemOutput(out.Bytes())
}

// parseMystemOutput decodes mystem's output: one JSON array of entries per
// input line, concatenated on stdout.
func parseMystemOutput(data []byte) ([]types.AnalyzerEntry, error) {
	var entries []types.AnalyzerEntry
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var line []types.AnalyzerEntry
		if err := dec.Decode(&line); err != nil {
			return nil, fmt.Errorf("parsing mystem output: %w", err)
		}
		entries = append(entries, line...)
	}
	return entries, nil
}
