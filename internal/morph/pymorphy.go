// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ovoronina/corpus-annotator/pkg/types"
)

const defaultPymorphyBin = "pymorphy-cli"

// PymorphyRanker shells out to a pymorphy wrapper binary. The wrapper
// reads one surface form on stdin and writes a JSON array of parses to
// stdout, best first. An empty array means the form is unknown.
type PymorphyRanker struct {
	bin  string
	exec executor
}

// NewPymorphyRanker verifies that bin (default "pymorphy-cli") exists on
// PATH and returns a ranker bound to it.
func NewPymorphyRanker(bin string) (*PymorphyRanker, error) {
	return newPymorphyRanker(bin, defaultExec)
}

func newPymorphyRanker(bin string, exec executor) (*PymorphyRanker, error) {
	if bin == "" {
		bin = defaultPymorphyBin
	}
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("pymorphy binary %s not found: %w", bin, err)
	}
	return &PymorphyRanker{bin: bin, exec: exec}, nil
}

// Parses returns the ranked parses for surface. Zero parses is not an
// error; the pipeline drops such tokens.
func (p *PymorphyRanker) Parses(surface string) ([]types.Parse, error) {
	var out bytes.Buffer
	if err := p.exec.RunPiped(p.bin, nil, strings.NewReader(surface), &out); err != nil {
		return nil, fmt.Errorf("running %s: %w", p.bin, err)
	}

	data := bytes.TrimSpace(out.Bytes())
	if len(data) == 0 {
		return nil, nil
	}

	var parses []types.Parse
	if err := json.Unmarshal(data, &parses); err != nil {
		return nil, fmt.Errorf("parsing %s output: %w", p.bin, err)
	}
	return parses, nil
}
