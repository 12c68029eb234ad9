// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import (
	"io"
	"os/exec"

	"github.com/ovoronina/corpus-annotator/pkg/types"
)

// Analyzer produces ordered analysis entries for a whole document's text.
// The production implementation pipes the text through the mystem binary.
type Analyzer interface {
	Analyze(text string) ([]types.AnalyzerEntry, error)
}

// Ranker returns ranked morphological parses for a single surface form,
// best first. An empty result means the form is unknown to the analyzer.
type Ranker interface {
	Parses(surface string) ([]types.Parse, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

var defaultExec = &osExecutor{}
