// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import (
	"errors"
	"testing"
)

func TestPymorphyRankerParses(t *testing.T) {
	exec := &fakeExecutor{output: `[{"tag":"VERB,perf tran masc sing past indc","score":0.75},{"tag":"NOUN,inan,masc sing nomn","score":0.25}]`}

	r, err := newPymorphyRanker("", exec)
	if err != nil {
		t.Fatalf("newPymorphyRanker: %v", err)
	}

	parses, err := r.Parses("стал")
	if err != nil {
		t.Fatalf("Parses: %v", err)
	}

	if exec.gotName != "pymorphy-cli" {
		t.Errorf("ran %q, want pymorphy-cli", exec.gotName)
	}
	if exec.gotStdin != "стал" {
		t.Errorf("stdin = %q", exec.gotStdin)
	}

	if len(parses) != 2 {
		t.Fatalf("got %d parses, want 2", len(parses))
	}
	// Order must be preserved: the pipeline takes the first parse as top-ranked.
	if parses[0].Tag != "VERB,perf tran masc sing past indc" {
		t.Errorf("top parse tag = %q", parses[0].Tag)
	}
	if parses[0].Score <= parses[1].Score {
		t.Errorf("parses not ranked: %v then %v", parses[0].Score, parses[1].Score)
	}
}

func TestPymorphyRankerUnknownForm(t *testing.T) {
	tests := []struct {
		name   string
		output string
	}{
		{name: "empty output", output: ""},
		{name: "empty array", output: "[]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := newPymorphyRanker("pymorphy-cli", &fakeExecutor{output: tt.output})
			if err != nil {
				t.Fatalf("newPymorphyRanker: %v", err)
			}
			parses, err := r.Parses("щшзх")
			if err != nil {
				t.Fatalf("Parses: %v", err)
			}
			if len(parses) != 0 {
				t.Errorf("got %d parses, want 0", len(parses))
			}
		})
	}
}

func TestPymorphyRankerErrors(t *testing.T) {
	if _, err := newPymorphyRanker("pymorphy-cli", &fakeExecutor{lookErr: errors.New("not found")}); err == nil {
		t.Error("expected constructor error when binary is missing")
	}

	r, err := newPymorphyRanker("pymorphy-cli", &fakeExecutor{runErr: errors.New("exit status 1")})
	if err != nil {
		t.Fatalf("newPymorphyRanker: %v", err)
	}
	if _, err := r.Parses("слово"); err == nil {
		t.Error("expected Parses error on process failure")
	}
}
