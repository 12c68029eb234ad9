// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import (
	"errors"
	"testing"
)

func TestMystemAnalyzerParsesOutput(t *testing.T) {
	// Two input lines, one JSON array each, punctuation entry without analyses.
	exec := &fakeExecutor{output: `[{"analysis":[{"lex":"мама","gr":"S,жен,од=им,ед"}],"text":"Мама"},{"text":" "},{"analysis":[{"lex":"мыть","gr":"V,несов=прош"}],"text":"мыла"}]
[{"analysis":[{"lex":"рама","gr":"S,жен,неод=вин,ед"}],"text":"раму"},{"text":"."}]
`}

	a, err := newMystemAnalyzer("", exec)
	if err != nil {
		t.Fatalf("newMystemAnalyzer: %v", err)
	}

	entries, err := a.Analyze("Мама мыла\nраму.")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if exec.gotName != "mystem" {
		t.Errorf("ran %q, want mystem", exec.gotName)
	}
	if exec.gotStdin != "Мама мыла\nраму." {
		t.Errorf("stdin = %q", exec.gotStdin)
	}

	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}
	if entries[0].SurfaceText != "Мама" {
		t.Errorf("entry 0 surface = %q", entries[0].SurfaceText)
	}
	if entries[0].Analyses[0].Lemma != "мама" {
		t.Errorf("entry 0 lemma = %q", entries[0].Analyses[0].Lemma)
	}
	if entries[2].Analyses[0].Tag != "V,несов=прош" {
		t.Errorf("entry 2 tag = %q", entries[2].Analyses[0].Tag)
	}
	if len(entries[4].Analyses) != 0 {
		t.Errorf("punctuation entry carries %d analyses, want 0", len(entries[4].Analyses))
	}
}

func TestMystemAnalyzerErrors(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExecutor
	}{
		{name: "binary not on PATH", exec: &fakeExecutor{lookErr: errors.New("not found")}},
		{name: "process failure", exec: &fakeExecutor{runErr: errors.New("exit status 1")}},
		{name: "malformed output", exec: &fakeExecutor{output: "{not json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := newMystemAnalyzer("mystem", tt.exec)
			if tt.exec.lookErr != nil {
				if err == nil {
					t.Fatal("expected constructor error")
				}
				return
			}
			if err != nil {
				t.Fatalf("newMystemAnalyzer: %v", err)
			}
			if _, err := a.Analyze("текст"); err == nil {
				t.Error("expected Analyze error")
			}
		})
	}
}

func TestMystemAnalyzerEmptyOutput(t *testing.T) {
	a, err := newMystemAnalyzer("mystem", &fakeExecutor{output: ""})
	if err != nil {
		t.Fatalf("newMystemAnalyzer: %v", err)
	}
	entries, err := a.Analyze("")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
