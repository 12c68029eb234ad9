// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline annotates every document in the corpus registry:
// tokenize, filter, enrich with secondary parses, render three views, and
// persist them as artifact files.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ovoronina/corpus-annotator/internal/corpus"
	"github.com/ovoronina/corpus-annotator/internal/morph"
	"github.com/ovoronina/corpus-annotator/pkg/types"
)

// DropReason says why a token was excluded from all three output views.
type DropReason string

const (
	// DropNoAnalysis marks an entry with no analysis list, an empty one, or
	// a first analysis carrying neither lemma nor tag.
	DropNoAnalysis DropReason = "no-analysis"

	// DropNoText marks an entry with no non-empty surface text.
	DropNoText DropReason = "no-text"

	// DropNoParse marks a token the secondary analyzer returned zero parses
	// for. Such tokens are dropped from all three views, not just the
	// multiple-tagged one, to keep the views aligned.
	DropNoParse DropReason = "no-secondary-parse"
)

// TokenDrop records one dropped token for instrumentation.
type TokenDrop struct {
	DocumentID int
	Surface    string
	Reason     DropReason
}

// RunSummary holds counts from a full pipeline run.
type RunSummary struct {
	// Documents is the number of documents whose artifacts were written.
	Documents int

	// Tokens is the total number of tokens kept across all documents.
	Tokens int

	// Dropped counts excluded tokens per reason.
	Dropped map[DropReason]int

	// Drops records each dropped token.
	Drops []TokenDrop

	// Frequencies maps document id to its single-tagged POS tag counts.
	Frequencies map[int]map[string]int
}

// TotalDropped returns the number of dropped tokens across all reasons.
func (s RunSummary) TotalDropped() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// Pipeline orchestrates per-document annotation. Execution is fully
// sequential: one document is processed to completion, all three artifacts
// written, before the next begins.
type Pipeline struct {
	manager  *corpus.Manager
	analyzer morph.Analyzer
	ranker   morph.Ranker
}

// New returns a pipeline over the manager's registry using the two given
// analyzers.
func New(m *corpus.Manager, a morph.Analyzer, r morph.Ranker) *Pipeline {
	return &Pipeline{manager: m, analyzer: a, ranker: r}
}

// Run processes every registered document in ascending id order, printing
// per-document status and the document's POS frequency map to w. An
// analyzer failure for a whole document yields empty artifacts, not an
// abort; a failed artifact write aborts the run.
func (p *Pipeline) Run(w io.Writer) (RunSummary, error) {
	summary := RunSummary{
		Dropped:     make(map[DropReason]int),
		Frequencies: make(map[int]map[string]int),
	}

	registry := p.manager.Documents()
	for _, id := range p.manager.IDs() {
		doc := registry[id]

		tokens, drops, err := p.annotate(doc)
		if err != nil {
			fmt.Fprintf(w, "degraded:  document %d (%v)\n", id, err)
			tokens = nil
			drops = nil
		}

		for _, d := range drops {
			summary.Dropped[d.Reason]++
		}
		summary.Drops = append(summary.Drops, drops...)
		summary.Tokens += len(tokens)

		if err := writeArtifacts(doc, tokens); err != nil {
			return summary, err
		}
		summary.Documents++

		freqs, err := DocumentFrequencies(doc)
		if err != nil {
			return summary, err
		}
		summary.Frequencies[id] = freqs

		fmt.Fprintf(w, "processed: document %d (%d tokens) %s\n",
			id, len(tokens), FormatFrequencies(freqs))
	}

	fmt.Fprintf(w, "\nRun summary: %d documents, %d tokens kept, %d dropped\n",
		summary.Documents, summary.Tokens, summary.TotalDropped())
	return summary, nil
}

// annotate runs both analyzers over one document and returns the surviving
// tokens in original order, plus a record of every dropped token.
func (p *Pipeline) annotate(doc *types.Document) ([]morph.Token, []TokenDrop, error) {
	text, err := doc.RawText()
	if err != nil {
		return nil, nil, err
	}

	entries, err := p.analyzer.Analyze(text)
	if err != nil {
		return nil, nil, err
	}

	var tokens []morph.Token
	var drops []TokenDrop
	for _, entry := range entries {
		if reason := dropEntry(entry); reason != "" {
			drops = append(drops, TokenDrop{DocumentID: doc.ID, Surface: entry.SurfaceText, Reason: reason})
			continue
		}

		tok := morph.Token{
			Surface: entry.SurfaceText,
			Lemma:   entry.Analyses[0].Lemma,
			TagA:    entry.Analyses[0].Tag,
		}

		parses, err := p.ranker.Parses(tok.Surface)
		if err != nil || len(parses) == 0 {
			// Unknown to the secondary analyzer (or a failed per-token call):
			// drop from all three views, never abort the document.
			drops = append(drops, TokenDrop{DocumentID: doc.ID, Surface: tok.Surface, Reason: DropNoParse})
			continue
		}
		tok.TagB = parses[0].Tag

		tokens = append(tokens, tok)
	}

	return tokens, drops, nil
}

// dropEntry is the filter predicate over a primary-analyzer entry. It
// returns the drop reason, or "" when the entry survives. Ties among
// multiple analyses are broken later by taking the first one
// unconditionally; the predicate only inspects it.
func dropEntry(e types.AnalyzerEntry) DropReason {
	if len(e.Analyses) == 0 || (e.Analyses[0].Lemma == "" && e.Analyses[0].Tag == "") {
		return DropNoAnalysis
	}
	if strings.TrimSpace(e.SurfaceText) == "" {
		return DropNoText
	}
	return ""
}

// writeArtifacts renders tokens into the three views and persists them
// next to the raw file. The sequences are built in lockstep, so the three
// artifacts always have identical length and pairwise order. Existing
// artifacts are overwritten.
func writeArtifacts(doc *types.Document, tokens []morph.Token) error {
	cleaned := make([]string, 0, len(tokens))
	single := make([]string, 0, len(tokens))
	multiple := make([]string, 0, len(tokens))
	for _, t := range tokens {
		cleaned = append(cleaned, t.Cleaned())
		single = append(single, t.SingleTagged())
		multiple = append(multiple, t.MultipleTagged())
	}

	views := []struct {
		kind   types.ArtifactKind
		tokens []string
	}{
		{types.ArtifactCleaned, cleaned},
		{types.ArtifactSingleTagged, single},
		{types.ArtifactMultipleTagged, multiple},
	}
	for _, v := range views {
		path := doc.ArtifactPath(v.kind)
		if err := os.WriteFile(path, []byte(strings.Join(v.tokens, " ")), 0o644); err != nil {
			return fmt.Errorf("writing %s artifact for document %d: %w", v.kind, doc.ID, err)
		}
		doc.SetArtifact(v.kind, path)
	}
	return nil
}
