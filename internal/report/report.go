// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders part-of-speech frequency summaries as Markdown
// and HTML.
package report

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders Markdown with table support.
var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// Build assembles a Markdown report: corpus totals first, then one section
// per document in ascending id order. titles maps document ids to sidecar
// titles; documents without one get a numeric heading only.
func Build(runID string, totals map[string]int, perDoc map[int]map[string]int, titles map[int]string) string {
	var b strings.Builder
	b.WriteString("# Part-of-speech frequency report\n\n")
	fmt.Fprintf(&b, "Run: `%s`\n\n", runID)

	b.WriteString("## Corpus totals\n\n")
	writeTable(&b, totals)

	ids := make([]int, 0, len(perDoc))
	for id := range perDoc {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if title := titles[id]; title != "" {
			fmt.Fprintf(&b, "## Document %d: %s\n\n", id, title)
		} else {
			fmt.Fprintf(&b, "## Document %d\n\n", id)
		}
		writeTable(&b, perDoc[id])
	}

	return b.String()
}

// writeTable emits a two-column Markdown table with tags ordered by
// descending count, ties broken alphabetically.
func writeTable(b *strings.Builder, freqs map[string]int) {
	b.WriteString("| Tag | Count |\n|---|---|\n")
	for _, e := range sortedEntries(freqs) {
		fmt.Fprintf(b, "| %s | %d |\n", e.tag, e.count)
	}
	b.WriteString("\n")
}

type tagEntry struct {
	tag   string
	count int
}

func sortedEntries(freqs map[string]int) []tagEntry {
	entries := make([]tagEntry, 0, len(freqs))
	for tag, n := range freqs {
		entries = append(entries, tagEntry{tag: tag, count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].tag < entries[j].tag
	})
	return entries
}

// WriteHTML renders the Markdown report to an HTML file at path.
func WriteHTML(markdown, path string) error {
	var out bytes.Buffer
	if err := md.Convert([]byte(markdown), &out); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
