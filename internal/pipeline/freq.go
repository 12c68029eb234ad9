// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/ovoronina/corpus-annotator/internal/corpus"
	"github.com/ovoronina/corpus-annotator/pkg/types"
)

// tagPattern matches the "<TAG" prefix emitted by Token.SingleTagged: an
// opening angle bracket followed by one or more uppercase letters.
var tagPattern = regexp.MustCompile(`<([A-Z]+)`)

// TagFrequencies counts tag occurrences in single-tagged artifact text.
func TagFrequencies(text string) map[string]int {
	freqs := make(map[string]int)
	for _, m := range tagPattern.FindAllStringSubmatch(text, -1) {
		freqs[m[1]]++
	}
	return freqs
}

// DocumentFrequencies reads the persisted single-tagged artifact for doc
// and reports tag counts for exactly that document.
func DocumentFrequencies(doc *types.Document) (map[string]int, error) {
	path, ok := doc.Artifact(types.ArtifactSingleTagged)
	if !ok {
		path = doc.ArtifactPath(types.ArtifactSingleTagged)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading single-tagged artifact for document %d: %w", doc.ID, err)
	}
	return TagFrequencies(string(data)), nil
}

// CorpusFrequencies aggregates tag counts across every document in the
// registry. DocumentFrequencies reports one document; this is the explicit
// corpus-wide operation.
func CorpusFrequencies(reg corpus.Registry) (map[string]int, error) {
	totals := make(map[string]int)
	for _, doc := range reg {
		freqs, err := DocumentFrequencies(doc)
		if err != nil {
			return nil, err
		}
		for tag, n := range freqs {
			totals[tag] += n
		}
	}
	return totals, nil
}

// FormatFrequencies renders a frequency map with tags in sorted order so
// run output is deterministic.
func FormatFrequencies(freqs map[string]int) string {
	tags := make([]string, 0, len(freqs))
	for t := range freqs {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	var b strings.Builder
	b.WriteByte('{')
	for i, t := range tags {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s:%d", t, freqs[t])
	}
	b.WriteByte('}')
	return b.String()
}
