// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnalyzerEntry is one entry of the primary analyzer's output for a
// document: a piece of surface text with zero or more candidate analyses.
// The JSON tags match mystem's wire format, so the backend decodes its
// output directly into this type.
type AnalyzerEntry struct {
	// SurfaceText is the text exactly as it appeared in the source.
	SurfaceText string `json:"text" yaml:"text"`

	// Analyses lists candidate analyses, best first. Punctuation and
	// whitespace entries carry none.
	Analyses []Analysis `json:"analysis,omitempty" yaml:"analysis,omitempty"`
}

// Analysis is one candidate analysis of a surface form.
type Analysis struct {
	// Lemma is the dictionary (normalized) form.
	Lemma string `json:"lex" yaml:"lex"`

	// Tag is the grammatical tag string (part of speech, case, number...).
	Tag string `json:"gr" yaml:"gr"`
}

// Parse is one ranked morphological parse from the secondary analyzer.
type Parse struct {
	// Tag is the parse's tag representation.
	Tag string `json:"tag" yaml:"tag"`

	// Score is the parse's rank score; parses arrive best first.
	Score float64 `json:"score" yaml:"score"`
}
