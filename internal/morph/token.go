// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package morph holds the per-token annotation model and the two external
// morphological analyzer backends.
package morph

import "strings"

// Token holds one token's surface form plus the outputs of both analyzers.
// Tokens are ephemeral: the pipeline renders them into the three artifact
// views and discards them.
type Token struct {
	// Surface is the token exactly as it appeared in the source text.
	Surface string

	// Lemma is the normalized form from the primary analyzer.
	Lemma string

	// TagA is the grammatical tag string from the primary analyzer.
	TagA string

	// TagB is the tag of the secondary analyzer's top-ranked parse.
	TagB string
}

// Cleaned returns the lowercased surface form.
func (t Token) Cleaned() string {
	return strings.ToLower(t.Surface)
}

// SingleTagged returns "lemma<TagA>". Frequency extraction depends on the
// "<TAG" prefix appearing literally after the lemma, so the delimiters
// must not change.
func (t Token) SingleTagged() string {
	return t.Lemma + "<" + t.TagA + ">"
}

// MultipleTagged returns "lemma<TagA>(TagB)".
func (t Token) MultipleTagged() string {
	return t.Lemma + "<" + t.TagA + ">(" + t.TagB + ")"
}
