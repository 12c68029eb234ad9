// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package morph

import "testing"

func TestTokenRenderings(t *testing.T) {
	tests := []struct {
		name         string
		token        Token
		wantCleaned  string
		wantSingle   string
		wantMultiple string
	}{
		{
			name: "cyrillic verb",
			token: Token{
				Surface: "Бежал",
				Lemma:   "бежать",
				TagA:    "V,несов=непрош",
				TagB:    "VERB,perf",
			},
			wantCleaned:  "бежал",
			wantSingle:   "бежать<V,несов=непрош>",
			wantMultiple: "бежать<V,несов=непрош>(VERB,perf)",
		},
		{
			name: "latin noun",
			token: Token{
				Surface: "Corpus",
				Lemma:   "corpus",
				TagA:    "S,neut",
				TagB:    "NOUN,inan",
			},
			wantCleaned:  "corpus",
			wantSingle:   "corpus<S,neut>",
			wantMultiple: "corpus<S,neut>(NOUN,inan)",
		},
		{
			name:         "empty tags keep delimiters",
			token:        Token{Surface: "x", Lemma: "x"},
			wantCleaned:  "x",
			wantSingle:   "x<>",
			wantMultiple: "x<>()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.Cleaned(); got != tt.wantCleaned {
				t.Errorf("Cleaned() = %q, want %q", got, tt.wantCleaned)
			}
			if got := tt.token.SingleTagged(); got != tt.wantSingle {
				t.Errorf("SingleTagged() = %q, want %q", got, tt.wantSingle)
			}
			if got := tt.token.MultipleTagged(); got != tt.wantMultiple {
				t.Errorf("MultipleTagged() = %q, want %q", got, tt.wantMultiple)
			}
		})
	}
}
