package main

import "testing"

func TestLiteralPrefilterDetectsPlainLiterals(t *testing.T) {
	pf := literalPrefilter("needle")
	if pf == nil {
		t.Fatal("expected a prefilter for a plain literal pattern")
	}
	if !pf.IsMatch([]byte("a haystack with needle in it")) {
		t.Fatal("expected prefilter to find the literal")
	}
	if pf.IsMatch([]byte("no match here")) {
		t.Fatal("expected prefilter to reject a haystack without the literal")
	}
}

func TestLiteralPrefilterRejectsNonLiterals(t *testing.T) {
	for _, pattern := range []string{"a+", "[0-9]+", "^anchored$", "(?i)fold"} {
		if pf := literalPrefilter(pattern); pf != nil {
			t.Errorf("literalPrefilter(%q): expected nil for a non-plain-literal pattern", pattern)
		}
	}
}
