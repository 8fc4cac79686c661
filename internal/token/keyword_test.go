package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":     KwFn,
		"let":    KwLet,
		"true":   KwTrue,
		"false":  KwFalse,
		"if":     KwIf,
		"else":   KwElse,
		"return": KwReturn,
	}
	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// definitely NOT keywords
	notKw := []string{
		"Fn", "LET", "True", "RETURN", // case matters
		"function", "lets", "iff", "elsewhere", "returns",
		"identifier", "",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
