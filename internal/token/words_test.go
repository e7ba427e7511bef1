package token_test

import (
	"testing"

	"iomode/internal/token"
)

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		text string
		want token.Category
	}{
		// "self" and "thisContext" appear in MessageWords-adjacent sets in
		// the original mode; the self-reference table must win.
		{"self", token.CategorySelfRef},
		{"thisContext", token.CategorySelfRef},
		{"call", token.CategorySelfRef},
		{"and", token.CategoryOperator},
		{"true", token.CategoryBool},
		{"nil", token.CategoryBool},
		{"Object", token.CategoryProto},
		{"Lobby", token.CategoryProto},
		{"clone", token.CategoryMessage},
		{"println", token.CategoryMessage},
		{"#", token.CategoryComment},
		{"//", token.CategoryComment},
	}
	for _, tc := range cases {
		got, ok := token.Classify(tc.text)
		if !ok {
			t.Errorf("Classify(%q) missed, want %v", tc.text, tc.want)
			continue
		}
		if got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestClassifyMiss(t *testing.T) {
	for _, text := range []string{"frobnicate", "", "object", "CLONE"} {
		if cat, ok := token.Classify(text); ok {
			t.Errorf("Classify(%q) = %v, want miss (tables are case-sensitive)", text, cat)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !(token.Token{Kind: token.ColonAssign}).IsOperator() {
		t.Fatalf(":= must be an operator")
	}
	if !(token.Token{Kind: token.TriQuoteLit}).IsLiteral() {
		t.Fatalf("triquote must be a literal")
	}
	if !(token.Token{Kind: token.Comma}).IsPunct() {
		t.Fatalf(", must be punctuation")
	}
	if (token.Token{Kind: token.Ident}).IsOperator() {
		t.Fatalf("ident is not an operator")
	}
}
