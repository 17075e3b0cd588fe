package lex

import (
	"testing"

	"github.com/dekarrin/gampa/charflow"
)

func Test_Tokenizer_longestMatchWins(t *testing.T) {
	b := NewBuilder()
	if err := b.AddPattern("id", Class{ID: "id"}, `\p{Alpha}\w*`, false); err != nil {
		t.Fatalf("AddPattern id: %v", err)
	}
	if err := b.AddDiscardPattern("ws", `[ \t]+`, false); err != nil {
		t.Fatalf("AddPattern ws: %v", err)
	}
	tz, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	flow := charflow.New("foo123 bar")
	tok, err := tz.Next(flow)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tok.Lexeme != "foo123" || tok.Class.ID != "id" {
		t.Fatalf("got %+v, want lexeme foo123 class id", tok)
	}

	tok2, err := tz.Next(flow)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tok2.Lexeme != "bar" {
		t.Fatalf("got %+v, want lexeme bar", tok2)
	}
}

func Test_Tokenizer_abovePriorityResolvesKeywordVsIdentifier(t *testing.T) {
	b := NewBuilder()
	if err := b.AddPattern("id", Class{ID: "id"}, `\p{Alpha}\w*`, false); err != nil {
		t.Fatal(err)
	}
	if err := b.AddPattern("or", Class{ID: "or"}, `or`, false); err != nil {
		t.Fatal(err)
	}
	b.Above("or", "id")

	tz, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	flow := charflow.New("or")
	tok, err := tz.Next(flow)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tok.Class.ID != "or" {
		t.Fatalf("got class %q, want %q", tok.Class.ID, "or")
	}
}

func Test_Tokenizer_errorOnNoMatch(t *testing.T) {
	b := NewBuilder()
	if err := b.AddPattern("digit", Class{ID: "digit"}, `[0-9]+`, false); err != nil {
		t.Fatal(err)
	}
	tz, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	flow := charflow.New("$$$")
	if _, err := tz.Next(flow); err == nil {
		t.Fatal("expected tokenize error for unmatched input")
	}
}

func Test_Builder_ambiguousPatternTieIsBuildError(t *testing.T) {
	b := NewBuilder()
	if err := b.AddPattern("foo", Class{ID: "foo"}, `foo`, false); err != nil {
		t.Fatal(err)
	}
	if err := b.AddPattern("bar", Class{ID: "bar"}, `foo`, false); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("expected ambiguous pattern build error, got nil")
	}
}

func Test_Builder_aboveRelationResolvesOtherwiseAmbiguousTie(t *testing.T) {
	b := NewBuilder()
	if err := b.AddPattern("foo", Class{ID: "foo"}, `foo`, false); err != nil {
		t.Fatal(err)
	}
	if err := b.AddPattern("bar", Class{ID: "bar"}, `foo`, false); err != nil {
		t.Fatal(err)
	}
	b.Above("foo", "bar")

	tz, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	flow := charflow.New("foo")
	tok, err := tz.Next(flow)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tok.Class.ID != "foo" {
		t.Fatalf("got class %q, want %q", tok.Class.ID, "foo")
	}
}

func Test_Tokenizer_reluctantPatternStopsAtFirstAccept(t *testing.T) {
	b := NewBuilder()
	if err := b.AddPattern("a", Class{ID: "a"}, `a+`, true); err != nil {
		t.Fatal(err)
	}
	tz, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	flow := charflow.New("aaa")
	tok, err := tz.Next(flow)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tok.Lexeme != "a" {
		t.Fatalf("got lexeme %q, want %q (reluctant should stop at first accept)", tok.Lexeme, "a")
	}
}

func Test_Tokenizer_greedyPatternConsumesAsMuchAsPossible(t *testing.T) {
	b := NewBuilder()
	if err := b.AddPattern("a", Class{ID: "a"}, `a+`, false); err != nil {
		t.Fatal(err)
	}
	tz, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	flow := charflow.New("aaa")
	tok, err := tz.Next(flow)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if tok.Lexeme != "aaa" {
		t.Fatalf("got lexeme %q, want %q (greedy should consume all)", tok.Lexeme, "aaa")
	}
}

func Test_Tokenizer_eofToken(t *testing.T) {
	b := NewBuilder()
	if err := b.AddPattern("digit", Class{ID: "digit"}, `[0-9]+`, false); err != nil {
		t.Fatal(err)
	}
	tz, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	flow := charflow.New("1")
	if _, err := tz.Next(flow); err != nil {
		t.Fatal(err)
	}
	tok, err := tz.Next(flow)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Class != EOF {
		t.Fatalf("got class %v, want EOF", tok.Class)
	}
}
