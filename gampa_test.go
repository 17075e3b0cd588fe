package gampa

import (
	"testing"

	"github.com/dekarrin/gampa/gamma"
	"github.com/dekarrin/gampa/parse"
)

func buildArithmeticRuntime(t *testing.T) *Runtime {
	t.Helper()

	tb := NewTokenizerBuilder()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("AddPattern: %v", err)
		}
	}
	must(tb.AddPattern("NUM", `\p{Digit}+`, false))
	must(tb.AddPattern("PLUS", `\+`, false))
	must(tb.AddPattern("STAR", `\*`, false))
	must(tb.AddPattern("LPAREN", `\(`, false))
	must(tb.AddPattern("RPAREN", `\)`, false))
	must(tb.AddDiscardPattern("WS", `[ \t]+`, false))
	tz, err := tb.Build()
	if err != nil {
		t.Fatalf("Build tokenizer: %v", err)
	}

	pb := NewParserBuilder("E").
		DeclareTerminals("NUM", "PLUS", "STAR", "LPAREN", "RPAREN").
		DeclareNonTerminals("T", "F").
		AddRule("E", "T (PLUS T)*").
		AddRule("T", "F (STAR F)*").
		AddRule("F", "NUM | LPAREN E RPAREN")
	p, err := pb.Build()
	if err != nil {
		t.Fatalf("Build parser: %v", err)
	}

	return NewRuntime(tz, p)
}

func Test_Runtime_Parse_arithmeticExpression(t *testing.T) {
	rt := buildArithmeticRuntime(t)

	result, err := rt.Parse("1 + 2 * (3 + 4)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tree, ok := result.(*parse.Tree)
	if !ok {
		t.Fatalf("result type = %T, want *parse.Tree", result)
	}
	if tree.Symbol.Name != "E" {
		t.Fatalf("root symbol = %s, want E", tree.Symbol.Name)
	}
}

func Test_Runtime_Parse_reportsUnexpectedToken(t *testing.T) {
	rt := buildArithmeticRuntime(t)

	if _, err := rt.Parse("1 +"); err == nil {
		t.Fatal("expected a parse error for a truncated expression")
	}
}

func Test_ParserBuilder_WithReducer_overridesDefaultTreeBuilding(t *testing.T) {
	tb := NewTokenizerBuilder()
	if err := tb.AddPattern("NUM", `\p{Digit}+`, false); err != nil {
		t.Fatal(err)
	}
	tz, err := tb.Build()
	if err != nil {
		t.Fatalf("Build tokenizer: %v", err)
	}

	pb := NewParserBuilder("E").
		DeclareTerminals("NUM").
		AddRule("E", "NUM").
		WithReducer(func(rule *gamma.CompiledRule, data []any) (any, error) {
			return "reduced", nil
		})
	p, err := pb.Build()
	if err != nil {
		t.Fatalf("Build parser: %v", err)
	}

	rt := NewRuntime(tz, p)
	result, err := rt.Parse("1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if result != "reduced" {
		t.Fatalf("result = %v, want \"reduced\"", result)
	}
}

func Test_ParserBuilder_Rules_forFingerprinting(t *testing.T) {
	pb := NewParserBuilder("E").
		DeclareTerminals("NUM").
		AddRule("E", "NUM")
	if len(pb.Rules()) != 1 {
		t.Fatalf("Rules() len = %d, want 1", len(pb.Rules()))
	}
	if pb.Start() != "E" {
		t.Fatalf("Start() = %s, want E", pb.Start())
	}
}
