package gampacfg

import (
	"testing"

	"github.com/dekarrin/gampa/gamma"
	"github.com/dekarrin/gampa/parse"
	"github.com/dekarrin/gampa/symbol"
)

// compiledRuleStub returns a minimal CompiledRule usable only as a reduce
// action's payload in these tests; its body is never walked.
func compiledRuleStub(id int) *gamma.CompiledRule {
	head := symbol.NewNonTerminal("E")
	leaf := &gamma.SymbolLeaf{Sym: symbol.NewTerminal("x")}
	return gamma.Compile(&gamma.Rule{ID: id, Head: head, Body: leaf})
}

func Test_LoadPrecedenceTable_andResolveStarOverPlus(t *testing.T) {
	src := []byte(`
[operators.PLUS]
level = 1
assoc = "L"

[operators.STAR]
level = 2
assoc = "L"
`)
	pt, err := LoadPrecedenceTable(src)
	if err != nil {
		t.Fatalf("LoadPrecedenceTable: %v", err)
	}

	plusRule := compiledRuleStub(1)
	solver := NewSolver(pt, map[int]string{1: "PLUS"})

	star := symbol.NewTerminal("STAR")
	shift := parse.Action{Kind: parse.ActionShift, To: 5}
	reduce := parse.Action{Kind: parse.ActionReduce, Rule: plusRule}

	got, err := solver.Resolve(star, shift, reduce)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Kind != parse.ActionShift {
		t.Fatalf("got %v, want shift (STAR binds tighter than PLUS)", got)
	}
}

func Test_Resolve_leftAssociativeSameLevelPrefersReduce(t *testing.T) {
	src := []byte(`
[operators.PLUS]
level = 1
assoc = "L"
`)
	pt, err := LoadPrecedenceTable(src)
	if err != nil {
		t.Fatalf("LoadPrecedenceTable: %v", err)
	}
	plusRule := compiledRuleStub(1)
	solver := NewSolver(pt, map[int]string{1: "PLUS"})

	plus := symbol.NewTerminal("PLUS")
	shift := parse.Action{Kind: parse.ActionShift, To: 5}
	reduce := parse.Action{Kind: parse.ActionReduce, Rule: plusRule}

	got, err := solver.Resolve(plus, shift, reduce)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Kind != parse.ActionReduce {
		t.Fatalf("got %v, want reduce (left-associative tie)", got)
	}
}
