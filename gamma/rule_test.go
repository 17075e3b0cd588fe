package gamma

import (
	"testing"

	"github.com/dekarrin/gampa/symbol"
)

func testResolver(syms map[string]*symbol.Symbol) Resolver {
	return func(name string) (*symbol.Symbol, error) {
		if s, ok := syms[name]; ok {
			return s, nil
		}
		return nil, errNotFound(name)
	}
}

type notFoundErr string

func (e notFoundErr) Error() string { return "unknown symbol: " + string(e) }
func errNotFound(name string) error { return notFoundErr(name) }

func Test_ParseString_andCompile_leftAssociativeRepeat(t *testing.T) {
	plus := symbol.NewTerminal("+")
	num := symbol.NewTerminal("num")
	syms := map[string]*symbol.Symbol{"num": num, "PLUS": plus}

	// E -> num (PLUS num)*
	body, err := ParseString("num (PLUS num)*", testResolver(syms))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}

	rule := &Rule{ID: 1, Head: symbol.NewNonTerminal("E"), Body: body}
	compiled := Compile(rule)

	// Walk "num PLUS num PLUS num" through the forward DFA; it should accept
	// at every point after consuming a num.
	state := 0
	input := []*symbol.Symbol{num, plus, num, plus, num}
	for i, sym := range input {
		next, ok := compiled.Forward.Step(state, sym)
		if !ok {
			t.Fatalf("no forward transition on symbol %d (%s) from state %d", i, sym, state)
		}
		state = next
	}
	if !compiled.Forward.IsAccepting(state) {
		t.Fatal("expected forward DFA to accept after num PLUS num PLUS num")
	}

	// The reversed DFA should accept the same sequence read backwards.
	revState := 0
	for i := len(input) - 1; i >= 0; i-- {
		next, ok := compiled.Reversed.Step(revState, input[i])
		if !ok {
			t.Fatalf("no reversed transition at input index %d from state %d", i, revState)
		}
		revState = next
	}
	if !compiled.Reversed.IsAccepting(revState) {
		t.Fatal("expected reversed DFA to accept reversed input")
	}
}

func Test_ParseString_optionalAndEmptyBody(t *testing.T) {
	id := symbol.NewTerminal("id")
	syms := map[string]*symbol.Symbol{"id": id}

	body, err := ParseString("id?", testResolver(syms))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	rule := &Rule{ID: 2, Head: symbol.NewNonTerminal("Opt"), Body: body}
	compiled := Compile(rule)

	if !compiled.Forward.IsAccepting(0) {
		t.Fatal("id? should accept the empty sequence at the start state")
	}
	next, ok := compiled.Forward.Step(0, id)
	if !ok || !compiled.Forward.IsAccepting(next) {
		t.Fatal("id? should also accept after consuming one id")
	}
}
