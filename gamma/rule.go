package gamma

import (
	"github.com/dekarrin/gampa/autom"
	"github.com/dekarrin/gampa/symbol"
)

// Rule is one production: Head -> Body, where Body is a compiled gamma
// regex over grammar symbols rather than a flat symbol sequence. ID is
// assigned by whatever grammar owns the rule and is used to tag reduce
// actions.
type Rule struct {
	ID   int
	Head *symbol.Symbol
	Body Node
}

// RuleDFA is one of the two per-rule DFAs (forward or reversed) produced by
// Compile. States[0] is always the start state.
type RuleDFA struct {
	States []*autom.Node[*symbol.Symbol]
}

// IsAccepting reports whether state is one at which the rule's body has
// fully matched.
func (d *RuleDFA) IsAccepting(state int) bool {
	return d.States[state].Final
}

// Step follows the transition on sym from state, returning ok=false if
// there is none.
func (d *RuleDFA) Step(state int, sym *symbol.Symbol) (int, bool) {
	to, ok := d.States[state].Trans[sym]
	return to, ok
}

// CompiledRule bundles a Rule with its forward DFA (walked symbol by symbol
// while a production is being recognized) and reversed DFA (walked
// backwards over the stack at reduce time to find how many frames the
// reduction consumes).
type CompiledRule struct {
	Rule     *Rule
	Forward  *RuleDFA
	Reversed *RuleDFA
}

// Compile builds both per-rule DFAs for rule's gamma regex body.
func Compile(rule *Rule) *CompiledRule {
	return &CompiledRule{
		Rule:     rule,
		Forward:  buildDFA(rule.Body),
		Reversed: buildDFA(reverseNode(rule.Body)),
	}
}

func buildDFA(n Node) *RuleDFA {
	arena := autom.NewArena[*symbol.Symbol]()
	start, end := thompson(arena, n)
	arena.SetFinal(end, nil)
	states := autom.Determinize(arena, autom.ExactGrouper[*symbol.Symbol](), start)
	return &RuleDFA{States: states}
}

// thompson builds n's fragment into arena via Thompson's construction,
// returning the fragment's start and end state ids.
func thompson(arena *autom.Arena[*symbol.Symbol], n Node) (start, end int) {
	switch v := n.(type) {
	case *SymbolLeaf:
		s := arena.NewNode()
		e := arena.NewNode()
		arena.AddTrans(s, v.Sym, e)
		return s, e

	case *Sequence:
		if len(v.Items) == 0 {
			s := arena.NewNode()
			return s, s
		}
		start, prevEnd := thompson(arena, v.Items[0])
		for _, item := range v.Items[1:] {
			s2, e2 := thompson(arena, item)
			arena.AddEpsilon(prevEnd, s2)
			prevEnd = e2
		}
		return start, prevEnd

	case *Choice:
		s := arena.NewNode()
		e := arena.NewNode()
		for _, opt := range v.Options {
			os, oe := thompson(arena, opt)
			arena.AddEpsilon(s, os)
			arena.AddEpsilon(oe, e)
		}
		return s, e

	case *Quantified:
		os, oe := thompson(arena, v.Target)
		s := arena.NewNode()
		e := arena.NewNode()
		switch v.Op {
		case QuantStar:
			arena.AddEpsilon(s, os)
			arena.AddEpsilon(oe, e)
			arena.AddEpsilon(s, e)
			arena.AddEpsilon(oe, os)
		case QuantPlus:
			arena.AddEpsilon(s, os)
			arena.AddEpsilon(oe, e)
			arena.AddEpsilon(oe, os)
		case QuantOption:
			arena.AddEpsilon(s, os)
			arena.AddEpsilon(oe, e)
			arena.AddEpsilon(s, e)
		}
		return s, e

	default:
		panic("gamma: unknown node type in thompson construction")
	}
}

// reverseNode returns a gamma regex matching the reverse of every string n
// matches. Reversing a rule's forward DFA by reversing its AST first (rather
// than reversing the NFA graph after the fact) keeps the construction a
// straightforward recursive mirror, the same trick the character regex side
// would use if it ever needed a reversed DFA.
func reverseNode(n Node) Node {
	switch v := n.(type) {
	case *SymbolLeaf:
		return v
	case *Sequence:
		rev := make([]Node, len(v.Items))
		for i, it := range v.Items {
			rev[len(v.Items)-1-i] = reverseNode(it)
		}
		return &Sequence{Items: rev}
	case *Choice:
		opts := make([]Node, len(v.Options))
		for i, o := range v.Options {
			opts[i] = reverseNode(o)
		}
		return &Choice{Options: opts}
	case *Quantified:
		return &Quantified{Op: v.Op, Target: reverseNode(v.Target)}
	default:
		panic("gamma: unknown node type in reverseNode")
	}
}
