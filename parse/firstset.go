package parse

import (
	"github.com/dekarrin/gampa/gamma"
	"github.com/dekarrin/gampa/symbol"
)

// FirstSets holds, per non-terminal, the set of terminals that can begin a
// string it derives, plus whether it can derive the empty string.
// Nullability is folded into the same per-symbol set, keyed by the shared
// EMPTY sentinel, rather than tracked in a parallel map: EMPTY never leaks
// out through Of, since it never appears in any action table column.
type FirstSets struct {
	empty *symbol.Symbol
	sets  map[*symbol.Symbol]map[*symbol.Symbol]bool
}

// Of returns the FIRST set of non-terminal nt, excluding the EMPTY sentinel.
func (fs *FirstSets) Of(nt *symbol.Symbol) map[*symbol.Symbol]bool {
	out := map[*symbol.Symbol]bool{}
	for t := range fs.sets[nt] {
		if !t.IsEmpty() {
			out[t] = true
		}
	}
	return out
}

// Nullable reports whether nt can derive the empty string.
func (fs *FirstSets) Nullable(nt *symbol.Symbol) bool {
	return fs.sets[nt][fs.empty]
}

// ComputeFirstSets runs the FIRST-set fixpoint over g's rules. Unlike the
// classical formulation over flat symbol sequences, each iteration walks
// the reachable subgraph of a rule's forward DFA rather than advancing a
// dot one position at a time, since a rule's body can branch.
func ComputeFirstSets(g *Grammar) *FirstSets {
	fs := &FirstSets{
		empty: symbol.NewEmpty(),
		sets:  map[*symbol.Symbol]map[*symbol.Symbol]bool{},
	}
	for _, nt := range g.NonTerminals {
		fs.sets[nt] = map[*symbol.Symbol]bool{}
	}

	changed := true
	for changed {
		changed = false
		for _, rule := range g.Rules {
			added, nullableNow := firstOfState(fs, rule, 0)
			head := rule.Rule.Head
			for t := range added {
				if !fs.sets[head][t] {
					fs.sets[head][t] = true
					changed = true
				}
			}
			if nullableNow && !fs.sets[head][fs.empty] {
				fs.sets[head][fs.empty] = true
				changed = true
			}
		}
	}
	return fs
}

// firstOfState computes, using the current (possibly still-incomplete) fs,
// the terminals that can begin whatever rule still needs to consume from
// state onward, and whether that remainder can be empty. It is also used
// directly by the canonical-collection closure to compute a context's
// lookahead: firstOfState(fs, rule, to) is exactly "what can follow the
// symbol that was just consumed to reach state to".
func firstOfState(fs *FirstSets, rule *gamma.CompiledRule, start int) (map[*symbol.Symbol]bool, bool) {
	result := map[*symbol.Symbol]bool{}
	nullable := rule.Forward.IsAccepting(start)
	visited := map[int]bool{}

	var visit func(state int)
	visit = func(state int) {
		if visited[state] {
			return
		}
		visited[state] = true
		for sym, to := range rule.Forward.States[state].Trans {
			if sym.IsTerminal() {
				result[sym] = true
				continue
			}
			for t := range fs.sets[sym] {
				if !t.IsEmpty() {
					result[t] = true
				}
			}
			if fs.sets[sym][fs.empty] {
				if rule.Forward.IsAccepting(to) {
					nullable = true
				}
				visit(to)
			}
		}
	}
	visit(start)
	return result, nullable
}
