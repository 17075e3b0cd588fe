package parse

import (
	"fmt"
	"sort"

	"github.com/dekarrin/gampa/gamma"
	"github.com/dekarrin/gampa/symbol"
)

// item is a marked rule: rule has been matched up through Forward DFA state
// state. Its lookahead set (the terminals on which reduction is valid) is
// kept beside it, as the value in node.items. This replaces the classical
// "dot position within a flat production" with a DFA state, since a rule's
// gamma-regex body can branch.
type item struct {
	rule  *gamma.CompiledRule
	state int
}

// node is one state of the canonical collection: a closed, lookahead-merged
// set of items.
type node struct {
	id        int
	items     map[item]map[*symbol.Symbol]bool
	terminals map[*symbol.Symbol]int // GOTO on a terminal (shift target)
	nonterms  map[*symbol.Symbol]int // GOTO on a non-terminal
}

func newNode(id int) *node {
	return &node{
		id:        id,
		items:     map[item]map[*symbol.Symbol]bool{},
		terminals: map[*symbol.Symbol]int{},
		nonterms:  map[*symbol.Symbol]int{},
	}
}

func (n *node) add(it item, lookahead map[*symbol.Symbol]bool) bool {
	set, ok := n.items[it]
	if !ok {
		set = map[*symbol.Symbol]bool{}
		n.items[it] = set
	}
	changed := !ok
	for t := range lookahead {
		if !set[t] {
			set[t] = true
			changed = true
		}
	}
	return changed
}

// closure expands n in place to include every item reachable by moving
// through non-terminal edges of items already in n, per the shared FIRST
// computation fs.
func closure(fs *FirstSets, g *Grammar, n *node) {
	changed := true
	for changed {
		changed = false
		for it, la := range copyItems(n.items) {
			states := it.rule.Forward.States
			for sym, to := range states[it.state].Trans {
				if sym.IsTerminal() {
					continue
				}
				contLA, nullableAfter := firstOfState(fs, it.rule, to)
				effective := contLA
				if nullableAfter {
					effective = unionLookahead(contLA, la)
				}
				for _, rule := range g.byHead[sym] {
					newItem := item{rule: rule, state: 0}
					if n.add(newItem, effective) {
						changed = true
					}
				}
			}
		}
	}
}

func copyItems(items map[item]map[*symbol.Symbol]bool) map[item]map[*symbol.Symbol]bool {
	out := make(map[item]map[*symbol.Symbol]bool, len(items))
	for it, la := range items {
		laCopy := make(map[*symbol.Symbol]bool, len(la))
		for t := range la {
			laCopy[t] = true
		}
		out[it] = laCopy
	}
	return out
}

func unionLookahead(a, b map[*symbol.Symbol]bool) map[*symbol.Symbol]bool {
	out := make(map[*symbol.Symbol]bool, len(a)+len(b))
	for t := range a {
		out[t] = true
	}
	for t := range b {
		out[t] = true
	}
	return out
}

// goTo computes the node reached from n by consuming sym, unclosed.
func goTo(n *node, sym *symbol.Symbol) *node {
	out := newNode(-1)
	for it, la := range n.items {
		to, ok := it.rule.Forward.States[it.state].Trans[sym]
		if !ok {
			continue
		}
		out.add(item{rule: it.rule, state: to}, la)
	}
	return out
}

// Collection is the full canonical collection: every distinct parser state
// reached from the start state, plus the transitions between them.
type Collection struct {
	Nodes []*node
}

// nodeKey produces a canonical string identifying a node's item set (including
// lookaheads), used to detect when two constructed nodes are actually the
// same canonical-collection state.
func nodeKey(n *node) string {
	type entry struct {
		rule  int
		state int
		la    []int
	}
	var entries []entry
	for it, la := range n.items {
		ids := make([]int, 0, len(la))
		for t := range la {
			ids = append(ids, t.ID)
		}
		sort.Ints(ids)
		entries = append(entries, entry{it.rule.Rule.ID, it.state, ids})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].rule != entries[j].rule {
			return entries[i].rule < entries[j].rule
		}
		return entries[i].state < entries[j].state
	})
	return fmt.Sprintf("%v", entries)
}

// BuildCollection constructs the full canonical collection for g, seeding
// the start state from g's augmented start rule with EOF as its sole
// lookahead.
func BuildCollection(g *Grammar, fs *FirstSets) *Collection {
	start := newNode(0)
	startRule := g.byHead[g.Start][0]
	start.add(item{rule: startRule, state: 0}, map[*symbol.Symbol]bool{g.EOF: true})
	closure(fs, g, start)

	seen := map[string]int{nodeKey(start): 0}
	nodes := []*node{start}

	for i := 0; i < len(nodes); i++ {
		cur := nodes[i]
		symSet := map[*symbol.Symbol]bool{}
		for it := range cur.items {
			for sym := range it.rule.Forward.States[it.state].Trans {
				symSet[sym] = true
			}
		}
		for sym := range symSet {
			next := goTo(cur, sym)
			if len(next.items) == 0 {
				continue
			}
			closure(fs, g, next)
			k := nodeKey(next)
			id, ok := seen[k]
			if !ok {
				id = len(nodes)
				next.id = id
				seen[k] = id
				nodes = append(nodes, next)
			}
			if sym.IsTerminal() {
				cur.terminals[sym] = id
			} else {
				cur.nonterms[sym] = id
			}
		}
	}

	return &Collection{Nodes: nodes}
}
