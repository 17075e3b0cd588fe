package lex

import (
	"strings"

	"github.com/dekarrin/gampa/autom"
	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/interval"
	"github.com/dekarrin/gampa/lexregex"
)

// patternEntry is the final-state payload carried through determinization;
// it is what a DFA node's autom.Node.Entries holds once a pattern's Thompson
// fragment reaches its accepting state.
type patternEntry struct {
	index     int
	name      string
	class     Class
	reluctant bool
	discard   bool
}

// pattern is one registered lexical pattern awaiting compilation.
type pattern struct {
	name      string
	class     Class
	source    string
	ast       lexregex.Node
	reluctant bool
	discard   bool
}

// Builder assembles a set of named patterns into a Tokenizer. Patterns are
// tried in longest-match order; ties are broken by the "above" relation
// registered via Above. A tie left between patterns of different token
// classes is a build error; a tie among patterns of the same class goes to
// the earliest-defined one.
type Builder struct {
	patterns []pattern
	above    map[string]map[string]bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{above: map[string]map[string]bool{}}
}

// AddPattern registers a named pattern. regex is parsed immediately so
// malformed patterns are reported at registration time rather than at
// Build. A reluctant pattern loses every tie against a non-reluctant
// pattern, win or lose on length alone as normal.
func (b *Builder) AddPattern(name string, class Class, regex string, reluctant bool) error {
	return b.addPattern(name, class, regex, reluctant, false)
}

// AddDiscardPattern registers a pattern (typically whitespace or comments)
// whose matches are consumed but never returned as tokens by Tokenizer.Next.
func (b *Builder) AddDiscardPattern(name string, regex string, reluctant bool) error {
	return b.addPattern(name, Class{}, regex, reluctant, true)
}

func (b *Builder) addPattern(name string, class Class, regex string, reluctant, discard bool) error {
	ast, err := lexregex.ParseString(regex)
	if err != nil {
		return gampaerr.WrapBuildf(err, "pattern %q", name)
	}
	b.patterns = append(b.patterns, pattern{
		name:      name,
		class:     class,
		source:    regex,
		ast:       ast,
		reluctant: reluctant,
		discard:   discard,
	})
	return nil
}

// Above records that, on a tie, higher should win over lower. The relation
// need not be transitive; ties among more than two candidates are resolved
// by discarding every candidate that loses to some other still-tied
// candidate.
func (b *Builder) Above(higher, lower string) {
	if b.above[higher] == nil {
		b.above[higher] = map[string]bool{}
	}
	b.above[higher][lower] = true
}

func (b *Builder) isAbove(higher, lower string) bool {
	return b.above[higher] != nil && b.above[higher][lower]
}

// Build determinizes every registered pattern into a single Tokenizer.
func (b *Builder) Build() (*Tokenizer, error) {
	if len(b.patterns) == 0 {
		return nil, gampaerr.Build("tokenizer has no registered patterns")
	}

	arena := autom.NewArena[interval.Range]()
	start := arena.NewNode()
	for i, p := range b.patterns {
		s, e := thompson(arena, p.ast)
		arena.AddEpsilon(start, s)
		arena.SetFinal(e, &patternEntry{index: i, name: p.name, class: p.class, reluctant: p.reluctant, discard: p.discard})
	}

	states := autom.Determinize(arena, rangeGrouper, start)

	accept := make([]*patternEntry, len(states))
	for i, st := range states {
		if !st.Final {
			continue
		}
		winner, err := resolveWinner(st.Entries, b.isAbove)
		if err != nil {
			return nil, err
		}
		if winner == nil {
			return nil, gampaerr.Buildf("internal state %d has no resolvable accept", i)
		}
		accept[i] = winner
	}

	return &Tokenizer{states: states, accept: accept}, nil
}

// rangeGrouper reconciles a DFA state's raw, possibly overlapping outgoing
// range transitions into a disjoint set, using interval.DisjointValuedList
// with the raw target node id standing in as the "value" each sub-range is
// tagged with.
func rangeGrouper(pairs []autom.Pair[interval.Range]) []autom.Group[interval.Range] {
	data := make([]interval.RangeValues[int], len(pairs))
	for i, p := range pairs {
		data[i] = interval.RangeValues[int]{Range: p.Key, Values: map[int]bool{p.To: true}}
	}
	disjoint := interval.DisjointValuedList(data)
	groups := make([]autom.Group[interval.Range], len(disjoint))
	for i, d := range disjoint {
		groups[i] = autom.Group[interval.Range]{Key: d.Range, To: d.Values}
	}
	return groups
}

// resolveWinner picks the single accepting pattern a DFA final state should
// report, given the raw set of patternEntry payloads (possibly nil-padded)
// collected across every build node the subset covers. Entries that share a
// token class merge silently (the lowest-index one wins); entries with
// distinct token classes left tied after reluctant-filtering and the above
// relation are an ambiguous-pattern build error, never a silent pick.
func resolveWinner(entries []any, above func(higher, lower string) bool) (*patternEntry, error) {
	cands := dedupeEntries(entries)
	if len(cands) == 0 {
		return nil, nil
	}
	if len(cands) == 1 {
		return cands[0], nil
	}

	if nonReluctant := filterReluctant(cands); len(nonReluctant) > 0 {
		cands = nonReluctant
	}
	if undominated := filterDominated(cands, above); len(undominated) > 0 {
		cands = undominated
	}

	if len(cands) > 1 && !sameClass(cands) {
		names := make([]string, len(cands))
		for i, c := range cands {
			names[i] = c.name
		}
		return nil, gampaerr.Buildf("ambiguous pattern: %s tie with no above relation to resolve them", strings.Join(names, ", "))
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.index < best.index {
			best = c
		}
	}
	return best, nil
}

// dedupeEntries strips nils and collapses duplicate pointers (the same
// pattern reached the subset via more than one raw build node).
func dedupeEntries(entries []any) []*patternEntry {
	var cands []*patternEntry
	seen := map[*patternEntry]bool{}
	for _, e := range entries {
		if e == nil {
			continue
		}
		pe := e.(*patternEntry)
		if seen[pe] {
			continue
		}
		seen[pe] = true
		cands = append(cands, pe)
	}
	return cands
}

// sameClass reports whether every candidate produces the same token class,
// i.e. they are aliases of the same token-id rather than a genuine
// ambiguity.
func sameClass(cands []*patternEntry) bool {
	for _, c := range cands[1:] {
		if c.class != cands[0].class {
			return false
		}
	}
	return true
}

func filterReluctant(cands []*patternEntry) []*patternEntry {
	var out []*patternEntry
	for _, c := range cands {
		if !c.reluctant {
			out = append(out, c)
		}
	}
	return out
}

func filterDominated(cands []*patternEntry, above func(higher, lower string) bool) []*patternEntry {
	var out []*patternEntry
	for _, c := range cands {
		dominated := false
		for _, other := range cands {
			if other != c && above(other.name, c.name) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, c)
		}
	}
	return out
}

// thompson builds n's fragment into arena via Thompson's construction,
// returning the fragment's start and end state ids. A Class leaf fans out
// one parallel transition per disjoint range it matches.
func thompson(arena *autom.Arena[interval.Range], n lexregex.Node) (start, end int) {
	switch v := n.(type) {
	case *lexregex.Class:
		s := arena.NewNode()
		e := arena.NewNode()
		for _, r := range v.Ranges {
			arena.AddTrans(s, r, e)
		}
		return s, e

	case *lexregex.Sequence:
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

	case *lexregex.Choice:
		s := arena.NewNode()
		e := arena.NewNode()
		for _, opt := range v.Options {
			os, oe := thompson(arena, opt)
			arena.AddEpsilon(s, os)
			arena.AddEpsilon(oe, e)
		}
		return s, e

	case *lexregex.Quantified:
		os, oe := thompson(arena, v.Target)
		s := arena.NewNode()
		e := arena.NewNode()
		switch v.Op {
		case lexregex.QuantStar:
			arena.AddEpsilon(s, os)
			arena.AddEpsilon(oe, e)
			arena.AddEpsilon(s, e)
			arena.AddEpsilon(oe, os)
		case lexregex.QuantPlus:
			arena.AddEpsilon(s, os)
			arena.AddEpsilon(oe, e)
			arena.AddEpsilon(oe, os)
		case lexregex.QuantOption:
			arena.AddEpsilon(s, os)
			arena.AddEpsilon(oe, e)
			arena.AddEpsilon(s, e)
		}
		return s, e

	default:
		panic("lex: unknown lexregex.Node type in thompson construction")
	}
}
