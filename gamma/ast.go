// Package gamma parses and compiles gamma regular expressions: the
// regex-like notation this module uses for production right-hand sides in
// place of classical flat symbol sequences. A gamma regex is built from
// grammar symbols (terminals and non-terminals) combined with alternation
// ('|'), concatenation, grouping, and the quantifiers '*', '+', '?'.
//
// Compiling a rule's gamma regex yields both a forward DFA (used by the
// parser builder to walk productions symbol by symbol while constructing the
// canonical collection) and a reversed DFA (used at parse time to delimit
// how many stack frames a reduction consumes).
package gamma

import "github.com/dekarrin/gampa/symbol"

// Node is one AST node of a compiled gamma regex.
type Node interface {
	Children() []Node
	shortName() string
}

// Choice matches any one of Options.
type Choice struct {
	Options []Node
}

func (c *Choice) Children() []Node  { return c.Options }
func (c *Choice) shortName() string { return "|" }

// ChoiceOf flattens nested Choice nodes and collapses a single option to
// itself.
func ChoiceOf(opts []Node) Node {
	var flat []Node
	for _, o := range opts {
		if ch, ok := o.(*Choice); ok {
			flat = append(flat, ch.Options...)
		} else {
			flat = append(flat, o)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Choice{Options: flat}
}

// Sequence matches each item in order. A zero-length Items matches the
// empty production.
type Sequence struct {
	Items []Node
}

func (s *Sequence) Children() []Node  { return s.Items }
func (s *Sequence) shortName() string { return "seq" }

// SequenceOf flattens nested Sequence nodes and collapses a single item to
// itself.
func SequenceOf(items []Node) Node {
	var flat []Node
	for _, it := range items {
		if sq, ok := it.(*Sequence); ok {
			flat = append(flat, sq.Items...)
		} else {
			flat = append(flat, it)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Sequence{Items: flat}
}

// Quantifier names a postfix repetition operator.
type Quantifier int

const (
	QuantStar Quantifier = iota
	QuantPlus
	QuantOption
)

func (q Quantifier) String() string {
	switch q {
	case QuantStar:
		return "*"
	case QuantPlus:
		return "+"
	case QuantOption:
		return "?"
	default:
		return "?unknown-quantifier?"
	}
}

// Quantified applies a postfix repetition operator to Target.
type Quantified struct {
	Op     Quantifier
	Target Node
}

func (q *Quantified) Children() []Node  { return []Node{q.Target} }
func (q *Quantified) shortName() string { return q.Op.String() }

// SymbolLeaf matches a single occurrence of Sym.
type SymbolLeaf struct {
	Sym *symbol.Symbol
}

func (s *SymbolLeaf) Children() []Node  { return nil }
func (s *SymbolLeaf) shortName() string { return s.Sym.String() }
