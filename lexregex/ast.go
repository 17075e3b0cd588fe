// Package lexregex parses the small character-class regex language used to
// describe token patterns: literals, '.', bracket classes with POSIX names
// and negation, grouping, alternation ('|'), and the quantifiers '*', '+',
// and '?'. It compiles to an AST of Node, which the lex package's builder
// then threads through autom.Arena via Thompson's construction.
package lexregex

import "github.com/dekarrin/gampa/interval"

// Node is one AST node of a compiled character regex.
type Node interface {
	Children() []Node
	shortName() string
}

// Choice matches any one of Options (the '|' operator, possibly flattened
// across nested alternations).
type Choice struct {
	Options []Node
}

func (c *Choice) Children() []Node { return c.Options }
func (c *Choice) shortName() string { return "|" }

// ChoiceOf builds a Choice from opts, flattening nested Choice nodes and
// collapsing a single option down to itself.
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

// Sequence matches each item in Items in order (concatenation).
type Sequence struct {
	Items []Node
}

func (s *Sequence) Children() []Node { return s.Items }
func (s *Sequence) shortName() string { return "seq" }

// SequenceOf builds a Sequence from items, flattening nested Sequence nodes
// and collapsing a single item down to itself. A zero-length items list
// produces a Sequence matching the empty string.
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
	QuantStar   Quantifier = iota // zero or more
	QuantPlus                     // one or more
	QuantOption                   // zero or one
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

// Class matches a single codepoint falling in any of Ranges. Ranges is
// always kept normalized (sorted, disjoint) by the parser.
type Class struct {
	Ranges []interval.Range
}

func (c *Class) Children() []Node   { return nil }
func (c *Class) shortName() string  { return "class" }

// NewClass returns a Class over the given ranges, normalized via
// interval.DisjointList.
func NewClass(ranges []interval.Range) *Class {
	return &Class{Ranges: interval.DisjointList(ranges)}
}

// Negate returns a Class matching every codepoint in [0, interval.Universe]
// not matched by c.
func (c *Class) Negate() *Class {
	return &Class{Ranges: interval.InvertList(c.Ranges, 0, interval.Universe)}
}
