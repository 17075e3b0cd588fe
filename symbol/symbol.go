// Package symbol defines grammar symbols: solid terminals, non-terminals,
// and the two special terminals (end-of-input and empty) used by the gamma
// regex and parser-builder packages.
package symbol

import "fmt"

// Kind distinguishes the three symbol variants.
type Kind int

const (
	KindTerminal Kind = iota
	KindNonTerminal
	KindSpecial
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindNonTerminal:
		return "non-terminal"
	case KindSpecial:
		return "special"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Symbol is a grammar symbol. Symbols are always handled by pointer; two
// *Symbol values are equal iff they are the same interned object, which
// holds whether or not ID has been assigned yet, so identity comparison
// before a ParserBuilder assigns ids and id comparison after it coincide
// automatically.
type Symbol struct {
	Kind Kind

	// ID is assigned once a ParserBuilder finishes preparing its symbol
	// table. EOF always receives id 0. Empty is never assigned a public id
	// and must never appear as an action-table column.
	ID int

	Name string
}

// NewTerminal returns a new solid terminal with the given name. Its ID is
// unassigned (-1) until a ParserBuilder numbers it.
func NewTerminal(name string) *Symbol {
	return &Symbol{Kind: KindTerminal, ID: -1, Name: name}
}

// NewNonTerminal returns a new non-terminal with the given name.
func NewNonTerminal(name string) *Symbol {
	return &Symbol{Kind: KindNonTerminal, ID: -1, Name: name}
}

// NewEOF returns a fresh end-of-input special terminal, with id fixed at 0
// per the builder's symbol numbering invariant.
func NewEOF() *Symbol {
	return &Symbol{Kind: KindSpecial, ID: 0, Name: "$"}
}

// NewEmpty returns a fresh empty-production special terminal. It is never
// assigned a public id.
func NewEmpty() *Symbol {
	return &Symbol{Kind: KindSpecial, ID: -1, Name: "ε"}
}

// IsTerminal reports whether s is a solid or special terminal.
func (s *Symbol) IsTerminal() bool {
	return s.Kind == KindTerminal || s.Kind == KindSpecial
}

// IsEOF reports whether s is the end-of-input special terminal.
func (s *Symbol) IsEOF() bool {
	return s.Kind == KindSpecial && s.Name == "$"
}

// IsEmpty reports whether s is the empty-production special terminal.
func (s *Symbol) IsEmpty() bool {
	return s.Kind == KindSpecial && s.Name == "ε"
}

func (s *Symbol) String() string {
	if s == nil {
		return "<nil symbol>"
	}
	return s.Name
}
