// Package gampacfg loads a TOML-encoded operator precedence table and
// exposes it as a parse.ConflictSolver, giving a grammar author a
// declarative way to resolve shift/reduce conflicts (e.g. "* binds tighter
// than +, and + is left-associative") without hand-restructuring the
// grammar into a precedence climbing ladder.
package gampacfg

import (
	"github.com/BurntSushi/toml"

	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/parse"
	"github.com/dekarrin/gampa/symbol"
)

// OpEntry is one operator's precedence level and associativity.
type OpEntry struct {
	Level int    `toml:"level"`
	Assoc string `toml:"assoc"` // "L" or "R"
}

// PrecedenceTable is the decoded form of a precedence config file: a map
// from operator terminal name to its level and associativity. Higher Level
// binds tighter.
type PrecedenceTable struct {
	Operators map[string]OpEntry `toml:"operators"`
}

// LoadPrecedenceTable decodes a precedence table from TOML source, e.g.:
//
//	[operators.PLUS]
//	level = 1
//	assoc = "R"
//	[operators.STAR]
//	level = 4
//	assoc = "L"
func LoadPrecedenceTable(data []byte) (*PrecedenceTable, error) {
	var pt PrecedenceTable
	if _, err := toml.Decode(string(data), &pt); err != nil {
		return nil, gampaerr.WrapBuildf(err, "decoding precedence table")
	}
	return &pt, nil
}

// Solver resolves shift/reduce conflicts using a PrecedenceTable and a map
// telling it which operator governs each rule's precedence (the classic
// yacc %prec annotation, here supplied out of band since gamma-regex rule
// bodies have no room for an inline directive).
type Solver struct {
	Table    *PrecedenceTable
	RulePrec map[int]string
}

// NewSolver returns a Solver over table, with rulePrec mapping a rule's id
// to the name of the operator terminal whose precedence governs it.
func NewSolver(table *PrecedenceTable, rulePrec map[int]string) *Solver {
	return &Solver{Table: table, RulePrec: rulePrec}
}

// Resolve implements parse.ConflictSolver. Conflicts it has no precedence
// information for fall back to parse.DefaultConflictSolver.
func (s *Solver) Resolve(onTerminal *symbol.Symbol, a, b parse.Action) (parse.Action, error) {
	shift, reduce, ok := splitShiftReduce(a, b)
	if !ok {
		return parse.DefaultConflictSolver{}.Resolve(onTerminal, a, b)
	}

	shiftOp, ok1 := s.Table.Operators[onTerminal.Name]
	reduceOpName, ok2 := s.RulePrec[reduce.Rule.Rule.ID]
	if !ok1 || !ok2 {
		return parse.DefaultConflictSolver{}.Resolve(onTerminal, a, b)
	}
	reduceOp, ok3 := s.Table.Operators[reduceOpName]
	if !ok3 {
		return parse.DefaultConflictSolver{}.Resolve(onTerminal, a, b)
	}

	switch {
	case shiftOp.Level > reduceOp.Level:
		return shift, nil
	case shiftOp.Level < reduceOp.Level:
		return reduce, nil
	default:
		if shiftOp.Assoc == "L" {
			return reduce, nil
		}
		return shift, nil
	}
}

func splitShiftReduce(a, b parse.Action) (shift, reduce parse.Action, ok bool) {
	if a.Kind == parse.ActionShift && b.Kind == parse.ActionReduce {
		return a, b, true
	}
	if b.Kind == parse.ActionShift && a.Kind == parse.ActionReduce {
		return b, a, true
	}
	return parse.Action{}, parse.Action{}, false
}
