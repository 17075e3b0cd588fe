package parse

import (
	"github.com/dekarrin/gampa/lex"
	"github.com/dekarrin/gampa/symbol"
)

// Tree is one node of a parse tree: either a leaf carrying the Token a
// terminal matched, or an interior node carrying the rule that was reduced
// and its operand subtrees in left-to-right order.
type Tree struct {
	Symbol   *symbol.Symbol
	Token    lex.Token // populated on leaves
	Children []*Tree   // populated on interior nodes
	RuleID   int        // the rule reduced to produce this node; -1 on leaves
}

func leaf(sym *symbol.Symbol, tok lex.Token) *Tree {
	return &Tree{Symbol: sym, Token: tok, RuleID: -1}
}

func interior(sym *symbol.Symbol, ruleID int, children []*Tree) *Tree {
	return &Tree{Symbol: sym, Children: children, RuleID: ruleID}
}
