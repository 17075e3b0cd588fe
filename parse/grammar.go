// Package parse builds and runs an LR(1)-style shift/reduce parser whose
// canonical collection is constructed over per-rule DFA states rather than
// classical dotted items: a "marked rule" is a (rule, forward-DFA-state)
// pair, closure advances that state instead of a dot position, and GOTO
// follows the same DFA's transitions. Reduction lengths are variable (a
// rule's gamma regex body can match a different number of symbols on
// different parses), so the runtime driver determines how far to pop by
// walking the rule's reversed DFA backward over the symbol stack, taking
// the longest backward match exactly as the lexer takes the longest forward
// one.
package parse

import (
	"github.com/dekarrin/gampa/gamma"
	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/symbol"
)

// Grammar is a prepared set of compiled rules ready for canonical-collection
// construction: every rule has been parsed and compiled to its forward and
// reversed DFAs, and the start symbol has been augmented.
type Grammar struct {
	Rules        []*gamma.CompiledRule
	byHead       map[*symbol.Symbol][]*gamma.CompiledRule
	termByName   map[string]*symbol.Symbol
	allByName    map[string]*symbol.Symbol
	Start        *symbol.Symbol // the augmented start symbol, Start' -> OriginalStart
	EOF          *symbol.Symbol
	Terminals    []*symbol.Symbol
	NonTerminals []*symbol.Symbol
}

// TerminalByName returns the grammar's terminal symbol with the given name,
// which is expected to match the ID of the lex.Class a Tokenizer produces
// for it.
func (g *Grammar) TerminalByName(name string) (*symbol.Symbol, bool) {
	s, ok := g.termByName[name]
	return s, ok
}

// SymbolByName returns any of the grammar's symbols (terminal or
// non-terminal, but never EOF or the augmented start symbol) by name. It
// exists mainly so a persisted, name-keyed table snapshot can be rehydrated
// against a freshly rebuilt Grammar.
func (g *Grammar) SymbolByName(name string) (*symbol.Symbol, bool) {
	s, ok := g.allByName[name]
	return s, ok
}

// RuleByID returns the compiled rule with the given id. Rule ids are
// assigned as dense, zero-based indices into Rules by NewGrammar, so this is
// just a documented alias for Rules[id].
func (g *Grammar) RuleByID(id int) *gamma.CompiledRule {
	return g.Rules[id]
}

// RuleSource is one not-yet-compiled rule as supplied by a ParserBuilder
// caller: a head non-terminal and a gamma regex body source string.
type RuleSource struct {
	Head string
	Body string
}

// NewGrammar compiles rules, resolving symbol names against terminals and
// nonTerminals (every name used in a body must appear in exactly one of the
// two lists), augments the grammar with a fresh start rule Start' -> start,
// and returns the prepared Grammar.
func NewGrammar(start string, rules []RuleSource, terminalNames, nonTerminalNames []string) (*Grammar, error) {
	g := &Grammar{
		byHead:     map[*symbol.Symbol][]*gamma.CompiledRule{},
		termByName: map[string]*symbol.Symbol{},
		allByName:  map[string]*symbol.Symbol{},
		EOF:        symbol.NewEOF(),
	}

	named := map[string]*symbol.Symbol{}
	for _, n := range terminalNames {
		s := symbol.NewTerminal(n)
		named[n] = s
		g.Terminals = append(g.Terminals, s)
		s.ID = len(g.Terminals) // EOF holds id 0
		g.termByName[n] = s
		g.allByName[n] = s
	}
	for _, n := range nonTerminalNames {
		s := symbol.NewNonTerminal(n)
		named[n] = s
		s.ID = len(g.NonTerminals)
		g.NonTerminals = append(g.NonTerminals, s)
		g.allByName[n] = s
	}

	startSym, ok := named[start]
	if !ok {
		return nil, gampaerr.Buildf("start symbol %q is not declared as a non-terminal", start)
	}

	resolve := func(name string) (*symbol.Symbol, error) {
		if s, ok := named[name]; ok {
			return s, nil
		}
		return nil, gampaerr.Buildf("undeclared grammar symbol %q", name)
	}

	for i, rs := range rules {
		head, ok := named[rs.Head]
		if !ok || head.Kind != symbol.KindNonTerminal {
			return nil, gampaerr.Buildf("rule %d: head %q is not a declared non-terminal", i, rs.Head)
		}
		body, err := gamma.ParseString(rs.Body, resolve)
		if err != nil {
			return nil, gampaerr.WrapBuildf(err, "rule %d (%s)", i, rs.Head)
		}
		rule := &gamma.Rule{ID: i, Head: head, Body: body}
		compiled := gamma.Compile(rule)
		g.Rules = append(g.Rules, compiled)
		g.byHead[head] = append(g.byHead[head], compiled)
	}

	augHead := symbol.NewNonTerminal(start + "'")
	augHead.ID = len(g.NonTerminals)
	g.NonTerminals = append(g.NonTerminals, augHead)
	augBody := &gamma.SymbolLeaf{Sym: startSym}
	augRule := &gamma.Rule{ID: len(g.Rules), Head: augHead, Body: augBody}
	augCompiled := gamma.Compile(augRule)
	g.Rules = append(g.Rules, augCompiled)
	g.byHead[augHead] = []*gamma.CompiledRule{augCompiled}
	g.Start = augHead

	return g, nil
}
