// Package gampa is the construction facade over this module's compiler
// packages (charflow, interval, lexregex, gamma, autom, lex, parse): a
// caller assembles a TokenizerBuilder and a ParserBuilder, calls Build, and
// gets back a Runtime that tokenizes and parses a character stream in one
// call, without having to wire the FIRST-set/canonical-collection/table
// pipeline by hand.
package gampa

import (
	"github.com/dekarrin/gampa/charflow"
	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/lex"
	"github.com/dekarrin/gampa/parse"
)

// TokenizerBuilder collects named lexical patterns for a single Tokenizer.
// It is a thin wrapper over lex.Builder that exists so ParserBuilder can
// accept one alongside its grammar rules without callers reaching into the
// lex package directly.
type TokenizerBuilder struct {
	inner *lex.Builder
}

// NewTokenizerBuilder returns an empty TokenizerBuilder.
func NewTokenizerBuilder() *TokenizerBuilder {
	return &TokenizerBuilder{inner: lex.NewBuilder()}
}

// AddPattern registers a pattern producing tokens of the given terminal
// name. regex is a character-class regex (lexregex syntax); reluctant
// patterns always lose length ties against a non-reluctant pattern.
func (b *TokenizerBuilder) AddPattern(terminalName, regex string, reluctant bool) error {
	return b.inner.AddPattern(terminalName, lex.Class{ID: terminalName}, regex, reluctant)
}

// AddDiscardPattern registers a pattern (typically whitespace or comments)
// whose matches are scanned but never surfaced as tokens.
func (b *TokenizerBuilder) AddDiscardPattern(name, regex string, reluctant bool) error {
	return b.inner.AddDiscardPattern(name, regex, reluctant)
}

// Above records that, on a length tie, higher should win over lower.
func (b *TokenizerBuilder) Above(higher, lower string) {
	b.inner.Above(higher, lower)
}

// Build determinizes the registered patterns into a Tokenizer.
func (b *TokenizerBuilder) Build() (*lex.Tokenizer, error) {
	return b.inner.Build()
}

// Rule is one grammar production: a non-terminal head and a gamma-regex
// body over the grammar's other declared symbols.
type Rule struct {
	Head string
	Body string
}

// ParserBuilder collects a grammar (start symbol, terminal and non-terminal
// declarations, rules) and compiles it into a Parser through the full
// FIRST-set / canonical-collection / action-table pipeline.
type ParserBuilder struct {
	start        string
	terminals    []string
	nonTerminals []string
	rules        []parse.RuleSource
	solver       parse.ConflictSolver
	reducer      parse.Reducer
}

// NewParserBuilder returns a ParserBuilder whose grammar starts at start.
func NewParserBuilder(start string) *ParserBuilder {
	return &ParserBuilder{start: start}
}

// DeclareTerminals adds names usable as terminal symbols in rule bodies.
func (b *ParserBuilder) DeclareTerminals(names ...string) *ParserBuilder {
	b.terminals = append(b.terminals, names...)
	return b
}

// DeclareNonTerminals adds names usable as non-terminal symbols in rule
// bodies, in addition to the grammar's start symbol (which need not be
// declared separately).
func (b *ParserBuilder) DeclareNonTerminals(names ...string) *ParserBuilder {
	b.nonTerminals = append(b.nonTerminals, names...)
	return b
}

// AddRule adds one production head -> body to the grammar.
func (b *ParserBuilder) AddRule(head, body string) *ParserBuilder {
	b.rules = append(b.rules, parse.RuleSource{Head: head, Body: body})
	return b
}

// WithConflictSolver overrides the default shift-wins/lowest-rule-wins
// conflict resolution (see parse.DefaultConflictSolver) with solver, e.g. a
// gampacfg.Solver built from a declarative precedence table.
func (b *ParserBuilder) WithConflictSolver(solver parse.ConflictSolver) *ParserBuilder {
	b.solver = solver
	return b
}

// WithReducer installs r as the built Parser's reduction callback, in place
// of the default *parse.Tree-building behavior. See parse.Reducer.
func (b *ParserBuilder) WithReducer(r parse.Reducer) *ParserBuilder {
	b.reducer = r
	return b
}

// Grammar compiles the declared rules without going on to build the
// canonical collection or action table, for callers that only need FIRST
// sets or want to fingerprint the grammar (see gampacache.NewFingerprint)
// before paying for a full table build.
func (b *ParserBuilder) Grammar() (*parse.Grammar, error) {
	nonTerminals := b.nonTerminals
	if !containsName(nonTerminals, b.start) {
		nonTerminals = append(append([]string{}, nonTerminals...), b.start)
	}
	return parse.NewGrammar(b.start, b.rules, b.terminals, nonTerminals)
}

// Rules returns the rule sources added so far, for use with
// gampacache.NewFingerprint.
func (b *ParserBuilder) Rules() []parse.RuleSource {
	return append([]parse.RuleSource{}, b.rules...)
}

// Start returns the builder's start symbol name.
func (b *ParserBuilder) Start() string {
	return b.start
}

// Build compiles the declared grammar all the way to an action table and
// returns a ready-to-run Parser.
func (b *ParserBuilder) Build() (*parse.Parser, error) {
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	fs := parse.ComputeFirstSets(g)
	coll := parse.BuildCollection(g, fs)
	table, err := parse.BuildTable(g, coll, b.solver)
	if err != nil {
		return nil, gampaerr.WrapBuildf(err, "building action table for %q", b.start)
	}
	return parse.NewParser(table).WithReducer(b.reducer), nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Runtime bundles a compiled Tokenizer and Parser so a caller can go
// straight from source text to a parsed value in one call.
type Runtime struct {
	Tokenizer *lex.Tokenizer
	Parser    *parse.Parser
}

// NewRuntime bundles an already-built tokenizer and parser.
func NewRuntime(tz *lex.Tokenizer, p *parse.Parser) *Runtime {
	return &Runtime{Tokenizer: tz, Parser: p}
}

// Parse tokenizes src and parses the resulting token stream in one step,
// returning a *parse.Tree unless the Parser was built with WithReducer, in
// which case it returns whatever that Reducer built.
func (r *Runtime) Parse(src string) (any, error) {
	flow := charflow.New(src)
	it := r.Tokenizer.Iterator(flow)
	return r.Parser.Parse(it)
}
