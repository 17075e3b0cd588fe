package parse

import (
	"github.com/dekarrin/gampa/gamma"
	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/lex"
	"github.com/dekarrin/gampa/symbol"
)

// Reducer builds a caller's own value for a reduction, given the rule
// reduced and its operand data in left-to-right order (a lex.Token for each
// terminal operand, whatever a prior Reducer call returned for each
// non-terminal operand). A Parser with no Reducer set falls back to
// building a *Tree, via defaultReduce below.
type Reducer func(rule *gamma.CompiledRule, data []any) (any, error)

// Parser drives a compiled Table over a token source to produce a
// caller-supplied value (a *Tree by default, or whatever Reducer builds),
// one shift/reduce step at a time. A Parser holds only its Table and
// Reducer; each call to Parse keeps its own stack and does not modify the
// Parser or its Table.
type Parser struct {
	table   *Table
	reducer Reducer
}

// NewParser returns a Parser driving t, building a *Tree per reduction
// until WithReducer overrides that.
func NewParser(t *Table) *Parser {
	return &Parser{table: t}
}

// WithReducer installs r as the reduction callback and returns p for
// chaining. A nil r restores the default *Tree-building behavior.
func (p *Parser) WithReducer(r Reducer) *Parser {
	p.reducer = r
	return p
}

type frame struct {
	state int
	sym   *symbol.Symbol
	data  any // a lex.Token (from a shift) or a Reducer's return value
}

// Parse consumes every token from tokens and returns the value produced at
// the grammar's (unaugmented) start symbol: a *Tree if no Reducer was
// installed, otherwise whatever the installed Reducer returned for that
// reduction.
func (p *Parser) Parse(tokens TokenSource) (any, error) {
	src := newPushbackSource(tokens)
	stack := []frame{{state: 0}}

	tok, err := src.Next()
	if err != nil {
		return nil, err
	}

	for {
		top := stack[len(stack)-1]
		termSym := p.termFor(tok)

		act, ok := p.table.Action[top.state][termSym]
		if !ok {
			return nil, gampaerr.Parsef(tok.Line, tok.Col, "unexpected token %s in state %d", tok, top.state)
		}

		for act.Kind == ActionBranching {
			resolved, ok := act.Selector(p.branchContext(stack, tok, termSym))
			if !ok {
				return nil, gampaerr.ErrNoBranch
			}
			act = resolved
		}

		switch act.Kind {
		case ActionShift:
			stack = append(stack, frame{state: act.To, sym: termSym, data: tok})
			tok, err = src.Next()
			if err != nil {
				return nil, err
			}

		case ActionAccept:
			// the augmented rule Start' -> Start never gets its own frame;
			// the top of stack already holds the real start symbol's value.
			return stack[len(stack)-1].data, nil

		case ActionReduce:
			rule := act.Rule
			n, ok := reduceLength(rule, stack)
			if !ok {
				return nil, gampaerr.Parsef(tok.Line, tok.Col, "rule %s has no valid reduction length for the current stack", rule.Rule.Head)
			}
			popped := stack[len(stack)-n:]
			stack = stack[:len(stack)-n]

			var result any
			if p.reducer != nil {
				data := make([]any, n)
				for i, f := range popped {
					data[i] = f.data
				}
				result, err = p.reducer(rule, data)
				if err != nil {
					return nil, err
				}
			} else {
				result = defaultReduce(rule, popped)
			}

			newTop := stack[len(stack)-1]
			gotoState, ok := p.table.Goto[newTop.state][rule.Rule.Head]
			if !ok {
				return nil, gampaerr.Parsef(tok.Line, tok.Col, "no goto entry for %s from state %d", rule.Rule.Head, newTop.state)
			}
			stack = append(stack, frame{
				state: gotoState,
				sym:   rule.Rule.Head,
				data:  result,
			})
			// reduce does not consume the lookahead token
		}
	}
}

// defaultReduce is the Parser behavior when no Reducer is installed: it
// builds a *Tree, wrapping a shifted lex.Token as a leaf and passing a
// previously reduced *Tree through unchanged.
func defaultReduce(rule *gamma.CompiledRule, popped []frame) *Tree {
	children := make([]*Tree, len(popped))
	for i, f := range popped {
		if tr, ok := f.data.(*Tree); ok {
			children[i] = tr
			continue
		}
		tok, _ := f.data.(lex.Token)
		children[i] = leaf(f.sym, tok)
	}
	return interior(rule.Rule.Head, rule.Rule.ID, children)
}

// branchContext snapshots the live stacks for a BranchSelector, oldest
// entry first.
func (p *Parser) branchContext(stack []frame, tok lex.Token, termSym *symbol.Symbol) *BranchContext {
	ctx := &BranchContext{
		Token:    tok,
		Terminal: termSym,
		States:   make([]int, len(stack)),
		Symbols:  make([]*symbol.Symbol, len(stack)),
		Data:     make([]any, len(stack)),
	}
	for i, f := range stack {
		ctx.States[i] = f.state
		ctx.Symbols[i] = f.sym
		ctx.Data[i] = f.data
	}
	return ctx
}

// termFor maps a scanned token to the grammar terminal symbol the table was
// built against.
func (p *Parser) termFor(tok lex.Token) *symbol.Symbol {
	if tok.Class == lex.EOF {
		return p.table.Grammar.EOF
	}
	sym, _ := p.table.Grammar.TerminalByName(tok.Class.ID)
	return sym
}

// reduceLength walks rule's reversed DFA backward over the top of stack,
// taking the longest backward match exactly as the tokenizer takes the
// longest forward one, since a gamma-regex body can match a varying number
// of symbols across different parses. It returns false if the reversed DFA
// never reaches an accepting state, which indicates a bug in how the table
// was built rather than a malformed input (the table should never offer a
// reduce action the stack can't actually satisfy).
func reduceLength(rule *gamma.CompiledRule, stack []frame) (int, bool) {
	state := 0
	lastLen := -1
	if rule.Reversed.IsAccepting(state) {
		lastLen = 0
	}
	for i := 0; i < len(stack)-1; i++ {
		sym := stack[len(stack)-1-i].sym
		next, ok := rule.Reversed.Step(state, sym)
		if !ok {
			break
		}
		state = next
		if rule.Reversed.IsAccepting(state) {
			lastLen = i + 1
		}
	}
	if lastLen < 0 {
		return 0, false
	}
	return lastLen, true
}
