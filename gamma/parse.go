package gamma

import (
	"strings"

	"github.com/dekarrin/gampa/charflow"
	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/symbol"
)

// Resolver looks up a grammar symbol by the name it is spelled with in a
// gamma regex, returning an error if name is not a known symbol of the
// grammar under construction.
type Resolver func(name string) (*symbol.Symbol, error)

// Parse reads a single gamma regex from f, resolving each symbol name it
// encounters via resolve. f is left positioned just past the regex.
func Parse(f *charflow.Flow, resolve Resolver) (Node, error) {
	return readChoice(f, resolve)
}

// ParseString is a convenience wrapper around Parse for a production body
// given as a plain string.
func ParseString(src string, resolve Resolver) (Node, error) {
	f := charflow.New(src)
	f.SkipBlanks()
	n, err := Parse(f, resolve)
	if err != nil {
		return nil, err
	}
	f.SkipBlanks()
	if f.HasMore() {
		return nil, gampaerr.Lexf(f.Line(), f.Col(), "unexpected %q after end of production body", f.Peek())
	}
	return n, nil
}

func readChoice(f *charflow.Flow, resolve Resolver) (Node, error) {
	first, err := readSequence(f, resolve)
	if err != nil {
		return nil, err
	}
	opts := []Node{first}
	f.SkipBlanks()
	for f.Check('|') {
		f.SkipBlanks()
		next, err := readSequence(f, resolve)
		if err != nil {
			return nil, err
		}
		opts = append(opts, next)
		f.SkipBlanks()
	}
	return ChoiceOf(opts), nil
}

func readSequence(f *charflow.Flow, resolve Resolver) (Node, error) {
	var items []Node
	for {
		f.SkipBlanks()
		r := f.Peek()
		if r == charflow.EOF || r == '|' || r == ')' {
			break
		}
		item, err := readQuantified(f, resolve)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return SequenceOf(items), nil
}

func readQuantified(f *charflow.Flow, resolve Resolver) (Node, error) {
	base, err := readBase(f, resolve)
	if err != nil {
		return nil, err
	}
	for {
		var op Quantifier
		switch {
		case f.Check('*'):
			op = QuantStar
		case f.Check('+'):
			op = QuantPlus
		case f.Check('?'):
			op = QuantOption
		default:
			return base, nil
		}
		base = &Quantified{Op: op, Target: base}
	}
}

func readBase(f *charflow.Flow, resolve Resolver) (Node, error) {
	line, col := f.Line(), f.Col()
	r := f.Peek()
	switch r {
	case charflow.EOF:
		return nil, gampaerr.Lex(line, col, "unexpected end of production body")
	case '(':
		f.Next()
		inner, err := readChoice(f, resolve)
		if err != nil {
			return nil, err
		}
		f.SkipBlanks()
		if !f.Check(')') {
			return nil, gampaerr.Lex(f.Line(), f.Col(), "expected ')'")
		}
		return inner, nil
	default:
		name, err := readSymbolName(f)
		if err != nil {
			return nil, err
		}
		sym, err := resolve(name)
		if err != nil {
			return nil, gampaerr.Lexf(line, col, "%s", err)
		}
		return &SymbolLeaf{Sym: sym}, nil
	}
}

func isOperatorRune(r rune) bool {
	switch r {
	case '|', '*', '+', '?', '(', ')':
		return true
	}
	return false
}

func readSymbolName(f *charflow.Flow) (string, error) {
	var sb strings.Builder
	for {
		r := f.Peek()
		if r == charflow.EOF || isOperatorRune(r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			break
		}
		sb.WriteRune(r)
		f.Next()
	}
	if sb.Len() == 0 {
		return "", gampaerr.Lexf(f.Line(), f.Col(), "expected a grammar symbol, found %q", f.Peek())
	}
	return sb.String(), nil
}
