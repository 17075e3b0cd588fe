package lexregex

import (
	"strconv"
	"strings"

	"github.com/dekarrin/gampa/charflow"
	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/interval"
)

// Parse reads a single character regex from f and returns its AST. f is left
// positioned just past the regex; the caller decides what, if anything, must
// follow (e.g. end of input for a standalone pattern).
func Parse(f *charflow.Flow) (Node, error) {
	return readChoice(f)
}

// ParseString is a convenience wrapper around Parse for a pattern given as a
// plain string.
func ParseString(src string) (Node, error) {
	f := charflow.New(src)
	n, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if f.HasMore() {
		return nil, gampaerr.Lexf(f.Line(), f.Col(), "unexpected %q after end of pattern", f.Peek())
	}
	return n, nil
}

// E -> T ('|' T)*
func readChoice(f *charflow.Flow) (Node, error) {
	first, err := readSequence(f)
	if err != nil {
		return nil, err
	}
	opts := []Node{first}
	for f.Check('|') {
		next, err := readSequence(f)
		if err != nil {
			return nil, err
		}
		opts = append(opts, next)
	}
	return ChoiceOf(opts), nil
}

// T -> F*
func readSequence(f *charflow.Flow) (Node, error) {
	var items []Node
	for {
		r := f.Peek()
		if r == charflow.EOF || r == '|' || r == ')' {
			break
		}
		item, err := readQuantified(f)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return SequenceOf(items), nil
}

// F -> B ('*' | '+' | '?')*
func readQuantified(f *charflow.Flow) (Node, error) {
	base, err := readBase(f)
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

// B -> char | '.' | '(' E ')' | '[' class ']' | escape
func readBase(f *charflow.Flow) (Node, error) {
	line, col := f.Line(), f.Col()
	r := f.Peek()
	switch r {
	case charflow.EOF:
		return nil, gampaerr.Lex(line, col, "unexpected end of pattern")
	case '(':
		f.Next()
		inner, err := readChoice(f)
		if err != nil {
			return nil, err
		}
		if !f.Check(')') {
			return nil, gampaerr.Lex(f.Line(), f.Col(), "expected ')'")
		}
		return inner, nil
	case '.':
		f.Next()
		return NewClass([]interval.Range{{Start: 0, End: interval.Universe}}), nil
	case '[':
		return readBracketClass(f)
	case '\\':
		ranges, err := readEscape(f)
		if err != nil {
			return nil, err
		}
		return NewClass(ranges), nil
	default:
		f.Next()
		return NewClass([]interval.Range{{Start: r, End: r}}), nil
	}
}

// readBracketClass reads a '[' ... ']' class: an optional leading '^' for
// negation, followed by a union of class terms. Intersection of terms is not
// supported: '&' inside a class is read as an ordinary character.
func readBracketClass(f *charflow.Flow) (Node, error) {
	f.Next() // consume '['
	negate := f.Check('^')

	var union []interval.Range
	if f.Peek() == ']' {
		return nil, gampaerr.Lex(f.Line(), f.Col(), "empty character class")
	}
	for f.Peek() != ']' {
		term, err := readClassTerm(f)
		if err != nil {
			return nil, err
		}
		union = append(union, term...)
		if f.Peek() == charflow.EOF {
			return nil, gampaerr.Lex(f.Line(), f.Col(), "unterminated character class, expected ']'")
		}
	}
	f.Next() // consume ']'

	cls := NewClass(union)
	if negate {
		return cls.Negate(), nil
	}
	return cls, nil
}

// readClassTerm reads one factor of a class body: a nested [..] class, a
// \p{Name}/\d/\w-style escape, or a single char optionally followed by
// '-' char for a range.
func readClassTerm(f *charflow.Flow) ([]interval.Range, error) {
	if f.Peek() == '[' {
		inner, err := readBracketClass(f)
		if err != nil {
			return nil, err
		}
		return inner.(*Class).Ranges, nil
	}
	if f.Peek() == '\\' {
		return readEscape(f)
	}

	lo := f.Next()
	if f.Peek() == '-' && f.PeekAt(1) != ']' && f.PeekAt(1) != charflow.EOF {
		f.Next() // consume '-'
		hi := f.Next()
		if hi < lo {
			return nil, gampaerr.Lexf(f.Line(), f.Col(), "invalid range %q-%q: start after end", lo, hi)
		}
		return []interval.Range{{Start: lo, End: hi}}, nil
	}
	return []interval.Range{{Start: lo, End: lo}}, nil
}

// readEscape reads a '\' escape sequence and returns the ranges it denotes:
// a literal char, a shorthand class (\d \D \w \W \s \S), a POSIX class
// (\p{Name}), or a numeric codepoint (\xHH, \x{H+}, \uHHHH).
func readEscape(f *charflow.Flow) ([]interval.Range, error) {
	line, col := f.Line(), f.Col()
	f.Next() // consume '\'
	r := f.Next()
	switch r {
	case 'n':
		return []interval.Range{{Start: '\n', End: '\n'}}, nil
	case 't':
		return []interval.Range{{Start: '\t', End: '\t'}}, nil
	case 'r':
		return []interval.Range{{Start: '\r', End: '\r'}}, nil
	case 'f':
		return []interval.Range{{Start: '\f', End: '\f'}}, nil
	case 'a':
		return []interval.Range{{Start: '\a', End: '\a'}}, nil
	case 'e':
		return []interval.Range{{Start: 0x1B, End: 0x1B}}, nil
	case 'd':
		return posixRangesOrPanic("Digit"), nil
	case 'D':
		return interval.InvertList(posixRangesOrPanic("Digit"), 0, interval.Universe), nil
	case 'w':
		return wordRanges(), nil
	case 'W':
		return interval.InvertList(wordRanges(), 0, interval.Universe), nil
	case 's':
		return posixRangesOrPanic("Space"), nil
	case 'S':
		return interval.InvertList(posixRangesOrPanic("Space"), 0, interval.Universe), nil
	case 'p':
		return readPosixClassName(f, line, col)
	case 'x':
		return readHexEscape(f, line, col)
	case 'u':
		return readFixedHexEscape(f, line, col, 4)
	case charflow.EOF:
		return nil, gampaerr.Lex(line, col, "unterminated escape sequence")
	default:
		return []interval.Range{{Start: r, End: r}}, nil
	}
}

func wordRanges() []interval.Range {
	alnum, _ := PosixClass("Alnum")
	return interval.UnionList(alnum, []interval.Range{{Start: '_', End: '_'}})
}

func posixRangesOrPanic(name string) []interval.Range {
	r, ok := PosixClass(name)
	if !ok {
		panic("lexregex: unknown built-in POSIX class " + name)
	}
	return r
}

func readPosixClassName(f *charflow.Flow, line, col int) ([]interval.Range, error) {
	if !f.Check('{') {
		return nil, gampaerr.Lex(f.Line(), f.Col(), "expected '{' after \\p")
	}
	var name strings.Builder
	for f.Peek() != '}' {
		r := f.Next()
		if r == charflow.EOF {
			return nil, gampaerr.Lex(line, col, "unterminated \\p{...} escape")
		}
		name.WriteRune(r)
	}
	f.Next() // consume '}'
	ranges, ok := PosixClass(name.String())
	if !ok {
		return nil, gampaerr.Lexf(line, col, "unknown POSIX class %q", name.String())
	}
	return ranges, nil
}

func readHexEscape(f *charflow.Flow, line, col int) ([]interval.Range, error) {
	if f.Check('{') {
		var digits strings.Builder
		for f.Peek() != '}' {
			r := f.Next()
			if r == charflow.EOF {
				return nil, gampaerr.Lex(line, col, "unterminated \\x{...} escape")
			}
			digits.WriteRune(r)
		}
		f.Next()
		return hexDigitsToRange(digits.String(), line, col)
	}
	return readFixedHexEscape(f, line, col, 2)
}

func readFixedHexEscape(f *charflow.Flow, line, col, n int) ([]interval.Range, error) {
	var digits strings.Builder
	for i := 0; i < n; i++ {
		r := f.Next()
		if r == charflow.EOF {
			return nil, gampaerr.Lexf(line, col, "expected %d hex digits", n)
		}
		digits.WriteRune(r)
	}
	return hexDigitsToRange(digits.String(), line, col)
}

func hexDigitsToRange(digits string, line, col int) ([]interval.Range, error) {
	v, err := strconv.ParseInt(digits, 16, 32)
	if err != nil {
		return nil, gampaerr.Lexf(line, col, "invalid hex escape %q: %s", digits, err)
	}
	r := rune(v)
	return []interval.Range{{Start: r, End: r}}, nil
}
