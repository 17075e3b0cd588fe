// Package charflow provides a rune-at-a-time reader over grammar and pattern
// source text, tracking line and column position for error reporting.
package charflow

import (
	"strings"
	"unicode/utf8"
)

// EOF is returned by Peek and Next once the underlying text is exhausted.
const EOF rune = -1

// Flow is a forward-only cursor over a source string. It supports one rune
// of lookahead via Peek without consuming it, and remembers the line and
// column of the rune that would be returned by the next call to Next.
//
// A Flow is not safe for concurrent use; callers build and drive it from a
// single goroutine, same as the rest of this module.
type Flow struct {
	src  []rune
	pos  int
	line int
	col  int
}

// New returns a Flow positioned at the start of src.
func New(src string) *Flow {
	return &Flow{src: []rune(src), line: 1, col: 1}
}

// Peek returns the next rune without consuming it, or EOF if the flow is
// exhausted. Calling Peek repeatedly without an intervening Next always
// returns the same rune.
func (f *Flow) Peek() rune {
	if f.pos >= len(f.src) {
		return EOF
	}
	return f.src[f.pos]
}

// PeekAt returns the rune offset runes ahead of the cursor (PeekAt(0) is
// equivalent to Peek), or EOF if that position is past the end of input.
func (f *Flow) PeekAt(offset int) rune {
	i := f.pos + offset
	if i < 0 || i >= len(f.src) {
		return EOF
	}
	return f.src[i]
}

// Next consumes and returns the next rune, or EOF if the flow is exhausted.
// Line and column tracking advances as though the consumed rune had just
// been printed to a terminal: a newline resets the column and advances the
// line.
func (f *Flow) Next() rune {
	r := f.Peek()
	if r == EOF {
		return EOF
	}
	f.pos++
	if r == '\n' {
		f.line++
		f.col = 1
	} else {
		f.col++
	}
	return r
}

// Check consumes and returns true if the next rune equals want; otherwise
// the flow is left unmodified and Check returns false.
func (f *Flow) Check(want rune) bool {
	if f.Peek() == want {
		f.Next()
		return true
	}
	return false
}

// HasMore reports whether any runes remain.
func (f *Flow) HasMore() bool {
	return f.pos < len(f.src)
}

// Line returns the 1-based line number of the rune that Peek would return.
func (f *Flow) Line() int {
	return f.line
}

// Col returns the 1-based column number of the rune that Peek would return.
func (f *Flow) Col() int {
	return f.col
}

// SkipBlanks consumes runs of spaces, tabs, and newlines.
func (f *Flow) SkipBlanks() {
	for {
		r := f.Peek()
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			f.Next()
			continue
		}
		break
	}
}

// SkipBlanksAndComments consumes blanks as with SkipBlanks and, in addition,
// skips "#"-to-end-of-line comments.
func (f *Flow) SkipBlanksAndComments() {
	for {
		f.SkipBlanks()
		if f.Peek() == '#' {
			for f.Peek() != '\n' && f.Peek() != EOF {
				f.Next()
			}
			continue
		}
		break
	}
}

// Rest returns all remaining, not-yet-consumed source text.
func (f *Flow) Rest() string {
	var sb strings.Builder
	sb.Grow(utf8.UTFMax * (len(f.src) - f.pos))
	for _, r := range f.src[f.pos:] {
		sb.WriteRune(r)
	}
	return sb.String()
}
