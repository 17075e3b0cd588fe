// Package gampaerr defines the error taxonomy shared across this module's
// packages: every error returned by a lexregex/gamma parse, an autom/parse
// build, a lex tokenize, or a parse.Parser run carries a Kind so callers can
// distinguish "your pattern source is malformed" from "the grammar you built
// doesn't accept this token stream" without string-matching messages.
package gampaerr

import "fmt"

// Kind classifies an error by the phase of the pipeline that raised it.
type Kind int

const (
	// KindLex means a character or gamma regex pattern failed to parse.
	KindLex Kind = iota
	// KindBuild means a ParserBuilder or TokenizerBuilder could not produce
	// a usable table (e.g. ambiguous grammar, conflicting priorities).
	KindBuild
	// KindTokenize means a running Tokenizer could not match any pattern at
	// the current input position.
	KindTokenize
	// KindParse means a running Parser hit a state with no applicable
	// action for the current lookahead.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindBuild:
		return "build"
	case KindTokenize:
		return "tokenize"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by this module. It carries a
// Kind, an optional 1-based Line/Col for errors with a source position, and
// wraps an underlying cause when there is one.
type Error struct {
	kind    Kind
	msg     string
	line    int
	col     int
	hasPos  bool
	wrapped error
}

func (e *Error) Error() string {
	if e.hasPos {
		return fmt.Sprintf("%s error at line %d, col %d: %s", e.kind, e.line, e.col, e.msg)
	}
	return fmt.Sprintf("%s error: %s", e.kind, e.msg)
}

func (e *Error) Unwrap() error { return e.wrapped }

// Kind returns the phase that produced e.
func (e *Error) Kind() Kind { return e.kind }

// Line and Col return the source position the error occurred at, if any.
func (e *Error) Line() int { return e.line }
func (e *Error) Col() int  { return e.col }
func (e *Error) HasPos() bool { return e.hasPos }

// Lex returns a KindLex error positioned at line, col.
func Lex(line, col int, msg string) error {
	return &Error{kind: KindLex, msg: msg, line: line, col: col, hasPos: true}
}

// Lexf is Lex with fmt.Sprintf-style formatting.
func Lexf(line, col int, format string, args ...any) error {
	return Lex(line, col, fmt.Sprintf(format, args...))
}

// Build returns a KindBuild error with no source position.
func Build(msg string) error {
	return &Error{kind: KindBuild, msg: msg}
}

// Buildf is Build with fmt.Sprintf-style formatting.
func Buildf(format string, args ...any) error {
	return Build(fmt.Sprintf(format, args...))
}

// WrapBuildf wraps cause as a KindBuild error, preserving it for errors.As /
// errors.Is via Unwrap.
func WrapBuildf(cause error, format string, args ...any) error {
	return &Error{kind: KindBuild, msg: fmt.Sprintf(format, args...), wrapped: cause}
}

// Tokenize returns a KindTokenize error positioned at line, col.
func Tokenize(line, col int, msg string) error {
	return &Error{kind: KindTokenize, msg: msg, line: line, col: col, hasPos: true}
}

// Tokenizef is Tokenize with fmt.Sprintf-style formatting.
func Tokenizef(line, col int, format string, args ...any) error {
	return Tokenize(line, col, fmt.Sprintf(format, args...))
}

// Parse returns a KindParse error positioned at line, col.
func Parse(line, col int, msg string) error {
	return &Error{kind: KindParse, msg: msg, line: line, col: col, hasPos: true}
}

// Parsef is Parse with fmt.Sprintf-style formatting.
func Parsef(line, col int, format string, args ...any) error {
	return Parse(line, col, fmt.Sprintf(format, args...))
}

// ErrNoBranch is returned by a running Parser when an ActionBranching
// entry's BranchSelector returns ok == false for the current stack contents
// and lookahead; it indicates a grammar bug (the selector should have
// covered every reachable case) rather than a malformed input.
var ErrNoBranch = &Error{kind: KindParse, msg: "no branch of a branching action applies to the current stack"}
