package lex

import (
	"github.com/dekarrin/gampa/autom"
	"github.com/dekarrin/gampa/charflow"
	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/interval"
)

// Tokenizer is a compiled, ready-to-run longest-match lexer. Build one via
// Builder.Build.
type Tokenizer struct {
	states []*autom.Node[interval.Range]
	accept []*patternEntry
}

func (tz *Tokenizer) transition(state int, r rune) (int, bool) {
	node := tz.states[state]
	for rng, to := range node.Trans {
		if rng.Contains(r) {
			return to, true
		}
	}
	return 0, false
}

// readToken scans the single longest match starting at f's current
// position and reports which pattern won, without filtering discarded
// patterns.
func (tz *Tokenizer) readToken(f *charflow.Flow) (Token, *patternEntry, error) {
	line, col := f.Line(), f.Col()
	if !f.HasMore() {
		return Token{Class: EOF, Line: line, Col: col}, nil, nil
	}

	state := 0
	var lastAccept *patternEntry
	lastLen := -1
	var consumed []rune
	pos := 0
	for {
		r := f.PeekAt(pos)
		if r == charflow.EOF {
			break
		}
		next, ok := tz.transition(state, r)
		if !ok {
			break
		}
		state = next
		pos++
		consumed = append(consumed, r)
		if tz.accept[state] != nil {
			lastAccept = tz.accept[state]
			lastLen = pos
			if lastAccept.reluctant {
				// a reluctant pattern stops at its first accepting state
				// rather than greedily consuming further input.
				break
			}
		}
	}

	if lastAccept == nil {
		return Token{}, nil, gampaerr.Tokenizef(line, col, "no pattern matches input at %q", string(f.Peek()))
	}

	for i := 0; i < lastLen; i++ {
		f.Next()
	}
	lexeme := string(consumed[:lastLen])
	return Token{Class: lastAccept.class, Lexeme: lexeme, Line: line, Col: col}, lastAccept, nil
}

// Next returns the next non-discarded token from f, advancing f past it.
func (tz *Tokenizer) Next(f *charflow.Flow) (Token, error) {
	for {
		tok, entry, err := tz.readToken(f)
		if err != nil {
			return Token{}, err
		}
		if entry == nil || !entry.discard {
			return tok, nil
		}
	}
}

// Iterator adapts a Tokenizer and a source Flow into a pull-based token
// stream.
type Iterator struct {
	tz   *Tokenizer
	flow *charflow.Flow
	done bool
}

// Iterator returns a fresh token stream reading from f.
func (tz *Tokenizer) Iterator(f *charflow.Flow) *Iterator {
	return &Iterator{tz: tz, flow: f}
}

// Next returns the next token, or a Token with class EOF once the
// underlying flow is exhausted.
func (it *Iterator) Next() (Token, error) {
	if it.done {
		return Token{Class: EOF}, nil
	}
	tok, err := it.tz.Next(it.flow)
	if err != nil {
		return Token{}, err
	}
	if tok.Class == EOF {
		it.done = true
	}
	return tok, nil
}

// HasNext reports whether Next would return anything beyond an EOF token.
func (it *Iterator) HasNext() bool {
	return !it.done
}
