package parse

import "github.com/dekarrin/gampa/lex"

// TokenSource is anything the parser runtime can pull tokens from; lex's own
// Iterator satisfies it directly.
type TokenSource interface {
	Next() (lex.Token, error)
}

// pushbackSource wraps a TokenSource with exactly one slot of lookahead that
// can be pushed back and re-read. The parser driver wraps its token source in
// one and pulls tokens through Next; it keeps the current lookahead in a local
// variable across reductions and does not call Pushback.
type pushbackSource struct {
	src    TokenSource
	slot   lex.Token
	hasTok bool
}

func newPushbackSource(src TokenSource) *pushbackSource {
	return &pushbackSource{src: src}
}

// Next returns the pushed-back token if one is waiting, otherwise pulls a
// fresh one from the wrapped source.
func (p *pushbackSource) Next() (lex.Token, error) {
	if p.hasTok {
		p.hasTok = false
		return p.slot, nil
	}
	return p.src.Next()
}

// Pushback re-queues tok so the next call to Next returns it again. Only one
// token may be pending at a time; a second Pushback before an intervening
// Next overwrites the first.
func (p *pushbackSource) Pushback(tok lex.Token) {
	p.slot = tok
	p.hasTok = true
}
