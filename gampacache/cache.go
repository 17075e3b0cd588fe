// Package gampacache persists a compiled parse.Table to a single binary
// blob and rehydrates it against a freshly built parse.Grammar, so a long
// running process only pays the canonical-collection construction cost once
// per grammar definition. Tables are identified by a content fingerprint
// (a uuid derived from the grammar's rule sources) rather than a file path
// or version number, so a stale cache is detected instead of silently
// reused.
package gampacache

import (
	"github.com/dekarrin/rezi"
	"github.com/google/uuid"

	"github.com/dekarrin/gampa/gampaerr"
	"github.com/dekarrin/gampa/parse"
	"github.com/dekarrin/gampa/symbol"
)

// eofName is the reserved action-table key standing in for the EOF
// terminal, which (unlike every other terminal) has no entry in a
// Grammar's name table.
const eofName = "$"

// Fingerprint deterministically identifies a grammar's source definition.
// Two grammars built from the same rule sources (in the same order) and the
// same start symbol produce the same Fingerprint; anything else produces a
// different one, which is all a cache needs to detect staleness.
type Fingerprint string

// NewFingerprint computes a Fingerprint for a grammar defined by start and
// rules. uuid.NewSHA1 is used as a stable content hash, not for its
// randomness properties.
func NewFingerprint(start string, rules []parse.RuleSource) Fingerprint {
	var buf []byte
	buf = append(buf, start...)
	buf = append(buf, 0)
	for _, r := range rules {
		buf = append(buf, r.Head...)
		buf = append(buf, '-', '>')
		buf = append(buf, r.Body...)
		buf = append(buf, 0)
	}
	id := uuid.NewSHA1(uuid.Nil, buf)
	return Fingerprint(id.String())
}

// actionRecord is the serializable form of a parse.Action.
type actionRecord struct {
	Kind   int
	To     int
	RuleID int // -1 when Kind is not ActionReduce
}

// stateRecord is the serializable form of one parser state: its action
// table keyed by terminal name (or eofName for EOF) and its goto table
// keyed by non-terminal name.
type stateRecord struct {
	Action map[string]actionRecord
	Goto   map[string]int
}

// Snapshot is the on-disk representation of a built parse.Table.
type Snapshot struct {
	Fingerprint Fingerprint
	States      []stateRecord
}

// symbolName returns the name a Snapshot uses as a map key for sym, which is
// eofName for the special EOF terminal and sym.Name for everything else.
func symbolName(g *parse.Grammar, sym *symbol.Symbol) string {
	if sym == g.EOF {
		return eofName
	}
	return sym.Name
}

// Dehydrate converts a built table into its serializable Snapshot, tagged
// with fp so a later Hydrate call can refuse to reuse it against a grammar
// it wasn't built from.
func Dehydrate(fp Fingerprint, table *parse.Table) *Snapshot {
	snap := &Snapshot{Fingerprint: fp, States: make([]stateRecord, len(table.Action))}
	for i := range table.Action {
		sr := stateRecord{Action: map[string]actionRecord{}, Goto: map[string]int{}}
		for sym, act := range table.Action[i] {
			ruleID := -1
			if act.Kind == parse.ActionReduce {
				ruleID = act.Rule.Rule.ID
			}
			sr.Action[symbolName(table.Grammar, sym)] = actionRecord{Kind: int(act.Kind), To: act.To, RuleID: ruleID}
		}
		for sym, to := range table.Goto[i] {
			sr.Goto[symbolName(table.Grammar, sym)] = to
		}
		snap.States[i] = sr
	}
	return snap
}

// Hydrate rebuilds a *parse.Table from snap against g, which must be the
// grammar (by fingerprint fp) that the snapshot was dehydrated from.
func Hydrate(g *parse.Grammar, fp Fingerprint, snap *Snapshot) (*parse.Table, error) {
	if snap.Fingerprint != fp {
		return nil, gampaerr.Buildf("cache fingerprint mismatch: grammar is %s, snapshot is %s", fp, snap.Fingerprint)
	}

	t := &parse.Table{
		Grammar: g,
		Action:  make([]map[*symbol.Symbol]parse.Action, len(snap.States)),
		Goto:    make([]map[*symbol.Symbol]int, len(snap.States)),
	}

	lookup := func(name string) (*symbol.Symbol, error) {
		if name == eofName {
			return g.EOF, nil
		}
		sym, ok := g.SymbolByName(name)
		if !ok {
			return nil, gampaerr.Buildf("cached table references unknown symbol %q", name)
		}
		return sym, nil
	}

	for i, sr := range snap.States {
		acts := make(map[*symbol.Symbol]parse.Action, len(sr.Action))
		for name, ar := range sr.Action {
			sym, err := lookup(name)
			if err != nil {
				return nil, err
			}
			act := parse.Action{Kind: parse.ActionKind(ar.Kind), To: ar.To}
			if ar.RuleID >= 0 {
				act.Rule = g.RuleByID(ar.RuleID)
			}
			acts[sym] = act
		}
		gotoMap := make(map[*symbol.Symbol]int, len(sr.Goto))
		for name, to := range sr.Goto {
			sym, err := lookup(name)
			if err != nil {
				return nil, err
			}
			gotoMap[sym] = to
		}
		t.Action[i] = acts
		t.Goto[i] = gotoMap
	}

	return t, nil
}

// EncodeSnapshot serializes snap to a binary blob via rezi, the same binary
// codec this module's teacher corpus uses for its own persisted blobs.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return rezi.EncBinary(snap), nil
}

// DecodeSnapshot deserializes a blob previously produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	n, err := rezi.DecBinary(data, &snap)
	if err != nil {
		return nil, gampaerr.WrapBuildf(err, "decoding cached table")
	}
	if n != len(data) {
		return nil, gampaerr.Buildf("decoding cached table: consumed %d/%d bytes", n, len(data))
	}
	return &snap, nil
}
