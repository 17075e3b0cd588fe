package gampacache

import (
	"testing"

	"github.com/dekarrin/gampa/parse"
)

func buildArithmeticGrammarAndTable(t *testing.T) (*parse.Grammar, []parse.RuleSource, *parse.Table) {
	t.Helper()
	rules := []parse.RuleSource{
		{Head: "E", Body: "T (PLUS T)*"},
		{Head: "T", Body: "F (STAR F)*"},
		{Head: "F", Body: "NUM | LPAREN E RPAREN"},
	}
	g, err := parse.NewGrammar("E", rules,
		[]string{"NUM", "PLUS", "STAR", "LPAREN", "RPAREN"},
		[]string{"E", "T", "F"})
	if err != nil {
		t.Fatalf("NewGrammar: %v", err)
	}
	fs := parse.ComputeFirstSets(g)
	coll := parse.BuildCollection(g, fs)
	table, err := parse.BuildTable(g, coll, nil)
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	return g, rules, table
}

func Test_Dehydrate_EncodeDecode_Hydrate_roundTrip(t *testing.T) {
	g, rules, table := buildArithmeticGrammarAndTable(t)
	fp := NewFingerprint("E", rules)

	snap := Dehydrate(fp, table)

	data, err := EncodeSnapshot(snap)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}
	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if decoded.Fingerprint != fp {
		t.Fatalf("decoded fingerprint = %s, want %s", decoded.Fingerprint, fp)
	}
	if len(decoded.States) != len(table.Action) {
		t.Fatalf("decoded state count = %d, want %d", len(decoded.States), len(table.Action))
	}

	rehydrated, err := Hydrate(g, fp, decoded)
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if len(rehydrated.Action) != len(table.Action) {
		t.Fatalf("rehydrated action states = %d, want %d", len(rehydrated.Action), len(table.Action))
	}
	for i := range table.Action {
		if len(rehydrated.Action[i]) != len(table.Action[i]) {
			t.Fatalf("state %d: rehydrated %d actions, want %d", i, len(rehydrated.Action[i]), len(table.Action[i]))
		}
	}
}

func Test_Hydrate_rejectsFingerprintMismatch(t *testing.T) {
	g, rules, table := buildArithmeticGrammarAndTable(t)
	fp := NewFingerprint("E", rules)
	snap := Dehydrate(fp, table)

	otherRules := append([]parse.RuleSource{}, rules...)
	otherRules[0].Body = "F (PLUS T)*"
	staleFP := NewFingerprint("E", otherRules)

	if _, err := Hydrate(g, staleFP, snap); err == nil {
		t.Fatal("expected fingerprint mismatch error")
	}
}
