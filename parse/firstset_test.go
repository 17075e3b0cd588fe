package parse

import "testing"

func Test_ComputeFirstSets_arithmeticGrammar(t *testing.T) {
	rules := []RuleSource{
		{Head: "E", Body: "T (PLUS T)*"},
		{Head: "T", Body: "F (STAR F)*"},
		{Head: "F", Body: "NUM | LPAREN E RPAREN"},
	}
	g, err := NewGrammar("E", rules,
		[]string{"NUM", "PLUS", "STAR", "LPAREN", "RPAREN"},
		[]string{"E", "T", "F"})
	if err != nil {
		t.Fatalf("NewGrammar: %v", err)
	}
	fs := ComputeFirstSets(g)

	for _, nt := range g.NonTerminals {
		if nt.Name != "E" {
			continue
		}
		first := fs.Of(nt)
		names := map[string]bool{}
		for s := range first {
			names[s.Name] = true
		}
		if len(names) != 2 || !names["NUM"] || !names["LPAREN"] {
			t.Fatalf("FIRST(E) names = %v, want exactly {NUM, LPAREN}", names)
		}
		if fs.Nullable(nt) {
			t.Fatal("E should not be nullable")
		}
	}
}
