package lexregex

import (
	"testing"

	"github.com/dekarrin/gampa/interval"
)

func Test_ParseString_literalSequence(t *testing.T) {
	n, err := ParseString("ab")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	seq, ok := n.(*Sequence)
	if !ok || len(seq.Items) != 2 {
		t.Fatalf("got %#v, want 2-item Sequence", n)
	}
}

func Test_ParseString_alternationAndQuantifier(t *testing.T) {
	n, err := ParseString("a|b*")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	ch, ok := n.(*Choice)
	if !ok || len(ch.Options) != 2 {
		t.Fatalf("got %#v, want 2-option Choice", n)
	}
	if _, ok := ch.Options[1].(*Quantified); !ok {
		t.Fatalf("second option = %#v, want *Quantified", ch.Options[1])
	}
}

func Test_ParseString_bracketClassRange(t *testing.T) {
	n, err := ParseString("[a-z0-9]")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	cls, ok := n.(*Class)
	if !ok {
		t.Fatalf("got %#v, want *Class", n)
	}
	want := interval.DisjointList([]interval.Range{{Start: 'a', End: 'z'}, {Start: '0', End: '9'}})
	if len(cls.Ranges) != len(want) {
		t.Fatalf("Ranges = %v, want %v", cls.Ranges, want)
	}
}

func Test_ParseString_negatedClass(t *testing.T) {
	n, err := ParseString("[^a]")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	cls := n.(*Class)
	for _, r := range cls.Ranges {
		if r.Contains('a') {
			t.Fatal("negated class should not contain 'a'")
		}
	}
}

func Test_ParseString_posixEscape(t *testing.T) {
	n, err := ParseString(`\p{Alpha}\w*`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	seq, ok := n.(*Sequence)
	if !ok || len(seq.Items) != 2 {
		t.Fatalf("got %#v, want 2-item Sequence", n)
	}
	if _, ok := seq.Items[0].(*Class); !ok {
		t.Fatalf("first item = %#v, want *Class", seq.Items[0])
	}
}

func Test_ParseString_unterminatedClass(t *testing.T) {
	_, err := ParseString("[a-z")
	if err == nil {
		t.Fatal("expected error for unterminated class")
	}
}
