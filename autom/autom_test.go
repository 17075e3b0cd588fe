package autom

import "testing"

// Builds an NFA accepting "a" and "ab" along one chain (the "a" accept sits
// on the path to the "ab" accept) and checks that determinization yields
// three states and preserves both accepts.
func Test_Determinize_mergesSharedPrefix(t *testing.T) {
	a := NewArena[rune]()
	start := a.NewNode()
	mid := a.NewNode()
	acceptA := a.NewNode()
	acceptAB := a.NewNode()

	a.AddTrans(start, 'a', mid)
	a.SetFinal(mid, "a")
	a.AddTrans(mid, 'b', acceptAB)
	a.SetFinal(acceptAB, "ab")
	_ = acceptA

	states := Determinize(a, ExactGrouper[rune](), start)

	if len(states) != 3 {
		t.Fatalf("len(states) = %d, want 3 (start, after-a, after-ab)", len(states))
	}
	if states[0].Final {
		t.Fatal("start state should not be final")
	}
	afterA := states[0].Trans['a']
	if !states[afterA].Final {
		t.Fatal("state after 'a' should be final")
	}
	afterAB := states[afterA].Trans['b']
	if !states[afterAB].Final {
		t.Fatal("state after 'ab' should be final")
	}
}

func Test_Determinize_epsilonOnlyAlternation(t *testing.T) {
	a := NewArena[string]()
	start := a.NewNode()
	left := a.NewNode()
	right := a.NewNode()
	a.AddEpsilon(start, left)
	a.AddEpsilon(start, right)
	a.AddTrans(left, "x", left)
	a.SetFinal(right, "done")

	states := Determinize(a, ExactGrouper[string](), start)
	if !states[0].Final {
		t.Fatal("start subset includes an epsilon-reachable final state, should be final")
	}
}
