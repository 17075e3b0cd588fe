package interval

import (
	"reflect"
	"testing"
)

func Test_DisjointList_mergesOverlapsAndTouching(t *testing.T) {
	in := []Range{{10, 20}, {1, 5}, {21, 25}, {7, 9}}
	got := DisjointList(in)
	want := []Range{{1, 5}, {7, 25}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DisjointList() = %v, want %v", got, want)
	}
}

func Test_IntersectLists(t *testing.T) {
	a := []Range{{1, 10}}
	b := []Range{{5, 15}, {20, 25}}
	got := IntersectLists(a, b)
	want := []Range{{5, 10}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("IntersectLists() = %v, want %v", got, want)
	}
}

func Test_InvertList(t *testing.T) {
	in := []Range{{5, 10}}
	got := InvertList(in, 0, 15)
	want := []Range{{0, 4}, {11, 15}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("InvertList() = %v, want %v", got, want)
	}
}

func Test_DisjointValuedList_splitsOverlapAndUnionsValues(t *testing.T) {
	data := []RangeValues[string]{
		{Range{'a', 'z'}, map[string]bool{"id": true}},
		{Range{'a', 'f'}, map[string]bool{"hex": true}},
	}
	got := DisjointValuedList(data)

	want := []RangeValues[string]{
		{Range{'a', 'f'}, map[string]bool{"id": true, "hex": true}},
		{Range{'g', 'z'}, map[string]bool{"id": true}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DisjointValuedList() = %+v, want %+v", got, want)
	}
}

func Test_DisjointValuedList_noOverlap(t *testing.T) {
	data := []RangeValues[int]{
		{Range{1, 3}, map[int]bool{1: true}},
		{Range{10, 12}, map[int]bool{2: true}},
	}
	got := DisjointValuedList(data)
	if len(got) != 2 {
		t.Fatalf("len(got) = %d, want 2", len(got))
	}
}
