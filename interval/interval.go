// Package interval implements the closed-range algebra that the character
// regex engine uses to represent character classes: intersection, union,
// inversion, and the value-carrying sweep used to split overlapping ranges
// coming from several patterns at once.
package interval

import "sort"

// Universe is the highest codepoint this module's character classes
// consider; codepoints above it are out of scope (see the POSIX-only
// non-goal).
const Universe rune = 0xFFFF

// Range is an inclusive codepoint range [Start, End].
type Range struct {
	Start, End rune
}

// Empty reports whether r contains no codepoints.
func (r Range) Empty() bool {
	return r.Start > r.End
}

// Contains reports whether c falls within r.
func (r Range) Contains(c rune) bool {
	return c >= r.Start && c <= r.End
}

// Intersect returns the overlap of a and b, and false if they do not
// overlap.
func Intersect(a, b Range) (Range, bool) {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if start > end {
		return Range{}, false
	}
	return Range{start, end}, true
}

// Touches reports whether a and b overlap or are directly adjacent, i.e.
// whether they would merge into a single range in a disjoint list.
func Touches(a, b Range) bool {
	if a.Start > b.Start {
		a, b = b, a
	}
	return b.Start <= a.End+1
}

// DisjointList sorts list and merges every pair of overlapping or touching
// ranges, returning a minimal sorted list of disjoint ranges covering the
// same codepoints as the input.
func DisjointList(list []Range) []Range {
	if len(list) == 0 {
		return nil
	}
	sorted := make([]Range, len(list))
	copy(sorted, list)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	out := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if Touches(*last, r) {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

// IntersectLists returns the disjoint list of ranges present in both a and
// b.
func IntersectLists(a, b []Range) []Range {
	da, db := DisjointList(a), DisjointList(b)
	var out []Range
	i, j := 0, 0
	for i < len(da) && j < len(db) {
		if r, ok := Intersect(da[i], db[j]); ok {
			out = append(out, r)
		}
		if da[i].End < db[j].End {
			i++
		} else {
			j++
		}
	}
	return DisjointList(out)
}

// UnionList returns the disjoint list of ranges present in any of lists.
func UnionList(lists ...[]Range) []Range {
	var all []Range
	for _, l := range lists {
		all = append(all, l...)
	}
	return DisjointList(all)
}

// InvertList returns the disjoint list of ranges within [lower, upper] that
// are not covered by list.
func InvertList(list []Range, lower, upper rune) []Range {
	d := DisjointList(list)
	var out []Range
	cur := lower
	for _, r := range d {
		if r.Start > cur {
			out = append(out, Range{cur, r.Start - 1})
		}
		if r.End+1 > cur {
			cur = r.End + 1
		}
	}
	if cur <= upper {
		out = append(out, Range{cur, upper})
	}
	return out
}

// RangeValues pairs a range with the set of values it is tagged with; it is
// both the input and the output shape of DisjointValuedList.
type RangeValues[V comparable] struct {
	Range  Range
	Values map[V]bool
}

// DisjointValuedList takes possibly-overlapping, possibly value-tagged
// ranges and returns a disjoint, sorted list covering the same codepoints,
// where each output range's Values is the union of the Values of every
// input range that covered it. It is the core of tokenizer determinization:
// multiple patterns tagged with their own identity can all claim the same
// codepoint, and this produces the exact boundaries where the set of
// claimants changes.
func DisjointValuedList[V comparable](data []RangeValues[V]) []RangeValues[V] {
	if len(data) == 0 {
		return nil
	}

	type event struct {
		pos    rune
		delta  int // +1 open, -1 close
		values map[V]bool
	}
	var events []event
	for _, d := range data {
		if d.Range.Empty() {
			continue
		}
		events = append(events, event{d.Range.Start, 1, d.Values})
		events = append(events, event{d.Range.End + 1, -1, d.Values})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].pos < events[j].pos })

	active := map[V]int{}
	var out []RangeValues[V]
	var segStart rune
	haveStart := false

	flush := func(end rune) {
		if !haveStart || segStart > end {
			return
		}
		if len(active) == 0 {
			return
		}
		vals := make(map[V]bool, len(active))
		for v := range active {
			vals[v] = true
		}
		out = append(out, RangeValues[V]{Range{segStart, end}, vals})
	}

	i := 0
	for i < len(events) {
		pos := events[i].pos
		flush(pos - 1)
		for i < len(events) && events[i].pos == pos {
			e := events[i]
			for v := range e.values {
				if e.delta > 0 {
					active[v]++
				} else {
					active[v]--
					if active[v] <= 0 {
						delete(active, v)
					}
				}
			}
			i++
		}
		segStart = pos
		haveStart = true
	}
	return out
}
