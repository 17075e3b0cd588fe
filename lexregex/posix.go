package lexregex

import "github.com/dekarrin/gampa/interval"

// posixClasses holds the fixed, enumerated POSIX character class subset;
// there is no Unicode property database behind \p{...} beyond these names.
var posixClasses = map[string][]interval.Range{
	"Space":  {{Start: 0x09, End: 0x0D}, {Start: 0x20, End: 0x20}, {Start: 0x85, End: 0x85}, {Start: 0xA0, End: 0xA0}},
	"Lower":  {{Start: 'a', End: 'z'}},
	"Upper":  {{Start: 'A', End: 'Z'}},
	"ASCII":  {{Start: 0x00, End: 0x7F}},
	"Alpha":  {{Start: 'A', End: 'Z'}, {Start: 'a', End: 'z'}},
	"Digit":  {{Start: '0', End: '9'}},
	"Alnum":  {{Start: '0', End: '9'}, {Start: 'A', End: 'Z'}, {Start: 'a', End: 'z'}},
	"Cntrl":  {{Start: 0x00, End: 0x1F}, {Start: 0x7F, End: 0x7F}},
	"XDigit": {{Start: '0', End: '9'}, {Start: 'A', End: 'F'}, {Start: 'a', End: 'f'}},
}

// PosixClass returns the ranges for the named POSIX class (e.g. "Alpha")
// and whether it exists.
func PosixClass(name string) ([]interval.Range, bool) {
	r, ok := posixClasses[name]
	if !ok {
		return nil, false
	}
	return interval.DisjointList(r), true
}
