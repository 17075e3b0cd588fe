// Package treeutil holds small generic helpers for tree-shaped nodes such as
// the lexregex and gamma ASTs: exploding a recursive node into postorder, and
// rendering a node tree for debug output.
package treeutil

import (
	"strings"

	"github.com/dekarrin/rosed"
)

// UnfoldPostfix walks root depth-first, children-before-parent, and returns
// every node visited in that order. children is called once per node to
// obtain its direct descendants; leaves must return a nil or empty slice.
func UnfoldPostfix[T any](root T, children func(T) []T) []T {
	var out []T
	for _, c := range children(root) {
		out = append(out, UnfoldPostfix(c, children)...)
	}
	out = append(out, root)
	return out
}

// Repr renders root and its descendants as an indented tree, one node per
// line, using name to label each node.
func Repr[T any](root T, name func(T) string, children func(T) []T) string {
	var sb strings.Builder
	reprInto(&sb, root, name, children, 0)
	return sb.String()
}

func reprInto[T any](sb *strings.Builder, node T, name func(T) string, children func(T) []T, depth int) {
	sb.WriteString(rosed.Edit(strings.Repeat("  ", depth) + name(node)).String())
	sb.WriteRune('\n')
	for _, c := range children(node) {
		reprInto(sb, c, name, children, depth+1)
	}
}
