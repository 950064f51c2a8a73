package requirements

import "strings"

// Node is the parsed form of a courseset expression. It is one of
// Course, AllOf or AnyOf. Trees are built once by the Resolver and
// never mutated afterwards.
type Node interface {
	isNode()
}

// Course is a leaf referencing a single course code.
type Course struct {
	Code string
}

// AllOf is satisfied when every child is satisfied.
type AllOf struct {
	Children []Node
}

// AnyOf is satisfied when at least one child is satisfied.
type AnyOf struct {
	Children []Node
}

func (Course) isNode() {}
func (AllOf) isNode()  {}
func (AnyOf) isNode()  {}

// Leaves collects every course code referenced under the node, in
// declaration order. Duplicates are preserved; callers that display
// the list should de-duplicate.
func Leaves(node Node) []string {
	var codes []string
	collectLeaves(node, &codes)
	return codes
}

func collectLeaves(node Node, codes *[]string) {
	switch n := node.(type) {
	case Course:
		*codes = append(*codes, n.Code)
	case AllOf:
		for _, c := range n.Children {
			collectLeaves(c, codes)
		}
	case AnyOf:
		for _, c := range n.Children {
			collectLeaves(c, codes)
		}
	}
}

// Render produces the human-readable form of a tree: AND joins with
// "and", OR joins with "or" wrapped in parentheses. A single-child OR
// renders without parentheses.
func Render(node Node) string {
	switch n := node.(type) {
	case Course:
		return n.Code
	case AllOf:
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, Render(c))
		}
		return strings.Join(parts, " and ")
	case AnyOf:
		if len(n.Children) == 1 {
			return Render(n.Children[0])
		}
		parts := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			parts = append(parts, Render(c))
		}
		return "(" + strings.Join(parts, " or ") + ")"
	default:
		return ""
	}
}
