package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRender_Leaf verifies a bare leaf renders as its code.
func TestRender_Leaf(t *testing.T) {
	assert.Equal(t, "ECE212H1", Render(Course{Code: "ECE212H1"}))
}

// TestRender_And verifies AND joins with "and", no parentheses.
func TestRender_And(t *testing.T) {
	tree := AllOf{Children: []Node{
		Course{Code: "ECE243H1"},
		Course{Code: "ECE244H1"},
	}}
	assert.Equal(t, "ECE243H1 and ECE244H1", Render(tree))
}

// TestRender_Or verifies OR joins with "or" inside parentheses.
func TestRender_Or(t *testing.T) {
	tree := AnyOf{Children: []Node{
		Course{Code: "STA286H1"},
		Course{Code: "ECE286H1"},
	}}
	assert.Equal(t, "(STA286H1 or ECE286H1)", Render(tree))
}

// TestRender_SingleChildOr verifies a one-option OR drops the
// parentheses.
func TestRender_SingleChildOr(t *testing.T) {
	tree := AnyOf{Children: []Node{Course{Code: "ECE212H1"}}}
	assert.Equal(t, "ECE212H1", Render(tree))
}

// TestRender_Nested verifies OR groups nested in an AND keep their
// parentheses.
func TestRender_Nested(t *testing.T) {
	tree := AllOf{Children: []Node{
		AnyOf{Children: []Node{Course{Code: "ECE212H1"}, Course{Code: "ECE221H1"}}},
		Course{Code: "ECE302H1"},
	}}
	assert.Equal(t, "(ECE212H1 or ECE221H1) and ECE302H1", Render(tree))
}

// TestLeaves verifies leaf collection order and duplicate preservation.
func TestLeaves(t *testing.T) {
	tree := AllOf{Children: []Node{
		AnyOf{Children: []Node{Course{Code: "ECE417H1"}, Course{Code: "MIE286H1"}}},
		Course{Code: "ECE417H1"},
	}}
	assert.Equal(t, []string{"ECE417H1", "MIE286H1", "ECE417H1"}, Leaves(tree))
}
