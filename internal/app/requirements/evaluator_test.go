package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_NilTree verifies the absence of a requirement is
// vacuously satisfied.
func TestEvaluate_NilTree(t *testing.T) {
	result := Evaluate(nil, NewCourseSet("ECE212H1"))
	assert.True(t, result.Satisfied)
	assert.Empty(t, result.Missing)
}

// TestEvaluate_Leaf verifies leaf membership semantics.
func TestEvaluate_Leaf(t *testing.T) {
	leaf := Course{Code: "ECE212H1"}

	assert.True(t, Evaluate(leaf, NewCourseSet("ECE212H1")).Satisfied)

	result := Evaluate(leaf, NewCourseSet("ECE221H1"))
	assert.False(t, result.Satisfied)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, Missing{Kind: MissingCourse, Code: "ECE212H1"}, result.Missing[0])
}

// TestEvaluate_AnyOf verifies OR is satisfied by any single child and
// reports all leaf options on full failure.
func TestEvaluate_AnyOf(t *testing.T) {
	tree := AnyOf{Children: []Node{
		Course{Code: "STA286H1"},
		Course{Code: "ECE286H1"},
	}}

	assert.True(t, Evaluate(tree, NewCourseSet("ECE286H1")).Satisfied)
	assert.True(t, Evaluate(tree, NewCourseSet("STA286H1", "ECE286H1")).Satisfied)

	result := Evaluate(tree, NewCourseSet())
	assert.False(t, result.Satisfied)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, MissingAnyOf, result.Missing[0].Kind)
	assert.Equal(t, []string{"STA286H1", "ECE286H1"}, result.Missing[0].Options)
}

// TestEvaluate_AnyOfNestedOptions verifies option collection descends
// through nested subtrees.
func TestEvaluate_AnyOfNestedOptions(t *testing.T) {
	tree := AnyOf{Children: []Node{
		AllOf{Children: []Node{Course{Code: "ECE302H1"}, Course{Code: "ECE316H1"}}},
		Course{Code: "MIE286H1"},
	}}

	result := Evaluate(tree, NewCourseSet())
	assert.False(t, result.Satisfied)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, []string{"ECE302H1", "ECE316H1", "MIE286H1"}, result.Missing[0].Options)
}

// TestEvaluate_AllOfFlattens verifies AND concatenates child misses in
// child order without nesting.
func TestEvaluate_AllOfFlattens(t *testing.T) {
	tree := AllOf{Children: []Node{
		Course{Code: "ECE212H1"},
		AnyOf{Children: []Node{Course{Code: "STA286H1"}, Course{Code: "ECE286H1"}}},
		Course{Code: "ECE221H1"},
	}}

	result := Evaluate(tree, NewCourseSet())
	assert.False(t, result.Satisfied)
	require.Len(t, result.Missing, 3)
	assert.Equal(t, MissingCourse, result.Missing[0].Kind)
	assert.Equal(t, "ECE212H1", result.Missing[0].Code)
	assert.Equal(t, MissingAnyOf, result.Missing[1].Kind)
	assert.Equal(t, MissingCourse, result.Missing[2].Kind)
	assert.Equal(t, "ECE221H1", result.Missing[2].Code)
}

// TestEvaluate_AllOfPartial verifies satisfied children contribute no
// misses while unsatisfied ones do.
func TestEvaluate_AllOfPartial(t *testing.T) {
	tree := AllOf{Children: []Node{
		Course{Code: "ECE212H1"},
		Course{Code: "ECE221H1"},
	}}

	result := Evaluate(tree, NewCourseSet("ECE212H1"))
	assert.False(t, result.Satisfied)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "ECE221H1", result.Missing[0].Code)
}

// TestEvaluate_FiveGroupScenario mirrors ECE435H1_p6: an AND of five
// two-option OR groups evaluated over an empty completed set yields
// five MissingAnyOf entries with two options each, in declared order.
func TestEvaluate_FiveGroupScenario(t *testing.T) {
	coursesets := map[string]string{
		"ECE435H1_p6": "ECE435H1_p1 & ECE435H1_p2 & ECE435H1_p3 & ECE435H1_p4 & ECE435H1_p5",
		"ECE435H1_p1": "ECE212H1 / ECE221H1",
		"ECE435H1_p2": "ECE302H1 / STA286H1",
		"ECE435H1_p3": "ECE316H1 / ECE358H1",
		"ECE435H1_p4": "ECE320H1 / ECE356H1",
		"ECE435H1_p5": "ECE344H1 / ECE353H1",
	}
	r := newTestResolver(coursesets,
		"ECE212H1", "ECE221H1", "ECE302H1", "STA286H1", "ECE316H1",
		"ECE358H1", "ECE320H1", "ECE356H1", "ECE344H1", "ECE353H1",
	)

	tree, diags := r.Resolve("ECE435H1_p6")
	require.Empty(t, diags)

	result := Evaluate(tree, NewCourseSet())
	assert.False(t, result.Satisfied)
	require.Len(t, result.Missing, 5)

	wantOptions := [][]string{
		{"ECE212H1", "ECE221H1"},
		{"ECE302H1", "STA286H1"},
		{"ECE316H1", "ECE358H1"},
		{"ECE320H1", "ECE356H1"},
		{"ECE344H1", "ECE353H1"},
	}
	for i, missing := range result.Missing {
		assert.Equal(t, MissingAnyOf, missing.Kind)
		assert.Equal(t, wantOptions[i], missing.Options)
	}
}

// TestEvaluate_OrOfAndsScenario mirrors ECE464H1_p3: an OR of two AND
// branches is satisfied via its second branch even though the first is
// not.
func TestEvaluate_OrOfAndsScenario(t *testing.T) {
	coursesets := map[string]string{
		"ECE464H1_p3": "ECE464H1_p1 / ECE464H1_p2",
		"ECE464H1_p1": "ECE302H1 & ECE316H1 & ECE417H1",
		"ECE464H1_p2": "ECE417H1 & MIE286H1",
	}
	r := newTestResolver(coursesets, "ECE302H1", "ECE316H1", "ECE417H1", "MIE286H1")

	tree, diags := r.Resolve("ECE464H1_p3")
	require.Empty(t, diags)

	assert.True(t, Evaluate(tree, NewCourseSet("ECE417H1", "MIE286H1")).Satisfied)
	assert.False(t, Evaluate(tree, NewCourseSet("ECE417H1")).Satisfied)
}
