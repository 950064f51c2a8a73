package requirements

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog is an in-memory CatalogSource for parser tests.
type fakeCatalog struct {
	coursesets map[string]string
	courses    map[string]bool
}

func (f *fakeCatalog) CoursesetExpression(id string) (string, bool) {
	expr, ok := f.coursesets[id]
	return expr, ok
}

func (f *fakeCatalog) HasCourse(code string) bool {
	return f.courses[code]
}

func newTestResolver(coursesets map[string]string, courses ...string) *Resolver {
	known := make(map[string]bool, len(courses))
	for _, code := range courses {
		known[code] = true
	}
	return NewResolver(&fakeCatalog{coursesets: coursesets, courses: known}, zerolog.Nop())
}

// TestIsCoursesetID pins the courseset-id lexical grammar.
func TestIsCoursesetID(t *testing.T) {
	valid := []string{"ECE435H1_p6", "APS360H1_c1", "MIE286H1_e12", "CS101Y9_p1", "ABCD999H0_e1"}
	for _, id := range valid {
		assert.True(t, IsCoursesetID(id), "expected %q to be a courseset id", id)
	}

	invalid := []string{
		"ECE435H1",      // plain course code
		"ece435H1_p6",   // lowercase letters
		"ECE435X1_p6",   // bad session letter
		"ECE435H1_q6",   // bad field letter
		"ECE435H1_p",    // missing counter
		"E435H1_p1",     // too few letters
		"ECEEE435H1_p1", // too many letters
	}
	for _, id := range invalid {
		assert.False(t, IsCoursesetID(id), "expected %q not to be a courseset id", id)
	}
}

// TestResolve_EmptyID verifies an empty id means "no requirement".
func TestResolve_EmptyID(t *testing.T) {
	r := newTestResolver(nil)

	node, diags := r.Resolve("")
	assert.Nil(t, node)
	assert.Empty(t, diags)
}

// TestResolve_UnknownID verifies a missing courseset degrades to no
// requirement but surfaces a diagnostic.
func TestResolve_UnknownID(t *testing.T) {
	r := newTestResolver(nil)

	node, diags := r.Resolve("ECE999H1_p1")
	assert.Nil(t, node)
	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnresolvableCourseset, diags[0].Kind)
	assert.Equal(t, "ECE999H1_p1", diags[0].CoursesetID)
}

// TestResolve_SingleCourse verifies a lone token becomes a bare leaf.
func TestResolve_SingleCourse(t *testing.T) {
	r := newTestResolver(map[string]string{"ECE311H1_p1": "ECE212H1"}, "ECE212H1")

	node, diags := r.Resolve("ECE311H1_p1")
	assert.Empty(t, diags)
	require.IsType(t, Course{}, node)
	assert.Equal(t, "ECE212H1", node.(Course).Code)
}

// TestResolve_AndExpression verifies " & " splits into an AllOf.
func TestResolve_AndExpression(t *testing.T) {
	r := newTestResolver(
		map[string]string{"ECE344H1_p1": "ECE243H1 & ECE244H1"},
		"ECE243H1", "ECE244H1",
	)

	node, diags := r.Resolve("ECE344H1_p1")
	assert.Empty(t, diags)
	require.IsType(t, AllOf{}, node)
	children := node.(AllOf).Children
	require.Len(t, children, 2)
	assert.Equal(t, Course{Code: "ECE243H1"}, children[0])
	assert.Equal(t, Course{Code: "ECE244H1"}, children[1])
}

// TestResolve_OrExpression verifies " / " splits into an AnyOf.
func TestResolve_OrExpression(t *testing.T) {
	r := newTestResolver(
		map[string]string{"ECE302H1_p1": "STA286H1 / ECE286H1"},
		"STA286H1", "ECE286H1",
	)

	node, diags := r.Resolve("ECE302H1_p1")
	assert.Empty(t, diags)
	require.IsType(t, AnyOf{}, node)
	require.Len(t, node.(AnyOf).Children, 2)
}

// TestResolve_NestedCoursesets verifies recursive expansion of
// courseset references inside an expression.
func TestResolve_NestedCoursesets(t *testing.T) {
	r := newTestResolver(
		map[string]string{
			"ECE435H1_p3": "ECE435H1_p1 & ECE435H1_p2",
			"ECE435H1_p1": "ECE302H1 / STA286H1",
			"ECE435H1_p2": "ECE316H1",
		},
		"ECE302H1", "STA286H1", "ECE316H1",
	)

	node, diags := r.Resolve("ECE435H1_p3")
	assert.Empty(t, diags)
	require.IsType(t, AllOf{}, node)
	children := node.(AllOf).Children
	require.Len(t, children, 2)
	assert.IsType(t, AnyOf{}, children[0])
	assert.Equal(t, Course{Code: "ECE316H1"}, children[1])
}

// TestResolve_MixedOperators verifies both delimiters at one level are
// rejected as malformed instead of silently mis-parsed.
func TestResolve_MixedOperators(t *testing.T) {
	r := newTestResolver(
		map[string]string{"ECE318H1_p1": "ECE212H1 & ECE221H1 / ECE259H1"},
		"ECE212H1", "ECE221H1", "ECE259H1",
	)

	node, diags := r.Resolve("ECE318H1_p1")
	assert.Nil(t, node)
	require.Len(t, diags, 1)
	assert.Equal(t, DiagMalformedExpression, diags[0].Kind)
}

// TestResolve_UnknownCourseToken verifies an unknown plain token is
// reported but still kept as a leaf for best-effort evaluation.
func TestResolve_UnknownCourseToken(t *testing.T) {
	r := newTestResolver(
		map[string]string{"ECE419H1_p1": "ECE344H1 & BOGUS999"},
		"ECE344H1",
	)

	node, diags := r.Resolve("ECE419H1_p1")
	require.IsType(t, AllOf{}, node)
	require.Len(t, node.(AllOf).Children, 2)
	assert.Equal(t, Course{Code: "BOGUS999"}, node.(AllOf).Children[1])

	require.Len(t, diags, 1)
	assert.Equal(t, DiagMalformedExpression, diags[0].Kind)
	assert.Equal(t, "BOGUS999", diags[0].Token)
}

// TestResolve_CycleTerminates verifies mutually referencing coursesets
// terminate with a CyclicCourseset diagnostic instead of recursing.
func TestResolve_CycleTerminates(t *testing.T) {
	r := newTestResolver(map[string]string{
		"AAA111H1_p1": "BBB222H1_p1",
		"BBB222H1_p1": "AAA111H1_p1",
	})

	node, diags := r.Resolve("AAA111H1_p1")
	assert.Nil(t, node)
	require.NotEmpty(t, diags)
	assert.Equal(t, DiagCyclicCourseset, diags[0].Kind)
	assert.Equal(t, "AAA111H1_p1", diags[0].CoursesetID)
}

// TestResolve_SelfCycle verifies a courseset referencing itself directly
// is caught as well.
func TestResolve_SelfCycle(t *testing.T) {
	r := newTestResolver(map[string]string{
		"CCC333H1_p1": "ECE212H1 & CCC333H1_p1",
	}, "ECE212H1")

	node, diags := r.Resolve("CCC333H1_p1")
	require.IsType(t, AllOf{}, node)
	require.Len(t, node.(AllOf).Children, 1)
	require.Len(t, diags, 1)
	assert.Equal(t, DiagCyclicCourseset, diags[0].Kind)
}

// TestResolve_Cached verifies repeated resolution returns the identical
// cached tree, not just an equal one.
func TestResolve_Cached(t *testing.T) {
	r := newTestResolver(
		map[string]string{"ECE344H1_p1": "ECE243H1 & ECE244H1"},
		"ECE243H1", "ECE244H1",
	)

	first, _ := r.Resolve("ECE344H1_p1")
	second, _ := r.Resolve("ECE344H1_p1")

	require.IsType(t, AllOf{}, first)
	require.IsType(t, AllOf{}, second)
	assert.Equal(t, first, second)
	// Shared backing array proves the tree came out of the cache.
	assert.Same(t, &first.(AllOf).Children[0], &second.(AllOf).Children[0])
}

// TestResolve_PartialCycleKeepsGoodBranch verifies a cyclic branch is
// dropped while sibling branches survive.
func TestResolve_PartialCycleKeepsGoodBranch(t *testing.T) {
	r := newTestResolver(map[string]string{
		"DDD444H1_p1": "DDD444H1_p2 / ECE212H1",
		"DDD444H1_p2": "DDD444H1_p1",
	}, "ECE212H1")

	node, diags := r.Resolve("DDD444H1_p1")
	require.IsType(t, AnyOf{}, node)
	require.Len(t, node.(AnyOf).Children, 1)
	assert.Equal(t, Course{Code: "ECE212H1"}, node.(AnyOf).Children[0])
	require.NotEmpty(t, diags)
	assert.Equal(t, DiagCyclicCourseset, diags[0].Kind)
}
