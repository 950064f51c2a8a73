package planner

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/requirements"
)

// fixture bundles a fake catalog usable both as the resolver's source
// and as the validator's course lookup.
type fixture struct {
	courses    map[string]*models.Course
	coursesets map[string]string
}

func (f *fixture) Course(code string) (*models.Course, bool) {
	c, ok := f.courses[code]
	return c, ok
}

func (f *fixture) HasCourse(code string) bool {
	_, ok := f.courses[code]
	return ok
}

func (f *fixture) CoursesetExpression(id string) (string, bool) {
	expr, ok := f.coursesets[id]
	return expr, ok
}

func newFixture() *fixture {
	return &fixture{
		courses: map[string]*models.Course{
			"ECE212H1": {Code: "ECE212H1", Session: models.SessionBoth},
			"ECE221H1": {Code: "ECE221H1", Session: models.SessionBoth},
			"ECE286H1": {Code: "ECE286H1", Session: models.SessionBoth},
			"STA286H1": {Code: "STA286H1", Session: models.SessionBoth,
				Exclusions: "STA286H1_e1"},
			"ECE302H1": {Code: "ECE302H1", Session: models.SessionFall,
				Prerequisites: "ECE302H1_p1"},
			"ECE344H1": {Code: "ECE344H1", Session: models.SessionBoth,
				Prerequisites: "ECE344H1_p1", Corequisites: "ECE344H1_c1"},
		},
		coursesets: map[string]string{
			"ECE302H1_p1": "ECE212H1 & ECE221H1",
			"ECE344H1_p1": "ECE212H1",
			"ECE344H1_c1": "ECE221H1",
			"STA286H1_e1": "ECE286H1",
		},
	}
}

func newTestValidator(f *fixture) *Validator {
	return NewValidator(requirements.NewResolver(f, zerolog.Nop()))
}

func errorKinds(errs []PlacementError) []ErrorKind {
	kinds := make([]ErrorKind, 0, len(errs))
	for _, e := range errs {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// TestValidatePlacement_NoRequirements verifies a requirement-free
// course with session Both passes in any semester.
func TestValidatePlacement_NoRequirements(t *testing.T) {
	f := newFixture()
	v := newTestValidator(f)
	g := NewGrid(DefaultSemesters, 6)

	for _, semester := range DefaultSemesters {
		errs := v.ValidatePlacement(f.courses["ECE212H1"], semester, g)
		assert.Empty(t, errs, "semester %s", semester)
	}
}

// TestValidatePlacement_PrerequisiteTiming verifies a prerequisite is
// satisfied only by strictly earlier semesters: the same semester
// satisfies a corequisite but never a prerequisite.
func TestValidatePlacement_PrerequisiteTiming(t *testing.T) {
	f := newFixture()
	v := newTestValidator(f)

	// ECE344H1 requires ECE212H1 before and ECE221H1 before-or-within.
	g := NewGrid(DefaultSemesters, 6)
	require.NoError(t, g.Place("ECE212H1", "2F"))
	require.NoError(t, g.Place("ECE221H1", "2F"))

	// Same semester as both: prerequisite fails, corequisite passes.
	errs := v.ValidatePlacement(f.courses["ECE344H1"], "2F", g)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrorPrerequisite, errs[0].Kind)
	require.Len(t, errs[0].Missing, 1)
	assert.Equal(t, "ECE212H1", errs[0].Missing[0].Code)

	// One semester later: everything passes.
	errs = v.ValidatePlacement(f.courses["ECE344H1"], "2S", g)
	assert.Empty(t, errs)
}

// TestValidatePlacement_CorequisiteMissing verifies a corequisite
// absent from the whole prefix fails.
func TestValidatePlacement_CorequisiteMissing(t *testing.T) {
	f := newFixture()
	v := newTestValidator(f)

	g := NewGrid(DefaultSemesters, 6)
	require.NoError(t, g.Place("ECE212H1", "1F"))

	errs := v.ValidatePlacement(f.courses["ECE344H1"], "2F", g)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrorCorequisite, errs[0].Kind)
	require.Len(t, errs[0].Missing, 1)
	assert.Equal(t, "ECE221H1", errs[0].Missing[0].Code)
}

// TestValidatePlacement_Exclusion verifies a placed excluded course
// anywhere in the plan triggers an exclusion error naming it, and
// removing the offender clears the error.
func TestValidatePlacement_Exclusion(t *testing.T) {
	f := newFixture()
	v := newTestValidator(f)

	g := NewGrid(DefaultSemesters, 6)
	require.NoError(t, g.Place("STA286H1", "2F"))
	require.NoError(t, g.Place("ECE286H1", "4S"))

	errs := v.ValidatePlacement(f.courses["STA286H1"], "2F", g)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrorExclusion, errs[0].Kind)
	assert.Equal(t, []string{"ECE286H1"}, errs[0].Conflicts)

	require.NoError(t, g.Remove("ECE286H1"))
	errs = v.ValidatePlacement(f.courses["STA286H1"], "2F", g)
	assert.Empty(t, errs)
}

// TestValidatePlacement_Session verifies a Fall-only course errors in a
// Winter semester and passes in a Fall one.
func TestValidatePlacement_Session(t *testing.T) {
	f := newFixture()
	v := newTestValidator(f)

	g := NewGrid(DefaultSemesters, 6)
	require.NoError(t, g.Place("ECE212H1", "1F"))
	require.NoError(t, g.Place("ECE221H1", "1S"))

	// ECE302H1 runs in Fall only; prerequisites satisfied by 2F/2S.
	errs := v.ValidatePlacement(f.courses["ECE302H1"], "2S", g)
	require.Len(t, errs, 1)
	assert.Equal(t, ErrorSession, errs[0].Kind)
	assert.Contains(t, errs[0].Detail, "Winter")

	errs = v.ValidatePlacement(f.courses["ECE302H1"], "3F", g)
	assert.Empty(t, errs)
}

// TestValidatePlacement_RuleOrder verifies multiple violations report
// in the fixed prerequisite, corequisite, session order.
func TestValidatePlacement_RuleOrder(t *testing.T) {
	f := newFixture()
	v := newTestValidator(f)
	g := NewGrid(DefaultSemesters, 6)

	errs := v.ValidatePlacement(f.courses["ECE302H1"], "1S", g)
	assert.Equal(t, []ErrorKind{ErrorPrerequisite, ErrorSession}, errorKinds(errs))
	require.Len(t, errs[0].Missing, 2)
}

// TestValidateAll verifies the bulk pass covers every occupied slot.
func TestValidateAll(t *testing.T) {
	f := newFixture()
	v := newTestValidator(f)

	g := NewGrid(DefaultSemesters, 6)
	require.NoError(t, g.Place("ECE212H1", "1F"))
	require.NoError(t, g.Place("ECE344H1", "1F")) // prereq same semester, coreq absent

	report := v.ValidateAll(g, f)
	require.Len(t, report, 2)
	assert.Empty(t, report["ECE212H1"])
	assert.Equal(t, []ErrorKind{ErrorPrerequisite, ErrorCorequisite}, errorKinds(report["ECE344H1"]))
}

// TestValidateAll_UnknownCode verifies a placed code missing from the
// catalog yields an empty entry instead of failing the pass.
func TestValidateAll_UnknownCode(t *testing.T) {
	f := newFixture()
	v := newTestValidator(f)

	g := NewGrid(DefaultSemesters, 6)
	require.NoError(t, g.Place("GHOST101", "1F"))

	report := v.ValidateAll(g, f)
	require.Contains(t, report, "GHOST101")
	assert.Empty(t, report["GHOST101"])
}
