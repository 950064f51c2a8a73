package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseplan/internal/app/catalog"
	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/requirements"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

func newTestCatalogService(t *testing.T) *CatalogService {
	t.Helper()

	doc := &catalog.Document{
		Courses: []models.Course{
			{Code: "ECE212H1", Title: "Circuit Analysis", Group: "ECE", Session: models.SessionFall},
			{Code: "ECE221H1", Title: "Electric and Magnetic Fields", Group: "ECE", Session: models.SessionWinter, Prerequisites: "ECE221H1_p1"},
			{Code: "ECE286H1", Title: "Probability and Statistics", Group: "ECE", Session: models.SessionWinter, Exclusions: "ECE286H1_e1"},
			{Code: "STA286H1", Title: "Probability for Engineers", Group: "STA", Session: models.SessionWinter},
			{Code: "ECE302H1", Title: "Probability and Applications", Group: "ECE", Session: models.SessionFall, Prerequisites: "ECE302H1_p1"},
		},
		Coursesets: map[string]catalog.CoursesetEntry{
			"ECE221H1_p1": {Courses: "ECE212H1"},
			"ECE286H1_e1": {Courses: "STA286H1 / ECE302H1"},
			"ECE302H1_p1": {Courses: "ECE212H1 & ECE221H1"},
		},
	}

	cat, err := catalog.New(doc, zerolog.Nop())
	require.NoError(t, err)

	resolver := requirements.NewResolver(cat, zerolog.Nop())
	return NewCatalogService(cat, resolver, zerolog.Nop())
}

// TestListCourses_NoFilter returns every course in code order.
func TestListCourses_NoFilter(t *testing.T) {
	svc := newTestCatalogService(t)

	resp := svc.ListCourses(CourseFilter{}, 1, 50)

	require.Len(t, resp.Courses, 5)
	assert.Equal(t, "ECE212H1", resp.Courses[0].Code)
	assert.Equal(t, "STA286H1", resp.Courses[4].Code)
	assert.Equal(t, int64(5), resp.Pagination.TotalItems)
}

// TestListCourses_GroupFilter keeps only the requested group.
func TestListCourses_GroupFilter(t *testing.T) {
	svc := newTestCatalogService(t)

	resp := svc.ListCourses(CourseFilter{Group: "STA"}, 1, 50)

	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "STA286H1", resp.Courses[0].Code)
}

// TestListCourses_SessionFilter keeps only courses offered in the term.
func TestListCourses_SessionFilter(t *testing.T) {
	svc := newTestCatalogService(t)

	resp := svc.ListCourses(CourseFilter{Session: "F"}, 1, 50)

	require.Len(t, resp.Courses, 2)
	assert.Equal(t, "ECE212H1", resp.Courses[0].Code)
	assert.Equal(t, "ECE302H1", resp.Courses[1].Code)
}

// TestListCourses_QueryMatchesTitle matches the search term against titles.
func TestListCourses_QueryMatchesTitle(t *testing.T) {
	svc := newTestCatalogService(t)

	resp := svc.ListCourses(CourseFilter{Query: "probability"}, 1, 50)

	require.Len(t, resp.Courses, 3)
}

// TestListCourses_Pagination slices the listing into pages and reports totals.
func TestListCourses_Pagination(t *testing.T) {
	svc := newTestCatalogService(t)

	first := svc.ListCourses(CourseFilter{}, 1, 2)
	require.Len(t, first.Courses, 2)
	assert.Equal(t, 3, first.Pagination.TotalPages)
	assert.Equal(t, int64(5), first.Pagination.TotalItems)

	last := svc.ListCourses(CourseFilter{}, 3, 2)
	require.Len(t, last.Courses, 1)
	assert.Equal(t, "STA286H1", last.Courses[0].Code)
}

// TestGetCourse_Unknown reports a not found error for codes outside the catalog.
func TestGetCourse_Unknown(t *testing.T) {
	svc := newTestCatalogService(t)

	_, err := svc.GetCourse("ZZZ999H1")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

// TestGetRequirements_RendersTrees renders each attached requirement tree.
func TestGetRequirements_RendersTrees(t *testing.T) {
	svc := newTestCatalogService(t)

	resp, err := svc.GetRequirements("ECE302H1")
	require.NoError(t, err)

	require.NotNil(t, resp.Prerequisites)
	assert.Equal(t, "ECE302H1_p1", resp.Prerequisites.CoursesetID)
	assert.Equal(t, "ECE212H1 and ECE221H1", resp.Prerequisites.Expression)
	assert.Nil(t, resp.Corequisites)
	assert.Empty(t, resp.Diagnostics)
}

// TestGetRequirements_NoRequirements yields no views for unconstrained courses.
func TestGetRequirements_NoRequirements(t *testing.T) {
	svc := newTestCatalogService(t)

	resp, err := svc.GetRequirements("ECE212H1")
	require.NoError(t, err)

	assert.Nil(t, resp.Prerequisites)
	assert.Nil(t, resp.Corequisites)
	assert.Nil(t, resp.Exclusions)
}
