package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseplan/internal/app/models"
)

const sampleDocument = `{
  "metadata": {"total_courses": 3},
  "courses": [
    {"code": "ECE212H1", "title": "Circuit Analysis", "session": "F", "group": "ECE"},
    {"code": "ECE221H1", "title": "Electric and Magnetic Fields", "session": "S",
     "prerequisites": "ECE221H1_p1", "description": null},
    {"code": "ECE302H1", "title": "Probability and Applications", "session": "B"}
  ],
  "coursesets": {
    "ECE221H1_p1": {"courses": "ECE212H1 / ECE302H1"}
  }
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course_db.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o644))
	return path
}

// TestLoad verifies a scraper-format document loads into lookups.
func TestLoad(t *testing.T) {
	cat, err := Load(writeSample(t), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())

	course, ok := cat.Course("ECE221H1")
	require.True(t, ok)
	assert.Equal(t, "Electric and Magnetic Fields", course.Title)
	assert.Equal(t, models.SessionWinter, course.Session)
	assert.Equal(t, "ECE221H1_p1", course.Prerequisites)

	_, ok = cat.Course("ECE999H1")
	assert.False(t, ok)
	assert.True(t, cat.HasCourse("ECE212H1"))

	expr, ok := cat.CoursesetExpression("ECE221H1_p1")
	require.True(t, ok)
	assert.Equal(t, "ECE212H1 / ECE302H1", expr)

	_, ok = cat.CoursesetExpression("ECE221H1_p2")
	assert.False(t, ok)
}

// TestLoad_MissingFile verifies a readable error for a bad path.
func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

// TestNew_DuplicateCode verifies the first of two entries with the same
// code wins.
func TestNew_DuplicateCode(t *testing.T) {
	doc := &Document{
		Courses: []models.Course{
			{Code: "ECE212H1", Title: "First"},
			{Code: "ECE212H1", Title: "Second"},
		},
	}

	cat, err := New(doc, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	course, ok := cat.Course("ECE212H1")
	require.True(t, ok)
	assert.Equal(t, "First", course.Title)
}

// TestNew_Empty verifies an empty document is rejected.
func TestNew_Empty(t *testing.T) {
	_, err := New(&Document{}, zerolog.Nop())
	assert.Error(t, err)
}

// TestCourses_Sorted verifies the listing is ordered by code.
func TestCourses_Sorted(t *testing.T) {
	doc := &Document{
		Courses: []models.Course{
			{Code: "ECE302H1"},
			{Code: "ECE212H1"},
			{Code: "APS360H1"},
		},
	}

	cat, err := New(doc, zerolog.Nop())
	require.NoError(t, err)

	var codes []string
	for _, course := range cat.Courses() {
		codes = append(codes, course.Code)
	}
	assert.Equal(t, []string{"APS360H1", "ECE212H1", "ECE302H1"}, codes)
}
