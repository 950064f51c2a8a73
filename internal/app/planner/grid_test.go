package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseplan/internal/app/models"
)

// TestTermOf verifies term derivation from semester ids.
func TestTermOf(t *testing.T) {
	term, ok := TermOf("3F")
	require.True(t, ok)
	assert.Equal(t, models.TermFall, term)

	term, ok = TermOf("2S")
	require.True(t, ok)
	assert.Equal(t, models.TermWinter, term)

	_, ok = TermOf("2X")
	assert.False(t, ok)
}

// TestGrid_PlaceAndDuplicate verifies a code occupies at most one slot.
func TestGrid_PlaceAndDuplicate(t *testing.T) {
	g := NewGrid(DefaultSemesters, 2)

	require.NoError(t, g.Place("ECE212H1", "1F"))

	err := g.Place("ECE212H1", "2F")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCourse)

	semester, ok := g.SemesterOf("ECE212H1")
	require.True(t, ok)
	assert.Equal(t, "1F", semester)
}

// TestGrid_Capacity verifies the per-semester slot limit.
func TestGrid_Capacity(t *testing.T) {
	g := NewGrid(DefaultSemesters, 2)

	require.NoError(t, g.Place("ECE212H1", "1F"))
	require.NoError(t, g.Place("ECE221H1", "1F"))

	err := g.Place("ECE231H1", "1F")
	assert.ErrorIs(t, err, ErrSemesterFull)
}

// TestGrid_UnknownSemester verifies placement outside the ordering fails.
func TestGrid_UnknownSemester(t *testing.T) {
	g := NewGrid(DefaultSemesters, 6)
	assert.ErrorIs(t, g.Place("ECE212H1", "9F"), ErrUnknownSemester)
}

// TestGrid_RemoveAndMove verifies removal and relocation.
func TestGrid_RemoveAndMove(t *testing.T) {
	g := NewGrid(DefaultSemesters, 6)

	require.NoError(t, g.Place("ECE212H1", "1F"))
	require.NoError(t, g.Move("ECE212H1", "2S"))

	semester, ok := g.SemesterOf("ECE212H1")
	require.True(t, ok)
	assert.Equal(t, "2S", semester)

	require.NoError(t, g.Remove("ECE212H1"))
	_, ok = g.SemesterOf("ECE212H1")
	assert.False(t, ok)

	assert.ErrorIs(t, g.Remove("ECE212H1"), ErrCourseNotPlaced)
	assert.ErrorIs(t, g.Move("ECE212H1", "1F"), ErrCourseNotPlaced)
}

// TestGrid_DerivedSets verifies the strictly-before, before-or-within
// and anywhere views.
func TestGrid_DerivedSets(t *testing.T) {
	g := NewGrid(DefaultSemesters, 6)
	require.NoError(t, g.Place("ECE212H1", "1F"))
	require.NoError(t, g.Place("ECE221H1", "1S"))
	require.NoError(t, g.Place("ECE302H1", "2F"))

	before := g.CodesBefore("1S")
	assert.True(t, before.Contains("ECE212H1"))
	assert.False(t, before.Contains("ECE221H1"), "same semester is not strictly before")
	assert.False(t, before.Contains("ECE302H1"))

	upTo := g.CodesUpTo("1S")
	assert.True(t, upTo.Contains("ECE212H1"))
	assert.True(t, upTo.Contains("ECE221H1"))
	assert.False(t, upTo.Contains("ECE302H1"))

	all := g.AllCodes()
	assert.Len(t, all, 3)
}

// TestGrid_PlacedOrder verifies slot enumeration follows semester then
// slot order.
func TestGrid_PlacedOrder(t *testing.T) {
	g := NewGrid(DefaultSemesters, 6)
	require.NoError(t, g.Place("ECE302H1", "2F"))
	require.NoError(t, g.Place("ECE212H1", "1F"))
	require.NoError(t, g.Place("ECE221H1", "1F"))

	placed := g.Placed()
	require.Len(t, placed, 3)
	assert.Equal(t, PlacedCourse{Code: "ECE212H1", SemesterID: "1F"}, placed[0])
	assert.Equal(t, PlacedCourse{Code: "ECE221H1", SemesterID: "1F"}, placed[1])
	assert.Equal(t, PlacedCourse{Code: "ECE302H1", SemesterID: "2F"}, placed[2])
}
