package planner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/requirements"
)

// Grid mutation errors
var (
	ErrUnknownSemester = errors.New("unknown semester")
	ErrDuplicateCourse = errors.New("course is already placed in the plan")
	ErrSemesterFull    = errors.New("semester has no free slot")
	ErrCourseNotPlaced = errors.New("course is not placed in the plan")
)

// DefaultSemesters is the standard four-year Fall/Winter sequence.
var DefaultSemesters = []string{"1F", "1S", "2F", "2S", "3F", "3S", "4F", "4S"}

// DefaultSlotsPerSemester caps how many courses fit into one semester.
const DefaultSlotsPerSemester = 6

// TermOf derives a semester's term from its id: a trailing 'F' is a
// Fall semester, a trailing 'S' a Winter one.
func TermOf(semesterID string) (models.Term, bool) {
	switch {
	case strings.HasSuffix(semesterID, "F"):
		return models.TermFall, true
	case strings.HasSuffix(semesterID, "S"):
		return models.TermWinter, true
	default:
		return "", false
	}
}

// PlacedCourse is one occupied slot of the grid.
type PlacedCourse struct {
	Code       string
	SemesterID string
}

// GridView exposes the three derived course sets the placement
// validator reads. Implementations must not be mutated mid-call.
type GridView interface {
	// CodesBefore returns codes placed strictly before the semester.
	CodesBefore(semesterID string) requirements.CourseSet
	// CodesUpTo returns codes placed before or within the semester.
	CodesUpTo(semesterID string) requirements.CourseSet
	// AllCodes returns every code placed anywhere in the plan.
	AllCodes() requirements.CourseSet
}

// Grid is an in-memory semester-slotted snapshot of one plan, keyed by
// a linear semester ordering. A course code occupies at most one slot.
type Grid struct {
	order    []string
	index    map[string]int
	slots    map[string][]string
	location map[string]string // course code -> semester id
	capacity int
}

// NewGrid creates an empty grid over the given semester ordering.
func NewGrid(order []string, slotsPerSemester int) *Grid {
	if len(order) == 0 {
		order = DefaultSemesters
	}
	if slotsPerSemester <= 0 {
		slotsPerSemester = DefaultSlotsPerSemester
	}
	g := &Grid{
		order:    append([]string(nil), order...),
		index:    make(map[string]int, len(order)),
		slots:    make(map[string][]string, len(order)),
		location: make(map[string]string),
		capacity: slotsPerSemester,
	}
	for i, id := range g.order {
		g.index[id] = i
	}
	return g
}

// SemesterOrder returns the semester ids, earliest first.
func (g *Grid) SemesterOrder() []string {
	return append([]string(nil), g.order...)
}

// HasSemester reports whether the semester id belongs to the grid.
func (g *Grid) HasSemester(semesterID string) bool {
	_, ok := g.index[semesterID]
	return ok
}

// Place puts a course into the first free slot of a semester.
func (g *Grid) Place(code, semesterID string) error {
	if !g.HasSemester(semesterID) {
		return fmt.Errorf("%w: %s", ErrUnknownSemester, semesterID)
	}
	if _, placed := g.location[code]; placed {
		return fmt.Errorf("%w: %s", ErrDuplicateCourse, code)
	}
	if len(g.slots[semesterID]) >= g.capacity {
		return fmt.Errorf("%w: %s", ErrSemesterFull, semesterID)
	}
	g.slots[semesterID] = append(g.slots[semesterID], code)
	g.location[code] = semesterID
	return nil
}

// Remove takes a course out of the grid.
func (g *Grid) Remove(code string) error {
	semesterID, placed := g.location[code]
	if !placed {
		return fmt.Errorf("%w: %s", ErrCourseNotPlaced, code)
	}
	slots := g.slots[semesterID]
	for i, c := range slots {
		if c == code {
			g.slots[semesterID] = append(slots[:i], slots[i+1:]...)
			break
		}
	}
	delete(g.location, code)
	return nil
}

// Move relocates a placed course to another semester.
func (g *Grid) Move(code, toSemesterID string) error {
	if !g.HasSemester(toSemesterID) {
		return fmt.Errorf("%w: %s", ErrUnknownSemester, toSemesterID)
	}
	if _, placed := g.location[code]; !placed {
		return fmt.Errorf("%w: %s", ErrCourseNotPlaced, code)
	}
	if len(g.slots[toSemesterID]) >= g.capacity {
		return fmt.Errorf("%w: %s", ErrSemesterFull, toSemesterID)
	}
	if err := g.Remove(code); err != nil {
		return err
	}
	return g.Place(code, toSemesterID)
}

// SemesterOf returns where a course is placed.
func (g *Grid) SemesterOf(code string) (string, bool) {
	semesterID, ok := g.location[code]
	return semesterID, ok
}

// Placed lists every occupied slot in semester order, then slot order.
func (g *Grid) Placed() []PlacedCourse {
	var placed []PlacedCourse
	for _, semesterID := range g.order {
		for _, code := range g.slots[semesterID] {
			placed = append(placed, PlacedCourse{Code: code, SemesterID: semesterID})
		}
	}
	return placed
}

// CodesBefore returns codes placed strictly before the semester.
func (g *Grid) CodesBefore(semesterID string) requirements.CourseSet {
	return g.collect(func(pos, target int) bool { return pos < target }, semesterID)
}

// CodesUpTo returns codes placed before or within the semester.
func (g *Grid) CodesUpTo(semesterID string) requirements.CourseSet {
	return g.collect(func(pos, target int) bool { return pos <= target }, semesterID)
}

// AllCodes returns every placed code regardless of semester.
func (g *Grid) AllCodes() requirements.CourseSet {
	set := make(requirements.CourseSet, len(g.location))
	for code := range g.location {
		set.Add(code)
	}
	return set
}

func (g *Grid) collect(include func(pos, target int) bool, semesterID string) requirements.CourseSet {
	target, ok := g.index[semesterID]
	if !ok {
		return requirements.NewCourseSet()
	}
	set := make(requirements.CourseSet)
	for pos, id := range g.order {
		if !include(pos, target) {
			continue
		}
		for _, code := range g.slots[id] {
			set.Add(code)
		}
	}
	return set
}
