package planner

import (
	"fmt"
	"strings"

	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/requirements"
)

// ErrorKind classifies a placement rule violation.
type ErrorKind string

const (
	ErrorPrerequisite ErrorKind = "PREREQUISITE"
	ErrorCorequisite  ErrorKind = "COREQUISITE"
	ErrorExclusion    ErrorKind = "EXCLUSION"
	ErrorSession      ErrorKind = "SESSION"
)

// PlacementError describes one failed placement rule with enough
// structure for a caller to render a message without re-deriving it.
// Errors are ephemeral: recomputed on every validation pass.
type PlacementError struct {
	Kind      ErrorKind              `json:"kind"`
	Missing   []requirements.Missing `json:"missing,omitempty"`
	Conflicts []string               `json:"conflicts,omitempty"`
	Detail    string                 `json:"detail"`
}

// CourseLookup resolves placed course codes to catalog records.
type CourseLookup interface {
	Course(code string) (*models.Course, bool)
}

// Validator checks course placements against prerequisite, corequisite,
// exclusion and session rules. It is stateless beyond the resolver's
// tree cache; every call is a pure query over the grid snapshot.
type Validator struct {
	resolver *requirements.Resolver
}

// NewValidator creates a validator backed by the given resolver.
func NewValidator(resolver *requirements.Resolver) *Validator {
	return &Validator{resolver: resolver}
}

// ValidatePlacement checks one course in one semester against the grid
// snapshot and returns every violated rule in a fixed order:
// prerequisite, corequisite, exclusion, session.
func (v *Validator) ValidatePlacement(course *models.Course, semesterID string, grid GridView) []PlacementError {
	var errs []PlacementError

	prereq, _ := v.resolver.Resolve(course.Prerequisites)
	if result := requirements.Evaluate(prereq, grid.CodesBefore(semesterID)); !result.Satisfied {
		errs = append(errs, PlacementError{
			Kind:    ErrorPrerequisite,
			Missing: result.Missing,
			Detail:  "missing prerequisite: " + describeMissing(result.Missing),
		})
	}

	coreq, _ := v.resolver.Resolve(course.Corequisites)
	if result := requirements.Evaluate(coreq, grid.CodesUpTo(semesterID)); !result.Satisfied {
		errs = append(errs, PlacementError{
			Kind:    ErrorCorequisite,
			Missing: result.Missing,
			Detail:  "missing corequisite: " + describeMissing(result.Missing),
		})
	}

	// The exclusion tree reuses the evaluator with inverted meaning: a
	// satisfied tree means a conflicting course is present in the plan.
	exclusion, _ := v.resolver.Resolve(course.Exclusions)
	if exclusion != nil {
		others := grid.AllCodes()
		others.Remove(course.Code)
		if requirements.Evaluate(exclusion, others).Satisfied {
			conflicts := intersectLeaves(exclusion, others)
			errs = append(errs, PlacementError{
				Kind:      ErrorExclusion,
				Conflicts: conflicts,
				Detail:    "excluded by courses in the plan: " + strings.Join(conflicts, ", "),
			})
		}
	}

	if term, ok := TermOf(semesterID); ok && !term.Matches(course.Session) {
		errs = append(errs, PlacementError{
			Kind: ErrorSession,
			Detail: fmt.Sprintf("%s is offered in %s but %s is a %s semester",
				course.Code, course.Session.DisplayName(), semesterID, termName(term)),
		})
	}

	return errs
}

// ValidateAll revalidates every occupied slot of the grid from scratch.
// Full recomputation is cheap at this scale and avoids stale results.
func (v *Validator) ValidateAll(grid *Grid, catalog CourseLookup) map[string][]PlacementError {
	report := make(map[string][]PlacementError)
	for _, placed := range grid.Placed() {
		course, ok := catalog.Course(placed.Code)
		if !ok {
			// A placed code the catalog no longer knows cannot be
			// validated; leave an empty entry rather than failing.
			report[placed.Code] = nil
			continue
		}
		report[placed.Code] = v.ValidatePlacement(course, placed.SemesterID, grid)
	}
	return report
}

// intersectLeaves returns the exclusion subtree's leaf codes that are
// actually present in the placed set, de-duplicated, in leaf order.
func intersectLeaves(node requirements.Node, placed requirements.CourseSet) []string {
	seen := make(map[string]struct{})
	var conflicts []string
	for _, code := range requirements.Leaves(node) {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		if placed.Contains(code) {
			conflicts = append(conflicts, code)
		}
	}
	return conflicts
}

// describeMissing renders a missing list as a readable clause.
func describeMissing(missing []requirements.Missing) string {
	parts := make([]string, 0, len(missing))
	for _, m := range missing {
		switch m.Kind {
		case requirements.MissingCourse:
			parts = append(parts, m.Code)
		case requirements.MissingAnyOf:
			parts = append(parts, "("+strings.Join(dedupe(m.Options), " or ")+")")
		}
	}
	return strings.Join(parts, " and ")
}

func dedupe(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func termName(t models.Term) string {
	if t == models.TermFall {
		return "Fall"
	}
	return "Winter"
}
