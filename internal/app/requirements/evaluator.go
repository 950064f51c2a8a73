package requirements

// CourseSet is a set of completed course codes.
type CourseSet map[string]struct{}

// NewCourseSet builds a set from the given codes.
func NewCourseSet(codes ...string) CourseSet {
	set := make(CourseSet, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return set
}

// Contains reports membership of a course code.
func (s CourseSet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

// Add inserts a course code into the set.
func (s CourseSet) Add(code string) {
	s[code] = struct{}{}
}

// Remove deletes a course code from the set.
func (s CourseSet) Remove(code string) {
	delete(s, code)
}

// MissingKind discriminates the variants of a missing requirement.
type MissingKind string

const (
	// MissingCourse is a single unsatisfied course leaf.
	MissingCourse MissingKind = "COURSE"
	// MissingAnyOf is a fully unsatisfied OR subtree; Options lists
	// every leaf course code under it.
	MissingAnyOf MissingKind = "ANY_OF"
)

// Missing describes one unsatisfied requirement in structured form.
type Missing struct {
	Kind    MissingKind `json:"kind"`
	Code    string      `json:"code,omitempty"`
	Options []string    `json:"options,omitempty"`
}

// Result is the outcome of evaluating an expression tree against a
// completed-course set.
type Result struct {
	Satisfied bool      `json:"satisfied"`
	Missing   []Missing `json:"missing,omitempty"`
}

// Evaluate checks a requirement tree against a set of completed course
// codes. A nil tree is vacuously satisfied. An unsatisfied AND
// concatenates its children's misses in child order, never nesting; an
// unsatisfied OR reports a single MissingAnyOf carrying all leaf codes
// of the subtree. Pure function, safe for concurrent use.
func Evaluate(node Node, completed CourseSet) Result {
	switch n := node.(type) {
	case nil:
		return Result{Satisfied: true}
	case Course:
		if completed.Contains(n.Code) {
			return Result{Satisfied: true}
		}
		return Result{Missing: []Missing{{Kind: MissingCourse, Code: n.Code}}}
	case AnyOf:
		for _, child := range n.Children {
			if Evaluate(child, completed).Satisfied {
				return Result{Satisfied: true}
			}
		}
		return Result{Missing: []Missing{{Kind: MissingAnyOf, Options: Leaves(n)}}}
	case AllOf:
		result := Result{Satisfied: true}
		for _, child := range n.Children {
			childResult := Evaluate(child, completed)
			if !childResult.Satisfied {
				result.Satisfied = false
				result.Missing = append(result.Missing, childResult.Missing...)
			}
		}
		return result
	default:
		return Result{Satisfied: true}
	}
}
