package models

// Term represents the term of one semester in the planning grid.
type Term string

// Term constants
const (
	TermFall   Term = "FALL"
	TermWinter Term = "WINTER"
)

// Matches reports whether a course session is legal in this term.
// A session of "Both" matches either term.
func (t Term) Matches(s Session) bool {
	switch s {
	case SessionBoth:
		return true
	case SessionFall:
		return t == TermFall
	case SessionWinter:
		return t == TermWinter
	default:
		return false
	}
}
