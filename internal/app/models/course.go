package models

// Session indicates the term window a course may occupy.
type Session string

const (
	SessionFall   Session = "F" // Fall term only
	SessionWinter Session = "S" // Winter term only
	SessionBoth   Session = "B" // Offered in both terms
)

// Valid reports whether the session value is one of the known codes.
func (s Session) Valid() bool {
	return s == SessionFall || s == SessionWinter || s == SessionBoth
}

// DisplayName returns the human-readable session name.
func (s Session) DisplayName() string {
	switch s {
	case SessionFall:
		return "Fall"
	case SessionWinter:
		return "Winter"
	case SessionBoth:
		return "Fall or Winter"
	default:
		return string(s)
	}
}

// Course represents one catalog entry as produced by the upstream scraper.
// The requirement fields hold courseset ids (empty means no requirement).
// Courses are loaded once at startup and never mutated afterwards.
type Course struct {
	Code          string  `json:"code" example:"ECE311H1"`
	Title         string  `json:"title" example:"Introduction to Control Systems"`
	URL           string  `json:"url,omitempty"`
	Group         string  `json:"group,omitempty" example:"ECE"`
	Session       Session `json:"session" example:"F"`
	Description   string  `json:"description,omitempty"`
	Prerequisites string  `json:"prerequisites,omitempty" example:"ECE311H1_p1"`
	Corequisites  string  `json:"corequisites,omitempty"`
	Exclusions    string  `json:"exclusions,omitempty"`
}

// HasRequirements reports whether any requirement courseset is attached.
func (c *Course) HasRequirements() bool {
	return c.Prerequisites != "" || c.Corequisites != "" || c.Exclusions != ""
}
