package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/yigit/courseplan/internal/app/models"
)

// CoursesetEntry is the raw requirement expression attached to one
// courseset id in the catalog document.
type CoursesetEntry struct {
	Courses string `json:"courses"`
}

// Document mirrors the course_db.json layout emitted by the scraper.
type Document struct {
	Metadata   map[string]interface{}    `json:"metadata"`
	Courses    []models.Course           `json:"courses"`
	Coursesets map[string]CoursesetEntry `json:"coursesets"`
}

// Catalog is the immutable in-memory course database. It is built once
// at startup and read-only thereafter, so it is safe for concurrent
// use without locking.
type Catalog struct {
	courses    map[string]*models.Course
	ordered    []*models.Course
	coursesets map[string]string
}

// Load reads and parses a course_db.json file.
func Load(path string, logger zerolog.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return New(&doc, logger)
}

// New builds a catalog from a parsed document. Duplicate course codes
// keep the first occurrence; the rest are logged and dropped.
func New(doc *Document, logger zerolog.Logger) (*Catalog, error) {
	if len(doc.Courses) == 0 {
		return nil, fmt.Errorf("catalog document contains no courses")
	}

	c := &Catalog{
		courses:    make(map[string]*models.Course, len(doc.Courses)),
		coursesets: make(map[string]string, len(doc.Coursesets)),
	}

	for i := range doc.Courses {
		course := &doc.Courses[i]
		if course.Code == "" {
			logger.Warn().Int("index", i).Msg("Skipping catalog entry without a course code")
			continue
		}
		if _, dup := c.courses[course.Code]; dup {
			logger.Warn().Str("code", course.Code).Msg("Duplicate course code in catalog, keeping first entry")
			continue
		}
		c.courses[course.Code] = course
		c.ordered = append(c.ordered, course)
	}

	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].Code < c.ordered[j].Code })

	for id, entry := range doc.Coursesets {
		c.coursesets[id] = entry.Courses
	}

	logger.Info().
		Int("courses", len(c.courses)).
		Int("coursesets", len(c.coursesets)).
		Msg("Course catalog loaded")

	return c, nil
}

// Course returns the catalog record for a course code.
func (c *Catalog) Course(code string) (*models.Course, bool) {
	course, ok := c.courses[code]
	return course, ok
}

// HasCourse reports whether a course code exists in the catalog.
func (c *Catalog) HasCourse(code string) bool {
	_, ok := c.courses[code]
	return ok
}

// CoursesetExpression returns the raw expression string for a
// courseset id.
func (c *Catalog) CoursesetExpression(id string) (string, bool) {
	expr, ok := c.coursesets[id]
	return expr, ok
}

// Courses lists every course sorted by code.
func (c *Catalog) Courses() []*models.Course {
	return c.ordered
}

// CoursesetIDs lists every courseset id sorted lexically.
func (c *Catalog) CoursesetIDs() []string {
	ids := make([]string, 0, len(c.coursesets))
	for id := range c.coursesets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of courses.
func (c *Catalog) Len() int {
	return len(c.courses)
}
