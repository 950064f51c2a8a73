package requirements

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Expression token separators as emitted by the upstream scraper,
// including the surrounding spaces. A single expression level never
// mixes both.
const (
	andDelimiter = " & "
	orDelimiter  = " / "
)

// coursesetIDPattern matches courseset references embedded in
// expression strings, e.g. "ECE435H1_p6": 2-4 uppercase letters,
// 3 digits, H or Y, 1 digit, underscore, p/c/e, courseset counter.
var coursesetIDPattern = regexp.MustCompile(`^[A-Z]{2,4}[0-9]{3}[HY][0-9]_[pce][0-9]+$`)

// IsCoursesetID reports whether a token is a courseset reference
// rather than a plain course code.
func IsCoursesetID(token string) bool {
	return coursesetIDPattern.MatchString(token)
}

// DiagnosticKind classifies parser anomalies.
type DiagnosticKind string

const (
	// DiagUnresolvableCourseset flags a referenced id missing from the catalog.
	DiagUnresolvableCourseset DiagnosticKind = "UNRESOLVABLE_COURSESET"
	// DiagCyclicCourseset flags an id that transitively references itself.
	DiagCyclicCourseset DiagnosticKind = "CYCLIC_COURSESET"
	// DiagMalformedExpression flags an expression or token the parser
	// cannot interpret cleanly.
	DiagMalformedExpression DiagnosticKind = "MALFORMED_EXPRESSION"
)

// Diagnostic is a data-integrity finding surfaced alongside a parse
// result. Diagnostics never fail a resolution: the tree is always a
// best-effort result and validation of the rest of the plan proceeds.
type Diagnostic struct {
	Kind        DiagnosticKind `json:"kind"`
	CoursesetID string         `json:"coursesetId"`
	Token       string         `json:"token,omitempty"`
	Message     string         `json:"message"`
}

// CatalogSource is the slice of the course catalog the resolver reads.
type CatalogSource interface {
	// CoursesetExpression returns the raw expression string for a
	// courseset id, or false if the id is unknown.
	CoursesetExpression(id string) (string, bool)
	// HasCourse reports whether a course code exists in the catalog.
	HasCourse(code string) bool
}

type cacheEntry struct {
	node  Node
	diags []Diagnostic
}

// Resolver turns courseset ids into cached, immutable expression trees.
// The cache is owned by the resolver, populated lazily and only ever
// grows; catalog data is immutable for the process lifetime so entries
// are never invalidated. Safe for concurrent use.
type Resolver struct {
	catalog CatalogSource
	logger  zerolog.Logger

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// NewResolver creates a resolver over the given catalog.
func NewResolver(catalog CatalogSource, logger zerolog.Logger) *Resolver {
	return &Resolver{
		catalog: catalog,
		logger:  logger,
		cache:   make(map[string]cacheEntry),
	}
}

// Resolve expands a courseset id into its expression tree. An empty or
// unknown id yields a nil tree, meaning "no requirement"; an unknown id
// additionally yields an UnresolvableCourseset diagnostic so the data
// bug is not silently swallowed. Repeated calls for the same id return
// the identical cached tree.
func (r *Resolver) Resolve(id string) (Node, []Diagnostic) {
	if id == "" {
		return nil, nil
	}

	r.mu.RLock()
	entry, ok := r.cache[id]
	r.mu.RUnlock()
	if ok {
		return entry.node, entry.diags
	}

	var diags []Diagnostic
	node := r.expand(id, map[string]struct{}{}, &diags)

	for _, d := range diags {
		r.logger.Warn().
			Str("coursesetId", d.CoursesetID).
			Str("kind", string(d.Kind)).
			Str("token", d.Token).
			Msg(d.Message)
	}

	r.mu.Lock()
	// Another goroutine may have raced us here; keep the first entry so
	// the cached tree identity stays stable.
	if existing, ok := r.cache[id]; ok {
		r.mu.Unlock()
		return existing.node, existing.diags
	}
	r.cache[id] = cacheEntry{node: node, diags: diags}
	r.mu.Unlock()

	return node, diags
}

// expand resolves one courseset id with cycle protection. The expanding
// set holds every id currently on the recursion stack; hitting one of
// those again aborts that branch with a CyclicCourseset diagnostic.
func (r *Resolver) expand(id string, expanding map[string]struct{}, diags *[]Diagnostic) Node {
	if _, active := expanding[id]; active {
		*diags = append(*diags, Diagnostic{
			Kind:        DiagCyclicCourseset,
			CoursesetID: id,
			Message:     fmt.Sprintf("courseset %s transitively references itself", id),
		})
		return nil
	}

	// Completed entries are safe to share across expansions.
	r.mu.RLock()
	entry, ok := r.cache[id]
	r.mu.RUnlock()
	if ok {
		*diags = append(*diags, entry.diags...)
		return entry.node
	}

	expr, ok := r.catalog.CoursesetExpression(id)
	if !ok {
		*diags = append(*diags, Diagnostic{
			Kind:        DiagUnresolvableCourseset,
			CoursesetID: id,
			Message:     fmt.Sprintf("courseset %s is not in the catalog, treating as no requirement", id),
		})
		return nil
	}

	expanding[id] = struct{}{}
	defer delete(expanding, id)

	return r.parse(id, expr, expanding, diags)
}

// parse tokenizes one expression level and builds its node. The source
// format guarantees a single operator kind per level; both delimiters
// appearing together is malformed data.
func (r *Resolver) parse(ownerID, expr string, expanding map[string]struct{}, diags *[]Diagnostic) Node {
	hasAnd := strings.Contains(expr, andDelimiter)
	hasOr := strings.Contains(expr, orDelimiter)

	if hasAnd && hasOr {
		*diags = append(*diags, Diagnostic{
			Kind:        DiagMalformedExpression,
			CoursesetID: ownerID,
			Message:     fmt.Sprintf("courseset %s mixes '&' and '/' at one expression level", ownerID),
		})
		return nil
	}

	var tokens []string
	switch {
	case hasAnd:
		tokens = strings.Split(expr, andDelimiter)
	case hasOr:
		tokens = strings.Split(expr, orDelimiter)
	default:
		tokens = []string{expr}
	}

	children := make([]Node, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if IsCoursesetID(token) {
			if child := r.expand(token, expanding, diags); child != nil {
				children = append(children, child)
			}
			continue
		}

		if !r.catalog.HasCourse(token) {
			*diags = append(*diags, Diagnostic{
				Kind:        DiagMalformedExpression,
				CoursesetID: ownerID,
				Token:       token,
				Message:     fmt.Sprintf("courseset %s references unknown course code %q", ownerID, token),
			})
		}
		// Keep the leaf either way so evaluation stays best-effort.
		children = append(children, Course{Code: token})
	}

	switch {
	case len(children) == 0:
		return nil
	case hasAnd:
		return AllOf{Children: children}
	case hasOr:
		return AnyOf{Children: children}
	default:
		return children[0]
	}
}
