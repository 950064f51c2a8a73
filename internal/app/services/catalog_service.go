package services

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/courseplan/internal/app/catalog"
	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/models/dto"
	"github.com/yigit/courseplan/internal/app/requirements"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
	"github.com/yigit/courseplan/internal/pkg/helpers"
)

// CourseFilter restricts a course listing. Zero values match everything.
type CourseFilter struct {
	Group   string
	Session string
	Query   string
}

// CatalogService exposes the loaded course catalog and resolved requirements
type CatalogService struct {
	catalog  *catalog.Catalog
	resolver *requirements.Resolver
	logger   zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(cat *catalog.Catalog, resolver *requirements.Resolver, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		catalog:  cat,
		resolver: resolver,
		logger:   logger.With().Str("component", "catalog_service").Logger(),
	}
}

// ListCourses returns the page of courses matching the filter, in code order
func (s *CatalogService) ListCourses(filter CourseFilter, page, size int) *dto.CourseListResponse {
	var matched []models.Course
	query := strings.ToLower(filter.Query)

	for _, course := range s.catalog.Courses() {
		if filter.Group != "" && !strings.EqualFold(course.Group, filter.Group) {
			continue
		}
		if filter.Session != "" && !strings.EqualFold(string(course.Session), filter.Session) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(course.Code), query) &&
			!strings.Contains(strings.ToLower(course.Title), query) {
			continue
		}
		matched = append(matched, *course)
	}

	start, end := helpers.CalculateSliceIndices(page, size, len(matched))

	return &dto.CourseListResponse{
		Courses:    matched[start:end],
		Pagination: helpers.NewPaginationInfo(int64(len(matched)), page, size),
	}
}

// GetCourse retrieves a single course by code
func (s *CatalogService) GetCourse(code string) (*models.Course, error) {
	course, ok := s.catalog.Course(code)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// GetRequirements resolves and renders the requirement trees of a course
func (s *CatalogService) GetRequirements(code string) (*dto.CourseRequirementsResponse, error) {
	course, ok := s.catalog.Course(code)
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}

	resp := &dto.CourseRequirementsResponse{
		Code:  course.Code,
		Title: course.Title,
	}

	resp.Prerequisites = s.requirementView(course.Prerequisites, &resp.Diagnostics)
	resp.Corequisites = s.requirementView(course.Corequisites, &resp.Diagnostics)
	resp.Exclusions = s.requirementView(course.Exclusions, &resp.Diagnostics)

	return resp, nil
}

// requirementView resolves one courseset id into a rendered expression.
// A nil tree (no requirement, or an unresolvable courseset) yields no view.
func (s *CatalogService) requirementView(coursesetID string, diagnostics *[]requirements.Diagnostic) *dto.RequirementView {
	if coursesetID == "" {
		return nil
	}

	node, diags := s.resolver.Resolve(coursesetID)
	*diagnostics = append(*diagnostics, diags...)
	if node == nil {
		return nil
	}

	return &dto.RequirementView{
		CoursesetID: coursesetID,
		Expression:  requirements.Render(node),
	}
}
