package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/courseplan/internal/app/models/dto"
	"github.com/yigit/courseplan/internal/app/services"
	"github.com/yigit/courseplan/internal/middleware"
	"github.com/yigit/courseplan/internal/pkg/helpers"
	"github.com/yigit/courseplan/internal/pkg/validation"
)

// CatalogController handles course catalog operations
type CatalogController struct {
	catalogService *services.CatalogService
	logger         zerolog.Logger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *services.CatalogService, logger zerolog.Logger) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		logger:         logger,
	}
}

// GetCourses lists catalog courses
// @Summary List courses
// @Description Lists catalog courses, optionally filtered by group, session or a search term
// @Tags catalog
// @Produce json
// @Param group query string false "Course group prefix" example(ECE)
// @Param session query string false "Session code (F, S or B)" example(F)
// @Param q query string false "Search term matched against code and title"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(50)
// @Success 200 {object} dto.APIResponse{data=dto.CourseListResponse} "Course listing"
// @Router /courses [get]
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	filter := services.CourseFilter{
		Group:   ctx.Query("group"),
		Session: ctx.Query("session"),
		Query:   ctx.Query("q"),
	}
	page, size := helpers.ParsePaginationParams(ctx)

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.catalogService.ListCourses(filter, page, size)))
}

// GetCourseByCode returns a single catalog course
// @Summary Get course
// @Description Returns one catalog course by its code
// @Tags catalog
// @Produce json
// @Param code path string true "Course code" example(ECE345H1)
// @Success 200 {object} dto.APIResponse{data=models.Course} "Course details"
// @Failure 400 {object} dto.ErrorResponse "Invalid course code format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CatalogController) GetCourseByCode(ctx *gin.Context) {
	code, ok := c.courseCode(ctx)
	if !ok {
		return
	}

	course, err := c.catalogService.GetCourse(code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(course))
}

// GetCourseRequirements returns the resolved requirements of a course
// @Summary Get course requirements
// @Description Resolves the prerequisite, corequisite and exclusion expressions of a course
// @Tags catalog
// @Produce json
// @Param code path string true "Course code" example(ECE345H1)
// @Success 200 {object} dto.APIResponse{data=dto.CourseRequirementsResponse} "Resolved requirements"
// @Failure 400 {object} dto.ErrorResponse "Invalid course code format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{code}/requirements [get]
func (c *CatalogController) GetCourseRequirements(ctx *gin.Context) {
	code, ok := c.courseCode(ctx)
	if !ok {
		return
	}

	requirements, err := c.catalogService.GetRequirements(code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(requirements))
}

// courseCode extracts and validates the course code path parameter
func (c *CatalogController) courseCode(ctx *gin.Context) (string, bool) {
	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))
	if !validation.IsValidCourseCode(code) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course code format").
			WithField("code")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return code, true
}
