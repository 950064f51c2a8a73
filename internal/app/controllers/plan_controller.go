package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/courseplan/internal/app/models/dto"
	"github.com/yigit/courseplan/internal/app/services"
	"github.com/yigit/courseplan/internal/middleware"
	"github.com/yigit/courseplan/internal/pkg/validation"
)

// PlanController handles semester plan operations
type PlanController struct {
	planService *services.PlanService
	logger      zerolog.Logger
}

// NewPlanController creates a new PlanController
func NewPlanController(planService *services.PlanService, logger zerolog.Logger) *PlanController {
	return &PlanController{
		planService: planService,
		logger:      logger,
	}
}

// CreatePlan creates a new plan
// @Summary Create plan
// @Description Creates an empty semester plan for the authenticated user
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlanRequest true "Plan details"
// @Success 201 {object} dto.APIResponse{data=dto.PlanResponse} "Plan created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /plans [post]
func (c *PlanController) CreatePlan(ctx *gin.Context) {
	var req dto.CreatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	plan, err := c.planService.CreatePlan(ctx.Request.Context(), ctx.GetInt64("userID"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(plan))
}

// GetPlans lists the authenticated user's plans
// @Summary List plans
// @Description Lists all plans owned by the authenticated user
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PlanListResponse} "Plan listing"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /plans [get]
func (c *PlanController) GetPlans(ctx *gin.Context) {
	plans, err := c.planService.ListPlans(ctx.Request.Context(), ctx.GetInt64("userID"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plans))
}

// GetPlanByID returns a plan with its validation state
// @Summary Get plan
// @Description Returns a plan with its placements and current validation state
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.PlanResponse} "Plan details"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Plan belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{id} [get]
func (c *PlanController) GetPlanByID(ctx *gin.Context) {
	planID, ok := c.planID(ctx)
	if !ok {
		return
	}

	plan, err := c.planService.GetPlan(ctx.Request.Context(), ctx.GetInt64("userID"), planID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// UpdatePlan renames a plan
// @Summary Rename plan
// @Description Changes the name of a plan
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID" format(uuid)
// @Param request body dto.UpdatePlanRequest true "New plan name"
// @Success 200 {object} dto.APIResponse{data=dto.PlanResponse} "Plan updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{id} [put]
func (c *PlanController) UpdatePlan(ctx *gin.Context) {
	planID, ok := c.planID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	plan, err := c.planService.RenamePlan(ctx.Request.Context(), ctx.GetInt64("userID"), planID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// DeletePlan removes a plan
// @Summary Delete plan
// @Description Deletes a plan and all its placements
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Plan deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{id} [delete]
func (c *PlanController) DeletePlan(ctx *gin.Context) {
	planID, ok := c.planID(ctx)
	if !ok {
		return
	}

	if err := c.planService.DeletePlan(ctx.Request.Context(), ctx.GetInt64("userID"), planID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.MessageResponse{Message: "Plan deleted"}))
}

// PlaceCourse places a course into a semester
// @Summary Place course
// @Description Places a catalog course into a semester of the plan and revalidates the plan
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID" format(uuid)
// @Param request body dto.PlacementRequest true "Placement details"
// @Success 200 {object} dto.APIResponse{data=dto.PlanResponse} "Course placed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown semester"
// @Failure 404 {object} dto.ErrorResponse "Plan or course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already placed or semester full"
// @Router /plans/{id}/placements [post]
func (c *PlanController) PlaceCourse(ctx *gin.Context) {
	planID, ok := c.planID(ctx)
	if !ok {
		return
	}

	var req dto.PlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	req.CourseCode = strings.ToUpper(strings.TrimSpace(req.CourseCode))
	if !validation.IsValidCourseCode(req.CourseCode) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course code format").
			WithField("courseCode")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	if !validation.IsValidSemesterID(req.SemesterID) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester id format").
			WithField("semesterId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	plan, err := c.planService.PlaceCourse(ctx.Request.Context(), ctx.GetInt64("userID"), planID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// MoveCourse moves a placed course to another semester
// @Summary Move course
// @Description Moves a placed course to another semester and revalidates the plan
// @Tags plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID" format(uuid)
// @Param code path string true "Course code" example(ECE345H1)
// @Param request body dto.MovePlacementRequest true "Target semester"
// @Success 200 {object} dto.APIResponse{data=dto.PlanResponse} "Course moved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown semester"
// @Failure 404 {object} dto.ErrorResponse "Plan or placement not found"
// @Failure 409 {object} dto.ErrorResponse "Semester full"
// @Router /plans/{id}/placements/{code} [put]
func (c *PlanController) MoveCourse(ctx *gin.Context) {
	planID, ok := c.planID(ctx)
	if !ok {
		return
	}

	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))
	var req dto.MovePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}
	if !validation.IsValidSemesterID(req.SemesterID) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid semester id format").
			WithField("semesterId")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	plan, err := c.planService.MoveCourse(ctx.Request.Context(), ctx.GetInt64("userID"), planID, code, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// RemoveCourse removes a placed course from the plan
// @Summary Remove course
// @Description Removes a placed course from the plan and revalidates the plan
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID" format(uuid)
// @Param code path string true "Course code" example(ECE345H1)
// @Success 200 {object} dto.APIResponse{data=dto.PlanResponse} "Course removed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Plan or placement not found"
// @Router /plans/{id}/placements/{code} [delete]
func (c *PlanController) RemoveCourse(ctx *gin.Context) {
	planID, ok := c.planID(ctx)
	if !ok {
		return
	}

	code := strings.ToUpper(strings.TrimSpace(ctx.Param("code")))

	plan, err := c.planService.RemoveCourse(ctx.Request.Context(), ctx.GetInt64("userID"), planID, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(plan))
}

// ValidatePlan returns the validation report for a plan
// @Summary Validate plan
// @Description Returns the placement validation report for a plan
// @Tags plans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID" format(uuid)
// @Success 200 {object} dto.APIResponse{data=dto.ValidationReport} "Validation report"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Plan not found"
// @Router /plans/{id}/validation [get]
func (c *PlanController) ValidatePlan(ctx *gin.Context) {
	planID, ok := c.planID(ctx)
	if !ok {
		return
	}

	report, err := c.planService.Validate(ctx.Request.Context(), ctx.GetInt64("userID"), planID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// planID extracts and validates the plan ID path parameter
func (c *PlanController) planID(ctx *gin.Context) (uuid.UUID, bool) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid plan id").
			WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return planID, true
}
