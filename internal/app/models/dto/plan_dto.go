package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/planner"
)

// CreatePlanRequest represents the payload for creating a plan
type CreatePlanRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100" example:"ECE 2026 main plan"`
}

// UpdatePlanRequest represents the payload for renaming a plan
type UpdatePlanRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100" example:"ECE 2026 backup plan"`
}

// PlacementRequest represents the payload for placing a course
type PlacementRequest struct {
	CourseCode string `json:"courseCode" binding:"required" example:"ECE345H1"`
	SemesterID string `json:"semesterId" binding:"required" example:"3F"`
}

// MovePlacementRequest represents the payload for moving a placed course
type MovePlacementRequest struct {
	SemesterID string `json:"semesterId" binding:"required" example:"3S"`
}

// ValidationReport maps each placed course code to its placement errors.
// Courses that validate cleanly appear with an empty list.
type ValidationReport map[string][]planner.PlacementError

// PlanSummaryResponse represents a plan without its placements
type PlanSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" example:"ECE 2026 main plan"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PlanResponse represents a full plan with placements and validation state
type PlanResponse struct {
	Plan       *models.Plan     `json:"plan"`
	Validation ValidationReport `json:"validation"`
}

// PlanListResponse wraps the plan listing for a user
type PlanListResponse struct {
	Plans []PlanSummaryResponse `json:"plans"`
	Total int                   `json:"total" example:"3"`
}
