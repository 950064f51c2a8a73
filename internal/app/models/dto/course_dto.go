package dto

import (
	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/requirements"
)

// CourseListResponse wraps the filtered course listing
type CourseListResponse struct {
	Courses    []models.Course `json:"courses"`
	Pagination PaginationInfo  `json:"pagination"`
}

// RequirementView is one resolved requirement rendered for display
type RequirementView struct {
	CoursesetID string `json:"coursesetId" example:"ECE345H1_p1"`
	Expression  string `json:"expression" example:"ECE244H1 and (ECE286H1 or STA286H1)"`
}

// CourseRequirementsResponse carries the resolved requirement trees
// for a single course, together with any resolution diagnostics.
type CourseRequirementsResponse struct {
	Code          string                    `json:"code" example:"ECE345H1"`
	Title         string                    `json:"title" example:"Algorithms and Data Structures"`
	Prerequisites *RequirementView          `json:"prerequisites,omitempty"`
	Corequisites  *RequirementView          `json:"corequisites,omitempty"`
	Exclusions    *RequirementView          `json:"exclusions,omitempty"`
	Diagnostics   []requirements.Diagnostic `json:"diagnostics,omitempty"`
}
