package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan is one saved multi-semester course plan owned by a user.
type Plan struct {
	ID         uuid.UUID   `json:"id" db:"id"`
	UserID     int64       `json:"userId" db:"user_id"`
	Name       string      `json:"name" db:"name" example:"ECE third year"`
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"`
	Placements []Placement `json:"placements,omitempty"`
}

// Placement puts one course into one slot of one semester.
// A course code appears at most once per plan.
type Placement struct {
	ID         int64     `json:"id" db:"id"`
	PlanID     uuid.UUID `json:"planId" db:"plan_id"`
	CourseCode string    `json:"courseCode" db:"course_code" example:"ECE311H1"`
	SemesterID string    `json:"semesterId" db:"semester_id" example:"3F"`
	Slot       int       `json:"slot" db:"slot" example:"2"`
}
