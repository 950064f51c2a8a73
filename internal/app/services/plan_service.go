package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/courseplan/internal/app/catalog"
	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/app/models/dto"
	"github.com/yigit/courseplan/internal/app/planner"
	"github.com/yigit/courseplan/internal/app/repositories"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

// PlanService manages semester plans and course placements.
// Every mutation rebuilds the grid from stored placements and
// revalidates the whole plan, so responses always carry the
// current validation state.
type PlanService struct {
	planRepo  *repositories.PlanRepository
	catalog   *catalog.Catalog
	validator *planner.Validator
	semesters []string
	slots     int
	logger    zerolog.Logger
}

// NewPlanService creates a new PlanService
func NewPlanService(
	planRepo *repositories.PlanRepository,
	cat *catalog.Catalog,
	validator *planner.Validator,
	semesters []string,
	slotsPerSemester int,
	logger zerolog.Logger,
) *PlanService {
	if len(semesters) == 0 {
		semesters = planner.DefaultSemesters
	}
	if slotsPerSemester <= 0 {
		slotsPerSemester = planner.DefaultSlotsPerSemester
	}
	return &PlanService{
		planRepo:  planRepo,
		catalog:   cat,
		validator: validator,
		semesters: semesters,
		slots:     slotsPerSemester,
		logger:    logger.With().Str("component", "plan_service").Logger(),
	}
}

// CreatePlan creates an empty plan for the user
func (s *PlanService) CreatePlan(ctx context.Context, userID int64, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	plan := &models.Plan{
		UserID: userID,
		Name:   req.Name,
	}
	if err := s.planRepo.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}

	s.logger.Info().Str("planID", plan.ID.String()).Int64("userID", userID).Msg("Plan created")

	return s.planResponse(plan)
}

// ListPlans returns all plans owned by the user
func (s *PlanService) ListPlans(ctx context.Context, userID int64) (*dto.PlanListResponse, error) {
	plans, err := s.planRepo.GetPlansByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.PlanSummaryResponse, 0, len(plans))
	for _, plan := range plans {
		summaries = append(summaries, dto.PlanSummaryResponse{
			ID:        plan.ID,
			Name:      plan.Name,
			CreatedAt: plan.CreatedAt,
			UpdatedAt: plan.UpdatedAt,
		})
	}

	return &dto.PlanListResponse{
		Plans: summaries,
		Total: len(summaries),
	}, nil
}

// GetPlan retrieves a plan with its current validation state
func (s *PlanService) GetPlan(ctx context.Context, userID int64, planID uuid.UUID) (*dto.PlanResponse, error) {
	plan, err := s.getOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	return s.planResponse(plan)
}

// RenamePlan changes the name of a plan
func (s *PlanService) RenamePlan(ctx context.Context, userID int64, planID uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	plan, err := s.getOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if err := s.planRepo.UpdatePlanName(ctx, planID, req.Name); err != nil {
		return nil, err
	}
	plan.Name = req.Name

	return s.planResponse(plan)
}

// DeletePlan removes a plan and all its placements
func (s *PlanService) DeletePlan(ctx context.Context, userID int64, planID uuid.UUID) error {
	if _, err := s.getOwnedPlan(ctx, userID, planID); err != nil {
		return err
	}

	if err := s.planRepo.DeletePlan(ctx, planID); err != nil {
		return err
	}

	s.logger.Info().Str("planID", planID.String()).Int64("userID", userID).Msg("Plan deleted")
	return nil
}

// PlaceCourse places a catalog course into a semester of the plan.
// Placement is rejected for unknown courses, unknown semesters,
// duplicates and full semesters. Requirement violations do not block
// the placement, they are reported in the validation state instead.
func (s *PlanService) PlaceCourse(ctx context.Context, userID int64, planID uuid.UUID, req *dto.PlacementRequest) (*dto.PlanResponse, error) {
	plan, err := s.getOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if _, ok := s.catalog.Course(req.CourseCode); !ok {
		return nil, apperrors.ErrCourseNotFound
	}

	grid, err := s.buildGrid(plan)
	if err != nil {
		return nil, err
	}

	slot := s.semesterCount(plan, req.SemesterID)
	if err := grid.Place(req.CourseCode, req.SemesterID); err != nil {
		return nil, mapGridError(err)
	}

	placement := &models.Placement{
		PlanID:     planID,
		CourseCode: req.CourseCode,
		SemesterID: req.SemesterID,
		Slot:       slot,
	}
	if err := s.planRepo.AddPlacement(ctx, placement); err != nil {
		return nil, err
	}
	plan.Placements = append(plan.Placements, *placement)

	return s.planResponseWithGrid(plan, grid)
}

// RemoveCourse removes a placed course from the plan
func (s *PlanService) RemoveCourse(ctx context.Context, userID int64, planID uuid.UUID, courseCode string) (*dto.PlanResponse, error) {
	plan, err := s.getOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	grid, err := s.buildGrid(plan)
	if err != nil {
		return nil, err
	}

	if err := grid.Remove(courseCode); err != nil {
		return nil, mapGridError(err)
	}

	if err := s.planRepo.DeletePlacement(ctx, planID, courseCode); err != nil {
		return nil, err
	}
	for i, p := range plan.Placements {
		if p.CourseCode == courseCode {
			plan.Placements = append(plan.Placements[:i], plan.Placements[i+1:]...)
			break
		}
	}

	return s.planResponseWithGrid(plan, grid)
}

// MoveCourse moves a placed course to another semester
func (s *PlanService) MoveCourse(ctx context.Context, userID int64, planID uuid.UUID, courseCode string, req *dto.MovePlacementRequest) (*dto.PlanResponse, error) {
	plan, err := s.getOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	grid, err := s.buildGrid(plan)
	if err != nil {
		return nil, err
	}

	slot := s.semesterCount(plan, req.SemesterID)
	if err := grid.Move(courseCode, req.SemesterID); err != nil {
		return nil, mapGridError(err)
	}

	if err := s.planRepo.MovePlacement(ctx, planID, courseCode, req.SemesterID, slot); err != nil {
		return nil, err
	}
	for i := range plan.Placements {
		if plan.Placements[i].CourseCode == courseCode {
			plan.Placements[i].SemesterID = req.SemesterID
			plan.Placements[i].Slot = slot
			break
		}
	}

	return s.planResponseWithGrid(plan, grid)
}

// Validate returns the validation report for a plan without mutating it
func (s *PlanService) Validate(ctx context.Context, userID int64, planID uuid.UUID) (dto.ValidationReport, error) {
	plan, err := s.getOwnedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	grid, err := s.buildGrid(plan)
	if err != nil {
		return nil, err
	}

	return dto.ValidationReport(s.validator.ValidateAll(grid, s.catalog)), nil
}

// getOwnedPlan fetches a plan and checks ownership
func (s *PlanService) getOwnedPlan(ctx context.Context, userID int64, planID uuid.UUID) (*models.Plan, error) {
	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}
	return plan, nil
}

// buildGrid reconstructs the in-memory grid from stored placements.
// Placements referencing semesters outside the configured order are
// skipped with a warning, they can appear after a config change.
func (s *PlanService) buildGrid(plan *models.Plan) (*planner.Grid, error) {
	grid := planner.NewGrid(s.semesters, s.slots)
	for _, p := range plan.Placements {
		if err := grid.Place(p.CourseCode, p.SemesterID); err != nil {
			if errors.Is(err, planner.ErrUnknownSemester) {
				s.logger.Warn().
					Str("planID", plan.ID.String()).
					Str("courseCode", p.CourseCode).
					Str("semesterID", p.SemesterID).
					Msg("Skipping placement in unknown semester")
				continue
			}
			return nil, fmt.Errorf("error rebuilding plan grid: %w", err)
		}
	}
	return grid, nil
}

func (s *PlanService) semesterCount(plan *models.Plan, semesterID string) int {
	count := 0
	for _, p := range plan.Placements {
		if p.SemesterID == semesterID {
			count++
		}
	}
	return count
}

func (s *PlanService) planResponse(plan *models.Plan) (*dto.PlanResponse, error) {
	grid, err := s.buildGrid(plan)
	if err != nil {
		return nil, err
	}
	return s.planResponseWithGrid(plan, grid)
}

func (s *PlanService) planResponseWithGrid(plan *models.Plan, grid *planner.Grid) (*dto.PlanResponse, error) {
	report := s.validator.ValidateAll(grid, s.catalog)
	return &dto.PlanResponse{
		Plan:       plan,
		Validation: dto.ValidationReport(report),
	}, nil
}

// mapGridError translates grid errors into API error sentinels
func mapGridError(err error) error {
	switch {
	case errors.Is(err, planner.ErrUnknownSemester):
		return apperrors.ErrUnknownSemester
	case errors.Is(err, planner.ErrDuplicateCourse):
		return apperrors.ErrDuplicatePlacement
	case errors.Is(err, planner.ErrSemesterFull):
		return apperrors.ErrSemesterFull
	case errors.Is(err, planner.ErrCourseNotPlaced):
		return apperrors.ErrPlacementNotFound
	default:
		return err
	}
}
