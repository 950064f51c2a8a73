package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/courseplan/internal/app/models"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
	"github.com/yigit/courseplan/internal/pkg/dberrors"
	"github.com/yigit/courseplan/internal/pkg/logger"
)

// PlanRepository handles plan and placement database operations
type PlanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(db *pgxpool.Pool) *PlanRepository {
	return &PlanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreatePlan creates a new plan for a user
func (r *PlanRepository) CreatePlan(ctx context.Context, plan *models.Plan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	sql, args, err := r.sb.Insert("plans").
		Columns("id", "user_id", "name", "created_at", "updated_at").
		Values(plan.ID, plan.UserID, plan.Name, plan.CreatedAt, plan.UpdatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create plan SQL")
		return fmt.Errorf("failed to build create plan query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", plan.UserID).Msg("Error executing create plan query")
		return fmt.Errorf("error creating plan: %w", err)
	}

	return nil
}

// GetPlanByID retrieves a plan with its placements
func (r *PlanRepository) GetPlanByID(ctx context.Context, planID uuid.UUID) (*models.Plan, error) {
	sql, args, err := r.sb.Select("id", "user_id", "name", "created_at", "updated_at").
		From("plans").
		Where(squirrel.Eq{"id": planID}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get plan SQL")
		return nil, fmt.Errorf("failed to build get plan query: %w", err)
	}

	plan := &models.Plan{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&plan.ID, &plan.UserID, &plan.Name, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlanNotFound
		}
		logger.Error().Err(err).Str("planID", planID.String()).Msg("Error scanning plan row")
		return nil, fmt.Errorf("error retrieving plan: %w", err)
	}

	placements, err := r.getPlacements(ctx, planID)
	if err != nil {
		return nil, err
	}
	plan.Placements = placements

	return plan, nil
}

// GetPlansByUserID retrieves all plans owned by a user, newest first
func (r *PlanRepository) GetPlansByUserID(ctx context.Context, userID int64) ([]*models.Plan, error) {
	sql, args, err := r.sb.Select("id", "user_id", "name", "created_at", "updated_at").
		From("plans").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list plans SQL")
		return nil, fmt.Errorf("failed to build list plans query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing list plans query")
		return nil, fmt.Errorf("error listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*models.Plan
	for rows.Next() {
		plan := &models.Plan{}
		if err := rows.Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning plan row")
			return nil, fmt.Errorf("error scanning plan: %w", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plans: %w", err)
	}

	return plans, nil
}

// UpdatePlanName renames a plan
func (r *PlanRepository) UpdatePlanName(ctx context.Context, planID uuid.UUID, name string) error {
	sql, args, err := r.sb.Update("plans").
		Set("name", name).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": planID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update plan SQL")
		return fmt.Errorf("failed to build update plan query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("planID", planID.String()).Msg("Error executing update plan query")
		return fmt.Errorf("error updating plan: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// DeletePlan deletes a plan and its placements
func (r *PlanRepository) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	// Placements are removed by the ON DELETE CASCADE constraint.
	sql, args, err := r.sb.Delete("plans").
		Where(squirrel.Eq{"id": planID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete plan SQL")
		return fmt.Errorf("failed to build delete plan query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("planID", planID.String()).Msg("Error executing delete plan query")
		return fmt.Errorf("error deleting plan: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlanNotFound
	}

	return nil
}

// AddPlacement records a course placement in a plan
func (r *PlanRepository) AddPlacement(ctx context.Context, placement *models.Placement) error {
	sql, args, err := r.sb.Insert("placements").
		Columns("plan_id", "course_code", "semester_id", "slot").
		Values(placement.PlanID, placement.CourseCode, placement.SemesterID, placement.Slot).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building add placement SQL")
		return fmt.Errorf("failed to build add placement query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&placement.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "placements_plan_id_course_code_key") {
			return apperrors.ErrDuplicatePlacement
		}
		logger.Error().Err(err).
			Str("planID", placement.PlanID.String()).
			Str("courseCode", placement.CourseCode).
			Msg("Error executing add placement query")
		return fmt.Errorf("error adding placement: %w", err)
	}

	if err := r.touchPlan(ctx, placement.PlanID); err != nil {
		return err
	}

	return nil
}

// DeletePlacement removes a course from a plan
func (r *PlanRepository) DeletePlacement(ctx context.Context, planID uuid.UUID, courseCode string) error {
	sql, args, err := r.sb.Delete("placements").
		Where(squirrel.Eq{"plan_id": planID, "course_code": courseCode}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete placement SQL")
		return fmt.Errorf("failed to build delete placement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).
			Str("planID", planID.String()).
			Str("courseCode", courseCode).
			Msg("Error executing delete placement query")
		return fmt.Errorf("error deleting placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return r.touchPlan(ctx, planID)
}

// MovePlacement changes the semester and slot of a placed course
func (r *PlanRepository) MovePlacement(ctx context.Context, planID uuid.UUID, courseCode, semesterID string, slot int) error {
	sql, args, err := r.sb.Update("placements").
		Set("semester_id", semesterID).
		Set("slot", slot).
		Where(squirrel.Eq{"plan_id": planID, "course_code": courseCode}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building move placement SQL")
		return fmt.Errorf("failed to build move placement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).
			Str("planID", planID.String()).
			Str("courseCode", courseCode).
			Msg("Error executing move placement query")
		return fmt.Errorf("error moving placement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return r.touchPlan(ctx, planID)
}

func (r *PlanRepository) getPlacements(ctx context.Context, planID uuid.UUID) ([]models.Placement, error) {
	sql, args, err := r.sb.Select("id", "plan_id", "course_code", "semester_id", "slot").
		From("placements").
		Where(squirrel.Eq{"plan_id": planID}).
		OrderBy("semester_id", "slot").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get placements SQL")
		return nil, fmt.Errorf("failed to build get placements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("planID", planID.String()).Msg("Error executing get placements query")
		return nil, fmt.Errorf("error retrieving placements: %w", err)
	}
	defer rows.Close()

	var placements []models.Placement
	for rows.Next() {
		var p models.Placement
		if err := rows.Scan(&p.ID, &p.PlanID, &p.CourseCode, &p.SemesterID, &p.Slot); err != nil {
			logger.Error().Err(err).Msg("Error scanning placement row")
			return nil, fmt.Errorf("error scanning placement: %w", err)
		}
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating placements: %w", err)
	}

	return placements, nil
}

func (r *PlanRepository) touchPlan(ctx context.Context, planID uuid.UUID) error {
	sql, args, err := r.sb.Update("plans").
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": planID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build touch plan query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("planID", planID.String()).Msg("Error updating plan timestamp")
		return fmt.Errorf("error updating plan timestamp: %w", err)
	}

	return nil
}
