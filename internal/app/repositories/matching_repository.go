package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
	"github.com/edulink/outreach-admin/internal/pkg/logger"
)

// MatchingRepository handles instructor-program matching database operations.
// The audit history is persisted as a jsonb column.
type MatchingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMatchingRepository creates a new MatchingRepository
func NewMatchingRepository(db *pgxpool.Pool) *MatchingRepository {
	return &MatchingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var matchingColumns = []string{
	"id", "program_id", "round_id", "instructor_id", "schedule_id", "status",
	"cancel_reason", "created_at", "cancelled_at", "history",
}

func scanMatching(row pgx.Row) (*models.Matching, error) {
	m := &models.Matching{}
	var history []byte
	err := row.Scan(&m.ID, &m.ProgramID, &m.RoundID, &m.InstructorID, &m.ScheduleID,
		&m.Status, &m.CancelReason, &m.CreatedAt, &m.CancelledAt, &history)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &m.History); err != nil {
			return nil, fmt.Errorf("error decoding matching history: %w", err)
		}
	}
	return m, nil
}

// Create inserts a new matching and returns its id
func (r *MatchingRepository) Create(ctx context.Context, matching *models.Matching) (int64, error) {
	history, err := json.Marshal(matching.History)
	if err != nil {
		return 0, fmt.Errorf("error encoding matching history: %w", err)
	}

	sql, args, err := r.sb.Insert("matchings").
		Columns("program_id", "round_id", "instructor_id", "schedule_id", "status",
			"cancel_reason", "created_at", "cancelled_at", "history").
		Values(matching.ProgramID, matching.RoundID, matching.InstructorID,
			matching.ScheduleID, matching.Status, matching.CancelReason,
			matching.CreatedAt, matching.CancelledAt, history).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create matching SQL")
		return 0, fmt.Errorf("failed to build create matching query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create matching query")
		return 0, fmt.Errorf("error creating matching: %w", err)
	}

	return id, nil
}

// GetByID retrieves a matching by ID
func (r *MatchingRepository) GetByID(ctx context.Context, id int64) (*models.Matching, error) {
	sql, args, err := r.sb.Select(matchingColumns...).
		From("matchings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get matching SQL")
		return nil, fmt.Errorf("failed to build get matching query: %w", err)
	}

	matching, err := scanMatching(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMatchingNotFound
		}
		logger.Error().Err(err).Int64("matchingID", id).Msg("Error scanning matching row")
		return nil, fmt.Errorf("error getting matching by ID: %w", err)
	}

	return matching, nil
}

func (r *MatchingRepository) queryMatchings(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Matching, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building matchings SQL")
		return nil, fmt.Errorf("failed to build matchings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing matchings query")
		return nil, fmt.Errorf("error querying matchings: %w", err)
	}
	defer rows.Close()

	matchings := []*models.Matching{}
	for rows.Next() {
		matching, err := scanMatching(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning matching row: %w", err)
		}
		matchings = append(matchings, matching)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matching rows: %w", err)
	}

	return matchings, nil
}

// GetAll retrieves matchings, optionally filtered by program, instructor and status
func (r *MatchingRepository) GetAll(ctx context.Context, programID, instructorID int64, status models.MatchingStatus) ([]*models.Matching, error) {
	builder := r.sb.Select(matchingColumns...).
		From("matchings").
		OrderBy("created_at DESC", "id DESC")
	if programID > 0 {
		builder = builder.Where(squirrel.Eq{"program_id": programID})
	}
	if instructorID > 0 {
		builder = builder.Where(squirrel.Eq{"instructor_id": instructorID})
	}
	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}
	return r.queryMatchings(ctx, builder)
}

// GetByInstructor retrieves all matchings of an instructor
func (r *MatchingRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]*models.Matching, error) {
	builder := r.sb.Select(matchingColumns...).
		From("matchings").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("created_at DESC", "id DESC")
	return r.queryMatchings(ctx, builder)
}

// CountWorkload counts an instructor's matchings in workload-bearing states
func (r *MatchingRepository) CountWorkload(ctx context.Context, instructorID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("matchings").
		Where(squirrel.Eq{
			"instructor_id": instructorID,
			"status":        []models.MatchingStatus{models.MatchingActive, models.MatchingPending},
		}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count workload SQL")
		return 0, fmt.Errorf("failed to build count workload query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Int64("instructorID", instructorID).Msg("Error executing count workload query")
		return 0, fmt.Errorf("error counting instructor workload: %w", err)
	}

	return count, nil
}

// Update persists a matching's mutable fields and its history
func (r *MatchingRepository) Update(ctx context.Context, matching *models.Matching) error {
	history, err := json.Marshal(matching.History)
	if err != nil {
		return fmt.Errorf("error encoding matching history: %w", err)
	}

	sql, args, err := r.sb.Update("matchings").
		SetMap(map[string]interface{}{
			"schedule_id":   matching.ScheduleID,
			"status":        matching.Status,
			"cancel_reason": matching.CancelReason,
			"cancelled_at":  matching.CancelledAt,
			"history":       history,
		}).
		Where(squirrel.Eq{"id": matching.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update matching SQL")
		return fmt.Errorf("failed to build update matching query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("matchingID", matching.ID).Msg("Error executing update matching query")
		return fmt.Errorf("error updating matching: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMatchingNotFound
	}

	return nil
}
