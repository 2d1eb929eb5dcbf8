package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
	"github.com/edulink/outreach-admin/internal/pkg/logger"
)

// ScheduleRepository handles schedule entry database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var scheduleColumns = []string{
	"id", "program_id", "round_id", "title", "date", "start_time", "end_time",
	"instructor_id", "location", "online_link", "created_at", "updated_at",
}

func scanScheduleEntry(row pgx.Row) (*models.ScheduleEntry, error) {
	e := &models.ScheduleEntry{}
	var date time.Time
	err := row.Scan(&e.ID, &e.ProgramID, &e.RoundID, &e.Title, &date,
		&e.StartTime, &e.EndTime, &e.InstructorID, &e.Location, &e.OnlineLink,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Date = date.Format(models.DateLayout)
	return e, nil
}

// Create inserts a new schedule entry and returns its id
func (r *ScheduleRepository) Create(ctx context.Context, entry *models.ScheduleEntry) (int64, error) {
	sql, args, err := r.sb.Insert("schedule_entries").
		Columns("program_id", "round_id", "title", "date", "start_time", "end_time",
			"instructor_id", "location", "online_link").
		Values(entry.ProgramID, entry.RoundID, entry.Title, entry.Date, entry.StartTime,
			entry.EndTime, entry.InstructorID, entry.Location, entry.OnlineLink).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create schedule entry SQL")
		return 0, fmt.Errorf("failed to build create schedule entry query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create schedule entry query")
		return 0, fmt.Errorf("error creating schedule entry: %w", err)
	}

	return id, nil
}

// GetByID retrieves a schedule entry by ID
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*models.ScheduleEntry, error) {
	sql, args, err := r.sb.Select(scheduleColumns...).
		From("schedule_entries").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get schedule entry SQL")
		return nil, fmt.Errorf("failed to build get schedule entry query: %w", err)
	}

	entry, err := scanScheduleEntry(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error scanning schedule entry row")
		return nil, fmt.Errorf("error getting schedule entry by ID: %w", err)
	}

	return entry, nil
}

func (r *ScheduleRepository) queryEntries(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.ScheduleEntry, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building schedule entries SQL")
		return nil, fmt.Errorf("failed to build schedule entries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing schedule entries query")
		return nil, fmt.Errorf("error querying schedule entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.ScheduleEntry{}
	for rows.Next() {
		entry, err := scanScheduleEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning schedule entry row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule entry rows: %w", err)
	}

	return entries, nil
}

// GetByProgram retrieves schedule entries of a program, optionally narrowed to one round
func (r *ScheduleRepository) GetByProgram(ctx context.Context, programID int64, roundID *int64) ([]*models.ScheduleEntry, error) {
	builder := r.sb.Select(scheduleColumns...).
		From("schedule_entries").
		Where(squirrel.Eq{"program_id": programID}).
		OrderBy("date ASC", "start_time ASC")
	if roundID != nil {
		builder = builder.Where(squirrel.Eq{"round_id": *roundID})
	}
	return r.queryEntries(ctx, builder)
}

// GetByInstructor retrieves all schedule entries assigned to an instructor
func (r *ScheduleRepository) GetByInstructor(ctx context.Context, instructorID int64) ([]*models.ScheduleEntry, error) {
	builder := r.sb.Select(scheduleColumns...).
		From("schedule_entries").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("date ASC", "start_time ASC")
	return r.queryEntries(ctx, builder)
}

// GetByInstructorOnDate retrieves an instructor's entries on a single date
func (r *ScheduleRepository) GetByInstructorOnDate(ctx context.Context, instructorID int64, date string) ([]*models.ScheduleEntry, error) {
	builder := r.sb.Select(scheduleColumns...).
		From("schedule_entries").
		Where(squirrel.Eq{"instructor_id": instructorID, "date": date}).
		OrderBy("start_time ASC")
	return r.queryEntries(ctx, builder)
}

// Update updates an existing schedule entry
func (r *ScheduleRepository) Update(ctx context.Context, entry *models.ScheduleEntry) error {
	sql, args, err := r.sb.Update("schedule_entries").
		SetMap(map[string]interface{}{
			"round_id":      entry.RoundID,
			"title":         entry.Title,
			"date":          entry.Date,
			"start_time":    entry.StartTime,
			"end_time":      entry.EndTime,
			"instructor_id": entry.InstructorID,
			"location":      entry.Location,
			"online_link":   entry.OnlineLink,
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update schedule entry SQL")
		return fmt.Errorf("failed to build update schedule entry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", entry.ID).Msg("Error executing update schedule entry query")
		return fmt.Errorf("error updating schedule entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}

// Delete deletes a schedule entry by ID
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("schedule_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete schedule entry SQL")
		return fmt.Errorf("failed to build delete schedule entry query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing delete schedule entry query")
		return fmt.Errorf("error deleting schedule entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}
