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

// ProgramRepository handles program and round database operations
type ProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var programColumns = []string{
	"id", "sponsor_id", "title", "type", "format", "start_date", "end_date",
	"status", "created_at", "updated_at",
}

var roundColumns = []string{
	"id", "program_id", "round_no", "start_date", "end_date", "capacity",
	"status", "created_at", "updated_at",
}

func scanProgram(row pgx.Row) (*models.Program, error) {
	p := &models.Program{}
	var startDate, endDate time.Time
	err := row.Scan(&p.ID, &p.SponsorID, &p.Title, &p.Type, &p.Format,
		&startDate, &endDate, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.StartDate = startDate.Format(models.DateLayout)
	p.EndDate = endDate.Format(models.DateLayout)
	return p, nil
}

func scanRound(row pgx.Row) (*models.Round, error) {
	rd := &models.Round{}
	var startDate, endDate time.Time
	err := row.Scan(&rd.ID, &rd.ProgramID, &rd.RoundNo, &startDate, &endDate,
		&rd.Capacity, &rd.Status, &rd.CreatedAt, &rd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rd.StartDate = startDate.Format(models.DateLayout)
	rd.EndDate = endDate.Format(models.DateLayout)
	return rd, nil
}

// Create inserts a new program and returns its id
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) (int64, error) {
	sql, args, err := r.sb.Insert("programs").
		Columns("sponsor_id", "title", "type", "format", "start_date", "end_date", "status").
		Values(program.SponsorID, program.Title, program.Type, program.Format,
			program.StartDate, program.EndDate, program.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create program SQL")
		return 0, fmt.Errorf("failed to build create program query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create program query")
		return 0, fmt.Errorf("error creating program: %w", err)
	}

	return id, nil
}

// GetByID retrieves a program by ID with its rounds loaded
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	sql, args, err := r.sb.Select(programColumns...).
		From("programs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get program SQL")
		return nil, fmt.Errorf("failed to build get program query: %w", err)
	}

	program, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		logger.Error().Err(err).Int64("programID", id).Msg("Error scanning program row")
		return nil, fmt.Errorf("error getting program by ID: %w", err)
	}

	rounds, err := r.GetRounds(ctx, id)
	if err != nil {
		return nil, err
	}
	program.Rounds = rounds

	return program, nil
}

// GetAll retrieves programs, optionally filtered by sponsor and status
func (r *ProgramRepository) GetAll(ctx context.Context, sponsorID int64, status models.ProgramStatus) ([]*models.Program, error) {
	builder := r.sb.Select(programColumns...).
		From("programs").
		OrderBy("start_date DESC", "id DESC")
	if sponsorID > 0 {
		builder = builder.Where(squirrel.Eq{"sponsor_id": sponsorID})
	}
	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all programs SQL")
		return nil, fmt.Errorf("failed to build get all programs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all programs query")
		return nil, fmt.Errorf("error querying programs: %w", err)
	}
	defer rows.Close()

	programs := []*models.Program{}
	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning program row: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating program rows: %w", err)
	}

	return programs, nil
}

// Update updates an existing program
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	sql, args, err := r.sb.Update("programs").
		SetMap(map[string]interface{}{
			"sponsor_id": program.SponsorID,
			"title":      program.Title,
			"type":       program.Type,
			"format":     program.Format,
			"start_date": program.StartDate,
			"end_date":   program.EndDate,
			"status":     program.Status,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": program.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update program SQL")
		return fmt.Errorf("failed to build update program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", program.ID).Msg("Error executing update program query")
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// Delete deletes a program by ID, cascading to its rounds
func (r *ProgramRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("programs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete program SQL")
		return fmt.Errorf("failed to build delete program query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", id).Msg("Error executing delete program query")
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgramNotFound
	}

	return nil
}

// CreateRound inserts a new round for a program and returns its id
func (r *ProgramRepository) CreateRound(ctx context.Context, round *models.Round) (int64, error) {
	sql, args, err := r.sb.Insert("program_rounds").
		Columns("program_id", "round_no", "start_date", "end_date", "capacity", "status").
		Values(round.ProgramID, round.RoundNo, round.StartDate, round.EndDate,
			round.Capacity, round.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create round SQL")
		return 0, fmt.Errorf("failed to build create round query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create round query")
		return 0, fmt.Errorf("error creating round: %w", err)
	}

	return id, nil
}

// GetRoundByID retrieves a round by ID
func (r *ProgramRepository) GetRoundByID(ctx context.Context, id int64) (*models.Round, error) {
	sql, args, err := r.sb.Select(roundColumns...).
		From("program_rounds").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get round SQL")
		return nil, fmt.Errorf("failed to build get round query: %w", err)
	}

	round, err := scanRound(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoundNotFound
		}
		logger.Error().Err(err).Int64("roundID", id).Msg("Error scanning round row")
		return nil, fmt.Errorf("error getting round by ID: %w", err)
	}

	return round, nil
}

// GetRounds retrieves all rounds of a program ordered by round number
func (r *ProgramRepository) GetRounds(ctx context.Context, programID int64) ([]*models.Round, error) {
	sql, args, err := r.sb.Select(roundColumns...).
		From("program_rounds").
		Where(squirrel.Eq{"program_id": programID}).
		OrderBy("round_no ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get rounds SQL")
		return nil, fmt.Errorf("failed to build get rounds query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("programID", programID).Msg("Error executing get rounds query")
		return nil, fmt.Errorf("error querying rounds: %w", err)
	}
	defer rows.Close()

	rounds := []*models.Round{}
	for rows.Next() {
		round, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning round row: %w", err)
		}
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating round rows: %w", err)
	}

	return rounds, nil
}

// UpdateRound updates an existing round
func (r *ProgramRepository) UpdateRound(ctx context.Context, round *models.Round) error {
	sql, args, err := r.sb.Update("program_rounds").
		SetMap(map[string]interface{}{
			"round_no":   round.RoundNo,
			"start_date": round.StartDate,
			"end_date":   round.EndDate,
			"capacity":   round.Capacity,
			"status":     round.Status,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": round.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update round SQL")
		return fmt.Errorf("failed to build update round query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("roundID", round.ID).Msg("Error executing update round query")
		return fmt.Errorf("error updating round: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoundNotFound
	}

	return nil
}

// DeleteRound deletes a round by ID
func (r *ProgramRepository) DeleteRound(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("program_rounds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete round SQL")
		return fmt.Errorf("failed to build delete round query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("roundID", id).Msg("Error executing delete round query")
		return fmt.Errorf("error deleting round: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoundNotFound
	}

	return nil
}
