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
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
	"github.com/edulink/outreach-admin/internal/pkg/logger"
)

// SettlementRepository handles settlement database operations.
// Line items are persisted as a jsonb column.
type SettlementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSettlementRepository creates a new SettlementRepository
func NewSettlementRepository(db *pgxpool.Pool) *SettlementRepository {
	return &SettlementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var settlementColumns = []string{
	"id", "program_id", "instructor_id", "matching_id", "period", "items",
	"total", "status", "created_at", "updated_at",
}

func scanSettlement(row pgx.Row) (*models.Settlement, error) {
	s := &models.Settlement{}
	var items []byte
	err := row.Scan(&s.ID, &s.ProgramID, &s.InstructorID, &s.MatchingID, &s.Period,
		&items, &s.Total, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("error decoding settlement items: %w", err)
		}
	}
	if s.Items == nil {
		s.Items = []models.SettlementItem{}
	}
	return s, nil
}

// Create inserts a new settlement and returns its id
func (r *SettlementRepository) Create(ctx context.Context, settlement *models.Settlement) (int64, error) {
	items, err := json.Marshal(settlement.Items)
	if err != nil {
		return 0, fmt.Errorf("error encoding settlement items: %w", err)
	}

	sql, args, err := r.sb.Insert("settlements").
		Columns("program_id", "instructor_id", "matching_id", "period", "items",
			"total", "status").
		Values(settlement.ProgramID, settlement.InstructorID, settlement.MatchingID,
			settlement.Period, items, settlement.Total, settlement.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create settlement SQL")
		return 0, fmt.Errorf("failed to build create settlement query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create settlement query")
		return 0, fmt.Errorf("error creating settlement: %w", err)
	}

	return id, nil
}

// GetByID retrieves a settlement by ID
func (r *SettlementRepository) GetByID(ctx context.Context, id int64) (*models.Settlement, error) {
	sql, args, err := r.sb.Select(settlementColumns...).
		From("settlements").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get settlement SQL")
		return nil, fmt.Errorf("failed to build get settlement query: %w", err)
	}

	settlement, err := scanSettlement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSettlementNotFound
		}
		logger.Error().Err(err).Int64("settlementID", id).Msg("Error scanning settlement row")
		return nil, fmt.Errorf("error getting settlement by ID: %w", err)
	}

	return settlement, nil
}

// GetAll retrieves settlements matching the given filter
func (r *SettlementRepository) GetAll(ctx context.Context, filter dto.SettlementListFilter) ([]*models.Settlement, error) {
	builder := r.sb.Select(settlementColumns...).
		From("settlements").
		OrderBy("created_at DESC", "id DESC")
	if filter.ProgramID != nil {
		builder = builder.Where(squirrel.Eq{"program_id": *filter.ProgramID})
	}
	if filter.InstructorID != nil {
		builder = builder.Where(squirrel.Eq{"instructor_id": *filter.InstructorID})
	}
	if filter.Status != "" {
		builder = builder.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.Period != "" {
		builder = builder.Where(squirrel.Eq{"period": filter.Period})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all settlements SQL")
		return nil, fmt.Errorf("failed to build get all settlements query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all settlements query")
		return nil, fmt.Errorf("error querying settlements: %w", err)
	}
	defer rows.Close()

	settlements := []*models.Settlement{}
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning settlement row: %w", err)
		}
		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settlement rows: %w", err)
	}

	return settlements, nil
}

// Update persists a settlement's items, total and status
func (r *SettlementRepository) Update(ctx context.Context, settlement *models.Settlement) error {
	items, err := json.Marshal(settlement.Items)
	if err != nil {
		return fmt.Errorf("error encoding settlement items: %w", err)
	}

	sql, args, err := r.sb.Update("settlements").
		SetMap(map[string]interface{}{
			"period":     settlement.Period,
			"items":      items,
			"total":      settlement.Total,
			"status":     settlement.Status,
			"updated_at": squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": settlement.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update settlement SQL")
		return fmt.Errorf("failed to build update settlement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("settlementID", settlement.ID).Msg("Error executing update settlement query")
		return fmt.Errorf("error updating settlement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSettlementNotFound
	}

	return nil
}

// Delete deletes a settlement by ID
func (r *SettlementRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("settlements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete settlement SQL")
		return fmt.Errorf("failed to build delete settlement query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("settlementID", id).Msg("Error executing delete settlement query")
		return fmt.Errorf("error deleting settlement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSettlementNotFound
	}

	return nil
}
