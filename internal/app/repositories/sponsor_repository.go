package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
	"github.com/edulink/outreach-admin/internal/pkg/logger"
)

// SponsorRepository handles sponsor database operations
type SponsorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSponsorRepository creates a new SponsorRepository
func NewSponsorRepository(db *pgxpool.Pool) *SponsorRepository {
	return &SponsorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var sponsorColumns = []string{
	"id", "name", "kind", "contact_name", "contact_email", "contact_phone", "memo",
	"created_at", "updated_at",
}

func scanSponsor(row pgx.Row) (*models.Sponsor, error) {
	s := &models.Sponsor{}
	err := row.Scan(&s.ID, &s.Name, &s.Kind, &s.ContactName, &s.ContactEmail,
		&s.ContactPhone, &s.Memo, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new sponsor and returns its id
func (r *SponsorRepository) Create(ctx context.Context, sponsor *models.Sponsor) (int64, error) {
	sql, args, err := r.sb.Insert("sponsors").
		Columns("name", "kind", "contact_name", "contact_email", "contact_phone", "memo").
		Values(sponsor.Name, sponsor.Kind, sponsor.ContactName, sponsor.ContactEmail,
			sponsor.ContactPhone, sponsor.Memo).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create sponsor SQL")
		return 0, fmt.Errorf("failed to build create sponsor query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrSponsorAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create sponsor query")
		return 0, fmt.Errorf("error creating sponsor: %w", err)
	}

	return id, nil
}

// GetByID retrieves a sponsor by ID
func (r *SponsorRepository) GetByID(ctx context.Context, id int64) (*models.Sponsor, error) {
	sql, args, err := r.sb.Select(sponsorColumns...).
		From("sponsors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get sponsor SQL")
		return nil, fmt.Errorf("failed to build get sponsor query: %w", err)
	}

	sponsor, err := scanSponsor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSponsorNotFound
		}
		logger.Error().Err(err).Int64("sponsorID", id).Msg("Error scanning sponsor row")
		return nil, fmt.Errorf("error getting sponsor by ID: %w", err)
	}

	return sponsor, nil
}

// GetAll retrieves all sponsors ordered by name
func (r *SponsorRepository) GetAll(ctx context.Context) ([]*models.Sponsor, error) {
	sql, args, err := r.sb.Select(sponsorColumns...).
		From("sponsors").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all sponsors SQL")
		return nil, fmt.Errorf("failed to build get all sponsors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all sponsors query")
		return nil, fmt.Errorf("error querying sponsors: %w", err)
	}
	defer rows.Close()

	sponsors := []*models.Sponsor{}
	for rows.Next() {
		sponsor, err := scanSponsor(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning sponsor row during get all")
			return nil, fmt.Errorf("error scanning sponsor row: %w", err)
		}
		sponsors = append(sponsors, sponsor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sponsor rows: %w", err)
	}

	return sponsors, nil
}

// Update updates an existing sponsor
func (r *SponsorRepository) Update(ctx context.Context, sponsor *models.Sponsor) error {
	sql, args, err := r.sb.Update("sponsors").
		SetMap(map[string]interface{}{
			"name":          sponsor.Name,
			"kind":          sponsor.Kind,
			"contact_name":  sponsor.ContactName,
			"contact_email": sponsor.ContactEmail,
			"contact_phone": sponsor.ContactPhone,
			"memo":          sponsor.Memo,
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": sponsor.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update sponsor SQL")
		return fmt.Errorf("failed to build update sponsor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrSponsorAlreadyExists
		}
		logger.Error().Err(err).Int64("sponsorID", sponsor.ID).Msg("Error executing update sponsor query")
		return fmt.Errorf("error updating sponsor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSponsorNotFound
	}

	return nil
}

// Delete deletes a sponsor by ID
func (r *SponsorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("sponsors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete sponsor SQL")
		return fmt.Errorf("failed to build delete sponsor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("sponsorID", id).Msg("Error executing delete sponsor query")
		return fmt.Errorf("error deleting sponsor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSponsorNotFound
	}

	return nil
}
