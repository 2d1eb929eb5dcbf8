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

// SchoolRepository handles partner school database operations
type SchoolRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSchoolRepository creates a new SchoolRepository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var schoolColumns = []string{
	"id", "name", "region", "address", "contact_name", "contact_phone",
	"created_at", "updated_at",
}

func scanSchool(row pgx.Row) (*models.School, error) {
	s := &models.School{}
	err := row.Scan(&s.ID, &s.Name, &s.Region, &s.Address, &s.ContactName,
		&s.ContactPhone, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new school and returns its id
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) (int64, error) {
	sql, args, err := r.sb.Insert("schools").
		Columns("name", "region", "address", "contact_name", "contact_phone").
		Values(school.Name, school.Region, school.Address, school.ContactName, school.ContactPhone).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create school SQL")
		return 0, fmt.Errorf("failed to build create school query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create school query")
		return 0, fmt.Errorf("error creating school: %w", err)
	}

	return id, nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	sql, args, err := r.sb.Select(schoolColumns...).
		From("schools").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get school SQL")
		return nil, fmt.Errorf("failed to build get school query: %w", err)
	}

	school, err := scanSchool(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error scanning school row")
		return nil, fmt.Errorf("error getting school by ID: %w", err)
	}

	return school, nil
}

// GetAll retrieves schools, optionally filtered by region
func (r *SchoolRepository) GetAll(ctx context.Context, region string) ([]*models.School, error) {
	builder := r.sb.Select(schoolColumns...).
		From("schools").
		OrderBy("name ASC")
	if region != "" {
		builder = builder.Where(squirrel.Eq{"region": region})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all schools SQL")
		return nil, fmt.Errorf("failed to build get all schools query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all schools query")
		return nil, fmt.Errorf("error querying schools: %w", err)
	}
	defer rows.Close()

	schools := []*models.School{}
	for rows.Next() {
		school, err := scanSchool(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning school row: %w", err)
		}
		schools = append(schools, school)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating school rows: %w", err)
	}

	return schools, nil
}

// Update updates an existing school
func (r *SchoolRepository) Update(ctx context.Context, school *models.School) error {
	sql, args, err := r.sb.Update("schools").
		SetMap(map[string]interface{}{
			"name":          school.Name,
			"region":        school.Region,
			"address":       school.Address,
			"contact_name":  school.ContactName,
			"contact_phone": school.ContactPhone,
			"updated_at":    squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": school.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update school SQL")
		return fmt.Errorf("failed to build update school query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("schoolID", school.ID).Msg("Error executing update school query")
		return fmt.Errorf("error updating school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}

// Delete deletes a school by ID
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("schools").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete school SQL")
		return fmt.Errorf("failed to build delete school query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("schoolID", id).Msg("Error executing delete school query")
		return fmt.Errorf("error deleting school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSchoolNotFound
	}

	return nil
}
