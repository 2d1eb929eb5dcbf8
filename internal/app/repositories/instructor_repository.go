package repositories

import (
	"context"
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

// InstructorRepository handles instructor database operations
type InstructorRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInstructorRepository creates a new InstructorRepository
func NewInstructorRepository(db *pgxpool.Pool) *InstructorRepository {
	return &InstructorRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var instructorColumns = []string{
	"id", "name", "email", "phone", "region", "specialties", "rating",
	"experience", "available_time", "active", "created_at", "updated_at",
}

func scanInstructor(row pgx.Row) (*models.Instructor, error) {
	i := &models.Instructor{}
	err := row.Scan(&i.ID, &i.Name, &i.Email, &i.Phone, &i.Region, &i.Specialties,
		&i.Rating, &i.Experience, &i.AvailableTime, &i.Active, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if i.Specialties == nil {
		i.Specialties = []string{}
	}
	return i, nil
}

// Create inserts a new instructor and returns its id
func (r *InstructorRepository) Create(ctx context.Context, instructor *models.Instructor) (int64, error) {
	sql, args, err := r.sb.Insert("instructors").
		Columns("name", "email", "phone", "region", "specialties", "rating",
			"experience", "available_time", "active").
		Values(instructor.Name, instructor.Email, instructor.Phone, instructor.Region,
			instructor.Specialties, instructor.Rating, instructor.Experience,
			instructor.AvailableTime, instructor.Active).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create instructor SQL")
		return 0, fmt.Errorf("failed to build create instructor query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrInstructorEmailTaken
		}
		logger.Error().Err(err).Msg("Error executing create instructor query")
		return 0, fmt.Errorf("error creating instructor: %w", err)
	}

	return id, nil
}

// GetByID retrieves an instructor by ID
func (r *InstructorRepository) GetByID(ctx context.Context, id int64) (*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get instructor SQL")
		return nil, fmt.Errorf("failed to build get instructor query: %w", err)
	}

	instructor, err := scanInstructor(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Int64("instructorID", id).Msg("Error scanning instructor row")
		return nil, fmt.Errorf("error getting instructor by ID: %w", err)
	}

	return instructor, nil
}

// GetAll retrieves instructors matching the given filter
func (r *InstructorRepository) GetAll(ctx context.Context, filter dto.InstructorListFilter) ([]*models.Instructor, error) {
	builder := r.sb.Select(instructorColumns...).
		From("instructors").
		OrderBy("name ASC")
	if filter.Region != "" {
		builder = builder.Where(squirrel.Eq{"region": filter.Region})
	}
	if filter.Specialty != "" {
		builder = builder.Where(squirrel.Expr("? = ANY(specialties)", filter.Specialty))
	}
	if filter.Active != nil {
		builder = builder.Where(squirrel.Eq{"active": *filter.Active})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all instructors SQL")
		return nil, fmt.Errorf("failed to build get all instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all instructors query")
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}

// GetActive retrieves all active instructors ordered by id
func (r *InstructorRepository) GetActive(ctx context.Context) ([]*models.Instructor, error) {
	sql, args, err := r.sb.Select(instructorColumns...).
		From("instructors").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get active instructors SQL")
		return nil, fmt.Errorf("failed to build get active instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get active instructors query")
		return nil, fmt.Errorf("error querying active instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, instructor)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}

// Update updates an existing instructor
func (r *InstructorRepository) Update(ctx context.Context, instructor *models.Instructor) error {
	sql, args, err := r.sb.Update("instructors").
		SetMap(map[string]interface{}{
			"name":           instructor.Name,
			"email":          instructor.Email,
			"phone":          instructor.Phone,
			"region":         instructor.Region,
			"specialties":    instructor.Specialties,
			"rating":         instructor.Rating,
			"experience":     instructor.Experience,
			"available_time": instructor.AvailableTime,
			"active":         instructor.Active,
			"updated_at":     squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": instructor.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update instructor SQL")
		return fmt.Errorf("failed to build update instructor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrInstructorEmailTaken
		}
		logger.Error().Err(err).Int64("instructorID", instructor.ID).Msg("Error executing update instructor query")
		return fmt.Errorf("error updating instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}

// Delete deletes an instructor by ID
func (r *InstructorRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("instructors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete instructor SQL")
		return fmt.Errorf("failed to build delete instructor query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("instructorID", id).Msg("Error executing delete instructor query")
		return fmt.Errorf("error deleting instructor: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstructorNotFound
	}

	return nil
}
