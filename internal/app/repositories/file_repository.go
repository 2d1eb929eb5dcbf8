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

// FileRepository handles stored file metadata database operations
type FileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db *pgxpool.Pool) *FileRepository {
	return &FileRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var fileColumns = []string{
	"id", "settlement_id", "file_name", "stored_path", "file_size", "file_type", "created_at",
}

func scanStoredFile(row pgx.Row) (*models.StoredFile, error) {
	f := &models.StoredFile{}
	err := row.Scan(&f.ID, &f.SettlementID, &f.FileName, &f.StoredPath,
		&f.FileSize, &f.FileType, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create inserts file metadata and returns its id. Files are uploaded before
// the settlement that references them exists, so SettlementID may be nil.
func (r *FileRepository) Create(ctx context.Context, file *models.StoredFile) (int64, error) {
	sql, args, err := r.sb.Insert("stored_files").
		Columns("settlement_id", "file_name", "stored_path", "file_size", "file_type").
		Values(file.SettlementID, file.FileName, file.StoredPath, file.FileSize, file.FileType).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create file SQL")
		return 0, fmt.Errorf("failed to build create file query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create file query")
		return 0, fmt.Errorf("error creating file record: %w", err)
	}

	return id, nil
}

// GetByID retrieves file metadata by ID
func (r *FileRepository) GetByID(ctx context.Context, id int64) (*models.StoredFile, error) {
	sql, args, err := r.sb.Select(fileColumns...).
		From("stored_files").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get file SQL")
		return nil, fmt.Errorf("failed to build get file query: %w", err)
	}

	file, err := scanStoredFile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFileNotFound
		}
		logger.Error().Err(err).Int64("fileID", id).Msg("Error scanning file row")
		return nil, fmt.Errorf("error getting file by ID: %w", err)
	}

	return file, nil
}

// GetBySettlement retrieves all files attached to a settlement
func (r *FileRepository) GetBySettlement(ctx context.Context, settlementID int64) ([]*models.StoredFile, error) {
	sql, args, err := r.sb.Select(fileColumns...).
		From("stored_files").
		Where(squirrel.Eq{"settlement_id": settlementID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get settlement files SQL")
		return nil, fmt.Errorf("failed to build get settlement files query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("settlementID", settlementID).Msg("Error executing get settlement files query")
		return nil, fmt.Errorf("error querying settlement files: %w", err)
	}
	defer rows.Close()

	files := []*models.StoredFile{}
	for rows.Next() {
		file, err := scanStoredFile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning file row: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file rows: %w", err)
	}

	return files, nil
}

// AttachToSettlement links uploaded files to a settlement
func (r *FileRepository) AttachToSettlement(ctx context.Context, fileIDs []int64, settlementID int64) error {
	if len(fileIDs) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("stored_files").
		Set("settlement_id", settlementID).
		Where(squirrel.Eq{"id": fileIDs}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building attach files SQL")
		return fmt.Errorf("failed to build attach files query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("settlementID", settlementID).Msg("Error executing attach files query")
		return fmt.Errorf("error attaching files to settlement: %w", err)
	}

	if cmdTag.RowsAffected() != int64(len(fileIDs)) {
		return apperrors.ErrFileNotFound
	}

	return nil
}

// Delete removes file metadata by ID
func (r *FileRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("stored_files").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete file SQL")
		return fmt.Errorf("failed to build delete file query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("fileID", id).Msg("Error executing delete file query")
		return fmt.Errorf("error deleting file record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFileNotFound
	}

	return nil
}
