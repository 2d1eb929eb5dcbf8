package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
)

// SchoolService defines the interface for partner school operations
type SchoolService interface {
	CreateSchool(ctx context.Context, school *models.School) (int64, error)
	GetSchoolByID(ctx context.Context, id int64) (*models.School, error)
	GetAllSchools(ctx context.Context, region string) ([]*models.School, error)
	UpdateSchool(ctx context.Context, school *models.School) error
	DeleteSchool(ctx context.Context, id int64) error
}

// schoolServiceImpl implements the SchoolService interface
type schoolServiceImpl struct {
	schoolRepo *repositories.SchoolRepository
}

// NewSchoolService creates a new school service instance
func NewSchoolService(schoolRepo *repositories.SchoolRepository) SchoolService {
	return &schoolServiceImpl{schoolRepo: schoolRepo}
}

func validateSchool(school *models.School) error {
	if school == nil {
		return fmt.Errorf("%w: school is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(school.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *schoolServiceImpl) CreateSchool(ctx context.Context, school *models.School) (int64, error) {
	if err := validateSchool(school); err != nil {
		return 0, err
	}
	return s.schoolRepo.Create(ctx, school)
}

func (s *schoolServiceImpl) GetSchoolByID(ctx context.Context, id int64) (*models.School, error) {
	return s.schoolRepo.GetByID(ctx, id)
}

func (s *schoolServiceImpl) GetAllSchools(ctx context.Context, region string) ([]*models.School, error) {
	return s.schoolRepo.GetAll(ctx, region)
}

func (s *schoolServiceImpl) UpdateSchool(ctx context.Context, school *models.School) error {
	if err := validateSchool(school); err != nil {
		return err
	}
	return s.schoolRepo.Update(ctx, school)
}

func (s *schoolServiceImpl) DeleteSchool(ctx context.Context, id int64) error {
	return s.schoolRepo.Delete(ctx, id)
}
