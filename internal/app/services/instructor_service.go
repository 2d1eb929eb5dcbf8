package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
)

// InstructorService defines the interface for instructor pool operations
type InstructorService interface {
	CreateInstructor(ctx context.Context, instructor *models.Instructor) (int64, error)
	GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error)
	GetAllInstructors(ctx context.Context, filter dto.InstructorListFilter) ([]*models.Instructor, error)
	UpdateInstructor(ctx context.Context, instructor *models.Instructor) error
	DeleteInstructor(ctx context.Context, id int64) error
}

// instructorServiceImpl implements the InstructorService interface
type instructorServiceImpl struct {
	instructorRepo *repositories.InstructorRepository
}

// NewInstructorService creates a new instructor service instance
func NewInstructorService(instructorRepo *repositories.InstructorRepository) InstructorService {
	return &instructorServiceImpl{instructorRepo: instructorRepo}
}

func validateInstructor(instructor *models.Instructor) error {
	if instructor == nil {
		return fmt.Errorf("%w: instructor is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(instructor.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(instructor.Email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if instructor.Rating != nil && (*instructor.Rating < 0 || *instructor.Rating > 5) {
		return fmt.Errorf("%w: rating must be between 0.0 and 5.0", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *instructorServiceImpl) CreateInstructor(ctx context.Context, instructor *models.Instructor) (int64, error) {
	if err := validateInstructor(instructor); err != nil {
		return 0, err
	}
	if instructor.Specialties == nil {
		instructor.Specialties = []string{}
	}
	return s.instructorRepo.Create(ctx, instructor)
}

func (s *instructorServiceImpl) GetInstructorByID(ctx context.Context, id int64) (*models.Instructor, error) {
	return s.instructorRepo.GetByID(ctx, id)
}

func (s *instructorServiceImpl) GetAllInstructors(ctx context.Context, filter dto.InstructorListFilter) ([]*models.Instructor, error) {
	return s.instructorRepo.GetAll(ctx, filter)
}

func (s *instructorServiceImpl) UpdateInstructor(ctx context.Context, instructor *models.Instructor) error {
	if err := validateInstructor(instructor); err != nil {
		return err
	}
	if instructor.Specialties == nil {
		instructor.Specialties = []string{}
	}
	return s.instructorRepo.Update(ctx, instructor)
}

func (s *instructorServiceImpl) DeleteInstructor(ctx context.Context, id int64) error {
	return s.instructorRepo.Delete(ctx, id)
}
