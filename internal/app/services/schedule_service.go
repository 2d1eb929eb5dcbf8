package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
	"github.com/edulink/outreach-admin/internal/pkg/timeslot"
)

// ScheduleService defines the interface for schedule entry operations.
// Conflict detection stays advisory: a conflicting entry still saves.
type ScheduleService interface {
	CreateEntry(ctx context.Context, entry *models.ScheduleEntry) (int64, error)
	GetEntryByID(ctx context.Context, id int64) (*models.ScheduleEntry, error)
	GetEntriesByProgram(ctx context.Context, programID int64, roundID *int64) ([]*models.ScheduleEntry, error)
	GetEntriesByInstructor(ctx context.Context, instructorID int64) ([]*models.ScheduleEntry, error)
	UpdateEntry(ctx context.Context, entry *models.ScheduleEntry) error
	DeleteEntry(ctx context.Context, id int64) error
}

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	scheduleRepo   *repositories.ScheduleRepository
	programRepo    *repositories.ProgramRepository
	instructorRepo *repositories.InstructorRepository
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(
	scheduleRepo *repositories.ScheduleRepository,
	programRepo *repositories.ProgramRepository,
	instructorRepo *repositories.InstructorRepository,
) ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo:   scheduleRepo,
		programRepo:    programRepo,
		instructorRepo: instructorRepo,
	}
}

func (s *scheduleServiceImpl) validateEntry(ctx context.Context, entry *models.ScheduleEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: schedule entry is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(entry.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if !entry.HasVenue() {
		return apperrors.ErrScheduleNeedsVenue
	}

	start, err := timeslot.Minutes(entry.StartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q", apperrors.ErrValidationFailed, entry.StartTime)
	}
	end, err := timeslot.Minutes(entry.EndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid end time %q", apperrors.ErrValidationFailed, entry.EndTime)
	}
	if start >= end {
		return apperrors.ErrInvalidTimeRange
	}

	program, err := s.programRepo.GetByID(ctx, entry.ProgramID)
	if err != nil {
		return err
	}
	if entry.RoundID != nil {
		round, err := s.programRepo.GetRoundByID(ctx, *entry.RoundID)
		if err != nil {
			return err
		}
		if round.ProgramID != program.ID {
			return fmt.Errorf("%w: round %d does not belong to program %d",
				apperrors.ErrValidationFailed, round.ID, program.ID)
		}
	}
	if entry.InstructorID != nil {
		if _, err := s.instructorRepo.GetByID(ctx, *entry.InstructorID); err != nil {
			return err
		}
	}

	return nil
}

func (s *scheduleServiceImpl) CreateEntry(ctx context.Context, entry *models.ScheduleEntry) (int64, error) {
	if err := s.validateEntry(ctx, entry); err != nil {
		return 0, err
	}
	return s.scheduleRepo.Create(ctx, entry)
}

func (s *scheduleServiceImpl) GetEntryByID(ctx context.Context, id int64) (*models.ScheduleEntry, error) {
	return s.scheduleRepo.GetByID(ctx, id)
}

func (s *scheduleServiceImpl) GetEntriesByProgram(ctx context.Context, programID int64, roundID *int64) ([]*models.ScheduleEntry, error) {
	return s.scheduleRepo.GetByProgram(ctx, programID, roundID)
}

func (s *scheduleServiceImpl) GetEntriesByInstructor(ctx context.Context, instructorID int64) ([]*models.ScheduleEntry, error) {
	return s.scheduleRepo.GetByInstructor(ctx, instructorID)
}

func (s *scheduleServiceImpl) UpdateEntry(ctx context.Context, entry *models.ScheduleEntry) error {
	if err := s.validateEntry(ctx, entry); err != nil {
		return err
	}
	return s.scheduleRepo.Update(ctx, entry)
}

func (s *scheduleServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	return s.scheduleRepo.Delete(ctx, id)
}
