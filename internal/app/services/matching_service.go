package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
)

// MatchingService defines the interface for instructor-program matchings
type MatchingService interface {
	CreateMatching(ctx context.Context, programID int64, roundID *int64, instructorID int64, scheduleID *int64) (*models.Matching, error)
	GetMatchingByID(ctx context.Context, id int64) (*models.Matching, error)
	GetAllMatchings(ctx context.Context, programID, instructorID int64, status models.MatchingStatus) ([]*models.Matching, error)
	UpdateStatus(ctx context.Context, id int64, status models.MatchingStatus) (*models.Matching, error)
	CancelMatching(ctx context.Context, id int64, reason string) (*models.Matching, error)
}

// matchingServiceImpl implements the MatchingService interface
type matchingServiceImpl struct {
	matchingRepo   *repositories.MatchingRepository
	programRepo    *repositories.ProgramRepository
	instructorRepo *repositories.InstructorRepository
	scheduleRepo   *repositories.ScheduleRepository
}

// NewMatchingService creates a new matching service instance
func NewMatchingService(
	matchingRepo *repositories.MatchingRepository,
	programRepo *repositories.ProgramRepository,
	instructorRepo *repositories.InstructorRepository,
	scheduleRepo *repositories.ScheduleRepository,
) MatchingService {
	return &matchingServiceImpl{
		matchingRepo:   matchingRepo,
		programRepo:    programRepo,
		instructorRepo: instructorRepo,
		scheduleRepo:   scheduleRepo,
	}
}

func (s *matchingServiceImpl) CreateMatching(ctx context.Context, programID int64, roundID *int64, instructorID int64, scheduleID *int64) (*models.Matching, error) {
	program, err := s.programRepo.GetByID(ctx, programID)
	if err != nil {
		return nil, err
	}
	if _, err := s.instructorRepo.GetByID(ctx, instructorID); err != nil {
		return nil, err
	}
	if roundID != nil {
		round, err := s.programRepo.GetRoundByID(ctx, *roundID)
		if err != nil {
			return nil, err
		}
		if round.ProgramID != program.ID {
			return nil, fmt.Errorf("%w: round %d does not belong to program %d",
				apperrors.ErrValidationFailed, round.ID, program.ID)
		}
	}
	if scheduleID != nil {
		entry, err := s.scheduleRepo.GetByID(ctx, *scheduleID)
		if err != nil {
			return nil, err
		}
		if entry.ProgramID != program.ID {
			return nil, fmt.Errorf("%w: schedule entry %d does not belong to program %d",
				apperrors.ErrValidationFailed, entry.ID, program.ID)
		}
	}

	matching := models.NewMatching(programID, roundID, instructorID, scheduleID)
	id, err := s.matchingRepo.Create(ctx, matching)
	if err != nil {
		return nil, err
	}
	matching.ID = id

	return matching, nil
}

func (s *matchingServiceImpl) GetMatchingByID(ctx context.Context, id int64) (*models.Matching, error) {
	return s.matchingRepo.GetByID(ctx, id)
}

func (s *matchingServiceImpl) GetAllMatchings(ctx context.Context, programID, instructorID int64, status models.MatchingStatus) ([]*models.Matching, error) {
	return s.matchingRepo.GetAll(ctx, programID, instructorID, status)
}

func (s *matchingServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.MatchingStatus) (*models.Matching, error) {
	matching, err := s.matchingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := matching.Transition(status); err != nil {
		if errors.Is(err, models.ErrMatchingFinal) {
			return nil, apperrors.ErrMatchingFinalized
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	}

	if err := s.matchingRepo.Update(ctx, matching); err != nil {
		return nil, err
	}

	return matching, nil
}

func (s *matchingServiceImpl) CancelMatching(ctx context.Context, id int64, reason string) (*models.Matching, error) {
	matching, err := s.matchingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := matching.Cancel(reason); err != nil {
		if errors.Is(err, models.ErrMatchingFinal) {
			return nil, apperrors.ErrMatchingFinalized
		}
		return nil, err
	}

	if err := s.matchingRepo.Update(ctx, matching); err != nil {
		return nil, err
	}

	return matching, nil
}
