package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
)

// ProgramService defines the interface for program and round operations
type ProgramService interface {
	CreateProgram(ctx context.Context, program *models.Program) (int64, error)
	GetProgramByID(ctx context.Context, id int64) (*models.Program, error)
	GetAllPrograms(ctx context.Context, sponsorID int64, status models.ProgramStatus) ([]*models.Program, error)
	UpdateProgram(ctx context.Context, program *models.Program) error
	DeleteProgram(ctx context.Context, id int64) error

	AddRound(ctx context.Context, round *models.Round) (int64, error)
	GetRoundByID(ctx context.Context, id int64) (*models.Round, error)
	UpdateRound(ctx context.Context, round *models.Round) error
	DeleteRound(ctx context.Context, id int64) error
}

// programServiceImpl implements the ProgramService interface
type programServiceImpl struct {
	programRepo *repositories.ProgramRepository
	sponsorRepo *repositories.SponsorRepository
}

// NewProgramService creates a new program service instance
func NewProgramService(programRepo *repositories.ProgramRepository, sponsorRepo *repositories.SponsorRepository) ProgramService {
	return &programServiceImpl{
		programRepo: programRepo,
		sponsorRepo: sponsorRepo,
	}
}

func validateDateRange(startDate, endDate string) error {
	start, err := time.Parse(models.DateLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: invalid start date %q", apperrors.ErrValidationFailed, startDate)
	}
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: invalid end date %q", apperrors.ErrValidationFailed, endDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *programServiceImpl) validateProgram(program *models.Program) error {
	if program == nil {
		return fmt.Errorf("%w: program is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(program.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	return validateDateRange(program.StartDate, program.EndDate)
}

// validateRound checks that a round nests inside its program's date range and
// does not overlap any sibling round. selfID excludes the round being updated.
func (s *programServiceImpl) validateRound(ctx context.Context, round *models.Round, selfID int64) error {
	if round.RoundNo < 1 {
		return fmt.Errorf("%w: round number must be positive", apperrors.ErrValidationFailed)
	}
	if err := validateDateRange(round.StartDate, round.EndDate); err != nil {
		return err
	}

	program, err := s.programRepo.GetByID(ctx, round.ProgramID)
	if err != nil {
		return err
	}

	if !program.ContainsRange(round.StartDate, round.EndDate) {
		return apperrors.ErrRoundOutsideProgram
	}

	for _, sibling := range program.Rounds {
		if sibling.ID == selfID {
			continue
		}
		if models.RangesOverlap(round.StartDate, round.EndDate, sibling.StartDate, sibling.EndDate) {
			return apperrors.ErrRoundOverlap
		}
	}

	return nil
}

func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) (int64, error) {
	if err := s.validateProgram(program); err != nil {
		return 0, err
	}
	if _, err := s.sponsorRepo.GetByID(ctx, program.SponsorID); err != nil {
		return 0, err
	}
	if program.Status == "" {
		program.Status = models.ProgramDraft
	}
	return s.programRepo.Create(ctx, program)
}

func (s *programServiceImpl) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	return s.programRepo.GetByID(ctx, id)
}

func (s *programServiceImpl) GetAllPrograms(ctx context.Context, sponsorID int64, status models.ProgramStatus) ([]*models.Program, error) {
	return s.programRepo.GetAll(ctx, sponsorID, status)
}

func (s *programServiceImpl) UpdateProgram(ctx context.Context, program *models.Program) error {
	if err := s.validateProgram(program); err != nil {
		return err
	}
	if _, err := s.sponsorRepo.GetByID(ctx, program.SponsorID); err != nil {
		return err
	}

	// Shrinking the program range must not orphan existing rounds.
	existing, err := s.programRepo.GetByID(ctx, program.ID)
	if err != nil {
		return err
	}
	for _, round := range existing.Rounds {
		if program.StartDate > round.StartDate || round.EndDate > program.EndDate {
			return apperrors.ErrRoundOutsideProgram
		}
	}

	return s.programRepo.Update(ctx, program)
}

func (s *programServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	return s.programRepo.Delete(ctx, id)
}

func (s *programServiceImpl) AddRound(ctx context.Context, round *models.Round) (int64, error) {
	if round == nil {
		return 0, fmt.Errorf("%w: round is nil", apperrors.ErrValidationFailed)
	}
	if err := s.validateRound(ctx, round, 0); err != nil {
		return 0, err
	}
	if round.Status == "" {
		round.Status = models.RoundPlanned
	}
	return s.programRepo.CreateRound(ctx, round)
}

func (s *programServiceImpl) GetRoundByID(ctx context.Context, id int64) (*models.Round, error) {
	return s.programRepo.GetRoundByID(ctx, id)
}

func (s *programServiceImpl) UpdateRound(ctx context.Context, round *models.Round) error {
	if round == nil {
		return fmt.Errorf("%w: round is nil", apperrors.ErrValidationFailed)
	}
	existing, err := s.programRepo.GetRoundByID(ctx, round.ID)
	if err != nil {
		return err
	}
	round.ProgramID = existing.ProgramID
	if err := s.validateRound(ctx, round, round.ID); err != nil {
		return err
	}
	return s.programRepo.UpdateRound(ctx, round)
}

func (s *programServiceImpl) DeleteRound(ctx context.Context, id int64) error {
	return s.programRepo.DeleteRound(ctx, id)
}
