package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/repositories"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
)

// SponsorService defines the interface for sponsor-related operations
type SponsorService interface {
	CreateSponsor(ctx context.Context, sponsor *models.Sponsor) (int64, error)
	GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error)
	GetAllSponsors(ctx context.Context) ([]*models.Sponsor, error)
	UpdateSponsor(ctx context.Context, sponsor *models.Sponsor) error
	DeleteSponsor(ctx context.Context, id int64) error
}

// sponsorServiceImpl implements the SponsorService interface
type sponsorServiceImpl struct {
	sponsorRepo *repositories.SponsorRepository
}

// NewSponsorService creates a new sponsor service instance
func NewSponsorService(sponsorRepo *repositories.SponsorRepository) SponsorService {
	return &sponsorServiceImpl{sponsorRepo: sponsorRepo}
}

func validateSponsor(sponsor *models.Sponsor) error {
	if sponsor == nil {
		return fmt.Errorf("%w: sponsor is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(sponsor.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	switch sponsor.Kind {
	case models.SponsorCompany, models.SponsorFoundation, models.SponsorGovernment, models.SponsorOther:
	default:
		return fmt.Errorf("%w: unknown sponsor kind %q", apperrors.ErrValidationFailed, sponsor.Kind)
	}
	return nil
}

func (s *sponsorServiceImpl) CreateSponsor(ctx context.Context, sponsor *models.Sponsor) (int64, error) {
	if err := validateSponsor(sponsor); err != nil {
		return 0, err
	}
	return s.sponsorRepo.Create(ctx, sponsor)
}

func (s *sponsorServiceImpl) GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error) {
	return s.sponsorRepo.GetByID(ctx, id)
}

func (s *sponsorServiceImpl) GetAllSponsors(ctx context.Context) ([]*models.Sponsor, error) {
	return s.sponsorRepo.GetAll(ctx)
}

func (s *sponsorServiceImpl) UpdateSponsor(ctx context.Context, sponsor *models.Sponsor) error {
	if err := validateSponsor(sponsor); err != nil {
		return err
	}
	return s.sponsorRepo.Update(ctx, sponsor)
}

func (s *sponsorServiceImpl) DeleteSponsor(ctx context.Context, id int64) error {
	return s.sponsorRepo.Delete(ctx, id)
}
