package services

import (
	"context"
	"fmt"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
)

// Base hourly instructor fees per program format, in the base currency unit.
var formatHourlyRates = map[models.ProgramFormat]int64{
	models.FormatWorkshop: 200000,
	models.FormatSeminar:  180000,
	models.FormatCourse:   250000,
	models.FormatLecture:  150000,
	models.FormatOther:    150000,
}

const (
	transportationShortAmount = 30000
	transportationLongAmount  = 100000
	accommodationFlatAmount   = 120000

	// Sessions at or above this many base hours qualify for accommodation.
	accommodationMinHours = 8
)

// SettlementStore persists settlements
type SettlementStore interface {
	Create(ctx context.Context, settlement *models.Settlement) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Settlement, error)
	GetAll(ctx context.Context, filter dto.SettlementListFilter) ([]*models.Settlement, error)
	Update(ctx context.Context, settlement *models.Settlement) error
	Delete(ctx context.Context, id int64) error
}

// ProofFileStore resolves and attaches settlement proof files
type ProofFileStore interface {
	GetByID(ctx context.Context, id int64) (*models.StoredFile, error)
	GetBySettlement(ctx context.Context, settlementID int64) ([]*models.StoredFile, error)
	AttachToSettlement(ctx context.Context, fileIDs []int64, settlementID int64) error
	Delete(ctx context.Context, id int64) error
}

// SettlementService defines the interface for settlement operations: the
// derivation path (suggested items computed from program attributes), the
// submission path (authoritative operator-entered costs), and lifecycle.
type SettlementService interface {
	Calculate(ctx context.Context, req dto.CalculateSettlementRequest) (*dto.CalculateSettlementResponse, error)
	Submit(ctx context.Context, req dto.SubmitSettlementRequest) (*models.Settlement, error)
	GetSettlementByID(ctx context.Context, id int64) (*models.Settlement, error)
	GetAllSettlements(ctx context.Context, filter dto.SettlementListFilter) ([]*models.Settlement, error)
	UpdateStatus(ctx context.Context, id int64, status models.SettlementStatus) (*models.Settlement, error)
	GetProofFiles(ctx context.Context, settlementID int64) ([]*models.StoredFile, error)
	AttachProof(ctx context.Context, settlementID, fileID int64) error
	RemoveProof(ctx context.Context, settlementID, fileID int64) error
}

// settlementServiceImpl implements the SettlementService interface
type settlementServiceImpl struct {
	programs    ProgramDirectory
	settlements SettlementStore
	files       ProofFileStore
}

// NewSettlementService creates a new settlement service instance
func NewSettlementService(programs ProgramDirectory, settlements SettlementStore, files ProofFileStore) SettlementService {
	return &settlementServiceImpl{
		programs:    programs,
		settlements: settlements,
		files:       files,
	}
}

// Calculate derives a suggested item list from program attributes. Optional
// items are included only when the request toggles them on; the response
// reports eligibility either way.
func (s *settlementServiceImpl) Calculate(ctx context.Context, req dto.CalculateSettlementRequest) (*dto.CalculateSettlementResponse, error) {
	program, err := s.programs.GetByID(ctx, req.ProgramID)
	if err != nil {
		return nil, err
	}

	hours := req.BaseHours
	if hours < 1 {
		hours = 1
	}

	rate, ok := formatHourlyRates[program.Format]
	if !ok {
		rate = formatHourlyRates[models.FormatOther]
	}

	items := []models.SettlementItem{
		{
			Type:        models.ItemInstructorFee,
			Description: fmt.Sprintf("%s instructor fee, %d hour(s)", program.Format, hours),
			Amount:      rate * int64(hours),
		},
	}

	transportationEligible := program.Type == models.ProgramOffline || program.Type == models.ProgramHybrid
	accommodationEligible := hours >= accommodationMinHours

	if transportationEligible && req.IncludeTransportation {
		amount := int64(transportationShortAmount)
		tier := "short distance"
		if req.LongDistance {
			amount = transportationLongAmount
			tier = "long distance"
		}
		items = append(items, models.SettlementItem{
			Type:        models.ItemTransportation,
			Description: fmt.Sprintf("transportation (%s)", tier),
			Amount:      amount,
		})
	}

	if accommodationEligible && req.IncludeAccommodation {
		items = append(items, models.SettlementItem{
			Type:        models.ItemAccommodation,
			Description: "accommodation",
			Amount:      accommodationFlatAmount,
		})
	}

	var total int64
	for _, item := range items {
		total += item.Amount
	}

	return &dto.CalculateSettlementResponse{
		Items:                  items,
		Total:                  total,
		TransportationEligible: transportationEligible,
		AccommodationEligible:  accommodationEligible,
	}, nil
}

// Submit validates and persists an operator-entered cost submission.
func (s *settlementServiceImpl) Submit(ctx context.Context, req dto.SubmitSettlementRequest) (*models.Settlement, error) {
	hasCost := req.InstructorFee > 0 || req.Transportation > 0 || req.Lodging > 0 ||
		req.Fuel > 0 || req.Other > 0 || req.IncludeAccommodation
	if !hasCost {
		return nil, apperrors.ErrNoCostItems
	}

	if req.Fuel > 0 && len(req.ProofFileIDs) == 0 {
		return nil, apperrors.ErrFuelProofRequired
	}

	if _, err := s.programs.GetByID(ctx, req.ProgramID); err != nil {
		return nil, err
	}

	for _, fileID := range req.ProofFileIDs {
		if _, err := s.files.GetByID(ctx, fileID); err != nil {
			return nil, err
		}
	}

	items := []models.SettlementItem{}
	if req.InstructorFee > 0 {
		items = append(items, models.SettlementItem{
			Type: models.ItemInstructorFee, Description: "instructor fee", Amount: req.InstructorFee,
		})
	}
	if req.Transportation > 0 {
		items = append(items, models.SettlementItem{
			Type: models.ItemTransportation, Description: "transportation", Amount: req.Transportation,
		})
	}
	if req.IncludeAccommodation {
		// The toggle always contributes the flat amount; an entered lodging
		// value is superseded.
		items = append(items, models.SettlementItem{
			Type: models.ItemAccommodation, Description: "accommodation", Amount: accommodationFlatAmount,
		})
	} else if req.Lodging > 0 {
		items = append(items, models.SettlementItem{
			Type: models.ItemAccommodation, Description: "lodging", Amount: req.Lodging,
		})
	}
	if req.Fuel > 0 {
		items = append(items, models.SettlementItem{
			Type: models.ItemTransportation, Description: "fuel", Amount: req.Fuel,
		})
	}
	if req.Other > 0 {
		description := req.OtherDescription
		if description == "" {
			description = "other"
		}
		items = append(items, models.SettlementItem{
			Type: models.ItemOther, Description: description, Amount: req.Other,
		})
	}

	settlement := &models.Settlement{
		ProgramID:    req.ProgramID,
		InstructorID: req.InstructorID,
		MatchingID:   req.MatchingID,
		Period:       req.Period,
		Status:       models.SettlementPending,
	}
	if err := settlement.SetItems(items); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	}

	id, err := s.settlements.Create(ctx, settlement)
	if err != nil {
		return nil, err
	}
	settlement.ID = id

	if err := s.files.AttachToSettlement(ctx, req.ProofFileIDs, id); err != nil {
		return nil, err
	}

	return settlement, nil
}

func (s *settlementServiceImpl) GetSettlementByID(ctx context.Context, id int64) (*models.Settlement, error) {
	settlement, err := s.settlements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Normalize on load so a hand-edited row can never surface a stale total.
	settlement.RecalculateTotal()
	return settlement, nil
}

func (s *settlementServiceImpl) GetAllSettlements(ctx context.Context, filter dto.SettlementListFilter) ([]*models.Settlement, error) {
	settlements, err := s.settlements.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, settlement := range settlements {
		settlement.RecalculateTotal()
	}
	return settlements, nil
}

func (s *settlementServiceImpl) UpdateStatus(ctx context.Context, id int64, status models.SettlementStatus) (*models.Settlement, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown settlement status %q", apperrors.ErrValidationFailed, status)
	}

	settlement, err := s.settlements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	settlement.Status = status
	settlement.RecalculateTotal()
	if err := s.settlements.Update(ctx, settlement); err != nil {
		return nil, err
	}

	return settlement, nil
}

func (s *settlementServiceImpl) GetProofFiles(ctx context.Context, settlementID int64) ([]*models.StoredFile, error) {
	if _, err := s.settlements.GetByID(ctx, settlementID); err != nil {
		return nil, err
	}
	return s.files.GetBySettlement(ctx, settlementID)
}

func (s *settlementServiceImpl) AttachProof(ctx context.Context, settlementID, fileID int64) error {
	if _, err := s.settlements.GetByID(ctx, settlementID); err != nil {
		return err
	}
	if _, err := s.files.GetByID(ctx, fileID); err != nil {
		return err
	}
	return s.files.AttachToSettlement(ctx, []int64{fileID}, settlementID)
}

func (s *settlementServiceImpl) RemoveProof(ctx context.Context, settlementID, fileID int64) error {
	file, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if file.SettlementID == nil || *file.SettlementID != settlementID {
		return apperrors.ErrFileNotFound
	}
	return s.files.Delete(ctx, fileID)
}
