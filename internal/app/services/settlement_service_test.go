package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/pkg/apperrors"
)

func newSettlementFixture(program *models.Program) (SettlementService, *memSettlements, *memFiles) {
	programs := &memPrograms{programs: map[int64]*models.Program{}}
	if program != nil {
		programs.programs[program.ID] = program
	}
	settlements := newMemSettlements()
	files := &memFiles{files: map[int64]*models.StoredFile{}}
	return NewSettlementService(programs, settlements, files), settlements, files
}

func itemAmounts(items []models.SettlementItem) map[models.SettlementItemType]int64 {
	out := map[models.SettlementItemType]int64{}
	for _, item := range items {
		out[item.Type] += item.Amount
	}
	return out
}

func TestCalculate_FormatRates(t *testing.T) {
	cases := []struct {
		format models.ProgramFormat
		rate   int64
	}{
		{models.FormatWorkshop, 200000},
		{models.FormatSeminar, 180000},
		{models.FormatCourse, 250000},
		{models.FormatLecture, 150000},
		{models.FormatOther, 150000},
	}

	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			svc, _, _ := newSettlementFixture(&models.Program{
				ID: 1, Title: "P", Type: models.ProgramOnline, Format: tc.format,
				StartDate: "2025-03-01", EndDate: "2025-03-31",
			})

			resp, err := svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
				ProgramID: 1, InstructorID: 1, MatchingID: 1,
			})
			require.NoError(t, err)
			require.Len(t, resp.Items, 1)
			assert.Equal(t, models.ItemInstructorFee, resp.Items[0].Type)
			assert.Equal(t, tc.rate, resp.Items[0].Amount) // base hours default to 1
			assert.Equal(t, tc.rate, resp.Total)
		})
	}
}

func TestCalculate_BaseHoursMultiply(t *testing.T) {
	svc, _, _ := newSettlementFixture(&models.Program{
		ID: 1, Title: "P", Type: models.ProgramOnline, Format: models.FormatSeminar,
		StartDate: "2025-03-01", EndDate: "2025-03-31",
	})

	resp, err := svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, BaseHours: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(540000), resp.Total)
}

func TestCalculate_TransportationEligibility(t *testing.T) {
	svc, _, _ := newSettlementFixture(&models.Program{
		ID: 1, Title: "P", Type: models.ProgramOffline, Format: models.FormatLecture,
		StartDate: "2025-03-01", EndDate: "2025-03-31",
	})

	// Eligible but not toggled: reported, not included.
	resp, err := svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1,
	})
	require.NoError(t, err)
	assert.True(t, resp.TransportationEligible)
	assert.Zero(t, itemAmounts(resp.Items)[models.ItemTransportation])

	// Toggled on, short tier.
	resp, err = svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, IncludeTransportation: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30000), itemAmounts(resp.Items)[models.ItemTransportation])

	// Toggled on, long tier.
	resp, err = svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, IncludeTransportation: true, LongDistance: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100000), itemAmounts(resp.Items)[models.ItemTransportation])
}

func TestCalculate_OnlineProgramNeverGetsTransportation(t *testing.T) {
	svc, _, _ := newSettlementFixture(&models.Program{
		ID: 1, Title: "P", Type: models.ProgramOnline, Format: models.FormatLecture,
		StartDate: "2025-03-01", EndDate: "2025-03-31",
	})

	resp, err := svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, IncludeTransportation: true,
	})
	require.NoError(t, err)
	assert.False(t, resp.TransportationEligible)
	assert.Zero(t, itemAmounts(resp.Items)[models.ItemTransportation])
}

func TestCalculate_AccommodationThreshold(t *testing.T) {
	svc, _, _ := newSettlementFixture(&models.Program{
		ID: 1, Title: "P", Type: models.ProgramHybrid, Format: models.FormatCourse,
		StartDate: "2025-03-01", EndDate: "2025-03-31",
	})

	resp, err := svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, BaseHours: 7, IncludeAccommodation: true,
	})
	require.NoError(t, err)
	assert.False(t, resp.AccommodationEligible)
	assert.Zero(t, itemAmounts(resp.Items)[models.ItemAccommodation])

	resp, err = svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, BaseHours: 8, IncludeAccommodation: true,
	})
	require.NoError(t, err)
	assert.True(t, resp.AccommodationEligible)
	assert.Equal(t, int64(120000), itemAmounts(resp.Items)[models.ItemAccommodation])
}

func TestCalculate_UnknownProgram(t *testing.T) {
	svc, _, _ := newSettlementFixture(nil)

	_, err := svc.Calculate(context.Background(), dto.CalculateSettlementRequest{
		ProgramID: 404, InstructorID: 1, MatchingID: 1,
	})
	assert.ErrorIs(t, err, apperrors.ErrProgramNotFound)
}

func submissionProgram() *models.Program {
	return &models.Program{
		ID: 1, Title: "P", Type: models.ProgramOffline, Format: models.FormatWorkshop,
		StartDate: "2025-03-01", EndDate: "2025-03-31",
	}
}

func TestSubmit_RequiresAtLeastOneCostCategory(t *testing.T) {
	svc, _, _ := newSettlementFixture(submissionProgram())

	_, err := svc.Submit(context.Background(), dto.SubmitSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, Period: "2025-03",
	})
	assert.ErrorIs(t, err, apperrors.ErrNoCostItems)
}

func TestSubmit_FuelRequiresProof(t *testing.T) {
	svc, _, files := newSettlementFixture(submissionProgram())

	_, err := svc.Submit(context.Background(), dto.SubmitSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, Period: "2025-03",
		Fuel: 40000,
	})
	assert.ErrorIs(t, err, apperrors.ErrFuelProofRequired)

	files.files[11] = &models.StoredFile{ID: 11, FileName: "receipt.jpg"}
	settlement, err := svc.Submit(context.Background(), dto.SubmitSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, Period: "2025-03",
		Fuel: 40000, ProofFileIDs: []int64{11},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40000), settlement.Total)

	// The proof file ends up attached to the created settlement.
	require.NotNil(t, files.files[11].SettlementID)
	assert.Equal(t, settlement.ID, *files.files[11].SettlementID)
}

func TestSubmit_AccommodationToggleSupersedesLodging(t *testing.T) {
	svc, _, _ := newSettlementFixture(submissionProgram())

	settlement, err := svc.Submit(context.Background(), dto.SubmitSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, Period: "2025-03",
		Lodging: 999999, IncludeAccommodation: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120000), itemAmounts(settlement.Items)[models.ItemAccommodation])

	settlement, err = svc.Submit(context.Background(), dto.SubmitSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, Period: "2025-03",
		Lodging: 50000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), itemAmounts(settlement.Items)[models.ItemAccommodation])
}

func TestSubmit_TotalEqualsItemSum(t *testing.T) {
	svc, settlements, files := newSettlementFixture(submissionProgram())
	files.files[7] = &models.StoredFile{ID: 7, FileName: "fuel.png"}

	settlement, err := svc.Submit(context.Background(), dto.SubmitSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, Period: "2025-03",
		InstructorFee: 400000, Transportation: 30000, Fuel: 20000,
		Other: 15000, OtherDescription: "materials",
		ProofFileIDs: []int64{7},
	})
	require.NoError(t, err)

	var sum int64
	for _, item := range settlement.Items {
		sum += item.Amount
	}
	assert.Equal(t, sum, settlement.Total)
	assert.Equal(t, int64(465000), settlement.Total)

	// The invariant survives a store round-trip.
	reloaded, err := svc.GetSettlementByID(context.Background(), settlement.ID)
	require.NoError(t, err)
	assert.Equal(t, settlement.Total, reloaded.Total)
	assert.Len(t, settlements.byID, 1)
}

func TestSubmit_ProgramScopedPeriodLabel(t *testing.T) {
	svc, _, _ := newSettlementFixture(submissionProgram())

	// Periods are either year-month strings or longer program-scoped labels;
	// both round-trip through the store and the list filter.
	settlement, err := svc.Submit(context.Background(), dto.SubmitSettlementRequest{
		ProgramID: 1, InstructorID: 1, MatchingID: 1, Period: "program-12-2025",
		InstructorFee: 200000,
	})
	require.NoError(t, err)
	assert.Equal(t, "program-12-2025", settlement.Period)

	_, err = svc.Submit(context.Background(), dto.SubmitSettlementRequest{
		ProgramID: 1, InstructorID: 2, MatchingID: 2, Period: "2025-03",
		InstructorFee: 200000,
	})
	require.NoError(t, err)

	listed, err := svc.GetAllSettlements(context.Background(), dto.SettlementListFilter{
		Period: "program-12-2025",
	})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, settlement.ID, listed[0].ID)
	assert.Equal(t, "program-12-2025", listed[0].Period)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc, settlements, _ := newSettlementFixture(submissionProgram())
	settlements.byID[1] = &models.Settlement{
		ID: 1, ProgramID: 1, InstructorID: 1, MatchingID: 1,
		Period: "2025-03", Status: models.SettlementPending,
	}

	_, err := svc.UpdateStatus(context.Background(), 1, models.SettlementStatus("bogus"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	updated, err := svc.UpdateStatus(context.Background(), 1, models.SettlementApproved)
	require.NoError(t, err)
	assert.Equal(t, models.SettlementApproved, updated.Status)
}

func TestRemoveProof_RequiresAttachment(t *testing.T) {
	svc, settlements, files := newSettlementFixture(submissionProgram())
	settlements.byID[1] = &models.Settlement{ID: 1, ProgramID: 1, InstructorID: 1, MatchingID: 1}
	files.files[5] = &models.StoredFile{ID: 5, FileName: "loose.pdf"}

	err := svc.RemoveProof(context.Background(), 1, 5)
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)

	require.NoError(t, svc.AttachProof(context.Background(), 1, 5))
	require.NoError(t, svc.RemoveProof(context.Background(), 1, 5))
	_, err = svc.GetProofFiles(context.Background(), 1)
	require.NoError(t, err)
}
