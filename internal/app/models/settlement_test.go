package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settlementTotalMatchesItems(t *testing.T, s *Settlement) {
	t.Helper()
	var sum int64
	for _, item := range s.Items {
		sum += item.Amount
	}
	assert.Equal(t, sum, s.Total, "total must equal the sum of item amounts")
}

func TestSettlementTotalFollowsMutations(t *testing.T) {
	s := &Settlement{ProgramID: 1, InstructorID: 2, MatchingID: 3, Period: "2025-03"}

	require.NoError(t, s.AddItem(SettlementItem{Type: ItemInstructorFee, Description: "fee", Amount: 200000}))
	settlementTotalMatchesItems(t, s)
	assert.Equal(t, int64(200000), s.Total)

	require.NoError(t, s.AddItem(SettlementItem{Type: ItemTransportation, Description: "bus", Amount: 30000}))
	settlementTotalMatchesItems(t, s)
	assert.Equal(t, int64(230000), s.Total)

	require.NoError(t, s.RemoveItem(1))
	settlementTotalMatchesItems(t, s)
	assert.Equal(t, int64(200000), s.Total)

	require.NoError(t, s.SetItems([]SettlementItem{
		{Type: ItemInstructorFee, Description: "fee", Amount: 150000},
		{Type: ItemAccommodation, Description: "lodging", Amount: 120000},
		{Type: ItemOther, Description: "materials", Amount: 5000},
	}))
	settlementTotalMatchesItems(t, s)
	assert.Equal(t, int64(275000), s.Total)
}

func TestSettlementRejectsNegativeAmounts(t *testing.T) {
	s := &Settlement{}

	err := s.AddItem(SettlementItem{Type: ItemOther, Amount: -1})
	assert.ErrorIs(t, err, ErrNegativeItemAmount)
	assert.Empty(t, s.Items)
	assert.Zero(t, s.Total)

	err = s.SetItems([]SettlementItem{
		{Type: ItemInstructorFee, Amount: 1000},
		{Type: ItemOther, Amount: -5},
	})
	assert.ErrorIs(t, err, ErrNegativeItemAmount)
	assert.Empty(t, s.Items)
}

func TestSettlementRemoveItemOutOfRange(t *testing.T) {
	s := &Settlement{}
	require.NoError(t, s.AddItem(SettlementItem{Type: ItemInstructorFee, Amount: 100}))

	assert.Error(t, s.RemoveItem(-1))
	assert.Error(t, s.RemoveItem(1))
	assert.Len(t, s.Items, 1)
}

func TestSettlementRoundTripPreservesTotal(t *testing.T) {
	s := &Settlement{ID: 9, ProgramID: 1, InstructorID: 2, MatchingID: 3, Period: "2025-03", Status: SettlementCalculated}
	require.NoError(t, s.SetItems([]SettlementItem{
		{Type: ItemInstructorFee, Description: "fee", Amount: 250000},
		{Type: ItemTransportation, Description: "ktx", Amount: 100000},
	}))

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var restored Settlement
	require.NoError(t, json.Unmarshal(raw, &restored))
	restored.RecalculateTotal()

	settlementTotalMatchesItems(t, &restored)
	assert.Equal(t, s.Total, restored.Total)
}
