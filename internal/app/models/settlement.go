package models

import (
	"errors"
	"time"
)

// SettlementStatus defines the lifecycle status of a settlement
type SettlementStatus string

const (
	SettlementPending    SettlementStatus = "pending"
	SettlementCalculated SettlementStatus = "calculated"
	SettlementApproved   SettlementStatus = "approved"
	SettlementPaid       SettlementStatus = "paid"
	SettlementCancelled  SettlementStatus = "cancelled"
)

// IsValid reports whether the status is one of the known lifecycle states
func (s SettlementStatus) IsValid() bool {
	switch s {
	case SettlementPending, SettlementCalculated, SettlementApproved, SettlementPaid, SettlementCancelled:
		return true
	default:
		return false
	}
}

// SettlementItemType identifies the kind of a settlement line item
type SettlementItemType string

const (
	ItemInstructorFee  SettlementItemType = "instructor_fee"
	ItemTransportation SettlementItemType = "transportation"
	ItemAccommodation  SettlementItemType = "accommodation"
	ItemOther          SettlementItemType = "other"
)

// SettlementItem is one typed line item of a settlement. Amounts are in the
// base currency unit and must not be negative.
type SettlementItem struct {
	Type        SettlementItemType `json:"type"`
	Description string             `json:"description"`
	Amount      int64              `json:"amount"`
}

// ErrNegativeItemAmount is returned when an item carries a negative amount.
var ErrNegativeItemAmount = errors.New("settlement item amount must not be negative")

// Settlement is the payment record for one matching, composed of typed line
// items. Total always equals the sum of item amounts; every mutation of the
// item list goes through methods that recompute it.
type Settlement struct {
	ID           int64            `json:"id"`
	ProgramID    int64            `json:"programId"`
	InstructorID int64            `json:"instructorId"`
	MatchingID   int64            `json:"matchingId"`
	// Period is either a "YYYY-MM" month label or a program-scoped label.
	Period    string           `json:"period"`
	Items     []SettlementItem `json:"items"`
	Total     int64            `json:"total"`
	Status    SettlementStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// RecalculateTotal re-derives Total from the current items
func (s *Settlement) RecalculateTotal() {
	var total int64
	for _, item := range s.Items {
		total += item.Amount
	}
	s.Total = total
}

// AddItem appends a line item and recomputes the total
func (s *Settlement) AddItem(item SettlementItem) error {
	if item.Amount < 0 {
		return ErrNegativeItemAmount
	}
	s.Items = append(s.Items, item)
	s.RecalculateTotal()
	return nil
}

// RemoveItem deletes the item at index i and recomputes the total
func (s *Settlement) RemoveItem(i int) error {
	if i < 0 || i >= len(s.Items) {
		return errors.New("settlement item index out of range")
	}
	s.Items = append(s.Items[:i], s.Items[i+1:]...)
	s.RecalculateTotal()
	return nil
}

// SetItems replaces the whole item list and recomputes the total
func (s *Settlement) SetItems(items []SettlementItem) error {
	for _, item := range items {
		if item.Amount < 0 {
			return ErrNegativeItemAmount
		}
	}
	s.Items = items
	s.RecalculateTotal()
	return nil
}
