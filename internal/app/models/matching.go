package models

import (
	"errors"
	"time"
)

// MatchingStatus defines the lifecycle status of an instructor-program matching
type MatchingStatus string

const (
	MatchingPending   MatchingStatus = "pending"
	MatchingActive    MatchingStatus = "active"
	MatchingInactive  MatchingStatus = "inactive"
	MatchingCompleted MatchingStatus = "completed"
	MatchingCancelled MatchingStatus = "cancelled"
)

// IsValid reports whether the status is one of the known lifecycle states
func (s MatchingStatus) IsValid() bool {
	switch s {
	case MatchingPending, MatchingActive, MatchingInactive, MatchingCompleted, MatchingCancelled:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the status permits no further transitions
func (s MatchingStatus) IsFinal() bool {
	return s == MatchingCompleted || s == MatchingCancelled
}

// Matching history actions
const (
	MatchingActionCreated   = "created"
	MatchingActionUpdated   = "updated"
	MatchingActionCancelled = "cancelled"
)

// MatchingEvent is one append-only history record of a matching
type MatchingEvent struct {
	Action     string         `json:"action"`
	FromStatus MatchingStatus `json:"fromStatus,omitempty"`
	ToStatus   MatchingStatus `json:"toStatus"`
	At         time.Time      `json:"at"`
}

// Matching assigns one instructor to one program (optionally one round),
// with lifecycle status and an append-only audit history.
type Matching struct {
	ID           int64          `json:"id"`
	ProgramID    int64          `json:"programId"`
	RoundID      *int64         `json:"roundId,omitempty"`
	InstructorID int64          `json:"instructorId"`
	ScheduleID   *int64         `json:"scheduleId,omitempty"`
	Status       MatchingStatus `json:"status"`
	CancelReason string         `json:"cancelReason,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	CancelledAt  *time.Time     `json:"cancelledAt,omitempty"`
	// History is append-only: one "created" entry, "updated" entries in
	// between, and at most one "cancelled" entry.
	History []MatchingEvent `json:"history"`
}

// ErrMatchingFinal is returned when mutating a completed or cancelled matching.
var ErrMatchingFinal = errors.New("matching is in a final state")

// NewMatching creates a pending matching with its initial history entry
func NewMatching(programID int64, roundID *int64, instructorID int64, scheduleID *int64) *Matching {
	now := time.Now().UTC()
	return &Matching{
		ProgramID:    programID,
		RoundID:      roundID,
		InstructorID: instructorID,
		ScheduleID:   scheduleID,
		Status:       MatchingPending,
		CreatedAt:    now,
		History: []MatchingEvent{
			{Action: MatchingActionCreated, ToStatus: MatchingPending, At: now},
		},
	}
}

// Transition moves the matching to a new non-cancelled status and records
// an "updated" history entry. Cancellation goes through Cancel.
func (m *Matching) Transition(to MatchingStatus) error {
	if !to.IsValid() || to == MatchingCancelled {
		return errors.New("invalid target status")
	}
	if m.Status.IsFinal() {
		return ErrMatchingFinal
	}
	if to == m.Status {
		return nil
	}

	m.History = append(m.History, MatchingEvent{
		Action:     MatchingActionUpdated,
		FromStatus: m.Status,
		ToStatus:   to,
		At:         time.Now().UTC(),
	})
	m.Status = to
	return nil
}

// Cancel cancels the matching, setting the cancellation timestamp exactly
// once and appending the single "cancelled" history entry.
func (m *Matching) Cancel(reason string) error {
	if m.Status.IsFinal() {
		return ErrMatchingFinal
	}

	now := time.Now().UTC()
	m.History = append(m.History, MatchingEvent{
		Action:     MatchingActionCancelled,
		FromStatus: m.Status,
		ToStatus:   MatchingCancelled,
		At:         now,
	})
	m.Status = MatchingCancelled
	m.CancelReason = reason
	m.CancelledAt = &now
	return nil
}

// CountsAsWorkload reports whether the matching counts toward an
// instructor's current workload for recommendation scoring.
func (m *Matching) CountsAsWorkload() bool {
	return m.Status == MatchingActive || m.Status == MatchingPending
}
