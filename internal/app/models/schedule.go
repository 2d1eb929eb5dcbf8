package models

import "time"

// ScheduleEntry represents a single same-day teaching slot of a program.
// Multi-day spans are not modeled; StartTime and EndTime are "HH:MM".
type ScheduleEntry struct {
	ID           int64  `json:"id"`
	ProgramID    int64  `json:"programId"`
	RoundID      *int64 `json:"roundId,omitempty"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	InstructorID *int64 `json:"instructorId,omitempty"`
	// At least one of Location and OnlineLink must be present.
	Location   string    `json:"location"`
	OnlineLink string    `json:"onlineLink"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HasVenue reports whether the entry carries a physical location or an online link
func (e *ScheduleEntry) HasVenue() bool {
	return e.Location != "" || e.OnlineLink != ""
}

// ConflictKind identifies what resource a schedule conflict is about
type ConflictKind string

// ConflictInstructor marks a temporal collision in one instructor's schedule.
const ConflictInstructor ConflictKind = "instructor"

// Conflict describes a detected temporal collision between a candidate
// schedule entry and an existing one. Conflicts are advisory; they never
// block saving.
type Conflict struct {
	Kind                  ConflictKind `json:"kind"`
	ConflictingEntryID    int64        `json:"conflictingEntryId"`
	ConflictingEntryTitle string       `json:"conflictingEntryTitle"`
	Message               string       `json:"message"`
}
