package dto

import "github.com/edulink/outreach-admin/internal/app/models"

// ScheduleEntryRequest represents the request to create or update a schedule
// entry. The same shape doubles as the candidate payload for conflict checks.
type ScheduleEntryRequest struct {
	ProgramID    int64  `json:"programId" binding:"required,min=1"`
	RoundID      *int64 `json:"roundId" binding:"omitempty,min=1"`
	Title        string `json:"title" binding:"required"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime    string `json:"startTime" binding:"required,datetime=15:04"`
	EndTime      string `json:"endTime" binding:"required,datetime=15:04"`
	InstructorID *int64 `json:"instructorId" binding:"omitempty,min=1"`
	Location     string `json:"location"`
	OnlineLink   string `json:"onlineLink" binding:"omitempty,url"`
}

// ToModel converts the request to a schedule entry model
func (r *ScheduleEntryRequest) ToModel() *models.ScheduleEntry {
	return &models.ScheduleEntry{
		ProgramID:    r.ProgramID,
		RoundID:      r.RoundID,
		Title:        r.Title,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		InstructorID: r.InstructorID,
		Location:     r.Location,
		OnlineLink:   r.OnlineLink,
	}
}

// CheckConflictsRequest represents a validate-time conflict check for a
// candidate entry that need not be persisted yet.
type CheckConflictsRequest struct {
	Candidate ScheduleEntryRequest `json:"candidate" binding:"required"`
	// ExcludeScheduleID excludes the entry itself when re-validating an edit.
	ExcludeScheduleID *int64 `json:"excludeScheduleId" binding:"omitempty,min=1"`
}

// ConflictListResponse represents the advisory result of a conflict check
type ConflictListResponse struct {
	Conflicts []models.Conflict `json:"conflicts"`
}

// ResolvedConflict pairs a conflict with the full colliding entry for display
type ResolvedConflict struct {
	Conflict models.Conflict       `json:"conflict"`
	Entry    *models.ScheduleEntry `json:"entry,omitempty"`
}
