package dto

import "github.com/edulink/outreach-admin/internal/app/models"

// CreateMatchingRequest represents the request to assign an instructor to a program
type CreateMatchingRequest struct {
	ProgramID    int64  `json:"programId" binding:"required,min=1"`
	RoundID      *int64 `json:"roundId" binding:"omitempty,min=1"`
	InstructorID int64  `json:"instructorId" binding:"required,min=1"`
	ScheduleID   *int64 `json:"scheduleId" binding:"omitempty,min=1"`
}

// UpdateMatchingStatusRequest represents a non-cancelling status transition
type UpdateMatchingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending active inactive completed"`
}

// CancelMatchingRequest represents the request to cancel a matching
type CancelMatchingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CandidateResponse represents one ranked instructor recommendation
type CandidateResponse struct {
	Instructor *models.Instructor `json:"instructor"`
	Score      int                `json:"score"`
	Reasons    []string           `json:"reasons"`
}
