package dto

import "github.com/edulink/outreach-admin/internal/app/models"

// CalculateSettlementRequest represents the derivation-path request: a
// suggested item list computed from program attributes.
type CalculateSettlementRequest struct {
	ProgramID    int64 `json:"programId" binding:"required,min=1"`
	InstructorID int64 `json:"instructorId" binding:"required,min=1"`
	MatchingID   int64 `json:"matchingId" binding:"required,min=1"`
	// BaseHours defaults to 1 when omitted.
	BaseHours int `json:"baseHours" binding:"omitempty,min=1"`
	// Eligible optional items are included only when explicitly toggled on.
	IncludeTransportation bool `json:"includeTransportation"`
	LongDistance          bool `json:"longDistance"`
	IncludeAccommodation  bool `json:"includeAccommodation"`
}

// CalculateSettlementResponse carries suggested items plus eligibility flags
// so the operator can see which optional items the program qualifies for.
type CalculateSettlementResponse struct {
	Items                  []models.SettlementItem `json:"items"`
	Total                  int64                   `json:"total"`
	TransportationEligible bool                    `json:"transportationEligible"`
	AccommodationEligible  bool                    `json:"accommodationEligible"`
}

// SubmitSettlementRequest represents the submission path: authoritative
// operator-entered cost fields. Zero amounts are treated as absent.
type SubmitSettlementRequest struct {
	ProgramID    int64  `json:"programId" binding:"required,min=1"`
	InstructorID int64  `json:"instructorId" binding:"required,min=1"`
	MatchingID   int64  `json:"matchingId" binding:"required,min=1"`
	// Period is either a year-month string (2025-03) or a program-scoped label.
	Period string `json:"period" binding:"required,max=100"`

	InstructorFee  int64 `json:"instructorFee" binding:"min=0"`
	Transportation int64 `json:"transportation" binding:"min=0"`
	Lodging        int64 `json:"lodging" binding:"min=0"`
	Fuel           int64 `json:"fuel" binding:"min=0"`
	Other          int64 `json:"other" binding:"min=0"`
	// OtherDescription labels the "other" item when present.
	OtherDescription string `json:"otherDescription"`
	// IncludeAccommodation always contributes the flat accommodation amount,
	// regardless of any entered value.
	IncludeAccommodation bool `json:"includeAccommodation"`
	// ProofFileIDs reference previously uploaded files; required when Fuel > 0.
	ProofFileIDs []int64 `json:"proofFileIds"`
}

// UpdateSettlementStatusRequest represents a settlement status transition
type UpdateSettlementStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending calculated approved paid cancelled"`
}

// SettlementListFilter carries list query filters for settlements
type SettlementListFilter struct {
	ProgramID    *int64 `form:"programId"`
	InstructorID *int64 `form:"instructorId"`
	Period       string `form:"period"`
	Status       string `form:"status"`
}
