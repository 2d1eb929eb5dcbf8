package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Directory errors
var (
	ErrSponsorNotFound      = errors.New("sponsor not found")
	ErrSponsorAlreadyExists = errors.New("sponsor with this name already exists")
	ErrSchoolNotFound       = errors.New("school not found")
	ErrInstructorNotFound   = errors.New("instructor not found")
	ErrInstructorEmailTaken = errors.New("instructor with this email already exists")
	ErrAdminNotFound        = errors.New("admin user not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
)

// Program and scheduling errors
var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrRoundNotFound        = errors.New("program round not found")
	ErrRoundOutsideProgram  = errors.New("round dates fall outside the program date range")
	ErrRoundOverlap         = errors.New("round dates overlap another round of the program")
	ErrScheduleNotFound     = errors.New("schedule entry not found")
	ErrScheduleNeedsVenue   = errors.New("schedule entry requires a location or an online link")
	ErrInvalidTimeRange     = errors.New("start time must be before end time")
	ErrMatchingNotFound     = errors.New("matching not found")
	ErrMatchingFinalized    = errors.New("matching already cancelled or completed")
	ErrSettlementNotFound   = errors.New("settlement not found")
	ErrNoCostItems          = errors.New("at least one cost category is required")
	ErrFuelProofRequired    = errors.New("fuel cost requires at least one proof file")
	ErrFileNotFound         = errors.New("file not found")
	ErrNegativeAmount       = errors.New("item amount must not be negative")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a new custom error for failed precondition checks
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
