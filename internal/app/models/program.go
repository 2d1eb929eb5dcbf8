package models

import "time"

// ProgramType defines the delivery mode of a program
type ProgramType string

const (
	ProgramOnline  ProgramType = "online"
	ProgramOffline ProgramType = "offline"
	ProgramHybrid  ProgramType = "hybrid"
)

// ProgramFormat defines the teaching format of a program
type ProgramFormat string

const (
	FormatWorkshop ProgramFormat = "workshop"
	FormatSeminar  ProgramFormat = "seminar"
	FormatCourse   ProgramFormat = "course"
	FormatLecture  ProgramFormat = "lecture"
	FormatOther    ProgramFormat = "other"
)

// ProgramStatus defines the lifecycle status of a program
type ProgramStatus string

const (
	ProgramDraft     ProgramStatus = "draft"
	ProgramActive    ProgramStatus = "active"
	ProgramCompleted ProgramStatus = "completed"
	ProgramCancelled ProgramStatus = "cancelled"
)

// Program represents an outreach program funded by a sponsor
type Program struct {
	ID        int64         `json:"id"`
	SponsorID int64         `json:"sponsorId"`
	Title     string        `json:"title"`
	Type      ProgramType   `json:"type"`
	Format    ProgramFormat `json:"format"`
	// StartDate and EndDate use the DateLayout format.
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Status    ProgramStatus `json:"status"`
	Rounds    []*Round      `json:"rounds,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// RoundStatus defines the lifecycle status of a program round
type RoundStatus string

const (
	RoundPlanned   RoundStatus = "planned"
	RoundOngoing   RoundStatus = "ongoing"
	RoundCompleted RoundStatus = "completed"
	RoundCancelled RoundStatus = "cancelled"
)

// Round represents a sub-occurrence of a program with its own date range and capacity
type Round struct {
	ID        int64       `json:"id"`
	ProgramID int64       `json:"programId"`
	RoundNo   int         `json:"roundNo"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Capacity  int         `json:"capacity"`
	Status    RoundStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ContainsRange reports whether a date range nests inside the program's range.
// ISO dates compare correctly as strings.
func (p *Program) ContainsRange(startDate, endDate string) bool {
	return p.StartDate <= startDate && endDate <= p.EndDate
}

// RangesOverlap reports whether two inclusive date ranges intersect
func RangesOverlap(startA, endA, startB, endB string) bool {
	return startA <= endB && startB <= endA
}
