package models

import "time"

// SponsorKind defines the kind of sponsoring organization
type SponsorKind string

const (
	SponsorCompany    SponsorKind = "company"
	SponsorFoundation SponsorKind = "foundation"
	SponsorGovernment SponsorKind = "government"
	SponsorOther      SponsorKind = "other"
)

// Sponsor represents an organization funding outreach programs
type Sponsor struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Kind         SponsorKind `json:"kind"`
	ContactName  string      `json:"contactName"`
	ContactEmail string      `json:"contactEmail"`
	ContactPhone string      `json:"contactPhone"`
	Memo         string      `json:"memo"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
