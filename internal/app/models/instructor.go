package models

import (
	"strings"
	"time"
)

// Instructor represents an outreach instructor in the pool
type Instructor struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Region      string    `json:"region"`
	Specialties []string  `json:"specialties"`
	// Rating is on a 0.0-5.0 scale; nil when the instructor has not been rated.
	Rating *float64 `json:"rating,omitempty"`
	// Experience is a free-text descriptor; only its presence is scored.
	Experience string `json:"experience"`
	// AvailableTime is informational only and not enforced by conflict checks.
	AvailableTime string    `json:"availableTime"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HasExperience reports whether the instructor carries a non-empty experience descriptor
func (i *Instructor) HasExperience() bool {
	return strings.TrimSpace(i.Experience) != ""
}
