package models

import "time"

// School represents a partner school where programs take place
type School struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Region       string    `json:"region"`
	Address      string    `json:"address"`
	ContactName  string    `json:"contactName"`
	ContactPhone string    `json:"contactPhone"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
