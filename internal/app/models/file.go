package models

import "time"

// StoredFile represents an uploaded proof file. SettlementID is nil until
// the file is attached to a settlement by a cost submission.
type StoredFile struct {
	ID           int64     `json:"id"`
	SettlementID *int64    `json:"settlementId,omitempty"`
	FileName     string    `json:"fileName"`
	StoredPath   string    `json:"storedPath"`
	FileSize     int64     `json:"fileSize"`
	FileType     string    `json:"fileType"`
	CreatedAt    time.Time `json:"createdAt"`
}
