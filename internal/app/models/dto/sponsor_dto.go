package dto

// CreateSponsorRequest represents the request to create a sponsor
type CreateSponsorRequest struct {
	Name         string `json:"name" binding:"required"`
	Kind         string `json:"kind" binding:"required,oneof=company foundation government other"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	Memo         string `json:"memo"`
}

// UpdateSponsorRequest represents the request to update a sponsor
type UpdateSponsorRequest struct {
	Name         string `json:"name" binding:"required"`
	Kind         string `json:"kind" binding:"required,oneof=company foundation government other"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
	Memo         string `json:"memo"`
}
