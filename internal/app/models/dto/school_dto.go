package dto

// CreateSchoolRequest represents the request to register a partner school
type CreateSchoolRequest struct {
	Name         string `json:"name" binding:"required"`
	Region       string `json:"region" binding:"required"`
	Address      string `json:"address"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// UpdateSchoolRequest represents the request to update a partner school
type UpdateSchoolRequest struct {
	Name         string `json:"name" binding:"required"`
	Region       string `json:"region" binding:"required"`
	Address      string `json:"address"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}
