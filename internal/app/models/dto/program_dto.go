package dto

// CreateProgramRequest represents the request to create a program
type CreateProgramRequest struct {
	SponsorID int64  `json:"sponsorId" binding:"required,min=1"`
	Title     string `json:"title" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=online offline hybrid"`
	Format    string `json:"format" binding:"required,oneof=workshop seminar course lecture other"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
}

// UpdateProgramRequest represents the request to update a program
type UpdateProgramRequest struct {
	SponsorID int64  `json:"sponsorId" binding:"required,min=1"`
	Title     string `json:"title" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=online offline hybrid"`
	Format    string `json:"format" binding:"required,oneof=workshop seminar course lecture other"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Status    string `json:"status" binding:"required,oneof=draft active completed cancelled"`
}

// CreateRoundRequest represents the request to add a round to a program
type CreateRoundRequest struct {
	RoundNo   int    `json:"roundNo" binding:"required,min=1"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Capacity  int    `json:"capacity" binding:"min=0"`
}

// UpdateRoundRequest represents the request to update a program round
type UpdateRoundRequest struct {
	RoundNo   int    `json:"roundNo" binding:"required,min=1"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	Capacity  int    `json:"capacity" binding:"min=0"`
	Status    string `json:"status" binding:"required,oneof=planned ongoing completed cancelled"`
}
