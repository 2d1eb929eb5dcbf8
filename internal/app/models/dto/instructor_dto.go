package dto

// CreateInstructorRequest represents the request to register an instructor
type CreateInstructorRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone"`
	Region        string   `json:"region" binding:"required"`
	Specialties   []string `json:"specialties"`
	Rating        *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Experience    string   `json:"experience"`
	AvailableTime string   `json:"availableTime"`
}

// UpdateInstructorRequest represents the request to update an instructor
type UpdateInstructorRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone"`
	Region        string   `json:"region" binding:"required"`
	Specialties   []string `json:"specialties"`
	Rating        *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Experience    string   `json:"experience"`
	AvailableTime string   `json:"availableTime"`
	Active        *bool    `json:"active"`
}

// InstructorListFilter carries list query filters for instructors
type InstructorListFilter struct {
	Region    string `form:"region"`
	Specialty string `form:"specialty"`
	Active    *bool  `form:"active"`
}
