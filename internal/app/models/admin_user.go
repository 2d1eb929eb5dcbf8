package models

import "time"

// AdminRole defines the operator role type
type AdminRole string

const (
	RoleAdmin    AdminRole = "ADMIN"
	RoleOperator AdminRole = "OPERATOR"
)

// AdminUser represents a console operator account
type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         AdminRole `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RefreshToken represents a stored refresh token for an admin user
type RefreshToken struct {
	ID        int64     `json:"id"`
	AdminID   int64     `json:"adminId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"createdAt"`
}
