package domain

import "time"

type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username" validate:"required,max=40"`
	Email        string     `json:"email" validate:"required,email,max=40"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       string     `json:"status,omitempty"`
	LastOnline   *time.Time `json:"last_online,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
