package auth

import "tourism/internal/domain"

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=40"`
	Email    string `json:"email" binding:"required,email,max=40"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
