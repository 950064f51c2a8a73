package dto

import "time"

// RegisterRequest represents the payload for user registration
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email" example:"jane.doe@mail.utoronto.ca"`
	Password  string `json:"password" binding:"required,min=8" example:"Password123!"`
	FirstName string `json:"firstName" binding:"required,min=2,max=50" example:"Jane"`
	LastName  string `json:"lastName" binding:"required,min=2,max=50" example:"Doe"`
}

// LoginRequest represents the payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane.doe@mail.utoronto.ca"`
	Password string `json:"password" binding:"required" example:"Password123!"`
}

// RefreshTokenRequest represents the payload for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents the token pair returned after authentication
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int64  `json:"expiresIn" example:"900"`
	RefreshExpiresIn int64  `json:"refreshExpiresIn" example:"604800"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// UserResponse represents user details returned by the API
type UserResponse struct {
	ID          int64      `json:"id" example:"42"`
	Email       string     `json:"email" example:"jane.doe@mail.utoronto.ca"`
	FirstName   string     `json:"firstName" example:"Jane"`
	LastName    string     `json:"lastName" example:"Doe"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}
