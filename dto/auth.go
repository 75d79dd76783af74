package dto

import (
	"time"

	"github.com/bugify-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims. The subject registered claim
// carries the user's email.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest represents registration data. Role defaults to "user" when
// omitted.
type RegisterRequest struct {
	Name            string      `json:"name" binding:"required,min=2,max=100"`
	Email           string      `json:"email" binding:"required,email"`
	Password        string      `json:"password" binding:"required,min=6,max=100"`
	ConfirmPassword string      `json:"confirm_password" binding:"required,min=6,max=100"`
	Role            models.Role `json:"role" binding:"omitempty,oneof=admin developer user"`
}

// LoginRequest represents login credentials. Role is part of the identity:
// an email cannot authenticate under a role it was not registered with.
type LoginRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required"`
	Role     models.Role `json:"role" binding:"required,oneof=admin developer user"`
}

// AuthResponse represents the response after a successful login.
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}
