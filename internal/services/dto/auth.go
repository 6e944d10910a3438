package dto

import "hustled_backend/internal/models"

// SignupRequest is the payload for both signup endpoints; the route
// decides the role, never the client.
type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	UserID   uint            `json:"userId"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     models.UserRole `json:"role"`
	Token    string          `json:"token,omitempty"`
}

// APIResponse is the generic {success,message} envelope.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
