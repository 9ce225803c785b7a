package dto

import "github.com/RouckBlankOo/AdminDashboardImmo/internal/domain"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the body POST /auth/login returns on success.
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	Phase         string       `json:"phase"`
	Error         string       `json:"error,omitempty"`
}
