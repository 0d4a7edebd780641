package auth

import "github.com/ensigotrace/ensigotrace-backend/pkg/models"

// LoginRequest carries the credentials from the login form. Field-level
// rules are enforced in the service so the error wording stays exact.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the authenticated user (password stripped) and the
// opaque session token.
type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// LogoutRequest identifies the session to drop.
type LogoutRequest struct {
	Token string `json:"token"`
}
