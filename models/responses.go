package models

// Response is the envelope returned by every API endpoint. Success carries
// the outcome flag, Message a human-readable description, and Data the
// optional payload (omitted entirely on failures).
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// AuthData is the payload of successful register and login responses.
// User is always the safe projection; Token is the compact JWT string.
type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// ProfileData is the payload of successful profile read and update responses.
type ProfileData struct {
	User User `json:"user"`
}

// RegisterRequest is the body accepted by POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body accepted by PUT /api/user/profile.
// Empty fields are treated as omitted.
type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}
