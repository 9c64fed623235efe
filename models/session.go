package models

import "time"

// Session is the client-side record of an authenticated login. It is
// persisted in the local SQLite database so the terminal client can restore
// the bearer token and the cached profile between runs.
type Session struct {
	UserID  int64     `json:"user_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// IsZero reports whether the session carries no token.
func (s Session) IsZero() bool {
	return s.Token == ""
}
