package service

import "errors"

var (
	// ErrMissingFields is returned when a request lacks required input
	// (empty name, email or password on register; empty email or password
	// on login; an update with no fields at all).
	ErrMissingFields = errors.New("required fields are missing")

	// ErrInvalidCredentials is returned on login when either no account owns
	// the email or the password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed wraps failures while signing a new JWT.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every JWT validation failure
	// (expired, bad signature, wrong issuer, malformed) into a single error
	// so callers need not inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Client-side errors wrapping failures of calls against the remote server.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotLoggedIn      = errors.New("not logged in")
)
