package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create or update a
	// user fails because another account already owns the requested email.
	// It maps the PostgreSQL unique_violation (23505) on the users.email
	// constraint into a domain-level error.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrNothingToUpdate is returned by [UserRepository.UpdateUser] when the
	// supplied update carries no fields to change.
	ErrNothingToUpdate = errors.New("no fields to update")

	// ErrSessionNotFound is returned by the client session repository when no
	// saved session exists in the local database.
	ErrSessionNotFound = errors.New("session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty SET clause or unsupported argument type).
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
