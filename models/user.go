package models

import "time"

// User represents an account record used for authentication and profile
// management. Credential material must never leave the store/service
// boundary.
type User struct {
	// UserID is the unique identifier of the account. It is assigned by the
	// database on creation and is immutable afterwards. It also serves as the
	// subject claim of issued bearer tokens.
	UserID int64 `json:"id"`

	// Name is the display name of the user. Non-empty, mutable.
	Name string `json:"name"`

	// Email is the unique login identifier of the account. Stored
	// case-sensitively; uniqueness is enforced by the database constraint.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the current password. It is never
	// serialised to JSON and is only populated by FindUserByEmail, the single
	// lookup that is allowed to surface it.
	PasswordHash string `json:"-"`

	// CreatedAt is set once by the database at creation time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Projection returns a copy of the user safe for output-facing use:
// identical to the receiver except the password hash is cleared.
func (u User) Projection() User {
	u.PasswordHash = ""
	return u
}

// UserUpdate describes a partial profile update. A nil field means the
// column is left untouched; a non-nil field overwrites it. Services only
// ever set a pointer for non-empty input, so "explicitly cleared" does not
// occur at this layer.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update carries no fields at all.
// The store rejects such updates; callers are expected to check first.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil
}

// ProfileUpdate is the API-level counterpart of [UserUpdate]: it carries the
// plain-text password, which the service layer hashes before it reaches the
// store. Fields omitted from the request stay nil.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Password *string
}

// IsEmpty reports whether no field was supplied at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}
