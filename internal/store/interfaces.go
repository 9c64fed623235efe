package store

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the low-level persistence contract for user accounts.
//
// Implementations translate driver-level failures into the package sentinel
// errors: duplicate emails surface as [ErrEmailAlreadyExists] and empty
// result sets as [ErrUserNotFound].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
}

// SessionRepository stores the client's authenticated session locally so the
// TUI can restore it between runs. A single session row is kept at a time.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context) (models.Session, error)
	DeleteSession(ctx context.Context) error
}
