// Package adapter provides transport-layer abstractions for communicating
// with the account-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for a taken email, [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// account-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. On success it stores the
	// returned bearer token via SetToken and returns the created user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates against the server. On success it stores the
	// returned bearer token via SetToken and returns the user record.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// GetProfile fetches the profile of the authenticated user.
	GetProfile(ctx context.Context) (models.User, error)

	// UpdateProfile applies a partial profile update and returns the profile
	// as stored after the update.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
}
