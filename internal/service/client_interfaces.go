package service

import (
	"context"

	"github.com/MKhiriev/go-account-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService drives account access from the terminal client. On
// success the authenticated session is persisted locally so later runs can
// restore it without asking for credentials again.
type ClientAuthService interface {
	Register(ctx context.Context, name, email, password string) (models.Session, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	RestoreSession(ctx context.Context) (models.Session, error)
	Logout(ctx context.Context) error
}

// ClientProfileService exposes the authenticated profile operations to the
// terminal client. All calls require a prior Login or RestoreSession.
type ClientProfileService interface {
	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}
