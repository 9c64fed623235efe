package service

import (
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
)

// Services groups all server-side services into a single value passed to the
// transport layer.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
}

// NewServices wires the service layer to the storage layer using the
// security parameters from cfg.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ProfileService: NewProfileService(storages.UserRepository, cfg.Auth, logger),
	}
}
