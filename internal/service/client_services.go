package service

import (
	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
)

// ClientServices groups the client-side services handed to the TUI.
type ClientServices struct {
	AuthService    ClientAuthService
	ProfileService ClientProfileService
}

// NewClientServices wires the client service layer to the server adapter and
// the local storage layer.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(localStore, serverAdapter, logger),
		ProfileService: NewClientProfileService(localStore, serverAdapter, logger),
	}
}
