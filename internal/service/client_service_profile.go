package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/models"
)

type clientProfileService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

// NewClientProfileService wires the client profile operations to the server
// adapter and the local session store.
func NewClientProfileService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

// GetProfile fetches the authenticated profile from the server.
func (p *clientProfileService) GetProfile(ctx context.Context) (models.User, error) {
	if p.adapter.Token() == "" {
		return models.User{}, ErrNotLoggedIn
	}

	user, err := p.adapter.GetProfile(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("fetching profile: %w", err)
	}

	return user, nil
}

// UpdateProfile pushes a partial profile update to the server and refreshes
// the cached session fields on success.
func (p *clientProfileService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	if p.adapter.Token() == "" {
		return models.User{}, ErrNotLoggedIn
	}
	if update.IsEmpty() {
		return models.User{}, ErrMissingFields
	}

	req := models.UpdateProfileRequest{}
	if update.Name != nil {
		req.Name = *update.Name
	}
	if update.Email != nil {
		req.Email = *update.Email
	}
	if update.Password != nil {
		req.Password = *update.Password
	}

	user, err := p.adapter.UpdateProfile(ctx, req)
	if err != nil {
		return models.User{}, fmt.Errorf("updating profile: %w", err)
	}

	p.refreshSession(ctx, user)

	return user, nil
}

func (p *clientProfileService) refreshSession(ctx context.Context, user models.User) {
	session, err := p.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		return
	}

	session.Name = user.Name
	session.Email = user.Email
	if err := p.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		p.logger.Err(err).Msg("refreshing cached session failed")
	}
}
