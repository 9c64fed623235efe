package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
	"github.com/MKhiriev/go-account-keeper/internal/utils"
	"github.com/MKhiriev/go-account-keeper/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	logger     *logger.Logger
}

// NewClientAuthService wires the client auth flow to the server adapter and
// the local session store.
func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, logger: logger}
}

// Register creates an account on the server and persists the resulting
// session locally. The adapter keeps the bearer token for subsequent calls.
func (a *clientAuthService) Register(ctx context.Context, name, email, password string) (models.Session, error) {
	if name == "" || email == "" || password == "" {
		return models.Session{}, ErrMissingFields
	}

	user, err := a.adapter.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return a.saveSession(ctx, user)
}

// Login authenticates against the server and persists the resulting session
// locally.
func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	if email == "" || password == "" {
		return models.Session{}, ErrMissingFields
	}

	user, err := a.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	return a.saveSession(ctx, user)
}

// RestoreSession loads the locally saved session, if any, and primes the
// adapter with its bearer token. Returns ErrNotLoggedIn when no session is
// stored.
func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, ErrNotLoggedIn
		}
		return models.Session{}, fmt.Errorf("loading saved session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

// Logout drops the saved session and clears the adapter token. Logging out
// without a saved session is not an error.
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.localStore.SessionRepository.DeleteSession(ctx)
}

func (a *clientAuthService) saveSession(ctx context.Context, user models.User) (models.Session, error) {
	token := a.adapter.Token()

	// The subject claim names the session owner; the response body merely
	// echoes it. Fall back to the body when the claim cannot be read.
	userID := user.UserID
	if id, err := utils.ParseUserIDFromJWT(token); err == nil {
		userID = id
	}

	session := models.Session{
		UserID:  userID,
		Name:    user.Name,
		Email:   user.Email,
		Token:   token,
		SavedAt: time.Now(),
	}

	if err := a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		// the session is still usable in-memory, a persistence failure only
		// costs the restore on next start
		a.logger.Err(err).Msg("saving session locally failed")
	}

	return session, nil
}
