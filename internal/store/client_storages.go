package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer. Currently it
// holds only [SessionRepository]; additional repositories can be added here
// as the feature set grows.
type ClientStorages struct {
	// SessionRepository is the SQLite-backed repository persisting the
	// authenticated session between client runs.
	SessionRepository SessionRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens an SQLite connection to the session
// database path from cfg (creating the file if it does not yet exist) and
// bootstraps the session schema.
//
// Returns an error if the database connection cannot be established or if
// schema creation fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	sessions, err := NewSessionRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("session repository init error: %w", err)
	}

	return &ClientStorages{
		SessionRepository: sessions,
	}, nil
}
