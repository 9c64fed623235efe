package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The session table holds at most one row; saving a new
// session replaces the previous one.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] over the local
// SQLite database, creating the session table if it does not exist yet.
func NewSessionRepository(db *DB, logger *logger.Logger) (SessionRepository, error) {
	logger.Debug().Msg("creating session repository")

	if _, err := db.Exec(createSessionTable); err != nil {
		logger.Err(err).Str("func", "NewSessionRepository").Msg("error creating session table")
		return nil, err
	}

	return &sessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

// SaveSession stores the session, replacing any previously saved one.
// SavedAt is stamped with the current time when unset.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	if session.SavedAt.IsZero() {
		session.SavedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, saveSession,
		session.UserID, session.Name, session.Email, session.Token, session.SavedAt.Format(time.RFC3339))
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error: saving session")
		return err
	}

	return nil
}

// GetSession returns the saved session or [ErrSessionNotFound] when none
// exists.
func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, error) {
	var (
		session models.Session
		savedAt string
	)

	row := r.db.QueryRowContext(ctx, getSession)
	if err := row.Scan(&session.UserID, &session.Name, &session.Email, &session.Token, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		r.logger.Err(err).Str("func", "*sessionRepository.GetSession").Msg("error: scanning session")
		return models.Session{}, err
	}

	if parsed, err := time.Parse(time.RFC3339, savedAt); err == nil {
		session.SavedAt = parsed
	}

	return session, nil
}

// DeleteSession removes the saved session. Deleting a missing session is not
// an error.
func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: deleting session")
		return err
	}

	return nil
}
