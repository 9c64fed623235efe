package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-keeper/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	// password_hash is deliberately not selected: lookups by ID feed
	// output-facing profile reads, and only FindUserByEmail may surface
	// the hash.
	findUserByID = `SELECT user_id, name, email, created_at
    FROM users
    WHERE user_id = $1;`
)

// buildUpdateUserQuery builds an UPDATE statement containing only the fields
// present in the update. Returns [ErrNothingToUpdate] when the update is
// empty.
func buildUpdateUserQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := sq.Update(models.User{}.TableName()).
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	query, args, err := builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, name, email, password_hash, created_at").
		ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}
