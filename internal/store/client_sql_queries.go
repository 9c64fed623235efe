package store

const (
	// The session table is keyed by a constant id so at most one row exists.
	createSessionTable = `CREATE TABLE IF NOT EXISTS session (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		token TEXT NOT NULL,
		saved_at TEXT NOT NULL
	);`

	saveSession = `INSERT OR REPLACE INTO session (id, user_id, name, email, token, saved_at)
		VALUES (1, ?, ?, ?, ?, ?);`

	getSession = `SELECT user_id, name, email, token, saved_at
		FROM session
		WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`
)
