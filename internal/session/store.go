package session

import (
	"context"
	"database/sql"
	"time"

	"taskdeck/internal/domain"
	"taskdeck/internal/errors"

	_ "modernc.org/sqlite"
)

// Reader exposes the persisted session to the rest of the application.
// The gateway reads tokens from it; nothing here interprets them.
type Reader interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
	Token(ctx context.Context) (string, error)
}

// Store is the full persisted-session contract: the Reader plus the
// login/logout lifecycle.
type Store interface {
	Reader
	Save(ctx context.Context, user domain.User, token string) error
	Clear(ctx context.Context) error
	Close() error
}

// SQLiteStore persists at most one session in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS session (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	user_id TEXT NOT NULL,
	user_name TEXT NOT NULL,
	user_email TEXT NOT NULL,
	token TEXT NOT NULL,
	saved_at TEXT NOT NULL
)`

// New opens (or creates) the session database at the given path.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open session store", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("create session schema", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save stores the session, replacing any previous one.
func (s *SQLiteStore) Save(ctx context.Context, user domain.User, token string) error {
	query := `
	INSERT OR REPLACE INTO session (id, user_id, user_name, user_email, token, saved_at)
	VALUES (1, ?, ?, ?, ?, ?)`

	savedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, token, savedAt); err != nil {
		return errors.NewDatabaseError("save session", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return errors.NewDatabaseError("clear session", err)
	}
	return nil
}

// CurrentUser returns the persisted user, or a not-found error when no
// session exists.
func (s *SQLiteStore) CurrentUser(ctx context.Context) (*domain.User, error) {
	record, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		ID:    record.userID,
		Name:  record.userName,
		Email: record.userEmail,
	}
	return &user, nil
}

// Token returns the persisted token, or a not-found error when no session
// exists.
func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	record, err := s.current(ctx)
	if err != nil {
		return "", err
	}
	return record.token, nil
}

type sessionRecord struct {
	userID    string
	userName  string
	userEmail string
	token     string
	savedAt   string
}

func (s *SQLiteStore) current(ctx context.Context) (*sessionRecord, error) {
	query := `
	SELECT user_id, user_name, user_email, token, saved_at
	FROM session
	WHERE id = 1`

	record := &sessionRecord{}
	row := s.db.QueryRowContext(ctx, query)
	err := row.Scan(&record.userID, &record.userName, &record.userEmail, &record.token, &record.savedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("session", "current")
	}
	if err != nil {
		return nil, errors.NewDatabaseError("read session", err)
	}
	return record, nil
}
