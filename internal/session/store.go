// Package session persists the operator's bearer token and profile between
// console runs in a local SQLite file, so a restart does not force a fresh
// sign-in while the token is still accepted by the remote API.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

// Slot names of the two persisted values. The token and the profile are
// stored separately so a partially written row never yields a token without
// an owner.
const (
	slotAccessToken = "access_token"
	slotUserInfo    = "user_info"
)

const createSessionTable = `
CREATE TABLE IF NOT EXISTS session (
    slot  TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// Store reads and writes the persisted session.
type Store struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewStore opens (creating if necessary) the SQLite session file at dsn and
// ensures the session table exists.
func NewStore(ctx context.Context, dsn string, log *logger.Logger) (*Store, error) {
	if err := createSessionFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewStore").Msg("error creating session file")
		return nil, fmt.Errorf("error creating session file")
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewStore").Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database")
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewStore").Msg("error connecting session database (ping)")
		return nil, err
	}

	if _, err := conn.ExecContext(ctx, createSessionTable); err != nil {
		log.Err(err).Str("func", "NewStore").Msg("error creating session table")
		return nil, err
	}
	log.Debug().Str("func", "NewStore").Msg("session store ready")

	return newStore(conn, log), nil
}

// newStore wires a Store around an already opened connection. Split from
// NewStore so tests can inject a sqlmock database.
func newStore(db *sql.DB, log *logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log,
	}
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists the given session, replacing any previous one. Token and
// profile are upserted in a single transaction.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	profileJSON, err := json.Marshal(sess.Profile)
	if err != nil {
		s.logger.Err(err).Str("func", "*Store.Save").Msg("error marshaling profile")
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", "*Store.Save").Msg("error starting transaction")
		return err
	}
	defer tx.Rollback()

	slots := []struct {
		slot  string
		value string
	}{
		{slotAccessToken, sess.Token},
		{slotUserInfo, string(profileJSON)},
	}

	for _, pair := range slots {
		query, args, err := sq.Insert("session").
			Columns("slot", "value").
			Values(pair.slot, pair.value).
			Suffix("ON CONFLICT(slot) DO UPDATE SET value = excluded.value").
			ToSql()
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			s.logger.Err(err).Str("func", "*Store.Save").Str("slot", pair.slot).Msg("error upserting session slot")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return tx.Commit()
}

// Load returns the persisted session, or [ErrNoSession] when either slot is
// missing.
func (s *Store) Load(ctx context.Context) (models.Session, error) {
	token, err := s.loadSlot(ctx, slotAccessToken)
	if err != nil {
		return models.Session{}, err
	}

	profileJSON, err := s.loadSlot(ctx, slotUserInfo)
	if err != nil {
		return models.Session{}, err
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		s.logger.Err(err).Str("func", "*Store.Load").Msg("error unmarshaling stored profile")
		return models.Session{}, err
	}

	return models.Session{
		Token:   token,
		Profile: profile,
	}, nil
}

// Clear removes the persisted session. Clearing an already empty store is
// not an error.
func (s *Store) Clear(ctx context.Context) error {
	query, args, err := sq.Delete("session").
		Where(sq.Eq{"slot": []string{slotAccessToken, slotUserInfo}}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*Store.Clear").Msg("error clearing session")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (s *Store) loadSlot(ctx context.Context, slot string) (string, error) {
	query, args, err := sq.Select("value").
		From("session").
		Where(sq.Eq{"slot": slot}).
		ToSql()
	if err != nil {
		return "", err
	}

	var value string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoSession
		}
		s.logger.Err(err).Str("func", "*Store.loadSlot").Str("slot", slot).Msg("error reading session slot")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return value, nil
}

func createSessionFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating session file: %w", err)
		}
		f.Close()
	}

	return nil
}
