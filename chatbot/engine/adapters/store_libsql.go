package adapters

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	_ "github.com/tursodatabase/go-libsql"
	"github.com/xeipuuv/gojsonschema"

	"github.com/DhrubaAgarwalla/portfolio-chat/chatbot/conversation"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

//go:embed schema/context.schema.json
var contextSchemaJSON string

// Ensure LibSQLStore implements the conversation store.
var _ conversation.Store = (*LibSQLStore)(nil)

// LibSQLStore persists sessions in an embedded libsql database. Stored
// contexts are validated against a JSON schema on load; anything corrupt
// or expired is deleted and reported as absent, so a bad row can never
// poison a session restore.
type LibSQLStore struct {
	db     *sql.DB
	ttl    time.Duration
	schema *gojsonschema.Schema
	logger zerolog.Logger
}

// OpenSessionDB opens (creating if needed) the session database at path and
// runs pending migrations.
func OpenSessionDB(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create database directory %s: %w", dir, err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		file, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("could not create db at path %s: %w", path, err)
		}
		file.Close()
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=1&_journal_mode=WAL&_synchronous=NORMAL", path)
	db, err := sql.Open("libsql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open libsql connection: %w", err)
	}

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// NewLibSQLStore wraps an open session database. ttl <= 0 disables expiry.
func NewLibSQLStore(db *sql.DB, ttl time.Duration, logger zerolog.Logger) (*LibSQLStore, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(contextSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to compile context schema: %w", err)
	}

	return &LibSQLStore{
		db:     db,
		ttl:    ttl,
		schema: schema,
		logger: logger,
	}, nil
}

func (s *LibSQLStore) Load(ctx context.Context, key string) (*conversation.Context, bool, error) {
	var (
		contextJSON string
		updatedAt   int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT context_json, updated_at FROM chat_sessions WHERE session_key = ?`, key,
	).Scan(&contextJSON, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load session %s: %w", key, err)
	}

	if s.ttl > 0 && time.Since(time.Unix(updatedAt, 0)) > s.ttl {
		s.discard(ctx, key, "expired")
		return nil, false, nil
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(contextJSON))
	if err != nil || !result.Valid() {
		s.discard(ctx, key, "failed schema validation")
		return nil, false, nil
	}

	var state conversation.Context
	if err := json.Unmarshal([]byte(contextJSON), &state); err != nil {
		s.discard(ctx, key, "corrupt")
		return nil, false, nil
	}
	return &state, true, nil
}

func (s *LibSQLStore) Save(ctx context.Context, key string, state *conversation.Context) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize session %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (session_key, context_json, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(session_key) DO UPDATE SET
		   context_json = excluded.context_json,
		   updated_at = excluded.updated_at`,
		key, string(data), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", key, err)
	}
	return nil
}

func (s *LibSQLStore) Clear(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE session_key = ?`, key); err != nil {
		return fmt.Errorf("failed to clear session %s: %w", key, err)
	}
	return nil
}

// discard removes an unusable row. Deletion failure is only logged; the
// caller already treats the session as absent.
func (s *LibSQLStore) discard(ctx context.Context, key, reason string) {
	s.logger.Warn().Str("session", key).Str("reason", reason).Msg("discarding stored session")
	if _, err := s.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE session_key = ?`, key); err != nil {
		s.logger.Warn().Err(err).Str("session", key).Msg("failed to delete stored session")
	}
}
