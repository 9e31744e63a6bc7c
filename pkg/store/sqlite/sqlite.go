package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/docylit/docylit/pkg/domain"
	"github.com/docylit/docylit/pkg/store"
)

// Store implements store.DocumentStore on a SQLite database.
type Store struct {
	db *sql.DB
}

// Verify interface compliance at compile time.
var _ store.DocumentStore = (*Store)(nil)

// New opens (or creates) a SQLite database at the given path and runs
// migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL DEFAULT '',
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	return err
}

// Load returns the saved document, or store.ErrNoDocument when neither key
// has ever been written.
func (s *Store) Load(ctx context.Context) (*domain.DocumentState, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, value FROM documents WHERE key IN (?, ?)`,
		store.KeyContent, store.KeyTitle,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doc := &domain.DocumentState{}
	found := false
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		found = true
		switch key {
		case store.KeyContent:
			doc.Content = value
		case store.KeyTitle:
			doc.Title = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, store.ErrNoDocument
	}
	return doc, nil
}

// SaveContent overwrites the content entry.
func (s *Store) SaveContent(ctx context.Context, content string) error {
	if err := s.set(ctx, store.KeyContent, content); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

// SaveTitle overwrites the title entry.
func (s *Store) SaveTitle(ctx context.Context, title string) error {
	if err := s.set(ctx, store.KeyTitle, title); err != nil {
		return fmt.Errorf("save title: %w", err)
	}
	return nil
}
