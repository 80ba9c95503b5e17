package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite"
)

// SQLStore keeps documents as rows of a single table. Postgres and SQLite share the
// statements apart from the placeholder syntax.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

func (s *SQLStore) placeholder(n int) string {
	if s.dialect == DialectSQLite {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			doc_key TEXT PRIMARY KEY,
			body    TEXT NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (s *SQLStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	query := `SELECT body FROM documents WHERE doc_key = ` + s.placeholder(1)

	var body string
	if err := s.db.QueryRowContext(ctx, query, key).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(body), nil
}

func (s *SQLStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO documents (doc_key, body) VALUES (%s, %s)
		ON CONFLICT (doc_key) DO UPDATE SET body = excluded.body
	`, s.placeholder(1), s.placeholder(2))

	_, err := s.db.ExecContext(ctx, query, key, string(data))
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
