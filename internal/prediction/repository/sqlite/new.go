package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"healthsmart-chatbot/internal/prediction/repository"
)

const createLogsTable = `CREATE TABLE IF NOT EXISTS prediction_logs (
	id TEXT PRIMARY KEY,
	features TEXT NOT NULL,
	result TEXT NOT NULL,
	model_version TEXT NOT NULL,
	created_at_unix INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_prediction_logs_created ON prediction_logs(created_at_unix DESC);`

// Repository is the sqlite-backed prediction log.
type Repository struct {
	db *sql.DB
}

var _ repository.LogRepository = (*Repository)(nil)

// New opens (creating if needed) the sqlite database at path.
func New(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." && path != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite pragmas: %w", err)
	}
	return &Repository{db: db}, nil
}

// AutoMigrate creates the schema.
func (r *Repository) AutoMigrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createLogsTable); err != nil {
		return fmt.Errorf("migrate prediction_logs: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
