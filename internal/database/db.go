package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Database is the SQLite lead store.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and applies migrations.
// path may be a plain file path or a "file:" DSN with its own query.
func Open(ctx context.Context, path string) (*Database, error) {
	dsn, file := sqliteDSN(path)
	if dir := filepath.Dir(file); file != "" && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	d := &Database{DB: conn, dbFile: file}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS leads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			company TEXT NOT NULL,
			source_url TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_leads_source_url ON leads(source_url);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

const connParams = "_busy_timeout=5000&_foreign_keys=on"

// sqliteDSN appends the connection parameters to path and returns the
// on-disk file it names. In-memory databases have no file.
func sqliteDSN(path string) (dsn, file string) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn = path + sep + connParams

	file = strings.TrimPrefix(path, "file:")
	if i := strings.Index(file, "?"); i >= 0 {
		file = file[:i]
	}
	if file == ":memory:" {
		file = ""
	}
	return dsn, file
}
