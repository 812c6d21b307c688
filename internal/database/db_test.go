package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpen_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	again, err := Open(ctx, db.dbFile)
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := again.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "a", "b", "leads.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
}

func TestCloseNil(t *testing.T) {
	var db *Database
	if err := db.Close(); err != nil {
		t.Fatalf("expected nil error closing nil database, got %v", err)
	}
}

func TestOpenFileDSNWithQuery(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "leads.db")
	db, err := Open(ctx, "file:"+path+"?mode=rwc")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if db.dbFile != path {
		t.Fatalf("dbFile = %q, want %q", db.dbFile, path)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file at %s: %v", path, err)
	}
}

func TestSqliteDSN(t *testing.T) {
	cases := []struct {
		in, dsn, file string
	}{
		{"/data/leads.db", "/data/leads.db?" + connParams, "/data/leads.db"},
		{"file:/data/leads.db", "file:/data/leads.db?" + connParams, "/data/leads.db"},
		{"file:/data/leads.db?mode=rwc", "file:/data/leads.db?mode=rwc&" + connParams, "/data/leads.db"},
		{":memory:", ":memory:?" + connParams, ""},
	}
	for _, tc := range cases {
		dsn, file := sqliteDSN(tc.in)
		if dsn != tc.dsn || file != tc.file {
			t.Errorf("sqliteDSN(%q) = (%q, %q), want (%q, %q)", tc.in, dsn, file, tc.dsn, tc.file)
		}
	}
}
