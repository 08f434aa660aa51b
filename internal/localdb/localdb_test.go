package localdb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	if err != nil {
		t.Fatalf("tableExists query failed: %v", err)
	}
	return n > 0
}

func TestOpen_CreatesStateTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "portal.db")

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("db.PingContext failed: %v", err)
	}

	if !tableExists(t, db, "state") {
		t.Fatalf("expected state table to exist after migrations")
	}
	if !tableExists(t, db, "goose_db_version") {
		t.Fatalf("expected goose_db_version table to exist after migrations")
	}
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "portal.db")

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	defer db.Close()

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (first) error: %v", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		t.Fatalf("RunMigrations (second) should be idempotent, got error: %v", err)
	}
}

func TestOpen_StateTableAcceptsBlobUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "portal.db")

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT INTO state(key, value) VALUES ('users', '[]')`)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO state(key, value) VALUES ('users', '[{}]')
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	var got string
	if err := db.QueryRowContext(ctx, `SELECT value FROM state WHERE key='users'`).Scan(&got); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if got != "[{}]" {
		t.Fatalf("unexpected value after upsert: %q", got)
	}
}
