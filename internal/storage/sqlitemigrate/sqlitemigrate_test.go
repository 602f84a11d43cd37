package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, query string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}

func TestApplyRecordsMigrations(t *testing.T) {
	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"001_saves.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE saves(slot TEXT PRIMARY KEY);\n-- +migrate Down\nDROP TABLE saves;")},
		"002_index.sql": {Data: []byte("CREATE INDEX saves_slot ON saves(slot);")},
		"README.md":     {Data: []byte("not a migration")},
	}

	if err := Apply(context.Background(), db, migrations, ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Errorf("schema_migrations rows = %d, want 2", got)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='saves'"); got != 1 {
		t.Errorf("saves table count = %d, want 1", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"001_saves.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE saves(slot TEXT PRIMARY KEY);")},
	}

	for i := 0; i < 2; i++ {
		if err := Apply(context.Background(), db, migrations, "."); err != nil {
			t.Fatalf("Apply() run %d error = %v", i, err)
		}
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Errorf("schema_migrations rows = %d, want 1", got)
	}
}

func TestApplySubdirectoryKeys(t *testing.T) {
	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"sql/001_saves.sql": {Data: []byte("CREATE TABLE saves(slot TEXT PRIMARY KEY);")},
	}

	if err := Apply(context.Background(), db, migrations, "sql"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations WHERE name = 'sql/001_saves.sql'"); got != 1 {
		t.Errorf("recorded key rows = %d, want 1", got)
	}
}

func TestApplyRejectsBadSQL(t *testing.T) {
	db := openMemoryDB(t)
	migrations := fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREATE TABLOID nope;")},
	}

	if err := Apply(context.Background(), db, migrations, ""); err == nil {
		t.Fatal("Apply() error = nil, want failure")
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Errorf("schema_migrations rows = %d, want 0", got)
	}
}

func TestApplyRequiresDB(t *testing.T) {
	if err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Error("Apply(nil db) error = nil")
	}
}

func TestUpSection(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"no markers", "CREATE TABLE a(x);", "CREATE TABLE a(x);"},
		{"up only", "-- +migrate Up\nCREATE TABLE a(x);", "\nCREATE TABLE a(x);"},
		{"up and down", "-- +migrate Up\nCREATE TABLE a(x);\n-- +migrate Down\nDROP TABLE a;", "\nCREATE TABLE a(x);\n"},
	}
	for _, tt := range tests {
		if got := UpSection(tt.content); got != tt.want {
			t.Errorf("%s: UpSection() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsAlreadyExists(t *testing.T) {
	if !IsAlreadyExists(errors.New("table saves already exists")) {
		t.Error("IsAlreadyExists(already exists) = false")
	}
	if !IsAlreadyExists(errors.New("Duplicate column name: slot")) {
		t.Error("IsAlreadyExists(duplicate column) = false")
	}
	if IsAlreadyExists(errors.New("syntax error")) {
		t.Error("IsAlreadyExists(syntax error) = true")
	}
}
