// Package sqlite provides a SQLite-backed save store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"

	"github.com/samdwyer/terracreatures/internal/save"
	"github.com/samdwyer/terracreatures/internal/save/sqlite/migrations"
	"github.com/samdwyer/terracreatures/internal/storage/sqlitemigrate"
	"github.com/samdwyer/terracreatures/internal/telemetry"
)

// DefaultSlot is the row the game reads and writes.
const DefaultSlot = "default"

// Store persists the save record as JSON text in a SQLite row.
type Store struct {
	sqlDB *sql.DB
	slot  string
}

// Open opens a SQLite save store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, slot: DefaultSlot}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save upserts the record into the store's slot.
func (s *Store) Save(ctx context.Context, rec save.Record) error {
	tracer := telemetry.Tracer("save")
	ctx, span := tracer.Start(ctx, "save.write")
	defer span.End()
	span.SetAttributes(
		attribute.String("save.backend", "sqlite"),
		attribute.String("save.slot", s.slot),
	)

	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO saves (slot, data, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		s.slot, string(data), rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

// Load reads and validates the record in the store's slot. It returns
// save.ErrNoSave when the slot is empty.
func (s *Store) Load(ctx context.Context) (save.Record, error) {
	tracer := telemetry.Tracer("save")
	ctx, span := tracer.Start(ctx, "save.read")
	defer span.End()
	span.SetAttributes(
		attribute.String("save.backend", "sqlite"),
		attribute.String("save.slot", s.slot),
	)

	if err := ctx.Err(); err != nil {
		return save.Record{}, err
	}

	var data string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = ?`, s.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return save.Record{}, save.ErrNoSave
	}
	if err != nil {
		return save.Record{}, fmt.Errorf("read save: %w", err)
	}

	var rec save.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return save.Record{}, fmt.Errorf("decode save: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return save.Record{}, err
	}
	return rec, nil
}

var _ save.Store = (*Store)(nil)
