package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/samdwyer/terracreatures/internal/entity"
	"github.com/samdwyer/terracreatures/internal/save"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleRecord() save.Record {
	p := entity.NewPlayer(4, 9)
	p.Level = 3
	p.Exp = 12
	p.MaxHP = 120
	p.HP = 77
	p.Direction = entity.DirectionLeft

	inv := entity.NewInventory()
	c := entity.NewCreature("Shadewisp", "ghost", 13, 32)
	c.Level = 2
	c.HP = 8
	inv.Add(c)

	return save.Snapshot(p, inv, time.UnixMilli(1700000000123))
}

func TestLoadEmpty(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Load(context.Background()); !errors.Is(err, save.ErrNoSave) {
		t.Errorf("Load() error = %v, want ErrNoSave", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	want := sampleRecord()

	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	store := openTestStore(t)
	first := sampleRecord()
	second := sampleRecord()
	second.Player.X = 11
	second.Timestamp++

	if err := store.Save(context.Background(), first); err != nil {
		t.Fatalf("Save(first) error = %v", err)
	}
	if err := store.Save(context.Background(), second); err != nil {
		t.Fatalf("Save(second) error = %v", err)
	}

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Player.X != 11 {
		t.Errorf("Load().Player.X = %d, want 11", got.Player.X)
	}

	var rows int
	if err := store.sqlDB.QueryRow("SELECT COUNT(*) FROM saves").Scan(&rows); err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("saves rows = %d, want 1", rows)
	}
}

func TestLoadRejectsInvalidRecord(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.sqlDB.Exec(
		`INSERT INTO saves (slot, data, saved_at) VALUES (?, ?, 0)`,
		DefaultSlot, `{"player":{"maxHp":0,"currentHp":0,"level":1}}`,
	); err != nil {
		t.Fatalf("seed row: %v", err)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, save.ErrInvalidRecord) {
		t.Errorf("Load() error = %v, want ErrInvalidRecord", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	want := sampleRecord()
	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load() after reopen = %+v, want %+v", got, want)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(context.Background(), "  "); err == nil {
		t.Error("Open(blank) error = nil")
	}
}
