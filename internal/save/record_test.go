package save

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/samdwyer/terracreatures/internal/entity"
)

func samplePlayer() (*entity.Player, *entity.Inventory) {
	p := entity.NewPlayer(7, 3)
	p.Level = 4
	p.Exp = 33
	p.MaxHP = 130
	p.HP = 64
	p.Direction = entity.DirectionRight

	inv := entity.NewInventory()
	a := entity.NewCreature("Flameling", "fire", 12, 35)
	a.Level = 3
	a.HP = 20
	inv.Add(a)
	inv.Add(entity.NewCreature("Aquapup", "water", 10, 40))
	return p, inv
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	p, inv := samplePlayer()
	rec := Snapshot(p, inv, time.UnixMilli(1712345678901))

	if rec.Timestamp != 1712345678901 {
		t.Errorf("Snapshot().Timestamp = %d, want 1712345678901", rec.Timestamp)
	}

	gotP, gotInv, err := Restore(rec)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !reflect.DeepEqual(gotP, p) {
		t.Errorf("Restore() player = %+v, want %+v", gotP, p)
	}
	if gotInv.Len() != inv.Len() {
		t.Fatalf("Restore() inventory Len() = %d, want %d", gotInv.Len(), inv.Len())
	}
	for i, want := range inv.Creatures() {
		got, _ := gotInv.At(i)
		if *got != *want {
			t.Errorf("Restore() creature %d = %+v, want %+v", i, *got, *want)
		}
		if got == want {
			t.Errorf("Restore() creature %d shares identity with the original", i)
		}
	}

	if again := Snapshot(gotP, gotInv, time.UnixMilli(rec.Timestamp)); !reflect.DeepEqual(again, rec) {
		t.Errorf("Snapshot(Restore(r)) = %+v, want %+v", again, rec)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	p, inv := samplePlayer()
	rec := Snapshot(p, inv, time.Now())

	p.X = 99
	first, _ := inv.At(0)
	first.HP = 1

	if rec.Player.X != 7 || rec.Inventory.Creatures[0].HP != 20 {
		t.Errorf("Snapshot() tracked later changes: %+v", rec)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Record {
		p, inv := samplePlayer()
		return Snapshot(p, inv, time.UnixMilli(1))
	}

	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"zero max hp", func(r *Record) { r.Player.MaxHP = 0 }},
		{"negative hp", func(r *Record) { r.Player.HP = -1 }},
		{"hp above max", func(r *Record) { r.Player.HP = r.Player.MaxHP + 1 }},
		{"level zero", func(r *Record) { r.Player.Level = 0 }},
		{"negative exp", func(r *Record) { r.Player.Exp = -5 }},
		{"unknown direction", func(r *Record) { r.Player.Direction = entity.Direction(7) }},
		{"creature without name", func(r *Record) { r.Inventory.Creatures[0].Name = "" }},
		{"creature hp above max", func(r *Record) { r.Inventory.Creatures[1].HP = 41 }},
		{"creature level zero", func(r *Record) { r.Inventory.Creatures[0].Level = 0 }},
		{"too many creatures", func(r *Record) {
			for len(r.Inventory.Creatures) <= entity.InventoryCapacity {
				r.Inventory.Creatures = append(r.Inventory.Creatures, r.Inventory.Creatures[0])
			}
		}},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Validate() on valid record = %v", err)
	}
	for _, tt := range tests {
		rec := valid()
		tt.mutate(&rec)
		err := rec.Validate()
		if !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidRecord", tt.name, err)
		}
		if _, _, rerr := Restore(rec); rerr == nil {
			t.Errorf("%s: Restore() error = nil", tt.name)
		}
	}
}
