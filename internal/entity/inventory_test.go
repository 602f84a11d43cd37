package entity

import "testing"

func TestInventoryAddRespectsCapacity(t *testing.T) {
	inv := NewInventory()

	for i := 0; i < InventoryCapacity; i++ {
		if !inv.Add(NewCreature("Leafling", "grass", 9, 45)) {
			t.Fatalf("Add() #%d = false, want true", i)
		}
	}
	if !inv.IsFull() {
		t.Error("IsFull() = false after filling")
	}

	for i := 0; i < 10; i++ {
		if inv.Add(NewCreature("Rockling", "rock", 14, 30)) {
			t.Fatal("Add() on full inventory = true, want false")
		}
		if inv.Len() > InventoryCapacity {
			t.Fatalf("Len() = %d exceeds capacity", inv.Len())
		}
	}
	if inv.Len() != InventoryCapacity {
		t.Errorf("Len() = %d, want %d", inv.Len(), InventoryCapacity)
	}
	if inv.Add(nil) {
		t.Error("Add(nil) = true, want false")
	}
}

func TestInventoryPreservesOrder(t *testing.T) {
	inv := NewInventory()
	names := []string{"Flameling", "Aquapup", "Sparkit"}
	for _, n := range names {
		inv.Add(NewCreature(n, "fire", 10, 30))
	}

	for i, n := range names {
		c, ok := inv.At(i)
		if !ok || c.Name != n {
			t.Errorf("At(%d) = %v, %v; want %s", i, c, ok, n)
		}
	}
	if inv.First().Name != "Flameling" {
		t.Errorf("First() = %s, want Flameling", inv.First().Name)
	}
}

func TestInventoryRemoveAt(t *testing.T) {
	inv := NewInventory()
	inv.Add(NewCreature("Flameling", "fire", 12, 35))
	inv.Add(NewCreature("Aquapup", "water", 10, 40))
	inv.Add(NewCreature("Sparkit", "electric", 11, 38))

	removed, ok := inv.RemoveAt(1)
	if !ok || removed.Name != "Aquapup" {
		t.Fatalf("RemoveAt(1) = %v, %v; want Aquapup", removed, ok)
	}
	if inv.Len() != 2 {
		t.Errorf("Len() = %d, want 2", inv.Len())
	}
	if c, _ := inv.At(1); c.Name != "Sparkit" {
		t.Errorf("At(1) after removal = %s, want Sparkit", c.Name)
	}

	for _, idx := range []int{-1, 2, 99} {
		if c, ok := inv.RemoveAt(idx); ok || c != nil {
			t.Errorf("RemoveAt(%d) = %v, %v; want nil, false", idx, c, ok)
		}
		if c, ok := inv.At(idx); ok || c != nil {
			t.Errorf("At(%d) = %v, %v; want nil, false", idx, c, ok)
		}
	}
}

func TestInventoryEmpty(t *testing.T) {
	inv := NewInventory()
	if inv.First() != nil {
		t.Error("First() on empty inventory should be nil")
	}
	if got := inv.Creatures(); len(got) != 0 {
		t.Errorf("Creatures() = %v, want empty", got)
	}
}

func TestInventoryCreaturesIsCopy(t *testing.T) {
	inv := NewInventory()
	inv.Add(NewCreature("Shadewisp", "ghost", 13, 32))

	list := inv.Creatures()
	list[0] = nil
	if inv.First() == nil {
		t.Error("Creatures() exposed internal slice")
	}
}
