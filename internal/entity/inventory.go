package entity

// InventoryCapacity is the maximum number of creatures the player can carry.
const InventoryCapacity = 6

// Inventory is the ordered list of captured creatures.
type Inventory struct {
	creatures []*Creature
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{creatures: make([]*Creature, 0, InventoryCapacity)}
}

// Add appends a creature. It returns false without changing anything when
// the inventory is full.
func (inv *Inventory) Add(c *Creature) bool {
	if c == nil || len(inv.creatures) >= InventoryCapacity {
		return false
	}
	inv.creatures = append(inv.creatures, c)
	return true
}

// RemoveAt removes and returns the creature at index, or false for an
// invalid index.
func (inv *Inventory) RemoveAt(index int) (*Creature, bool) {
	if index < 0 || index >= len(inv.creatures) {
		return nil, false
	}
	c := inv.creatures[index]
	inv.creatures = append(inv.creatures[:index], inv.creatures[index+1:]...)
	return c, true
}

// At returns the creature at index, or false for an invalid index.
func (inv *Inventory) At(index int) (*Creature, bool) {
	if index < 0 || index >= len(inv.creatures) {
		return nil, false
	}
	return inv.creatures[index], true
}

// First returns the lead creature (the active battle ally), or nil if empty.
func (inv *Inventory) First() *Creature {
	if len(inv.creatures) == 0 {
		return nil
	}
	return inv.creatures[0]
}

// Len returns the number of creatures held.
func (inv *Inventory) Len() int { return len(inv.creatures) }

// Cap returns the maximum number of creatures the inventory holds.
func (inv *Inventory) Cap() int { return InventoryCapacity }

// IsFull reports whether another creature can be added.
func (inv *Inventory) IsFull() bool { return len(inv.creatures) >= InventoryCapacity }

// Creatures returns the held creatures in order. The slice is a copy; the
// creatures are shared.
func (inv *Inventory) Creatures() []*Creature {
	out := make([]*Creature, len(inv.creatures))
	copy(out, inv.creatures)
	return out
}
