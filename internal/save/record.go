// Package save persists a game's player and inventory between sessions.
package save

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/terracreatures/internal/entity"
)

var (
	// ErrNoSave is returned by Store.Load when nothing has been saved yet.
	ErrNoSave = errors.New("no saved game")

	// ErrInvalidRecord wraps every validation failure.
	ErrInvalidRecord = errors.New("invalid save record")
)

// Record is the persisted game state.
type Record struct {
	Player    PlayerRecord    `json:"player" yaml:"player"`
	Inventory InventoryRecord `json:"inventory" yaml:"inventory"`
	Timestamp int64           `json:"timestamp" yaml:"timestamp"` // Unix milliseconds
}

// PlayerRecord is the persisted part of the player.
type PlayerRecord struct {
	X         int              `json:"x" yaml:"x"`
	Y         int              `json:"y" yaml:"y"`
	MaxHP     int              `json:"maxHp" yaml:"maxHp"`
	HP        int              `json:"currentHp" yaml:"currentHp"`
	Level     int              `json:"level" yaml:"level"`
	Exp       int              `json:"exp" yaml:"exp"`
	Direction entity.Direction `json:"direction" yaml:"direction"`
}

// InventoryRecord lists captured creatures in slot order.
type InventoryRecord struct {
	Creatures []CreatureRecord `json:"creatures" yaml:"creatures"`
}

// CreatureRecord is one persisted creature.
type CreatureRecord struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	BaseAttack int    `json:"baseAttack" yaml:"baseAttack"`
	MaxHP      int    `json:"maxHp" yaml:"maxHp"`
	HP         int    `json:"currentHp" yaml:"currentHp"`
	Level      int    `json:"level" yaml:"level"`
}

// Snapshot captures the player and inventory at time now.
func Snapshot(p *entity.Player, inv *entity.Inventory, now time.Time) Record {
	rec := Record{
		Player: PlayerRecord{
			X:         p.X,
			Y:         p.Y,
			MaxHP:     p.MaxHP,
			HP:        p.HP,
			Level:     p.Level,
			Exp:       p.Exp,
			Direction: p.Direction,
		},
		Inventory: InventoryRecord{Creatures: []CreatureRecord{}},
		Timestamp: now.UnixMilli(),
	}
	for _, c := range inv.Creatures() {
		rec.Inventory.Creatures = append(rec.Inventory.Creatures, CreatureRecord{
			Name:       c.Name,
			Type:       c.Type,
			BaseAttack: c.BaseAttack,
			MaxHP:      c.MaxHP,
			HP:         c.HP,
			Level:      c.Level,
		})
	}
	return rec
}

// Validate checks that the record describes a reachable game state.
func (r Record) Validate() error {
	p := r.Player
	if err := checkStats("player", p.HP, p.MaxHP, p.Level); err != nil {
		return err
	}
	if p.Exp < 0 {
		return fmt.Errorf("%w: player exp %d is negative", ErrInvalidRecord, p.Exp)
	}
	if !p.Direction.Valid() {
		return fmt.Errorf("%w: player direction %d", ErrInvalidRecord, p.Direction)
	}
	if n := len(r.Inventory.Creatures); n > entity.InventoryCapacity {
		return fmt.Errorf("%w: %d creatures exceeds capacity %d", ErrInvalidRecord, n, entity.InventoryCapacity)
	}
	for i, c := range r.Inventory.Creatures {
		if c.Name == "" {
			return fmt.Errorf("%w: creature %d has no name", ErrInvalidRecord, i)
		}
		if err := checkStats(fmt.Sprintf("creature %d", i), c.HP, c.MaxHP, c.Level); err != nil {
			return err
		}
	}
	return nil
}

func checkStats(who string, hp, maxHP, level int) error {
	switch {
	case maxHP <= 0:
		return fmt.Errorf("%w: %s max hp %d", ErrInvalidRecord, who, maxHP)
	case hp < 0 || hp > maxHP:
		return fmt.Errorf("%w: %s hp %d outside [0,%d]", ErrInvalidRecord, who, hp, maxHP)
	case level < 1:
		return fmt.Errorf("%w: %s level %d", ErrInvalidRecord, who, level)
	}
	return nil
}

// Restore rebuilds an idle player and an inventory from a validated record.
func Restore(r Record) (*entity.Player, *entity.Inventory, error) {
	if err := r.Validate(); err != nil {
		return nil, nil, err
	}

	p := entity.NewPlayer(r.Player.X, r.Player.Y)
	p.MaxHP = r.Player.MaxHP
	p.HP = r.Player.HP
	p.Level = r.Player.Level
	p.Exp = r.Player.Exp
	p.Direction = r.Player.Direction

	inv := entity.NewInventory()
	for _, c := range r.Inventory.Creatures {
		inv.Add(&entity.Creature{
			Name:       c.Name,
			Type:       c.Type,
			BaseAttack: c.BaseAttack,
			MaxHP:      c.MaxHP,
			HP:         c.HP,
			Level:      c.Level,
		})
	}
	return p, inv, nil
}
