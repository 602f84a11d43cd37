// Package entity provides the player, creatures, and the creature inventory.
package entity

import (
	"github.com/samdwyer/terracreatures/internal/combat"
	"github.com/samdwyer/terracreatures/internal/gamedata"
)

// Creature is a wild or captured creature.
type Creature struct {
	Name       string // Species display name
	Type       string // Elemental type (e.g., "fire")
	BaseAttack int
	MaxHP      int
	HP         int
	Level      int
}

// NewCreature creates a level-1 creature at full health.
func NewCreature(name, elementalType string, baseAttack, maxHP int) *Creature {
	return &Creature{
		Name:       name,
		Type:       elementalType,
		BaseAttack: baseAttack,
		MaxHP:      maxHP,
		HP:         maxHP,
		Level:      1,
	}
}

// NewCreatureFromDef creates a creature from a species definition.
func NewCreatureFromDef(def *gamedata.SpeciesDef, level int) *Creature {
	c := NewCreature(def.Name, def.Type, def.Attack, def.HP)
	c.Level = level
	return c
}

// Clone returns an independent copy of the creature.
func (c *Creature) Clone() *Creature {
	clone := *c
	return &clone
}

// HPFraction returns current HP as a fraction of max HP.
func (c *Creature) HPFraction() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return float64(c.HP) / float64(c.MaxHP)
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the creature's name.
func (c *Creature) GetName() string { return c.Name }

// IsAlive returns true if the creature has HP remaining.
func (c *Creature) IsAlive() bool { return c.HP > 0 }

// GetHP returns current HP.
func (c *Creature) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Creature) GetMaxHP() int { return c.MaxHP }

// GetLevel returns the creature's level.
func (c *Creature) GetLevel() int { return c.Level }

// EffectiveAttack returns base attack adjusted by level.
func (c *Creature) EffectiveAttack() int { return combat.EffectiveAttack(c.BaseAttack, c.Level) }

// TakeDamage reduces HP and returns actual damage taken.
func (c *Creature) TakeDamage(amount int) int {
	return applyDamage(&c.HP, amount)
}

// Heal restores HP and returns actual amount healed.
func (c *Creature) Heal(amount int) int {
	return applyHeal(&c.HP, c.MaxHP, amount)
}

// applyDamage lowers *hp by amount, flooring at zero.
func applyDamage(hp *int, amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > *hp {
		actual = *hp
	}
	*hp -= actual
	return actual
}

// applyHeal raises *hp by amount, capping at maxHP.
func applyHeal(hp *int, maxHP, amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if *hp+actual > maxHP {
		actual = maxHP - *hp
	}
	if actual < 0 {
		return 0
	}
	*hp += actual
	return actual
}

// Ensure Creature implements combat.Combatant
var _ combat.Combatant = (*Creature)(nil)
