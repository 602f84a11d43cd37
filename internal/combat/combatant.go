// Package combat provides the combat formulas shared by the battle system.
package combat

// Combatant is the interface for any entity that can fight in a battle.
// Both the player and creatures implement it.
type Combatant interface {
	GetName() string
	IsAlive() bool

	GetHP() int
	GetMaxHP() int
	GetLevel() int
	EffectiveAttack() int

	TakeDamage(amount int) int // Returns actual damage taken
	Heal(amount int) int       // Returns actual amount healed
}

// Rand is the random source combat rolls draw from. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}
