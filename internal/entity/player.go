package entity

import (
	"time"

	"github.com/samdwyer/terracreatures/internal/combat"
)

const (
	// PlayerName is how battle messages refer to the player.
	PlayerName = "You"

	// PlayerBaseAttack is the bare-handed attack used when no creature fights.
	PlayerBaseAttack = 10

	// DefaultPlayerHP is the starting max HP of a new game.
	DefaultPlayerHP = 100

	// moveSpeed is tiles per second; one tile takes 125ms.
	moveSpeed = 8.0

	// walkFrameInterval is the cadence of the two-frame walk animation.
	walkFrameInterval = 150 * time.Millisecond

	// hpPerLevel is added to max HP on level-up.
	hpPerLevel = 10
)

// Walkable answers whether a grid cell can be entered.
type Walkable interface {
	IsWalkable(x, y int) bool
}

// Player is the avatar moving on the tile map.
type Player struct {
	X, Y             int // Current cell
	TargetX, TargetY int // Destination cell while moving
	Direction        Direction

	HP, MaxHP int
	Level     int
	Exp       int

	moving    bool
	progress  float64
	walkFrame int
	walkClock time.Duration
}

// NewPlayer creates a level-1 player at full health facing down.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:         x,
		Y:         y,
		TargetX:   x,
		TargetY:   y,
		Direction: DirectionDown,
		HP:        DefaultPlayerHP,
		MaxHP:     DefaultPlayerHP,
		Level:     1,
	}
}

// IsMoving reports whether a step is in progress.
func (p *Player) IsMoving() bool { return p.moving }

// Progress returns the fraction of the current step completed, 0 when idle.
func (p *Player) Progress() float64 { return p.progress }

// WalkFrame returns the current animation frame (0 or 1).
func (p *Player) WalkFrame() int { return p.walkFrame }

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// Move starts a one-tile step by (dx, dy). It fails without side effects when
// a step is already in progress, the delta is zero, or the destination is not
// walkable. Facing only changes when the step starts.
func (p *Player) Move(dx, dy int, m Walkable) bool {
	if p.moving {
		return false
	}
	dir, ok := directionFor(dx, dy)
	if !ok {
		return false
	}

	newX, newY := p.X+dx, p.Y+dy
	if !m.IsWalkable(newX, newY) {
		return false
	}

	p.Direction = dir
	p.TargetX = newX
	p.TargetY = newY
	p.moving = true
	p.progress = 0
	return true
}

// Tick advances movement and the walk animation by dt. It returns true on the
// frame a step completes.
func (p *Player) Tick(dt time.Duration) bool {
	if dt < 0 {
		dt = 0
	}

	p.walkClock += dt
	for p.walkClock >= walkFrameInterval {
		p.walkClock -= walkFrameInterval
		p.walkFrame = (p.walkFrame + 1) % 2
	}

	if !p.moving {
		return false
	}

	p.progress += dt.Seconds() * moveSpeed
	if p.progress < 1 {
		return false
	}

	p.X = p.TargetX
	p.Y = p.TargetY
	p.moving = false
	p.progress = 0
	return true
}

// RenderPosition returns the interpolated top-left corner of the player in
// render units, where one tile spans tileSize units.
func (p *Player) RenderPosition(tileSize float64) (float64, float64) {
	if !p.moving {
		return float64(p.X) * tileSize, float64(p.Y) * tileSize
	}
	return lerp(float64(p.X), float64(p.TargetX), p.progress) * tileSize,
		lerp(float64(p.Y), float64(p.TargetY), p.progress) * tileSize
}

// GainExp adds experience and levels up at most once per call. It returns
// true if the player leveled up.
func (p *Player) GainExp(amount int) bool {
	p.Exp += amount
	if p.Exp < p.Level*50 {
		return false
	}
	p.Level++
	p.Exp = 0
	p.MaxHP += hpPerLevel
	p.HP = p.MaxHP
	return true
}

// HPFraction returns current HP as a fraction of max HP.
func (p *Player) HPFraction() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return float64(p.HP) / float64(p.MaxHP)
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the name used in battle messages.
func (p *Player) GetName() string { return PlayerName }

// IsAlive returns true if the player has HP remaining.
func (p *Player) IsAlive() bool { return p.HP > 0 }

// GetHP returns current HP.
func (p *Player) GetHP() int { return p.HP }

// GetMaxHP returns maximum HP.
func (p *Player) GetMaxHP() int { return p.MaxHP }

// GetLevel returns the player's level.
func (p *Player) GetLevel() int { return p.Level }

// EffectiveAttack returns the bare-handed attack adjusted by level.
func (p *Player) EffectiveAttack() int { return combat.EffectiveAttack(PlayerBaseAttack, p.Level) }

// TakeDamage reduces HP and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	return applyDamage(&p.HP, amount)
}

// Heal restores HP and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	return applyHeal(&p.HP, p.MaxHP, amount)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Ensure Player implements combat.Combatant
var _ combat.Combatant = (*Player)(nil)
