// Package encounter decides when a wild creature appears and rolls it.
package encounter

import (
	"github.com/samdwyer/terracreatures/internal/combat"
	"github.com/samdwyer/terracreatures/internal/entity"
	"github.com/samdwyer/terracreatures/internal/gamedata"
)

const (
	// Rate is the chance of an encounter per completed step on grass.
	Rate = 0.15

	minWildLevel = 1
	maxWildLevel = 3
)

// Terrain answers whether a cell is tall grass.
type Terrain interface {
	IsGrass(x, y int) bool
}

// System rolls encounters against a terrain and a species table.
type System struct {
	terrain Terrain
	species *gamedata.SpeciesRegistry
	rng     combat.Rand
}

// NewSystem creates an encounter system.
func NewSystem(terrain Terrain, species *gamedata.SpeciesRegistry, rng combat.Rand) *System {
	return &System{terrain: terrain, species: species, rng: rng}
}

// Check rolls for an encounter at the player's current cell. Only grass can
// trigger one.
func (s *System) Check(p *entity.Player) (*entity.Creature, bool) {
	if !s.terrain.IsGrass(p.X, p.Y) {
		return nil, false
	}
	if s.rng.Float64() >= Rate {
		return nil, false
	}
	c := s.GenerateWildCreature()
	return c, c != nil
}

// GenerateWildCreature picks a species uniformly and rolls its level in
// [1, 3]. It returns nil when the species table is empty.
func (s *System) GenerateWildCreature() *entity.Creature {
	def := s.species.Random(s.rng)
	if def == nil {
		return nil
	}
	level := minWildLevel + s.rng.Intn(maxWildLevel-minWildLevel+1)
	return entity.NewCreatureFromDef(def, level)
}
