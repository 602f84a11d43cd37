// Package world provides tile map generation and camera tracking.
package world

// TileKind represents a single map tile.
type TileKind int

const (
	// TileGrass is walkable and can trigger wild encounters.
	TileGrass TileKind = iota
	// TileFloor is a walkable clearing with no encounters.
	TileFloor
	// TileWall is impassable; the map border is always wall.
	TileWall
	// TileWater is impassable.
	TileWater
)

// IsWalkable returns true if the tile can be walked on.
func (t TileKind) IsWalkable() bool {
	return t == TileGrass || t == TileFloor
}

// String returns a human-readable tile name.
func (t TileKind) String() string {
	switch t {
	case TileGrass:
		return "grass"
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileWater:
		return "water"
	default:
		return "unknown"
	}
}

// Rune returns the tile's display character.
func (t TileKind) Rune() rune {
	switch t {
	case TileGrass:
		return '"'
	case TileFloor:
		return '.'
	case TileWall:
		return '#'
	case TileWater:
		return '~'
	default:
		return '?'
	}
}
