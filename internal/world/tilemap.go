package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terracreatures/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 20
	DefaultHeight = 15

	// Carving parameters
	clearingCount  = 15
	clearingMargin = 3 // clearing centers stay this far from the border
	poolCount      = 3
	poolSize       = 3
	poolMargin     = 4 // pool corners stay this far from the border

	// Below this size there is no interior left to carve.
	minCarveSize = 6
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// TileMap is the overworld grid.
type TileMap struct {
	Width     int
	Height    int
	Clearings []Region
	Pools     []Region

	tiles          [][]TileKind
	encounterZones []Point
}

// NewTileMap creates a map with a wall border and a grass interior.
func NewTileMap(width, height int) *TileMap {
	tiles := make([][]TileKind, height)
	for y := range tiles {
		tiles[y] = make([]TileKind, width)
		for x := range tiles[y] {
			if x == 0 || x == width-1 || y == 0 || y == height-1 {
				tiles[y][x] = TileWall
			} else {
				tiles[y][x] = TileGrass
			}
		}
	}

	m := &TileMap{
		Width:  width,
		Height: height,
		tiles:  tiles,
	}
	m.updateEncounterZones()
	return m
}

// Generate creates a map and carves floor clearings and water pools into it.
// Later carves may overwrite earlier ones, including floor turning into water.
func Generate(ctx context.Context, width, height int, rng *rand.Rand) *TileMap {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	m := NewTileMap(width, height)
	if width >= minCarveSize && height >= minCarveSize {
		m.carveClearings(rng)
		m.carvePools(rng)
		m.updateEncounterZones()
	}

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.clearings", len(m.Clearings)),
		attribute.Int("map.pools", len(m.Pools)),
		attribute.Int("map.encounter_zones", len(m.encounterZones)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m
}

// InBounds reports whether the coordinate lies on the map.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at the given position. Out-of-bounds positions read as wall.
func (m *TileMap) Tile(x, y int) TileKind {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[y][x]
}

// IsWalkable returns true if the position is on the map and is grass or floor.
func (m *TileMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.tiles[y][x].IsWalkable()
}

// IsGrass returns true if the position is on the map and is grass.
func (m *TileMap) IsGrass(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.tiles[y][x] == TileGrass
}

// EncounterZones returns the coordinates of every grass tile.
func (m *TileMap) EncounterZones() []Point {
	zones := make([]Point, len(m.encounterZones))
	copy(zones, m.encounterZones)
	return zones
}

// Tiles returns a copy of the grid, indexed [y][x].
func (m *TileMap) Tiles() [][]TileKind {
	out := make([][]TileKind, len(m.tiles))
	for y := range m.tiles {
		out[y] = make([]TileKind, len(m.tiles[y]))
		copy(out[y], m.tiles[y])
	}
	return out
}

// NearestWalkable returns the walkable tile closest (Manhattan) to (x, y).
// It returns false only when the map has no walkable tile at all.
func (m *TileMap) NearestWalkable(x, y int) (int, int, bool) {
	if m.IsWalkable(x, y) {
		return x, y, true
	}
	for _, c := range m.Clearings {
		if cx, cy := c.Center(); m.IsWalkable(cx, cy) {
			return cx, cy, true
		}
	}

	bestX, bestY, bestDist := 0, 0, -1
	for ty := 0; ty < m.Height; ty++ {
		for tx := 0; tx < m.Width; tx++ {
			if !m.tiles[ty][tx].IsWalkable() {
				continue
			}
			d := abs(tx-x) + abs(ty-y)
			if bestDist < 0 || d < bestDist {
				bestX, bestY, bestDist = tx, ty, d
			}
		}
	}
	return bestX, bestY, bestDist >= 0
}

// carveClearings stamps square floor brushes of radius 1-2.
func (m *TileMap) carveClearings(rng *rand.Rand) {
	for i := 0; i < clearingCount; i++ {
		cx := randRange(rng, clearingMargin, m.Width-clearingMargin-1)
		cy := randRange(rng, clearingMargin, m.Height-clearingMargin-1)
		radius := randRange(rng, 1, 2)

		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				tx, ty := cx+dx, cy+dy
				if tx > 2 && tx < m.Width-3 && ty > 2 && ty < m.Height-3 {
					m.tiles[ty][tx] = TileFloor
				}
			}
		}

		m.Clearings = append(m.Clearings, Region{
			X:      cx - radius,
			Y:      cy - radius,
			Width:  radius*2 + 1,
			Height: radius*2 + 1,
		})
	}
}

// carvePools stamps 3x3 water blocks.
func (m *TileMap) carvePools(rng *rand.Rand) {
	for i := 0; i < poolCount; i++ {
		px := randRange(rng, poolMargin, m.Width-poolMargin-1)
		py := randRange(rng, poolMargin, m.Height-poolMargin-1)

		for dy := 0; dy < poolSize; dy++ {
			for dx := 0; dx < poolSize; dx++ {
				tx, ty := px+dx, py+dy
				if tx > 2 && tx < m.Width-4 && ty > 2 && ty < m.Height-4 {
					m.tiles[ty][tx] = TileWater
				}
			}
		}

		m.Pools = append(m.Pools, Region{X: px, Y: py, Width: poolSize, Height: poolSize})
	}
}

// updateEncounterZones recomputes the grass coordinate list.
func (m *TileMap) updateEncounterZones() {
	m.encounterZones = m.encounterZones[:0]
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.tiles[y][x] == TileGrass {
				m.encounterZones = append(m.encounterZones, Point{X: x, Y: y})
			}
		}
	}
}

// randRange returns a uniform integer in [lo, hi]. When hi < lo it returns lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
