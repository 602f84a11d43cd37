package world

// Camera is the top-left offset of the viewport, in the same units as the
// player's render position.
type Camera struct {
	X, Y float64
}

// Follow centers the camera on a render position and clamps it to the map.
// tileSize converts map dimensions into render units; viewW and viewH are the
// viewport size in render units.
func (c *Camera) Follow(px, py, tileSize, viewW, viewH float64, m *TileMap) {
	targetX := px - viewW/2 + tileSize/2
	targetY := py - viewH/2 + tileSize/2

	c.X = clamp(targetX, 0, float64(m.Width)*tileSize-viewW)
	c.Y = clamp(targetY, 0, float64(m.Height)*tileSize-viewH)
}

// clamp bounds v to [lo, hi]; a negative range (map smaller than view) pins to lo.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
