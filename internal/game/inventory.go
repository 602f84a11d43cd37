package game

import (
	"context"
	"log"
)

// handleInventoryEvent applies exploration-mode events to the inventory
// overlay.
func (g *Game) handleInventoryEvent(ctx context.Context, ev Event) {
	if ev == EventInventory {
		g.toggleInventory()
		return
	}
	if !g.inventoryOpen {
		return
	}

	switch ev {
	case EventUp:
		g.inventoryCursor = max(g.inventoryCursor-1, 0)
	case EventDown:
		g.inventoryCursor = min(g.inventoryCursor+1, max(g.inventory.Len()-1, 0))
	case EventBack:
		g.inventoryOpen = false
	case EventRelease:
		g.releaseSelected(ctx)
	}
}

// toggleInventory opens or closes the overlay; opening resets the cursor.
func (g *Game) toggleInventory() {
	g.inventoryOpen = !g.inventoryOpen
	if g.inventoryOpen {
		g.inventoryCursor = 0
	}
}

// releaseSelected lets the creature under the cursor go and saves.
func (g *Game) releaseSelected(ctx context.Context) {
	c, ok := g.inventory.RemoveAt(g.inventoryCursor)
	if !ok {
		return
	}
	g.inventoryCursor = min(g.inventoryCursor, max(g.inventory.Len()-1, 0))
	log.Printf("game: released %s (level %d)", c.Name, c.Level)
	g.save(ctx)
}

// InventoryOpen reports whether the inventory overlay is shown.
func (g *Game) InventoryOpen() bool { return g.inventoryOpen }

// InventoryCursor returns the selected inventory slot.
func (g *Game) InventoryCursor() int { return g.inventoryCursor }
