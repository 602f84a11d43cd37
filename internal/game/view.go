package game

import (
	"github.com/samdwyer/terracreatures/internal/battle"
	"github.com/samdwyer/terracreatures/internal/entity"
	"github.com/samdwyer/terracreatures/internal/world"
)

// CreatureView is an inventory entry as shown to the player.
type CreatureView struct {
	Name  string
	Type  string
	Level int
	HP    int
	MaxHP int
}

// View is a snapshot of everything the renderer draws. Positions and the
// camera are in render units (TileSize per tile).
type View struct {
	State State

	Map     *world.TileMap
	CameraX float64
	CameraY float64

	PlayerX   float64
	PlayerY   float64
	Facing    entity.Direction
	Moving    bool
	WalkFrame int

	HP    int
	MaxHP int
	Level int
	Exp   int

	Battle *battle.View

	InventoryOpen   bool
	InventoryCursor int
	Creatures       []CreatureView

	DialogueText     string
	DialogueRevealed bool
}

// View returns the current render snapshot.
func (g *Game) View() View {
	px, py := g.player.RenderPosition(TileSize)
	v := View{
		State:            g.state,
		Map:              g.tileMap,
		CameraX:          g.camera.X,
		CameraY:          g.camera.Y,
		PlayerX:          px,
		PlayerY:          py,
		Facing:           g.player.Direction,
		Moving:           g.player.IsMoving(),
		WalkFrame:        g.player.WalkFrame(),
		HP:               g.player.HP,
		MaxHP:            g.player.MaxHP,
		Level:            g.player.Level,
		Exp:              g.player.Exp,
		InventoryOpen:    g.inventoryOpen,
		InventoryCursor:  g.inventoryCursor,
		DialogueText:     g.dialogue.Text(),
		DialogueRevealed: g.dialogue.Revealed(),
	}

	if bv, ok := g.battle.View(); ok {
		v.Battle = &bv
	}
	for _, c := range g.inventory.Creatures() {
		v.Creatures = append(v.Creatures, CreatureView{
			Name:  c.Name,
			Type:  c.Type,
			Level: c.Level,
			HP:    c.HP,
			MaxHP: c.MaxHP,
		})
	}
	return v
}
