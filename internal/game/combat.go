package game

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terracreatures/internal/battle"
	"github.com/samdwyer/terracreatures/internal/entity"
	"github.com/samdwyer/terracreatures/internal/telemetry"
)

// startBattle switches to battle mode against enemy.
func (g *Game) startBattle(ctx context.Context, enemy *entity.Creature) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.encounter")
	span.SetAttributes(
		attribute.String("enemy.name", enemy.Name),
		attribute.Int("enemy.level", enemy.Level),
		attribute.Int("player.x", g.player.X),
		attribute.Int("player.y", g.player.Y),
	)
	defer span.End()

	g.inventoryOpen = false
	g.state = StateBattle
	g.battle.Start(ctx, g.player, g.inventory, enemy)
	log.Printf("game: wild %s (level %d) at (%d,%d)", enemy.Name, enemy.Level, g.player.X, g.player.Y)
}

// onBattleEnd is the battle system's outcome callback: back to exploring,
// then save.
func (g *Game) onBattleEnd(ctx context.Context, outcome battle.Outcome) {
	g.state = StateExploration
	g.save(ctx)

	if outcome == battle.OutcomeCaptured {
		if n := g.inventory.Len(); n > 0 {
			c, _ := g.inventory.At(n - 1)
			g.showMessage(fmt.Sprintf("%s joined your team!", c.Name), nil)
		}
	}
}
