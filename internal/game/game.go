package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terracreatures/internal/battle"
	"github.com/samdwyer/terracreatures/internal/encounter"
	"github.com/samdwyer/terracreatures/internal/entity"
	"github.com/samdwyer/terracreatures/internal/gamedata"
	"github.com/samdwyer/terracreatures/internal/random"
	"github.com/samdwyer/terracreatures/internal/save"
	"github.com/samdwyer/terracreatures/internal/sched"
	"github.com/samdwyer/terracreatures/internal/telemetry"
	"github.com/samdwyer/terracreatures/internal/world"
)

const (
	// TileSize is the number of render units per tile. Render positions and
	// the camera are expressed in these units.
	TileSize = 32.0

	// Where a new game starts.
	startX = 10
	startY = 7

	// maxFrameDelta caps dt after the process was stalled.
	maxFrameDelta = 250 * time.Millisecond
)

// Game holds the entire game state. All methods must be called from the
// goroutine running the loop.
type Game struct {
	cfg   Config
	store save.Store
	rng   *rand.Rand
	now   func() time.Time

	sched      *sched.Scheduler
	species    *gamedata.SpeciesRegistry
	tileMap    *world.TileMap
	player     *entity.Player
	inventory  *entity.Inventory
	encounters *encounter.System
	battle     *battle.System
	dialogue   Dialogue
	camera     world.Camera

	state     State
	prevState State
	running   bool

	// Continuous input, latched until the next Update.
	heldDX, heldDY int

	inventoryOpen   bool
	inventoryCursor int

	viewCols, viewRows int
}

// New creates a game: it generates the map and restores the saved player
// and inventory when the store has a usable record. store may be nil, in
// which case nothing is persisted. A nil rng is seeded from cfg.Seed.
func New(ctx context.Context, cfg Config, store save.Store, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	if rng == nil {
		seed, err := random.Resolve(cfg.Seed)
		if err != nil {
			return nil, err
		}
		cfg.Seed = seed
		rng = rand.New(rand.NewSource(seed))
	}

	species, err := gamedata.LoadSpeciesRegistry()
	if err != nil {
		return nil, fmt.Errorf("load species: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		store:     store,
		rng:       rng,
		now:       time.Now,
		sched:     sched.New(),
		species:   species,
		state:     StateExploration,
		running:   true,
		viewCols:  cfg.MapWidth,
		viewRows:  cfg.MapHeight,
		inventory: entity.NewInventory(),
	}
	g.tileMap = world.Generate(ctx, cfg.MapWidth, cfg.MapHeight, rng)
	g.encounters = encounter.NewSystem(g.tileMap, species, rng)
	g.battle = battle.NewSystem(g.sched, rng, g.onBattleEnd)

	loaded := g.load(ctx)
	if !loaded {
		g.player = g.freshPlayer()
	}
	g.followCamera()

	g.showMessage("Welcome to TerraCreatures!", nil)
	g.showMessage("Walk through tall grass to meet wild creatures. Press I for your team.", nil)

	span.SetAttributes(
		attribute.Int64("game.seed", cfg.Seed),
		attribute.Int("map.width", cfg.MapWidth),
		attribute.Int("map.height", cfg.MapHeight),
		attribute.Bool("save.loaded", loaded),
		attribute.Int("player.x", g.player.X),
		attribute.Int("player.y", g.player.Y),
		attribute.Int("inventory.size", g.inventory.Len()),
	)
	return g, nil
}

// freshPlayer places a new player at the start cell, or the nearest
// walkable one.
func (g *Game) freshPlayer() *entity.Player {
	x, y, ok := g.tileMap.NearestWalkable(startX, startY)
	if !ok {
		x, y = startX, startY
	}
	return entity.NewPlayer(x, y)
}

// load restores the saved game. It reports false, leaving a fresh game in
// place, when there is nothing usable to restore.
func (g *Game) load(ctx context.Context) bool {
	if g.store == nil {
		return false
	}

	rec, err := g.store.Load(ctx)
	if errors.Is(err, save.ErrNoSave) {
		return false
	}
	if err != nil {
		log.Printf("game: ignoring saved game: %v", err)
		return false
	}

	player, inv, err := save.Restore(rec)
	if err != nil {
		log.Printf("game: ignoring saved game: %v", err)
		return false
	}

	// The map is regenerated each session, so the saved cell may be blocked.
	if !g.tileMap.IsWalkable(player.X, player.Y) {
		x, y, ok := g.tileMap.NearestWalkable(player.X, player.Y)
		if !ok {
			log.Printf("game: ignoring saved game: no walkable cell near (%d,%d)", player.X, player.Y)
			return false
		}
		log.Printf("game: saved position (%d,%d) is blocked, moving to (%d,%d)", player.X, player.Y, x, y)
		player.X, player.Y = x, y
		player.TargetX, player.TargetY = x, y
	}

	g.player = player
	g.inventory = inv
	log.Printf("game: loaded save from %s", time.UnixMilli(rec.Timestamp).Format(time.RFC3339))
	return true
}

// save persists the current player and inventory. Failures are logged only.
func (g *Game) save(ctx context.Context) {
	if g.store == nil {
		return
	}
	rec := save.Snapshot(g.player, g.inventory, g.now())
	if err := g.store.Save(ctx, rec); err != nil {
		log.Printf("game: save failed: %v", err)
	}
}

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Running reports whether the loop should keep going.
func (g *Game) Running() bool { return g.running }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Inventory returns the captured creatures.
func (g *Game) Inventory() *entity.Inventory { return g.inventory }

// Map returns the tile map.
func (g *Game) Map() *world.TileMap { return g.tileMap }

// Species returns the species table the game draws wild creatures from.
func (g *Game) Species() *gamedata.SpeciesRegistry { return g.species }

// SetViewport sets the visible area in tiles; the camera is clamped to it.
func (g *Game) SetViewport(cols, rows int) {
	if cols > 0 {
		g.viewCols = cols
	}
	if rows > 0 {
		g.viewRows = rows
	}
}

// HoldDirection latches a movement request for the next Update. Only one
// axis is used; horizontal wins when both are set.
func (g *Game) HoldDirection(dx, dy int) {
	switch {
	case dx != 0:
		g.heldDX, g.heldDY = sign(dx), 0
	case dy != 0:
		g.heldDX, g.heldDY = 0, sign(dy)
	}
}

// Handle applies a discrete input event.
func (g *Game) Handle(ctx context.Context, ev Event) {
	if ev == EventQuit {
		g.running = false
		return
	}

	switch g.state {
	case StateDialogue:
		if ev == EventConfirm {
			g.dialogue.Advance(ctx)
			if !g.dialogue.Active() && g.state == StateDialogue {
				g.state = g.prevState
			}
		}

	case StateBattle:
		switch ev {
		case EventUp:
			g.battle.SelectPrev()
		case EventDown:
			g.battle.SelectNext()
		case EventConfirm:
			g.battle.Confirm(ctx)
		}

	case StateExploration:
		g.handleInventoryEvent(ctx, ev)
	}
}

// Update advances the game by dt: deferred tasks, dialogue reveal and, while
// exploring, movement, encounters and autosave.
func (g *Game) Update(ctx context.Context, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	dx, dy := g.heldDX, g.heldDY
	g.heldDX, g.heldDY = 0, 0

	g.sched.Advance(ctx, dt)
	g.dialogue.Update(dt)

	if g.state == StateExploration && !g.inventoryOpen {
		g.updateExploration(ctx, dt, dx, dy)
	}
	g.followCamera()
}

func (g *Game) updateExploration(ctx context.Context, dt time.Duration, dx, dy int) {
	if dx != 0 || dy != 0 {
		g.player.Move(dx, dy, g.tileMap)
	}
	if !g.player.Tick(dt) {
		return
	}

	if enemy, ok := g.encounters.Check(g.player); ok {
		g.startBattle(ctx, enemy)
	}
	g.save(ctx)
}

func (g *Game) followCamera() {
	px, py := g.player.RenderPosition(TileSize)
	g.camera.Follow(px, py, TileSize,
		float64(g.viewCols)*TileSize, float64(g.viewRows)*TileSize, g.tileMap)
}

// showMessage queues a dialogue message and switches to the dialogue state.
func (g *Game) showMessage(text string, onDone func(ctx context.Context)) {
	g.dialogue.Show(text, onDone)
	if g.state != StateDialogue {
		g.prevState = g.state
		g.state = StateDialogue
	}
}

// Frontend draws views and delivers player input.
type Frontend interface {
	// Viewport returns the visible map area in tiles.
	Viewport() (cols, rows int)
	Draw(v View)
	Inputs() <-chan Input
}

// Run drives the game at the configured FPS until the player quits, the
// input channel closes or ctx is cancelled. The game is saved on exit.
func (g *Game) Run(ctx context.Context, fe Frontend) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()

	frames := 0
	defer func() {
		span.SetAttributes(attribute.Int("game.frames", frames))
		g.save(context.WithoutCancel(ctx))
	}()

	inputs := fe.Inputs()
	last := time.Now()
	g.draw(fe)

	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case in, ok := <-inputs:
			if !ok {
				g.running = false
				break
			}
			g.Dispatch(ctx, in)

		case now := <-ticker.C:
			dt := min(now.Sub(last), maxFrameDelta)
			last = now
			g.Update(ctx, dt)
			g.draw(fe)
			frames++
		}
	}
	return nil
}

func (g *Game) draw(fe Frontend) {
	g.SetViewport(fe.Viewport())
	g.followCamera()
	fe.Draw(g.View())
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
