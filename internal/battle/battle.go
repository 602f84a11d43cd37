package battle

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terracreatures/internal/combat"
	"github.com/samdwyer/terracreatures/internal/entity"
	"github.com/samdwyer/terracreatures/internal/sched"
	"github.com/samdwyer/terracreatures/internal/telemetry"
)

const (
	// EnemyTurnDelay is how long the enemy "thinks" before attacking.
	EnemyTurnDelay = 1000 * time.Millisecond

	// EndDelay is how long the result stays on screen before the outcome is
	// dispatched.
	EndDelay = 1500 * time.Millisecond
)

// EndFunc receives the outcome once a battle is over and its state dropped.
type EndFunc func(ctx context.Context, outcome Outcome)

// System owns at most one battle at a time.
type System struct {
	sched *sched.Scheduler
	rng   combat.Rand
	onEnd EndFunc

	state      *State
	generation uint64
	pending    sched.ID
}

// NewSystem creates a battle system. onEnd may be nil.
func NewSystem(s *sched.Scheduler, rng combat.Rand, onEnd EndFunc) *System {
	return &System{sched: s, rng: rng, onEnd: onEnd}
}

// SetOnEnd replaces the outcome callback.
func (b *System) SetOnEnd(fn EndFunc) { b.onEnd = fn }

// Active reports whether a battle is in progress, including one waiting to
// dispatch its outcome.
func (b *System) Active() bool { return b.state != nil }

// State returns the active battle, or nil.
func (b *System) State() *State { return b.state }

// Start begins a battle against enemy. The first inventory creature, if any,
// fights for the player. Any continuation still pending from a previous
// battle is dropped.
func (b *System) Start(ctx context.Context, player *entity.Player, inv *entity.Inventory, enemy *entity.Creature) {
	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.start")
	defer span.End()

	b.cancelPending()
	b.generation++

	st := &State{
		Player:     player,
		Inventory:  inv,
		Enemy:      enemy,
		Turn:       TurnPlayer,
		Phase:      PhaseSelect,
		Selected:   ActionAttack,
		generation: b.generation,
	}
	if inv != nil {
		st.Ally = inv.First()
	}
	st.addLog(fmt.Sprintf("A wild %s appeared!", enemy.Name))
	b.state = st

	span.SetAttributes(
		attribute.String("enemy.name", enemy.Name),
		attribute.Int("enemy.level", enemy.Level),
		attribute.Bool("has_ally", st.Ally != nil),
		attribute.Int64("battle.generation", int64(b.generation)),
	)
}

// Attack hits the enemy with the ally, or the player when there is none.
// It returns false when no action is allowed right now.
func (b *System) Attack(ctx context.Context) bool {
	st := b.state
	if st == nil || !st.canAct() {
		return false
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.action")
	defer span.End()

	attacker := st.attacker()
	damage := combat.RollDamage(b.rng, attacker)
	st.Enemy.TakeDamage(damage)
	st.TurnCount++

	if st.Ally == nil {
		st.addLog(fmt.Sprintf("You attack! Damage: %d", damage))
	} else {
		st.addLog(fmt.Sprintf("%s attacks! Damage: %d", attacker.GetName(), damage))
	}

	span.SetAttributes(
		attribute.String("action", ActionAttack.String()),
		attribute.String("actor", attacker.GetName()),
		attribute.Int("damage", damage),
		attribute.Int("enemy.hp", st.Enemy.HP),
	)

	if !st.Enemy.IsAlive() {
		b.end(ctx, OutcomeWin)
	} else {
		b.scheduleEnemyTurn()
	}
	return true
}

// Capture tries to catch the enemy. A successful roll with a full inventory
// is treated as a failed turn.
func (b *System) Capture(ctx context.Context) bool {
	st := b.state
	if st == nil || !st.canAct() || !st.Enemy.IsAlive() {
		return false
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.action")
	defer span.End()

	chance := combat.CaptureChance(st.Enemy.HP, st.Enemy.MaxHP)
	success := combat.RollCapture(b.rng, st.Enemy)
	st.TurnCount++

	span.SetAttributes(
		attribute.String("action", ActionCapture.String()),
		attribute.Float64("capture.chance", chance),
		attribute.Bool("capture.success", success),
	)

	if !success {
		st.addLog("Capture failed!")
		b.scheduleEnemyTurn()
		return true
	}

	captured := st.Enemy.Clone()
	if st.Inventory == nil || !st.Inventory.Add(captured) {
		span.SetAttributes(attribute.Bool("inventory.full", true))
		st.addLog("Inventory full!")
		b.scheduleEnemyTurn()
		return true
	}

	st.addLog(fmt.Sprintf("Captured %s!", captured.Name))
	b.end(ctx, OutcomeCaptured)
	return true
}

// Run tries to flee the battle.
func (b *System) Run(ctx context.Context) bool {
	st := b.state
	if st == nil || !st.canAct() {
		return false
	}

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.action")
	defer span.End()

	escaped := combat.RollEscape(b.rng)
	st.TurnCount++
	span.SetAttributes(
		attribute.String("action", ActionRun.String()),
		attribute.Bool("escaped", escaped),
	)

	if escaped {
		st.addLog("Got away safely!")
		b.end(ctx, OutcomeRan)
	} else {
		st.addLog("Can't escape!")
		b.scheduleEnemyTurn()
	}
	return true
}

// SelectNext moves the menu cursor down with wraparound.
func (b *System) SelectNext() {
	if st := b.state; st != nil && st.canAct() {
		st.Selected = Action((int(st.Selected) + 1) % actionCount)
	}
}

// SelectPrev moves the menu cursor up with wraparound.
func (b *System) SelectPrev() {
	if st := b.state; st != nil && st.canAct() {
		st.Selected = Action((int(st.Selected) + actionCount - 1) % actionCount)
	}
}

// Confirm performs the selected action.
func (b *System) Confirm(ctx context.Context) bool {
	st := b.state
	if st == nil || !st.canAct() {
		return false
	}
	switch st.Selected {
	case ActionAttack:
		return b.Attack(ctx)
	case ActionCapture:
		return b.Capture(ctx)
	case ActionRun:
		return b.Run(ctx)
	default:
		return false
	}
}

// attacker returns who fights on the player's side.
func (st *State) attacker() combat.Combatant {
	if st.Ally != nil {
		return st.Ally
	}
	return st.Player
}

// scheduleEnemyTurn hands the turn to the enemy after EnemyTurnDelay.
func (b *System) scheduleEnemyTurn() {
	st := b.state
	st.Turn = TurnEnemy
	st.Phase = PhaseAnimating

	gen := st.generation
	b.pending = b.sched.After(EnemyTurnDelay, func(ctx context.Context) {
		b.enemyTurn(ctx, gen)
	})
}

// enemyTurn resolves the enemy's attack. It does nothing if the battle that
// scheduled it is no longer the active one.
func (b *System) enemyTurn(ctx context.Context, gen uint64) {
	st := b.state
	if st == nil || st.generation != gen || st.Phase != PhaseAnimating {
		return
	}
	b.pending = 0

	tracer := telemetry.Tracer("battle")
	ctx, span := tracer.Start(ctx, "battle.enemy_turn")
	defer span.End()

	defender := st.attacker()
	damage := combat.RollDamage(b.rng, st.Enemy)
	defender.TakeDamage(damage)
	st.addLog(fmt.Sprintf("%s attacks! Damage: %d", st.Enemy.Name, damage))

	span.SetAttributes(
		attribute.String("defender", defender.GetName()),
		attribute.Int("damage", damage),
		attribute.Int("defender.hp", defender.GetHP()),
	)

	if defender.GetHP() <= 0 {
		b.end(ctx, OutcomeLose)
		return
	}
	st.Turn = TurnPlayer
	st.Phase = PhaseSelect
}

// end applies the outcome's side effects and schedules the dispatch.
func (b *System) end(ctx context.Context, outcome Outcome) {
	st := b.state
	st.Phase = PhaseEnd
	st.Outcome = outcome

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.end")
	defer span.End()

	switch outcome {
	case OutcomeWin:
		exp := combat.ExperienceFor(st.Enemy)
		st.addLog(fmt.Sprintf("You won! +%d EXP", exp))
		if st.Player.GainExp(exp) {
			st.addLog(fmt.Sprintf("Level up! Now level %d.", st.Player.Level))
			span.SetAttributes(attribute.Bool("level_up", true))
		}
		span.SetAttributes(attribute.Int("exp", exp))
	case OutcomeLose:
		st.addLog("You lost! HP restored...")
		st.Player.Heal(st.Player.MaxHP)
		if st.Ally != nil {
			st.Ally.Heal(st.Ally.MaxHP)
		}
	}

	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("turns_taken", st.TurnCount),
		attribute.Int("player.hp", st.Player.HP),
	)
	log.Printf("battle: %s vs %s ended: %s after %d turns", st.attacker().GetName(), st.Enemy.Name, outcome, st.TurnCount)

	gen := st.generation
	b.pending = b.sched.After(EndDelay, func(ctx context.Context) {
		b.dispatch(ctx, gen, outcome)
	})
}

// dispatch drops the battle state and notifies the owner.
func (b *System) dispatch(ctx context.Context, gen uint64, outcome Outcome) {
	st := b.state
	if st == nil || st.generation != gen {
		return
	}
	b.state = nil
	b.pending = 0
	if b.onEnd != nil {
		b.onEnd(ctx, outcome)
	}
}

// cancelPending removes any scheduled continuation of the current battle.
func (b *System) cancelPending() {
	if b.pending != 0 {
		b.sched.Cancel(b.pending)
		b.pending = 0
	}
}
