// Package battle runs a single wild-creature battle as a turn-based state
// machine. Deferred steps (the enemy's turn and the end-of-battle
// notification) are scheduled on a sched.Scheduler so the game loop keeps
// running while they wait.
package battle

import "github.com/samdwyer/terracreatures/internal/entity"

// Phase is the battle sub-state gating which actions are valid.
type Phase int

const (
	// PhaseSelect - player is choosing an action
	PhaseSelect Phase = iota
	// PhaseAnimating - enemy turn is pending
	PhaseAnimating
	// PhaseEnd - battle resolved, outcome dispatch pending
	PhaseEnd
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSelect:
		return "select"
	case PhaseAnimating:
		return "animating"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Turn says whose move it is.
type Turn int

const (
	TurnPlayer Turn = iota
	TurnEnemy
)

// String returns a human-readable turn name.
func (t Turn) String() string {
	switch t {
	case TurnPlayer:
		return "player"
	case TurnEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Outcome is how a battle ended.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLose
	OutcomeCaptured
	OutcomeRan
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeCaptured:
		return "captured"
	case OutcomeRan:
		return "ran"
	default:
		return "unknown"
	}
}

// Action is an entry of the battle menu.
type Action int

const (
	ActionAttack Action = iota
	ActionCapture
	ActionRun

	actionCount = 3
)

// Actions lists the menu entries in display order.
var Actions = []Action{ActionAttack, ActionCapture, ActionRun}

// String returns the menu label.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "Attack"
	case ActionCapture:
		return "Capture"
	case ActionRun:
		return "Run"
	default:
		return "unknown"
	}
}

// MaxLogLines is how many battle messages are kept.
const MaxLogLines = 4

// State holds everything about the active battle.
type State struct {
	Player    *entity.Player
	Inventory *entity.Inventory
	Enemy     *entity.Creature
	Ally      *entity.Creature // nil when the player fights bare-handed

	Turn      Turn
	Phase     Phase
	Selected  Action
	Outcome   Outcome // Valid once Phase is PhaseEnd
	TurnCount int

	log        []string
	generation uint64
}

// Log returns the recent battle messages, oldest first.
func (st *State) Log() []string {
	out := make([]string, len(st.log))
	copy(out, st.log)
	return out
}

// addLog appends a message, dropping the oldest beyond MaxLogLines.
func (st *State) addLog(msg string) {
	st.log = append(st.log, msg)
	if len(st.log) > MaxLogLines {
		st.log = st.log[len(st.log)-MaxLogLines:]
	}
}

// canAct reports whether the player may pick an action.
func (st *State) canAct() bool {
	return st.Phase == PhaseSelect && st.Turn == TurnPlayer
}
