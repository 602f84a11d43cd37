// Package game ties the map, player, encounters and battles together and
// owns save/load and the frame loop.
package game

// State represents the current game state.
type State int

const (
	// StateExploration is free movement on the tile map.
	StateExploration State = iota
	// StateBattle is an active wild-creature battle.
	StateBattle
	// StateDialogue shows queued messages until the player confirms them.
	StateDialogue
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExploration:
		return "exploration"
	case StateBattle:
		return "battle"
	case StateDialogue:
		return "dialogue"
	default:
		return "unknown"
	}
}
