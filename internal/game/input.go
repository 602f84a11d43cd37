package game

import "context"

// Event is a discrete, edge-triggered input.
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventConfirm
	EventBack
	EventInventory
	EventRelease
	EventQuit
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventConfirm:
		return "confirm"
	case EventBack:
		return "back"
	case EventInventory:
		return "inventory"
	case EventRelease:
		return "release"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Input is one key press translated by the frontend. A directional key
// carries both a step (DX, DY) for movement and an Event for menus; the game
// decides which one applies in its current state.
type Input struct {
	Event  Event
	DX, DY int
}

// Dispatch feeds an input to both input channels.
func (g *Game) Dispatch(ctx context.Context, in Input) {
	if in.DX != 0 || in.DY != 0 {
		g.HoldDirection(in.DX, in.DY)
	}
	if in.Event != EventNone {
		g.Handle(ctx, in.Event)
	}
}
