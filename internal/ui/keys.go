package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terracreatures/internal/game"
)

// InputFor translates a key press. Directional keys carry both a step for
// movement and a menu event; the game uses whichever fits its state.
func InputFor(ev *tcell.EventKey) (game.Input, bool) {
	return inputForKey(ev.Key(), ev.Rune())
}

func inputForKey(key tcell.Key, r rune) (game.Input, bool) {
	switch key {
	case tcell.KeyUp:
		return game.Input{Event: game.EventUp, DY: -1}, true
	case tcell.KeyDown:
		return game.Input{Event: game.EventDown, DY: 1}, true
	case tcell.KeyLeft:
		return game.Input{DX: -1}, true
	case tcell.KeyRight:
		return game.Input{DX: 1}, true
	case tcell.KeyEnter:
		return game.Input{Event: game.EventConfirm}, true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		return game.Input{Event: game.EventBack}, true
	case tcell.KeyCtrlC:
		return game.Input{Event: game.EventQuit}, true
	case tcell.KeyRune:
		return runeInput(r)
	}
	return game.Input{}, false
}

func runeInput(r rune) (game.Input, bool) {
	switch unicode.ToLower(r) {
	case 'w':
		return game.Input{Event: game.EventUp, DY: -1}, true
	case 's':
		return game.Input{Event: game.EventDown, DY: 1}, true
	case 'a':
		return game.Input{DX: -1}, true
	case 'd':
		return game.Input{DX: 1}, true
	case ' ':
		return game.Input{Event: game.EventConfirm}, true
	case 'i':
		return game.Input{Event: game.EventInventory}, true
	case 'x':
		return game.Input{Event: game.EventRelease}, true
	case 'q':
		return game.Input{Event: game.EventQuit}, true
	}
	return game.Input{}, false
}
