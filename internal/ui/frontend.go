package ui

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/terracreatures/internal/game"
	"github.com/samdwyer/terracreatures/internal/gamedata"
)

// Frontend connects a terminal screen to the game loop.
type Frontend struct {
	screen   *Screen
	renderer *Renderer

	inputsOnce sync.Once
	inputs     chan game.Input
	resized    atomic.Bool
}

// NewFrontend creates a frontend drawing to screen.
func NewFrontend(screen *Screen, species *gamedata.SpeciesRegistry) *Frontend {
	return &Frontend{
		screen:   screen,
		renderer: NewRenderer(screen, species),
	}
}

// Viewport returns the visible map area in tiles.
func (f *Frontend) Viewport() (cols, rows int) {
	w, h := f.screen.Size()
	return viewportFor(w, h)
}

// Draw renders a frame, repainting everything after a terminal resize.
func (f *Frontend) Draw(v game.View) {
	if f.resized.Swap(false) {
		f.screen.Sync()
	}
	f.renderer.Render(v)
}

// Inputs returns translated key presses. Terminal events are read on a
// separate goroutine and only forwarded; the channel closes with the screen.
func (f *Frontend) Inputs() <-chan game.Input {
	f.inputsOnce.Do(func() {
		f.inputs = make(chan game.Input, 16)
		go func() {
			defer close(f.inputs)
			for ev := range f.screen.Events() {
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if in, ok := InputFor(ev); ok {
						f.inputs <- in
					}
				case *tcell.EventResize:
					f.resized.Store(true)
				}
			}
		}()
	})
	return f.inputs
}

var _ game.Frontend = (*Frontend)(nil)
