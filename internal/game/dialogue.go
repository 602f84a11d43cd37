package game

import (
	"context"
	"time"
)

// revealRate is how many characters of a message appear per second.
const revealRate = 30.0

type message struct {
	text   []rune
	onDone func(ctx context.Context)
}

// Dialogue is a FIFO of messages shown one at a time with a typewriter
// reveal.
type Dialogue struct {
	queue    []message
	current  *message
	progress float64
}

// Show queues a message. onDone, if set, runs when the player dismisses it.
func (d *Dialogue) Show(text string, onDone func(ctx context.Context)) {
	d.queue = append(d.queue, message{text: []rune(text), onDone: onDone})
	if d.current == nil {
		d.next()
	}
}

// Active reports whether a message is on screen.
func (d *Dialogue) Active() bool { return d.current != nil }

// Pending returns the number of messages waiting behind the current one.
func (d *Dialogue) Pending() int { return len(d.queue) }

// Advance dismisses the current message, runs its callback and shows the
// next one.
func (d *Dialogue) Advance(ctx context.Context) {
	if d.current == nil {
		return
	}
	done := d.current.onDone
	d.next()
	if done != nil {
		done(ctx)
	}
}

// Update grows the revealed text by dt.
func (d *Dialogue) Update(dt time.Duration) {
	if d.current == nil {
		return
	}
	d.progress += dt.Seconds() * revealRate
	if n := float64(len(d.current.text)); d.progress > n {
		d.progress = n
	}
}

// Text returns the revealed part of the current message.
func (d *Dialogue) Text() string {
	if d.current == nil {
		return ""
	}
	return string(d.current.text[:int(d.progress)])
}

// Revealed reports whether the whole current message is visible.
func (d *Dialogue) Revealed() bool {
	return d.current != nil && int(d.progress) >= len(d.current.text)
}

func (d *Dialogue) next() {
	d.progress = 0
	if len(d.queue) == 0 {
		d.current = nil
		return
	}
	m := d.queue[0]
	d.queue = d.queue[1:]
	d.current = &m
}
