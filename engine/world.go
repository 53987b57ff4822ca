package engine

import "github.com/plus3/brickfall/breakout"

const inboxSize = 256

type inputEvent struct {
	click bool
	x     float64
}

// World owns the game state for one scheduler. State, Events and Metrics are only
// touched by systems running inside Scheduler.Once; input from other goroutines is
// handed over through MovePointer and Click.
type World struct {
	State   breakout.State
	Events  breakout.Events
	Metrics *Metrics

	inbox   chan inputEvent
	input   breakout.Input
	clicks  int
	pointer float64
	moved   bool
}

// NewWorld creates a world holding a fresh game for cfg.
func NewWorld(cfg breakout.Config) *World {
	return &World{
		State:   breakout.NewState(cfg),
		Metrics: NewMetrics(),
		inbox:   make(chan inputEvent, inboxSize),
	}
}

// MovePointer records a pointer position in surface coordinates. It never blocks;
// events are dropped while the inbox is full.
func (w *World) MovePointer(x float64) {
	select {
	case w.inbox <- inputEvent{x: x}:
	default:
	}
}

// Click records a click or tap. It never blocks.
func (w *World) Click() {
	select {
	case w.inbox <- inputEvent{click: true}:
	default:
	}
}

// TakeInput drains the inbox into the input for the next tick. Only the latest
// pointer position is kept; at most one click is consumed per tick and the rest
// carry over to the following ticks.
func (w *World) TakeInput() breakout.Input {
drain:
	for {
		select {
		case ev := <-w.inbox:
			if ev.click {
				w.clicks++
			} else {
				w.pointer = ev.x
				w.moved = true
			}
		default:
			break drain
		}
	}

	in := breakout.Input{PointerX: w.pointer, PointerMoved: w.moved}
	w.moved = false
	if w.clicks > 0 {
		in.Click = true
		w.clicks--
	}
	return in
}
