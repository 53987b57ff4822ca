// Package breakout implements the simulation step of a Breakout-style game.
//
// All game state lives in a single State value. Advance consumes the state and one
// tick worth of input and returns the next state; it never mutates its argument, so
// callers can keep earlier states around for comparison or replay.
package breakout
