package engine

import (
	"sort"

	"github.com/kamstrup/intmap"
	"github.com/plus3/brickfall/breakout"
)

// Metrics accumulates gameplay counters across ticks.
type Metrics struct {
	Ticks           uint64
	PausedTicks     uint64
	PaddleHits      int
	BlocksDestroyed int
	LivesLost       int
	Restarts        int

	// block id -> tick it was destroyed on, for the current grid
	destroyedAt *intmap.Map[breakout.BlockID, uint64]
}

// DestroyedBlock is one entry of the destruction log.
type DestroyedBlock struct {
	ID   breakout.BlockID
	Tick uint64
}

func NewMetrics() *Metrics {
	return &Metrics{
		destroyedAt: intmap.New[breakout.BlockID, uint64](breakout.BlockRows * breakout.BlockColumns),
	}
}

// Record folds the outcome of one tick into the counters. A restart starts a new
// destruction log since the grid is regenerated.
func (m *Metrics) Record(s breakout.State, ev breakout.Events) {
	m.Ticks++
	if s.Paused() {
		m.PausedTicks++
	}
	if ev.Restarted {
		m.Restarts++
		m.destroyedAt.Clear()
	}
	if ev.PaddleHit {
		m.PaddleHits++
	}
	if ev.LifeLost {
		m.LivesLost++
	}
	for _, id := range ev.Destroyed {
		m.BlocksDestroyed++
		m.destroyedAt.Put(id, s.Tick)
	}
}

// DestroyedAt returns the tick a block was destroyed on.
func (m *Metrics) DestroyedAt(id breakout.BlockID) (uint64, bool) {
	return m.destroyedAt.Get(id)
}

// Destroyed returns the destruction log of the current grid ordered by tick.
func (m *Metrics) Destroyed() []DestroyedBlock {
	entries := make([]DestroyedBlock, 0, m.destroyedAt.Len())
	for id := breakout.BlockID(0); id < breakout.BlockRows*breakout.BlockColumns; id++ {
		if tick, ok := m.destroyedAt.Get(id); ok {
			entries = append(entries, DestroyedBlock{ID: id, Tick: tick})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Tick < entries[j].Tick
	})
	return entries
}
