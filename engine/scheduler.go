package engine

import (
	"context"
	"reflect"
	"time"
)

// SystemStats holds the timings of one registered system.
type SystemStats struct {
	Name  string
	Runs  int64
	Last  time.Duration
	Max   time.Duration
	Total time.Duration
}

// Avg returns the mean execution time, or zero before the first run.
func (st SystemStats) Avg() time.Duration {
	if st.Runs == 0 {
		return 0
	}
	return st.Total / time.Duration(st.Runs)
}

// SchedulerStats is a snapshot of a scheduler's frame count and system timings.
type SchedulerStats struct {
	Frames  int64
	Systems []SystemStats
}

type entry struct {
	system System
	stats  SystemStats
}

// Scheduler runs systems against a World, one frame at a time. Frames never
// overlap: Run only starts the next frame after the previous Once returned.
type Scheduler struct {
	world   *World
	entries []*entry
	frames  int64
}

// NewScheduler creates a new scheduler for the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{world: world}
}

// World returns the world the scheduler drives.
func (s *Scheduler) World() *World {
	return s.world
}

// Register appends a system to the frame. Stats are reported under the system's
// type name.
func (s *Scheduler) Register(system System) {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.entries = append(s.entries, &entry{
		system: system,
		stats:  SystemStats{Name: t.Name()},
	})
}

// Once executes all registered systems once with the given delta time, then
// flushes the deferred commands of the frame.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.world)

	for _, e := range s.entries {
		start := time.Now()
		e.system.Execute(frame)
		e.stats.record(time.Since(start))
	}

	frame.Commands.Flush()
	s.frames++
}

func (st *SystemStats) record(d time.Duration) {
	st.Runs++
	st.Last = d
	st.Total += d
	st.Max = max(st.Max, d)
}

// Run executes a frame on every tick of interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Once(now.Sub(last).Seconds())
			last = now
		}
	}
}

// GetStats returns a copy of the current stats in registration order.
func (s *Scheduler) GetStats() SchedulerStats {
	stats := SchedulerStats{
		Frames:  s.frames,
		Systems: make([]SystemStats, len(s.entries)),
	}
	for i, e := range s.entries {
		stats.Systems[i] = e.stats
	}
	return stats
}
