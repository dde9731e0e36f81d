// Package sched implements the fixed-step scheduler of spec.md §4.6: a
// single simulation tick per host tick() call, advancing every processor in
// ascending packed-grid-position order from an externally supplied
// timestamp. No catch-up of missed real-time ticks is attempted — the host
// throttles by how often it calls Tick.
//
// Grounded on the teacher's pkg/engine/engine.go Update()/UpdateVM() (global
// tick counter, per-call single pass over all active units), adapted from
// FILLY's sequence list to mlog's grid-ordered building registry.
package sched

import (
	"github.com/zurustar/mindy/internal/mlog/building"
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/exec"
)

// Scheduler drives one simulation step per Tick call, and is itself the
// proc.Clock every processor reads @time/@tick from.
type Scheduler struct {
	registry  *building.Registry
	catalog   content.Catalog
	tickCount int64
	timeMs    float64
	targetFPS float64
}

// New creates a scheduler over registry, defaulting to 60 target ticks per
// second (spec.md §4.6).
func New(registry *building.Registry, catalog content.Catalog) *Scheduler {
	return &Scheduler{registry: registry, catalog: catalog, targetFPS: 60}
}

// TimeMillis implements proc.Clock: the most recent host timestamp passed
// to Tick.
func (s *Scheduler) TimeMillis() float64 { return s.timeMs }

// TickCount implements proc.Clock: total simulation ticks run since start.
func (s *Scheduler) TickCount() int64 { return s.tickCount }

// SetTargetFPS records the host's target frame rate. It changes nothing
// functionally — the scheduler always runs exactly one simulation step per
// Tick call — and exists purely as information a host UI might display
// (spec.md §6: "adjusts nothing functionally ... informational only").
func (s *Scheduler) SetTargetFPS(fps float64) {
	if fps > 0 {
		s.targetFPS = fps
	}
}

// TargetFPS returns the last value passed to SetTargetFPS.
func (s *Scheduler) TargetFPS() float64 { return s.targetFPS }

// Tick runs exactly one simulation step: every live processor, in ascending
// grid order, executes up to its instructions-per-tick budget.
// hostTimestamp becomes the new @time/TimeMillis reading for this tick.
func (s *Scheduler) Tick(hostTimestamp float64) {
	s.timeMs = hostTimestamp
	s.tickCount++
	for _, b := range s.registry.Processors() {
		exec.Tick(b.Processor(), s.registry, s, s.catalog)
	}
}
