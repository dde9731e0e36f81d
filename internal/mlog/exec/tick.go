// Package exec holds mlog's instruction dispatch table and the
// per-processor fetch/dispatch tick loop. Grounded on the teacher's
// pkg/vm/vm.go (a central Execute switch over opcode.Cmd) and
// pkg/engine/engine.go's UpdateVM (the bounded per-tick execute loop that
// stops early on wait/halt and otherwise runs until the instruction
// budget is spent), combined with original_source's step/do_tick
// (src/vm/processor.rs) for the exact PC-wrap and budget-accounting rules.
package exec

import (
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/proc"
)

// worldSafetyCap bounds the World processor kind's nominally "unlimited"
// per-tick budget so a pathological program (e.g. an unconditional jump
// loop with no wait/stop) cannot hang a Tick call forever. Real Mindustry
// imposes an analogous large-but-finite cap on its world processor; this is
// that same pragmatic bound, not a change to spec.md's IPT table.
const worldSafetyCap = 1_000_000

// Tick executes up to p's instruction budget, starting at its current PC,
// and returns how many instructions actually ran (0 if halted or still
// sleeping). Grounded on pkg/engine/engine.go's UpdateVM loop shape.
func Tick(p *proc.Processor, w proc.World, clock proc.Clock, cat content.Catalog) int {
	if p.Halted() {
		return 0
	}
	if sleeping, _ := p.Sleeping(); sleeping {
		p.WakeIfReady(clock.TimeMillis())
		if stillSleeping, _ := p.Sleeping(); stillSleeping {
			return 0
		}
	}
	if p.ProgramLen() == 0 {
		return 0
	}

	budget := p.CurrentIPT()
	limit := budget
	if budget < 0 {
		limit = worldSafetyCap
	}

	executed := 0
	for executed < limit {
		if p.Halted() {
			break
		}
		if sleeping, _ := p.Sleeping(); sleeping {
			break
		}
		inst := p.Instruction(p.PC())
		cost := execOne(p, inst, w, clock, cat, limit-executed)
		if cost < 1 {
			cost = 1
		}
		executed += cost
	}
	return executed
}
