package proc

import (
	"github.com/zurustar/mindy/internal/mlog/draw"
	"github.com/zurustar/mindy/internal/mlog/grid"
	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// The accessors below give the exec package (which owns the fetch-dispatch
// loop and per-opcode semantics) everything it needs from a Processor
// without proc importing exec back — exec depends on proc, never the
// reverse.

// Pos returns the processor building's grid position.
func (p *Processor) Pos() grid.Position { return p.pos }

// ProgramLen returns the number of assembled instructions.
func (p *Processor) ProgramLen() int { return len(p.program.Instructions) }

// Instruction returns the i'th assembled instruction.
func (p *Processor) Instruction(i int) opcode.Instruction { return p.program.Instructions[i] }

// PC returns the current program counter.
func (p *Processor) PC() int { return p.pc }

// SetPC sets the program counter directly (used by jump/end wrap-around);
// out-of-range values wrap modulo program length, per spec.md §4.4.
func (p *Processor) SetPC(i int) {
	n := len(p.program.Instructions)
	if n == 0 {
		p.pc = 0
		return
	}
	m := i % n
	if m < 0 {
		m += n
	}
	p.pc = m
}

// AdvancePC moves the program counter forward by one, wrapping to 0 at the
// end of the program (spec.md §4.4: "If PC reaches program end, it wraps to
// 0").
func (p *Processor) AdvancePC() {
	n := len(p.program.Instructions)
	if n == 0 {
		p.pc = 0
		return
	}
	p.pc++
	if p.pc >= n {
		p.pc = 0
	}
}

// Halt sets the halted flag (`stop`); a halted processor executes zero
// instructions per tick until Configure is called again.
func (p *Processor) Halt() { p.halted = true }

// Sleep puts the processor to sleep until wakeAt (`wait`).
func (p *Processor) Sleep(wakeAt float64) {
	p.sleeping = true
	p.wakeAt = wakeAt
}

// Sleeping reports whether the processor is currently waiting, and if so,
// the deadline it is waiting for.
func (p *Processor) Sleeping() (bool, float64) { return p.sleeping, p.wakeAt }

// WakeIfReady clears the sleep flag once now has reached the wake deadline.
func (p *Processor) WakeIfReady(now float64) {
	if p.sleeping && now >= p.wakeAt {
		p.sleeping = false
	}
}

// Get reads variable slot i (see vars.go for dynamic/constant resolution).
func (p *Processor) Get(slot int, clock Clock) value.Value { return p.get(slot, clock) }

// Set writes variable slot i (read-only slots silently ignore the write).
func (p *Processor) Set(slot int, v value.Value) { p.set(slot, v) }

// SetCounterValue applies spec.md's @counter write rule directly (used by
// the `set @counter ...` instruction, which must bypass the normal
// read-only check since @counter is the one writable reserved name).
func (p *Processor) SetCounterValue(v value.Value) { p.setCounter(v) }

// DrawBuffer returns the processor's pending draw command buffer.
func (p *Processor) DrawBuffer() *draw.Buffer { return &p.drawBuf }

// PrintBuffer returns the processor's pending text buffer.
func (p *Processor) PrintBuffer() *draw.PrintBuffer { return &p.printBuf }

// LinkCount returns the number of currently bound links.
func (p *Processor) LinkCount() int64 { return int64(len(p.links)) }

// LinkAt returns the building id and grid position bound at link index i,
// for `getlink`.
func (p *Processor) LinkAt(i int64) (value.BuildingID, grid.Position, bool) {
	if i < 0 || int(i) >= len(p.links) {
		return value.InvalidBuilding, grid.Position{}, false
	}
	return p.links[i].ID, p.links[i].Pos, true
}

// Var reads a named variable's current value, resolving dynamic and counter
// slots against clock exactly as the fetch-dispatch loop would. It exists so
// callers outside the assembled program (tests, diagnostics) can read back a
// result without reaching into unexported state.
func (p *Processor) Var(name string, clock Clock) (value.Value, bool) {
	slot, ok := p.program.LookupSlot(name)
	if !ok {
		return value.Null, false
	}
	return p.get(slot, clock), true
}
