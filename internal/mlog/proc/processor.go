// Package proc implements the processor execution model of spec.md §4.4: a
// per-building instance holding its assembled program, dense variable
// store, link table, program counter, and sleep/halt state, plus the
// per-tick fetch-dispatch loop.
//
// Grounded on the teacher's pkg/vm/vm.go tick/run loop (functional-options
// construction, a central Execute dispatch) and on original_source's
// Processor/ProcessorState (src/vm/processor.rs) for the link-rebind-on-
// configure and counter-write semantics, adapted from the original's
// fractional-accumulator IPT budget to the flat integer-budget model
// spec.md §4.6 specifies.
package proc

import (
	"github.com/zurustar/mindy/internal/mlog/assembler"
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/draw"
	"github.com/zurustar/mindy/internal/mlog/grid"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// PositionResolver looks up the live building (if any) at a grid position,
// the query link binding needs to turn a host-supplied position list into
// named variable bindings.
type PositionResolver interface {
	AtPosition(pos grid.Position) (name string, id value.BuildingID, ok bool)
}

// MaxLinkDistance is the Chebyshev distance a non-world processor can bind
// a link across (spec.md §4.5); the world processor has no limit.
const MaxLinkDistance = 10

type linkEntry struct {
	Name string
	Pos  grid.Position
	ID   value.BuildingID
}

// Processor is one processor building's runtime state.
type Processor struct {
	id   value.BuildingID
	pos  grid.Position
	kind Kind
	ipt  int

	program *assembler.Program
	vars    []varSlot
	links   []linkEntry

	pc      int
	halted  bool
	sleeping bool
	wakeAt  float64

	drawBuf  draw.Buffer
	printBuf draw.PrintBuffer

	lastErr error
}

// New creates an unconfigured Processor: empty program, no variables, PC 0.
func New(id value.BuildingID, pos grid.Position, kind Kind) *Processor {
	return &Processor{
		id:      id,
		pos:     pos,
		kind:    kind,
		ipt:     kind.IPT(),
		program: assembler.Empty(),
	}
}

// ID returns the building id this processor backs.
func (p *Processor) ID() value.BuildingID { return p.id }

// Kind returns the processor's kind (Micro/Logic/Hyper/World).
func (p *Processor) Kind() Kind { return p.kind }

// LastError returns the assembly error from the most recent Configure call,
// or nil if it assembled cleanly.
func (p *Processor) LastError() error { return p.lastErr }

// Halted reports whether `stop` has halted the processor.
func (p *Processor) Halted() bool { return p.halted }

// ProgramCounter returns the processor's current PC, for tests and
// diagnostics.
func (p *Processor) ProgramCounter() int { return p.pc }

// Configure (re)assembles src, rebuilds the variable store, and rebinds
// links from linkPositions, per spec.md §4.4/§4.5. It returns the resolved
// {position: name} map for the host to render, and any assembly error
// (already recorded on the processor, not fatal to the caller).
func (p *Processor) Configure(src string, linkPositions []grid.Position, interner *assembler.Interner, catalog content.Catalog, resolver PositionResolver) (map[grid.Position]string, error) {
	prog, asmErr := assembler.Assemble(src, interner)
	if asmErr != nil {
		prog = assembler.Empty()
	}
	p.program = prog
	p.lastErr = asmErr
	p.pc = 0
	p.halted = false
	p.sleeping = false
	p.wakeAt = 0
	p.drawBuf = draw.Buffer{}
	p.printBuf = draw.PrintBuffer{}

	p.buildVars(catalog)
	resolved := p.bindLinks(linkPositions, resolver)
	return resolved, asmErr
}

func (p *Processor) ensureVarSlot(slot int) {
	for len(p.vars) <= slot {
		p.vars = append(p.vars, varSlot{kind: varNormal, val: value.Null})
	}
}

func (p *Processor) bindLinks(positions []grid.Position, resolver PositionResolver) map[grid.Position]string {
	p.links = nil
	resolved := make(map[grid.Position]string)
	unlimited := p.kind == WorldKind
	for _, pos := range positions {
		name, id, ok := resolver.AtPosition(pos)
		if !ok {
			continue
		}
		if !unlimited && p.pos.Chebyshev(pos) > MaxLinkDistance {
			continue
		}
		slot := p.program.Slot(name)
		p.ensureVarSlot(slot)
		p.vars[slot] = varSlot{kind: varLinkBound, val: value.BuildingAt(id, pos.X, pos.Y)}
		p.links = append(p.links, linkEntry{Name: name, Pos: pos, ID: id})
		resolved[pos] = name
	}
	return resolved
}

// CurrentIPT returns the processor's currently configured instructions per
// tick budget (World processors can change this with `setrate`).
func (p *Processor) CurrentIPT() int { return p.ipt }

// SetIPT sets the instructions-per-tick budget for a World processor,
// clamped to a sane range; original_source's setrate preserves this value
// across later reconfiguration, which this implementation matches by never
// resetting p.ipt inside Configure.
func (p *Processor) SetIPT(n int) {
	if n < 1 {
		n = 1
	}
	if n > 1000 {
		n = 1000
	}
	p.ipt = n
}
