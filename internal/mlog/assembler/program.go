package assembler

import "github.com/zurustar/mindy/internal/mlog/opcode"

// MaxInstructions is spec.md §4.2's silent truncation limit.
const MaxInstructions = 1000

// Program is the assembler's output: a flat instruction array plus the
// variable symbol table built while resolving operands. A Processor wraps a
// Program with per-slot runtime metadata (read-only/dynamic/link-bound) —
// the assembler itself knows nothing about pseudo-variables or links.
type Program struct {
	Instructions []opcode.Instruction
	VarNames     []string
	nameToSlot   map[string]int
}

func newProgram() *Program {
	return &Program{nameToSlot: make(map[string]int)}
}

// Empty returns a Program with no instructions but a live, usable symbol
// table. Processor.Configure falls back to this when assembly fails, so
// link resolution can still bind variable slots even though the program
// will execute nothing (spec.md §4.4: "a processor with an assembly error
// has an empty program ... but retains link metadata").
func Empty() *Program {
	return newProgram()
}

// Slot returns the slot index for name, allocating a new one on first
// reference (spec.md §4.2: "identifiers become variable slots, allocated on
// first reference").
func (p *Program) Slot(name string) int {
	if slot, ok := p.nameToSlot[name]; ok {
		return slot
	}
	slot := len(p.VarNames)
	p.VarNames = append(p.VarNames, name)
	p.nameToSlot[name] = slot
	return slot
}

// LookupSlot reports the slot for name without allocating one.
func (p *Program) LookupSlot(name string) (int, bool) {
	slot, ok := p.nameToSlot[name]
	return slot, ok
}

// NumSlots is the number of distinct variable names referenced.
func (p *Program) NumSlots() int {
	return len(p.VarNames)
}
