package exec

import (
	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// execSet implements `set dst value`, including the @counter special case:
// writing through a Var operand whose slot is the reserved counter slot
// takes the coerce-then-modulo rule (spec.md §9) instead of a plain store.
func execSet(p *proc.Processor, inst opcode.Instruction, clock proc.Clock) {
	v := read(p, inst.Operands[1], clock)
	write(p, inst.Operands[0], v)
}

// execJump implements `jump <label> <cmp> <a> <b>`.
func execJump(p *proc.Processor, inst opcode.Instruction, clock proc.Clock) {
	cmp := opcode.Cmp(inst.Operands[1].Selector)
	taken := cmp == opcode.Always
	if !taken {
		a := read(p, inst.Operands[2], clock)
		b := read(p, inst.Operands[3], clock)
		taken = evalCmp(cmp, a, b)
	}
	if taken && inst.Operands[0].Label >= 0 {
		p.SetPC(inst.Operands[0].Label)
		return
	}
	p.AdvancePC()
}

func evalCmp(cmp opcode.Cmp, a, b value.Value) bool {
	switch cmp {
	case opcode.CmpEqual:
		return value.Equal(a, b)
	case opcode.CmpNotEqual:
		return !value.Equal(a, b)
	case opcode.CmpLessThan:
		return a.Num() < b.Num()
	case opcode.CmpLessThanEq:
		return a.Num() <= b.Num()
	case opcode.CmpGreaterThan:
		return a.Num() > b.Num()
	case opcode.CmpGreaterThanEq:
		return a.Num() >= b.Num()
	case opcode.CmpStrictEqual:
		return value.StrictEqual(a, b)
	default:
		return false
	}
}

// execWait implements `wait <seconds>`: puts the processor to sleep until
// clock time + seconds*1000. The tick loop's sleeping check (exec/tick.go)
// is what actually stops further execution this tick, so this only needs
// to record the deadline and advance past the wait instruction for when it
// resumes.
func execWait(p *proc.Processor, inst opcode.Instruction, clock proc.Clock) {
	seconds := read(p, inst.Operands[0], clock).Num()
	if seconds < 0 {
		seconds = 0
	}
	p.AdvancePC()
	p.Sleep(clock.TimeMillis() + seconds*1000)
}
