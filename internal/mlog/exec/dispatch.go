package exec

import (
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// read resolves an Immediate or Var operand to its current Value.
func read(p *proc.Processor, op opcode.Operand, clock proc.Clock) value.Value {
	switch op.Kind {
	case opcode.OperandImmediate:
		return op.Imm
	case opcode.OperandVar:
		return p.Get(op.VarSlot, clock)
	default:
		return value.Null
	}
}

// write stores v into op's destination if op actually names a variable;
// writing through any other operand kind is a no-op, matching spec.md §7's
// "runtime soft error ... never fails" policy for malformed destinations.
func write(p *proc.Processor, op opcode.Operand, v value.Value) {
	if op.Kind == opcode.OperandVar {
		p.Set(op.VarSlot, v)
	}
}

// resolveBuilding coerces a read value to a BuildingAccess via w, treating
// anything that isn't a live BuildingRef as a dead reference (spec.md §4.4:
// sensors return Null, memory ops become no-ops, flushes discard).
func resolveBuilding(v value.Value, w proc.World) (proc.BuildingAccess, bool) {
	id, ok := v.AsBuilding()
	if !ok {
		return nil, false
	}
	b, ok := w.Resolve(id)
	if !ok || !b.Alive() {
		return nil, false
	}
	return b, true
}

// execOne runs the instruction at p's current PC and advances control
// state (PC, sleep, halt) accordingly, returning the budget cost it
// consumed (spec.md §4.3's drawflush/printflush surcharge, 1 otherwise).
// remaining is the budget left this tick, used to cap that surcharge.
func execOne(p *proc.Processor, inst opcode.Instruction, w proc.World, clock proc.Clock, cat content.Catalog, remaining int) int {
	switch inst.Op {
	case opcode.Set:
		execSet(p, inst, clock)
	case opcode.OpArith:
		execOp(p, inst, clock)
	case opcode.Jump:
		execJump(p, inst, clock)
		return 1
	case opcode.End:
		p.SetPC(0)
		return 1
	case opcode.Stop:
		p.Halt()
		return 1
	case opcode.Print:
		execPrint(p, inst, clock)
	case opcode.Draw:
		execDraw(p, inst, clock)
	case opcode.PrintFlush:
		p.AdvancePC()
		return execPrintFlush(p, inst, w, clock, remaining)
	case opcode.DrawFlush:
		p.AdvancePC()
		return execDrawFlush(p, inst, w, clock, remaining)
	case opcode.Sensor:
		execSensor(p, inst, w, clock, cat)
	case opcode.GetLink:
		execGetLink(p, inst, clock)
	case opcode.Read:
		execRead(p, inst, w, clock)
	case opcode.Write:
		execWrite(p, inst, w, clock)
	case opcode.Wait:
		execWait(p, inst, clock)
		return 1
	case opcode.LookupOp:
		execLookup(p, inst, cat, clock)
	case opcode.UControl, opcode.URadar, opcode.ULocate, opcode.GetBlock, opcode.SetBlock, opcode.Spawn, opcode.SetRate:
		execWorldOnly(p, inst, w, clock)
	default:
		p.AdvancePC()
		return 1
	}
	p.AdvancePC()
	return 1
}
