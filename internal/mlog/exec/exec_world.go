package exec

import (
	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// execWorldOnly dispatches the world-processor-only opcodes. Outside a World
// processor these are no-ops (opcode.WorldOnly gates assembly already, but a
// reconfigured processor can change kind without reassembling, so the guard
// is repeated here). Unit/tile simulation itself is out of scope (spec.md
// Non-goals: "simulating non-logic game mechanics"), so ucontrol/uradar/
// ulocate/getblock/setblock/spawn are accepted syntactically and return Null
// results rather than faking a world simulation they have no model for.
// setrate is the one member of this family with real, in-scope effect.
func execWorldOnly(p *proc.Processor, inst opcode.Instruction, w proc.World, clock proc.Clock) {
	if p.Kind() != proc.WorldKind {
		return
	}
	switch inst.Op {
	case opcode.SetRate:
		ipt := value.ToInt64(read(p, inst.Operands[0], clock).Num())
		p.SetIPT(int(ipt))
	case opcode.UControl, opcode.Spawn, opcode.SetBlock:
		// Side-effecting unit/tile commands: accepted, no world model to
		// apply them to.
	case opcode.URadar, opcode.ULocate, opcode.GetBlock:
		// Query-style commands: degrade to Null rather than claiming a
		// a found target or tile this implementation cannot simulate.
		for _, op := range outputOperands(inst) {
			write(p, op, value.Null)
		}
	}
}

// outputOperands returns the operand slots a world query writes its result
// through. uradar/ulocate use the last operand as their output slot;
// getblock writes to its second operand.
func outputOperands(inst opcode.Instruction) []opcode.Operand {
	switch inst.Op {
	case opcode.GetBlock:
		return inst.Operands[1:2]
	default:
		return inst.Operands[inst.NumOps-1 : inst.NumOps]
	}
}
