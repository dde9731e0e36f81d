package exec

import (
	"math"

	"github.com/zurustar/mindy/internal/mlog/draw"
	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/proc"
)

// execPrint implements `print <value>`, appending its Display() text to
// the processor's print buffer (spec.md §4.1/§4.7).
func execPrint(p *proc.Processor, inst opcode.Instruction, clock proc.Clock) {
	v := read(p, inst.Operands[0], clock)
	p.PrintBuffer().Append(v.Display())
}

// execDraw implements `draw <subop> ...`, appending a draw.Command to the
// processor's draw buffer (spec.md §4.7).
func execDraw(p *proc.Processor, inst opcode.Instruction, clock proc.Clock) {
	sub := opcode.DrawSub(inst.Operands[0].Selector)
	var cmd draw.Command
	cmd.Sub = sub
	for i := 0; i < 6; i++ {
		cmd.Args[i] = read(p, inst.Operands[1+i], clock)
	}
	p.DrawBuffer().Append(cmd)
}

// flushCost applies spec.md §4.3's surcharge: ceil(payload/10) extra
// instructions beyond the base cost of 1, capped so the total never
// exceeds the tick's remaining budget.
func flushCost(payload, remaining int) int {
	cost := 1 + int(math.Ceil(float64(payload)/10))
	if cost > remaining {
		cost = remaining
	}
	if cost < 1 {
		cost = 1
	}
	return cost
}

// execPrintFlush implements `printflush <message>`.
func execPrintFlush(p *proc.Processor, inst opcode.Instruction, w proc.World, clock proc.Clock, remaining int) int {
	text := p.PrintBuffer().Flush()
	cost := flushCost(len(text), remaining)
	b, ok := resolveBuilding(read(p, inst.Operands[0], clock), w)
	if !ok {
		return cost
	}
	b.SetMessageText(draw.ClampMessageText(text))
	return cost
}

// execDrawFlush implements `drawflush <display>`.
func execDrawFlush(p *proc.Processor, inst opcode.Instruction, w proc.World, clock proc.Clock, remaining int) int {
	batch := p.DrawBuffer().Flush()
	cost := flushCost(len(batch), remaining)
	b, ok := resolveBuilding(read(p, inst.Operands[0], clock), w)
	if !ok {
		return cost
	}
	b.ReceiveDraw(batch)
	return cost
}
