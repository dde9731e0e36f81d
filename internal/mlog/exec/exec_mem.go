package exec

import (
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// attrName recovers the attribute name a `sensor` attribute operand names,
// whether it arrived as a catalog-assigned Sensor id, a Content reference
// (e.g. `@copper` used to ask "how much copper"), or a bare string.
func attrName(v value.Value, cat content.Catalog) string {
	if id, ok := v.AsSensor(); ok {
		return cat.SensorName(id)
	}
	if ref, ok := v.AsContent(); ok {
		if e, ok := cat.ByLogicID(ref.Kind, ref.LogicID); ok {
			return e.Name
		}
	}
	if s, ok := v.AsString(); ok {
		return s
	}
	return ""
}

// execSensor implements `sensor <dst> <obj> <attr>`. A dead or non-building
// obj resolves to Null, per spec.md §4.4.
func execSensor(p *proc.Processor, inst opcode.Instruction, w proc.World, clock proc.Clock, cat content.Catalog) {
	obj := read(p, inst.Operands[1], clock)
	attr := read(p, inst.Operands[2], clock)
	b, ok := resolveBuilding(obj, w)
	if !ok {
		write(p, inst.Operands[0], value.Null)
		return
	}
	write(p, inst.Operands[0], b.Sensor(attrName(attr, cat)))
}

// execGetLink implements `getlink <dst> <index>`.
func execGetLink(p *proc.Processor, inst opcode.Instruction, clock proc.Clock) {
	idx := value.ToInt64(read(p, inst.Operands[1], clock).Num())
	id, pos, ok := p.LinkAt(idx)
	if !ok {
		write(p, inst.Operands[0], value.Null)
		return
	}
	write(p, inst.Operands[0], value.BuildingAt(id, pos.X, pos.Y))
}

// execRead implements `read <dst> <cell> <index>`; a dead cell or an
// out-of-range index both degrade to Null rather than erroring.
func execRead(p *proc.Processor, inst opcode.Instruction, w proc.World, clock proc.Clock) {
	cell := read(p, inst.Operands[1], clock)
	idx := value.ToInt64(read(p, inst.Operands[2], clock).Num())
	b, ok := resolveBuilding(cell, w)
	if !ok {
		write(p, inst.Operands[0], value.Null)
		return
	}
	write(p, inst.Operands[0], b.MemoryRead(idx))
}

// execWrite implements `write <src> <cell> <index>`.
func execWrite(p *proc.Processor, inst opcode.Instruction, w proc.World, clock proc.Clock) {
	src := read(p, inst.Operands[0], clock)
	cell := read(p, inst.Operands[1], clock)
	idx := value.ToInt64(read(p, inst.Operands[2], clock).Num())
	b, ok := resolveBuilding(cell, w)
	if !ok {
		return
	}
	b.MemoryWrite(idx, src)
}

func lookupContentKind(k opcode.LookupKind) value.ContentKind {
	switch k {
	case opcode.LookupUnit:
		return value.ContentUnit
	case opcode.LookupItem:
		return value.ContentItem
	case opcode.LookupLiquid:
		return value.ContentLiquid
	default:
		return value.ContentBlock
	}
}

// execLookup implements `lookup <kind> <dst> <index>`, a catalog lookup by
// ordinal rather than by name.
func execLookup(p *proc.Processor, inst opcode.Instruction, cat content.Catalog, clock proc.Clock) {
	kind := lookupContentKind(opcode.LookupKind(inst.Operands[0].Selector))
	idx := int32(value.ToInt64(read(p, inst.Operands[2], clock).Num()))
	e, ok := cat.ByLogicID(kind, idx)
	if !ok {
		write(p, inst.Operands[1], value.Null)
		return
	}
	write(p, inst.Operands[1], value.Content(value.ContentRef{Kind: kind, LogicID: e.LogicID}))
}
