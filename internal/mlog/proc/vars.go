package proc

import (
	"strings"

	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// varKind classifies a variable slot's read/write behavior, per spec.md
// §3's "Names starting with @ are read-only sensor-backed... names matching
// a link are read-only references... Reserved names: @counter (writable)."
type varKind int

const (
	varNormal    varKind = iota // ordinary read-write processor variable
	varConstant                 // fixed at configure time, writes ignored
	varDynamic                  // computed fresh on every read from clock/processor state
	varCounter                  // @counter: dynamic read, specially-coerced write
	varLinkBound                // bound by link resolution, writes ignored, may be rebound
)

type varSlot struct {
	kind varKind
	val  value.Value
}

var dynamicNames = map[string]bool{
	"@time":   true,
	"@tick":   true,
	"@second": true,
	"@minute": true,
	"@ipt":    true,
}

// buildVars allocates the per-slot metadata for a freshly assembled
// program, resolving every @-prefixed name to its constant, dynamic, or
// counter behavior. Ordinary identifiers start as Null per spec.md §3's
// "default initial value."
func (p *Processor) buildVars(catalog content.Catalog) {
	names := p.program.VarNames
	p.vars = make([]varSlot, len(names))
	for i, name := range names {
		switch {
		case name == "@counter":
			p.vars[i] = varSlot{kind: varCounter}
		case dynamicNames[name]:
			p.vars[i] = varSlot{kind: varDynamic}
		case strings.HasPrefix(name, "@"):
			p.vars[i] = varSlot{kind: varConstant, val: p.resolveAtConstant(name, catalog)}
		default:
			p.vars[i] = varSlot{kind: varNormal, val: value.Null}
		}
	}
}

func (p *Processor) resolveAtConstant(name string, catalog content.Catalog) value.Value {
	switch name {
	case "@this":
		return value.BuildingAt(p.id, p.pos.X, p.pos.Y)
	case "@thisx":
		return value.FromFloat(float64(p.pos.X))
	case "@thisy":
		return value.FromFloat(float64(p.pos.Y))
	case "@links":
		return value.FromFloat(float64(len(p.links)))
	case "@waveNumber", "@waveTime":
		// No wave/enemy simulation in scope (spec.md Non-goals exclude
		// non-logic game mechanics); always reads as 0.
		return value.FromFloat(0)
	}
	if gc, ok := content.GlobalConstants()[name]; ok {
		return gc
	}
	bare := strings.TrimPrefix(name, "@")
	for _, kind := range []value.ContentKind{value.ContentItem, value.ContentLiquid, value.ContentUnit, value.ContentBlock} {
		if e, ok := catalog.ByName(kind, bare); ok {
			return value.Content(value.ContentRef{Kind: kind, LogicID: e.LogicID})
		}
	}
	return value.Sensor(catalog.SensorID(name))
}

// get reads slot i, resolving dynamic and counter slots against the
// processor's live state.
func (p *Processor) get(slot int, clock Clock) value.Value {
	if slot < 0 || slot >= len(p.vars) {
		return value.Null
	}
	v := &p.vars[slot]
	switch v.kind {
	case varCounter:
		return value.FromFloat(float64(p.pc))
	case varDynamic:
		return p.dynamicValue(p.program.VarNames[slot], clock)
	default:
		return v.val
	}
}

func (p *Processor) dynamicValue(name string, clock Clock) value.Value {
	switch name {
	case "@time":
		return value.FromFloat(clock.TimeMillis())
	case "@tick":
		return value.FromFloat(float64(clock.TickCount()))
	case "@second":
		return value.FromFloat(clock.TimeMillis() / 1000)
	case "@minute":
		return value.FromFloat(clock.TimeMillis() / 60000)
	case "@ipt":
		return value.FromFloat(float64(p.ipt))
	}
	return value.Null
}

// set writes slot i. Constant, dynamic, and link-bound slots silently
// ignore the write (spec.md §3: "writes to read-only variables are
// silently ignored"); @counter gets the special coercion rule in
// setCounter.
func (p *Processor) set(slot int, v value.Value) {
	if slot < 0 || slot >= len(p.vars) {
		return
	}
	switch p.vars[slot].kind {
	case varCounter:
		p.setCounter(v)
	case varNormal:
		p.vars[slot].val = v
	default:
		// constant / dynamic / link-bound: read-only, ignore.
	}
}

// setCounter implements spec.md §9's resolved open question: "coerce to
// integer, then take modulo program-length." Coercion follows §4.1's normal
// numeric rule (non-numeric -> 0, BuildingRef -> x*y, …), applied by the
// caller before this is reached via numeric projection.
func (p *Processor) setCounter(v value.Value) {
	n := len(p.program.Instructions)
	if n == 0 {
		p.pc = 0
		return
	}
	i := value.ToInt64(v.Num())
	m := int(i % int64(n))
	if m < 0 {
		m += n
	}
	p.pc = m
}
