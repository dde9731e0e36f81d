// Package building implements the building graph of spec.md §4.5: a
// grid-placed registry of processors, displays, memory cells/banks,
// messages, and switches, each exposing the narrow proc.BuildingAccess view
// a processor needs of any other building it references by link or sensor.
//
// Grounded on the teacher's pkg/engine/state.go (map[id]*struct registries,
// auto-incrementing ids) and on original_source/src/vm/buildings.rs for the
// base-name table and memory sizing spec.md leaves unspecified.
package building

import (
	"strings"

	"github.com/zurustar/mindy/internal/mlog/draw"
	"github.com/zurustar/mindy/internal/mlog/grid"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// Building is one entry in the registry: a grid-placed object with
// kind-specific state. A Processor-kind Building owns a *proc.Processor;
// every other kind is plain state queried/mutated by BuildingAccess.
type Building struct {
	id   value.BuildingID
	kind Kind
	pos  grid.Position
	name string
	dead bool

	proc *proc.Processor

	display draw.Display

	memory []value.Value

	messageText string

	switchEnabled bool
}

// ID returns the building's stable identity.
func (b *Building) ID() value.BuildingID { return b.id }

// Kind returns what this building is.
func (b *Building) Kind() Kind { return b.kind }

// Pos returns the building's grid position (its footprint's origin tile).
func (b *Building) Pos() grid.Position { return b.pos }

// Name returns the building's auto-generated name.
func (b *Building) Name() string { return b.name }

// Processor returns the backing processor, or nil if this isn't a
// Processor-kind building.
func (b *Building) Processor() *proc.Processor { return b.proc }

// Alive reports whether this building is still in the registry.
func (b *Building) Alive() bool { return !b.dead }

// Sensor implements proc.BuildingAccess: a small set of generic attributes
// (position, display size, switch state) plus Null for anything this
// implementation doesn't model (e.g. item/liquid inventories — out of scope
// per spec.md's "content-data tables ... opaque injected catalog").
func (b *Building) Sensor(attr string) value.Value {
	name := strings.TrimPrefix(attr, "@")
	switch name {
	case "x":
		return value.FromFloat(float64(b.pos.X))
	case "y":
		return value.FromFloat(float64(b.pos.Y))
	case "dead":
		return boolValue(b.dead)
	case "enabled":
		if b.kind == Switch {
			return boolValue(b.switchEnabled)
		}
	case "displayWidth":
		if b.kind == Display {
			return value.FromFloat(float64(b.display.Width))
		}
	case "displayHeight":
		if b.kind == Display {
			return value.FromFloat(float64(b.display.Height))
		}
	case "memoryCapacity":
		return value.FromFloat(float64(len(b.memory)))
	}
	return value.Null
}

func boolValue(v bool) value.Value {
	if v {
		return value.FromFloat(1)
	}
	return value.FromFloat(0)
}

// MemoryRead implements proc.BuildingAccess; an out-of-range index returns
// Null rather than erroring (spec.md §7: runtime soft errors never fail).
func (b *Building) MemoryRead(index int64) value.Value {
	if index < 0 || int(index) >= len(b.memory) {
		return value.Null
	}
	return b.memory[index]
}

// MemoryWrite implements proc.BuildingAccess; out-of-range writes are
// no-ops.
func (b *Building) MemoryWrite(index int64, v value.Value) {
	if index < 0 || int(index) >= len(b.memory) {
		return
	}
	b.memory[index] = v
}

// ReceiveDraw implements proc.BuildingAccess for a Display building; on any
// other kind the batch is simply discarded.
func (b *Building) ReceiveDraw(batch []draw.Command) {
	if b.kind != Display {
		return
	}
	b.display.Receive(batch)
}

// DisplayBatch returns the most recently flushed draw batch, for a host
// renderer to consume.
func (b *Building) DisplayBatch() []draw.Command { return b.display.LastBatch }

// SetMessageText implements proc.BuildingAccess for a Message building;
// applied through printflush or directly by the host, both paths clamp to
// the 220-char/24-line caps.
func (b *Building) SetMessageText(text string) {
	if b.kind != Message {
		return
	}
	b.messageText = draw.ClampMessageText(text)
}

// MessageText returns the message building's current text.
func (b *Building) MessageText() string { return b.messageText }

// SwitchEnabled implements proc.BuildingAccess.
func (b *Building) SwitchEnabled() bool { return b.switchEnabled }

// SetSwitchEnabled implements proc.BuildingAccess.
func (b *Building) SetSwitchEnabled(v bool) {
	if b.kind != Switch {
		return
	}
	b.switchEnabled = v
}

// LinkCount implements proc.BuildingAccess: for a non-processor building
// this is always 0 — only processors hold a link table.
func (b *Building) LinkCount() int64 {
	if b.proc == nil {
		return 0
	}
	return b.proc.LinkCount()
}
