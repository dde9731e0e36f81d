package building

import "github.com/zurustar/mindy/internal/mlog/proc"

// Kind identifies what a building is, driving its auto-generated base name
// and which BuildingAccess operations are meaningful on it (spec.md §3's
// "kind-specific state" list).
type Kind int

const (
	Processor Kind = iota
	Display
	MemoryCell
	MemoryBank
	Message
	Switch
)

// BaseName returns the name stem the registry appends a per-kind count to
// when auto-naming a new building (spec.md §4.5: "<kind-base-name><index>").
// Processor-kind buildings don't have a single base name: each of the four
// processor sub-kinds is counted and named separately, so callers placing a
// Processor must go through ProcessorBaseName instead.
func (k Kind) BaseName() string {
	switch k {
	case Processor:
		return "processor"
	case Display:
		return "display"
	case MemoryCell:
		return "cell"
	case MemoryBank:
		return "bank"
	case Message:
		return "message"
	case Switch:
		return "switch"
	default:
		return "building"
	}
}

// ProcessorBaseName returns the per-sub-kind base name a processor building
// is counted and named under, matching original_source/src/vm/buildings.rs's
// MICRO_PROCESSOR/LOGIC_PROCESSOR/HYPER_PROCESSOR/WORLD_PROCESSOR constants
// (spec.md §4.5's own example list names "micro-processor" alongside the
// generic "processor" stem, confirming the four sub-kinds don't share one
// counter).
func ProcessorBaseName(pk proc.Kind) string {
	switch pk {
	case proc.Micro:
		return "micro-processor"
	case proc.Logic:
		return "logic-processor"
	case proc.Hyper:
		return "hyper-processor"
	case proc.WorldKind:
		return "world-processor"
	default:
		return "processor"
	}
}

// Footprint returns the building's N×N tile size. Processors and memory/
// message/switch buildings are 1×1; displays are 3×3, matching Mindustry's
// logic-display footprint and giving link-distance tests something non-
// trivial to exercise.
func (k Kind) Footprint() int32 {
	if k == Display {
		return 3
	}
	return 1
}

// MemorySlots returns the f64 storage size for a memory building, a
// supplement pulled from original_source/src/vm/buildings.rs since spec.md
// only says memory ops "index into memory-cell building's f64 array"
// without giving its size.
func (k Kind) MemorySlots() int {
	switch k {
	case MemoryCell:
		return 64
	case MemoryBank:
		return 512
	default:
		return 0
	}
}
