package proc

import (
	"github.com/zurustar/mindy/internal/mlog/draw"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// BuildingAccess is the narrow view a Processor needs of any other building
// it can reference: sensing, memory read/write, draw/message flush targets,
// and liveness. The building package's *Building implements this; proc
// depends only on the interface to avoid an import cycle (building owns
// Processor, not the other way around).
type BuildingAccess interface {
	Alive() bool
	Sensor(attr string) value.Value
	MemoryRead(index int64) value.Value
	MemoryWrite(index int64, v value.Value)
	ReceiveDraw(batch []draw.Command)
	SetMessageText(text string)
	SwitchEnabled() bool
	SetSwitchEnabled(bool)
	LinkCount() int64
}

// World resolves a BuildingRef to the building it names, or reports it
// dead/unknown. Instructions treat a failed Resolve exactly like a dead
// reference (spec.md §4.4).
type World interface {
	Resolve(id value.BuildingID) (BuildingAccess, bool)
}

// Clock supplies the scheduler-owned time values the dynamic pseudo-vars
// (@time, @tick, @second, @minute) read, per spec.md §4.6.
type Clock interface {
	TimeMillis() float64
	TickCount() int64
}
