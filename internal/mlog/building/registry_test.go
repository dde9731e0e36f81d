package building

import (
	"testing"

	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/grid"
	"github.com/zurustar/mindy/internal/mlog/proc"
)

func newTestRegistry() *Registry {
	return NewRegistry(content.Default())
}

func TestAddProcessorAssignsSequentialNames(t *testing.T) {
	r := newTestRegistry()
	p1, err := r.AddProcessor(grid.Position{X: 0, Y: 0}, proc.Micro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p2, err := r.AddProcessor(grid.Position{X: 5, Y: 0}, proc.Micro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Name() != "micro-processor1" || p2.Name() != "micro-processor2" {
		t.Fatalf("got names %q, %q", p1.Name(), p2.Name())
	}
}

func TestAddProcessorCountsEachSubKindSeparately(t *testing.T) {
	r := newTestRegistry()
	micro, err := r.AddProcessor(grid.Position{X: 0, Y: 0}, proc.Micro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logic, err := r.AddProcessor(grid.Position{X: 5, Y: 0}, proc.Logic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	micro2, err := r.AddProcessor(grid.Position{X: 10, Y: 0}, proc.Micro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if micro.Name() != "micro-processor1" {
		t.Errorf("micro.Name() = %q, want micro-processor1", micro.Name())
	}
	if logic.Name() != "logic-processor1" {
		t.Errorf("logic.Name() = %q, want logic-processor1", logic.Name())
	}
	if micro2.Name() != "micro-processor2" {
		t.Errorf("micro2.Name() = %q, want micro-processor2", micro2.Name())
	}
}

func TestFootprintCollisionRejected(t *testing.T) {
	r := newTestRegistry()
	if _, err := r.AddDisplay(grid.Position{X: 0, Y: 0}, 80, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.AddProcessor(grid.Position{X: 1, Y: 1}, proc.Micro); err == nil {
		t.Fatalf("expected PositionOccupied for overlapping footprint")
	}
}

func TestNamesStableAfterRemoval(t *testing.T) {
	r := newTestRegistry()
	p1, _ := r.AddProcessor(grid.Position{X: 0, Y: 0}, proc.Micro)
	_, _ = r.AddProcessor(grid.Position{X: 3, Y: 0}, proc.Micro)

	if err := r.RemoveBuilding(p1.ID()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p3, err := r.AddProcessor(grid.Position{X: 6, Y: 0}, proc.Micro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p3.Name() != "micro-processor3" {
		t.Fatalf("expected micro-processor3 (counter never reused), got %q", p3.Name())
	}
}

func TestAtPositionResolvesFootprintTiles(t *testing.T) {
	r := newTestRegistry()
	d, _ := r.AddDisplay(grid.Position{X: 0, Y: 0}, 80, 80)
	name, id, ok := r.AtPosition(grid.Position{X: 2, Y: 2})
	if !ok || id != d.ID() || name != d.Name() {
		t.Fatalf("expected display footprint to cover (2,2), got ok=%v id=%v name=%q", ok, id, name)
	}
	if _, _, ok := r.AtPosition(grid.Position{X: 10, Y: 10}); ok {
		t.Fatalf("expected no building far from the display")
	}
}

func TestProcessorsOrderedByGridPosition(t *testing.T) {
	r := newTestRegistry()
	_, _ = r.AddProcessor(grid.Position{X: 5, Y: 5}, proc.Micro)
	_, _ = r.AddProcessor(grid.Position{X: 0, Y: 0}, proc.Micro)
	_, _ = r.AddProcessor(grid.Position{X: 2, Y: 0}, proc.Micro)

	procs := r.Processors()
	if len(procs) != 3 {
		t.Fatalf("expected 3 processors, got %d", len(procs))
	}
	for i := 1; i < len(procs); i++ {
		if !procs[i-1].Pos().Less(procs[i].Pos()) {
			t.Fatalf("processors not in ascending grid order at index %d", i)
		}
	}
}

func TestMemoryReadWriteRoundTrip(t *testing.T) {
	r := newTestRegistry()
	cell, err := r.AddMemory(grid.Position{X: 0, Y: 0}, MemoryCell)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cell.MemoryRead(0).Num() != 0 {
		t.Fatalf("expected default-initialized memory to read as 0")
	}
	cell.MemoryWrite(10, boolValue(true))
	if cell.MemoryRead(10).Num() != 1 {
		t.Fatalf("expected round-tripped write to read back")
	}
	if cell.MemoryRead(1000).Num() != 0 {
		t.Fatalf("expected out-of-range read to degrade to Null's numeric projection")
	}
}

func TestDeadBuildingReportsNotAlive(t *testing.T) {
	r := newTestRegistry()
	sw, _ := r.AddSwitch(grid.Position{X: 0, Y: 0})
	if err := r.RemoveBuilding(sw.ID()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sw.Alive() {
		t.Fatalf("expected removed building to report not alive")
	}
	if _, ok := r.Resolve(sw.ID()); ok {
		t.Fatalf("expected Resolve to fail for a removed building")
	}
}
