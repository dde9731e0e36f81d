package sched

import (
	"testing"

	"github.com/zurustar/mindy/internal/mlog/assembler"
	"github.com/zurustar/mindy/internal/mlog/building"
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/grid"
	"github.com/zurustar/mindy/internal/mlog/proc"
)

func TestTickAdvancesCounterAndTime(t *testing.T) {
	reg := building.NewRegistry(content.Default())
	s := New(reg, content.Default())

	s.Tick(16.6)
	if s.TickCount() != 1 {
		t.Fatalf("expected tick count 1, got %d", s.TickCount())
	}
	if s.TimeMillis() != 16.6 {
		t.Fatalf("expected TimeMillis 16.6, got %v", s.TimeMillis())
	}
	s.Tick(33.2)
	if s.TickCount() != 2 {
		t.Fatalf("expected tick count 2, got %d", s.TickCount())
	}
}

func TestTickRunsProcessorsInGridOrder(t *testing.T) {
	reg := building.NewRegistry(content.Default())
	s := New(reg, content.Default())

	b, err := reg.AddProcessor(grid.Position{X: 0, Y: 0}, proc.Micro)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	interner := assembler.NewInterner()
	if _, err := reg.Configure(b.ID(), "set a 1\nset a 2\nset a 3\nset a 4\nend", nil, interner); err != nil {
		t.Fatalf("unexpected assembly error: %v", err)
	}

	s.Tick(0)
	slot := b.Processor().ProgramCounter()
	if slot != 2 {
		t.Fatalf("expected PC 2 after one Micro (IPT=2) tick, got %d", slot)
	}
	a, _ := b.Processor().Var("a", s)
	if a.Num() != 2 {
		t.Fatalf("expected a=2 after tick 1, got %v", a.Num())
	}

	s.Tick(16.6)
	if pc := b.Processor().ProgramCounter(); pc != 4 {
		t.Fatalf("expected PC 4 after two ticks, got %d", pc)
	}
	a, _ = b.Processor().Var("a", s)
	if a.Num() != 4 {
		t.Fatalf("expected a=4 after tick 2, got %v", a.Num())
	}

	// Tick 3: `end` (PC 4) wraps the counter back to 0 at a cost of 1, then
	// the remaining budget unit runs `set a 1` at the top of the program.
	s.Tick(33.2)
	if pc := b.Processor().ProgramCounter(); pc != 1 {
		t.Fatalf("expected PC 1 after end wraps and one more instruction runs, got %d", pc)
	}
	a, _ = b.Processor().Var("a", s)
	if a.Num() != 1 {
		t.Fatalf("expected a=1 after tick 3's end-wrap, got %v", a.Num())
	}
}

func TestSetTargetFPSIsInformationalOnly(t *testing.T) {
	reg := building.NewRegistry(content.Default())
	s := New(reg, content.Default())
	s.SetTargetFPS(30)
	if s.TargetFPS() != 30 {
		t.Fatalf("expected TargetFPS to record 30, got %v", s.TargetFPS())
	}
	s.Tick(0)
	if s.TargetFPS() != 30 {
		t.Fatalf("Tick must not change TargetFPS")
	}
}
