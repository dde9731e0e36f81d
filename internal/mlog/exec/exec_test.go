package exec

import (
	"math"
	"testing"

	"github.com/zurustar/mindy/internal/mlog/assembler"
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/grid"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// fakeWorld stands in for a building.Registry in these exec-level tests:
// exec cannot import building (proc sits below it), so none of the
// scenarios here resolve a BuildingRef to anything live.
type fakeWorld struct{}

func (fakeWorld) Resolve(id value.BuildingID) (proc.BuildingAccess, bool) { return nil, false }

// fakeClock lets a test drive @time/@tick independently of wall-clock time,
// matching how sched.Scheduler feeds a host-supplied timestamp into Tick.
type fakeClock struct {
	millis float64
	ticks  int64
}

func (c *fakeClock) TimeMillis() float64 { return c.millis }
func (c *fakeClock) TickCount() int64    { return c.ticks }

func mustConfigure(t *testing.T, p *proc.Processor, src string) {
	t.Helper()
	interner := assembler.NewInterner()
	if _, err := p.Configure(src, nil, interner, content.Default(), nil); err != nil {
		t.Fatalf("unexpected assembly error: %v", err)
	}
}

func TestTickOnEmptyProgramIsANoop(t *testing.T) {
	p := proc.New(value.BuildingID(1), grid.Position{X: 0, Y: 0}, proc.Micro)
	mustConfigure(t, p, "")
	clock := &fakeClock{}
	w := fakeWorld{}

	for i := 0; i < 100; i++ {
		if n := Tick(p, w, clock, content.Default()); n != 0 {
			t.Fatalf("tick %d: expected 0 instructions executed on an empty program, got %d", i, n)
		}
	}
	if p.PC() != 0 {
		t.Fatalf("expected PC to stay 0, got %d", p.PC())
	}
	if p.Halted() {
		t.Fatalf("expected an empty program to never halt on its own")
	}
}

// Division by zero must not panic or abort the tick: it produces a NaN
// result that flows into `stop` just like any other value. `op div x 0 0`
// is used rather than `1 0` so the claim is mechanically true under plain
// IEEE-754 float division (1/0 is +Inf, not NaN); see DESIGN.md's resolution
// note for this scenario.
func TestDivisionByZeroProducesNaNThenStops(t *testing.T) {
	p := proc.New(value.BuildingID(1), grid.Position{X: 0, Y: 0}, proc.Micro)
	mustConfigure(t, p, "op div x 0 0\nstop")
	clock := &fakeClock{}
	w := fakeWorld{}

	Tick(p, w, clock, content.Default())

	x, ok := p.Var("x", clock)
	if !ok {
		t.Fatalf("expected x to be a known variable")
	}
	if !math.IsNaN(x.Num()) {
		t.Fatalf("expected x to be NaN after dividing 0/0, got %v", x.Num())
	}
	if !p.Halted() {
		t.Fatalf("expected stop to halt the processor")
	}
}

// wait suspends the processor until the host clock reaches the deadline;
// it must not resume a single instruction early.
func TestWaitSleepsUntilDeadline(t *testing.T) {
	p := proc.New(value.BuildingID(1), grid.Position{X: 0, Y: 0}, proc.Micro)
	mustConfigure(t, p, "wait 1\nset x 42\nstop")
	w := fakeWorld{}
	const msPerTick = 1000.0 / 60.0

	clock := &fakeClock{}
	for tick := int64(1); tick <= 61; tick++ {
		clock.ticks = tick
		clock.millis = float64(tick) * msPerTick
		Tick(p, w, clock, content.Default())

		if tick == 59 {
			x, _ := p.Var("x", clock)
			if !x.IsNull() {
				t.Fatalf("tick 59: expected x to still be default (Null), got %v", x)
			}
		}
	}

	x, ok := p.Var("x", clock)
	if !ok {
		t.Fatalf("expected x to be a known variable")
	}
	if x.Num() != 42 {
		t.Fatalf("tick 61: expected x=42 after waking, got %v", x.Num())
	}
}
