package mindy

import "testing"

func TestAddProcessorAndTick(t *testing.T) {
	h := New()
	name, err := h.AddProcessor(Position{X: 0, Y: 0}, "micro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "micro-processor1" {
		t.Fatalf("expected micro-processor1, got %q", name)
	}

	res, err := h.SetProcessorConfig(Position{X: 0, Y: 0}, "set a 1\nset a 2\nend", nil)
	if err != nil {
		t.Fatalf("unexpected assembly error: %v", err)
	}
	if len(res.ResolvedLinks) != 0 {
		t.Fatalf("expected no links, got %v", res.ResolvedLinks)
	}

	h.Tick(16.6)
	h.Tick(33.2)
}

func TestLinkResolutionReportedToHost(t *testing.T) {
	h := New()
	if _, err := h.AddProcessor(Position{X: 0, Y: 0}, "micro"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := h.AddDisplay(Position{X: 1, Y: 0}, 80, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := h.SetProcessorConfig(Position{X: 0, Y: 0}, "sensor w display1 @displayWidth\nstop", []Position{{X: 1, Y: 0}})
	if err != nil {
		t.Fatalf("unexpected assembly error: %v", err)
	}
	if res.ResolvedLinks["1,0"] != "display1" {
		t.Fatalf("expected link at (1,0) to resolve to display1, got %v", res.ResolvedLinks)
	}

	h.Tick(0)

	w, ok := h.ProcessorVar(Position{X: 0, Y: 0}, "w")
	if !ok {
		t.Fatalf("expected w to be a known variable after sensing through the link")
	}
	if w != 80 {
		t.Fatalf("expected sensor w display1 @displayWidth to read 80, got %v", w)
	}
}

func TestRemoveBuildingIsNoopWhenAbsent(t *testing.T) {
	h := New()
	h.RemoveBuilding(Position{X: 5, Y: 5})
	if h.BuildingName(Position{X: 5, Y: 5}) != "" {
		t.Fatalf("expected empty building name at an empty tile")
	}
}

func TestSetSwitchEnabledNotifiesCallback(t *testing.T) {
	h := New()
	if _, err := h.AddSwitch(Position{X: 0, Y: 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got *BuildingUpdate
	h.SetBuildingUpdateCallback(func(u BuildingUpdate) { got = &u })
	h.SetSwitchEnabled(Position{X: 0, Y: 0}, true)

	if got == nil || got.SwitchEnabled == nil || !*got.SwitchEnabled {
		t.Fatalf("expected callback with SwitchEnabled=true, got %+v", got)
	}
}
