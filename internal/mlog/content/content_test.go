package content

import (
	"testing"

	"github.com/zurustar/mindy/internal/mlog/value"
)

func TestByNameResolvesKnownEntry(t *testing.T) {
	cat := Default()
	e, ok := cat.ByName(value.ContentItem, "copper")
	if !ok {
		t.Fatal("expected copper to resolve")
	}
	if e.LogicID != 0 {
		t.Fatalf("copper logic id = %d, want 0", e.LogicID)
	}
}

func TestByNameMissesAcrossKinds(t *testing.T) {
	cat := Default()
	if _, ok := cat.ByName(value.ContentLiquid, "copper"); ok {
		t.Fatal("copper is an item, not a liquid")
	}
}

func TestByLogicIDRoundTrip(t *testing.T) {
	cat := Default()
	want, ok := cat.ByName(value.ContentBlock, "logic-processor")
	if !ok {
		t.Fatal("expected logic-processor to resolve")
	}
	got, ok := cat.ByLogicID(value.ContentBlock, want.LogicID)
	if !ok || got.Name != "logic-processor" {
		t.Fatalf("ByLogicID(%d) = %+v, ok=%v", want.LogicID, got, ok)
	}
}

func TestSensorIDIsStableAndCompact(t *testing.T) {
	cat := Default()
	a := cat.SensorID("@displayWidth")
	b := cat.SensorID("@enabled")
	again := cat.SensorID("@displayWidth")
	if a != again {
		t.Fatalf("SensorID not stable: %d != %d", a, again)
	}
	if a == b {
		t.Fatal("distinct names must get distinct ids")
	}
	if cat.SensorName(a) != "@displayWidth" {
		t.Fatalf("SensorName(%d) = %q", a, cat.SensorName(a))
	}
}

func TestSensorNameOutOfRangeIsEmpty(t *testing.T) {
	cat := Default()
	if name := cat.SensorName(value.SensorID(999)); name != "" {
		t.Fatalf("expected empty name for unassigned id, got %q", name)
	}
}

func TestGlobalConstantsIncludesPi(t *testing.T) {
	consts := GlobalConstants()
	pi, ok := consts["@pi"]
	if !ok {
		t.Fatal("expected @pi constant")
	}
	if pi.Num() < 3.14 || pi.Num() > 3.15 {
		t.Fatalf("@pi = %v", pi.Num())
	}
}
