// Package content provides the injected content catalog mlog programs query
// through `sensor`, `lookup`, and block/item/liquid/unit literals (e.g.
// @copper, @water). spec.md treats the catalog as an opaque external table;
// this package supplies a small but real default implementation so those
// opcodes are exercised rather than stubbed, grounded on the name/logic-id
// tables in original_source/src/types/content.rs.
package content

import "github.com/zurustar/mindy/internal/mlog/value"

// Entry is one catalog row: a stable name and the logic id opcodes like
// `lookup` resolve it to.
type Entry struct {
	Name    string
	LogicID int32
	Kind    value.ContentKind
}

// Catalog resolves content names and ids, and hands out stable SensorIDs
// for `@name`-style attribute references that aren't otherwise recognized
// content or pseudo-variables (e.g. `@displayWidth`, `@enabled`). A Host may
// supply its own implementation; Default returns the built-in table.
type Catalog interface {
	ByName(kind value.ContentKind, name string) (Entry, bool)
	ByLogicID(kind value.ContentKind, id int32) (Entry, bool)
	SensorID(name string) value.SensorID
	SensorName(id value.SensorID) string
}

type tableCatalog struct {
	byName    map[value.ContentKind]map[string]Entry
	byID      map[value.ContentKind]map[int32]Entry
	sensorIDs map[string]value.SensorID
	sensorNm  []string
}

// NewTable builds a Catalog from a flat entry list, indexing by both name
// and logic id.
func NewTable(entries []Entry) Catalog {
	t := &tableCatalog{
		byName:    make(map[value.ContentKind]map[string]Entry),
		byID:      make(map[value.ContentKind]map[int32]Entry),
		sensorIDs: make(map[string]value.SensorID),
	}
	for _, e := range entries {
		if t.byName[e.Kind] == nil {
			t.byName[e.Kind] = make(map[string]Entry)
			t.byID[e.Kind] = make(map[int32]Entry)
		}
		t.byName[e.Kind][e.Name] = e
		t.byID[e.Kind][e.LogicID] = e
	}
	return t
}

func (t *tableCatalog) ByName(kind value.ContentKind, name string) (Entry, bool) {
	m, ok := t.byName[kind]
	if !ok {
		return Entry{}, false
	}
	e, ok := m[name]
	return e, ok
}

func (t *tableCatalog) ByLogicID(kind value.ContentKind, id int32) (Entry, bool) {
	m, ok := t.byID[kind]
	if !ok {
		return Entry{}, false
	}
	e, ok := m[id]
	return e, ok
}

// SensorID assigns (or returns the previously assigned) stable id for an
// attribute name, so the runtime can carry it around as a compact
// value.Sensor rather than a string inside a Value.
func (t *tableCatalog) SensorID(name string) value.SensorID {
	if id, ok := t.sensorIDs[name]; ok {
		return id
	}
	id := value.SensorID(len(t.sensorNm))
	t.sensorIDs[name] = id
	t.sensorNm = append(t.sensorNm, name)
	return id
}

func (t *tableCatalog) SensorName(id value.SensorID) string {
	if int(id) < 0 || int(id) >= len(t.sensorNm) {
		return ""
	}
	return t.sensorNm[id]
}

// Default returns a small real-world-flavored catalog: enough items,
// liquids, and units for mlog programs in tests and the headless CLI to
// reference by name.
func Default() Catalog {
	return NewTable([]Entry{
		{Name: "copper", LogicID: 0, Kind: value.ContentItem},
		{Name: "lead", LogicID: 1, Kind: value.ContentItem},
		{Name: "metaglass", LogicID: 2, Kind: value.ContentItem},
		{Name: "graphite", LogicID: 3, Kind: value.ContentItem},
		{Name: "sand", LogicID: 4, Kind: value.ContentItem},
		{Name: "coal", LogicID: 5, Kind: value.ContentItem},
		{Name: "titanium", LogicID: 6, Kind: value.ContentItem},
		{Name: "thorium", LogicID: 7, Kind: value.ContentItem},
		{Name: "scrap", LogicID: 8, Kind: value.ContentItem},
		{Name: "silicon", LogicID: 9, Kind: value.ContentItem},
		{Name: "plastanium", LogicID: 10, Kind: value.ContentItem},
		{Name: "phase-fabric", LogicID: 11, Kind: value.ContentItem},
		{Name: "surge-alloy", LogicID: 12, Kind: value.ContentItem},
		{Name: "spore-pod", LogicID: 13, Kind: value.ContentItem},
		{Name: "blast-compound", LogicID: 14, Kind: value.ContentItem},
		{Name: "pyratite", LogicID: 15, Kind: value.ContentItem},

		{Name: "water", LogicID: 0, Kind: value.ContentLiquid},
		{Name: "slag", LogicID: 1, Kind: value.ContentLiquid},
		{Name: "oil", LogicID: 2, Kind: value.ContentLiquid},
		{Name: "cryofluid", LogicID: 3, Kind: value.ContentLiquid},

		{Name: "flare", LogicID: 0, Kind: value.ContentUnit},
		{Name: "mace", LogicID: 1, Kind: value.ContentUnit},
		{Name: "poly", LogicID: 2, Kind: value.ContentUnit},

		{Name: "micro-processor", LogicID: 0, Kind: value.ContentBlock},
		{Name: "logic-processor", LogicID: 1, Kind: value.ContentBlock},
		{Name: "hyper-processor", LogicID: 2, Kind: value.ContentBlock},
		{Name: "world-processor", LogicID: 3, Kind: value.ContentBlock},
		{Name: "memory-cell", LogicID: 4, Kind: value.ContentBlock},
		{Name: "memory-bank", LogicID: 5, Kind: value.ContentBlock},
		{Name: "world-cell", LogicID: 6, Kind: value.ContentBlock},
		{Name: "message", LogicID: 7, Kind: value.ContentBlock},
		{Name: "world-message", LogicID: 8, Kind: value.ContentBlock},
		{Name: "switch", LogicID: 9, Kind: value.ContentBlock},
		{Name: "world-switch", LogicID: 10, Kind: value.ContentBlock},
		{Name: "display", LogicID: 11, Kind: value.ContentBlock},
		{Name: "large-display", LogicID: 12, Kind: value.ContentBlock},
	})
}

// GlobalConstants returns the @pi/@e/@degToRad/@radToDeg/@blockCount-style
// constant table, grounded on original_source's create_global_constants.
func GlobalConstants() map[string]value.Value {
	return map[string]value.Value{
		"@pi":        value.FromFloat(3.14159265358979323846),
		"@e":         value.FromFloat(2.71828182845904523536),
		"@degToRad":  value.FromFloat(0.017453292519943295),
		"@radToDeg":  value.FromFloat(57.29577951308232),
		"@maxIPT":    value.FromFloat(1000),
		"@links":     value.FromFloat(0),
	}
}
