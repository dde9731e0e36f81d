package building

import (
	"fmt"
	"sort"

	"github.com/zurustar/mindy/internal/mlog/assembler"
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/draw"
	"github.com/zurustar/mindy/internal/mlog/grid"
	"github.com/zurustar/mindy/internal/mlog/mlogerr"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// Registry is the grid-keyed building graph of spec.md §4.5: every building
// a Host creates lives here, indexed by id and by the tiles its footprint
// covers, with per-kind counters driving stable auto-generated names.
type Registry struct {
	byID    map[value.BuildingID]*Building
	tiles   map[uint64]value.BuildingID
	nextID  value.BuildingID
	counts  map[string]int
	catalog content.Catalog
}

// NewRegistry creates an empty registry backed by cat for link/constant
// resolution during processor configuration.
func NewRegistry(cat content.Catalog) *Registry {
	return &Registry{
		byID:    make(map[value.BuildingID]*Building),
		tiles:   make(map[uint64]value.BuildingID),
		counts:  make(map[string]int),
		catalog: cat,
	}
}

func (r *Registry) footprintTiles(pos grid.Position, k Kind) []grid.Position {
	n := k.Footprint()
	tiles := make([]grid.Position, 0, n*n)
	for dx := int32(0); dx < n; dx++ {
		for dy := int32(0); dy < n; dy++ {
			tiles = append(tiles, grid.Position{X: pos.X + dx, Y: pos.Y + dy})
		}
	}
	return tiles
}

func (r *Registry) footprintFree(tiles []grid.Position) bool {
	for _, t := range tiles {
		if _, occupied := r.tiles[t.Key()]; occupied {
			return false
		}
	}
	return true
}

func (r *Registry) place(pos grid.Position, k Kind, baseName string) (*Building, error) {
	tiles := r.footprintTiles(pos, k)
	if !r.footprintFree(tiles) {
		return nil, mlogerr.NewPositionOccupied(pos.X, pos.Y)
	}
	r.counts[baseName]++
	id := r.nextID
	r.nextID++
	b := &Building{
		id:   id,
		kind: k,
		pos:  pos,
		name: fmt.Sprintf("%s%d", baseName, r.counts[baseName]),
	}
	r.byID[id] = b
	for _, t := range tiles {
		r.tiles[t.Key()] = id
	}
	return b, nil
}

// AddProcessor creates a new Processor-kind building at pos, named and
// counted under its own sub-kind's base name (spec.md §4.5): a micro and a
// logic processor placed side by side are "micro-processor1" and
// "logic-processor1", not sharing one "processor" counter.
func (r *Registry) AddProcessor(pos grid.Position, kind proc.Kind) (*Building, error) {
	b, err := r.place(pos, Processor, ProcessorBaseName(kind))
	if err != nil {
		return nil, err
	}
	b.proc = proc.New(b.id, pos, kind)
	return b, nil
}

// AddDisplay creates a new Display-kind building at pos with the given
// pixel dimensions.
func (r *Registry) AddDisplay(pos grid.Position, width, height int) (*Building, error) {
	b, err := r.place(pos, Display, Display.BaseName())
	if err != nil {
		return nil, err
	}
	b.display = draw.Display{Width: width, Height: height}
	return b, nil
}

// AddMemory creates a new memory building (MemoryCell or MemoryBank) at
// pos, sized per kind.MemorySlots().
func (r *Registry) AddMemory(pos grid.Position, kind Kind) (*Building, error) {
	b, err := r.place(pos, kind, kind.BaseName())
	if err != nil {
		return nil, err
	}
	b.memory = make([]value.Value, kind.MemorySlots())
	return b, nil
}

// AddMessage creates a new Message-kind building at pos.
func (r *Registry) AddMessage(pos grid.Position) (*Building, error) {
	return r.place(pos, Message, Message.BaseName())
}

// AddSwitch creates a new Switch-kind building at pos.
func (r *Registry) AddSwitch(pos grid.Position) (*Building, error) {
	return r.place(pos, Switch, Switch.BaseName())
}

// RemoveBuilding deletes the building with the given id, freeing its tiles.
// The name counters are never decremented, so names stay stable for the
// buildings that remain (spec.md §4.5: "Names are stable once assigned").
func (r *Registry) RemoveBuilding(id value.BuildingID) error {
	b, ok := r.byID[id]
	if !ok {
		return mlogerr.NewBuildingNotFound(fmt.Sprintf("id %d", id))
	}
	b.dead = true
	for _, t := range r.footprintTiles(b.pos, b.kind) {
		delete(r.tiles, t.Key())
	}
	delete(r.byID, id)
	return nil
}

// Get returns the building with the given id, if it's still alive.
func (r *Registry) Get(id value.BuildingID) (*Building, bool) {
	b, ok := r.byID[id]
	if !ok || b.dead {
		return nil, false
	}
	return b, true
}

// Resolve implements proc.World.
func (r *Registry) Resolve(id value.BuildingID) (proc.BuildingAccess, bool) {
	b, ok := r.Get(id)
	if !ok {
		return nil, false
	}
	return b, true
}

// AtPosition implements proc.PositionResolver: the building (if any) whose
// footprint covers pos.
func (r *Registry) AtPosition(pos grid.Position) (string, value.BuildingID, bool) {
	id, ok := r.tiles[pos.Key()]
	if !ok {
		return "", value.InvalidBuilding, false
	}
	b := r.byID[id]
	return b.name, id, true
}

// Catalog returns the content catalog this registry resolves constants and
// sensors against.
func (r *Registry) Catalog() content.Catalog { return r.catalog }

// Processors returns every live Processor-kind building in ascending
// packed-grid-position order — the iteration order spec.md §4.6's scheduler
// requires ("processors execute in ascending packed-grid-position order").
func (r *Registry) Processors() []*Building {
	var out []*Building
	for _, b := range r.byID {
		if !b.dead && b.kind == Processor {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].pos.Less(out[j].pos) })
	return out
}

// All returns every live building, in the same grid order as Processors.
func (r *Registry) All() []*Building {
	var out []*Building
	for _, b := range r.byID {
		if !b.dead {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].pos.Less(out[j].pos) })
	return out
}

// Configure assembles src onto the Processor-kind building id, rebinding its
// links against linkPositions. It is the one path that mutates a
// processor's program, so the Host façade's SetProcessorConfig goes through
// here rather than reaching into Building directly.
func (r *Registry) Configure(id value.BuildingID, src string, linkPositions []grid.Position, interner *assembler.Interner) (map[grid.Position]string, error) {
	b, ok := r.Get(id)
	if !ok || b.kind != Processor {
		return nil, mlogerr.NewInvalidBuildingOp("Configure", "non-processor")
	}
	return b.proc.Configure(src, linkPositions, interner, r.catalog, r)
}
