// Package mindy is the external façade of spec.md §6: the building-graph
// and scheduler operations a front-end drives, wrapping
// internal/mlog/building and internal/mlog/sched behind position-addressed
// methods and JSON-tagged result structs.
//
// Grounded on the teacher's pkg/app.Application façade pattern (a struct
// holding injected dependencies plus a slog.Logger, exposing one method per
// host-visible operation) and pkg/engine/engine.go's public method surface.
package mindy

import (
	"fmt"
	"log/slog"

	"github.com/zurustar/mindy/internal/mlog/assembler"
	"github.com/zurustar/mindy/internal/mlog/building"
	"github.com/zurustar/mindy/internal/mlog/content"
	"github.com/zurustar/mindy/internal/mlog/draw"
	"github.com/zurustar/mindy/internal/mlog/grid"
	"github.com/zurustar/mindy/internal/mlog/mlogctx"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/sched"
)

// Position is the JSON-facing grid coordinate a front-end addresses
// buildings by.
type Position struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func (p Position) toGrid() grid.Position { return grid.Position{X: p.X, Y: p.Y} }

// BuildingUpdate is the payload delivered to a BuildingUpdateCallback
// whenever a tick changes a building's observable state (spec.md §6).
type BuildingUpdate struct {
	Position      Position          `json:"position"`
	Name          string            `json:"name"`
	AssemblyError string            `json:"assemblyError,omitempty"`
	ResolvedLinks map[string]string `json:"resolvedLinks,omitempty"`
	MessageText   string            `json:"messageText,omitempty"`
	SwitchEnabled *bool             `json:"switchEnabled,omitempty"`
}

// BuildingUpdateCallback is invoked synchronously from inside Tick, once
// per building whose observable state changed that tick.
type BuildingUpdateCallback func(BuildingUpdate)

// ConfigResult is SetProcessorConfig's success payload.
type ConfigResult struct {
	ResolvedLinks map[string]string `json:"resolvedLinks"`
}

// Host is the core's single entry point: it owns the building registry and
// scheduler, and is the only type a front-end needs to hold.
type Host struct {
	registry *building.Registry
	sched    *sched.Scheduler
	catalog  content.Catalog
	interner *assembler.Interner
	log      *slog.Logger
	onUpdate BuildingUpdateCallback
}

// New creates a Host over a default content catalog.
func New() *Host {
	cat := content.Default()
	reg := building.NewRegistry(cat)
	return &Host{
		registry: reg,
		sched:    sched.New(reg, cat),
		catalog:  cat,
		interner: assembler.NewInterner(),
		log:      mlogctx.GetLogger(),
	}
}

// SetBuildingUpdateCallback registers the callback Tick invokes for every
// building whose observable state changed that tick.
func (h *Host) SetBuildingUpdateCallback(cb BuildingUpdateCallback) {
	h.onUpdate = cb
}

func (h *Host) notify(u BuildingUpdate) {
	if h.onUpdate != nil {
		h.onUpdate(u)
	}
}

// procKindFromString maps the host-facing kind names to proc.Kind.
func procKindFromString(kind string) proc.Kind {
	switch kind {
	case "logic":
		return proc.Logic
	case "hyper":
		return proc.Hyper
	case "world":
		return proc.WorldKind
	default:
		return proc.Micro
	}
}

// AddProcessor creates a processor building of the given kind
// ("micro"/"logic"/"hyper"/"world") at pos.
func (h *Host) AddProcessor(pos Position, kind string) (string, error) {
	b, err := h.registry.AddProcessor(pos.toGrid(), procKindFromString(kind))
	if err != nil {
		h.log.Warn("AddProcessor failed", "pos", pos, "err", err)
		return "", err
	}
	return b.Name(), nil
}

// AddDisplay creates a display building at pos with the given pixel size.
// The kind and canvas-handle parameters of spec.md §6 are host-side
// rendering details this core doesn't model; callers pass width/height only.
func (h *Host) AddDisplay(pos Position, width, height int) (string, error) {
	b, err := h.registry.AddDisplay(pos.toGrid(), width, height)
	if err != nil {
		h.log.Warn("AddDisplay failed", "pos", pos, "err", err)
		return "", err
	}
	return b.Name(), nil
}

// AddMemory creates a memory building ("cell" or "bank") at pos.
func (h *Host) AddMemory(pos Position, kind string) (string, error) {
	k := building.MemoryCell
	if kind == "bank" {
		k = building.MemoryBank
	}
	b, err := h.registry.AddMemory(pos.toGrid(), k)
	if err != nil {
		h.log.Warn("AddMemory failed", "pos", pos, "err", err)
		return "", err
	}
	return b.Name(), nil
}

// AddMessage creates a message building at pos.
func (h *Host) AddMessage(pos Position) (string, error) {
	b, err := h.registry.AddMessage(pos.toGrid())
	if err != nil {
		h.log.Warn("AddMessage failed", "pos", pos, "err", err)
		return "", err
	}
	return b.Name(), nil
}

// AddSwitch creates a switch building at pos.
func (h *Host) AddSwitch(pos Position) (string, error) {
	b, err := h.registry.AddSwitch(pos.toGrid())
	if err != nil {
		h.log.Warn("AddSwitch failed", "pos", pos, "err", err)
		return "", err
	}
	return b.Name(), nil
}

// RemoveBuilding deletes whatever building occupies pos; a no-op if absent.
func (h *Host) RemoveBuilding(pos Position) {
	name, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return
	}
	_ = h.registry.RemoveBuilding(id)
	h.log.Debug("RemoveBuilding", "pos", pos, "name", name)
}

// BuildingName returns the building occupying pos, or "" if none.
func (h *Host) BuildingName(pos Position) string {
	name, _, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return ""
	}
	return name
}

// SetProcessorConfig (re)assembles source onto the processor at pos and
// rebinds its links against linkPositions, returning the resolved
// {position: name} map or the assembly error.
func (h *Host) SetProcessorConfig(pos Position, source string, linkPositions []Position) (ConfigResult, error) {
	_, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return ConfigResult{}, nil
	}
	links := make([]grid.Position, len(linkPositions))
	for i, p := range linkPositions {
		links[i] = p.toGrid()
	}
	resolved, asmErr := h.registry.Configure(id, source, links, h.interner)

	out := make(map[string]string, len(resolved))
	for linkPos, name := range resolved {
		out[posKey(linkPos)] = name
	}

	b, _ := h.registry.Get(id)
	update := BuildingUpdate{Position: pos, Name: b.Name(), ResolvedLinks: out}
	if asmErr != nil {
		update.AssemblyError = asmErr.Error()
	}
	h.notify(update)

	return ConfigResult{ResolvedLinks: out}, asmErr
}

func posKey(p grid.Position) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// SetMessageText sets the text of the message building at pos.
func (h *Host) SetMessageText(pos Position, text string) {
	_, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return
	}
	b, ok := h.registry.Get(id)
	if !ok {
		return
	}
	b.SetMessageText(text)
	h.notify(BuildingUpdate{Position: pos, Name: b.Name(), MessageText: b.MessageText()})
}

// SetSwitchEnabled sets the enabled state of the switch building at pos.
func (h *Host) SetSwitchEnabled(pos Position, enabled bool) {
	_, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return
	}
	b, ok := h.registry.Get(id)
	if !ok {
		return
	}
	b.SetSwitchEnabled(enabled)
	h.notify(BuildingUpdate{Position: pos, Name: b.Name(), SwitchEnabled: &enabled})
}

// SetTargetFPS records the host's target frame rate; informational only
// (spec.md §6).
func (h *Host) SetTargetFPS(fps float64) {
	h.sched.SetTargetFPS(fps)
}

// Tick advances the simulation by exactly one step.
func (h *Host) Tick(hostTimestamp float64) {
	h.sched.Tick(hostTimestamp)
}

// Catalog returns the content catalog the Host resolves constants and
// sensors against, for callers that need to seed it (e.g. cmd/mindy's
// layout loader).
func (h *Host) Catalog() content.Catalog { return h.catalog }

// MessageText returns the current text of the message building at pos, or
// "" if there isn't one. Not part of spec.md §6's Host API proper, but
// needed by any caller (cmd/mindy) that wants to read back what a
// printflush produced rather than only receiving update callbacks.
func (h *Host) MessageText(pos Position) string {
	_, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return ""
	}
	b, ok := h.registry.Get(id)
	if !ok {
		return ""
	}
	return b.MessageText()
}

// DrawCommandCount returns the number of commands in the display building's
// most recently flushed batch, or 0 if there isn't one — a cheap summary
// for a headless runner that doesn't render pixels.
func (h *Host) DrawCommandCount(pos Position) int {
	_, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return 0
	}
	b, ok := h.registry.Get(id)
	if !ok {
		return 0
	}
	return len(b.DisplayBatch())
}

// DisplayCommands returns the display building's most recently flushed draw
// batch, or nil if there isn't one. Unlike DrawCommandCount this hands the
// caller the actual commands, for a renderer (cmd/mindyview) that needs to
// paint them rather than just count them.
func (h *Host) DisplayCommands(pos Position) []draw.Command {
	_, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return nil
	}
	b, ok := h.registry.Get(id)
	if !ok {
		return nil
	}
	return b.DisplayBatch()
}

// AssemblyError returns the most recent assembly error for the processor at
// pos, or nil if it assembled cleanly (or isn't a processor).
func (h *Host) AssemblyError(pos Position) error {
	_, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return nil
	}
	b, ok := h.registry.Get(id)
	if !ok || b.Processor() == nil {
		return nil
	}
	return b.Processor().LastError()
}

// ProcessorVar returns the current value of a named variable on the
// processor at pos (its numeric projection only), or ok=false if pos isn't
// a processor or name was never referenced by its program. Lets a caller
// read back what a sensor/op instruction computed without waiting on a
// BuildingUpdate callback.
func (h *Host) ProcessorVar(pos Position, name string) (float64, bool) {
	_, id, ok := h.registry.AtPosition(pos.toGrid())
	if !ok {
		return 0, false
	}
	b, ok := h.registry.Get(id)
	if !ok || b.Processor() == nil {
		return 0, false
	}
	v, ok := b.Processor().Var(name, h.sched)
	if !ok {
		return 0, false
	}
	return v.Num(), true
}
