// Package layout parses the layout.json manifest shared by cmd/mindy and
// cmd/mindyview: a list of buildings to place, plus the *.mlog source files
// their processors load. spec.md leaves schematic-file parsing out of
// scope, so this format is local glue rather than a core contract.
package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zurustar/mindy"
)

// Pos mirrors mindy.Position for JSON decoding, keeping the file format
// decoupled from the façade's own struct.
type Pos struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

func (p Pos) ToHost() mindy.Position { return mindy.Position{X: p.X, Y: p.Y} }

// Building is one entry of layout.json's "buildings" array.
type Building struct {
	Kind          string `json:"kind"` // processor, display, memory, message, switch
	X             int32  `json:"x"`
	Y             int32  `json:"y"`
	ProcessorKind string `json:"processorKind,omitempty"` // micro, logic, hyper, world
	MemoryKind    string `json:"memoryKind,omitempty"`    // cell, bank
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	SourceFile    string `json:"sourceFile,omitempty"`
	Links         []Pos  `json:"links,omitempty"`
}

// Layout is the parsed contents of a layout.json manifest.
type Layout struct {
	Buildings []Building `json:"buildings"`
}

// Load reads layout.json from dir.
func Load(dir string) (*Layout, error) {
	data, err := os.ReadFile(filepath.Join(dir, "layout.json"))
	if err != nil {
		return nil, fmt.Errorf("reading layout.json: %w", err)
	}
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing layout.json: %w", err)
	}
	return &l, nil
}

// ReadSource reads file relative to dir.
func ReadSource(dir, file string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", file, err)
	}
	return string(data), nil
}

// Place creates every building in l on host and assembles each processor's
// source, returning once everything is placed and configured.
func Place(host *mindy.Host, dir string, l *Layout) error {
	configs := make([]Building, 0, len(l.Buildings))

	for _, b := range l.Buildings {
		pos := mindy.Position{X: b.X, Y: b.Y}
		var err error
		switch b.Kind {
		case "processor":
			_, err = host.AddProcessor(pos, b.ProcessorKind)
			configs = append(configs, b)
		case "display":
			_, err = host.AddDisplay(pos, b.Width, b.Height)
		case "memory":
			_, err = host.AddMemory(pos, b.MemoryKind)
		case "message":
			_, err = host.AddMessage(pos)
		case "switch":
			_, err = host.AddSwitch(pos)
		default:
			err = fmt.Errorf("unknown building kind %q at (%d,%d)", b.Kind, b.X, b.Y)
		}
		if err != nil {
			return err
		}
	}

	for _, b := range configs {
		if b.SourceFile == "" {
			continue
		}
		src, err := ReadSource(dir, b.SourceFile)
		if err != nil {
			return err
		}
		links := make([]mindy.Position, len(b.Links))
		for i, lp := range b.Links {
			links[i] = lp.ToHost()
		}
		pos := mindy.Position{X: b.X, Y: b.Y}
		if _, err := host.SetProcessorConfig(pos, src, links); err != nil {
			return fmt.Errorf("assembling %s: %w", b.SourceFile, err)
		}
	}
	return nil
}
