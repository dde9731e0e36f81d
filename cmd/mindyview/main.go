// Command mindyview is an optional debug viewer: it runs a layout's
// simulation the same way cmd/mindy does, and additionally opens an
// Ebitengine window that repaints one display building's draw batch every
// frame. This is not part of the front-end contract spec.md describes
// (that's the host's job); it exists purely so a developer staring at an
// mlog program's drawflush output doesn't have to decode a command list
// by eye.
//
// Grounded on the teacher's pkg/window.Game (the ebiten.Game
// Update/Draw/Layout triple driving a fixed virtual canvas) and
// pkg/graphics's shape-drawing primitives, adapted here from FILLY's
// immediate pixel buffer to mlog's per-flush command list.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zurustar/mindy"
	"github.com/zurustar/mindy/internal/layout"
	"github.com/zurustar/mindy/internal/mlog/mlogctx"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("mindyview", flag.ContinueOnError)
	logLevel := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	dispX := fs.Int("display-x", 0, "grid x of the display building to watch")
	dispY := fs.Int("display-y", 0, "grid y of the display building to watch")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mindyview [options] <layout-dir>")
		return nil
	}
	dir := fs.Arg(0)

	if err := mlogctx.InitLogger(*logLevel); err != nil {
		return err
	}
	log := mlogctx.GetLogger()

	l, err := layout.Load(dir)
	if err != nil {
		return err
	}

	host := mindy.New()
	if err := layout.Place(host, dir, l); err != nil {
		return err
	}

	watched := mindy.Position{X: int32(*dispX), Y: int32(*dispY)}
	width, height := displaySize(l, watched)

	game := newViewerGame(host, watched, width, height, log)
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetWindowTitle(fmt.Sprintf("mindyview - display (%d,%d)", *dispX, *dispY))
	return ebiten.RunGame(game)
}

func displaySize(l *layout.Layout, pos mindy.Position) (int, int) {
	for _, b := range l.Buildings {
		if b.Kind == "display" && b.X == pos.X && b.Y == pos.Y {
			w, h := b.Width, b.Height
			if w <= 0 {
				w = 80
			}
			if h <= 0 {
				h = 80
			}
			return w, h
		}
	}
	return 80, 80
}
