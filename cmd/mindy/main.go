// Command mindy is a headless runner: given a layout directory (a
// layout.json manifest plus the *.mlog files it references), it builds a
// mindy.Host, assembles each processor, runs the requested number of
// ticks, and logs the resulting draw/print buffer contents and any
// assembly errors. This is the in-repo equivalent of the teacher's
// cmd/son-et headless title runner, standing in for the browser front-end
// spec.md explicitly puts out of scope.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zurustar/mindy"
	"github.com/zurustar/mindy/internal/cliconfig"
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
	cfg, err := cliconfig.ParseArgs(args)
	if err != nil {
		return err
	}
	if cfg.ShowHelp || cfg.LayoutPath == "" {
		cliconfig.PrintHelp()
		return nil
	}
	if err := mlogctx.InitLogger(cfg.LogLevel); err != nil {
		return err
	}
	log := mlogctx.GetLogger()

	l, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return err
	}

	host := mindy.New()
	host.SetBuildingUpdateCallback(func(u mindy.BuildingUpdate) {
		if u.AssemblyError != "" {
			log.Warn("assembly error", "building", u.Name, "error", u.AssemblyError)
		}
	})

	if err := placeBuildings(host, cfg.LayoutPath, l, log); err != nil {
		return err
	}

	log.Info("running simulation", "ticks", cfg.Ticks)
	const msPerTick = 1000.0 / 60.0
	for i := 0; i < cfg.Ticks; i++ {
		host.Tick(float64(i) * msPerTick)
	}

	report(host, l, log)
	return nil
}

func placeBuildings(host *mindy.Host, dir string, l *layout.Layout, log *slog.Logger) error {
	configs := make([]layout.Building, 0, len(l.Buildings))

	for _, b := range l.Buildings {
		pos := mindy.Position{X: b.X, Y: b.Y}
		var name string
		var err error
		switch b.Kind {
		case "processor":
			name, err = host.AddProcessor(pos, b.ProcessorKind)
			configs = append(configs, b)
		case "display":
			name, err = host.AddDisplay(pos, b.Width, b.Height)
		case "memory":
			name, err = host.AddMemory(pos, b.MemoryKind)
		case "message":
			name, err = host.AddMessage(pos)
		case "switch":
			name, err = host.AddSwitch(pos)
		default:
			err = fmt.Errorf("unknown building kind %q at (%d,%d)", b.Kind, b.X, b.Y)
		}
		if err != nil {
			return err
		}
		log.Info("placed building", "kind", b.Kind, "name", name, "x", b.X, "y", b.Y)
	}

	for _, b := range configs {
		if b.SourceFile == "" {
			continue
		}
		src, err := layout.ReadSource(dir, b.SourceFile)
		if err != nil {
			return err
		}
		links := make([]mindy.Position, len(b.Links))
		for i, lp := range b.Links {
			links[i] = lp.ToHost()
		}
		pos := mindy.Position{X: b.X, Y: b.Y}
		if _, err := host.SetProcessorConfig(pos, src, links); err != nil {
			log.Warn("assembly error", "file", b.SourceFile, "error", err)
		}
	}
	return nil
}

func report(host *mindy.Host, l *layout.Layout, log *slog.Logger) {
	for _, b := range l.Buildings {
		pos := mindy.Position{X: b.X, Y: b.Y}
		switch b.Kind {
		case "message":
			log.Info("message text", "x", b.X, "y", b.Y, "text", host.MessageText(pos))
		case "display":
			log.Info("display batch", "x", b.X, "y", b.Y, "commands", host.DrawCommandCount(pos))
		case "processor":
			if err := host.AssemblyError(pos); err != nil {
				log.Info("processor assembly error", "x", b.X, "y", b.Y, "error", err)
			}
		}
	}
}
