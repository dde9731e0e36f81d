// Package cliconfig parses cmd/mindy's command-line arguments, grounded on
// the teacher's pkg/cli (flag-based Config/ParseArgs, flags-before-
// positionals reordering, environment-variable fallbacks).
package cliconfig

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Config holds cmd/mindy's parsed settings.
type Config struct {
	LayoutPath string // directory holding layout.json and *.mlog sources
	Ticks      int    // number of simulation ticks to run
	LogLevel   string // debug, info, warn, error
	ShowHelp   bool
}

// ParseArgs parses args (normally os.Args[1:]) into a Config.
func ParseArgs(args []string) (*Config, error) {
	reordered := reorderArgs(args)
	fs := flag.NewFlagSet("mindy", flag.ContinueOnError)

	cfg := &Config{}
	fs.IntVar(&cfg.Ticks, "ticks", 60, "number of simulation ticks to run")
	fs.IntVar(&cfg.Ticks, "n", 60, "number of simulation ticks to run (short form)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogLevel, "l", "info", "log level (short form)")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "show help")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "show help (short form)")

	if err := fs.Parse(reordered); err != nil {
		return nil, err
	}

	if logLevelEnv := os.Getenv("MINDY_LOG_LEVEL"); logLevelEnv != "" && cfg.LogLevel == "info" {
		cfg.LogLevel = strings.ToLower(logLevelEnv)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}
	if cfg.Ticks < 0 {
		return nil, fmt.Errorf("ticks must be non-negative, got %d", cfg.Ticks)
	}

	if fs.NArg() > 0 {
		cfg.LayoutPath = fs.Arg(0)
	}

	return cfg, nil
}

// reorderArgs moves flags before positional arguments so flag.FlagSet can
// parse a mixed-order command line.
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) > 0 && arg[0] == '-' {
			flags = append(flags, arg)
			if i+1 < len(args) && len(args[i+1]) > 0 && args[i+1][0] != '-' {
				if arg != "-h" && arg != "--help" {
					i++
					flags = append(flags, args[i])
				}
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return append(flags, positional...)
}

// PrintHelp writes cmd/mindy's usage text to stdout.
func PrintHelp() {
	fmt.Fprint(os.Stdout, `mindy - headless mlog processor runner

Usage:
  mindy [options] <layout-dir>

Arguments:
  layout-dir    directory containing layout.json and the *.mlog files it references

Options:
  -n, --ticks <n>          number of simulation ticks to run (default 60)
  -l, --log-level <level>  log level: debug, info, warn, error (default info)
  -h, --help               show this help
`)
}
