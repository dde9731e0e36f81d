package cliconfig

import "testing"

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs([]string{"layouts/demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ticks != 60 || cfg.LogLevel != "info" || cfg.LayoutPath != "layouts/demo" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseArgsFlagsBeforeAndAfterPositional(t *testing.T) {
	cfg, err := ParseArgs([]string{"--ticks", "120", "layouts/demo", "--log-level", "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ticks != 120 || cfg.LogLevel != "debug" || cfg.LayoutPath != "layouts/demo" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseArgsRejectsInvalidLogLevel(t *testing.T) {
	if _, err := ParseArgs([]string{"-l", "verbose"}); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestParseArgsRejectsNegativeTicks(t *testing.T) {
	if _, err := ParseArgs([]string{"-n", "-5"}); err == nil {
		t.Fatal("expected error for negative ticks")
	}
}
