package mlogctx

import (
	"log/slog"
	"testing"
)

func TestInitLoggerValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			if err := InitLogger(level); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if GetLogger() == nil {
				t.Fatal("GetLogger() returned nil")
			}
		})
	}
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	if err := InitLogger("bogus"); err == nil {
		t.Error("expected error for invalid log level, got nil")
	}
}

func TestGetLoggerBeforeInit(t *testing.T) {
	globalLogger = nil
	if GetLogger() != slog.Default() {
		t.Error("GetLogger() should return slog.Default() before InitLogger")
	}
}
