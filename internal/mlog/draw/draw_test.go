package draw

import (
	"strings"
	"testing"

	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/value"
)

func TestBufferFlushClearsAndReturnsInOrder(t *testing.T) {
	var b Buffer
	b.Append(Command{Sub: opcode.DrawClear})
	b.Append(Command{Sub: opcode.DrawRect})
	got := b.Flush()
	if len(got) != 2 || got[0].Sub != opcode.DrawClear || got[1].Sub != opcode.DrawRect {
		t.Fatalf("unexpected flush order: %+v", got)
	}
	if len(b.Flush()) != 0 {
		t.Fatal("buffer should be empty after flush")
	}
}

func TestBufferDiscardDropsContents(t *testing.T) {
	var b Buffer
	b.Append(Command{Sub: opcode.DrawLine})
	b.Discard()
	if got := b.Flush(); len(got) != 0 {
		t.Fatalf("expected empty buffer after discard, got %+v", got)
	}
}

func TestPrintBufferAppendTruncatesAtCap(t *testing.T) {
	var b PrintBuffer
	b.Append(strings.Repeat("a", MaxPrintBufferLen+50))
	if got := b.Flush(); len(got) != MaxPrintBufferLen {
		t.Fatalf("flushed length = %d, want %d", len(got), MaxPrintBufferLen)
	}
}

func TestPrintBufferAppendAcrossCallsRespectsRunningTotal(t *testing.T) {
	var b PrintBuffer
	b.Append(strings.Repeat("x", MaxPrintBufferLen-5))
	b.Append("0123456789")
	if got := b.Flush(); len(got) != MaxPrintBufferLen {
		t.Fatalf("flushed length = %d, want %d", len(got), MaxPrintBufferLen)
	}
}

func TestPrintBufferFlushResetsBuffer(t *testing.T) {
	var b PrintBuffer
	b.Append("hello")
	if first := b.Flush(); first != "hello" {
		t.Fatalf("first flush = %q", first)
	}
	if second := b.Flush(); second != "" {
		t.Fatalf("second flush = %q, want empty", second)
	}
}

func TestPrintBufferTruncatesOnRuneBoundary(t *testing.T) {
	var b PrintBuffer
	b.Append(strings.Repeat("a", MaxPrintBufferLen-1) + "界")
	got := b.Flush()
	for _, r := range got {
		if r == 0xFFFD {
			t.Fatalf("truncation produced an invalid rune: %q", got)
		}
	}
}

func TestClampMessageTextEnforcesLineCap(t *testing.T) {
	var lines []string
	for i := 0; i < MaxMessageLines+5; i++ {
		lines = append(lines, "line")
	}
	got := ClampMessageText(strings.Join(lines, "\n"))
	if n := strings.Count(got, "\n") + 1; n != MaxMessageLines {
		t.Fatalf("clamped line count = %d, want %d", n, MaxMessageLines)
	}
}

func TestClampMessageTextCountsFullWidthRunesAsDoubleWidth(t *testing.T) {
	wide := strings.Repeat("界", MaxPrintBufferLen) // each rune costs 2 columns
	got := ClampMessageText(wide)
	if displayWidth(got) > MaxPrintBufferLen {
		t.Fatalf("clamped width = %d, want <= %d", displayWidth(got), MaxPrintBufferLen)
	}
	if len([]rune(got)) != MaxPrintBufferLen/2 {
		t.Fatalf("clamped rune count = %d, want %d", len([]rune(got)), MaxPrintBufferLen/2)
	}
}

func TestDisplayReceiveReplacesLastBatch(t *testing.T) {
	d := Display{Width: 80, Height: 80}
	d.Receive([]Command{{Sub: opcode.DrawClear}})
	d.Receive([]Command{{Sub: opcode.DrawRect}, {Sub: opcode.DrawLine}})
	if len(d.LastBatch) != 2 || d.LastBatch[1].Sub != opcode.DrawLine {
		t.Fatalf("unexpected LastBatch: %+v", d.LastBatch)
	}
}

func TestCommandCarriesSixArgs(t *testing.T) {
	cmd := Command{Sub: opcode.DrawRect, Args: [6]value.Value{
		value.FromFloat(1), value.FromFloat(2), value.FromFloat(3), value.FromFloat(4),
	}}
	if cmd.Args[0].Num() != 1 || cmd.Args[3].Num() != 4 {
		t.Fatalf("unexpected args: %+v", cmd.Args)
	}
}
