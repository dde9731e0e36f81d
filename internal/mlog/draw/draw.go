// Package draw implements the per-processor draw and print command buffers
// of spec.md §4.7: a FIFO of drawing commands flushed atomically to a
// display building's render queue by `drawflush`, and a text buffer flushed
// to a message building's text by `printflush`.
//
// Grounded on the teacher's pkg/engine/drawing.go (an affine-transform
// drawing context consumed by builtins_graphics.go's buffer-then-flush
// calls) — adapted here from FILLY's immediate pixel-buffer drawing to
// mlog's command-queue model, since the host owns pixel rendering and the
// core only needs to hand it an ordered command list.
package draw

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// Command is one `draw` sub-operation appended to a processor's buffer.
type Command struct {
	Sub  opcode.DrawSub
	Args [6]value.Value
}

// Buffer is a processor's pending draw command queue.
type Buffer struct {
	commands []Command
}

// Append adds cmd to the buffer.
func (b *Buffer) Append(cmd Command) {
	b.commands = append(b.commands, cmd)
}

// Flush returns the buffered commands and clears the buffer, for delivery
// to a display's render queue on `drawflush`.
func (b *Buffer) Flush() []Command {
	out := b.commands
	b.commands = nil
	return out
}

// Discard clears the buffer without returning its contents, used when
// `drawflush` targets a dead or non-display BuildingRef (spec.md §4.4: a
// dangling reference makes flush operations "discard the buffer").
func (b *Buffer) Discard() {
	b.commands = nil
}

// MaxPrintBufferLen is the processor-local print accumulation cap. Resolved
// from spec.md §9's open question using the message building's own 220
// character cap as the tie-break: additions beyond the cap are truncated,
// not dropped wholesale (see DESIGN.md).
const MaxPrintBufferLen = 220

// PrintBuffer is a processor's pending text buffer, appended to by `print`
// and flushed by `printflush`.
type PrintBuffer struct {
	buf strings.Builder
}

// Append adds s to the buffer, truncating s if it would push the buffer
// past MaxPrintBufferLen. The cap is counted in display columns, not
// bytes: a full-width rune (the in-game font renders CJK glyphs at double
// width) costs two toward the limit, same as the message building itself.
func (b *PrintBuffer) Append(s string) {
	remaining := MaxPrintBufferLen - displayWidth(b.buf.String())
	if remaining <= 0 {
		return
	}
	b.buf.WriteString(truncateToWidth(s, remaining))
}

// displayWidth sums s's rune widths, folding full-width forms to width 2.
func displayWidth(s string) int {
	total := 0
	for _, r := range s {
		total += runeWidth(r)
	}
	return total
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// truncateToWidth returns the longest prefix of s whose displayWidth is at
// most maxWidth, cutting only on rune boundaries.
func truncateToWidth(s string, maxWidth int) string {
	var b strings.Builder
	remaining := maxWidth
	for _, r := range s {
		w := runeWidth(r)
		if w > remaining {
			break
		}
		remaining -= w
		b.WriteRune(r)
	}
	return b.String()
}

// Flush returns the accumulated text and clears the buffer.
func (b *PrintBuffer) Flush() string {
	s := b.buf.String()
	b.buf.Reset()
	return s
}

// MaxMessageLines is the message building's line cap, a supplement pulled
// from original_source/src/vm/buildings.rs (spec.md only documents the
// 220-character cap).
const MaxMessageLines = 24

// ClampMessageText enforces the message building's 220-column / 24-line
// caps on text assigned by `printflush` or the host.
func ClampMessageText(s string) string {
	s = truncateToWidth(s, MaxPrintBufferLen)
	lines := strings.Split(s, "\n")
	if len(lines) > MaxMessageLines {
		s = strings.Join(lines[:MaxMessageLines], "\n")
	}
	return s
}

// Display is a display building's host-visible render target: the most
// recently flushed, atomically-delivered command batch plus its pixel
// dimensions.
type Display struct {
	Width, Height int
	LastBatch     []Command
}

// Receive atomically replaces the display's visible batch — spec.md §6
// requires drawflush delivery to be "order-preserving" and "delivered
// atomically," which a whole-batch replace satisfies trivially.
func (d *Display) Receive(batch []Command) {
	d.LastBatch = batch
}
