package lexer

import (
	"testing"

	"github.com/zurustar/mindy/internal/mlog/token"
)

func TestSkipsBlankAndCommentLines(t *testing.T) {
	src := "# a comment\n\nset a 1\n   # indented comment\nset b 2\n"
	lines := New(src).Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %+v", len(lines), lines)
	}
	if lines[0].Tokens[0].Literal != "set" {
		t.Errorf("first token = %q, want set", lines[0].Tokens[0].Literal)
	}
}

func TestLabelDeclaration(t *testing.T) {
	lines := New("loop:\nset a 1\njump loop always 0 0\n").Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0].Tokens[0].Type != token.LABEL || lines[0].Tokens[0].Literal != "loop" {
		t.Errorf("label token = %+v, want LABEL loop", lines[0].Tokens[0])
	}
}

func TestQuotedStringWithEscape(t *testing.T) {
	lines := New(`print "hello\nworld"` + "\n").Lines()
	if len(lines) != 1 || len(lines[0].Tokens) != 2 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
	tok := lines[0].Tokens[1]
	if tok.Type != token.STRING {
		t.Fatalf("token type = %v, want STRING", tok.Type)
	}
	if tok.Literal != "hello\nworld" {
		t.Errorf("literal = %q, want %q", tok.Literal, "hello\nworld")
	}
}

func TestQuotedStringPreservesSpaces(t *testing.T) {
	lines := New(`print "hello   world"` + "\n").Lines()
	if lines[0].Tokens[1].Literal != "hello   world" {
		t.Errorf("literal = %q", lines[0].Tokens[1].Literal)
	}
}

func TestLineNumbersTrackOriginalSource(t *testing.T) {
	src := "set a 1\n\nset b 2\n"
	lines := New(src).Lines()
	if lines[0].Number != 1 {
		t.Errorf("lines[0].Number = %d, want 1", lines[0].Number)
	}
	if lines[1].Number != 3 {
		t.Errorf("lines[1].Number = %d, want 3", lines[1].Number)
	}
}
