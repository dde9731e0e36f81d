package assembler

import (
	"testing"

	"github.com/zurustar/mindy/internal/mlog/opcode"
)

func TestAssembleSimpleProgram(t *testing.T) {
	src := "set a 1\nset a 2\nend\n"
	prog, err := Assemble(src, NewInterner())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(prog.Instructions) != 3 {
		t.Fatalf("got %d instructions, want 3", len(prog.Instructions))
	}
	if prog.Instructions[0].Op != opcode.Set {
		t.Errorf("instr[0].Op = %v, want Set", prog.Instructions[0].Op)
	}
	if prog.Instructions[2].Op != opcode.End {
		t.Errorf("instr[2].Op = %v, want End", prog.Instructions[2].Op)
	}
}

func TestUnknownOpcodeFails(t *testing.T) {
	_, err := Assemble("frobnicate a b\n", NewInterner())
	if err == nil {
		t.Fatal("expected an error for an unknown opcode")
	}
	ae, ok := err.(*AssemblyError)
	if !ok {
		t.Fatalf("error type = %T, want *AssemblyError", err)
	}
	if ae.Line != 1 || ae.Opcode != "frobnicate" {
		t.Errorf("got %+v", ae)
	}
}

func TestLabelResolution(t *testing.T) {
	src := "loop:\nset a 1\njump loop always 0 0\n"
	prog, err := Assemble(src, NewInterner())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	jumpInst := prog.Instructions[1]
	if jumpInst.Op != opcode.Jump {
		t.Fatalf("instr[1].Op = %v, want Jump", jumpInst.Op)
	}
	if jumpInst.Operands[0].Label != 0 {
		t.Errorf("jump target = %d, want 0 (loop: is instruction 0)", jumpInst.Operands[0].Label)
	}
}

func TestMissingOperandsDefaultToNull(t *testing.T) {
	prog, err := Assemble("set a\n", NewInterner())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	op1 := prog.Instructions[0].Operands[1]
	if op1.Kind != opcode.OperandImmediate || !op1.Imm.IsNull() {
		t.Errorf("missing operand = %+v, want immediate Null", op1)
	}
}

func TestProgramTruncatedAt1000Instructions(t *testing.T) {
	src := ""
	for i := 0; i < 1500; i++ {
		src += "set a 1\n"
	}
	prog, err := Assemble(src, NewInterner())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if len(prog.Instructions) != MaxInstructions {
		t.Errorf("got %d instructions, want %d", len(prog.Instructions), MaxInstructions)
	}
}

func TestVariableSlotsAllocatedOnFirstReference(t *testing.T) {
	prog, err := Assemble("set a 1\nset b a\n", NewInterner())
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if prog.NumSlots() != 2 {
		t.Fatalf("got %d slots, want 2: %v", prog.NumSlots(), prog.VarNames)
	}
	aSlot, _ := prog.LookupSlot("a")
	if prog.Instructions[1].Operands[1].VarSlot != aSlot {
		t.Errorf("second set's source slot = %d, want %d (a)", prog.Instructions[1].Operands[1].VarSlot, aSlot)
	}
}
