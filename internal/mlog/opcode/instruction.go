package opcode

import "github.com/zurustar/mindy/internal/mlog/value"

// MaxOperands is the fixed operand slot count spec.md §3 mandates ("up to 8
// operand slots").
const MaxOperands = 8

// OperandKind tags what an Operand slot carries.
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandVar              // a variable slot index, read or write depending on the opcode's usage
	OperandImmediate        // a literal value baked in at assembly time
	OperandLabel            // a resolved instruction index
	OperandSelector         // a LogicOp/Cmp/DrawSub/LookupKind encoded as int
)

// Operand is one resolved instruction argument.
type Operand struct {
	Kind     OperandKind
	VarSlot  int
	Imm      value.Value
	Label    int
	Selector int
}

// Instruction is the flat, PC-indexed unit the assembler produces and the
// executor dispatches on — spec.md §3's "fixed struct: opcode tag, up to 8
// operand slots."
type Instruction struct {
	Op       Op
	Operands [MaxOperands]Operand
	NumOps   int
	Line     int
}
