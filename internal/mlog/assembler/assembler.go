// Package assembler turns lexed mlog source into a flat opcode.Instruction
// array: pass 1 walks lines to assign instruction indices and collect label
// declarations, pass 2 resolves every operand against the label table and a
// growing variable symbol table. Grounded on the teacher's
// pkg/compiler/compiler.go two-pass structure and on original_source's
// Processor::set_initial_config (single-pass label collection then
// instruction/link placeholder construction) — simplified here to mlog's
// flat grammar, which has no expressions to parse, only positional operand
// words.
package assembler

import (
	"github.com/zurustar/mindy/internal/mlog/lexer"
	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/token"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// Assemble compiles src into a Program using interner to dedup string
// literals. The only error it returns is *AssemblyError, for an unknown
// opcode mnemonic — every other malformed input degrades gracefully per
// spec.md §4.2 (missing operands default to Null, extras are dropped).
func Assemble(src string, interner *Interner) (*Program, error) {
	lines := lexer.New(src).Lines()
	p := newProgram()
	labels := make(map[string]int)

	type pendingLine struct {
		toks  []token.Token
		line  int
		index int
	}
	var pending []pendingLine
	instrIndex := 0
	for _, ln := range lines {
		if instrIndex >= MaxInstructions {
			break
		}
		toks := ln.Tokens
		if len(toks) > 0 && toks[0].Type == token.LABEL {
			labels[toks[0].Literal] = instrIndex
			toks = toks[1:]
		}
		if len(toks) == 0 {
			continue
		}
		pending = append(pending, pendingLine{toks: toks, line: ln.Number, index: instrIndex})
		instrIndex++
	}

	p.Instructions = make([]opcode.Instruction, len(pending))
	for _, pl := range pending {
		inst, err := resolveInstruction(pl.toks, pl.line, p, labels, interner)
		if err != nil {
			return nil, err
		}
		p.Instructions[pl.index] = inst
	}
	return p, nil
}

func arg(toks []token.Token, i int) (token.Token, bool) {
	if i < 0 || i >= len(toks) {
		return token.Token{}, false
	}
	return toks[i], true
}

func argStr(toks []token.Token, i int) string {
	t, ok := arg(toks, i)
	if !ok {
		return ""
	}
	return t.Literal
}

func imm(v value.Value) opcode.Operand {
	return opcode.Operand{Kind: opcode.OperandImmediate, Imm: v}
}

// resolveValue turns one operand token into a Var or Immediate Operand. It
// is used for both read positions and write destinations: a write to an
// Immediate operand (e.g. a stray literal where a variable was expected) is
// simply ignored at execution time, matching spec.md §7's "runtime soft
// error ... never fails" policy.
func resolveValue(toks []token.Token, i int, p *Program, interner *Interner) opcode.Operand {
	tok, ok := arg(toks, i)
	if !ok {
		return imm(value.Null)
	}
	if tok.Type == token.STRING {
		return imm(value.Str(interner.Intern(tok.Literal)))
	}
	switch tok.Literal {
	case "true":
		return imm(value.FromFloat(1))
	case "false":
		return imm(value.FromFloat(0))
	case "null":
		return imm(value.Null)
	}
	if f, isNum := parseNumericLiteral(tok.Literal); isNum {
		return imm(value.FromFloat(f))
	}
	return opcode.Operand{Kind: opcode.OperandVar, VarSlot: p.Slot(tok.Literal)}
}

func selectorOperand(sel int) opcode.Operand {
	return opcode.Operand{Kind: opcode.OperandSelector, Selector: sel}
}

func resolveInstruction(toks []token.Token, line int, p *Program, labels map[string]int, interner *Interner) (opcode.Instruction, error) {
	opName := toks[0].Literal
	op, ok := opcode.Lookup(opName)
	if !ok {
		return opcode.Instruction{}, &AssemblyError{Line: line, Opcode: opName}
	}
	args := toks[1:]
	inst := opcode.Instruction{Op: op, Line: line}

	switch op {
	case opcode.Set:
		inst.Operands[0] = resolveValue(args, 0, p, interner)
		inst.Operands[1] = resolveValue(args, 1, p, interner)
		inst.NumOps = 2

	case opcode.OpArith:
		sel, _ := opcode.LookupLogicOp(argStr(args, 0))
		inst.Operands[0] = selectorOperand(int(sel))
		inst.Operands[1] = resolveValue(args, 1, p, interner)
		inst.Operands[2] = resolveValue(args, 2, p, interner)
		inst.Operands[3] = resolveValue(args, 3, p, interner)
		inst.NumOps = 4

	case opcode.Jump:
		idx, ok := labels[argStr(args, 0)]
		if !ok {
			idx = -1
		}
		inst.Operands[0] = opcode.Operand{Kind: opcode.OperandLabel, Label: idx}
		cmp, _ := opcode.LookupCmp(argStr(args, 1))
		inst.Operands[1] = selectorOperand(int(cmp))
		inst.Operands[2] = resolveValue(args, 2, p, interner)
		inst.Operands[3] = resolveValue(args, 3, p, interner)
		inst.NumOps = 4

	case opcode.End, opcode.Stop:
		inst.NumOps = 0

	case opcode.Print:
		inst.Operands[0] = resolveValue(args, 0, p, interner)
		inst.NumOps = 1

	case opcode.Draw:
		sub, _ := opcode.LookupDrawSub(argStr(args, 0))
		inst.Operands[0] = selectorOperand(int(sub))
		for i := 0; i < 6; i++ {
			inst.Operands[1+i] = resolveValue(args, 1+i, p, interner)
		}
		inst.NumOps = 7

	case opcode.PrintFlush, opcode.DrawFlush:
		inst.Operands[0] = resolveValue(args, 0, p, interner)
		inst.NumOps = 1

	case opcode.Sensor:
		inst.Operands[0] = resolveValue(args, 0, p, interner)
		inst.Operands[1] = resolveValue(args, 1, p, interner)
		inst.Operands[2] = resolveValue(args, 2, p, interner)
		inst.NumOps = 3

	case opcode.GetLink:
		inst.Operands[0] = resolveValue(args, 0, p, interner)
		inst.Operands[1] = resolveValue(args, 1, p, interner)
		inst.NumOps = 2

	case opcode.Read:
		inst.Operands[0] = resolveValue(args, 0, p, interner)
		inst.Operands[1] = resolveValue(args, 1, p, interner)
		inst.Operands[2] = resolveValue(args, 2, p, interner)
		inst.NumOps = 3

	case opcode.Write:
		inst.Operands[0] = resolveValue(args, 0, p, interner)
		inst.Operands[1] = resolveValue(args, 1, p, interner)
		inst.Operands[2] = resolveValue(args, 2, p, interner)
		inst.NumOps = 3

	case opcode.Wait:
		inst.Operands[0] = resolveValue(args, 0, p, interner)
		inst.NumOps = 1

	case opcode.LookupOp:
		kind, _ := opcode.LookupLookupKind(argStr(args, 0))
		inst.Operands[0] = selectorOperand(int(kind))
		inst.Operands[1] = resolveValue(args, 1, p, interner)
		inst.Operands[2] = resolveValue(args, 2, p, interner)
		inst.NumOps = 3

	case opcode.UControl, opcode.URadar, opcode.ULocate, opcode.GetBlock, opcode.SetBlock, opcode.Spawn, opcode.SetRate:
		for i := 0; i < 6; i++ {
			inst.Operands[i] = resolveValue(args, i, p, interner)
		}
		inst.NumOps = 6
	}
	return inst, nil
}
