package assembler

import "fmt"

// AssemblyError is the only error Assemble returns — an unknown opcode,
// carrying the line number and offending text per spec.md §4.2/§7.
type AssemblyError struct {
	Line   int
	Opcode string
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("line %d: unknown opcode %q", e.Line, e.Opcode)
}
