// Package mlogerr implements the error taxonomy of spec.md §7, scoped down
// from the teacher's broader RuntimeError/ErrorType/IsFatal split
// (pkg/vm/error.go) to mlog's narrower three-kind model:
//
//   - Assembly error — reported by internal/mlog/assembler as a plain error
//     (assembler.AssemblyError), not by this package.
//   - Runtime soft error — never constructed as a value at all; callers
//     coerce and continue per spec.md §4.1/§4.4, optionally logging at debug
//     level through internal/mlog/mlogctx.
//   - Host-contract error — the only kind this package models: a synchronous
//     failure returned to a Host caller (position collision, reference to a
//     missing building).
package mlogerr

import "fmt"

// Kind identifies which host-contract rule was violated.
type Kind string

const (
	PositionOccupied  Kind = "POSITION_OCCUPIED"
	BuildingNotFound  Kind = "BUILDING_NOT_FOUND"
	InvalidBuildingOp Kind = "INVALID_BUILDING_OP"
)

// HostError is a synchronous, always-fatal-to-the-call error returned from a
// Host operation (spec.md §7: "Host-contract error ... Reported
// synchronously").
type HostError struct {
	Kind    Kind
	Message string
}

func (e *HostError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// NewPositionOccupied reports a building-creation footprint collision.
func NewPositionOccupied(x, y int32) *HostError {
	return &HostError{Kind: PositionOccupied, Message: fmt.Sprintf("position (%d,%d) is occupied", x, y)}
}

// NewBuildingNotFound reports an operation targeting a building id or
// position the registry doesn't know about.
func NewBuildingNotFound(what string) *HostError {
	return &HostError{Kind: BuildingNotFound, Message: fmt.Sprintf("building not found: %s", what)}
}

// NewInvalidBuildingOp reports an operation applied to a building kind that
// doesn't support it (e.g. SetSwitchEnabled on a display).
func NewInvalidBuildingOp(op, kind string) *HostError {
	return &HostError{Kind: InvalidBuildingOp, Message: fmt.Sprintf("%s is not valid on a %s building", op, kind)}
}
