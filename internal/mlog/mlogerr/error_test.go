package mlogerr

import (
	"errors"
	"testing"
)

func TestNewPositionOccupiedReportsCoordinates(t *testing.T) {
	err := NewPositionOccupied(3, -2)
	if err.Kind != PositionOccupied {
		t.Fatalf("Kind = %v, want PositionOccupied", err.Kind)
	}
	if err.Error() != "[POSITION_OCCUPIED] position (3,-2) is occupied" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestNewBuildingNotFoundWrapsWhat(t *testing.T) {
	err := NewBuildingNotFound("display7")
	if err.Kind != BuildingNotFound {
		t.Fatalf("Kind = %v, want BuildingNotFound", err.Kind)
	}
	if err.Error() != "[BUILDING_NOT_FOUND] building not found: display7" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestNewInvalidBuildingOpNamesOpAndKind(t *testing.T) {
	err := NewInvalidBuildingOp("SetSwitchEnabled", "display")
	if err.Kind != InvalidBuildingOp {
		t.Fatalf("Kind = %v, want InvalidBuildingOp", err.Kind)
	}
	if err.Error() != "[INVALID_BUILDING_OP] SetSwitchEnabled is not valid on a display building" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestHostErrorSatisfiesErrorInterface(t *testing.T) {
	var err error = NewPositionOccupied(0, 0)
	var target *HostError
	if !errors.As(err, &target) {
		t.Fatal("expected errors.As to unwrap to *HostError")
	}
}
