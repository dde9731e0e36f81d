package exec

import (
	"math"
	"math/rand/v2"

	"github.com/zurustar/mindy/internal/mlog/opcode"
	"github.com/zurustar/mindy/internal/mlog/proc"
	"github.com/zurustar/mindy/internal/mlog/value"
)

// numOf coerces a read value to the f64 arithmetic opcodes operate on.
// Every Value already carries its spec.md §4.1 numeric projection (x*y for
// a BuildingRef, computed once at construction in value.BuildingAt), so
// this is just an accessor.
func numOf(v value.Value) float64 {
	return v.Num()
}

// execOp implements `op <selector> <dst> <a> <b>` — spec.md §4.3's
// arithmetic/comparison/bitwise/trig instruction family, grounded on
// original_source/src/vm/instructions.rs's LogicOp match arm-for-arm, with
// Go's math package standing in for Rust's f64 intrinsics.
func execOp(p *proc.Processor, inst opcode.Instruction, clock proc.Clock) {
	sel := opcode.LogicOp(inst.Operands[0].Selector)
	a := read(p, inst.Operands[2], clock)
	b := read(p, inst.Operands[3], clock)
	x, y := numOf(a), numOf(b)

	var result value.Value
	switch sel {
	case opcode.Add:
		result = value.OpResult(x + y)
	case opcode.Sub:
		result = value.OpResult(x - y)
	case opcode.Mul:
		result = value.OpResult(x * y)
	case opcode.Div:
		result = value.OpResult(x / y)
	case opcode.Idiv:
		result = value.OpResult(math.Floor(x / y))
	case opcode.Mod:
		result = value.OpResult(math.Mod(x, y))
	case opcode.Emod:
		result = value.OpResult(euclidMod(x, y))
	case opcode.Pow:
		result = value.OpResult(math.Pow(x, y))
	case opcode.Equal:
		result = boolValue(value.Equal(a, b))
	case opcode.NotEqual:
		result = boolValue(!value.Equal(a, b))
	case opcode.Land:
		result = boolValue(a.IsTrue() && b.IsTrue())
	case opcode.LessThan:
		result = boolValue(x < y)
	case opcode.LessThanEq:
		result = boolValue(x <= y)
	case opcode.GreaterThan:
		result = boolValue(x > y)
	case opcode.GreaterThanEq:
		result = boolValue(x >= y)
	case opcode.StrictEqual:
		result = boolValue(value.StrictEqual(a, b))
	case opcode.Shl:
		result = intResult(value.ToInt64(x) << uint(value.ToInt64(y)&63))
	case opcode.Shr:
		result = intResult(value.ToInt64(x) >> uint(value.ToInt64(y)&63))
	case opcode.Ushr:
		result = intResult(int64(uint64(value.ToInt64(x)) >> uint(value.ToInt64(y)&63)))
	case opcode.Or:
		result = intResult(value.ToInt64(x) | value.ToInt64(y))
	case opcode.And:
		result = intResult(value.ToInt64(x) & value.ToInt64(y))
	case opcode.Xor:
		result = intResult(value.ToInt64(x) ^ value.ToInt64(y))
	case opcode.Not:
		result = intResult(^value.ToInt64(x))
	case opcode.Max:
		result = value.OpResult(math.Max(x, y))
	case opcode.Min:
		result = value.OpResult(math.Min(x, y))
	case opcode.Angle:
		result = value.OpResult(normalizeDegrees(math.Atan2(y, x) * 180 / math.Pi))
	case opcode.AngleDiff:
		result = value.OpResult(angleDiff(x, y))
	case opcode.Len:
		result = value.OpResult(math.Hypot(x, y))
	case opcode.Noise:
		result = value.OpResult(simplexNoise(x, y))
	case opcode.Abs:
		result = value.OpResult(math.Abs(x))
	case opcode.Sign:
		result = value.OpResult(signOf(x))
	case opcode.Log:
		result = value.OpResult(math.Log(x))
	case opcode.Logn:
		result = value.OpResult(math.Log(y) / math.Log(x))
	case opcode.Log10:
		result = value.OpResult(math.Log10(x))
	case opcode.Floor:
		result = value.OpResult(math.Floor(x))
	case opcode.Ceil:
		result = value.OpResult(math.Ceil(x))
	case opcode.Round:
		result = value.OpResult(math.Floor(x + 0.5))
	case opcode.Sqrt:
		result = value.OpResult(math.Sqrt(x))
	case opcode.Rand:
		result = value.OpResult(rand.Float64() * x)
	case opcode.Sin:
		result = value.OpResult(math.Sin(x * math.Pi / 180))
	case opcode.Cos:
		result = value.OpResult(math.Cos(x * math.Pi / 180))
	case opcode.Tan:
		result = value.OpResult(math.Tan(x * math.Pi / 180))
	case opcode.Asin:
		result = value.OpResult(math.Asin(x) * 180 / math.Pi)
	case opcode.Acos:
		result = value.OpResult(math.Acos(x) * 180 / math.Pi)
	case opcode.Atan:
		result = value.OpResult(math.Atan(x) * 180 / math.Pi)
	default:
		result = value.Null
	}
	write(p, inst.Operands[1], result)
}

func boolValue(b bool) value.Value {
	if b {
		return value.OpResult(1)
	}
	return value.OpResult(0)
}

func intResult(i int64) value.Value {
	return value.OpResult(float64(i))
}

// euclidMod implements the `emod` selector: a modulo that is always
// non-negative for a positive divisor, unlike Go's math.Mod.
func euclidMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m < 0 {
		m += math.Abs(y)
	}
	return m
}

func signOf(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// normalizeDegrees folds a degree value into [0, 360), per spec.md §4.3's
// "Angular op results are in degrees in [0, 360)."
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func angleDiff(a, b float64) float64 {
	d := math.Abs(normalizeDegrees(a) - normalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// simplexNoise is a small deterministic 2D value-noise stand-in for the
// `noise` selector. mlog programs use it for organic-looking variation, not
// cryptographic or simulation-accuracy guarantees, so a cheap hash-based
// noise function is sufficient.
func simplexNoise(x, y float64) float64 {
	n := math.Sin(x*12.9898+y*78.233) * 43758.5453
	return n - math.Floor(n)
}
