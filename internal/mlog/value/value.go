// Package value implements mlog's weakly-typed runtime value: a tagged union
// of null, number, string, building reference, content reference, and sensor
// reference, matching the coercion rules mlog source expects (null treated as
// 0 in arithmetic but distinct from 0 in strictEqual, epsilon-tolerant
// equal, 64-bit two's-complement-ish integer ops).
//
// Grounded on the coercion helpers in the teacher's pkg/vm/executor.go
// (toInt64/toFloat64/toBool/toString) and on original_source's
// LValue{numval, objval} dual-representation model, which is why every Value
// below carries a numeric projection (num) regardless of its Kind.
package value

import "math"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBuilding
	KindContent
	KindSensor
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBuilding:
		return "building"
	case KindContent:
		return "content"
	case KindSensor:
		return "sensor"
	default:
		return "unknown"
	}
}

// BuildingID indexes a building in a registry. The zero value is not a valid
// reference; InvalidBuilding marks "no building".
type BuildingID int32

const InvalidBuilding BuildingID = -1

// ContentKind distinguishes the catalog a ContentRef names an entry in.
type ContentKind int

const (
	ContentBlock ContentKind = iota
	ContentItem
	ContentLiquid
	ContentUnit
)

// ContentRef names one entry of the injected content catalog (see the
// content package). logicID is the catalog's internal index.
type ContentRef struct {
	Kind    ContentKind
	LogicID int32
}

// SensorID names a queryable sensor property (e.g. @copper, @health).
type SensorID int32

// EqualityEpsilon is the tolerance used by the "equal" comparison op, carried
// over from original_source's weak_equal (src/vm/instructions.rs).
const EqualityEpsilon = 0.000001

// Value is mlog's universal runtime value.
type Value struct {
	kind     Kind
	num      float64
	str      string
	building BuildingID
	content  ContentRef
	sensor   SensorID
}

// Null is mlog's "no value" — it compares equal (with `equal`) to zero but
// not strictEqual to it.
var Null = Value{kind: KindNull}

// FromFloat builds a Number from a literal or converted float, collapsing
// NaN and Inf to Null. This matches original_source's general LValue
// constructor and applies to numeric literals, sensor/read results, and
// content coercions — NOT to the `op` instruction's arithmetic result, which
// must be able to produce an observable NaN (see OpResult).
func FromFloat(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null
	}
	return Value{kind: KindNumber, num: f}
}

// OpResult builds a Number directly from an arithmetic result without the
// NaN/Inf collapse FromFloat applies. Only the `op` instruction's selectors
// should use this constructor.
func OpResult(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Str builds a String value. The numeric projection of a string is always 0,
// matching original_source (LString has no numeric reading).
func Str(s string) Value {
	return Value{kind: KindString, str: s}
}

// BuildingAt builds a BuildingRef value for the building standing at grid
// position (x,y). Its numeric projection is x*y, per spec.md §4.1: "coerces
// to the product of its x and y coordinates for Number-consuming opcodes."
func BuildingAt(id BuildingID, x, y int32) Value {
	return Value{kind: KindBuilding, num: float64(x) * float64(y), building: id}
}

// Content builds a Content value, numerically projected as its logic id.
func Content(ref ContentRef) Value {
	return Value{kind: KindContent, num: float64(ref.LogicID), content: ref}
}

// Sensor builds a Sensor value.
func Sensor(id SensorID) Value {
	return Value{kind: KindSensor, num: float64(id), sensor: id}
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Num returns the value's numeric projection: the float itself for Number,
// 0 for Null and String, and the underlying id for Building/Content/Sensor.
func (v Value) Num() float64 { return v.num }

// AsString returns the string payload and whether v is actually a String.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsBuilding returns the building id and whether v is actually a Building.
func (v Value) AsBuilding() (BuildingID, bool) {
	if v.kind != KindBuilding {
		return InvalidBuilding, false
	}
	return v.building, true
}

// AsContent returns the content reference and whether v is actually Content.
func (v Value) AsContent() (ContentRef, bool) {
	if v.kind != KindContent {
		return ContentRef{}, false
	}
	return v.content, true
}

// AsSensor returns the sensor id and whether v is actually a Sensor.
func (v Value) AsSensor() (SensorID, bool) {
	if v.kind != KindSensor {
		return 0, false
	}
	return v.sensor, true
}

// IsTrue reports mlog's truthiness rule used by jump conditions: nonzero,
// non-NaN numeric projection is true. Null (projection 0) is false.
func (v Value) IsTrue() bool {
	return v.num != 0 && !math.IsNaN(v.num)
}

// ToInt64 converts a float to int64 the way original_source's `as i64` casts
// behave: NaN becomes 0, out-of-range values saturate instead of wrapping,
// in-range values truncate toward zero. Bitwise op selectors apply Go's
// wrapping integer arithmetic to the result of this conversion, matching
// original_source's wrapping_* calls.
func ToInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 9223372036854775807:
		return math.MaxInt64
	case f <= -9223372036854775808:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// Equal implements mlog's `equal` comparison: full equality for two
// same-kind objects (string/building/content/sensor), otherwise an
// epsilon-tolerant compare of the numeric projection. Grounded on
// original_source's weak_equal.
func Equal(a, b Value) bool {
	if a.kind != KindNumber && a.kind != KindNull && a.kind == b.kind {
		switch a.kind {
		case KindString:
			return a.str == b.str
		case KindBuilding:
			return a.building == b.building
		case KindContent:
			return a.content == b.content
		case KindSensor:
			return a.sensor == b.sensor
		}
	}
	return math.Abs(a.num-b.num) < EqualityEpsilon
}

// StrictEqual implements mlog's `strictEqual`: same Kind and exact payload
// match, no epsilon tolerance.
func StrictEqual(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindBuilding:
		return a.building == b.building
	case KindContent:
		return a.content == b.content
	case KindSensor:
		return a.sensor == b.sensor
	}
	return false
}

// Display renders v the way `print`/`printflush` stringify a value: plain
// decimal for integral numbers, Go's shortest round-trip form otherwise,
// "null" for Null, the raw text for String.
func (v Value) Display() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBuilding:
		return "building#" + formatNumber(float64(v.building))
	case KindContent:
		return "content#" + formatNumber(float64(v.content.LogicID))
	case KindSensor:
		return "sensor#" + formatNumber(float64(v.sensor))
	}
	return ""
}

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return intString(int64(f))
	}
	return floatString(f)
}
