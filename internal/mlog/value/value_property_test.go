package value

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Grounded on the teacher's *_property_test.go convention (e.g.
// pkg/vm/array_property_test.go), which pairs every coercion helper with a
// gopter property alongside its table tests.

func TestStrictEqualIsReflexive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("StrictEqual(v, v) is always true for finite numbers", prop.ForAll(
		func(f float64) bool {
			v := FromFloat(f)
			return StrictEqual(v, v)
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("ToInt64 never exceeds int64 range", prop.ForAll(
		func(f float64) bool {
			got := ToInt64(f)
			return got >= math.MinInt64 && got <= math.MaxInt64
		},
		gen.Float64Range(-1e300, 1e300),
	))

	properties.Property("Equal is symmetric for numeric values", prop.ForAll(
		func(a, b float64) bool {
			return Equal(FromFloat(a), FromFloat(b)) == Equal(FromFloat(b), FromFloat(a))
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}
