//go:build property

package numeric

import (
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
)

// TestChangeProperties validates the stepping and clamping laws.
func TestChangeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("result lies within bounds when min <= max", prop.ForAll(
		func(value, a, b, step int32, up bool) bool {
			lo, hi := min(a, b), max(a, b)
			factor := 1
			if !up {
				factor = -1
			}
			got := Change(&value, &lo, &hi, &step, factor)

			return got >= lo && got <= hi
		},
		gen.Int32(),
		gen.Int32(),
		gen.Int32(),
		gen.Int32Range(-1000, 1000),
		gen.Bool(),
	))

	properties.Property("min takes precedence when bounds are inverted", prop.ForAll(
		func(value int64, lo int64, gap int64) bool {
			hi := lo - gap
			got := Change(&value, &lo, &hi, nil, 1)
			if value+1 < lo {
				return got == lo
			}

			return got == lo || got == hi
		},
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.Int64Range(1, 1000),
	))

	properties.Property("increment then decrement restores an interior value", prop.ForAll(
		func(value, step int16) bool {
			up := Increment(&value, nil, nil, &step)
			return Decrement(&up, nil, nil, &step) == value
		},
		gen.Int16Range(-10_000, 10_000),
		gen.Int16Range(0, 1000),
	))

	properties.Property("decimal increment then decrement restores the value", prop.ForAll(
		func(units int64, scale int32, stepUnits int64) bool {
			value := decimal.New(units, -scale)
			step := decimal.New(stepUnits, -scale)
			up := Increment(&value, nil, nil, &step)

			return Decrement(&up, nil, nil, &step).Equal(value)
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
		gen.Int32Range(0, 6),
		gen.Int64Range(0, 1_000_000),
	))

	properties.Property("absent value and step count as zero and one", prop.ForAll(
		func(up bool) bool {
			factor := 1
			if !up {
				factor = -1
			}

			return Change[int32](nil, nil, nil, nil, factor) == int32(factor)
		},
		gen.Bool(),
	))

	properties.Property("unbounded float64 step adds factor times step", prop.ForAll(
		func(value, step float64, factor int) bool {
			got := Change(&value, nil, nil, &step, factor)
			want := value + float64(factor)*step

			return math.Abs(got-want) <= 1e-9*math.Max(1, math.Abs(want))
		},
		gen.Float64Range(-1e9, 1e9),
		gen.Float64Range(-1e3, 1e3),
		gen.IntRange(-5, 5),
	))

	properties.Property("unbounded float64 step defaults to one", prop.ForAll(
		func(value float64, factor int) bool {
			return Change(&value, nil, nil, nil, factor) == value+float64(factor)
		},
		gen.Float64Range(-1e6, 1e6),
		gen.IntRange(-5, 5),
	))

	properties.Property("unbounded decimal step adds factor times step exactly", prop.ForAll(
		func(units int64, scale int32, stepUnits int64, factor int) bool {
			value := decimal.New(units, -scale)
			step := decimal.New(stepUnits, -scale)
			want := decimal.New(units+int64(factor)*stepUnits, -scale)

			return Change(&value, nil, nil, &step, factor).Equal(want)
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
		gen.Int32Range(0, 8),
		gen.Int64Range(-1_000_000, 1_000_000),
		gen.IntRange(-5, 5),
	))

	properties.Property("unbounded decimal step defaults to one", prop.ForAll(
		func(units int64, scale int32, factor int) bool {
			value := decimal.New(units, -scale)
			want := value.Add(decimal.NewFromInt(int64(factor)))

			return Change(&value, nil, nil, nil, factor).Equal(want)
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
		gen.Int32Range(0, 8),
		gen.IntRange(-5, 5),
	))

	properties.Property("integer stepping never wraps", prop.ForAll(
		func(value, step int64, up bool) bool {
			factor := 1
			if !up {
				factor = -1
			}
			got := Change(&value, nil, nil, &step, factor)

			exact := new(big.Int).Mul(big.NewInt(step), big.NewInt(int64(factor)))
			exact.Add(exact, big.NewInt(value))
			switch {
			case exact.Cmp(big.NewInt(math.MaxInt64)) > 0:
				return got == math.MaxInt64
			case exact.Cmp(big.NewInt(math.MinInt64)) < 0:
				return got == math.MinInt64
			}

			return got == exact.Int64()
		},
		gen.Int64(),
		gen.Int64(),
		gen.Bool(),
	))

	properties.Property("format keeps at most four fractional digits", prop.ForAll(
		func(f float64) bool {
			s := Format(&f, "")
			d, err := decimal.NewFromString(s)
			if err != nil {
				return false
			}

			return -d.Exponent() <= FractionDigits
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.TestingRun(t)
}
