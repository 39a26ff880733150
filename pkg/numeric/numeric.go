// Package numeric implements the increment/decrement arithmetic behind
// number fields: stepping a possibly absent value by a signed factor and
// clamping the result to optional bounds.
//
// The supported types form a closed set (see Number). Generic callers get
// compile-time exhaustiveness; callers that only know the type at runtime
// go through Kind and Step, which fail with ErrUnsupportedType.
package numeric

import (
	"cmp"
	"math"

	"github.com/shopspring/decimal"
)

// Number is the closed set of value types a number field can be bound to.
type Number interface {
	int16 | int32 | int64 | float32 | float64 | decimal.Decimal
}

// Bounds of the 96-bit decimal type used by the decimal fields.
var (
	MaxDecimal = decimal.RequireFromString("79228162514264337593543950335")
	MinDecimal = MaxDecimal.Neg()
)

// Change returns value + factor*step clamped to [min, max].
//
// A nil value counts as zero and a nil step as one. A nil bound is not
// enforced. When the stepped value is below min the result is min; otherwise
// when it is above max the result is max. Integer arithmetic saturates at
// the type's limits instead of wrapping.
func Change[T Number](value, min, max, step *T, factor int) T {
	var out any

	switch any(*new(T)).(type) {
	case int16:
		out = changeInt(as[int16](value), as[int16](min), as[int16](max), as[int16](step), factor, math.MinInt16, math.MaxInt16)
	case int32:
		out = changeInt(as[int32](value), as[int32](min), as[int32](max), as[int32](step), factor, math.MinInt32, math.MaxInt32)
	case int64:
		out = changeInt(as[int64](value), as[int64](min), as[int64](max), as[int64](step), factor, math.MinInt64, math.MaxInt64)
	case float32:
		out = changeFloat(as[float32](value), as[float32](min), as[float32](max), as[float32](step), factor)
	case float64:
		out = changeFloat(as[float64](value), as[float64](min), as[float64](max), as[float64](step), factor)
	case decimal.Decimal:
		out = changeDecimal(as[decimal.Decimal](value), as[decimal.Decimal](min), as[decimal.Decimal](max), as[decimal.Decimal](step), factor)
	}

	return out.(T)
}

// Increment is Change with factor +1.
func Increment[T Number](value, min, max, step *T) T {
	return Change(value, min, max, step, 1)
}

// Decrement is Change with factor -1.
func Decrement[T Number](value, min, max, step *T) T {
	return Change(value, min, max, step, -1)
}

// DefaultMax returns the largest value representable by T.
func DefaultMax[T Number]() T {
	var out any

	switch any(*new(T)).(type) {
	case int16:
		out = int16(math.MaxInt16)
	case int32:
		out = int32(math.MaxInt32)
	case int64:
		out = int64(math.MaxInt64)
	case float32:
		out = float32(math.MaxFloat32)
	case float64:
		out = float64(math.MaxFloat64)
	case decimal.Decimal:
		out = MaxDecimal
	}

	return out.(T)
}

// DefaultMin returns the smallest value representable by T. For floating
// point types this is the most negative finite value.
func DefaultMin[T Number]() T {
	var out any

	switch any(*new(T)).(type) {
	case int16:
		out = int16(math.MinInt16)
	case int32:
		out = int32(math.MinInt32)
	case int64:
		out = int64(math.MinInt64)
	case float32:
		out = float32(-math.MaxFloat32)
	case float64:
		out = float64(-math.MaxFloat64)
	case decimal.Decimal:
		out = MinDecimal
	}

	return out.(T)
}

// DefaultStep returns the unit step of T.
func DefaultStep[T Number]() T {
	var out any

	switch any(*new(T)).(type) {
	case int16:
		out = int16(1)
	case int32:
		out = int32(1)
	case int64:
		out = int64(1)
	case float32:
		out = float32(1)
	case float64:
		out = float64(1)
	case decimal.Decimal:
		out = decimal.NewFromInt(1)
	}

	return out.(T)
}

// Bounds holds the optional constraints of a number field.
type Bounds[T Number] struct {
	Min  *T
	Max  *T
	Step *T
}

// DefaultBounds returns the constraints a field starts with before the
// caller overrides any of them. Nullable fields have no bounds at all, so
// nothing is rendered as a min/max constraint; other fields are bounded by
// the type's natural extremes and step by one.
func DefaultBounds[T Number](nullable bool) Bounds[T] {
	if nullable {
		return Bounds[T]{}
	}

	minValue, maxValue, step := DefaultMin[T](), DefaultMax[T](), DefaultStep[T]()

	return Bounds[T]{Min: &minValue, Max: &maxValue, Step: &step}
}

// Fill returns b with every nil constraint replaced by the one in defaults.
func (b Bounds[T]) Fill(defaults Bounds[T]) Bounds[T] {
	if b.Min == nil {
		b.Min = defaults.Min
	}
	if b.Max == nil {
		b.Max = defaults.Max
	}
	if b.Step == nil {
		b.Step = defaults.Step
	}

	return b
}

type integer interface {
	int16 | int32 | int64
}

func changeInt[I integer](value, min, max, step *I, factor int, lo, hi int64) I {
	next := I(saturatingStep(int64(deref(value, 0)), int64(deref(step, 1)), int64(factor), lo, hi))

	return clamp(next, min, max)
}

func changeFloat[F float32 | float64](value, min, max, step *F, factor int) F {
	next := deref(value, 0) + F(factor)*deref(step, 1)

	return clamp(next, min, max)
}

func changeDecimal(value, min, max, step *decimal.Decimal, factor int) decimal.Decimal {
	current := decimal.Zero
	if value != nil {
		current = *value
	}
	unit := decimal.NewFromInt(1)
	if step != nil {
		unit = *step
	}

	next := current.Add(decimal.NewFromInt(int64(factor)).Mul(unit))

	if min != nil && next.LessThan(*min) {
		return *min
	}
	if max != nil && next.GreaterThan(*max) {
		return *max
	}

	return next
}

// saturatingStep computes cur + factor*step, pinned to [lo, hi] on overflow.
func saturatingStep(cur, step, factor, lo, hi int64) int64 {
	delta, ok := mulChecked(step, factor)
	if !ok {
		if (step < 0) != (factor < 0) {
			return lo
		}
		return hi
	}

	sum := cur + delta
	switch {
	case delta > 0 && sum < cur:
		return hi
	case delta < 0 && sum > cur:
		return lo
	case sum > hi:
		return hi
	case sum < lo:
		return lo
	}

	return sum
}

func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}

	p := a * b
	if p/b != a {
		return 0, false
	}

	return p, true
}

func clamp[O cmp.Ordered](v O, min, max *O) O {
	if min != nil && v < *min {
		return *min
	}
	if max != nil && v > *max {
		return *max
	}

	return v
}

func deref[O any](p *O, fallback O) O {
	if p == nil {
		return fallback
	}

	return *p
}

// as converts *T to *U when T and U are the same type at runtime.
func as[U, T any](p *T) *U {
	if p == nil {
		return nil
	}
	u := any(*p).(U)

	return &u
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
