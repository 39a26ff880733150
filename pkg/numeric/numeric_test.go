package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	italiaerrors "github.com/conneroisu/italia/internal/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestChangeScenarios(t *testing.T) {
	t.Run("absent step defaults to one", func(t *testing.T) {
		assert.Equal(t, int32(1), Change(Ptr[int32](0), nil, nil, nil, 1))
	})

	t.Run("increment clamps to max", func(t *testing.T) {
		assert.Equal(t, int32(10), Change(Ptr[int32](10), nil, Ptr[int32](10), Ptr[int32](1), 1))
	})

	t.Run("decrement clamps to min", func(t *testing.T) {
		assert.Equal(t, int32(1), Change(Ptr[int32](1), Ptr[int32](1), nil, Ptr[int32](1), -1))
	})

	t.Run("custom step", func(t *testing.T) {
		assert.Equal(t, int32(5), Change(Ptr[int32](0), nil, nil, Ptr[int32](5), 1))
	})

	t.Run("decimal decrement with default step", func(t *testing.T) {
		got := Change(Ptr(dec("1.0")), nil, nil, nil, -1)
		assert.True(t, got.Equal(decimal.Zero), "got %s", got)
	})

	t.Run("absent value counts as zero", func(t *testing.T) {
		assert.Equal(t, int64(-3), Change[int64](nil, nil, nil, Ptr[int64](3), -1))
		assert.Equal(t, float64(2.5), Change[float64](nil, nil, nil, Ptr(2.5), 1))
	})

	t.Run("factor scales the step", func(t *testing.T) {
		assert.Equal(t, int16(13), Change(Ptr[int16](1), nil, nil, Ptr[int16](4), 3))
	})
}

func TestChangeClamping(t *testing.T) {
	t.Run("min wins over max", func(t *testing.T) {
		// degenerate bounds: min > max
		got := Change(Ptr[int32](5), Ptr[int32](10), Ptr[int32](0), nil, 1)
		assert.Equal(t, int32(10), got)
	})

	t.Run("below min returns min exactly", func(t *testing.T) {
		got := Change(Ptr(0.3), Ptr(0.25), Ptr(1.0), Ptr(0.1), -1)
		assert.Equal(t, 0.25, got)
	})

	t.Run("above max returns max exactly", func(t *testing.T) {
		got := Change(Ptr(float32(0.9)), nil, Ptr(float32(1)), Ptr(float32(0.5)), 1)
		assert.Equal(t, float32(1), got)
	})

	t.Run("decimal bounds", func(t *testing.T) {
		maxValue := dec("2.5")
		got := Change(Ptr(dec("2")), nil, &maxValue, Ptr(dec("1")), 1)
		assert.True(t, got.Equal(maxValue))

		minValue := dec("-1")
		got = Change(Ptr(dec("0")), &minValue, nil, Ptr(dec("1.5")), -1)
		assert.True(t, got.Equal(minValue))
	})

	t.Run("value inside bounds is untouched", func(t *testing.T) {
		got := Change(Ptr[int64](4), Ptr[int64](0), Ptr[int64](10), Ptr[int64](2), 1)
		assert.Equal(t, int64(6), got)
	})
}

func TestChangeSaturates(t *testing.T) {
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"int16 max", Change(Ptr[int16](math.MaxInt16), nil, nil, nil, 1), int16(math.MaxInt16)},
		{"int16 min", Change(Ptr[int16](math.MinInt16), nil, nil, nil, -1), int16(math.MinInt16)},
		{"int32 max", Change(Ptr[int32](math.MaxInt32-1), nil, nil, Ptr[int32](10), 1), int32(math.MaxInt32)},
		{"int64 max", Change(Ptr[int64](math.MaxInt64), nil, nil, nil, 1), int64(math.MaxInt64)},
		{"int64 min", Change(Ptr[int64](math.MinInt64), nil, nil, nil, -1), int64(math.MinInt64)},
		{"int64 step overflow", Change(Ptr[int64](0), nil, nil, Ptr[int64](math.MaxInt64), 2), int64(math.MaxInt64)},
		{"int64 negative step overflow", Change(Ptr[int64](0), nil, nil, Ptr[int64](math.MinInt64), 1), int64(math.MinInt64)},
		{"int64 min step inverted", Change(Ptr[int64](0), nil, nil, Ptr[int64](math.MinInt64), -1), int64(math.MaxInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestIncrementThenDecrementRoundTrips(t *testing.T) {
	assert.Equal(t, int16(7), Decrement(Ptr(Increment(Ptr[int16](7), nil, nil, Ptr[int16](3))), nil, nil, Ptr[int16](3)))
	assert.Equal(t, int32(-2), Decrement(Ptr(Increment(Ptr[int32](-2), nil, nil, nil)), nil, nil, nil))
	assert.Equal(t, int64(40), Decrement(Ptr(Increment(Ptr[int64](40), nil, nil, Ptr[int64](8))), nil, nil, Ptr[int64](8)))
	assert.Equal(t, float32(1.5), Decrement(Ptr(Increment(Ptr(float32(1.5)), nil, nil, Ptr(float32(0.5)))), nil, nil, Ptr(float32(0.5))))
	assert.Equal(t, 2.0, Decrement(Ptr(Increment(Ptr(2.0), nil, nil, Ptr(0.25))), nil, nil, Ptr(0.25)))

	d := Decrement(Ptr(Increment(Ptr(dec("3.14")), nil, nil, Ptr(dec("0.01")))), nil, nil, Ptr(dec("0.01")))
	assert.True(t, d.Equal(dec("3.14")))
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, int16(math.MaxInt16), DefaultMax[int16]())
	assert.Equal(t, int16(math.MinInt16), DefaultMin[int16]())
	assert.Equal(t, int32(math.MaxInt32), DefaultMax[int32]())
	assert.Equal(t, int32(math.MinInt32), DefaultMin[int32]())
	assert.Equal(t, int64(math.MaxInt64), DefaultMax[int64]())
	assert.Equal(t, int64(math.MinInt64), DefaultMin[int64]())
	assert.Equal(t, float32(math.MaxFloat32), DefaultMax[float32]())
	assert.Equal(t, float32(-math.MaxFloat32), DefaultMin[float32]())
	assert.Equal(t, math.MaxFloat64, DefaultMax[float64]())
	assert.Equal(t, -math.MaxFloat64, DefaultMin[float64]())
	assert.True(t, DefaultMax[decimal.Decimal]().Equal(MaxDecimal))
	assert.True(t, DefaultMin[decimal.Decimal]().Equal(MinDecimal))

	assert.Equal(t, int16(1), DefaultStep[int16]())
	assert.Equal(t, int32(1), DefaultStep[int32]())
	assert.Equal(t, int64(1), DefaultStep[int64]())
	assert.Equal(t, float32(1), DefaultStep[float32]())
	assert.Equal(t, float64(1), DefaultStep[float64]())
	assert.True(t, DefaultStep[decimal.Decimal]().Equal(decimal.NewFromInt(1)))
}

func TestDefaultBounds(t *testing.T) {
	t.Run("nullable fields have no bounds", func(t *testing.T) {
		b := DefaultBounds[int32](true)
		assert.Nil(t, b.Min)
		assert.Nil(t, b.Max)
		assert.Nil(t, b.Step)
	})

	t.Run("non nullable fields use natural extremes", func(t *testing.T) {
		b := DefaultBounds[int32](false)
		require.NotNil(t, b.Min)
		require.NotNil(t, b.Max)
		require.NotNil(t, b.Step)
		assert.Equal(t, int32(math.MinInt32), *b.Min)
		assert.Equal(t, int32(math.MaxInt32), *b.Max)
		assert.Equal(t, int32(1), *b.Step)
	})

	t.Run("fill keeps explicit constraints", func(t *testing.T) {
		b := Bounds[int64]{Max: Ptr[int64](10)}.Fill(DefaultBounds[int64](false))
		assert.Equal(t, int64(10), *b.Max)
		assert.Equal(t, int64(math.MinInt64), *b.Min)
		assert.Equal(t, int64(1), *b.Step)
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"absent uses fallback", Format[int32](nil, "-"), "-"},
		{"integer", Format(Ptr[int32](1234567), ""), "1234567"},
		{"negative integer", Format(Ptr[int16](-12), ""), "-12"},
		{"trailing zeros trimmed", Format(Ptr(2.50), ""), "2.5"},
		{"whole float", Format(Ptr(3.0), ""), "3"},
		{"four fractional digits", Format(Ptr(1.23456), ""), "1.2346"},
		{"half away from zero", Format(Ptr(dec("0.00005")), ""), "0.0001"},
		{"negative half away from zero", Format(Ptr(dec("-0.00005")), ""), "-0.0001"},
		{"tiny rounds to zero", Format(Ptr(dec("-0.00001")), ""), "0"},
		{"float32", Format(Ptr(float32(2.5)), ""), "2.5"},
		{"decimal", Format(Ptr(dec("10.1000")), ""), "10.1"},
		{"nan", Format(Ptr(math.NaN()), ""), "NaN"},
		{"infinity", Format(Ptr(math.Inf(-1)), ""), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestFormatAny(t *testing.T) {
	s, err := FormatAny(Ptr[int64](42), "")
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = FormatAny((*int64)(nil), "none")
	require.NoError(t, err)
	assert.Equal(t, "none", s)

	_, err = FormatAny("12", "")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestKinds(t *testing.T) {
	for _, name := range []string{"int16", "short", "int32", "int", "int64", "long", "float32", "float", "single", "float64", "double", "decimal", " Decimal "} {
		k, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.NotEqual(t, KindInvalid, k)
	}

	_, err := ParseKind("string")
	assert.ErrorIs(t, err, ErrUnsupportedType)

	assert.Equal(t, KindInt16, KindFor[int16]())
	assert.Equal(t, KindDecimal, KindFor[decimal.Decimal]())

	k, err := KindOf(Ptr(2.0))
	require.NoError(t, err)
	assert.Equal(t, KindFloat64, k)

	var parsed Kind
	require.NoError(t, parsed.UnmarshalText([]byte("long")))
	assert.Equal(t, KindInt64, parsed)

	text, err := KindFloat32.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "float32", string(text))
}

func TestStepDynamic(t *testing.T) {
	t.Run("unsupported type fails immediately", func(t *testing.T) {
		_, err := StepAny("10", nil, nil, nil, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedType)
		assert.True(t, italiaerrors.IsUnsupportedType(err))
		assert.False(t, italiaerrors.IsRecoverable(err))
	})

	t.Run("invalid kind fails", func(t *testing.T) {
		_, err := Step(KindInvalid, nil, nil, nil, nil, 1)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("kind inferred from operands", func(t *testing.T) {
		got, err := StepAny(int32(9), nil, int32(10), nil, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(10), got)

		got, err = StepAny(nil, nil, nil, Ptr[int64](5), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got)
	})

	t.Run("all nil operands are unsupported", func(t *testing.T) {
		_, err := StepAny(nil, nil, nil, nil, 1)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("mismatched operand", func(t *testing.T) {
		_, err := Step(KindInt32, int32(1), int64(0), nil, nil, 1)
		require.Error(t, err)
		assert.Equal(t, italiaerrors.ErrCodeTypeMismatch, italiaerrors.CodeOf(err))
		assert.False(t, errors.Is(err, ErrUnsupportedType))
	})

	t.Run("decimal", func(t *testing.T) {
		got, err := Step(KindDecimal, dec("1.0"), nil, nil, nil, -1)
		require.NoError(t, err)
		assert.True(t, got.(decimal.Decimal).IsZero())
	})
}

func TestParse(t *testing.T) {
	v, err := Parse(KindInt16, "12")
	require.NoError(t, err)
	assert.Equal(t, int16(12), v)

	v, err = Parse(KindFloat32, "0.5")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), v)

	v, err = Parse(KindDecimal, "  ")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = Parse(KindInt16, "40000")
	require.Error(t, err)
	assert.Equal(t, italiaerrors.ErrCodeInvalidNumber, italiaerrors.CodeOf(err))
	assert.True(t, italiaerrors.IsValidation(err))

	_, err = Parse(KindInvalid, "1")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
