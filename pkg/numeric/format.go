package numeric

import (
	"math"

	"github.com/shopspring/decimal"
)

// FractionDigits is the number of fractional digits kept by Format.
const FractionDigits = 4

// Format renders value for display-only attributes: at most four
// fractional digits rounded half away from zero, trailing zeros trimmed,
// '.' as decimal separator and no grouping. A nil value yields fallback.
func Format[T Number](value *T, fallback string) string {
	if value == nil {
		return fallback
	}

	s, _ := FormatAny(*value, fallback)
	return s
}

// FormatAny is Format for a value whose type is only known at runtime.
func FormatAny(v any, fallback string) (string, error) {
	switch x := v.(type) {
	case nil:
		return fallback, nil
	case int16:
		return formatDecimal(decimal.NewFromInt(int64(x))), nil
	case *int16:
		return Format(x, fallback), nil
	case int32:
		return formatDecimal(decimal.NewFromInt32(x)), nil
	case *int32:
		return Format(x, fallback), nil
	case int64:
		return formatDecimal(decimal.NewFromInt(x)), nil
	case *int64:
		return Format(x, fallback), nil
	case float32:
		if s, special := formatSpecial(float64(x)); special {
			return s, nil
		}
		return formatDecimal(decimal.NewFromFloat32(x)), nil
	case *float32:
		return Format(x, fallback), nil
	case float64:
		if s, special := formatSpecial(x); special {
			return s, nil
		}
		return formatDecimal(decimal.NewFromFloat(x)), nil
	case *float64:
		return Format(x, fallback), nil
	case decimal.Decimal:
		return formatDecimal(x), nil
	case *decimal.Decimal:
		return Format(x, fallback), nil
	default:
		_, err := KindOf(v)
		return fallback, err
	}
}

func formatDecimal(d decimal.Decimal) string {
	return d.Round(FractionDigits).String()
}

func formatSpecial(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	}

	return "", false
}
