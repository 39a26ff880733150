package numeric

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/conneroisu/italia/internal/errors"
)

// ErrUnsupportedType is matched (with errors.Is) by every error reporting a
// type outside of Number.
var ErrUnsupportedType error = errors.NewUnsupportedTypeError("")

// Kind tags one member of the Number type set at runtime.
type Kind int

const (
	KindInvalid Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindDecimal
)

// Kinds lists every supported kind.
var Kinds = []Kind{KindInt16, KindInt32, KindInt64, KindFloat32, KindFloat64, KindDecimal}

// String returns the Go name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindDecimal:
		return "decimal"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k == KindInvalid {
		return nil, unsupported(k.String())
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}

// ParseKind maps a type name to its Kind. Besides the Go names it accepts
// the common aliases short, int, long, float, single and double.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int16", "short":
		return KindInt16, nil
	case "int32", "int":
		return KindInt32, nil
	case "int64", "long":
		return KindInt64, nil
	case "float32", "float", "single":
		return KindFloat32, nil
	case "float64", "double":
		return KindFloat64, nil
	case "decimal":
		return KindDecimal, nil
	default:
		return KindInvalid, unsupported(name)
	}
}

// KindOf reports the kind of v, which may be a value or a pointer to a
// value of a supported type.
func KindOf(v any) (Kind, error) {
	switch v.(type) {
	case int16, *int16:
		return KindInt16, nil
	case int32, *int32:
		return KindInt32, nil
	case int64, *int64:
		return KindInt64, nil
	case float32, *float32:
		return KindFloat32, nil
	case float64, *float64:
		return KindFloat64, nil
	case decimal.Decimal, *decimal.Decimal:
		return KindDecimal, nil
	default:
		return KindInvalid, unsupported(fmt.Sprintf("%T", v))
	}
}

// KindFor returns the kind of the type parameter.
func KindFor[T Number]() Kind {
	k, _ := KindOf(*new(T))
	return k
}

func unsupported(name string) error {
	return errors.NewUnsupportedTypeError(name).WithComponent("numeric")
}
