package numeric

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/conneroisu/italia/internal/errors"
)

// Step is the runtime counterpart of Change for callers that only know the
// kind at runtime. Every operand must be nil, a value of the kind, or a
// pointer to one.
func Step(kind Kind, value, min, max, step any, factor int) (any, error) {
	switch kind {
	case KindInt16:
		return stepAs[int16](value, min, max, step, factor)
	case KindInt32:
		return stepAs[int32](value, min, max, step, factor)
	case KindInt64:
		return stepAs[int64](value, min, max, step, factor)
	case KindFloat32:
		return stepAs[float32](value, min, max, step, factor)
	case KindFloat64:
		return stepAs[float64](value, min, max, step, factor)
	case KindDecimal:
		return stepAs[decimal.Decimal](value, min, max, step, factor)
	default:
		return nil, unsupported(kind.String())
	}
}

// StepAny infers the kind from the first non-nil operand and steps it.
// Operands of a type outside Number fail with ErrUnsupportedType.
func StepAny(value, min, max, step any, factor int) (any, error) {
	for _, operand := range []any{value, min, max, step} {
		if operand == nil {
			continue
		}
		kind, err := KindOf(operand)
		if err != nil {
			return nil, err
		}
		return Step(kind, value, min, max, step, factor)
	}

	return nil, unsupported("nil")
}

func stepAs[T Number](value, min, max, step any, factor int) (any, error) {
	operands := [4]*T{}
	for i, raw := range []any{value, min, max, step} {
		p, err := operand[T](raw)
		if err != nil {
			return nil, err
		}
		operands[i] = p
	}

	return Change(operands[0], operands[1], operands[2], operands[3], factor), nil
}

func operand[T Number](raw any) (*T, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case T:
		return &v, nil
	case *T:
		return v, nil
	}

	if _, err := KindOf(raw); err != nil {
		return nil, err
	}

	return nil, errors.NewValidationError(errors.ErrCodeTypeMismatch,
		fmt.Sprintf("operand of type %T does not match %s", raw, KindFor[T]())).
		WithComponent("numeric")
}

// Parse converts text to a value of the given kind. Blank text parses to
// nil, the absent value.
func Parse(kind Kind, text string) (any, error) {
	text = strings.TrimSpace(text)
	if kind == KindInvalid {
		return nil, unsupported(kind.String())
	}
	if text == "" {
		return nil, nil
	}

	var (
		v   any
		err error
	)
	switch kind {
	case KindInt16:
		var n int64
		n, err = strconv.ParseInt(text, 10, 16)
		v = int16(n)
	case KindInt32:
		var n int64
		n, err = strconv.ParseInt(text, 10, 32)
		v = int32(n)
	case KindInt64:
		v, err = strconv.ParseInt(text, 10, 64)
	case KindFloat32:
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		v = float32(f)
	case KindFloat64:
		v, err = strconv.ParseFloat(text, 64)
	case KindDecimal:
		v, err = decimal.NewFromString(text)
	}
	if err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidNumber,
			fmt.Sprintf("%q is not a valid %s", text, kind)).
			WithCause(err).
			WithComponent("numeric")
	}

	return v, nil
}
