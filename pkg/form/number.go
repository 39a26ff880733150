package form

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/numeric"
)

// Screen reader labels of the number field buttons.
const (
	DefaultIncrementLabel = "Aumenta valore"
	DefaultDecrementLabel = "Diminuisci valore"
)

// NumberFieldProps configures a numeric input bound to T.
type NumberFieldProps[T numeric.Number] struct {
	InputProps `yaml:",inline"`

	Value *T `yaml:"value,omitempty"`
	Min   *T `yaml:"min,omitempty"`
	Max   *T `yaml:"max,omitempty"`
	Step  *T `yaml:"step,omitempty"`
	// Nullable fields accept an absent value and render no implicit bounds.
	// Other fields start at zero and are bounded by the limits of T.
	Nullable bool `yaml:"nullable,omitempty"`

	OnChange func(ctx context.Context, value *T) error `yaml:"-"`
}

// NumberField is a numeric input with increment and decrement buttons.
type NumberField[T numeric.Number] struct {
	field[*T]
	props  NumberFieldProps[T]
	bounds numeric.Bounds[T]
}

// NewNumberField validates p and returns the field.
func NewNumberField[T numeric.Number](p NumberFieldProps[T]) (*NumberField[T], error) {
	if err := validate("number-field", p); err != nil {
		return nil, err
	}

	value := p.Value
	if value == nil && !p.Nullable {
		var zero T
		value = &zero
	}

	bounds := numeric.Bounds[T]{Min: p.Min, Max: p.Max, Step: p.Step}.
		Fill(numeric.DefaultBounds[T](p.Nullable))

	return &NumberField[T]{
		field:  newField("number", p.FieldProps, value, isNil[T], p.OnChange),
		props:  p,
		bounds: bounds,
	}, nil
}

// Bounds returns the effective min, max and step.
func (f *NumberField[T]) Bounds() numeric.Bounds[T] {
	return f.bounds
}

// Increment steps the value up, clamped to the bounds, and reports it.
func (f *NumberField[T]) Increment(ctx context.Context) error {
	return f.change(ctx, 1)
}

// Decrement steps the value down, clamped to the bounds, and reports it.
func (f *NumberField[T]) Decrement(ctx context.Context) error {
	return f.change(ctx, -1)
}

func (f *NumberField[T]) change(ctx context.Context, factor int) error {
	if f.props.Disabled || f.props.Readonly {
		return nil
	}

	next := numeric.Change(f.value, f.bounds.Min, f.bounds.Max, f.bounds.Step, factor)

	return f.SetValue(ctx, &next)
}

// Render implements templ.Component.
func (f *NumberField[T]) Render(ctx context.Context, w io.Writer) error {
	locked := f.props.Disabled || f.props.Readonly

	return group(
		f.label("input-number-label"),
		markup.El("div", markup.A("class", "input-group input-number"),
			markup.Void("input", f.inputAttrs(
				"type", "number",
				"class", InputClasses(f.props.InputProps),
				"value", numeric.Format(f.value, ""),
				"min", formatBound(f.bounds.Min),
				"max", formatBound(f.bounds.Max),
				"step", formatBound(f.bounds.Step),
				"readonly", f.props.Readonly,
			)),
			markup.El("span", markup.A("class", "input-group-text align-buttons flex-column"),
				stepButton("input-number-add", DefaultIncrementLabel, f.id, locked),
				stepButton("input-number-sub", DefaultDecrementLabel, f.id, locked),
			),
		),
		f.validationMessage(),
	).Render(ctx, w)
}

func stepButton(class, label, controls string, disabled bool) templ.Component {
	return markup.El("button",
		markup.A("type", "button", "class", class, "aria-controls", controls, "disabled", disabled),
		markup.El("span", markup.A("class", "visually-hidden"), markup.Text(label)),
	)
}

func formatBound[T numeric.Number](v *T) any {
	if v == nil {
		return nil
	}

	return numeric.Format(v, "")
}

func isNil[T any](v *T) bool {
	return v == nil
}
