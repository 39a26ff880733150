// Package form renders Bootstrap Italia form fields.
//
// Each field is a small state machine built from props by a New function:
// it owns its id, its current value and the label "active" state, renders
// itself as a templ.Component and forwards value changes to OnChange.
// Fields are not safe for concurrent use.
package form

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/a-h/templ"
	"github.com/go-playground/validator/v10"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/internal/validation"
	"github.com/conneroisu/italia/pkg/components"
	"github.com/conneroisu/italia/pkg/css"
)

func init() {
	validation.Register("input_size", func(fl validator.FieldLevel) bool {
		switch components.Size(fl.Field().Int()) {
		case components.SizeDefault, components.SizeLarge, components.SizeSmall:
			return true
		default:
			return false
		}
	})
}

// FieldProps holds the props shared by every field.
type FieldProps struct {
	components.Base `yaml:",inline"`

	Label       string `yaml:"label" validate:"required"`
	Required    bool   `yaml:"required,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	// ValidationMessage is shown below the field when set.
	ValidationMessage string `yaml:"validation_message,omitempty"`
}

// InputProps adds the props of text-like inputs.
type InputProps struct {
	FieldProps `yaml:",inline"`

	Readonly  bool `yaml:"readonly,omitempty"`
	Plaintext bool `yaml:"plaintext,omitempty"`
	// Size is one of default, large or small.
	Size components.Size `yaml:"size,omitempty" validate:"input_size"`
}

// InputClasses returns the class attribute of a text-like input.
func InputClasses(p InputProps) string {
	return inputClasses(p).Build()
}

func inputClasses(p InputProps) *css.Builder {
	b := &css.Builder{}
	if p.Plaintext {
		b.Add("form-control-plaintext")
	} else {
		b.Add("form-control")
	}

	switch p.Size {
	case components.SizeLarge:
		b.Add("form-control-lg")
	case components.SizeSmall:
		b.Add("form-control-sm")
	}

	return b.Add(p.Class)
}

// NewID returns prefix followed by a dash and 32 random hex digits.
func NewID(prefix string) string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("form: crypto/rand failed: " + err.Error())
	}

	return prefix + "-" + hex.EncodeToString(buf[:])
}

// validate checks props with the shared validator.
func validate(component string, props any) error {
	return validation.Struct(component, errors.ErrCodeInvalidProps, props)
}

// field is the state shared by the fields: id, value, label state and the
// change callback.
type field[T any] struct {
	id          string
	props       FieldProps
	value       T
	labelActive bool
	isEmpty     func(T) bool
	onChange    func(context.Context, T) error
}

func newField[T any](prefix string, props FieldProps, value T, isEmpty func(T) bool, onChange func(context.Context, T) error) field[T] {
	id := props.ID
	if id == "" {
		id = NewID(prefix)
	}

	f := field[T]{
		id:       id,
		props:    props,
		value:    value,
		isEmpty:  isEmpty,
		onChange: onChange,
	}
	f.labelActive = f.restingLabelState()

	return f
}

// ID returns the id of the input element.
func (f *field[T]) ID() string {
	return f.id
}

// Value returns the current value.
func (f *field[T]) Value() T {
	return f.value
}

// LabelActive reports whether the label is raised above the input.
func (f *field[T]) LabelActive() bool {
	return f.labelActive
}

// Focus raises the label.
func (f *field[T]) Focus() {
	f.labelActive = true
}

// Blur keeps the label raised only while there is a value or placeholder.
func (f *field[T]) Blur() {
	f.labelActive = f.restingLabelState()
}

// SetValue stores v, updates the label and calls OnChange.
func (f *field[T]) SetValue(ctx context.Context, v T) error {
	f.value = v
	f.labelActive = f.restingLabelState()

	if f.onChange != nil {
		return f.onChange(ctx, v)
	}

	return nil
}

func (f *field[T]) restingLabelState() bool {
	if f.props.Placeholder != "" {
		return true
	}
	if f.isEmpty == nil {
		return false
	}

	return !f.isEmpty(f.value)
}

// inputAttrs returns the attributes every input element carries.
func (f *field[T]) inputAttrs(pairs ...any) markup.Attrs {
	var ariaRequired any
	if f.props.Required {
		ariaRequired = "true"
	}

	attrs := markup.A("id", f.id)
	attrs = append(attrs, markup.A(pairs...)...)
	attrs = append(attrs, markup.A(
		"placeholder", optionalString(f.props.Placeholder),
		"required", f.props.Required,
		"aria-required", ariaRequired,
		"disabled", f.props.Disabled,
	)...)

	return attrs.Merge(f.props.Attributes)
}

func (f *field[T]) label(extra ...string) templ.Component {
	classes := css.New(extra...).AddIf(f.labelActive, "active")

	return markup.El("label", markup.A("for", f.id, "class", classes.Build()), markup.Text(f.props.Label))
}

func (f *field[T]) validationMessage() templ.Component {
	return validationMessage(f.props.ValidationMessage)
}

func validationMessage(msg string) templ.Component {
	if msg == "" {
		return nil
	}

	return markup.El("div", markup.A("class", "just-validate-error-label", "role", "alert"), markup.Text(msg))
}

// group wraps label and input in a form-group.
func group(children ...templ.Component) templ.Component {
	return markup.El("div", markup.A("class", "form-group"), children...)
}

func optionalString(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func isEmptyString(s string) bool {
	return s == ""
}
