package form

import (
	"context"
	"fmt"
	"io"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/markup"
)

// TextFieldType is the type attribute of a text field.
type TextFieldType int

const (
	TextTypeText TextFieldType = iota
	TextTypeEmail
	TextTypeTel
	TextTypeURL
)

var textTypeNames = []string{"text", "email", "tel", "url"}

func (t TextFieldType) String() string {
	if int(t) < 0 || int(t) >= len(textTypeNames) {
		return "text"
	}

	return textTypeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t TextFieldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TextFieldType) UnmarshalText(text []byte) error {
	for i, name := range textTypeNames {
		if name == string(text) {
			*t = TextFieldType(i)
			return nil
		}
	}

	return errors.NewValidationError(errors.ErrCodeInvalidOption,
		fmt.Sprintf("unknown text field type %q", string(text))).WithComponent("form")
}

// TextFieldProps configures a single line text input.
type TextFieldProps struct {
	InputProps `yaml:",inline"`

	Type  TextFieldType `yaml:"type,omitempty"`
	Value string        `yaml:"value,omitempty"`

	OnChange func(ctx context.Context, value string) error `yaml:"-"`
}

// TextField is a single line text input.
type TextField struct {
	field[string]
	props TextFieldProps
}

// NewTextField validates p and returns the field.
func NewTextField(p TextFieldProps) (*TextField, error) {
	if err := validate("text-field", p); err != nil {
		return nil, err
	}

	return &TextField{
		field: newField("text", p.FieldProps, p.Value, isEmptyString, p.OnChange),
		props: p,
	}, nil
}

// Render implements templ.Component.
func (f *TextField) Render(ctx context.Context, w io.Writer) error {
	return group(
		f.label(),
		markup.Void("input", f.inputAttrs(
			"type", f.props.Type.String(),
			"class", InputClasses(f.props.InputProps),
			"value", f.value,
			"readonly", f.props.Readonly,
		)),
		f.validationMessage(),
	).Render(ctx, w)
}

// TextAreaFieldProps configures a multi line text input.
type TextAreaFieldProps struct {
	InputProps `yaml:",inline"`

	Value string `yaml:"value,omitempty"`
	// Rows defaults to 1.
	Rows int `yaml:"rows,omitempty" validate:"gte=0"`

	OnChange func(ctx context.Context, value string) error `yaml:"-"`
}

// TextAreaField is a multi line text input.
type TextAreaField struct {
	field[string]
	props TextAreaFieldProps
}

// NewTextAreaField validates p and returns the field.
func NewTextAreaField(p TextAreaFieldProps) (*TextAreaField, error) {
	if err := validate("textarea-field", p); err != nil {
		return nil, err
	}
	if p.Rows == 0 {
		p.Rows = 1
	}

	return &TextAreaField{
		field: newField("textarea", p.FieldProps, p.Value, isEmptyString, p.OnChange),
		props: p,
	}, nil
}

// Render implements templ.Component.
func (f *TextAreaField) Render(ctx context.Context, w io.Writer) error {
	return group(
		markup.El("textarea", f.inputAttrs(
			"class", InputClasses(f.props.InputProps),
			"rows", f.props.Rows,
			"readonly", f.props.Readonly,
		), markup.Text(f.value)),
		f.label(),
		f.validationMessage(),
	).Render(ctx, w)
}
