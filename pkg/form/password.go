package form

import (
	"context"
	"io"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/components"
	"github.com/conneroisu/italia/pkg/css"
)

// DefaultToggleLabel is the screen reader text of the visibility switch.
const DefaultToggleLabel = "Mostra/Nascondi Password"

// PasswordFieldProps configures a password input.
type PasswordFieldProps struct {
	InputProps `yaml:",inline"`

	Value string `yaml:"value,omitempty"`
	// ToggleLabel overrides DefaultToggleLabel.
	ToggleLabel string `yaml:"toggle_label,omitempty"`

	OnChange func(ctx context.Context, value string) error `yaml:"-"`
}

// PasswordField is a password input with a visibility switch.
type PasswordField struct {
	field[string]
	props   PasswordFieldProps
	visible bool
}

// NewPasswordField validates p and returns the field with the password
// hidden.
func NewPasswordField(p PasswordFieldProps) (*PasswordField, error) {
	if err := validate("password-field", p); err != nil {
		return nil, err
	}

	return &PasswordField{
		field: newField("pwd", p.FieldProps, p.Value, isEmptyString, p.OnChange),
		props: p,
	}, nil
}

// Visible reports whether the password is shown in clear text.
func (f *PasswordField) Visible() bool {
	return f.visible
}

// ToggleVisibility shows a hidden password or hides a shown one.
func (f *PasswordField) ToggleVisibility() {
	f.visible = !f.visible
}

// Render implements templ.Component.
func (f *PasswordField) Render(ctx context.Context, w io.Writer) error {
	inputType, checked := "password", "false"
	if f.visible {
		inputType, checked = "text", "true"
	}

	toggleLabel := f.props.ToggleLabel
	if toggleLabel == "" {
		toggleLabel = DefaultToggleLabel
	}

	visibleIcon := css.New("password-icon-visible").AddIf(f.visible, "d-none")
	invisibleIcon := css.New("password-icon-invisible").AddIf(!f.visible, "d-none")

	return group(
		f.label(),
		markup.Void("input", f.inputAttrs(
			"type", inputType,
			"class", css.New(InputClasses(f.props.InputProps), "input-password").Build(),
			"value", f.value,
			"readonly", f.props.Readonly,
		)),
		markup.El("button",
			markup.A(
				"type", "button",
				"class", "password-icon btn",
				"role", "switch",
				"aria-checked", checked,
				"aria-controls", f.id,
				"disabled", f.props.Disabled,
			),
			markup.El("span", markup.A("class", "visually-hidden"), markup.Text(toggleLabel)),
			components.Icon(components.IconProps{
				Name:   components.IconPasswordVisible,
				Size:   components.IconSizeSmall,
				Hidden: true,
				Base:   components.Base{Class: visibleIcon.Build()},
			}),
			components.Icon(components.IconProps{
				Name:   components.IconPasswordInvisible,
				Size:   components.IconSizeSmall,
				Hidden: true,
				Base:   components.Base{Class: invisibleIcon.Build()},
			}),
		),
		f.validationMessage(),
	).Render(ctx, w)
}
