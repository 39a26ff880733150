package form

import (
	"context"
	"fmt"
	"io"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// CheckboxProps configures a checkbox.
type CheckboxProps struct {
	FieldProps `yaml:",inline"`

	Value   bool `yaml:"value,omitempty"`
	Inline  bool `yaml:"inline,omitempty"`
	Grouped bool `yaml:"grouped,omitempty"`

	OnChange func(ctx context.Context, checked bool) error `yaml:"-"`
}

// Checkbox is a boolean check input.
type Checkbox struct {
	field[bool]
	props CheckboxProps
}

// NewCheckbox validates p and returns the checkbox.
func NewCheckbox(p CheckboxProps) (*Checkbox, error) {
	if err := validate("checkbox", p); err != nil {
		return nil, err
	}

	return &Checkbox{
		field: newField("check", p.FieldProps, p.Value, nil, p.OnChange),
		props: p,
	}, nil
}

// Toggle flips the checked state.
func (c *Checkbox) Toggle(ctx context.Context) error {
	return c.SetValue(ctx, !c.value)
}

// Render implements templ.Component.
func (c *Checkbox) Render(ctx context.Context, w io.Writer) error {
	container := checkContainer(c.props.Inline, c.props.Grouped, c.props.Class)
	labelClass := css.New().AddIf(c.props.Disabled, "disabled")

	return markup.El("div", markup.A("class", container),
		markup.Void("input", c.inputAttrs("type", "checkbox", "checked", c.value)),
		markup.El("label", markup.A("for", c.id, "class", labelClass.Build()), markup.Text(c.props.Label)),
		c.validationMessage(),
	).Render(ctx, w)
}

func checkContainer(inline, grouped bool, class string) string {
	return css.New("form-check").
		AddIf(inline, "form-check-inline").
		AddIf(grouped, "form-check-group").
		Add(class).
		Build()
}

// ToggleViewMode selects how a toggle is laid out.
type ToggleViewMode int

const (
	ToggleInline ToggleViewMode = iota
	ToggleGrouped
)

var toggleViewModeNames = []string{"inline", "grouped"}

func (m ToggleViewMode) String() string {
	if m == ToggleGrouped {
		return "grouped"
	}

	return "inline"
}

// MarshalText implements encoding.TextMarshaler.
func (m ToggleViewMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ToggleViewMode) UnmarshalText(text []byte) error {
	for i, name := range toggleViewModeNames {
		if name == string(text) {
			*m = ToggleViewMode(i)
			return nil
		}
	}

	return errors.NewValidationError(errors.ErrCodeInvalidOption,
		fmt.Sprintf("unknown toggle view mode %q", string(text))).WithComponent("form")
}

// ToggleProps configures a switch.
type ToggleProps struct {
	FieldProps `yaml:",inline"`

	Value    bool           `yaml:"value,omitempty"`
	ViewMode ToggleViewMode `yaml:"view_mode,omitempty"`

	OnChange func(ctx context.Context, on bool) error `yaml:"-"`
}

// Toggle is a boolean switch.
type Toggle struct {
	field[bool]
	props ToggleProps
}

// NewToggle validates p and returns the toggle.
func NewToggle(p ToggleProps) (*Toggle, error) {
	if err := validate("toggle", p); err != nil {
		return nil, err
	}

	return &Toggle{
		field: newField("toggle", p.FieldProps, p.Value, nil, p.OnChange),
		props: p,
	}, nil
}

// Toggle flips the switch.
func (t *Toggle) Toggle(ctx context.Context) error {
	return t.SetValue(ctx, !t.value)
}

// Render implements templ.Component.
func (t *Toggle) Render(ctx context.Context, w io.Writer) error {
	toggles := markup.El("div", markup.A("class", css.Join("toggles", t.props.Class)),
		markup.El("label", markup.A("for", t.id),
			markup.Text(t.props.Label),
			markup.Void("input", t.inputAttrs("type", "checkbox", "checked", t.value)),
			markup.El("span", markup.A("class", "lever")),
		),
		t.validationMessage(),
	)

	if t.props.ViewMode == ToggleGrouped {
		toggles = markup.El("div", markup.A("class", "form-check form-check-group"), toggles)
	}

	return toggles.Render(ctx, w)
}
