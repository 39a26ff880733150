package form

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/components"
	"github.com/conneroisu/italia/pkg/css"
)

// Key returns the form value that identifies v in rendered markup.
func Key[T comparable](v T) string {
	return fmt.Sprint(v)
}

// RadioOption is one radio button of a group.
type RadioOption[T comparable] struct {
	components.Base `yaml:",inline"`

	Label    string `yaml:"label" validate:"required"`
	Value    T      `yaml:"value"`
	Disabled bool   `yaml:"disabled,omitempty"`
	// AdditionalText is rendered below the label and linked with
	// aria-describedby when AdditionalTextID is set.
	AdditionalText   string `yaml:"additional_text,omitempty"`
	AdditionalTextID string `yaml:"additional_text_id,omitempty"`
}

// RadioGroupProps configures a group of radio buttons.
type RadioGroupProps[T comparable] struct {
	components.Base `yaml:",inline"`

	// Legend labels the group for assistive technology.
	Legend  string           `yaml:"legend,omitempty"`
	Options []RadioOption[T] `yaml:"options" validate:"min=1,dive"`
	Value   T                `yaml:"value,omitempty"`
	Inline  bool             `yaml:"inline,omitempty"`
	Grouped bool             `yaml:"grouped,omitempty"`
	// ValidationMessage is shown below the group when set.
	ValidationMessage string `yaml:"validation_message,omitempty"`

	OnChange func(ctx context.Context, value T) error `yaml:"-"`
}

// RadioGroup is a single choice among options.
type RadioGroup[T comparable] struct {
	id       string
	props    RadioGroupProps[T]
	optionID []string
	value    T
}

// NewRadioGroup validates p and returns the group.
func NewRadioGroup[T comparable](p RadioGroupProps[T]) (*RadioGroup[T], error) {
	if err := validate("radio-group", p); err != nil {
		return nil, err
	}

	id := p.ID
	if id == "" {
		id = NewID("radiogrp")
	}

	optionID := make([]string, len(p.Options))
	for i, opt := range p.Options {
		optionID[i] = opt.ID
		if optionID[i] == "" {
			optionID[i] = NewID("radio")
		}
	}

	return &RadioGroup[T]{id: id, props: p, optionID: optionID, value: p.Value}, nil
}

// ID returns the id of the group element.
func (g *RadioGroup[T]) ID() string {
	return g.id
}

// Value returns the selected value.
func (g *RadioGroup[T]) Value() T {
	return g.value
}

// Select checks the option holding v and calls OnChange. Unknown and
// disabled options fail with ERR_INVALID_OPTION.
func (g *RadioGroup[T]) Select(ctx context.Context, v T) error {
	for _, opt := range g.props.Options {
		if opt.Value != v {
			continue
		}
		if opt.Disabled {
			return invalidOption("radio-group", Key(v), "is disabled")
		}

		g.value = v
		if g.props.OnChange != nil {
			return g.props.OnChange(ctx, v)
		}
		return nil
	}

	return invalidOption("radio-group", Key(v), "is not an option")
}

// SelectKey is Select for a submitted form value.
func (g *RadioGroup[T]) SelectKey(ctx context.Context, key string) error {
	for _, opt := range g.props.Options {
		if Key(opt.Value) == key {
			return g.Select(ctx, opt.Value)
		}
	}

	return invalidOption("radio-group", key, "is not an option")
}

// Render implements templ.Component.
func (g *RadioGroup[T]) Render(ctx context.Context, w io.Writer) error {
	children := make([]templ.Component, 0, len(g.props.Options)+2)
	if g.props.Legend != "" {
		children = append(children, markup.El("legend", markup.A("class", "visually-hidden"), markup.Text(g.props.Legend)))
	}

	for i, opt := range g.props.Options {
		children = append(children, g.option(i, opt))
	}
	children = append(children, validationMessage(g.props.ValidationMessage))

	attrs := markup.A("id", g.id, "class", optionalString(g.props.Class), "role", "radiogroup").
		Merge(g.props.Attributes)

	return markup.El("fieldset", attrs, children...).Render(ctx, w)
}

func (g *RadioGroup[T]) option(i int, opt RadioOption[T]) templ.Component {
	id := g.optionID[i]

	var describedBy any
	var additional templ.Component
	if opt.AdditionalText != "" {
		if opt.AdditionalTextID != "" {
			describedBy = opt.AdditionalTextID
		}
		additional = markup.El("small",
			markup.A("id", optionalString(opt.AdditionalTextID), "class", "form-text"),
			markup.Text(opt.AdditionalText))
	}

	input := markup.A(
		"type", "radio",
		"id", id,
		"name", g.id,
		"value", Key(opt.Value),
		"checked", opt.Value == g.value,
		"disabled", opt.Disabled,
		"aria-describedby", describedBy,
	).Merge(opt.Attributes)

	labelClass := css.New().AddIf(opt.Disabled, "disabled")

	return markup.El("div", markup.A("class", checkContainer(g.props.Inline, g.props.Grouped, opt.Class)),
		markup.Void("input", input),
		markup.El("label", markup.A("for", id, "class", labelClass.Build()), markup.Text(opt.Label)),
		additional,
	)
}

// SelectItem is one option of a select.
type SelectItem[T comparable] struct {
	Label      string           `yaml:"label"`
	Value      T                `yaml:"value"`
	Disabled   bool             `yaml:"disabled,omitempty"`
	Attributes templ.Attributes `yaml:"attributes,omitempty"`
}

// SelectGroup is a labelled set of options.
type SelectGroup[T comparable] struct {
	Label      string           `yaml:"label" validate:"required"`
	Items      []SelectItem[T]  `yaml:"items"`
	Attributes templ.Attributes `yaml:"attributes,omitempty"`
}

// SelectFieldProps configures a drop-down select.
type SelectFieldProps[T comparable] struct {
	FieldProps `yaml:",inline"`

	Items  []SelectItem[T]  `yaml:"items,omitempty"`
	Groups []SelectGroup[T] `yaml:"groups,omitempty" validate:"dive"`
	Value  T                `yaml:"value,omitempty"`

	OnChange func(ctx context.Context, value T) error `yaml:"-"`
}

// SelectField is a drop-down select.
type SelectField[T comparable] struct {
	field[T]
	props SelectFieldProps[T]
}

// NewSelectField validates p and returns the field.
func NewSelectField[T comparable](p SelectFieldProps[T]) (*SelectField[T], error) {
	if err := validate("select-field", p); err != nil {
		return nil, err
	}

	return &SelectField[T]{
		field: newField("select", p.FieldProps, p.Value, nil, p.OnChange),
		props: p,
	}, nil
}

func (f *SelectField[T]) items() []SelectItem[T] {
	items := append([]SelectItem[T](nil), f.props.Items...)
	for _, g := range f.props.Groups {
		items = append(items, g.Items...)
	}

	return items
}

// Select picks the item holding v and calls OnChange. Unknown and disabled
// items fail with ERR_INVALID_OPTION.
func (f *SelectField[T]) Select(ctx context.Context, v T) error {
	for _, item := range f.items() {
		if item.Value != v {
			continue
		}
		if item.Disabled {
			return invalidOption("select-field", Key(v), "is disabled")
		}
		return f.SetValue(ctx, v)
	}

	return invalidOption("select-field", Key(v), "is not an option")
}

// SelectKey is Select for a submitted form value.
func (f *SelectField[T]) SelectKey(ctx context.Context, key string) error {
	for _, item := range f.items() {
		if Key(item.Value) == key {
			return f.Select(ctx, item.Value)
		}
	}

	return invalidOption("select-field", key, "is not an option")
}

// Render implements templ.Component.
func (f *SelectField[T]) Render(ctx context.Context, w io.Writer) error {
	options := make([]templ.Component, 0, len(f.props.Items)+len(f.props.Groups))
	for _, item := range f.props.Items {
		options = append(options, f.option(item))
	}
	for _, g := range f.props.Groups {
		grouped := make([]templ.Component, 0, len(g.Items))
		for _, item := range g.Items {
			grouped = append(grouped, f.option(item))
		}
		options = append(options, markup.El("optgroup", markup.A("label", g.Label).Merge(g.Attributes), grouped...))
	}

	return markup.El("div", markup.A("class", css.Join("select-wrapper", f.props.Class)),
		markup.El("label", markup.A("for", f.id), markup.Text(f.props.Label)),
		markup.El("select", f.inputAttrs(), options...),
		f.validationMessage(),
	).Render(ctx, w)
}

func (f *SelectField[T]) option(item SelectItem[T]) templ.Component {
	attrs := markup.A(
		"value", Key(item.Value),
		"selected", item.Value == f.value,
		"disabled", item.Disabled,
	).Merge(item.Attributes)

	return markup.El("option", attrs, markup.Text(item.Label))
}

func invalidOption(component, key, reason string) error {
	return errors.NewValidationError(errors.ErrCodeInvalidOption,
		fmt.Sprintf("option %q %s", key, reason)).WithComponent(component)
}
