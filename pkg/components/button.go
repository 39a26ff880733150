package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// ButtonType is the type attribute of a button.
type ButtonType int

const (
	ButtonTypeButton ButtonType = iota
	ButtonTypeSubmit
	ButtonTypeReset
)

var buttonTypeNames = []string{"button", "submit", "reset"}

func (t ButtonType) String() string               { return enumName(t, buttonTypeNames) }
func (t ButtonType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *ButtonType) UnmarshalText(text []byte) error {
	return parseEnum(t, text, buttonTypeNames, "button type")
}

// IconPosition places a button icon before or after the label.
type IconPosition int

const (
	IconStart IconPosition = iota
	IconEnd
)

var iconPositionNames = []string{"start", "end"}

func (p IconPosition) String() string               { return enumName(p, iconPositionNames) }
func (p IconPosition) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *IconPosition) UnmarshalText(text []byte) error {
	return parseEnum(p, text, iconPositionNames, "icon position")
}

// ButtonBadgeProps configures the badge shown inside a button.
type ButtonBadgeProps struct {
	Text string `yaml:"text"`
	// AdditionalText is read by screen readers only.
	AdditionalText string `yaml:"additional_text,omitempty"`
}

// ButtonProps configures a button.
type ButtonProps struct {
	Base `yaml:",inline"`

	Label        string       `yaml:"label"`
	Color        Color        `yaml:"color"`
	Variant      Variant      `yaml:"variant,omitempty"`
	Type         ButtonType   `yaml:"type,omitempty"`
	Size         Size         `yaml:"size,omitempty"`
	Disabled     bool         `yaml:"disabled,omitempty"`
	Icon         string       `yaml:"icon,omitempty"`
	IconRounded  bool         `yaml:"icon_rounded,omitempty"`
	IconPosition IconPosition `yaml:"icon_position,omitempty"`

	Badge *ButtonBadgeProps `yaml:"badge,omitempty"`

	// Children replaces Label when set.
	Children templ.Component `yaml:"-"`
	// OnClick is invoked by Click.
	OnClick func(ctx context.Context) error `yaml:"-"`
}

// Click forwards a click to OnClick. Disabled buttons ignore clicks.
func (p ButtonProps) Click(ctx context.Context) error {
	if p.Disabled || p.OnClick == nil {
		return nil
	}

	return p.OnClick(ctx)
}

// ButtonClasses returns the class attribute of a button.
func ButtonClasses(p ButtonProps) string {
	return buttonClasses(p).Add(p.Class).Build()
}

func buttonClasses(p ButtonProps) *css.Builder {
	b := css.New("btn")
	if p.Variant == VariantOutline {
		b.Add("btn-outline-" + p.Color.String())
	} else {
		b.Add("btn-" + p.Color.String())
	}

	switch p.Size {
	case SizeLarge:
		b.Add("btn-lg")
	case SizeSmall:
		b.Add("btn-sm")
	case SizeMini:
		b.Add("btn-xs")
	}

	return b.AddIf(p.Disabled, "disabled").AddIf(p.Icon != "", "btn-icon")
}

// ButtonIconColor returns the icon color used inside the button: the
// button color for rounded icons and outline buttons, white otherwise.
func ButtonIconColor(p ButtonProps) IconColor {
	if p.IconRounded || p.Variant == VariantOutline {
		return IconColorOf(p.Color)
	}

	return IconColorWhite
}

// Button renders a button.
func Button(p ButtonProps) templ.Component {
	var ariaDisabled any
	if p.Disabled {
		ariaDisabled = "true"
	}

	label := content(p.Label, p.Children)
	if p.Icon != "" && label != nil {
		label = markup.El("span", nil, label)
	}

	var start, end templ.Component
	if p.Icon != "" {
		icon := Icon(IconProps{Name: p.Icon, Color: ButtonIconColor(p), Hidden: true})
		if p.IconRounded {
			icon = markup.El("span", markup.A("class", "rounded-icon"), icon)
		}
		if p.IconPosition == IconEnd {
			end = icon
		} else {
			start = icon
		}
	}

	return markup.El("button",
		p.root(buttonClasses(p), "type", p.Type.String(), "aria-disabled", ariaDisabled),
		start,
		label,
		end,
		buttonBadge(p),
	)
}

func buttonBadge(p ButtonProps) templ.Component {
	if p.Badge == nil {
		return nil
	}

	var additional templ.Component
	if p.Badge.AdditionalText != "" {
		additional = markup.El("span", markup.A("class", "visually-hidden"), markup.Text(p.Badge.AdditionalText))
	}

	return markup.Fragment(
		markup.Text(" "),
		Badge(BadgeProps{Text: p.Badge.Text, Color: p.Color, Variant: p.Variant.Inverse()}),
		additional,
	)
}
