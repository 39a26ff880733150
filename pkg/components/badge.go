package components

import (
	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// BadgeProps configures a badge.
type BadgeProps struct {
	Base `yaml:",inline"`

	Text    string  `yaml:"text"`
	Color   Color   `yaml:"color"`
	Variant Variant `yaml:"variant,omitempty"`
	Rounded bool    `yaml:"rounded,omitempty"`
}

// BadgeClasses returns the class attribute of a badge.
func BadgeClasses(p BadgeProps) string {
	return badgeClasses(p).Add(p.Class).Build()
}

func badgeClasses(p BadgeProps) *css.Builder {
	b := css.New("badge")
	if p.Variant == VariantOutline {
		b.Add("bg-white text-" + p.Color.String())
	} else {
		b.Add("bg-" + p.Color.String())
	}

	return b.AddIf(p.Rounded, "rounded-pill")
}

// Badge renders a small count or label.
func Badge(p BadgeProps) templ.Component {
	return markup.El("span", p.root(badgeClasses(p)), markup.Text(p.Text))
}
