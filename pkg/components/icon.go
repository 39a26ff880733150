package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// IconProps configures an icon from the sprite.
type IconProps struct {
	Base `yaml:",inline"`

	Name   string        `yaml:"name"`
	Size   IconSize      `yaml:"size,omitempty"`
	Color  IconColor     `yaml:"color,omitempty"`
	Align  IconAlignment `yaml:"align,omitempty"`
	Padded bool          `yaml:"padded,omitempty"`
	Role   string        `yaml:"role,omitempty"`
	Title  string        `yaml:"title,omitempty"`
	// Hidden marks a decorative icon with aria-hidden.
	Hidden bool `yaml:"hidden,omitempty"`
}

// IconClasses returns the class attribute of an icon.
func IconClasses(p IconProps) string {
	return iconClasses(p).Add(p.Class).Build()
}

func iconClasses(p IconProps) *css.Builder {
	b := css.New("icon")

	switch p.Size {
	case IconSizeXS:
		b.Add("icon-xs")
	case IconSizeSmall:
		b.Add("icon-sm")
	case IconSizeLarge:
		b.Add("icon-lg")
	case IconSizeXL:
		b.Add("icon-xl")
	}

	switch p.Color {
	case IconColorPrimary:
		b.Add("icon-primary")
	case IconColorSecondary:
		b.Add("icon-secondary")
	case IconColorSuccess:
		b.Add("icon-success")
	case IconColorWarning:
		b.Add("icon-warning")
	case IconColorDanger:
		b.Add("icon-danger")
	case IconColorLight:
		b.Add("icon-light")
	case IconColorWhite:
		b.Add("icon-white")
	}

	switch p.Align {
	case IconAlignBottom:
		b.Add("align-bottom")
	case IconAlignMiddle:
		b.Add("align-middle")
	case IconAlignTop:
		b.Add("align-top")
	}

	return b.AddIf(p.Padded, "icon-padded")
}

// Icon renders an svg that references p.Name in the icon sprite.
func Icon(p IconProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var hidden any
		if p.Hidden {
			hidden = "true"
		}

		var title templ.Component
		if p.Title != "" {
			title = markup.El("title", nil, markup.Text(p.Title))
		}

		return markup.El("svg",
			p.root(iconClasses(p), "role", optional(p.Role), "aria-hidden", hidden),
			title,
			markup.El("use", markup.A("href", SpriteURL(ctx)+"#"+p.Name)),
		).Render(ctx, w)
	})
}

// iconIf renders an icon only when name is set.
func iconIf(name string, p IconProps) templ.Component {
	if name == "" {
		return nil
	}
	p.Name = name

	return Icon(p)
}
