package components

import (
	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// DefaultBreadcrumbLabel is the accessible name of the breadcrumb nav.
const DefaultBreadcrumbLabel = "Percorso di navigazione"

// BreadcrumbItem is one step of a breadcrumb.
type BreadcrumbItem struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon,omitempty"`
	Link string `yaml:"link,omitempty"`
}

// BreadcrumbProps configures a breadcrumb.
type BreadcrumbProps struct {
	Base `yaml:",inline"`

	// Label overrides DefaultBreadcrumbLabel.
	Label string           `yaml:"label,omitempty"`
	Items []BreadcrumbItem `yaml:"items"`
	// Separator defaults to "/".
	Separator string `yaml:"separator,omitempty"`
	Dark      bool   `yaml:"dark,omitempty"`
}

// Breadcrumb renders a navigation trail. The last item is the current page.
func Breadcrumb(p BreadcrumbProps) templ.Component {
	label := p.Label
	if label == "" {
		label = DefaultBreadcrumbLabel
	}
	separator := p.Separator
	if separator == "" {
		separator = "/"
	}

	items := make([]templ.Component, 0, len(p.Items))
	for i, item := range p.Items {
		leaf := i == len(p.Items)-1

		icon := iconIf(item.Icon, IconProps{
			Size:   IconSizeSmall,
			Color:  IconColorSecondary,
			Align:  IconAlignTop,
			Hidden: true,
			Base:   Base{Class: "me-1"},
		})

		var text templ.Component = markup.Text(item.Text)
		if item.Link != "" && !leaf {
			text = markup.El("a", markup.A("href", templ.URL(item.Link)), text)
		}

		var sep templ.Component
		if !leaf {
			sep = markup.El("span", markup.A("class", "separator"), markup.Text(separator))
		}

		var current any
		if leaf {
			current = "page"
		}

		items = append(items, markup.El("li",
			markup.A("class", css.New("breadcrumb-item").AddIf(leaf, "active").Build(), "aria-current", current),
			icon, text, sep,
		))
	}

	list := css.New("breadcrumb").AddIf(p.Dark, "dark")

	return markup.El("nav", p.root(css.New("breadcrumb-container"), "aria-label", label),
		markup.El("ol", markup.A("class", list.Build()), items...),
	)
}
