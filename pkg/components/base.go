// Package components renders Bootstrap Italia widgets as templ components.
//
// Every component is a function from a props struct to templ.Component.
// Props carry yaml tags so the gallery can load examples from a file.
package components

import (
	"context"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/markup"
	"github.com/conneroisu/italia/pkg/css"
)

// DefaultSpriteURL is where the Bootstrap Italia icon sprite is served
// unless the render context says otherwise.
const DefaultSpriteURL = "/static/bootstrap-italia/svg/sprites.svg"

type spriteKey struct{}

// WithSpriteURL returns a context whose icons reference url.
func WithSpriteURL(ctx context.Context, url string) context.Context {
	return context.WithValue(ctx, spriteKey{}, url)
}

// SpriteURL returns the icon sprite URL of ctx.
func SpriteURL(ctx context.Context) string {
	if url, ok := ctx.Value(spriteKey{}).(string); ok && url != "" {
		return url
	}

	return DefaultSpriteURL
}

// Base holds the props shared by every component.
type Base struct {
	// ID of the root element; empty renders no id.
	ID string `yaml:"id,omitempty"`
	// Class is appended to the computed classes.
	Class string `yaml:"class,omitempty"`
	// Attributes are copied onto the root element.
	Attributes templ.Attributes `yaml:"attributes,omitempty"`
}

// root returns the attributes of a root element: id, class, the given
// pairs, then the caller's extra attributes.
func (b Base) root(classes *css.Builder, pairs ...any) markup.Attrs {
	classes.Add(b.Class)

	attrs := markup.A("id", optional(b.ID), "class", classes.Build())
	attrs = append(attrs, markup.A(pairs...)...)

	return attrs.Merge(b.Attributes)
}

// optional turns a blank string into an omitted attribute.
func optional(s string) any {
	if s == "" {
		return nil
	}

	return s
}

func content(text string, children templ.Component) templ.Component {
	if children != nil {
		return children
	}
	if text == "" {
		return nil
	}

	return markup.Text(text)
}
