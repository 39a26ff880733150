// Package markup writes HTML elements for the component packages.
//
// Components are plain Go functions returning templ.Component, so the
// element writer here plays the role of generated templ code: attributes are
// written in a fixed order, values are escaped with templ.EscapeString and
// caller supplied templ.Attributes are merged in last.
package markup

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/a-h/templ"
)

// Attr is a single attribute. A nil or false Value omits the attribute,
// true renders it without a value.
type Attr struct {
	Name  string
	Value any
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// A builds an Attrs from alternating name, value pairs.
func A(pairs ...any) Attrs {
	attrs := make(Attrs, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, Attr{Name: name, Value: pairs[i+1]})
	}

	return attrs
}

// Set replaces the value of name or appends it.
func (a Attrs) Set(name string, value any) Attrs {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}

	return append(a, Attr{Name: name, Value: value})
}

// Get returns the value of name.
func (a Attrs) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return nil, false
}

// Merge returns a copy of a with extra applied on top, in sorted key order.
// A "class" in extra is appended to the existing class list.
func (a Attrs) Merge(extra templ.Attributes) Attrs {
	out := make(Attrs, len(a), len(a)+len(extra))
	copy(out, a)
	if len(extra) == 0 {
		return out
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := extra[k]
		if k == "class" {
			if existing, ok := out.Get("class"); ok {
				if s, ok := existing.(string); ok && s != "" {
					v = s + " " + fmt.Sprint(v)
				}
			}
		}
		out = out.Set(k, v)
	}

	return out
}

// Node is an element with its attributes and children.
type Node struct {
	Tag      string
	Attrs    Attrs
	Children []templ.Component
	Void     bool
}

// Render implements templ.Component.
func (n Node) Render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}
	if err := WriteAttrs(w, n.Attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if n.Void {
		return nil
	}

	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// El returns an element with children.
func El(tag string, attrs Attrs, children ...templ.Component) templ.Component {
	return Node{Tag: tag, Attrs: attrs, Children: children}
}

// Void returns an element without a closing tag, such as input or img.
func Void(tag string, attrs Attrs) templ.Component {
	return Node{Tag: tag, Attrs: attrs, Void: true}
}

// Text returns escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Textf is Text with fmt formatting.
func Textf(format string, args ...any) templ.Component {
	return Text(fmt.Sprintf(format, args...))
}

// Fragment renders components one after another, skipping nil ones.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// If returns c when cond holds and nil otherwise.
func If(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}

	return c
}

// WriteAttrs writes attrs, each preceded by a space.
func WriteAttrs(w io.Writer, attrs Attrs) error {
	for _, attr := range attrs {
		value, ok := attrValue(attr)
		if !ok {
			continue
		}
		s := " " + attr.Name
		if value != nil {
			s += `="` + templ.EscapeString(*value) + `"`
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}

	return nil
}

// attrValue reports whether attr is rendered and its value; a nil value
// with ok set is a bare boolean attribute.
func attrValue(attr Attr) (*string, bool) {
	var s string

	switch v := attr.Value.(type) {
	case nil:
		return nil, false
	case bool:
		return nil, v
	case string:
		s = v
	case *string:
		if v == nil {
			return nil, false
		}
		s = *v
	case templ.SafeURL:
		s = string(v)
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}

	if attr.Name == "class" && s == "" {
		return nil, false
	}

	return &s, true
}
