// Package css collects CSS class tokens into a class attribute value.
package css

import "strings"

// Builder is an ordered, deduplicating set of CSS class tokens.
// The zero value is ready to use.
type Builder struct {
	classes []string
	seen    map[string]struct{}
}

// New returns a Builder seeded with the given base classes.
func New(base ...string) *Builder {
	b := &Builder{}
	return b.AddRange(base...)
}

// Add appends every whitespace-separated token of class that was not
// already added. Blank input is ignored.
func (b *Builder) Add(class string) *Builder {
	for _, token := range strings.Fields(class) {
		if b.seen == nil {
			b.seen = make(map[string]struct{})
		}
		if _, ok := b.seen[token]; ok {
			continue
		}
		b.seen[token] = struct{}{}
		b.classes = append(b.classes, token)
	}

	return b
}

// AddIf adds class only when cond is true.
func (b *Builder) AddIf(cond bool, class string) *Builder {
	if cond {
		b.Add(class)
	}

	return b
}

// AddRange adds each class in order.
func (b *Builder) AddRange(classes ...string) *Builder {
	for _, class := range classes {
		b.Add(class)
	}

	return b
}

// Len returns the number of distinct tokens.
func (b *Builder) Len() int {
	return len(b.classes)
}

// Build joins the collected tokens with single spaces.
func (b *Builder) Build() string {
	return strings.Join(b.classes, " ")
}

// String implements fmt.Stringer.
func (b *Builder) String() string {
	return b.Build()
}

// Join is shorthand for New(classes...).Build().
func Join(classes ...string) string {
	return New(classes...).Build()
}
