// Package catalog fills a registry with every component of the library and
// its built-in examples, and merges extra examples from a YAML file.
//
// An examples file maps component names to lists of examples:
//
//	button:
//	  - name: delete
//	    description: Destructive action
//	    props:
//	      label: Elimina
//	      color: danger
//	      variant: outline
//
// A file example replaces the built-in example with the same name and is
// appended otherwise. Props are decoded strictly into the component's
// props type, so unknown keys are errors.
package catalog

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"sync"

	"github.com/a-h/templ"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/logging"
	"github.com/conneroisu/italia/internal/registry"
)

// definition describes one gallery entry with props of type P.
type definition[P any] struct {
	name        string
	title       string
	category    registry.Category
	description string
	render      func(ctx context.Context, p P) (templ.Component, error)
	examples    []example[P]
}

type example[P any] struct {
	name        string
	description string
	props       P
}

// kind is the type-erased view of a definition.
type kind interface {
	entry() *registry.Entry
	decode(node *yaml.Node) (any, error)
}

func (d definition[P]) entry() *registry.Entry {
	e := &registry.Entry{
		Name:        d.name,
		Title:       d.title,
		Category:    d.category,
		Description: d.description,
		Render: func(ctx context.Context, props any) (templ.Component, error) {
			p, ok := props.(P)
			if !ok {
				return nil, errors.NewValidationError(errors.ErrCodeInvalidProps,
					fmt.Sprintf("props of type %T cannot render %s", props, d.name)).WithComponent(d.name)
			}
			return d.render(ctx, p)
		},
	}

	for _, ex := range d.examples {
		e.Examples = append(e.Examples, registry.Example{
			Name:        ex.name,
			Description: ex.description,
			Source:      registry.SourceBuiltin,
			Props:       ex.props,
		})
	}

	return e
}

// decode strictly decodes a props node. A missing node is the zero props.
func (d definition[P]) decode(node *yaml.Node) (any, error) {
	var p P
	if node == nil || node.Kind == 0 {
		return p, nil
	}

	raw, err := yaml.Marshal(node)
	if err != nil {
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}

	return p, nil
}

// Catalog owns the gallery entries of a registry.
type Catalog struct {
	registry *registry.Registry
	logger   logging.Logger

	mutex      sync.Mutex
	kinds      map[string]kind
	order      []string
	overridden map[string]bool
	problems   *errors.ErrorCollector
}

// New registers every built-in entry into reg.
func New(reg *registry.Registry, logger logging.Logger) *Catalog {
	if logger == nil {
		logger = logging.Nop()
	}

	c := &Catalog{
		registry:   reg,
		logger:     logger.WithComponent("catalog"),
		kinds:      make(map[string]kind),
		overridden: make(map[string]bool),
		problems:   errors.NewErrorCollector(),
	}

	for _, k := range builtins() {
		e := k.entry()
		c.kinds[e.Name] = k
		c.order = append(c.order, e.Name)
		reg.Register(e)
	}

	return c
}

// Registry returns the registry the catalog writes to.
func (c *Catalog) Registry() *registry.Registry {
	return c.registry
}

// Problems returns the errors of the last load.
func (c *Catalog) Problems() []errors.ExampleError {
	return c.problems.GetErrors()
}

// LoadFile merges the examples of a YAML file. See Load.
func (c *Catalog) LoadFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		c.mutex.Lock()
		c.problems.Clear()
		c.problems.Add(errors.ExampleError{File: path, Message: "cannot open examples file", Cause: err})
		c.mutex.Unlock()
		c.logger.Warn(ctx, err, "Cannot open examples file", "file", path)

		return errors.NewIOError(errors.ErrCodeFileNotFound, "cannot open examples file", err).
			WithContext("file", path)
	}
	defer f.Close()

	return c.Load(ctx, f, path)
}

// Load replaces the examples merged by the previous load with the ones in
// r. Valid examples are applied even when others fail; the failures are
// returned together as ERR_INVALID_EXAMPLES.
func (c *Catalog) Load(ctx context.Context, r io.Reader, file string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.problems.Clear()

	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil && !stderrors.Is(err, io.EOF) {
		c.problems.Add(errors.ExampleError{File: file, Line: yamlLine(err), Message: "invalid YAML", Cause: err})
		return c.result(ctx, file, 0)
	}

	merged := make(map[string]*registry.Entry)
	count := 0

	if doc := document(&root); doc != nil {
		if doc.Kind != yaml.MappingNode {
			c.problems.Add(errors.ExampleError{File: file, Line: doc.Line, Message: "top level must map component names to examples"})
			return c.result(ctx, file, 0)
		}

		for i := 0; i+1 < len(doc.Content); i += 2 {
			key, value := doc.Content[i], doc.Content[i+1]
			count += c.mergeComponent(file, key, value, merged)
		}
	}

	for _, name := range c.order {
		e, ok := merged[name]
		switch {
		case ok:
			c.registry.Register(e)
		case c.overridden[name]:
			c.registry.Register(c.kinds[name].entry())
		}
		c.overridden[name] = ok
	}

	return c.result(ctx, file, count)
}

func (c *Catalog) mergeComponent(file string, key, value *yaml.Node, merged map[string]*registry.Entry) int {
	name := key.Value
	k, ok := c.kinds[name]
	if !ok {
		c.problems.Add(errors.ExampleError{File: file, Line: key.Line, Component: name, Message: "unknown component"})
		return 0
	}
	if value.Kind != yaml.SequenceNode {
		c.problems.Add(errors.ExampleError{File: file, Line: value.Line, Component: name, Message: "examples must be a list"})
		return 0
	}

	e, ok := merged[name]
	if !ok {
		e = k.entry()
	}

	count := 0
	for _, node := range value.Content {
		ex, err := decodeExample(k, node)
		if err != nil {
			c.problems.Add(errors.ExampleError{
				File:      file,
				Line:      node.Line,
				Component: name,
				Example:   exampleName(node),
				Message:   "invalid example",
				Cause:     err,
			})
			continue
		}

		replaceExample(e, ex)
		count++
	}

	merged[name] = e

	return count
}

func (c *Catalog) result(ctx context.Context, file string, count int) error {
	for _, p := range c.problems.GetErrors() {
		c.logger.Warn(ctx, &p, "Skipping example", "file", file)
	}
	c.logger.Info(ctx, "Examples loaded", "file", file, "examples", count)

	if !c.problems.HasErrors() {
		return nil
	}

	return errors.NewValidationError(errors.ErrCodeInvalidExamples,
		fmt.Sprintf("%d problem(s) in examples file", len(c.problems.GetErrors()))).
		WithContext("file", file).
		WithCause(c.problems.Err())
}

type fileExample struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Props       yaml.Node `yaml:"props"`
}

func decodeExample(k kind, node *yaml.Node) (registry.Example, error) {
	var fe fileExample
	if err := node.Decode(&fe); err != nil {
		return registry.Example{}, err
	}
	if fe.Name == "" {
		return registry.Example{}, fmt.Errorf("example has no name")
	}

	props, err := k.decode(&fe.Props)
	if err != nil {
		return registry.Example{}, err
	}

	return registry.Example{
		Name:        fe.Name,
		Description: fe.Description,
		Source:      registry.SourceFile,
		Props:       props,
	}, nil
}

func replaceExample(e *registry.Entry, ex registry.Example) {
	for i := range e.Examples {
		if e.Examples[i].Name == ex.Name {
			e.Examples[i] = ex
			return
		}
	}

	e.Examples = append(e.Examples, ex)
}

func document(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return root.Content[0]
	}

	return nil
}

func exampleName(node *yaml.Node) string {
	if node.Kind != yaml.MappingNode {
		return ""
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "name" {
			return node.Content[i+1].Value
		}
	}

	return ""
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// yamlLine extracts the line number yaml.v3 puts in its messages.
func yamlLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}

	return line
}
