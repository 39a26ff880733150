// Package registry keeps the gallery entries: every component the gallery
// can show, with its examples and the function that renders them.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/errors"
)

// Category groups entries on the index page.
type Category string

const (
	CategoryComponents Category = "components"
	CategoryForm       Category = "form"
)

// Source tells where an example comes from.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceFile    Source = "file"
)

// Example is a named set of props.
type Example struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Source      Source `json:"source" yaml:"source"`
	// Props is the typed props value handed to the entry's Render.
	Props any `json:"-" yaml:"-"`
}

// RenderFunc builds the component for one example's props.
type RenderFunc func(ctx context.Context, props any) (templ.Component, error)

// Entry is one component of the gallery.
type Entry struct {
	Name        string     `json:"name" yaml:"name"`
	Title       string     `json:"title" yaml:"title"`
	Category    Category   `json:"category" yaml:"category"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Examples    []Example  `json:"examples" yaml:"examples"`
	Render      RenderFunc `json:"-" yaml:"-"`
}

// Example returns the example called name.
func (e *Entry) Example(name string) (Example, bool) {
	for _, ex := range e.Examples {
		if ex.Name == name {
			return ex, true
		}
	}

	return Example{}, false
}

// Clone returns a copy whose Examples can be changed freely.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Examples = append([]Example(nil), e.Examples...)

	return &c
}

// Event represents a change in the registry
type Event struct {
	Type      EventType
	Entry     *Entry
	Timestamp time.Time
}

// EventType represents the type of registry event
type EventType int

const (
	EventTypeAdded EventType = iota
	EventTypeUpdated
	EventTypeRemoved
)

func (t EventType) String() string {
	switch t {
	case EventTypeAdded:
		return "added"
	case EventTypeUpdated:
		return "updated"
	case EventTypeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// watchBuffer is the capacity of each watcher channel. Events to a full
// channel are dropped.
const watchBuffer = 100

// Registry is safe for concurrent use.
type Registry struct {
	entries  map[string]*Entry
	mutex    sync.RWMutex
	watchers []chan Event
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		entries: make(map[string]*Entry),
	}
}

// Register adds or replaces the entry with the same name.
func (r *Registry) Register(entry *Entry) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	eventType := EventTypeAdded
	if _, exists := r.entries[entry.Name]; exists {
		eventType = EventTypeUpdated
	}

	r.entries[entry.Name] = entry
	r.notify(Event{Type: eventType, Entry: entry, Timestamp: time.Now()})
}

// Get retrieves an entry by name
func (r *Registry) Get(name string) (*Entry, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	entry, exists := r.entries[name]
	return entry, exists
}

// List returns every entry sorted by category, then name.
func (r *Registry) List() []*Entry {
	r.mutex.RLock()
	result := make([]*Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		result = append(result, entry)
	}
	r.mutex.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})

	return result
}

// Remove deletes an entry; unknown names are ignored.
func (r *Registry) Remove(name string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, exists := r.entries[name]
	if !exists {
		return
	}

	delete(r.entries, name)
	r.notify(Event{Type: EventTypeRemoved, Entry: entry, Timestamp: time.Now()})
}

// Count returns the number of registered entries
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entries)
}

// Watch returns a channel that receives registry events
func (r *Registry) Watch() <-chan Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ch := make(chan Event, watchBuffer)
	r.watchers = append(r.watchers, ch)
	return ch
}

// Unwatch removes a watcher channel and closes it
func (r *Registry) Unwatch(ch <-chan Event) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, watcher := range r.watchers {
		if watcher == ch {
			close(watcher)
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			break
		}
	}
}

// notify must be called with the lock held.
func (r *Registry) notify(event Event) {
	for _, watcher := range r.watchers {
		select {
		case watcher <- event:
		default:
		}
	}
}

// Render builds the component of one example. Unknown names fail with
// ERR_COMPONENT_NOT_FOUND or ERR_EXAMPLE_NOT_FOUND.
func (r *Registry) Render(ctx context.Context, name, example string) (templ.Component, error) {
	entry, ok := r.Get(name)
	if !ok {
		return nil, errors.NewValidationError(errors.ErrCodeComponentNotFound,
			fmt.Sprintf("component %q is not registered", name)).WithComponent(name)
	}

	ex, ok := entry.Example(example)
	if !ok {
		return nil, errors.NewValidationError(errors.ErrCodeExampleNotFound,
			fmt.Sprintf("example %q not found", example)).WithComponent(name)
	}

	if entry.Render == nil {
		return nil, errors.NewInternalError(errors.ErrCodeRenderFailed, "entry has no renderer", nil).WithComponent(name)
	}

	component, err := entry.Render(ctx, ex.Props)
	if err != nil {
		return nil, fmt.Errorf("render %s/%s: %w", name, example, err)
	}

	return component, nil
}
