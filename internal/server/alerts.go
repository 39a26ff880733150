package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/registry"
	"github.com/conneroisu/italia/pkg/components"
)

// alertComponent is the registry entry whose examples back the alert store.
const alertComponent = "alert"

// alertStore keeps the live state of the alert examples so a dismissed
// alert stays closed across page loads until its example changes.
type alertStore struct {
	registry *registry.Registry

	mutex  sync.Mutex
	alerts map[string]*components.AlertState
}

func newAlertStore(reg *registry.Registry) *alertStore {
	return &alertStore{
		registry: reg,
		alerts:   make(map[string]*components.AlertState),
	}
}

// alertStatus is the JSON view of one alert.
type alertStatus struct {
	ID      string `json:"id"`
	Closed  bool   `json:"closed"`
	Classes string `json:"classes"`
}

// state must be called with the mutex held.
func (s *alertStore) state(id string) (*components.AlertState, error) {
	if a, ok := s.alerts[id]; ok {
		return a, nil
	}

	entry, ok := s.registry.Get(alertComponent)
	if !ok {
		return nil, errors.NewValidationError(errors.ErrCodeComponentNotFound,
			"alert component is not registered").WithComponent(alertComponent)
	}

	ex, ok := entry.Example(id)
	if !ok {
		return nil, errors.NewValidationError(errors.ErrCodeExampleNotFound,
			fmt.Sprintf("alert %q not found", id)).WithComponent(alertComponent)
	}

	props, ok := ex.Props.(components.AlertProps)
	if !ok {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidProps,
			fmt.Sprintf("alert %q has props of type %T", id, ex.Props)).WithComponent(alertComponent)
	}

	a := components.NewAlert(props)
	s.alerts[id] = a

	return a, nil
}

// status returns the current state of alert id.
func (s *alertStore) status(id string) (alertStatus, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	a, err := s.state(id)
	if err != nil {
		return alertStatus{}, err
	}

	return alertStatus{ID: id, Closed: a.Closed(), Classes: a.Classes()}, nil
}

// dismiss closes alert id. Alerts that are not dismissible fail with
// ERR_INVALID_OPERATION.
func (s *alertStore) dismiss(ctx context.Context, id string) (alertStatus, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	a, err := s.state(id)
	if err != nil {
		return alertStatus{}, err
	}

	if err := a.Dismiss(ctx); err != nil {
		return alertStatus{}, err
	}

	return alertStatus{ID: id, Closed: a.Closed(), Classes: a.Classes()}, nil
}

// forget drops cached state when the alert entry changes.
func (s *alertStore) forget(name string) {
	if name != alertComponent {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	clear(s.alerts)
}
