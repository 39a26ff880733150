package errors

import (
	"errors"
	"fmt"
	"sync"
)

// ExampleError locates a problem in a gallery examples file.
type ExampleError struct {
	File      string
	Line      int
	Component string
	Example   string
	Message   string
	Cause     error
}

// Error implements the error interface
func (e *ExampleError) Error() string {
	where := e.File
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.File, e.Line)
	}

	msg := fmt.Sprintf("%s: %s", where, e.Message)
	if e.Component != "" {
		name := e.Component
		if e.Example != "" {
			name += "/" + e.Example
		}
		msg = fmt.Sprintf("%s: %s: %s", where, name, e.Message)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause error.
func (e *ExampleError) Unwrap() error {
	return e.Cause
}

// ErrorCollector gathers the errors of a multi-step load so they can be
// reported together.
type ErrorCollector struct {
	exampleErrors []ExampleError
	errors        []error
	mutex         sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// Add records an examples file error.
func (ec *ErrorCollector) Add(err ExampleError) {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.exampleErrors = append(ec.exampleErrors, err)
}

// AddError records any other error; nil is ignored.
func (ec *ErrorCollector) AddError(err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, err)
}

// GetErrors returns a copy of the examples file errors.
func (ec *ErrorCollector) GetErrors() []ExampleError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	result := make([]ExampleError, len(ec.exampleErrors))
	copy(result, ec.exampleErrors)

	return result
}

// GetErrorsByComponent returns the examples file errors of one component.
func (ec *ErrorCollector) GetErrorsByComponent(component string) []ExampleError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	var result []ExampleError
	for _, err := range ec.exampleErrors {
		if err.Component == component {
			result = append(result, err)
		}
	}

	return result
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	return len(ec.exampleErrors) > 0 || len(ec.errors) > 0
}

// Clear clears all errors
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.exampleErrors = ec.exampleErrors[:0]
	ec.errors = ec.errors[:0]
}

// Err joins every collected error, or returns nil.
func (ec *ErrorCollector) Err() error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	all := make([]error, 0, len(ec.exampleErrors)+len(ec.errors))
	for _, err := range ec.exampleErrors {
		all = append(all, &err)
	}
	all = append(all, ec.errors...)

	return errors.Join(all...)
}
