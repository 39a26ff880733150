package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation  ErrorType = "validation"
	ErrorTypeUnsupported ErrorType = "unsupported_type"
	ErrorTypeOperation   ErrorType = "operation"
	ErrorTypeRender      ErrorType = "render"
	ErrorTypeIO          ErrorType = "io"
	ErrorTypeConfig      ErrorType = "config"
	ErrorTypeInternal    ErrorType = "internal"
)

// ItaliaError is a structured error type with context.
type ItaliaError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Component   string
	Recoverable bool
}

// Error implements the error interface.
func (e *ItaliaError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Component != "" {
		parts = append(parts, "component:"+e.Component)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *ItaliaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an ItaliaError of the same type and code.
func (e *ItaliaError) Is(target error) bool {
	var t *ItaliaError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ItaliaError) WithContext(key string, value interface{}) *ItaliaError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithComponent adds component context.
func (e *ItaliaError) WithComponent(component string) *ItaliaError {
	e.Component = component

	return e
}

// WithCause sets the underlying cause.
func (e *ItaliaError) WithCause(cause error) *ItaliaError {
	e.Cause = cause

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *ItaliaError {
	return &ItaliaError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewUnsupportedTypeError reports a type outside of a closed set of
// supported types. It is a binding bug and never recoverable.
func NewUnsupportedTypeError(typeName string) *ItaliaError {
	msg := "type not supported"
	if typeName != "" {
		msg = fmt.Sprintf("type %s is not supported", typeName)
	}

	return &ItaliaError{
		Type:    ErrorTypeUnsupported,
		Code:    ErrCodeUnsupportedType,
		Message: msg,
	}
}

// NewInvalidOperationError reports an operation that is not allowed in the
// current state of a component.
func NewInvalidOperationError(message string) *ItaliaError {
	return &ItaliaError{
		Type:    ErrorTypeOperation,
		Code:    ErrCodeInvalidOperation,
		Message: message,
	}
}

// NewRenderError creates a render error.
func NewRenderError(code, message string, cause error) *ItaliaError {
	return &ItaliaError{
		Type:        ErrorTypeRender,
		Code:        code,
		Message:     message,
		Cause:       cause,
		Recoverable: true,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ItaliaError {
	return &ItaliaError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ItaliaError {
	return &ItaliaError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ItaliaError {
	return &ItaliaError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var ie *ItaliaError
	if errors.As(err, &ie) {
		return ie.Recoverable
	}

	return false
}

// IsUnsupportedType checks if an error reports an unsupported type.
func IsUnsupportedType(err error) bool {
	var ie *ItaliaError
	if errors.As(err, &ie) {
		return ie.Type == ErrorTypeUnsupported
	}

	return false
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	var ie *ItaliaError
	if errors.As(err, &ie) {
		return ie.Type == ErrorTypeValidation
	}

	return false
}

// CodeOf returns the code of the first ItaliaError in the chain, or "".
func CodeOf(err error) string {
	var ie *ItaliaError
	if errors.As(err, &ie) {
		return ie.Code
	}

	return ""
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// ErrorHandler provides centralized error handling.
type ErrorHandler struct {
	logger Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error at a level matching its category.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var ie *ItaliaError
	if !errors.As(err, &ie) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch ie.Type {
	case ErrorTypeValidation, ErrorTypeOperation:
		h.logger.Warn(ctx, err, "Request rejected",
			"type", ie.Type,
			"code", ie.Code,
			"component", ie.Component)
	default:
		h.logger.Error(ctx, err, "Error occurred",
			"type", ie.Type,
			"code", ie.Code,
			"component", ie.Component)
	}
}

// Common error codes.
const (
	ErrCodeUnsupportedType   = "ERR_UNSUPPORTED_TYPE"
	ErrCodeInvalidNumber     = "ERR_INVALID_NUMBER"
	ErrCodeTypeMismatch      = "ERR_TYPE_MISMATCH"
	ErrCodeInvalidProps      = "ERR_INVALID_PROPS"
	ErrCodeInvalidOperation  = "ERR_INVALID_OPERATION"
	ErrCodeInvalidOption     = "ERR_INVALID_OPTION"
	ErrCodeComponentNotFound = "ERR_COMPONENT_NOT_FOUND"
	ErrCodeExampleNotFound   = "ERR_EXAMPLE_NOT_FOUND"
	ErrCodeRenderFailed      = "ERR_RENDER_FAILED"
	ErrCodeConfigInvalid     = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound      = "ERR_FILE_NOT_FOUND"
	ErrCodeInvalidExamples   = "ERR_INVALID_EXAMPLES"
	ErrCodeListenFailed      = "ERR_LISTEN_FAILED"
)
