package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItaliaErrorError(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := NewRenderError(ErrCodeRenderFailed, "render failed", cause).WithComponent("button")

	assert.Equal(t, "[ERR_RENDER_FAILED] component:button render failed: boom", err.Error())
	assert.Same(t, cause, stderrors.Unwrap(err))
}

func TestItaliaErrorIs(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", NewUnsupportedTypeError("string"))

	assert.True(t, stderrors.Is(err, NewUnsupportedTypeError("")))
	assert.False(t, stderrors.Is(err, NewValidationError(ErrCodeUnsupportedType, "")))
	assert.True(t, IsUnsupportedType(err))
	assert.False(t, IsRecoverable(err))
	assert.Equal(t, ErrCodeUnsupportedType, CodeOf(err))
	assert.Equal(t, "", CodeOf(stderrors.New("plain")))
}

func TestConstructors(t *testing.T) {
	testCases := []struct {
		name        string
		err         *ItaliaError
		errType     ErrorType
		recoverable bool
	}{
		{"validation", NewValidationError(ErrCodeInvalidProps, "bad"), ErrorTypeValidation, true},
		{"operation", NewInvalidOperationError("nope"), ErrorTypeOperation, false},
		{"render", NewRenderError(ErrCodeRenderFailed, "bad", nil), ErrorTypeRender, true},
		{"io", NewIOError(ErrCodeFileNotFound, "missing", nil), ErrorTypeIO, false},
		{"config", NewConfigError(ErrCodeConfigInvalid, "bad"), ErrorTypeConfig, false},
		{"internal", NewInternalError("ERR_INTERNAL", "bad", nil), ErrorTypeInternal, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.errType, tc.err.Type)
			assert.Equal(t, tc.recoverable, IsRecoverable(tc.err))
			assert.Equal(t, tc.errType == ErrorTypeValidation, IsValidation(tc.err))
		})
	}
}

func TestWithContext(t *testing.T) {
	err := NewConfigError(ErrCodeConfigInvalid, "bad port").
		WithContext("field", "server.port").
		WithContext("value", -1)

	assert.Equal(t, "server.port", err.Context["field"])
	assert.Equal(t, -1, err.Context["value"])
}

type recordingLogger struct {
	warns, errors []string
}

func (l *recordingLogger) Error(_ context.Context, _ error, msg string, _ ...interface{}) {
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) Warn(_ context.Context, _ error, msg string, _ ...interface{}) {
	l.warns = append(l.warns, msg)
}

func TestErrorHandler(t *testing.T) {
	logger := &recordingLogger{}
	h := NewErrorHandler(logger)

	h.Handle(context.Background(), nil)
	h.Handle(context.Background(), NewValidationError(ErrCodeInvalidProps, "bad"))
	h.Handle(context.Background(), NewIOError(ErrCodeFileNotFound, "missing", nil))
	h.Handle(context.Background(), stderrors.New("plain"))

	assert.Len(t, logger.warns, 1)
	assert.Len(t, logger.errors, 2)
}

func TestErrorCollector(t *testing.T) {
	ec := NewErrorCollector()
	assert.False(t, ec.HasErrors())
	assert.NoError(t, ec.Err())

	ec.Add(ExampleError{File: "examples.yml", Line: 4, Component: "button", Example: "primary", Message: "unknown field"})
	ec.Add(ExampleError{File: "examples.yml", Message: "not a mapping"})
	ec.AddError(nil)
	ec.AddError(NewIOError(ErrCodeFileNotFound, "missing", nil))

	require.True(t, ec.HasErrors())
	assert.Len(t, ec.GetErrors(), 2)
	assert.Len(t, ec.GetErrorsByComponent("button"), 1)

	err := ec.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "examples.yml:4: button/primary: unknown field")
	assert.Contains(t, err.Error(), "examples.yml: not a mapping")

	var exampleErr *ExampleError
	assert.True(t, stderrors.As(err, &exampleErr))
	assert.True(t, stderrors.Is(err, NewIOError(ErrCodeFileNotFound, "", nil)))

	ec.Clear()
	assert.False(t, ec.HasErrors())
}
