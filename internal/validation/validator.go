// Package validation holds the shared struct validator used for component
// props and configuration.
package validation

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/conneroisu/italia/internal/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the shared validator with the custom tags registered:
//
//	asset_url  a root-relative path or an absolute http(s) URL
//	bcp47      a well-formed BCP 47 language tag
//	safe_path  a file path without traversal or shell metacharacters
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("asset_url", func(fl validator.FieldLevel) bool {
			return ValidateAssetURL(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("safe_path", func(fl validator.FieldLevel) bool {
			return ValidatePath(fl.Field().String()) == nil
		})

		validateInst = v
	})

	return validateInst
}

// Register adds a custom tag to the shared validator. It must be called
// from package initialization, before any validation runs.
func Register(tag string, fn validator.Func) {
	if err := Instance().RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// Struct validates v and converts the first failure into an ItaliaError
// with the given code, attributed to component.
func Struct(component, code string, v any) error {
	err := Instance().Struct(v)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", fieldName(fe), fe.Tag())
		if fe.Param() != "" {
			msg += fmt.Sprintf(" (%s)", fe.Param())
		}

		return errors.NewValidationError(code, msg).
			WithComponent(component).
			WithContext("field", fieldName(fe)).
			WithCause(err)
	}

	return errors.NewValidationError(code, err.Error()).
		WithComponent(component).
		WithCause(err)
}

// fieldName drops the root struct name from the namespace and lowercases
// the first letter of each segment.
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToLower(part[:1]) + part[1:]
		}
	}

	return strings.Join(parts, ".")
}

// ValidateAssetURL accepts root-relative paths and absolute http(s) URLs.
// Empty values are accepted; use the required tag to forbid them.
func ValidateAssetURL(raw string) error {
	if raw == "" {
		return nil
	}

	if strings.ContainsAny(raw, " \t\r\n\"'<>`") {
		return fmt.Errorf("asset URL %q contains forbidden characters", raw)
	}

	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid asset URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid asset URL scheme: %q (only http/https allowed)", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("asset URL %q has no host", raw)
	}

	return nil
}
