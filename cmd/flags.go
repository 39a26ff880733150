package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/italia/internal/errors"
)

// Output formats shared by the listing commands.
const (
	formatTable = "table"
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// addFormatFlag adds a validated --format/-f flag.
func addFormatFlag(cmd *cobra.Command, target *string, def string, allowed ...string) {
	cmd.Flags().StringVarP(target, "format", "f", def,
		fmt.Sprintf("Output format (%s)", strings.Join(allowed, ", ")))
	AddFlagValidation(cmd, "format", func(format string) error {
		return validateFormat(format, allowed)
	})
}

// validateFormat rejects formats outside allowed and suggests the closest
// one by prefix.
func validateFormat(format string, allowed []string) error {
	format = strings.ToLower(format)
	if slices.Contains(allowed, format) {
		return nil
	}

	msg := fmt.Sprintf("unsupported format %q (supported: %s)", format, strings.Join(allowed, ", "))
	for _, a := range allowed {
		if format != "" && strings.HasPrefix(a, format) {
			msg += fmt.Sprintf("; did you mean %q?", a)
			break
		}
	}

	return errors.NewValidationError(errors.ErrCodeInvalidOption, msg)
}

// AddFlagValidation wraps the named flag so that invalid values are
// rejected while parsing.
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}

	return v.Value.Set(strings.ToLower(val))
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return validateFormat(format, []string{formatJSON, formatYAML})
	}
}
