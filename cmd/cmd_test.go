package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/version"
)

// resetFlags restores every flag to its default so that commands can be
// executed repeatedly.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}

	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func executeContext(ctx context.Context, t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)

	return out.String(), err
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return executeContext(context.Background(), t, args...)
}

func writeExamples(t *testing.T, src string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "examples.yml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func TestStepCommand(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"increment", []string{"--type", "int32", "--value", "5", "--max", "10", "--step", "2"}, "7"},
		{"clamp to max", []string{"--type", "int", "--value", "9", "--max", "10", "--step", "2"}, "10"},
		{"decrement to min", []string{"--type", "short", "--value", "1", "--min", "1", "--factor", "-1"}, "1"},
		{"int16 saturates", []string{"--type", "int16", "--value", "32767"}, "32767"},
		{"absent value", []string{"--type", "long"}, "1"},
		{"decimal", []string{"--type", "decimal", "--value", "1.10", "--step", "0.05"}, "1.15"},
		{"double", []string{"--type", "double", "--value", "0.5", "--step", "0.25", "--factor", "2"}, "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"step"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected+"\n", out)
		})
	}
}

func TestStepCommandErrors(t *testing.T) {
	_, err := execute(t, "step", "--type", "complex")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnsupportedType, errors.CodeOf(err))

	_, err = execute(t, "step", "--type", "int32", "--value", "abc")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidNumber, errors.CodeOf(err))
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "button")
	assert.Contains(t, out, "text-field")

	out, err = execute(t, "list", "-c", "form")
	require.NoError(t, err)
	assert.Contains(t, out, "text-field")
	assert.NotContains(t, out, "badge")
}

func TestListCommandJSON(t *testing.T) {
	out, err := execute(t, "list", "-f", "json", "--category", "components")
	require.NoError(t, err)

	var entries []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Examples []struct {
			Name   string `json:"name"`
			Source string `json:"source"`
		} `json:"examples"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, "components", e.Category)
		assert.NotEmpty(t, e.Examples, e.Name)
	}
}

func TestListCommandYAML(t *testing.T) {
	out, err := execute(t, "list", "-f", "YAML")
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	assert.NotEmpty(t, entries)
}

func TestListCommandWithExamplesFile(t *testing.T) {
	path := writeExamples(t, "badge:\n  - name: extra\n    props:\n      text: Extra\n      color: success\n")

	out, err := execute(t, "list", "-e", path)
	require.NoError(t, err)
	assert.Contains(t, out, "extra*")
}

func TestListCommandRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "list", "-f", "xm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "button", "primary")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "Primario", strings.TrimSpace(doc.Find("button.btn").Text()))
	assert.NotContains(t, out, "<!--")

	out, err = execute(t, "render", "alert")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "<!-- alert/"))
}

func TestRenderCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.html")

	out, err := execute(t, "render", "badge", "primary", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1 example(s)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Nuovo")
}

func TestRenderCommandErrors(t *testing.T) {
	_, err := execute(t, "render", "carousel")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeComponentNotFound, errors.CodeOf(err))

	_, err = execute(t, "render", "button", "missing")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeExampleNotFound, errors.CodeOf(err))

	_, err = execute(t, "render", "button", "-o", "../button.html")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidOption, errors.CodeOf(err))
}

func TestAuditCommand(t *testing.T) {
	out, err := execute(t, "audit", "badge")
	require.NoError(t, err)
	assert.Contains(t, out, "badge/primary:")
	assert.Contains(t, out, "3 example(s) audited")

	_, err = execute(t, "audit", "button", "--rules", "missing-button-text", "--strict")
	assert.NoError(t, err)

	_, err = execute(t, "audit", "carousel")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeComponentNotFound, errors.CodeOf(err))

	_, err = execute(t, "audit", "-w", "Z")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidOption, errors.CodeOf(err))
}

func TestAuditCommandJSON(t *testing.T) {
	out, err := execute(t, "audit", "avatar", "-f", "json", "--include-html")
	require.NoError(t, err)

	var reports []struct {
		Component string `json:"component"`
		Example   string `json:"example"`
		HTML      string `json:"html"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.NotEmpty(t, reports)
	for _, r := range reports {
		assert.Equal(t, "avatar", r.Component)
		assert.Contains(t, r.HTML, "avatar")
	}
}

func TestAuditCommandStrictFails(t *testing.T) {
	path := writeExamples(t, "avatar:\n  - name: no-alt\n    props:\n      image: https://example.com/a.jpg\n")

	out, err := execute(t, "audit", "avatar", "-e", path, "--rules", "missing-alt-text", "--strict")
	require.Error(t, err)
	assert.Contains(t, out, "avatar/no-alt: 1 violation(s)")
	assert.Contains(t, out, "[error] missing-alt-text")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Get().Short()+"\n", out)

	out, err = execute(t, "version", "-f", "json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.NotEmpty(t, info.GoVersion)

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: ")
	assert.Contains(t, out, "Build type: ")
}

func TestServeCommand(t *testing.T) {
	path := writeExamples(t, "badge:\n  - name: extra\n    props:\n      text: Extra\n      color: success\n")

	ctx, cancel := context.WithCancel(context.Background())

	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := executeContext(ctx, t, "serve", "--host", "127.0.0.1", "--port", "0", "-e", path, "-w")
		done <- result{out, err}
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Contains(t, r.out, "Serving ")
		assert.Contains(t, r.out, "http://127.0.0.1:0")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestValidateFormat(t *testing.T) {
	assert.NoError(t, validateFormat("JSON", []string{formatJSON, formatYAML}))

	err := validateFormat("ya", []string{formatJSON, formatYAML})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "yaml"?`)
	assert.Equal(t, errors.ErrCodeInvalidOption, errors.CodeOf(err))
}
