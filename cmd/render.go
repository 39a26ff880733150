package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/validation"
	"github.com/conneroisu/italia/pkg/components"
)

var renderOutput string

var renderKeys = map[string]string{
	"examples":   "gallery.examples",
	"sprite-url": "assets.sprite_url",
}

var renderCmd = &cobra.Command{
	Use:     "render <component> [example]",
	Aliases: []string{"r"},
	Short:   "Print the HTML of component examples",
	Long: `Render one example, or every example of a component, to HTML.

Examples:
  italia render button primary          # One example to stdout
  italia render alert                   # Every alert example
  italia render card -o card.html       # Write to a file`,
	Args: cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		return completeComponents(cmd, args), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write HTML to this file instead of stdout")
	renderCmd.Flags().StringP("examples", "e", "", "YAML file with extra examples")
	renderCmd.Flags().String("sprite-url", "", "URL of the Bootstrap Italia SVG sprite")
}

func runRender(cmd *cobra.Command, args []string) error {
	if renderOutput != "" {
		if err := validation.ValidatePath(renderOutput); err != nil {
			return errors.NewValidationError(errors.ErrCodeInvalidOption, "invalid output path").
				WithCause(err).
				WithContext("path", renderOutput)
		}
	}

	cfg, _, cat, err := setup(cmd, renderKeys)
	if err != nil {
		return err
	}

	name := args[0]
	entry, ok := cat.Registry().Get(name)
	if !ok {
		return errors.NewValidationError(errors.ErrCodeComponentNotFound,
			fmt.Sprintf("component %q is not registered", name))
	}

	examples := make([]string, 0, len(entry.Examples))
	if len(args) == 2 {
		examples = append(examples, args[1])
	} else {
		for _, ex := range entry.Examples {
			examples = append(examples, ex.Name)
		}
	}

	ctx := components.WithSpriteURL(cmd.Context(), cfg.Assets.SpriteURL)

	var buf bytes.Buffer
	for _, example := range examples {
		c, err := cat.Registry().Render(ctx, name, example)
		if err != nil {
			return err
		}

		if len(examples) > 1 {
			fmt.Fprintf(&buf, "<!-- %s/%s -->\n", name, example)
		}
		if err := c.Render(ctx, &buf); err != nil {
			return errors.NewRenderError(errors.ErrCodeRenderFailed, "render failed", err).
				WithComponent(name).
				WithContext("example", example)
		}
		buf.WriteByte('\n')
	}

	if renderOutput == "" {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		return err
	}

	if err := os.WriteFile(renderOutput, buf.Bytes(), 0o644); err != nil {
		return errors.NewIOError(errors.ErrCodeRenderFailed, "cannot write output", err).
			WithContext("path", renderOutput)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d example(s) to %s\n", len(examples), renderOutput)

	return nil
}

// completeComponents completes component names, then example names.
func completeComponents(cmd *cobra.Command, args []string) []string {
	_, _, cat, err := setup(cmd, renderKeys)
	if err != nil || len(args) > 1 {
		return nil
	}

	if len(args) == 0 {
		var names []string
		for _, e := range cat.Registry().List() {
			names = append(names, e.Name)
		}
		return names
	}

	entry, ok := cat.Registry().Get(args[0])
	if !ok {
		return nil
	}

	names := make([]string, 0, len(entry.Examples))
	for _, ex := range entry.Examples {
		names = append(names, ex.Name)
	}

	return names
}
