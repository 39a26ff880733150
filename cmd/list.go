package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/italia/internal/registry"
)

var (
	listFormat   string
	listCategory string
)

var listKeys = map[string]string{
	"examples": "gallery.examples",
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l"},
	Short:   "List components and their examples",
	Long: `List every registered component with its category and examples.

Examples:
  italia list                      # Table of all components
  italia list -c form              # Only form components
  italia list -f json              # JSON, with example sources
  italia list -e examples.yml      # Include examples from a file`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	addFormatFlag(listCmd, &listFormat, formatTable, formatTable, formatJSON, formatYAML)
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only list this category (components, form)")
	listCmd.Flags().StringP("examples", "e", "", "YAML file with extra examples")
}

func runList(cmd *cobra.Command, _ []string) error {
	_, _, cat, err := setup(cmd, listKeys)
	if err != nil {
		return err
	}

	var entries []*registry.Entry
	for _, e := range cat.Registry().List() {
		if listCategory == "" || strings.EqualFold(string(e.Category), listCategory) {
			entries = append(entries, e)
		}
	}

	out := cmd.OutOrStdout()
	if listFormat != formatTable {
		return writeStructured(out, listFormat, entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No components found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCATEGORY\tTITLE\tEXAMPLES")
	for _, e := range entries {
		names := make([]string, 0, len(e.Examples))
		for _, ex := range e.Examples {
			name := ex.Name
			if ex.Source == registry.SourceFile {
				name += "*"
			}
			names = append(names, name)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Category, e.Title, strings.Join(names, ", "))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d components; * marks examples from a file\n", len(entries))

	return nil
}
