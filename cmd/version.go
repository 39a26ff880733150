package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/italia/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the italia version, commit, build time, Go version, platform and
the templ version components are rendered with.

Examples:
  italia version              # Full version information
  italia version --short      # One line
  italia version -f json      # As JSON`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	addFormatFlag(versionCmd, &versionFormat, formatText, formatText, formatJSON, formatYAML)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.Get()
	out := cmd.OutOrStdout()

	if versionFormat != formatText {
		return writeStructured(out, versionFormat, info)
	}

	if versionShort {
		fmt.Fprintln(out, info.Short())
		return nil
	}

	fmt.Fprintln(out, info.String())
	if info.IsRelease() {
		fmt.Fprintln(out, "Build type: release")
	} else {
		fmt.Fprintln(out, "Build type: development")
	}

	return nil
}
