package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/italia/internal/accessibility"
	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/pkg/components"
)

var (
	auditWCAGLevel      string
	auditFormat         string
	auditIncludeHTML    bool
	auditRules          []string
	auditExcludeRules   []string
	auditSeverityFilter string
	auditStrict         bool
)

var auditKeys = map[string]string{
	"examples": "gallery.examples",
}

var auditCmd = &cobra.Command{
	Use:   "audit [component...]",
	Short: "Run the accessibility rules on component examples",
	Long: `Render every example of the given components (all components by default)
and check the markup against WCAG rules: image alternatives, form labels,
button names, duplicate ids and focusable content under aria-hidden.

Examples:
  italia audit                        # Every example
  italia audit button text-field      # Only these components
  italia audit -w A                   # Level A rules only
  italia audit --severity error       # Show errors only
  italia audit -f json --include-html # Machine readable, with markup
  italia audit --strict               # Exit non-zero on any violation`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		return completeComponents(cmd, nil), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVarP(&auditWCAGLevel, "wcag-level", "w", "", "Only run rules up to this WCAG level (A, AA, AAA)")
	addFormatFlag(auditCmd, &auditFormat, formatText, formatText, formatJSON, formatYAML)
	auditCmd.Flags().BoolVar(&auditIncludeHTML, "include-html", false, "Include the rendered markup in reports")
	auditCmd.Flags().StringSliceVar(&auditRules, "rules", nil, "Only run these rule ids")
	auditCmd.Flags().StringSliceVar(&auditExcludeRules, "exclude", nil, "Skip these rule ids")
	auditCmd.Flags().StringVarP(&auditSeverityFilter, "severity", "s", "", "Only report this severity (error, warning, info)")
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "Fail when any violation is reported")
	auditCmd.Flags().StringP("examples", "e", "", "YAML file with extra examples")
}

func runAudit(cmd *cobra.Command, args []string) error {
	level, err := parseWCAGLevel(auditWCAGLevel)
	if err != nil {
		return err
	}
	severity, err := parseSeverity(auditSeverityFilter)
	if err != nil {
		return err
	}

	cfg, logger, cat, err := setup(cmd, auditKeys)
	if err != nil {
		return err
	}

	ctx := components.WithSpriteURL(cmd.Context(), cfg.Assets.SpriteURL)
	engine := accessibility.NewEngine(logger)

	reports, err := engine.AuditRegistry(ctx, cat.Registry(), accessibility.AuditConfiguration{
		WCAGLevel:    level,
		Rules:        auditRules,
		ExcludeRules: auditExcludeRules,
		IncludeHTML:  auditIncludeHTML,
	}, args...)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range reports {
		r.Violations = filterViolations(r.Violations, severity)
		total += len(r.Violations)
	}

	out := cmd.OutOrStdout()
	if auditFormat == formatText {
		writeAuditText(out, reports, total)
	} else if err := writeStructured(out, auditFormat, reports); err != nil {
		return err
	}

	if auditStrict && total > 0 {
		return fmt.Errorf("%d accessibility violation(s) found", total)
	}

	return nil
}

func parseWCAGLevel(s string) (accessibility.WCAGLevel, error) {
	switch level := accessibility.WCAGLevel(strings.ToUpper(s)); level {
	case "", accessibility.WCAGLevelA, accessibility.WCAGLevelAA, accessibility.WCAGLevelAAA:
		return level, nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidOption,
			fmt.Sprintf("unknown WCAG level %q (supported: A, AA, AAA)", s))
	}
}

func parseSeverity(s string) (accessibility.ViolationSeverity, error) {
	switch severity := accessibility.ViolationSeverity(strings.ToLower(s)); severity {
	case "", accessibility.SeverityError, accessibility.SeverityWarning, accessibility.SeverityInfo:
		return severity, nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidOption,
			fmt.Sprintf("unknown severity %q (supported: error, warning, info)", s))
	}
}

func filterViolations(violations []accessibility.Violation, severity accessibility.ViolationSeverity) []accessibility.Violation {
	if severity == "" {
		return violations
	}

	kept := violations[:0]
	for _, v := range violations {
		if v.Severity == severity {
			kept = append(kept, v)
		}
	}

	return kept
}

func writeAuditText(w io.Writer, reports []*accessibility.Report, total int) {
	for _, r := range reports {
		status := "ok"
		if r.HasViolations() {
			status = fmt.Sprintf("%d violation(s)", len(r.Violations))
		}
		fmt.Fprintf(w, "%s/%s: %s (score %.0f)\n", r.Component, r.Example, status, r.Summary.OverallScore)

		for _, v := range r.Violations {
			fmt.Fprintf(w, "  [%s] %s %s: %s\n", v.Severity, v.Rule, v.Selector, v.Message)
			fmt.Fprintf(w, "      fix: %s (WCAG %s %s)\n", v.Fix, v.WCAG.Criteria, v.WCAG.Level)
		}
	}

	fmt.Fprintf(w, "\n%d example(s) audited, %d violation(s)\n", len(reports), total)
}
