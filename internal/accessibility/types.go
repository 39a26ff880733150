package accessibility

import "time"

// WCAG represents Web Content Accessibility Guidelines levels and criteria.
type WCAG struct {
	Level    WCAGLevel    `json:"level" yaml:"level"`
	Criteria WCAGCriteria `json:"criteria" yaml:"criteria"`
}

// WCAGLevel represents different WCAG compliance levels.
type WCAGLevel string

const (
	WCAGLevelA   WCAGLevel = "A"
	WCAGLevelAA  WCAGLevel = "AA"
	WCAGLevelAAA WCAGLevel = "AAA"
)

// WCAGCriteria represents the specific WCAG success criteria.
type WCAGCriteria string

const (
	Criteria1_1_1 WCAGCriteria = "1.1.1" // Non-text Content
	Criteria1_3_1 WCAGCriteria = "1.3.1" // Info and Relationships
	Criteria2_1_1 WCAGCriteria = "2.1.1" // Keyboard
	Criteria3_3_2 WCAGCriteria = "3.3.2" // Labels or Instructions
	Criteria4_1_1 WCAGCriteria = "4.1.1" // Parsing
	Criteria4_1_2 WCAGCriteria = "4.1.2" // Name, Role, Value
)

// ViolationSeverity represents the severity level of an accessibility violation.
type ViolationSeverity string

const (
	SeverityError   ViolationSeverity = "error"
	SeverityWarning ViolationSeverity = "warning"
	SeverityInfo    ViolationSeverity = "info"
)

// ViolationImpact represents the potential impact of an accessibility violation.
type ViolationImpact string

const (
	ImpactCritical ViolationImpact = "critical"
	ImpactSerious  ViolationImpact = "serious"
	ImpactModerate ViolationImpact = "moderate"
	ImpactMinor    ViolationImpact = "minor"
)

// Severity maps an impact onto a severity.
func (i ViolationImpact) Severity() ViolationSeverity {
	switch i {
	case ImpactCritical, ImpactSerious:
		return SeverityError
	case ImpactMinor:
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// Rule describes one check.
type Rule struct {
	ID          string          `json:"id" yaml:"id"`
	Description string          `json:"description" yaml:"description"`
	Impact      ViolationImpact `json:"impact" yaml:"impact"`
	WCAG        WCAG            `json:"wcag" yaml:"wcag"`
	// Fix tells the author how to resolve a violation.
	Fix     string `json:"fix" yaml:"fix"`
	HelpURL string `json:"help_url" yaml:"help_url"`

	check checkFunc
}

// Violation represents a single accessibility issue found in the markup.
type Violation struct {
	Rule     string            `json:"rule" yaml:"rule"`
	Severity ViolationSeverity `json:"severity" yaml:"severity"`
	Impact   ViolationImpact   `json:"impact" yaml:"impact"`
	WCAG     WCAG              `json:"wcag" yaml:"wcag"`
	Element  string            `json:"element" yaml:"element"`
	Selector string            `json:"selector" yaml:"selector"`
	Message  string            `json:"message" yaml:"message"`
	Fix      string            `json:"fix" yaml:"fix"`
	HelpURL  string            `json:"help_url" yaml:"help_url"`
	// HTML is the offending element, truncated.
	HTML string `json:"html" yaml:"html"`
}

// AuditConfiguration selects the rules of an analysis.
type AuditConfiguration struct {
	// WCAGLevel keeps rules at or below the level; empty keeps all.
	WCAGLevel WCAGLevel `json:"wcag_level" yaml:"wcag_level"`
	// Rules, when set, restricts the analysis to these rule ids.
	Rules        []string `json:"rules,omitempty" yaml:"rules,omitempty"`
	ExcludeRules []string `json:"exclude_rules,omitempty" yaml:"exclude_rules,omitempty"`
	IncludeHTML  bool     `json:"include_html" yaml:"include_html"`
}

// Summary counts the outcome of an analysis.
type Summary struct {
	TotalRules      int     `json:"total_rules" yaml:"total_rules"`
	PassedRules     int     `json:"passed_rules" yaml:"passed_rules"`
	FailedRules     int     `json:"failed_rules" yaml:"failed_rules"`
	TotalViolations int     `json:"total_violations" yaml:"total_violations"`
	ErrorViolations int     `json:"error_violations" yaml:"error_violations"`
	WarnViolations  int     `json:"warn_violations" yaml:"warn_violations"`
	InfoViolations  int     `json:"info_violations" yaml:"info_violations"`
	OverallScore    float64 `json:"overall_score" yaml:"overall_score"`
}

// Report is the result of analysing one piece of markup.
type Report struct {
	Component  string        `json:"component,omitempty" yaml:"component,omitempty"`
	Example    string        `json:"example,omitempty" yaml:"example,omitempty"`
	Timestamp  time.Time     `json:"timestamp" yaml:"timestamp"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Violations []Violation   `json:"violations" yaml:"violations"`
	Passed     []string      `json:"passed" yaml:"passed"`
	Summary    Summary       `json:"summary" yaml:"summary"`
	HTML       string        `json:"html,omitempty" yaml:"html,omitempty"`
}

// HasViolations reports whether any rule failed.
func (r *Report) HasViolations() bool {
	return len(r.Violations) > 0
}
