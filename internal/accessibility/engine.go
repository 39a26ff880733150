// Package accessibility checks rendered markup against a set of WCAG rules.
package accessibility

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/logging"
)

// maxHTMLContext bounds the markup copied into a violation.
const maxHTMLContext = 200

type checkFunc func(rule Rule, elements []*html.Node) []Violation

// Engine runs accessibility rules over HTML.
type Engine struct {
	rules  []Rule
	logger logging.Logger
}

// NewEngine creates an engine with the default rules.
func NewEngine(logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}

	return &Engine{
		rules:  defaultRules(),
		logger: logger.WithComponent("accessibility"),
	}
}

// Rules returns the rules of the engine in evaluation order.
func (engine *Engine) Rules() []Rule {
	return slices.Clone(engine.rules)
}

func defaultRules() []Rule {
	return []Rule{
		{
			ID:          "missing-alt-text",
			Description: "Images must have alternative text",
			Impact:      ImpactCritical,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria1_1_1},
			Fix:         `Describe the image in alt, or mark a decorative image with role="presentation".`,
			HelpURL:     "https://dequeuniversity.com/rules/axe/4.4/image-alt",
			check:       checkAltText,
		},
		{
			ID:          "missing-form-label",
			Description: "Form elements must have labels",
			Impact:      ImpactCritical,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria3_3_2},
			Fix:         "Add a label whose for attribute matches the control id, or an aria-label.",
			HelpURL:     "https://dequeuniversity.com/rules/axe/4.4/label",
			check:       checkFormLabels,
		},
		{
			ID:          "missing-button-text",
			Description: "Buttons must have accessible names",
			Impact:      ImpactCritical,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria4_1_2},
			Fix:         "Give the button text, a visually-hidden span or an aria-label.",
			HelpURL:     "https://dequeuniversity.com/rules/axe/4.4/button-name",
			check:       checkButtonText,
		},
		{
			ID:          "duplicate-id",
			Description: "IDs of elements must be unique",
			Impact:      ImpactSerious,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria4_1_1},
			Fix:         "Leave the id empty so that a unique one is generated, or rename one of the elements.",
			HelpURL:     "https://dequeuniversity.com/rules/axe/4.4/duplicate-id",
			check:       checkDuplicateIDs,
		},
		{
			ID:          "invalid-aria-hidden-focus",
			Description: "aria-hidden elements must not be focusable or contain focusable elements",
			Impact:      ImpactSerious,
			WCAG:        WCAG{Level: WCAGLevelA, Criteria: Criteria4_1_2},
			Fix:         `Remove aria-hidden="true" or make the content unfocusable with tabindex="-1" or disabled.`,
			HelpURL:     "https://dequeuniversity.com/rules/axe/4.4/aria-hidden-focus",
			check:       checkHiddenFocus,
		},
	}
}

// Analyze parses htmlContent and runs the configured rules over it.
func (engine *Engine) Analyze(ctx context.Context, htmlContent string, config AuditConfiguration) (*Report, error) {
	start := time.Now()

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidProps, "failed to parse HTML").
			WithCause(err).
			WithComponent("accessibility")
	}

	elements := extractElements(doc)
	applicable := engine.applicableRules(config)

	report := &Report{
		Timestamp:  start,
		Violations: []Violation{},
		Passed:     []string{},
	}

	for _, rule := range applicable {
		violations := rule.check(rule, elements)
		if len(violations) == 0 {
			report.Passed = append(report.Passed, rule.ID)
			continue
		}
		report.Violations = append(report.Violations, violations...)
	}

	report.Duration = time.Since(start)
	report.Summary = summarize(report.Violations, len(report.Passed), len(applicable))
	if config.IncludeHTML {
		report.HTML = htmlContent
	}

	engine.logger.Debug(ctx, "Accessibility analysis completed",
		"violations", len(report.Violations),
		"passed_rules", len(report.Passed),
		"duration", report.Duration)

	return report, nil
}

func (engine *Engine) applicableRules(config AuditConfiguration) []Rule {
	applicable := make([]Rule, 0, len(engine.rules))
	for _, rule := range engine.rules {
		if slices.Contains(config.ExcludeRules, rule.ID) {
			continue
		}
		if len(config.Rules) > 0 && !slices.Contains(config.Rules, rule.ID) {
			continue
		}
		if !levelIncludes(config.WCAGLevel, rule.WCAG.Level) {
			continue
		}
		applicable = append(applicable, rule)
	}

	return applicable
}

func levelIncludes(level, ruleLevel WCAGLevel) bool {
	rank := map[WCAGLevel]int{WCAGLevelA: 1, WCAGLevelAA: 2, WCAGLevelAAA: 3}
	if level == "" {
		return true
	}

	return rank[ruleLevel] <= rank[level]
}

func summarize(violations []Violation, passed, total int) Summary {
	failed := make(map[string]bool)
	summary := Summary{
		TotalRules:      total,
		PassedRules:     passed,
		TotalViolations: len(violations),
	}

	for _, v := range violations {
		failed[v.Rule] = true
		switch v.Severity {
		case SeverityError:
			summary.ErrorViolations++
		case SeverityWarning:
			summary.WarnViolations++
		case SeverityInfo:
			summary.InfoViolations++
		}
	}
	summary.FailedRules = len(failed)

	if total > 0 {
		summary.OverallScore = float64(passed) / float64(total) * 100
	}

	return summary
}

func newViolation(rule Rule, n *html.Node, message string) Violation {
	return Violation{
		Rule:     rule.ID,
		Severity: rule.Impact.Severity(),
		Impact:   rule.Impact,
		WCAG:     rule.WCAG,
		Element:  n.Data,
		Selector: selector(n),
		Message:  message,
		Fix:      rule.Fix,
		HelpURL:  rule.HelpURL,
		HTML:     outerHTML(n),
	}
}

func checkAltText(rule Rule, elements []*html.Node) []Violation {
	var violations []Violation
	for _, n := range elements {
		if n.Data != "img" || decorative(n) {
			continue
		}
		if alt, ok := attr(n, "alt"); !ok || strings.TrimSpace(alt) == "" {
			violations = append(violations, newViolation(rule, n, "Image missing alt attribute"))
		}
	}

	return violations
}

func checkFormLabels(rule Rule, elements []*html.Node) []Violation {
	labelled := make(map[string]bool)
	for _, n := range elements {
		if n.Data == "label" {
			if id, ok := attr(n, "for"); ok {
				labelled[id] = true
			}
		}
	}

	var violations []Violation
	for _, n := range elements {
		if !isLabelable(n) {
			continue
		}
		if hasLabel(n, labelled) {
			continue
		}
		violations = append(violations, newViolation(rule, n, "Form control missing associated label"))
	}

	return violations
}

func checkButtonText(rule Rule, elements []*html.Node) []Violation {
	var violations []Violation
	for _, n := range elements {
		switch {
		case n.Data == "button":
			if !hasAccessibleName(n) {
				violations = append(violations, newViolation(rule, n, "Button missing accessible name"))
			}
		case n.Data == "input" && isButtonInput(n):
			value, _ := attr(n, "value")
			if strings.TrimSpace(value) == "" && !hasAccessibleName(n) {
				violations = append(violations, newViolation(rule, n, "Button missing accessible name"))
			}
		}
	}

	return violations
}

func checkDuplicateIDs(rule Rule, elements []*html.Node) []Violation {
	idMap := make(map[string][]*html.Node)
	var ids []string
	for _, n := range elements {
		if id, ok := attr(n, "id"); ok && id != "" {
			if _, seen := idMap[id]; !seen {
				ids = append(ids, id)
			}
			idMap[id] = append(idMap[id], n)
		}
	}
	sort.Strings(ids)

	var violations []Violation
	for _, id := range ids {
		if len(idMap[id]) < 2 {
			continue
		}
		for _, n := range idMap[id] {
			violations = append(violations, newViolation(rule, n, fmt.Sprintf("Duplicate ID: %s", id)))
		}
	}

	return violations
}

func checkHiddenFocus(rule Rule, elements []*html.Node) []Violation {
	var violations []Violation
	for _, n := range elements {
		if hidden, _ := attr(n, "aria-hidden"); hidden != "true" {
			continue
		}
		if isFocusable(n) {
			violations = append(violations, newViolation(rule, n, "Focusable element is hidden from assistive technology"))
			continue
		}
		if child := findFocusable(n); child != nil {
			violations = append(violations, newViolation(rule, n,
				fmt.Sprintf("aria-hidden element contains focusable %s", selector(child))))
		}
	}

	return violations
}

func extractElements(node *html.Node) []*html.Node {
	var elements []*html.Node

	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			elements = append(elements, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(node)
	return elements
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}

	return "", false
}

func decorative(n *html.Node) bool {
	role, _ := attr(n, "role")
	hidden, _ := attr(n, "aria-hidden")
	return role == "presentation" || role == "none" || hidden == "true"
}

func isLabelable(n *html.Node) bool {
	switch n.Data {
	case "textarea", "select":
		return true
	case "input":
		t, _ := attr(n, "type")
		switch strings.ToLower(t) {
		case "hidden", "button", "submit", "reset", "image":
			return false
		}
		return true
	}

	return false
}

func isButtonInput(n *html.Node) bool {
	t, _ := attr(n, "type")
	switch strings.ToLower(t) {
	case "button", "submit", "reset":
		return true
	}

	return false
}

func hasLabel(n *html.Node, labelled map[string]bool) bool {
	if label, ok := attr(n, "aria-label"); ok && strings.TrimSpace(label) != "" {
		return true
	}
	if _, ok := attr(n, "aria-labelledby"); ok {
		return true
	}
	if _, ok := attr(n, "title"); ok {
		return true
	}
	if id, ok := attr(n, "id"); ok && labelled[id] {
		return true
	}

	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "label" {
			return true
		}
	}

	return false
}

func hasAccessibleName(n *html.Node) bool {
	if strings.TrimSpace(textContent(n)) != "" {
		return true
	}
	if label, ok := attr(n, "aria-label"); ok && strings.TrimSpace(label) != "" {
		return true
	}
	if _, ok := attr(n, "aria-labelledby"); ok {
		return true
	}
	_, ok := attr(n, "title")

	return ok
}

func isFocusable(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if tabindex, ok := attr(n, "tabindex"); ok {
		return strings.TrimSpace(tabindex) != "-1"
	}
	if _, disabled := attr(n, "disabled"); disabled {
		return false
	}

	switch n.Data {
	case "button", "select", "textarea":
		return true
	case "a":
		_, ok := attr(n, "href")
		return ok
	case "input":
		t, _ := attr(n, "type")
		return !strings.EqualFold(t, "hidden")
	}

	return false
}

func findFocusable(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isFocusable(c) {
			return c
		}
		if found := findFocusable(c); found != nil {
			return found
		}
	}

	return nil
}

// textContent collects text, skipping subtrees hidden with aria-hidden.
func textContent(n *html.Node) string {
	var text strings.Builder
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			text.WriteString(n.Data)
		case html.ElementNode:
			if hidden, _ := attr(n, "aria-hidden"); hidden == "true" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)

	return text.String()
}

func outerHTML(n *html.Node) string {
	var result strings.Builder
	_ = html.Render(&result, n)

	s := []rune(result.String())
	if len(s) > maxHTMLContext {
		return string(s[:maxHTMLContext]) + "..."
	}

	return string(s)
}

func selector(n *html.Node) string {
	tagName := strings.ToLower(n.Data)

	if id, ok := attr(n, "id"); ok && id != "" {
		return fmt.Sprintf("%s#%s", tagName, id)
	}

	if class, ok := attr(n, "class"); ok {
		classes := strings.Fields(class)
		if len(classes) > 0 {
			return fmt.Sprintf("%s.%s", tagName, strings.Join(classes, "."))
		}
	}

	return tagName
}
