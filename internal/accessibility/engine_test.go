package accessibility

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/italia/internal/catalog"
	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/registry"
	"github.com/conneroisu/italia/pkg/components"
	"github.com/conneroisu/italia/pkg/form"
)

func analyze(t *testing.T, htmlContent string, config AuditConfiguration) *Report {
	t.Helper()

	report, err := NewEngine(nil).Analyze(context.Background(), htmlContent, config)
	require.NoError(t, err)

	return report
}

func violationsOf(report *Report, rule string) []Violation {
	var out []Violation
	for _, v := range report.Violations {
		if v.Rule == rule {
			out = append(out, v)
		}
	}

	return out
}

func TestEngineRules(t *testing.T) {
	rules := NewEngine(nil).Rules()

	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.ID)
		assert.NotEmpty(t, r.Fix, r.ID)
		assert.NotEmpty(t, r.HelpURL, r.ID)
	}

	assert.Equal(t, []string{
		"missing-alt-text",
		"missing-form-label",
		"missing-button-text",
		"duplicate-id",
		"invalid-aria-hidden-focus",
	}, ids)
}

func TestAnalyzeMissingAltText(t *testing.T) {
	report := analyze(t, `
<img src="a.jpg">
<img src="b.jpg" alt="">
<img src="c.jpg" alt="Municipio di Roma">
<img src="d.jpg" role="presentation">
<img src="e.jpg" aria-hidden="true">`, AuditConfiguration{})

	violations := violationsOf(report, "missing-alt-text")
	require.Len(t, violations, 2)

	v := violations[0]
	assert.Equal(t, SeverityError, v.Severity)
	assert.Equal(t, ImpactCritical, v.Impact)
	assert.Equal(t, "img", v.Element)
	assert.Equal(t, Criteria1_1_1, v.WCAG.Criteria)
	assert.Contains(t, v.HTML, `src="a.jpg"`)
	assert.NotEmpty(t, v.Fix)
}

func TestAnalyzeMissingFormLabel(t *testing.T) {
	report := analyze(t, `
<label for="name">Nome</label><input id="name" type="text">
<label>Email <input type="email"></label>
<input type="text" aria-label="Cerca">
<input type="hidden" name="token">
<input type="submit" value="Invia">
<input id="orphan" type="text">
<select id="region"></select>
<textarea title="Note"></textarea>`, AuditConfiguration{})

	violations := violationsOf(report, "missing-form-label")
	require.Len(t, violations, 2)
	assert.Equal(t, "input#orphan", violations[0].Selector)
	assert.Equal(t, "select#region", violations[1].Selector)
}

func TestAnalyzeMissingButtonText(t *testing.T) {
	report := analyze(t, `
<button>Invia</button>
<button aria-label="Chiudi"><svg aria-hidden="true"></svg></button>
<button class="btn close"><svg aria-hidden="true"><title>x</title></svg></button>
<button><span class="visually-hidden">Mostra password</span></button>
<input type="button">
<input type="submit" value="Invia">`, AuditConfiguration{})

	violations := violationsOf(report, "missing-button-text")
	require.Len(t, violations, 2)
	assert.Equal(t, "button.btn.close", violations[0].Selector)
	assert.Equal(t, "input", violations[1].Element)
}

func TestAnalyzeDuplicateIDs(t *testing.T) {
	report := analyze(t, `
<div id="b"></div><div id="a"></div><span id="b"></span><p id="a"></p><p id="c"></p>`, AuditConfiguration{})

	violations := violationsOf(report, "duplicate-id")
	require.Len(t, violations, 4)
	assert.Equal(t, "Duplicate ID: a", violations[0].Message)
	assert.Equal(t, "Duplicate ID: a", violations[1].Message)
	assert.Equal(t, "Duplicate ID: b", violations[2].Message)
	assert.Equal(t, SeverityError, violations[0].Severity)
}

func TestAnalyzeAriaHiddenFocus(t *testing.T) {
	report := analyze(t, `
<a href="#" aria-hidden="true">link</a>
<div aria-hidden="true"><button>Nascosto</button></div>
<div aria-hidden="true"><button tabindex="-1">Ok</button><input disabled></div>
<svg aria-hidden="true"><use href="#it-check"></use></svg>
<span aria-hidden="false"><a href="#">visibile</a></span>`, AuditConfiguration{})

	violations := violationsOf(report, "invalid-aria-hidden-focus")
	require.Len(t, violations, 2)
	assert.Equal(t, "a", violations[0].Element)
	assert.Equal(t, "div", violations[1].Element)
	assert.Contains(t, violations[1].Message, "button")
}

func TestAnalyzeRuleSelection(t *testing.T) {
	markup := `<img src="a.jpg"><div id="x"></div><div id="x"></div>`

	report := analyze(t, markup, AuditConfiguration{Rules: []string{"duplicate-id"}})
	assert.Equal(t, 1, report.Summary.TotalRules)
	assert.Empty(t, violationsOf(report, "missing-alt-text"))
	assert.Len(t, violationsOf(report, "duplicate-id"), 2)

	report = analyze(t, markup, AuditConfiguration{ExcludeRules: []string{"duplicate-id"}, WCAGLevel: WCAGLevelA})
	assert.Equal(t, 4, report.Summary.TotalRules)
	assert.Empty(t, violationsOf(report, "duplicate-id"))
	assert.Len(t, violationsOf(report, "missing-alt-text"), 1)
}

func TestReportSummary(t *testing.T) {
	report := analyze(t, `<img src="a.jpg"><img src="b.jpg"><button></button>`, AuditConfiguration{IncludeHTML: true})

	assert.True(t, report.HasViolations())
	assert.Equal(t, 5, report.Summary.TotalRules)
	assert.Equal(t, 3, report.Summary.PassedRules)
	assert.Equal(t, 2, report.Summary.FailedRules)
	assert.Equal(t, 3, report.Summary.TotalViolations)
	assert.Equal(t, 3, report.Summary.ErrorViolations)
	assert.InDelta(t, 60.0, report.Summary.OverallScore, 0.001)
	assert.Contains(t, report.HTML, "b.jpg")
	assert.ElementsMatch(t, []string{"missing-form-label", "duplicate-id", "invalid-aria-hidden-focus"}, report.Passed)

	clean := analyze(t, `<p>Nessun problema</p>`, AuditConfiguration{})
	assert.False(t, clean.HasViolations())
	assert.InDelta(t, 100.0, clean.Summary.OverallScore, 0.001)
	assert.Empty(t, clean.HTML)
}

func TestImpactSeverity(t *testing.T) {
	assert.Equal(t, SeverityError, ImpactCritical.Severity())
	assert.Equal(t, SeverityError, ImpactSerious.Severity())
	assert.Equal(t, SeverityWarning, ImpactModerate.Severity())
	assert.Equal(t, SeverityInfo, ImpactMinor.Severity())
}

func TestAnalyzeComponent(t *testing.T) {
	engine := NewEngine(nil)
	ctx := context.Background()

	report, err := engine.AnalyzeComponent(ctx, components.Button(components.ButtonProps{
		Label: "Invia", Color: components.ColorPrimary,
	}), AuditConfiguration{})
	require.NoError(t, err)
	assert.False(t, report.HasViolations())

	report, err = engine.AnalyzeComponent(ctx, components.Avatar(components.AvatarProps{
		Image: "https://example.com/a.jpg",
	}), AuditConfiguration{})
	require.NoError(t, err)
	assert.Len(t, violationsOf(report, "missing-alt-text"), 1)

	field, err := form.NewTextField(form.TextFieldProps{InputProps: form.InputProps{FieldProps: form.FieldProps{Label: "Nome"}}})
	require.NoError(t, err)
	report, err = engine.AnalyzeComponent(ctx, field, AuditConfiguration{})
	require.NoError(t, err)
	assert.Empty(t, violationsOf(report, "missing-form-label"))
}

func TestAuditRegistry(t *testing.T) {
	reg := registry.New()
	catalog.New(reg, nil)

	engine := NewEngine(nil)
	ctx := context.Background()

	reports, err := engine.AuditRegistry(ctx, reg, AuditConfiguration{}, "button", "badge")
	require.NoError(t, err)

	button, _ := reg.Get("button")
	badge, _ := reg.Get("badge")
	require.Len(t, reports, len(button.Examples)+len(badge.Examples))
	assert.Equal(t, "button", reports[0].Component)
	assert.Equal(t, button.Examples[0].Name, reports[0].Example)
	for _, r := range reports {
		assert.Empty(t, violationsOf(r, "missing-button-text"), r.Component+"/"+r.Example)
	}

	all, err := engine.AuditRegistry(ctx, reg, AuditConfiguration{})
	require.NoError(t, err)
	assert.Greater(t, len(all), len(reports))

	_, err = engine.AuditRegistry(ctx, reg, AuditConfiguration{}, "carousel")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeComponentNotFound, errors.CodeOf(err))
}
