package accessibility

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/conneroisu/italia/internal/errors"
	"github.com/conneroisu/italia/internal/logging"
	"github.com/conneroisu/italia/internal/registry"
)

// AnalyzeComponent renders c and analyses the markup.
func (engine *Engine) AnalyzeComponent(ctx context.Context, c templ.Component, config AuditConfiguration) (*Report, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, errors.NewRenderError(errors.ErrCodeRenderFailed, "cannot render component", err)
	}

	return engine.Analyze(ctx, buf.String(), config)
}

// AuditRegistry analyses every example of the named entries, or of every
// entry when names is empty. Reports are returned in registry order.
func (engine *Engine) AuditRegistry(ctx context.Context, reg *registry.Registry, config AuditConfiguration, names ...string) (reports []*Report, err error) {
	perf := logging.StartOperation(engine.logger, "audit")
	defer func() { perf.End(ctx, err) }()

	entries := reg.List()
	if len(names) > 0 {
		entries = entries[:0:0]
		for _, name := range names {
			e, ok := reg.Get(name)
			if !ok {
				return nil, errors.NewValidationError(errors.ErrCodeComponentNotFound,
					fmt.Sprintf("component %q is not registered", name)).WithComponent(name)
			}
			entries = append(entries, e)
		}
	}

	for _, e := range entries {
		for _, ex := range e.Examples {
			if err := ctx.Err(); err != nil {
				return reports, err
			}

			c, err := reg.Render(ctx, e.Name, ex.Name)
			if err != nil {
				return reports, err
			}

			report, err := engine.AnalyzeComponent(ctx, c, config)
			if err != nil {
				return reports, err
			}
			report.Component = e.Name
			report.Example = ex.Name
			reports = append(reports, report)
		}
	}

	engine.logger.Info(ctx, "Accessibility audit completed", "entries", len(entries), "reports", len(reports))

	return reports, nil
}
